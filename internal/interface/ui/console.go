package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const consolePrefix = "[startupdelete:error] "

// ConsoleReporter はエラーをコンソールに出力します
type ConsoleReporter struct {
	writer io.Writer
}

// NewConsoleReporter は新しい ConsoleReporter インスタンスを作成します
func NewConsoleReporter(writer io.Writer) *ConsoleReporter {
	if writer == nil {
		writer = os.Stderr
	}
	return &ConsoleReporter{writer: writer}
}

// Report はメッセージを1件出力します。2行目以降はインデントします
func (c *ConsoleReporter) Report(message string) {
	message = strings.TrimRight(message, "\r\n")
	fmt.Fprintln(c.writer, consolePrefix+strings.ReplaceAll(message, "\n", "\n    "))
}

// Close は何もしません
func (c *ConsoleReporter) Close() error {
	return nil
}
