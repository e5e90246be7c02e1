// Package logging はロギング機能を提供します
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cybozu-go/log"
)

// ログレベル
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// ログフォーマット
const (
	FormatPlain  = "plain"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// StructuredLogger は cybozu-go/log を使ってログを出力するロガーです
type StructuredLogger struct {
	logger *log.Logger
}

// NewLogger は新しい StructuredLogger インスタンスを作成します
func NewLogger(writer io.Writer, format string, verbose bool) (*StructuredLogger, error) {
	if writer == nil {
		writer = os.Stdout
	}

	logger := log.NewLogger()
	logger.SetTopic("startupdelete")
	logger.SetOutput(writer)

	switch strings.ToLower(format) {
	case "", FormatPlain:
		logger.SetFormatter(log.PlainFormat{})
	case FormatLogfmt:
		logger.SetFormatter(log.Logfmt{})
	case FormatJSON:
		logger.SetFormatter(log.JSONFormat{})
	default:
		return nil, fmt.Errorf("不明なログフォーマットです: %s", format)
	}

	if verbose {
		logger.SetThreshold(log.LvDebug)
	} else {
		logger.SetThreshold(log.LvInfo)
	}

	return &StructuredLogger{logger: logger}, nil
}

// Log はメッセージを指定されたレベルで出力します
func (l *StructuredLogger) Log(level, message string, err error) {
	var fields map[string]interface{}
	if err != nil {
		fields = map[string]interface{}{
			log.FnError: err.Error(),
		}
	}

	var logErr error
	switch strings.ToUpper(level) {
	case LevelDebug:
		logErr = l.logger.Debug(message, fields)
	case LevelWarn:
		logErr = l.logger.Warn(message, fields)
	case LevelError:
		logErr = l.logger.Error(message, fields)
	default:
		logErr = l.logger.Info(message, fields)
	}
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "ログの出力に失敗: %v\n", logErr)
	}
}
