// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"StartupDelete/internal/interface/ui"
)

// Version はビルド時に -ldflags で設定されます
var Version string

// 終了コード
const (
	ExitOK       = 0
	ExitGeneral  = 1
	ExitFailures = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run はコマンドを実行し、終了コードを返します
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	code := ExitOK
	cmd := newRootCommand(stdout, stderr, &code)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		ui.NewConsoleReporter(stderr).Report(err.Error())
		return ExitGeneral
	}
	return code
}

func version() string {
	if Version != "" {
		return Version
	}
	return "dev"
}
