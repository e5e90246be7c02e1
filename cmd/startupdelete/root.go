package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"StartupDelete/internal/domain/model"
	"StartupDelete/internal/gui"
	"StartupDelete/internal/infrastructure/filesystem"
	"StartupDelete/internal/infrastructure/logging"
	"StartupDelete/internal/interface/ui"
	"StartupDelete/internal/usecase/cleanup"
)

const program = "startupdelete"

// 通知方法
const (
	reporterAuto    = "auto"
	reporterDialog  = "dialog"
	reporterWindow  = "window"
	reporterConsole = "console"
)

type options struct {
	reporter  string
	strict    bool
	jobs      int
	logFormat string
	verbose   bool
}

func newRootCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   program + " [flags] PATH...",
		Short: "指定したディレクトリの中身を削除します",
		Long: `startupdelete は指定したディレクトリ内のファイルとサブディレクトリをすべて削除します。
ディレクトリ自体は削除しません。起動時に一時フォルダやキャッシュフォルダを空にする用途を想定しています。

あるパスの処理に失敗してもエラーを通知して次のパスの処理を続けます。
失敗があっても終了コードは 0 です（--strict を指定した場合は 2）。
パスが1つも指定されなかった場合は終了コード 1 で終了します。`,
		Args:          cobra.ArbitraryArgs,
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jobs < 1 {
				return fmt.Errorf("--jobs には1以上を指定してください: %d", opts.jobs)
			}

			logger, err := logging.NewLogger(stdout, opts.logFormat, opts.verbose)
			if err != nil {
				return err
			}

			reporter, err := newReporter(opts.reporter, stderr)
			if err != nil {
				return err
			}

			osfs := filesystem.NewOSFileSystem(logger)
			clearer := cleanup.NewClearer(osfs, filesystem.DescribeError, logger, filesystem.MaxPathLength)
			runner := cleanup.NewRunner(clearer, reporter, logger, opts.jobs)

			summary, runErr := runner.Run(cmd.Context(), cleanup.CollectPaths(args))
			if err := reporter.Close(); err != nil {
				logger.Log(logging.LevelWarn, "エラー通知の終了処理に失敗", err)
			}

			switch {
			case errors.Is(runErr, model.ErrNoPathsGiven):
				*code = ExitGeneral
				return nil
			case runErr != nil:
				return runErr
			}

			logger.Log(logging.LevelInfo, fmt.Sprintf("処理が完了しました（対象: %d, 失敗: %d）", summary.Processed, summary.Failed), nil)
			if opts.strict && summary.Failed > 0 {
				*code = ExitFailures
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.reporter, "reporter", reporterAuto, "エラーの通知方法 (auto|dialog|window|console)")
	flags.BoolVar(&opts.strict, "strict", false, "失敗したパスがあれば終了コード 2 で終了する")
	flags.IntVar(&opts.jobs, "jobs", 1, "同時に処理するパスの数")
	flags.StringVar(&opts.logFormat, "log-format", logging.FormatPlain, "ログの形式 (plain|logfmt|json)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "削除したファイルをログに出力する")

	return cmd
}

// newReporter は通知方法に対応する Reporter を作成します。
// auto は標準エラー出力が端末ならコンソール、そうでなければダイアログを使います
func newReporter(kind string, stderr io.Writer) (cleanup.Reporter, error) {
	switch kind {
	case reporterAuto:
		if isTerminal(stderr) {
			return ui.NewConsoleReporter(stderr), nil
		}
		return ui.NewDialogReporter(ui.DefaultTitle), nil
	case reporterDialog:
		return ui.NewDialogReporter(ui.DefaultTitle), nil
	case reporterWindow:
		return gui.NewWindowReporter(ui.DefaultTitle), nil
	case reporterConsole:
		return ui.NewConsoleReporter(stderr), nil
	default:
		return nil, pkgerrors.Errorf("不明な通知方法です: %s", kind)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
