package cleanup

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"StartupDelete/internal/domain/model"
	"StartupDelete/internal/infrastructure/logging"
)

// Summary は Run の処理結果を表します
type Summary struct {
	// Processed はクリアを試みた対象パスの数を表します
	Processed int
	// Failed は失敗した対象パスの数を表します
	Failed int
}

// Runner は対象パスごとにクリア処理を行い、失敗を Reporter に通知します
type Runner struct {
	clearer  *Clearer
	reporter Reporter
	logger   logging.Logger
	jobs     int

	mu sync.Mutex
}

// NewRunner は新しい Runner インスタンスを作成します。jobs は同時に処理する対象パスの数です
func NewRunner(clearer *Clearer, reporter Reporter, logger logging.Logger, jobs int) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{
		clearer:  clearer,
		reporter: reporter,
		logger:   logger,
		jobs:     jobs,
	}
}

// Run はすべての対象パスの中身を削除します。
// あるパスの失敗は他のパスの処理に影響しません。
// パスが1つも与えられなかった場合はその旨を通知し model.ErrNoPathsGiven を返します
func (r *Runner) Run(ctx context.Context, paths []string) (Summary, error) {
	var summary Summary

	if len(paths) == 0 {
		r.logger.Log(logging.LevelError, "削除対象のパスがありません", model.ErrNoPathsGiven)
		r.reporter.Report(model.ErrNoPathsGiven.Error() + "。")
		return summary, model.ErrNoPathsGiven
	}

	var g errgroup.Group
	g.SetLimit(r.jobs)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			break
		}
		path := path
		g.Go(func() error {
			err := r.clearer.ClearDir(path)
			r.record(&summary, path, err)
			return nil
		})
	}
	g.Wait()

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("処理が中断されました: %w", err)
	}
	return summary, nil
}

func (r *Runner) record(summary *Summary, path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summary.Processed++
	if err == nil {
		r.logger.Log(logging.LevelInfo, fmt.Sprintf("クリアしました: %s", path), nil)
		return
	}

	summary.Failed++
	r.logger.Log(logging.LevelError, fmt.Sprintf("クリアに失敗しました: %s", path), err)
	r.reporter.Report(err.Error())
}
