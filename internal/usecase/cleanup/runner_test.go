package cleanup

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"StartupDelete/internal/domain/model"
	"StartupDelete/internal/infrastructure/filesystem"
	"StartupDelete/internal/infrastructure/filesystem/memfs"
)

func TestRunner_Run_NoPaths(t *testing.T) {
	m := memfs.New()
	m.WriteFile("/cache/a.dat", 0444)
	reporter := &mockReporter{}
	clearer := NewClearer(m, filesystem.DescribeError, &mockLogger{}, filesystem.MaxPathLength)
	runner := NewRunner(clearer, reporter, &mockLogger{}, 1)

	summary, err := runner.Run(context.Background(), nil)
	if !errors.Is(err, model.ErrNoPathsGiven) {
		t.Fatalf("Run() error = %v, want %v", err, model.ErrNoPathsGiven)
	}
	if summary.Processed != 0 {
		t.Errorf("Processed = %d, want 0", summary.Processed)
	}
	if len(reporter.messages) != 1 {
		t.Fatalf("通知数 = %d, want 1", len(reporter.messages))
	}
	if !strings.Contains(reporter.messages[0], model.ErrNoPathsGiven.Error()) {
		t.Errorf("通知内容が不正: %q", reporter.messages[0])
	}
	if got := m.Mutations(); got != 0 {
		t.Errorf("Mutations() = %d, want 0", got)
	}
}

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name       string
		jobs       int
		paths      []string
		wantFailed int
		wantPaths  []string
	}{
		{
			name:       "すべて成功",
			jobs:       1,
			paths:      []string{"/cache", "/tmp"},
			wantFailed: 0,
		},
		{
			name:       "最初のパスが失敗しても次のパスを処理",
			jobs:       1,
			paths:      []string{"/missing", "/cache"},
			wantFailed: 1,
			wantPaths:  []string{"/missing"},
		},
		{
			name:       "ファイルを指すパスと存在しないパス",
			jobs:       1,
			paths:      []string{"/file.txt", "/cache", "/missing", "/tmp"},
			wantFailed: 2,
			wantPaths:  []string{"/file.txt", "/missing"},
		},
		{
			name:       "並列処理",
			jobs:       4,
			paths:      []string{"/missing", "/cache", "/file.txt", "/tmp"},
			wantFailed: 2,
			wantPaths:  []string{"/missing", "/file.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := memfs.New()
			m.WriteFile("/cache/a/b.dat", 0644)
			m.WriteFile("/cache/c.dat", 0444)
			m.WriteFile("/tmp/x.tmp", 0644)
			m.WriteFile("/file.txt", 0644)

			reporter := &mockReporter{}
			logger := &mockLogger{}
			clearer := NewClearer(m, filesystem.DescribeError, logger, filesystem.MaxPathLength)
			runner := NewRunner(clearer, reporter, logger, tt.jobs)

			var paths []string
			for _, p := range tt.paths {
				paths = append(paths, filepath.Clean(p))
			}

			summary, err := runner.Run(context.Background(), paths)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if summary.Processed != len(tt.paths) {
				t.Errorf("Processed = %d, want %d", summary.Processed, len(tt.paths))
			}
			if summary.Failed != tt.wantFailed {
				t.Errorf("Failed = %d, want %d", summary.Failed, tt.wantFailed)
			}
			if len(reporter.messages) != tt.wantFailed {
				t.Fatalf("通知数 = %d, want %d: %v", len(reporter.messages), tt.wantFailed, reporter.messages)
			}
			for _, p := range tt.wantPaths {
				var found bool
				for _, msg := range reporter.messages {
					if strings.Contains(msg, filepath.Clean(p)) {
						found = true
					}
				}
				if !found {
					t.Errorf("%s の通知がありません: %v", p, reporter.messages)
				}
			}

			for _, dir := range []string{"/cache", "/tmp"} {
				if !m.Exists(dir) {
					t.Errorf("%s 自体が削除されました", dir)
				}
				if got := m.Children(dir); len(got) != 0 {
					t.Errorf("%s が空ではありません: %v", dir, got)
				}
			}
			if !m.Exists("/file.txt") {
				t.Error("/file.txt が削除されました")
			}
		})
	}
}

func TestRunner_Run_Cancelled(t *testing.T) {
	m := memfs.New()
	m.WriteFile("/cache/a.dat", 0644)

	reporter := &mockReporter{}
	clearer := NewClearer(m, filesystem.DescribeError, &mockLogger{}, filesystem.MaxPathLength)
	runner := NewRunner(clearer, reporter, &mockLogger{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := runner.Run(ctx, []string{filepath.Clean("/cache")})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want %v", err, context.Canceled)
	}
	if summary.Processed != 0 {
		t.Errorf("Processed = %d, want 0", summary.Processed)
	}
	if !m.Exists("/cache/a.dat") {
		t.Error("中断後にファイルが削除されました")
	}
}
