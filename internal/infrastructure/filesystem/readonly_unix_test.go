//go:build unix

package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClearReadOnly_Unix(t *testing.T) {
	tempDir := t.TempDir()

	file := filepath.Join(tempDir, "readonly.txt")
	if err := os.WriteFile(file, []byte("test content"), 0444); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}
	dir := filepath.Join(tempDir, "locked")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("テストディレクトリの作成に失敗: %v", err)
	}
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatalf("パーミッションの変更に失敗: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		wantPerm os.FileMode
	}{
		{
			// 所有者以外のファイルでも chmod せずに削除できるよう、ファイルは変更しない
			name:     "ファイルはパーミッションを変更しない",
			path:     file,
			wantPerm: 0444,
		},
		{
			name:     "ディレクトリは所有者に rwx を付与",
			path:     dir,
			wantPerm: 0755,
		},
	}

	osfs := NewOSFileSystem(&mockLogger{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := osfs.Stat(tt.path)
			if err != nil {
				t.Fatalf("Stat() error = %v", err)
			}
			if !entry.ReadOnly {
				t.Fatal("読み取り専用として検出されていません")
			}

			if err := osfs.ClearReadOnly(tt.path, entry); err != nil {
				t.Fatalf("ClearReadOnly() error = %v", err)
			}

			info, err := os.Stat(tt.path)
			if err != nil {
				t.Fatalf("os.Stat() error = %v", err)
			}
			if got := info.Mode().Perm(); got != tt.wantPerm {
				t.Errorf("Perm = %v, want %v", got, tt.wantPerm)
			}
		})
	}

	// 読み取り専用のファイルもそのまま削除できる
	if err := osfs.RemoveFile(file); err != nil {
		t.Errorf("RemoveFile() error = %v", err)
	}
}
