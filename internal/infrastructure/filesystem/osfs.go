// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"StartupDelete/internal/domain/model"
	"StartupDelete/internal/infrastructure/logging"
)

// readDirBatchSize は1回の Readdir 呼び出しで読み込むエントリ数です
const readDirBatchSize = 256

// OSFileSystem は実際の OS のファイルシステムを操作する構造体です
type OSFileSystem struct {
	logger logging.Logger
}

// NewOSFileSystem は新しい OSFileSystem インスタンスを作成します
func NewOSFileSystem(logger logging.Logger) *OSFileSystem {
	return &OSFileSystem{logger: logger}
}

// Stat はパスの属性を取得します。シンボリックリンクは辿ります
func (o *OSFileSystem) Stat(path string) (model.DirectoryEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.DirectoryEntry{}, errors.Wrap(err, "属性の取得に失敗")
	}
	return model.NewDirectoryEntry(info), nil
}

// ReadDir はディレクトリ直下のエントリを列挙します
func (o *OSFileSystem) ReadDir(path string) ([]model.DirectoryEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "ディレクトリを開けません")
	}
	defer f.Close()

	var entries []model.DirectoryEntry
	for {
		infos, err := f.Readdir(readDirBatchSize)
		for _, info := range infos {
			entries = append(entries, model.NewDirectoryEntry(info))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "ディレクトリの読み込みに失敗")
		}
	}
	return entries, nil
}

// ClearReadOnly は読み取り専用属性を解除します
func (o *OSFileSystem) ClearReadOnly(path string, entry model.DirectoryEntry) error {
	o.logger.Log(logging.LevelDebug, fmt.Sprintf("読み取り専用属性を解除します: %s", path), nil)
	return errors.Wrap(clearReadOnly(path, entry), "読み取り専用属性の解除に失敗")
}

// RemoveFile はファイルを削除します
func (o *OSFileSystem) RemoveFile(path string) error {
	return errors.Wrap(os.Remove(path), "ファイルの削除に失敗")
}

// RemoveDir は空のディレクトリを削除します
func (o *OSFileSystem) RemoveDir(path string) error {
	return errors.Wrap(os.Remove(path), "ディレクトリの削除に失敗")
}

// PathLength はプラットフォームの最大パス長と同じ単位でパスの長さを返します
func (o *OSFileSystem) PathLength(path string) int {
	return PathLength(path)
}
