package cleanup

import (
	"fmt"
	"path/filepath"
	"strings"

	"StartupDelete/internal/domain/model"
	"StartupDelete/internal/infrastructure/logging"
)

// Clearer はディレクトリ自体を残してその中身をすべて削除します
type Clearer struct {
	fs            FileSystem
	describe      ErrorDescriber
	logger        logging.Logger
	maxPathLength int
}

// NewClearer は新しい Clearer インスタンスを作成します
func NewClearer(fs FileSystem, describe ErrorDescriber, logger logging.Logger, maxPathLength int) *Clearer {
	if describe == nil {
		describe = func(err error) string { return err.Error() }
	}
	return &Clearer{
		fs:            fs,
		describe:      describe,
		logger:        logger,
		maxPathLength: maxPathLength,
	}
}

// ClearDir は path 内のファイルとサブディレクトリをすべて削除します。
// path 自体は削除しません。最初に発生した失敗で処理を中断し、その失敗を *model.ClearError として返します
func (c *Clearer) ClearDir(path string) error {
	if c.fs.PathLength(path) > c.maxPathLength {
		return &model.ClearError{Kind: model.ErrPathTooLong, Path: path}
	}
	// "C:" はドライブのカレントディレクトリを指し、ルートではない
	if isDriveRelative(path) {
		return &model.ClearError{Kind: model.ErrPathNotFound, Path: path}
	}

	info, err := c.fs.Stat(path)
	if err != nil {
		return &model.ClearError{Kind: model.ErrPathNotFound, Path: path, Err: err}
	}
	if !info.IsDir {
		return &model.ClearError{Kind: model.ErrNotADirectory, Path: path}
	}

	entries, err := c.fs.ReadDir(path)
	if err != nil {
		return c.fail(model.ErrDirectoryListFailed, path, err)
	}

	for _, entry := range entries {
		if entry.Name == "." || entry.Name == ".." {
			continue
		}

		fullPath := path + string(filepath.Separator) + entry.Name

		if entry.ReadOnly {
			if err := c.fs.ClearReadOnly(fullPath, entry); err != nil {
				return c.fail(model.ErrAttributeClearFailed, fullPath, err)
			}
		}

		if entry.IsDir {
			if err := c.removeDir(fullPath); err != nil {
				return err
			}
			continue
		}

		if err := c.fs.RemoveFile(fullPath); err != nil {
			return c.fail(model.ErrFileDeleteFailed, fullPath, err)
		}
		c.logger.Log(logging.LevelDebug, fmt.Sprintf("ファイルを削除しました: %s", fullPath), nil)
	}

	return nil
}

// removeDir はディレクトリの中身を削除した後、ディレクトリ自体を削除します
func (c *Clearer) removeDir(path string) error {
	if err := c.ClearDir(path); err != nil {
		return err
	}
	if err := c.fs.RemoveDir(path); err != nil {
		return c.fail(model.ErrDirectoryRemoveFailed, path, err)
	}
	c.logger.Log(logging.LevelDebug, fmt.Sprintf("ディレクトリを削除しました: %s", path), nil)
	return nil
}

// isDriveRelative はパスが "C:" のようなドライブ名だけかどうかを返します
func isDriveRelative(path string) bool {
	vol := filepath.VolumeName(path)
	return vol != "" && vol == path && strings.HasSuffix(vol, ":")
}

func (c *Clearer) fail(kind error, path string, err error) error {
	return &model.ClearError{
		Kind:   kind,
		Path:   path,
		Reason: c.describe(err),
		Err:    err,
	}
}
