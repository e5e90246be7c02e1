//go:build unix

package filesystem

import (
	"StartupDelete/internal/domain/model"

	"golang.org/x/sys/unix"
)

// clearReadOnly はディレクトリに所有者の読み取り・書き込み・実行権限を付与し、
// 中身を列挙・削除できるようにします。
// ファイルの削除可否は親ディレクトリの権限で決まるため、ファイルは変更しません
func clearReadOnly(path string, entry model.DirectoryEntry) error {
	if !entry.IsDir {
		return nil
	}
	perm := uint32(entry.Mode.Perm()) | unix.S_IRUSR | unix.S_IWUSR | unix.S_IXUSR
	return unix.Chmod(path, perm)
}
