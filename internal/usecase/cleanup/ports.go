// Package cleanup はディレクトリの中身を削除するユースケースを提供します
package cleanup

import "StartupDelete/internal/domain/model"

// FileSystem はクリア処理が必要とするファイルシステム操作のインターフェースです
type FileSystem interface {
	// Stat はパスの属性を取得します
	Stat(path string) (model.DirectoryEntry, error)
	// ReadDir はディレクトリ直下のエントリを列挙します
	ReadDir(path string) ([]model.DirectoryEntry, error)
	// ClearReadOnly は読み取り専用属性を解除します
	ClearReadOnly(path string, entry model.DirectoryEntry) error
	// RemoveFile はファイルを削除します
	RemoveFile(path string) error
	// RemoveDir は空のディレクトリを削除します
	RemoveDir(path string) error
	// PathLength は最大パス長と同じ単位でパスの長さを返します
	PathLength(path string) int
}

// Reporter は失敗をユーザーに通知するインターフェースです
type Reporter interface {
	Report(message string)
	Close() error
}

// ErrorDescriber はシステムエラーを人が読める説明文に変換します
type ErrorDescriber func(err error) string
