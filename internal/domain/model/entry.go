// package model はドメインモデルを定義します
package model

import "io/fs"

// DirectoryEntry はディレクトリ列挙で得られる1要素（ファイルまたはディレクトリ）を表します
type DirectoryEntry struct {
	// Name は親ディレクトリ内での要素名を表します
	Name string
	// IsDir はディレクトリであるかどうかを示します
	IsDir bool
	// ReadOnly は読み取り専用（書き込み保護）属性を持つかどうかを示します
	ReadOnly bool
	// Mode はプラットフォームが報告したパーミッションビットを表します
	Mode fs.FileMode
}

// NewDirectoryEntry は fs.FileInfo から DirectoryEntry を作成します
func NewDirectoryEntry(info fs.FileInfo) DirectoryEntry {
	mode := info.Mode()
	return DirectoryEntry{
		Name:     info.Name(),
		IsDir:    info.IsDir(),
		ReadOnly: mode.Perm()&0o200 == 0,
		Mode:     mode,
	}
}
