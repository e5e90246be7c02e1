package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// エラー種別
var (
	ErrNoPathsGiven          = errors.New("削除するパスが指定されていません")
	ErrPathTooLong           = errors.New("パスが長すぎます")
	ErrPathNotFound          = errors.New("パスが見つかりません")
	ErrNotADirectory         = errors.New("ディレクトリではありません")
	ErrDirectoryListFailed   = errors.New("ディレクトリの列挙に失敗しました")
	ErrAttributeClearFailed  = errors.New("読み取り専用属性の解除に失敗しました")
	ErrFileDeleteFailed      = errors.New("ファイルの削除に失敗しました")
	ErrDirectoryRemoveFailed = errors.New("ディレクトリの削除に失敗しました")
)

// ClearError はクリア処理中に最初に発生した失敗を表します
type ClearError struct {
	// Kind はエラー種別（ErrPathTooLong 等）を表します
	Kind error
	// Path は失敗したパスを表します
	Path string
	// Reason は下位のシステムエラーの説明を表します
	Reason string
	// Err は下位のエラーを保持します
	Err error
}

// Error はユーザーに表示するメッセージを返します
func (e *ClearError) Error() string {
	var msg string
	switch e.Kind {
	case ErrPathTooLong:
		msg = fmt.Sprintf("パス \"%s\" が長すぎます。", e.Path)
	case ErrPathNotFound:
		msg = fmt.Sprintf("パス \"%s\" が見つかりません。", e.Path)
	case ErrNotADirectory:
		msg = fmt.Sprintf("\"%s\" はディレクトリではありません。", e.Path)
	case ErrDirectoryListFailed:
		msg = fmt.Sprintf("ディレクトリ \"%s\" の内容を取得できませんでした:", e.Path)
	case ErrAttributeClearFailed:
		msg = fmt.Sprintf("\"%s\" の読み取り専用属性を解除できませんでした:", e.Path)
	case ErrFileDeleteFailed:
		msg = fmt.Sprintf("ファイル \"%s\" を削除できませんでした:", e.Path)
	case ErrDirectoryRemoveFailed:
		msg = fmt.Sprintf("ディレクトリ \"%s\" を削除できませんでした:", e.Path)
	default:
		msg = fmt.Sprintf("\"%s\": %v", e.Path, e.Kind)
	}
	if e.Reason != "" {
		msg += "\n" + e.Reason
	}
	return msg
}

// Unwrap は errors.Is でエラー種別と下位エラーの両方を判定できるようにします
func (e *ClearError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
