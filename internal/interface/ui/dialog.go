// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"github.com/sqweek/dialog"
)

// DefaultTitle はエラーダイアログのタイトルです
const DefaultTitle = "StartupDelete"

// DialogReporter はネイティブのモーダルダイアログでエラーを通知します
type DialogReporter struct {
	title string
	// show はダイアログを表示する関数です
	show func(title, message string)
}

// NewDialogReporter は新しい DialogReporter インスタンスを作成します
func NewDialogReporter(title string) *DialogReporter {
	if title == "" {
		title = DefaultTitle
	}
	return &DialogReporter{title: title, show: showErrorDialog}
}

// Report はエラーダイアログを表示し、閉じられるまで待機します
func (d *DialogReporter) Report(message string) {
	d.show(d.title, message)
}

// Close は何もしません
func (d *DialogReporter) Close() error {
	return nil
}

func showErrorDialog(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}
