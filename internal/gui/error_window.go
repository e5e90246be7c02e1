// Package gui はGUIを提供します
package gui

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

// Default window size constants
const (
	DefaultWindowWidth  = 480
	DefaultWindowHeight = 240
)

// WindowReporter は、Fyneのウィンドウでエラーを通知する構造体です。
// Report で受け取ったメッセージは Close 時にまとめて表示されます
type WindowReporter struct {
	title  string
	newApp func() fyne.App

	mu       sync.Mutex
	messages []string
}

// NewWindowReporter は、WindowReporterの新しいインスタンスを作成します
func NewWindowReporter(title string) *WindowReporter {
	return &WindowReporter{
		title:  title,
		newApp: app.New,
	}
}

// Report は、メッセージを表示待ちに追加します
func (r *WindowReporter) Report(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages は、表示待ちのメッセージを返します
func (r *WindowReporter) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// Close は、表示待ちのメッセージをエラーダイアログとして1件ずつ表示し、
// 最後のダイアログが閉じられるまで待機します。
// メッセージがない場合はウィンドウを開きません
func (r *WindowReporter) Close() error {
	messages := r.Messages()
	if len(messages) == 0 {
		return nil
	}

	a := r.newApp()
	w := a.NewWindow(r.title)
	w.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))

	// チェーン形式でダイアログを連続表示する
	var showNext func(i int)
	showNext = func(i int) {
		d := dialog.NewError(errors.New(messages[i]), w)
		d.SetOnClosed(func() {
			if i+1 < len(messages) {
				showNext(i + 1)
				return
			}
			// すべて表示したのでウィンドウを閉じる
			w.Close()
			a.Quit()
		})
		d.Show()
	}
	showNext(0)

	w.Show()
	a.Run()

	r.mu.Lock()
	r.messages = nil
	r.mu.Unlock()
	return nil
}
