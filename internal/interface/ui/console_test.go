package ui

import (
	"strings"
	"testing"
)

func TestConsoleReporter_Report(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "1行のメッセージ",
			message: "削除するパスが指定されていません。",
			want:    "[startupdelete:error] 削除するパスが指定されていません。\n",
		},
		{
			name:    "複数行のメッセージ",
			message: "ファイル \"/tmp/a\" を削除できませんでした:\npermission denied\n",
			want:    "[startupdelete:error] ファイル \"/tmp/a\" を削除できませんでした:\n    permission denied\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			reporter := NewConsoleReporter(&buf)

			reporter.Report(tt.message)

			if got := buf.String(); got != tt.want {
				t.Errorf("Report() output = %q, want %q", got, tt.want)
			}
		})
	}
}
