package filesystem

import (
	"unicode/utf16"

	"golang.org/x/sys/windows"
)

// PathLength はパスの長さを UTF-16 のコード単位数で返します。MAX_PATH と同じ単位です
func PathLength(path string) int {
	u, err := windows.UTF16FromString(path)
	if err != nil {
		// NUL を含むパス
		return len(utf16.Encode([]rune(path)))
	}
	return len(u) - 1
}
