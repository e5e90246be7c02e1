//go:build windows

package filesystem

import (
	"StartupDelete/internal/domain/model"

	"golang.org/x/sys/windows"
)

// clearReadOnly は FILE_ATTRIBUTE_READONLY を外します
func clearReadOnly(path string, _ model.DirectoryEntry) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}
	return windows.SetFileAttributes(p, attrs&^windows.FILE_ATTRIBUTE_READONLY)
}
