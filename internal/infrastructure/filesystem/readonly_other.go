//go:build !unix && !windows

package filesystem

import (
	"os"

	"StartupDelete/internal/domain/model"
)

func clearReadOnly(path string, entry model.DirectoryEntry) error {
	return os.Chmod(path, entry.Mode.Perm()|0o200)
}
