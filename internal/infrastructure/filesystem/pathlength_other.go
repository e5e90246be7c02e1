//go:build !windows

package filesystem

// PathLength はパスの長さをバイト数で返します。PATH_MAX と同じ単位です
func PathLength(path string) int {
	return len(path)
}
