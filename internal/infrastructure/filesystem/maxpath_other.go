//go:build !linux && !windows

package filesystem

// MaxPathLength はこのプラットフォームで扱えるパスの最大長です
const MaxPathLength = 1024
