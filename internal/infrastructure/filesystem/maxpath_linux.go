package filesystem

import "golang.org/x/sys/unix"

// MaxPathLength はこのプラットフォームで扱えるパスの最大長です
const MaxPathLength = unix.PathMax
