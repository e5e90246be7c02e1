package filesystem

import "golang.org/x/sys/windows"

// MaxPathLength はこのプラットフォームで扱えるパスの最大長です
const MaxPathLength = windows.MAX_PATH
