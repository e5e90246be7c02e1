package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// DescribeError はエラーをプラットフォームのエラーコードに対応する説明文に変換します
func DescribeError(err error) string {
	if err == nil {
		return ""
	}
	cause := pkgerrors.Cause(err)

	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	var sysErr *os.SyscallError
	if errors.As(cause, &sysErr) {
		cause = sysErr.Err
	}
	return strings.TrimSpace(cause.Error())
}
