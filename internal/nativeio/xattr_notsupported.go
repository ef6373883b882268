//go:build !windows && !plan9

package nativeio

import (
	"syscall"

	"github.com/pkg/xattr"
)

func notSupportedXattrErr(e *xattr.Error) bool {
	return e.Err == syscall.ENOTSUP || e.Err == syscall.EINVAL || e.Err == xattr.ENOATTR
}
