package swap

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Exchange atomically swaps a and b. Filesystems without RENAME_EXCHANGE
// fall back to three renames.
func Exchange(a, b string) error {
	for _, file := range []string{a, b} {
		if _, err := os.Stat(file); nil != err {
			return errors.Wrap(ErrSwap, err.Error())
		}
	}
	err := unix.Renameat2(unix.AT_FDCWD, a, unix.AT_FDCWD, b, unix.RENAME_EXCHANGE)
	switch err {
	case nil:
		return nil
	case unix.EINVAL, unix.ENOSYS, unix.EXDEV:
		return exchange(a, b)
	}
	return errors.Wrapf(ErrSwap, "%s <-> %s: %v", a, b, err)
}
