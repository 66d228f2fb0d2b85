package swap

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// exchange swaps through a temporary name next to a.
func exchange(a, b string) error {
	tmp, err := os.CreateTemp(filepath.Dir(a), ".svt-swap-*")
	if nil != err {
		return errors.Wrap(ErrSwap, err.Error())
	}
	name := tmp.Name()
	tmp.Close()

	if err := os.Rename(a, name); nil != err {
		os.Remove(name)
		return errors.Wrap(ErrSwap, err.Error())
	}
	if err := os.Rename(b, a); nil != err {
		os.Rename(name, a)
		return errors.Wrap(ErrSwap, err.Error())
	}
	if err := os.Rename(name, b); nil != err {
		return errors.Wrapf(ErrSwap, "%s left at %s: %v", b, name, err)
	}
	return nil
}
