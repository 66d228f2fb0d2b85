//go:build !linux

package swap

import (
	"os"

	"github.com/pkg/errors"
)

func Exchange(a, b string) error {
	for _, file := range []string{a, b} {
		if _, err := os.Stat(file); nil != err {
			return errors.Wrap(ErrSwap, err.Error())
		}
	}
	return exchange(a, b)
}
