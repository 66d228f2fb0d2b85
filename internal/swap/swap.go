// Package swap exchanges two files, used to undo an apply by trading the
// map with its backup.
package swap

import "github.com/pkg/errors"

var ErrSwap = errors.New("unable to swap files")
