package beatmap

import "github.com/pkg/errors"

var (
	// ErrFormat is returned for a timing point or hit object line that cannot be read.
	ErrFormat = errors.New("format error")
)
