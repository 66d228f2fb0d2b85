package writer

import "git.lost.host/meutraa/svt/internal/merge"

type Writer interface {
	// Write replaces the timing points of in and stores the result at out,
	// returning the number of generated points written.
	Write(in, out string, result *merge.Result, preview bool) (int, error)
}
