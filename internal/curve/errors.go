package curve

import (
	"git.lost.host/meutraa/svt/internal/beatmap"
	"github.com/pkg/errors"
)

// Every error returned by Apply wraps one of these.
var (
	ErrFormat         = beatmap.ErrFormat
	ErrNoTempo        = errors.New("no uninherited lines before start point")
	ErrOrder          = errors.New("invalid times (end < start)")
	ErrSvSign         = errors.New("invalid sv value(s) (sv <= 0)")
	ErrVolumeRange    = errors.New("invalid volumes (vol < 0 or vol > 100)")
	ErrNothingToApply = errors.New("nothing to apply (sv, vol)")
)
