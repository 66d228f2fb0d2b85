package curve

import (
	"math"

	"git.lost.host/meutraa/svt/internal/beatmap"
	"github.com/pkg/errors"
)

// Mode computes the raw sv at a point. Exactly one mode is active per
// cycle, a nil Mode leaves sv untouched.
type Mode interface {
	Name() string

	// t is the time since the start point
	velocity(s *span, o *beatmap.Object, t float64) float64

	// Timing-only modes skip snaps and hits entirely and always
	// rewrite inherited lines.
	timingOnly() bool
}

type Linear struct{}

func (Linear) Name() string { return "linear" }

func (Linear) velocity(s *span, o *beatmap.Object, t float64) float64 {
	return s.startSV + (s.endSV-s.startSV)*s.progress(t)
}

func (Linear) timingOnly() bool { return false }

type Exponential struct{}

func (Exponential) Name() string { return "exponential" }

func (Exponential) velocity(s *span, o *beatmap.Object, t float64) float64 {
	return s.startSV * math.Exp(s.progress(t)*math.Log(s.endSV/s.startSV))
}

func (Exponential) timingOnly() bool { return false }

// Polynomial follows (sv_diff) * (t / t_diff)^Exponent. Values in [0.5, 1)
// suit slowdowns, (1, 2] speedups.
type Polynomial struct {
	Exponent float64
}

func (Polynomial) Name() string { return "polynomial" }

func (p Polynomial) velocity(s *span, o *beatmap.Object, t float64) float64 {
	return s.startSV + (s.endSV-s.startSV)*math.Pow(math.Max(0, s.progress(t)), p.Exponent)
}

func (Polynomial) timingOnly() bool { return false }

type Sinusoidal struct{}

func (Sinusoidal) Name() string { return "sinusoidal" }

func (Sinusoidal) velocity(s *span, o *beatmap.Object, t float64) float64 {
	return s.startSV + (s.endSV-s.startSV)*(1-math.Cos(math.Pi*s.progress(t)))/2
}

func (Sinusoidal) timingOnly() bool { return false }

// Flat shifts each inherited line's own sv by Change, or multiplies it by
// Scale when Scaling is set. The reference points only supply the tempo.
type Flat struct {
	Change  float64
	Scale   float64
	Scaling bool
}

func (Flat) Name() string { return "flat" }

func (f Flat) velocity(s *span, o *beatmap.Object, t float64) float64 {
	if f.Scaling {
		return o.SV() * s.startBPM * f.Scale
	}
	return (o.SV() + f.Change) * s.startBPM
}

func (Flat) timingOnly() bool { return true }

// LinearFit scales each inherited line's own sv by a factor moving linearly
// from 1 at the start point to EndRatio at the end point.
type LinearFit struct {
	EndRatio float64
}

func (LinearFit) Name() string { return "linear-fit" }

func (l LinearFit) velocity(s *span, o *beatmap.Object, t float64) float64 {
	end := s.endBPM * l.EndRatio
	return o.SV() * s.startBPM * (s.startSV + (end-s.startSV)*s.progress(t)) / s.startSV
}

func (LinearFit) timingOnly() bool { return true }

// ModeParams carries the numeric settings of every mode, only the selected
// mode's fields are read.
type ModeParams struct {
	Exponent    float64
	FlatChange  float64
	FlatScale   float64
	FlatScaling bool
	FitEndRatio float64
}

var ModeNames = []string{"linear", "exponential", "polynomial", "sinusoidal", "flat", "linear-fit"}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NewMode builds the named mode, an empty name means no sv change.
func NewMode(name string, p ModeParams) (Mode, error) {
	switch name {
	case "":
		return nil, nil
	case "linear":
		return Linear{}, nil
	case "exponential":
		return Exponential{}, nil
	case "polynomial":
		if !finite(p.Exponent) {
			return nil, errors.Wrap(ErrFormat, "invalid exponent")
		}
		return Polynomial{Exponent: p.Exponent}, nil
	case "sinusoidal":
		return Sinusoidal{}, nil
	case "flat":
		if !finite(p.FlatChange) || !finite(p.FlatScale) {
			return nil, errors.Wrap(ErrFormat, "invalid flat sv")
		}
		return Flat{Change: p.FlatChange, Scale: p.FlatScale, Scaling: p.FlatScaling}, nil
	case "linear-fit":
		if !finite(p.FitEndRatio) {
			return nil, errors.Wrap(ErrFormat, "invalid linear fit end sv")
		}
		return LinearFit{EndRatio: p.FitEndRatio}, nil
	}
	return nil, errors.Wrapf(ErrFormat, "unknown mode %q", name)
}
