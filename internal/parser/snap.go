package parser

import (
	"math"

	"git.lost.host/meutraa/svt/internal/beatmap"
)

// Ratio is the snap divisor as a fraction of one beat, 1/2 snaps every half beat.
type Ratio struct {
	Num, Denom float64
}

func (r Ratio) Valid() bool {
	return r.Num > 0 && r.Denom > 0
}

// Past the last snap time, synthesis continues to this multiple of it.
const tailFactor = 1.25

// snapper synthesizes snap points between timing points. Both fields start
// infinite so nothing is emitted before the first uninherited line.
type snapper struct {
	next, increment float64
	ratio           Ratio
	barlines        bool
}

func newSnapper(ratio Ratio, barlines bool) *snapper {
	return &snapper{
		next:      math.Inf(1),
		increment: math.Inf(1),
		ratio:     ratio,
		barlines:  barlines,
	}
}

func (s *snapper) emit(tl *beatmap.Timeline, time float64) {
	tl.Add(&beatmap.Object{Kind: beatmap.Snap, Time: int(math.Round(time))})
}

// advance fills snaps strictly before time.
func (s *snapper) advance(tl *beatmap.Timeline, time float64) {
	for s.next+s.increment < time {
		s.next += s.increment
		s.emit(tl, s.next)
	}
}

// observe is called for every timing point, in file order.
func (s *snapper) observe(tl *beatmap.Timeline, point *beatmap.Object) {
	s.advance(tl, float64(point.Time))
	if point.Kind != beatmap.Uninherited {
		return
	}

	s.next = float64(point.Time)
	if s.barlines {
		s.increment = point.Beatlength * float64(point.Meter)
		if point.Effects&beatmap.EffectOmitBarline == beatmap.EffectOmitBarline {
			return
		}
	} else {
		s.increment = point.Beatlength * s.ratio.Num / s.ratio.Denom
	}
	s.emit(tl, s.next)
}

func (s *snapper) finish(tl *beatmap.Timeline) {
	s.advance(tl, s.next*tailFactor)
}
