package curve

import (
	"math"

	"git.lost.host/meutraa/svt/internal/beatmap"
	"github.com/pkg/errors"
)

// span is a validated reference pair.
type span struct {
	start, end       *beatmap.Object
	startBPM, endBPM float64 // endBPM is startBPM when ignoring the end tempo
	startSV, endSV   float64 // Tempo normalized, -100 * bpm / beatlength
	diff             float64
}

// progress is 0 at the start point and 1 at the end point. A zero length
// span stays at its start values.
func (s *span) progress(t float64) float64 {
	if s.diff == 0 {
		return 0
	}
	return t / s.diff
}

func (s *span) volume(t float64) int {
	v := float64(s.start.Volume) + float64(s.end.Volume-s.start.Volume)*s.progress(t)
	return int(math.Max(0, math.Min(100, math.Round(v))))
}

func newSpan(tl *beatmap.Timeline, pair Pair, opts *Options) (*span, error) {
	start, err := beatmap.ParseTimingPoint(pair.Start)
	if nil != err {
		return nil, errors.Wrap(err, "start point")
	}
	end, err := beatmap.ParseTimingPoint(pair.End)
	if nil != err {
		return nil, errors.Wrap(err, "end point")
	}

	startTempo := tl.TempoAt(start.Time)
	if nil == startTempo {
		return nil, errors.Wrapf(ErrNoTempo, "start %d", start.Time)
	}
	s := &span{
		start:    start,
		end:      end,
		startBPM: startTempo.BPM(),
		diff:     float64(end.Time - start.Time),
	}
	s.endBPM = s.startBPM
	if endTempo := tl.TempoAt(end.Time); nil != endTempo && !opts.IgnoreEndBPM {
		s.endBPM = endTempo.BPM()
	}
	s.startSV = -100 * s.startBPM / start.Beatlength
	s.endSV = -100 * s.endBPM / end.Beatlength

	if start.Time > end.Time {
		return nil, errors.Wrapf(ErrOrder, "start %d, end %d", start.Time, end.Time)
	}
	if !(s.startSV > 0 && s.endSV > 0) {
		return nil, errors.Wrapf(ErrSvSign, "raw sv %v -> %v", s.startSV, s.endSV)
	}
	if start.Volume < 0 || start.Volume > 100 || end.Volume < 0 || end.Volume > 100 {
		return nil, errors.Wrapf(ErrVolumeRange, "volume %d -> %d", start.Volume, end.Volume)
	}
	return s, nil
}

// Apply generates points for every targeted object between the reference
// pair, or nothing when the pair is invalid. The timeline must be sorted.
func Apply(tl *beatmap.Timeline, pair Pair, opts *Options) ([]*beatmap.Object, error) {
	if err := opts.Validate(); nil != err {
		return nil, err
	}
	s, err := newSpan(tl, pair, opts)
	if nil != err {
		return nil, err
	}
	beatmap.Debug.Printf("[apply] t:%d->%d raw sv:%v->%v vol:%d->%d",
		s.start.Time, s.end.Time, s.startSV, s.endSV, s.start.Volume, s.end.Volume)

	from, to := s.start.Time-opts.Buffer, s.end.Time+opts.Buffer
	st := newState()
	generated := []*beatmap.Object{}

	for _, o := range tl.Objects {
		if opts.timingOnly() && !o.IsTimingPoint() {
			continue
		}
		if o.Time > to {
			break
		}

		st.observe(o)
		if o.Kind == beatmap.Uninherited || o.Kind == beatmap.Generated {
			continue
		}
		if o.Time < from || !opts.targets(o.Kind) {
			continue
		}

		t := float64(o.Time - s.start.Time)
		point := &beatmap.Object{
			Kind:        beatmap.Generated,
			Source:      o.Kind,
			Time:        st.placement(o.Time + opts.Offset),
			Beatlength:  st.beatlength,
			Meter:       st.meter,
			SampleSet:   st.sampleSet,
			SampleIndex: st.sampleIndex,
			Volume:      st.volume,
			Effects:     st.effects,
		}
		if nil != opts.Mode {
			sv := opts.Mode.velocity(s, o, t)
			if !(sv > 0) || math.IsInf(sv, 0) {
				return nil, errors.Wrapf(ErrSvSign, "%s sv %v at %d", opts.Mode.Name(), sv, o.Time)
			}
			point.Beatlength = -100 / (sv / st.bpm)
		}
		if opts.Volume {
			point.Volume = s.volume(t)
		}
		point.Line = beatmap.FormatTimingPoint(point)

		beatmap.Debug.Printf("[new] %v %s", o.Kind, point.Line)
		generated = append(generated, point)
	}

	return generated, nil
}

// ApplyAll runs every pair against the same timeline. The first invalid
// pair fails the whole batch and nothing is returned.
func ApplyAll(tl *beatmap.Timeline, pairs []Pair, opts *Options) ([]*beatmap.Object, error) {
	generated := []*beatmap.Object{}
	for _, pair := range pairs {
		points, err := Apply(tl, pair, opts)
		if nil != err {
			return nil, errors.Wrapf(err, "pair %d (%v)", pair.Index+1, pair)
		}
		generated = append(generated, points...)
	}
	return generated, nil
}
