package curve

import "git.lost.host/meutraa/svt/internal/beatmap"

// state is what is in effect at the current position of a timeline scan.
// Defaults cover objects before the first uninherited line.
type state struct {
	lastUninherited int
	kiaiChange      int

	bpm         float64
	beatlength  float64
	meter       int
	sampleSet   int
	sampleIndex int
	volume      int
	effects     int
}

func newState() state {
	return state{
		bpm:        160,
		beatlength: -100,
		meter:      4,
		volume:     100,
	}
}

// observe folds a timing point into the state, other kinds are ignored.
func (s *state) observe(o *beatmap.Object) {
	if !o.IsTimingPoint() {
		return
	}

	if o.Effects&beatmap.EffectKiai != s.effects&beatmap.EffectKiai {
		s.kiaiChange = o.Time
	}

	if o.Kind == beatmap.Uninherited {
		s.lastUninherited = o.Time
		s.bpm = o.BPM()
		s.meter = o.Meter
		// A tempo line resets sv to 1x
		s.beatlength = -100
	} else {
		s.beatlength = o.Beatlength
	}
	s.sampleSet = o.SampleSet
	s.sampleIndex = o.SampleIndex
	s.volume = o.Volume
	s.effects = o.Effects
}

// placement keeps a point after the governing tempo line and any kiai
// toggle inside the offset window.
func (s *state) placement(time int) int {
	t := time
	if s.lastUninherited > t {
		t = s.lastUninherited
	}
	if s.kiaiChange > t {
		t = s.kiaiChange
	}
	return t
}
