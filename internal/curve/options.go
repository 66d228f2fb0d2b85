package curve

import "git.lost.host/meutraa/svt/internal/beatmap"

// Targets selects which objects receive a generated point.
type Targets struct {
	Hits      bool
	Snaps     bool // Barlines or snappings, whichever the parser synthesized
	Inherited bool
}

type Options struct {
	Mode    Mode
	Targets Targets
	Volume  bool // Interpolate volume between the reference points

	Offset int // Generated points are placed at object time + Offset
	Buffer int // Widens the start/end window on both sides

	// Derive the end point's sv from the start tempo instead of the end tempo
	IgnoreEndBPM bool
}

func (o *Options) Validate() error {
	if o.Mode == nil && !o.Volume {
		return ErrNothingToApply
	}
	return nil
}

func (o *Options) targets(kind beatmap.Kind) bool {
	switch kind {
	case beatmap.Inherited:
		return o.Targets.Inherited || (o.Mode != nil && o.Mode.timingOnly())
	case beatmap.Snap:
		return o.Targets.Snaps
	case beatmap.Hit:
		return o.Targets.Hits
	}
	return false
}

func (o *Options) timingOnly() bool {
	return o.Mode != nil && o.Mode.timingOnly()
}
