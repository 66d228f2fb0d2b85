package beatmap

// Kind orders objects sharing a timestamp, lowest first.
type Kind int

const (
	Uninherited Kind = iota
	Inherited
	Snap
	Hit
	Generated
)

var kindNames = map[Kind]string{
	Uninherited: "uni",
	Inherited:   "inh",
	Snap:        "snp",
	Hit:         "hit",
	Generated:   "new",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "???"
	}
	return name
}

// Effects bits of a timing point.
const (
	EffectKiai        = 1
	EffectOmitBarline = 8
)

type Object struct {
	Kind        Kind
	Source      Kind // The kind a Generated object was computed from
	Time        int  // Milliseconds
	Beatlength  float64
	Meter       int
	SampleSet   int
	SampleIndex int
	Volume      int
	Uninherited int // 1 for tempo lines, 0 otherwise
	Effects     int

	// The serialized timing point, empty for snaps and hits
	Line string
}

func (o *Object) IsTimingPoint() bool {
	return o.Kind == Uninherited || o.Kind == Inherited
}

func (o *Object) Kiai() bool {
	return o.Effects&EffectKiai == EffectKiai
}

// BPM is only meaningful for uninherited points.
func (o *Object) BPM() float64 {
	return 60000.0 / o.Beatlength
}

// SV is only meaningful for inherited points.
func (o *Object) SV() float64 {
	return -100.0 / o.Beatlength
}
