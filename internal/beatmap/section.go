package beatmap

import "strings"

// Section is the parser state, only two sections carry objects we read.
type Section int

const (
	SectionOther Section = iota
	SectionTimingPoints
	SectionHitObjects
)

var sectionHeaders = map[string]Section{
	"[TimingPoints]": SectionTimingPoints,
	"[HitObjects]":   SectionHitObjects,
}

func IsHeader(line string) bool {
	line = strings.TrimSpace(line)
	return len(line) > 2 && strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]")
}

// Next returns the state after reading line.
func (s Section) Next(line string) (Section, bool) {
	if !IsHeader(line) {
		return s, false
	}
	next, ok := sectionHeaders[strings.TrimSpace(line)]
	if !ok {
		return SectionOther, true
	}
	return next, true
}

func (s Section) String() string {
	switch s {
	case SectionTimingPoints:
		return "TimingPoints"
	case SectionHitObjects:
		return "HitObjects"
	}
	return "Other"
}
