package curve

import (
	"strings"

	"git.lost.host/meutraa/svt/internal/beatmap"
)

// Pair is a start and end timing point as pasted from the editor.
type Pair struct {
	Index      int
	Start, End string
}

// ParsePairs reads whitespace separated lines two at a time, a trailing
// unpaired line is ignored.
func ParsePairs(cmd string) []Pair {
	lines := strings.Fields(cmd)
	pairs := make([]Pair, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		pairs = append(pairs, Pair{Index: len(pairs), Start: lines[i], End: lines[i+1]})
	}
	if len(lines)%2 == 1 {
		beatmap.Debug.Printf("[apply] ignoring unpaired line %q", lines[len(lines)-1])
	}
	return pairs
}

func (p Pair) String() string {
	return p.Start + " -> " + p.End
}
