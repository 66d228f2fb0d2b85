package beatmap

import "sort"

type Timeline struct {
	Objects []*Object
}

func (t *Timeline) Add(o *Object) {
	t.Objects = append(t.Objects, o)
}

func (t *Timeline) Len() int {
	return len(t.Objects)
}

// Sort orders by time, then kind, keeping file order for ties.
func (t *Timeline) Sort() {
	sort.SliceStable(t.Objects, func(i, j int) bool {
		a, b := t.Objects[i], t.Objects[j]
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.Kind < b.Kind
	})
}

// TempoAt returns the last uninherited point at or before time, or nil.
// The timeline must be sorted.
func (t *Timeline) TempoAt(time int) *Object {
	var tempo *Object
	for _, o := range t.Objects {
		if o.Time > time {
			break
		}
		if o.Kind == Uninherited {
			tempo = o
		}
	}
	return tempo
}

// Points returns the timing points, uninherited and inherited.
func (t *Timeline) Points() []*Object {
	points := []*Object{}
	for _, o := range t.Objects {
		if o.IsTimingPoint() {
			points = append(points, o)
		}
	}
	return points
}

func (t *Timeline) Counts() map[Kind]int {
	counts := map[Kind]int{}
	for _, o := range t.Objects {
		counts[o.Kind]++
	}
	return counts
}
