package merge

import (
	"sort"

	"git.lost.host/meutraa/svt/internal/beatmap"
	"github.com/pkg/errors"
)

const MaxSpacing = 1000

var (
	ErrNoChanges = errors.New("no new objects to apply")
	ErrSpacing   = errors.New("min spacing cannot be negative or excessively high")
)

type Result struct {
	// Every timing point to write, sorted
	Points []*beatmap.Object
	// Generated points that survived the spacing filter
	Accepted int
}

// rank orders points at the same time: tempo lines, then generated points,
// then the original inherited lines.
func rank(o *beatmap.Object) int {
	switch o.Kind {
	case beatmap.Uninherited:
		return 0
	case beatmap.Generated:
		return 1
	}
	return 2
}

func sortPoints(points []*beatmap.Object) {
	sort.SliceStable(points, func(i, j int) bool {
		a, b := points[i], points[j]
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return rank(a) < rank(b)
	})
}

// space keeps the first point and then every point more than minSpacing
// after the last one kept.
func space(generated []*beatmap.Object, minSpacing int) []*beatmap.Object {
	sorted := make([]*beatmap.Object, len(generated))
	copy(sorted, generated)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Time != sorted[j].Time {
			return sorted[i].Time < sorted[j].Time
		}
		return sorted[i].Source < sorted[j].Source
	})

	accepted := []*beatmap.Object{}
	for _, o := range sorted {
		if len(accepted) > 0 && o.Time-accepted[len(accepted)-1].Time <= minSpacing {
			continue
		}
		accepted = append(accepted, o)
	}
	return accepted
}

// distance to the closest accepted time, times must be sorted and non-empty.
func distance(times []int, t int) int {
	i := sort.SearchInts(times, t)
	d := -1
	if i < len(times) {
		d = times[i] - t
	}
	if i > 0 && (d < 0 || t-times[i-1] < d) {
		d = t - times[i-1]
	}
	return d
}

// Merge combines generated points with the timeline's timing points.
// Tempo lines are always kept, inherited lines within minSpacing of an
// accepted point are dropped, and at most one point remains per
// (time, uninherited).
func Merge(generated []*beatmap.Object, tl *beatmap.Timeline, minSpacing int) (*Result, error) {
	if minSpacing < 0 || minSpacing > MaxSpacing {
		return nil, errors.Wrapf(ErrSpacing, "got %d, expected 0-%d", minSpacing, MaxSpacing)
	}
	if len(generated) == 0 {
		return nil, ErrNoChanges
	}

	accepted := space(generated, minSpacing)
	if len(accepted) == 0 {
		return nil, ErrNoChanges
	}
	times := make([]int, len(accepted))
	for i, o := range accepted {
		times[i] = o.Time
	}

	out := make([]*beatmap.Object, 0, len(accepted)+tl.Len())
	out = append(out, accepted...)
	for _, o := range tl.Objects {
		switch o.Kind {
		case beatmap.Uninherited:
			out = append(out, o)
		case beatmap.Inherited:
			if distance(times, o.Time) > minSpacing {
				out = append(out, o)
			} else {
				beatmap.Debug.Printf("[merge] replacing %s", o.Line)
			}
		}
	}

	sortPoints(out)
	points := out[:0]
	for _, o := range out {
		if n := len(points); n > 0 && points[n-1].Time == o.Time && points[n-1].Uninherited == o.Uninherited {
			continue
		}
		points = append(points, o)
	}

	return &Result{Points: points, Accepted: len(accepted)}, nil
}
