package merge

import (
	"testing"

	"git.lost.host/meutraa/svt/internal/beatmap"
	"github.com/pkg/errors"
)

func gen(times ...int) []*beatmap.Object {
	points := []*beatmap.Object{}
	for _, t := range times {
		o := &beatmap.Object{Kind: beatmap.Generated, Source: beatmap.Hit, Time: t, Beatlength: -100, Meter: 4, Volume: 100}
		o.Line = beatmap.FormatTimingPoint(o)
		points = append(points, o)
	}
	return points
}

func timeline(points ...beatmap.Object) *beatmap.Timeline {
	tl := &beatmap.Timeline{}
	for i := range points {
		o := points[i]
		if o.Kind == beatmap.Uninherited {
			o.Uninherited = 1
		}
		o.Line = beatmap.FormatTimingPoint(&o)
		tl.Add(&o)
	}
	tl.Add(&beatmap.Object{Kind: beatmap.Hit, Time: 1000})
	tl.Add(&beatmap.Object{Kind: beatmap.Snap, Time: 1000})
	tl.Sort()
	return tl
}

func assertUnique(t *testing.T, points []*beatmap.Object) {
	t.Helper()
	type key struct{ time, uninherited int }
	seen := map[key]bool{}
	for _, p := range points {
		k := key{p.Time, p.Uninherited}
		if seen[k] {
			t.Errorf("duplicate point %v", k)
		}
		seen[k] = true
	}
}

func TestMergeSpacing(t *testing.T) {
	tl := timeline(beatmap.Object{Kind: beatmap.Uninherited, Time: 0, Beatlength: 500})
	generated := gen(1010, 1000, 1003, 1006, 1020, 1020, 1100)

	type spacingTest struct {
		spacing  int
		expected []int
	}
	for _, test := range []spacingTest{
		{0, []int{1000, 1003, 1006, 1010, 1020, 1100}},
		{5, []int{1000, 1006, 1020, 1100}},
		{10, []int{1000, 1020, 1100}},
		{1000, []int{1000}},
	} {
		result, err := Merge(generated, tl, test.spacing)
		if nil != err {
			t.Fatal(err)
		}
		if result.Accepted != len(test.expected) {
			t.Errorf("spacing %d: accepted %d, expected %d", test.spacing, result.Accepted, len(test.expected))
			continue
		}
		gens := []int{}
		for _, p := range result.Points {
			if p.Kind == beatmap.Generated {
				gens = append(gens, p.Time)
			}
		}
		for i, time := range test.expected {
			if gens[i] != time {
				t.Errorf("spacing %d: got %v, expected %v", test.spacing, gens, test.expected)
				break
			}
		}
		for i := 1; i < len(gens); i++ {
			if gens[i]-gens[i-1] <= test.spacing {
				t.Errorf("spacing %d violated by %d -> %d", test.spacing, gens[i-1], gens[i])
			}
		}
		assertUnique(t, result.Points)
	}
}

func TestMergeKeepsTempoLines(t *testing.T) {
	tl := timeline(
		beatmap.Object{Kind: beatmap.Uninherited, Time: 0, Beatlength: 500},
		beatmap.Object{Kind: beatmap.Uninherited, Time: 1000, Beatlength: 400},
		beatmap.Object{Kind: beatmap.Inherited, Time: 1000, Beatlength: -50},
		beatmap.Object{Kind: beatmap.Inherited, Time: 1004, Beatlength: -50},
		beatmap.Object{Kind: beatmap.Inherited, Time: 2000, Beatlength: -50},
	)
	result, err := Merge(gen(1000), tl, 5)
	if nil != err {
		t.Fatal(err)
	}

	expected := []struct {
		time int
		kind beatmap.Kind
	}{
		{0, beatmap.Uninherited},
		{1000, beatmap.Uninherited},
		{1000, beatmap.Generated},
		{2000, beatmap.Inherited},
	}
	if len(result.Points) != len(expected) {
		for _, p := range result.Points {
			t.Log(p.Kind, p.Line)
		}
		t.Fatalf("got %d points, expected %d", len(result.Points), len(expected))
	}
	for i, e := range expected {
		p := result.Points[i]
		if p.Time != e.time || p.Kind != e.kind {
			t.Errorf("point %d: got %v %d, expected %v %d", i, p.Kind, p.Time, e.kind, e.time)
		}
	}
	assertUnique(t, result.Points)
}

func TestMergeNearestSuppression(t *testing.T) {
	// 1496 is closest to the second accepted point, not the first
	tl := timeline(
		beatmap.Object{Kind: beatmap.Uninherited, Time: 0, Beatlength: 500},
		beatmap.Object{Kind: beatmap.Inherited, Time: 1496, Beatlength: -50},
		beatmap.Object{Kind: beatmap.Inherited, Time: 1250, Beatlength: -50},
	)
	result, err := Merge(gen(1000, 1500), tl, 10)
	if nil != err {
		t.Fatal(err)
	}
	for _, p := range result.Points {
		if p.Kind == beatmap.Inherited && p.Time == 1496 {
			t.Error("inherited point within spacing was kept")
		}
	}
	if len(result.Points) != 4 {
		t.Errorf("expected 4 points, got %d", len(result.Points))
	}
}

func TestMergeSameTimeGenerated(t *testing.T) {
	tl := timeline(beatmap.Object{Kind: beatmap.Uninherited, Time: 0, Beatlength: 500})
	generated := append(gen(1000), gen(1000)...)
	generated[1].Volume = 50
	result, err := Merge(generated, tl, 0)
	if nil != err {
		t.Fatal(err)
	}
	if result.Accepted != 1 || len(result.Points) != 2 {
		t.Errorf("accepted %d, points %d", result.Accepted, len(result.Points))
	}
}

func TestMergeErrors(t *testing.T) {
	tl := timeline(beatmap.Object{Kind: beatmap.Uninherited, Time: 0, Beatlength: 500})
	if _, err := Merge(nil, tl, 0); !errors.Is(err, ErrNoChanges) {
		t.Errorf("expected no changes, got %v", err)
	}
	if _, err := Merge(gen(1000), tl, -1); !errors.Is(err, ErrSpacing) {
		t.Errorf("expected spacing error, got %v", err)
	}
	if _, err := Merge(gen(1000), tl, MaxSpacing+1); !errors.Is(err, ErrSpacing) {
		t.Errorf("expected spacing error, got %v", err)
	}
}

var distanceTests = map[int]int{0: 1000, 1000: 0, 1200: 200, 1400: 100, 1500: 0, 9000: 7500}

func TestDistance(t *testing.T) {
	times := []int{1000, 1500}
	for time, expected := range distanceTests {
		if d := distance(times, time); d != expected {
			t.Errorf("%d: got %d, expected %d", time, d, expected)
		}
	}
}
