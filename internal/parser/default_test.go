package parser

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/svt/internal/beatmap"
	"git.lost.host/meutraa/svt/internal/testdata"
	"github.com/pkg/errors"
)

func times(tl *beatmap.Timeline, kind beatmap.Kind) []int {
	ts := []int{}
	for _, o := range tl.Objects {
		if o.Kind == kind {
			ts = append(ts, o.Time)
		}
	}
	return ts
}

func equal(p, q []int) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

type snapTest struct {
	parser   DefaultParser
	expected []int
}

var snapTests = []snapTest{
	{DefaultParser{}, []int{0, 500, 1000, 1500, 2000, 2500, 3000, 3500, 4000, 4400, 4800, 5200}},
	{DefaultParser{Snapping: Ratio{Num: 2, Denom: 1}}, []int{0, 1000, 2000, 3000, 4000, 4800}},
	{DefaultParser{Barlines: true}, []int{0, 2000}},
}

func TestParseSnaps(t *testing.T) {
	for _, test := range snapTests {
		tl, err := test.parser.Parse(strings.NewReader(testdata.Sample))
		if nil != err {
			t.Fatal(err)
		}
		snaps := times(tl, beatmap.Snap)
		if !equal(snaps, test.expected) {
			t.Log("parser  ", test.parser)
			t.Log("snaps   ", snaps)
			t.Log("expected", test.expected)
			t.Fail()
		}
	}
}

func TestParseSample(t *testing.T) {
	p := DefaultParser{}
	tl, err := p.Parse(strings.NewReader(testdata.Sample))
	if nil != err {
		t.Fatal(err)
	}

	if ts := times(tl, beatmap.Uninherited); !equal(ts, []int{0, 4000}) {
		t.Errorf("uninherited %v", ts)
	}
	if ts := times(tl, beatmap.Inherited); !equal(ts, []int{1000, 2000, 4500}) {
		t.Errorf("inherited %v", ts)
	}
	if ts := times(tl, beatmap.Hit); !equal(ts, []int{500, 1500, 2500, 4400}) {
		t.Errorf("hits %v", ts)
	}

	// Sorted by time, then kind
	for i := 1; i < tl.Len(); i++ {
		a, b := tl.Objects[i-1], tl.Objects[i]
		if a.Time > b.Time || (a.Time == b.Time && a.Kind > b.Kind) {
			t.Errorf("unsorted at %d: %v %v", i, a, b)
		}
	}

	if tl.Objects[0].Line != "0,500,4,2,0,100,1,0" {
		t.Errorf("raw line not kept: %q", tl.Objects[0].Line)
	}
}

const malformed = `[TimingPoints]
0,500,4,2,0,100,1,0
this is not a timing point
500,-100,4,2,0,100,0
750,-100,4,2,0,100,0,0
1000,0,4,2,0,100,1,0

[HitObjects]
1,2
256,192,800,1,0,0:0:0:0:
`

func TestParseSkipsMalformedLines(t *testing.T) {
	p := DefaultParser{}
	tl, err := p.Parse(strings.NewReader(malformed))
	if nil != err {
		t.Fatal(err)
	}
	if ts := times(tl, beatmap.Uninherited); !equal(ts, []int{0}) {
		t.Errorf("uninherited %v", ts)
	}
	if ts := times(tl, beatmap.Inherited); !equal(ts, []int{750}) {
		t.Errorf("inherited %v", ts)
	}
	if ts := times(tl, beatmap.Hit); !equal(ts, []int{800}) {
		t.Errorf("hits %v", ts)
	}
}

func TestParseEmpty(t *testing.T) {
	p := DefaultParser{}
	for _, contents := range []string{"", "osu file format v14\n[TimingPoints]\n0,50", "[General]\nMode: 1\n"} {
		tl, err := p.Parse(strings.NewReader(contents))
		if nil != err {
			t.Errorf("%q: %v", contents, err)
			continue
		}
		if tl.Len() != 0 {
			t.Errorf("%q: expected empty timeline, got %d objects", contents, tl.Len())
		}
	}
}

func TestParseInvalidSnapping(t *testing.T) {
	p := DefaultParser{Snapping: Ratio{Num: 1, Denom: -4}}
	if _, err := p.Parse(strings.NewReader(testdata.Sample)); !errors.Is(err, ErrSnapping) {
		t.Errorf("expected snapping error, got %v", err)
	}
}

func TestParseFileMissing(t *testing.T) {
	p := DefaultParser{}
	if _, err := p.ParseFile("does/not/exist.osu"); nil == err {
		t.Error("expected an error")
	}
}
