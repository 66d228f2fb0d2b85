package parser

import (
	"bufio"
	"io"
	"os"

	"git.lost.host/meutraa/svt/internal/beatmap"
	"github.com/pkg/errors"
)

var ErrSnapping = errors.New("snapping numerator and denominator must be > 0")

// Slider lines can be long
const maxLineLength = 16 * 1024 * 1024

// DefaultParser builds a timeline of timing points, hit objects and
// synthesized snaps. The zero value snaps every beat.
type DefaultParser struct {
	Snapping Ratio
	Barlines bool // Snap on barlines instead of Snapping
}

func (p *DefaultParser) ratio() (Ratio, error) {
	if p.Snapping == (Ratio{}) {
		return Ratio{Num: 1, Denom: 1}, nil
	}
	if !p.Snapping.Valid() {
		return p.Snapping, errors.Wrapf(ErrSnapping, "got %v/%v", p.Snapping.Num, p.Snapping.Denom)
	}
	return p.Snapping, nil
}

// usable rejects tempo lines that would stall snap synthesis.
func usable(point *beatmap.Object) bool {
	if point.Kind != beatmap.Uninherited {
		return true
	}
	return point.Beatlength > 0 && point.Meter > 0
}

func (p *DefaultParser) ParseFile(file string) (*beatmap.Timeline, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to open map")
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse never fails on content: lines that cannot be read are skipped.
func (p *DefaultParser) Parse(r io.Reader) (*beatmap.Timeline, error) {
	ratio, err := p.ratio()
	if nil != err {
		return nil, err
	}

	tl := &beatmap.Timeline{}
	snaps := newSnapper(ratio, p.Barlines)
	section := beatmap.SectionOther

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineLength)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()

		var header bool
		if section, header = section.Next(line); header {
			beatmap.Debug.Printf("[load] line %d: section %v", n, section)
			continue
		}

		switch section {
		case beatmap.SectionTimingPoints:
			if line == "" {
				continue
			}
			point, err := beatmap.ParseTimingPoint(line)
			if nil == err && !usable(point) {
				err = errors.Wrapf(beatmap.ErrFormat, "tempo line %q has no positive beatlength/meter", line)
			}
			if nil != err {
				beatmap.Debug.Printf("[load] line %d skipped: %v", n, err)
				continue
			}
			snaps.observe(tl, point)
			tl.Add(point)
		case beatmap.SectionHitObjects:
			if line == "" {
				continue
			}
			hit, err := beatmap.ParseHitObject(line)
			if nil != err {
				beatmap.Debug.Printf("[load] line %d skipped: %v", n, err)
				continue
			}
			tl.Add(hit)
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, errors.Wrap(err, "unable to read map")
	}

	snaps.finish(tl)
	tl.Sort()
	return tl, nil
}
