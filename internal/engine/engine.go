package engine

import (
	"git.lost.host/meutraa/svt/internal/beatmap"
	"git.lost.host/meutraa/svt/internal/curve"
	"git.lost.host/meutraa/svt/internal/merge"
	"git.lost.host/meutraa/svt/internal/parser"
	"git.lost.host/meutraa/svt/internal/writer"
	"github.com/pkg/errors"
)

type Options struct {
	Curve      curve.Options
	MinSpacing int
	Preview    bool

	// Destination, defaults to the map itself or its preview difficulty
	Out string
}

func (o *Options) output(in string) string {
	switch {
	case o.Out != "":
		return o.Out
	case o.Preview:
		return writer.PreviewPath(in)
	}
	return in
}

type Report struct {
	Pairs     int
	Generated int
	Accepted  int
	Output    string
}

// Engine holds the state of one map between cycles. It is not safe for
// concurrent use.
type Engine struct {
	Parser parser.Parser
	Writer writer.Writer

	Timeline  *beatmap.Timeline
	Generated []*beatmap.Object
}

func New(p parser.Parser, w writer.Writer) *Engine {
	return &Engine{Parser: p, Writer: w}
}

// Load rebuilds the timeline from scratch.
func (e *Engine) Load(file string) error {
	tl, err := e.Parser.ParseFile(file)
	if nil != err {
		return err
	}
	e.Timeline = tl
	return nil
}

// Apply runs a full cycle on a fresh read of in: every pair in cmd is
// applied, the results merged, and the map written. Nothing is written
// unless every pair is valid.
func (e *Engine) Apply(in, cmd string, opts *Options) (*Report, error) {
	e.Generated = nil
	if err := opts.Curve.Validate(); nil != err {
		return nil, err
	}
	if err := e.Load(in); nil != err {
		return nil, err
	}

	pairs := curve.ParsePairs(cmd)
	if len(pairs) == 0 {
		return nil, errors.Wrap(curve.ErrFormat, "no timing point pairs given")
	}

	generated, err := curve.ApplyAll(e.Timeline, pairs, &opts.Curve)
	if nil != err {
		return nil, err
	}
	e.Generated = generated

	result, err := merge.Merge(e.Generated, e.Timeline, opts.MinSpacing)
	if nil != err {
		return nil, err
	}

	out := opts.output(in)
	accepted, err := e.Writer.Write(in, out, result, opts.Preview)
	if nil != err {
		return nil, err
	}

	return &Report{
		Pairs:     len(pairs),
		Generated: len(generated),
		Accepted:  accepted,
		Output:    out,
	}, nil
}
