package config

import (
	"strconv"

	"git.lost.host/meutraa/svt/internal/curve"
	"git.lost.host/meutraa/svt/internal/engine"
	"git.lost.host/meutraa/svt/internal/parser"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	CommandApply   = "apply"
	CommandInspect = "inspect"
	CommandHistory = "history"
	CommandUndo    = "undo"
)

// Config is the parsed command line. Flag defaults come from the saved
// settings.
type Config struct {
	app *kingpin.Application

	Map string

	// apply
	Points      []string
	PairsFile   string
	Mode        string
	Exponent    float64
	FlatChange  float64
	FlatScale   float64
	FlatScaling bool
	FitEndRatio float64
	Volume      bool
	Hits        bool
	Snaps       bool
	Inherited   bool
	Offset      int
	Buffer      int
	MinSpacing  int
	IgnoreEnd   bool
	Preview     bool
	Out         string

	// history
	Limit int

	SnapNum   float64
	SnapDenom float64
	Barlines  bool
	Backup    string
	History   string
	Verbose   bool
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func mapArg(cmd *kingpin.CmdClause, s *Settings, target *string) {
	arg := cmd.Arg("map", "osu! beatmap (.osu) file")
	if s.Map != "" {
		arg = arg.Default(s.Map)
	} else {
		arg = arg.Required()
	}
	arg.StringVar(target)
}

func New(s *Settings) *Config {
	c := &Config{}
	app := kingpin.New("svt", "Slider velocity and volume interpolation for osu! timing points")
	app.Version("0.1.0")
	c.app = app

	app.Flag("snap-num", "Snapping numerator").Default(formatFloat(s.SnapNum)).Float64Var(&c.SnapNum)
	app.Flag("snap-denom", "Snapping denominator, 1/4 snaps every quarter beat").Default(formatFloat(s.SnapDenom)).Float64Var(&c.SnapDenom)
	app.Flag("barlines", "Snap on barlines instead").Default(strconv.FormatBool(s.Barlines)).BoolVar(&c.Barlines)
	app.Flag("backup", "Backup file written before every change").Default(s.Backup).StringVar(&c.Backup)
	app.Flag("history", "Apply history database").Default(s.History).StringVar(&c.History)
	app.Flag("verbose", "Print every loaded and generated point").Short('v').BoolVar(&c.Verbose)

	apply := app.Command(CommandApply, "Interpolate between pairs of timing points").Default()
	mapArg(apply, s, &c.Map)
	apply.Arg("points", "Timing point lines, two per pair. Put -- before them when a time is negative").StringsVar(&c.Points)
	apply.Flag("pairs", "Read timing point lines from a file, - for stdin").Short('p').StringVar(&c.PairsFile)
	modes := append([]string{ModeNone}, curve.ModeNames...)
	apply.Flag("mode", "Sv curve, none changes volume only").Default(s.Mode).Short('m').EnumVar(&c.Mode, modes...)
	apply.Flag("exponent", "Polynomial exponent").Default(formatFloat(s.Exponent)).Short('e').Float64Var(&c.Exponent)
	apply.Flag("flat-change", "Flat sv added to every inherited line").Default(formatFloat(s.FlatChange)).Float64Var(&c.FlatChange)
	apply.Flag("flat-scale", "Flat sv multiplier, with --flat-scaling").Default(formatFloat(s.FlatScale)).Float64Var(&c.FlatScale)
	apply.Flag("flat-scaling", "Scale inherited lines instead of shifting them").Default(strconv.FormatBool(s.FlatScaling)).BoolVar(&c.FlatScaling)
	apply.Flag("fit-end", "Linear fit multiplier reached at the end point").Default(formatFloat(s.FitEndRatio)).Float64Var(&c.FitEndRatio)
	apply.Flag("volume", "Interpolate volume").Default(strconv.FormatBool(s.Volume)).BoolVar(&c.Volume)
	apply.Flag("hits", "Place points on hit objects").Default(strconv.FormatBool(s.Hits)).BoolVar(&c.Hits)
	apply.Flag("snaps", "Place points on snaps or barlines").Default(strconv.FormatBool(s.Snaps)).BoolVar(&c.Snaps)
	apply.Flag("inherited", "Rewrite existing inherited lines").Default(strconv.FormatBool(s.Inherited)).BoolVar(&c.Inherited)
	apply.Flag("offset", "Milliseconds added to every generated point").Default(strconv.Itoa(s.Offset)).Short('o').IntVar(&c.Offset)
	apply.Flag("buffer", "Milliseconds the window extends past each end").Default(strconv.Itoa(s.Buffer)).Short('b').IntVar(&c.Buffer)
	apply.Flag("min-spacing", "Minimum milliseconds between generated points").Default(strconv.Itoa(s.MinSpacing)).Short('s').IntVar(&c.MinSpacing)
	apply.Flag("ignore-end-bpm", "Use the start tempo for the end point").Default(strconv.FormatBool(s.IgnoreEndBPM)).BoolVar(&c.IgnoreEnd)
	apply.Flag("preview", "Write a [preview] difficulty instead of the map").BoolVar(&c.Preview)
	apply.Flag("out", "Write to this file instead").StringVar(&c.Out)

	inspect := app.Command(CommandInspect, "Summarize the objects and timing points of a map")
	mapArg(inspect, s, &c.Map)

	history := app.Command(CommandHistory, "List previous applies")
	history.Arg("map", "Only show applies to this map").StringVar(&c.Map)
	history.Flag("limit", "Maximum rows").Default("20").Short('n').IntVar(&c.Limit)

	undo := app.Command(CommandUndo, "Swap the map with the backup")
	mapArg(undo, s, &c.Map)

	return c
}

// Parse returns the selected command.
func (c *Config) Parse(args []string) (string, error) {
	return c.app.Parse(args)
}

func (c *Config) Parser() *parser.DefaultParser {
	return &parser.DefaultParser{
		Snapping: parser.Ratio{Num: c.SnapNum, Denom: c.SnapDenom},
		Barlines: c.Barlines,
	}
}

func (c *Config) modeName() string {
	if c.Mode == ModeNone {
		return ""
	}
	return c.Mode
}

func (c *Config) EngineOptions() (*engine.Options, error) {
	mode, err := curve.NewMode(c.modeName(), curve.ModeParams{
		Exponent:    c.Exponent,
		FlatChange:  c.FlatChange,
		FlatScale:   c.FlatScale,
		FlatScaling: c.FlatScaling,
		FitEndRatio: c.FitEndRatio,
	})
	if nil != err {
		return nil, err
	}
	return &engine.Options{
		Curve: curve.Options{
			Mode:         mode,
			Targets:      curve.Targets{Hits: c.Hits, Snaps: c.Snaps, Inherited: c.Inherited},
			Volume:       c.Volume,
			Offset:       c.Offset,
			Buffer:       c.Buffer,
			IgnoreEndBPM: c.IgnoreEnd,
		},
		MinSpacing: c.MinSpacing,
		Preview:    c.Preview,
		Out:        c.Out,
	}, nil
}

// Settings folds the parsed values back for saving.
func (c *Config) Settings() *Settings {
	return &Settings{
		Map:          c.Map,
		Mode:         c.Mode,
		Exponent:     c.Exponent,
		FlatChange:   c.FlatChange,
		FlatScale:    c.FlatScale,
		FlatScaling:  c.FlatScaling,
		FitEndRatio:  c.FitEndRatio,
		Volume:       c.Volume,
		Hits:         c.Hits,
		Snaps:        c.Snaps,
		Inherited:    c.Inherited,
		Offset:       c.Offset,
		Buffer:       c.Buffer,
		MinSpacing:   c.MinSpacing,
		IgnoreEndBPM: c.IgnoreEnd,
		SnapNum:      c.SnapNum,
		SnapDenom:    c.SnapDenom,
		Barlines:     c.Barlines,
		Backup:       c.Backup,
		History:      c.History,
	}
}
