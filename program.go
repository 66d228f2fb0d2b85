package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/svt/internal/beatmap"
	"git.lost.host/meutraa/svt/internal/config"
	"git.lost.host/meutraa/svt/internal/engine"
	"git.lost.host/meutraa/svt/internal/history"
	"git.lost.host/meutraa/svt/internal/swap"
	"git.lost.host/meutraa/svt/internal/writer"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

var (
	ErrNotOsu   = errors.New("please select a .osu file")
	ErrNoRecord = errors.New("history is unavailable")
)

type Program struct {
	Config       *config.Config
	SettingsPath string
	Stdin        *os.File

	Engine   *engine.Engine
	Recorder history.Recorder
}

// Init never fails, a missing history only disables recording.
func (p *Program) Init() {
	p.Engine = engine.New(p.Config.Parser(), &writer.DefaultWriter{BackupPath: p.Config.Backup})

	recorder := &history.DefaultRecorder{Path: p.Config.History}
	if err := recorder.Init(); nil != err {
		log.Println("history disabled:", err)
		return
	}
	p.Recorder = recorder
}

func (p *Program) Deinit() {
	if nil != p.Recorder {
		p.Recorder.Deinit()
	}
}

func checkMap(file string) error {
	if filepath.Ext(file) != ".osu" {
		return errors.Wrap(ErrNotOsu, file)
	}
	return nil
}

// readPairs reads timing point lines until EOF.
func readPairs(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if nil != err {
		return "", errors.Wrap(err, "unable to read timing points")
	}
	return string(data), nil
}

// pairs collects the reference lines from the arguments, a file, or stdin.
func (p *Program) pairs() (string, error) {
	if len(p.Config.Points) > 0 {
		return strings.Join(p.Config.Points, "\n"), nil
	}
	if file := p.Config.PairsFile; file != "" && file != "-" {
		f, err := os.Open(file)
		if nil != err {
			return "", errors.Wrap(err, "unable to open timing points")
		}
		defer f.Close()
		return readPairs(f)
	}
	if term.IsTerminal(int(p.Stdin.Fd())) {
		pterm.Info.Println("Paste timing points, two lines per pair, then Ctrl-D")
	}
	return readPairs(p.Stdin)
}

func (p *Program) Apply() error {
	in := p.Config.Map
	if err := checkMap(in); nil != err {
		return err
	}
	opts, err := p.Config.EngineOptions()
	if nil != err {
		return err
	}
	cmd, err := p.pairs()
	if nil != err {
		return err
	}

	report, err := p.Engine.Apply(in, cmd, opts)
	if nil != err {
		return err
	}
	pterm.Success.Printf("%d changes applied to %s\n", report.Accepted, report.Output)
	if report.Accepted < report.Generated {
		pterm.Info.Printf("%d of %d points were closer than %dms\n",
			report.Generated-report.Accepted, report.Generated, opts.MinSpacing)
	}

	if err := p.Config.Settings().Save(p.SettingsPath); nil != err {
		log.Println("unable to save settings", err)
	}
	if nil != p.Recorder {
		entry := &history.Entry{
			Map:      in,
			Output:   report.Output,
			Mode:     p.Config.Mode,
			Pairs:    report.Pairs,
			Accepted: report.Accepted,
			Preview:  opts.Preview,
		}
		if err := p.Recorder.Save(entry); nil != err {
			log.Println("unable to record apply", err)
		}
	}
	return nil
}

func describe(o *beatmap.Object) string {
	if o.Kind == beatmap.Uninherited {
		return fmt.Sprintf("%.2f bpm", o.BPM())
	}
	return fmt.Sprintf("%.2fx", o.SV())
}

func (p *Program) Inspect() error {
	in := p.Config.Map
	if err := checkMap(in); nil != err {
		return err
	}
	if err := p.Engine.Load(in); nil != err {
		return err
	}
	tl := p.Engine.Timeline

	pterm.DefaultHeader.WithFullWidth().Println(filepath.Base(in))
	counts := tl.Counts()
	summary := pterm.TableData{{"Kind", "Count"}}
	for _, kind := range []beatmap.Kind{beatmap.Uninherited, beatmap.Inherited, beatmap.Snap, beatmap.Hit} {
		summary = append(summary, []string{kind.String(), fmt.Sprint(counts[kind])})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(summary).Render(); nil != err {
		return err
	}

	points := pterm.TableData{{"Time", "Kind", "Value", "Volume", "Kiai"}}
	for _, o := range tl.Points() {
		kiai := ""
		if o.Kiai() {
			kiai = "yes"
		}
		points = append(points, []string{
			fmt.Sprint(o.Time), o.Kind.String(), describe(o), fmt.Sprint(o.Volume), kiai,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(points).Render(); nil != err {
		return err
	}

	if nil != p.Recorder {
		entries, err := p.Recorder.Find(in)
		if nil != err {
			log.Println("unable to search history", err)
		} else if len(entries) > 0 {
			last := entries[0]
			pterm.Info.Printf("Unchanged since %s apply of %d points at %s\n",
				last.Mode, last.Accepted, last.Created.Format("2006-01-02 15:04:05"))
		}
	}
	return nil
}

func (p *Program) History() error {
	if nil == p.Recorder {
		return ErrNoRecord
	}
	entries, err := p.Recorder.Load(p.Config.Map, p.Config.Limit)
	if nil != err {
		return err
	}
	if len(entries) == 0 {
		pterm.Info.Println("No applies recorded")
		return nil
	}

	rows := pterm.TableData{{"When", "Mode", "Pairs", "Changes", "Output"}}
	for _, e := range entries {
		output := filepath.Base(e.Output)
		if e.Preview {
			output += " (preview)"
		}
		rows = append(rows, []string{
			e.Created.Format("2006-01-02 15:04:05"), e.Mode, fmt.Sprint(e.Pairs), fmt.Sprint(e.Accepted), output,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// Undo trades the map with the backup, running it twice redoes the apply.
func (p *Program) Undo() error {
	in := p.Config.Map
	if err := checkMap(in); nil != err {
		return err
	}
	if err := swap.Exchange(in, p.Config.Backup); nil != err {
		return err
	}
	pterm.Success.Printf("Swapped %s with %s\n", filepath.Base(in), p.Config.Backup)
	return nil
}
