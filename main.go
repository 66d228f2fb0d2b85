package main

import (
	"log"
	"os"

	"git.lost.host/meutraa/svt/internal/beatmap"
	"git.lost.host/meutraa/svt/internal/config"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	settingsPath := config.SettingsPath()
	settings, err := config.LoadSettings(settingsPath)
	if nil != err {
		return err
	}

	c := config.New(settings)
	command, err := c.Parse(args)
	if nil != err {
		return err
	}
	if c.Verbose {
		beatmap.EnableDebug(os.Stderr)
	}

	p := &Program{Config: c, SettingsPath: settingsPath, Stdin: os.Stdin}
	p.Init()
	defer p.Deinit()

	switch command {
	case config.CommandInspect:
		return p.Inspect()
	case config.CommandHistory:
		return p.History()
	case config.CommandUndo:
		return p.Undo()
	}
	return p.Apply()
}
