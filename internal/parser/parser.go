package parser

import (
	"io"

	"git.lost.host/meutraa/svt/internal/beatmap"
)

type Parser interface {
	Parse(r io.Reader) (*beatmap.Timeline, error)
	ParseFile(file string) (*beatmap.Timeline, error)
}
