package beatmap

import (
	"io"
	"log"
)

// Debug receives per-line and per-point diagnostics, discarded unless enabled.
var Debug = log.New(io.Discard, "", 0)

func EnableDebug(w io.Writer) {
	Debug.SetOutput(w)
	Debug.SetFlags(log.Ltime)
}
