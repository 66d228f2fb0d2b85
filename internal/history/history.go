package history

import "time"

// Recorder keeps a log of applied cycles.
type Recorder interface {
	Init() error
	Deinit()

	// Save records an apply whose result was written to entry.Output
	Save(entry *Entry) error

	// Load lists the latest applies, to file when it is not empty
	Load(file string, limit int) ([]Entry, error)

	// Find returns the applies that produced the current contents of file
	Find(file string) ([]Entry, error)
}

type Entry struct {
	ID       string
	Sum      string // Of the written output
	Map      string
	Output   string
	Mode     string
	Pairs    int
	Accepted int
	Preview  bool
	Created  time.Time
}
