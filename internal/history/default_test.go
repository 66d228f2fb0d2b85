package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/svt/internal/testdata"
	"github.com/pkg/errors"
)

func open(t *testing.T) (*DefaultRecorder, string) {
	t.Helper()
	dir := t.TempDir()
	r := &DefaultRecorder{Path: filepath.Join(dir, "history.db")}
	if err := r.Init(); nil != err {
		t.Fatal(err)
	}
	t.Cleanup(r.Deinit)
	return r, dir
}

func TestSaveLoad(t *testing.T) {
	r, dir := open(t)
	hard, err := testdata.Write(dir, "map [Hard].osu", testdata.Sample)
	if nil != err {
		t.Fatal(err)
	}
	normal, err := testdata.Write(dir, "map [Normal].osu", testdata.Scenario)
	if nil != err {
		t.Fatal(err)
	}

	base := time.Unix(1700000000, 0)
	entries := []*Entry{
		{Map: hard, Output: hard, Mode: "linear", Pairs: 1, Accepted: 4, Created: base},
		{Map: normal, Output: normal, Mode: "flat", Pairs: 2, Accepted: 3, Created: base.Add(time.Second)},
		{Map: hard, Output: hard, Mode: "none", Pairs: 1, Accepted: 2, Preview: true, Created: base.Add(2 * time.Second)},
	}
	for _, e := range entries {
		if err := r.Save(e); nil != err {
			t.Fatal(err)
		}
		if e.ID == "" || e.Sum == "" {
			t.Errorf("entry not filled in: %+v", e)
		}
	}
	if entries[0].ID == entries[2].ID {
		t.Error("ids repeat")
	}

	all, err := r.Load("", 0)
	if nil != err {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].ID != entries[2].ID || all[2].ID != entries[0].ID {
		t.Fatalf("expected newest first, got %+v", all)
	}
	if !all[0].Preview || all[0].Mode != "none" || !all[0].Created.Equal(entries[2].Created) {
		t.Errorf("got %+v", all[0])
	}

	limited, err := r.Load("", 1)
	if nil != err || len(limited) != 1 {
		t.Errorf("limit: %v %v", limited, err)
	}

	// Relative and absolute paths name the same map
	wd, err := os.Getwd()
	if nil != err {
		t.Fatal(err)
	}
	rel, err := filepath.Rel(wd, hard)
	if nil != err {
		t.Fatal(err)
	}
	byMap, err := r.Load(rel, 10)
	if nil != err {
		t.Fatal(err)
	}
	if len(byMap) != 2 {
		t.Errorf("expected 2 applies to %s, got %d", rel, len(byMap))
	}
}

func TestFind(t *testing.T) {
	r, dir := open(t)
	file, err := testdata.Write(dir, "map [Hard].osu", testdata.Sample)
	if nil != err {
		t.Fatal(err)
	}
	if err := r.Save(&Entry{Map: file, Output: file, Mode: "linear"}); nil != err {
		t.Fatal(err)
	}

	found, err := r.Find(file)
	if nil != err || len(found) != 1 {
		t.Fatalf("found %v %v", found, err)
	}

	// Edited since the apply
	if _, err := testdata.Write(dir, "map [Hard].osu", testdata.Scenario); nil != err {
		t.Fatal(err)
	}
	found, err = r.Find(file)
	if nil != err || len(found) != 0 {
		t.Errorf("found %v %v", found, err)
	}
}

func TestClosed(t *testing.T) {
	r := &DefaultRecorder{}
	if err := r.Save(&Entry{}); !errors.Is(err, ErrClosed) {
		t.Errorf("save: %v", err)
	}
	if _, err := r.Load("", 1); !errors.Is(err, ErrClosed) {
		t.Errorf("load: %v", err)
	}
	r.Deinit()
}

func TestSaveMissingOutput(t *testing.T) {
	r, dir := open(t)
	if err := r.Save(&Entry{Output: filepath.Join(dir, "missing.osu")}); nil == err {
		t.Error("expected an error")
	}
}
