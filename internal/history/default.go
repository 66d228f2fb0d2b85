package history

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const DefaultPath = "svt_history.db"

var ErrClosed = errors.New("history is not open")

type DefaultRecorder struct {
	Path string
	db   *sql.DB
}

func (r *DefaultRecorder) Init() error {
	path := r.Path
	if path == "" {
		path = DefaultPath
	}
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return errors.Wrap(err, "unable to open history")
	}

	initStatement := `
	create table if not exists applies
	  (
		  id text not null primary key,
		  sum text,
		  map text,
		  output text,
		  mode text,
		  pairs integer,
		  accepted integer,
		  preview integer,
		  created integer
	  );
	create index if not exists applies_sum on applies(sum);
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create history")
	}

	r.db = db
	return nil
}

func (r *DefaultRecorder) Deinit() {
	if nil != r.db {
		r.db.Close()
		r.db = nil
	}
}

func hashMap(file string) (string, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return "", err
	}
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func absolute(file string) string {
	if abs, err := filepath.Abs(file); nil == err {
		return abs
	}
	return file
}

func (r *DefaultRecorder) Save(e *Entry) error {
	if nil == r.db {
		return ErrClosed
	}
	sum, err := hashMap(e.Output)
	if nil != err {
		return errors.Wrap(err, "unable to hash output")
	}
	e.ID = uuid.NewString()
	e.Sum = sum
	e.Map = absolute(e.Map)
	e.Output = absolute(e.Output)
	if e.Created.IsZero() {
		e.Created = time.Now()
	}

	_, err = r.db.Exec(
		"insert into applies(id, sum, map, output, mode, pairs, accepted, preview, created) values(?, ?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.Sum, e.Map, e.Output, e.Mode, e.Pairs, e.Accepted, e.Preview, e.Created.UnixNano(),
	)
	return errors.Wrap(err, "unable to save apply")
}

const columns = "id, sum, map, output, mode, pairs, accepted, preview, created"

func scan(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()
	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.ID, &e.Sum, &e.Map, &e.Output, &e.Mode, &e.Pairs, &e.Accepted, &e.Preview, &created); nil != err {
			return nil, errors.Wrap(err, "unable to read apply")
		}
		e.Created = time.Unix(0, created)
		entries = append(entries, e)
	}
	return entries, errors.Wrap(rows.Err(), "unable to read history")
}

func (r *DefaultRecorder) Load(file string, limit int) ([]Entry, error) {
	if nil == r.db {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = -1
	}
	var rows *sql.Rows
	var err error
	if file == "" {
		rows, err = r.db.Query("select "+columns+" from applies order by created desc limit ?", limit)
	} else {
		rows, err = r.db.Query("select "+columns+" from applies where map = ? order by created desc limit ?", absolute(file), limit)
	}
	if nil != err {
		return nil, errors.Wrap(err, "unable to load history")
	}
	return scan(rows)
}

func (r *DefaultRecorder) Find(file string) ([]Entry, error) {
	if nil == r.db {
		return nil, ErrClosed
	}
	sum, err := hashMap(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to hash map")
	}
	rows, err := r.db.Query("select "+columns+" from applies where sum = ? order by created desc", sum)
	if nil != err {
		return nil, errors.Wrap(err, "unable to load history")
	}
	return scan(rows)
}
