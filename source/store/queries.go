package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/peekseq/pkg/seq"
)

const (
	createTable = `
create table if not exists %s (
	evt_id integer primary key,
	line text not null
)`
	insertLine = `insert into %s (line) values (?)`
	firstLine  = `select evt_id, line from %s where evt_id >= ? and evt_id <= ? order by evt_id asc limit 1`
	lastLine   = `select evt_id, line from %s where evt_id >= ? and evt_id <= ? order by evt_id desc limit 1`
	lineBounds = `select coalesce(min(evt_id), 0), coalesce(max(evt_id), -1) from %s`
)

// Lines returns a double-ended sequence over the lines of the named table in
// evt_id order. Both ends read from a shared window of row IDs, so the
// sequence converges: every stored line is produced exactly once no matter
// which end consumes it.
func (s *SqliteStore) Lines(table string) (seq.DoubleEnded[string], error) {
	if !tablePattern.MatchString(table) {
		return nil, fmt.Errorf("%w: %s", ErrBadTable, table)
	}
	l := &tableLines{
		db:    s.db,
		log:   s.log.Named("lines").With("table", table),
		table: table,
	}
	row := s.db.QueryRow(fmt.Sprintf(lineBounds, table))
	if err := row.Scan(&l.lo, &l.hi); err != nil {
		return nil, err
	}
	return l, nil
}

// tableLines walks a closing window [lo, hi] of row IDs. An empty table
// starts with lo > hi, which reads as already exhausted.
type tableLines struct {
	db     *sql.DB
	log    hclog.Logger
	table  string
	lo, hi int64
}

func (l *tableLines) Next() (string, error) {
	if l.lo > l.hi {
		return seq.End[string]()
	}
	row := l.db.QueryRow(fmt.Sprintf(firstLine, l.table), l.lo, l.hi)
	var (
		id   int64
		line string
	)
	if err := row.Scan(&id, &line); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.lo = l.hi + 1
			return seq.End[string]()
		}
		l.log.Error("Failed to read next line", "error", err)
		return seq.Err[string](err)
	}
	l.lo = id + 1
	return line, nil
}

func (l *tableLines) NextBack() (string, error) {
	if l.lo > l.hi {
		return seq.End[string]()
	}
	row := l.db.QueryRow(fmt.Sprintf(lastLine, l.table), l.lo, l.hi)
	var (
		id   int64
		line string
	)
	if err := row.Scan(&id, &line); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.hi = l.lo - 1
			return seq.End[string]()
		}
		l.log.Error("Failed to read last line", "error", err)
		return seq.Err[string](err)
	}
	l.hi = id - 1
	return line, nil
}
