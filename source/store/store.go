package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/peekseq/pkg/seq"
	_ "modernc.org/sqlite"
)

// SqliteStore is a store for line sequences using Sqlite3 as a storage engine.
// Stored tables can be read back from either end, which makes them usable as
// double-ended peek buffer sources.
type SqliteStore struct {
	db  *sql.DB
	log hclog.Logger
}

func NewStore(log hclog.Logger, filename string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return nil, err
	}
	log = log.Named("sqlite-line-store")
	return &SqliteStore{
		db:  db,
		log: log,
	}, nil
}

var (
	tablePattern = regexp.MustCompile(`^[\w\d]+(\.[\w\d]+)?$`)
	ErrBadTable  = errors.New("invalid table name")
)

// Sink behaves the same as SinkCtx, except that it will use context.Background as the context.
func (s *SqliteStore) Sink(src seq.Seq[string], table string) error {
	return s.SinkCtx(context.Background(), src, table)
}

// SinkCtx appends each line of the sequence to the named table, creating it if necessary.
// In case of an error, SinkCtx will drain the sequence to prevent upstream blocking.
func (s *SqliteStore) SinkCtx(ctx context.Context, src seq.Seq[string], table string) error {
	if !tablePattern.MatchString(table) {
		seq.Drain(src)
		return fmt.Errorf("%w: %s", ErrBadTable, table)
	}
	s.log.Debug("Establishing connection")
	conn, err := s.db.Conn(ctx)
	if err != nil {
		seq.Drain(src)
		return err
	}
	s.log.Debug("Ensuring the specified table is present")
	if err := s.ensureTable(ctx, conn, table); err != nil {
		seq.Drain(src)
		_ = conn.Close()
		return err
	}

	s.log.Debug("Starting sink operation")
	s.sink(ctx, conn, table, src)
	return nil
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}

func (s *SqliteStore) ensureTable(ctx context.Context, conn *sql.Conn, table string) error {
	_, err := conn.ExecContext(ctx, fmt.Sprintf(createTable, table))
	return err
}

func (s *SqliteStore) sink(ctx context.Context, conn *sql.Conn, table string, src seq.Seq[string]) {
	log := s.log.With("table", table).Named("sink")
	cancelled := false

	defer func() {
		_ = conn.Close()
		log.Debug("DB connection closed")
	}()

	go func() {
		<-ctx.Done()
		log.Debug("Context cancelled")
		cancelled = true
	}()

	stmt, err := conn.PrepareContext(ctx, fmt.Sprintf(insertLine, table))
	if err != nil {
		log.Error("Failed to prepare insert statement", "error", err)
		seq.Drain(src)
		return
	}
	defer func() {
		_ = stmt.Close()
	}()

	err = seq.Iterate(src, func(line string, i int) error {
		log.Debug("Received line", "line", line)
		if cancelled {
			return seq.ErrAtEnd
		}
		_, err := stmt.ExecContext(ctx, line)
		if err != nil {
			log.Error("Failed to insert into table", "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		log.Error("Error sinking to DB, draining sequence", "error", err)
		seq.Drain(src)
		return
	}
}
