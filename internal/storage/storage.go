package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

const driverName = "sqlite"

// ErrUnavailable wraps every failure to open, read or write the database.
var ErrUnavailable = dberr.ErrUnavailable

// Unavailable marks err as a storage failure. Nil stays nil.
func Unavailable(err error) error {
	return dberr.Wrap(err)
}

// Storage owns the database handle for the lifetime of the process.
type Storage struct {
	DB   *sql.DB
	Path string
	exec bob.DB
}

// Open creates the database directory if needed, migrates the schema and
// opens a single-connection handle to the SQLite file at cfg.DBPath.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	dbPath := cfg.DBPath
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, Unavailable(fmt.Errorf("create db directory: %w", err))
	}

	status, err := RunMigrations(dbPath)
	if err != nil {
		return nil, Unavailable(err)
	}
	logrus.WithFields(logrus.Fields{
		"path":                 dbPath,
		"preMigrationVersion":  status.PreVersion,
		"postMigrationVersion": status.PostVersion,
	}).Debug("Storage.Open.migrated")

	db, err := sql.Open(driverName, dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, Unavailable(fmt.Errorf("open sqlite database: %w", err))
	}
	// One connection serializes every read and write from this process.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, Unavailable(fmt.Errorf("ping database: %w", err))
	}

	return &Storage{
		DB:   db,
		Path: dbPath,
		exec: bob.NewDB(db),
	}, nil
}

func (s *Storage) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// Read returns readers that run outside any transaction.
func (s *Storage) Read() *Reader {
	return NewReader(s.exec)
}

// Write begins a transaction. The caller must Commit or Rollback the writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, Unavailable(fmt.Errorf("begin transaction: %w", err))
	}
	writer := NewWriter(ctx, tx)
	return &writer, nil
}
