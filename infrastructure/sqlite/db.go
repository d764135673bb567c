package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// DB holds one serialized writer and a pool of query-only readers over the
// same file.
type DB struct {
	WriteSQL *sql.DB
	ReadSQL  *sql.DB
	W        *bun.DB
	R        *bun.DB
	Path     string
}

const (
	defaultReadConns   = 8
	connMaxLifetime    = 15 * time.Minute
	readConnMaxIdle    = 5 * time.Minute
	sharedDSNArguments = "_foreign_keys=on&_busy_timeout=5000"
)

// OpenDB opens path, creating its parent directory when missing.
func OpenDB(path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	wsql, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s&_txlock=immediate", path, sharedDSNArguments))
	if err != nil {
		return nil, fmt.Errorf("open write db: %w", err)
	}
	wsql.SetMaxOpenConns(1)
	wsql.SetConnMaxLifetime(connMaxLifetime)

	// The writer creates the file so the read-only pool never races a
	// missing database.
	if err := wsql.Ping(); err != nil {
		wsql.Close()
		return nil, fmt.Errorf("ping write db: %w", err)
	}

	rsql, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s&mode=ro&_query_only=1", path, sharedDSNArguments))
	if err != nil {
		wsql.Close()
		return nil, fmt.Errorf("open read db: %w", err)
	}
	rsql.SetMaxOpenConns(defaultReadConns)
	rsql.SetConnMaxIdleTime(readConnMaxIdle)
	rsql.SetConnMaxLifetime(connMaxLifetime)

	if _, err := rsql.Exec("PRAGMA query_only = ON"); err != nil {
		wsql.Close()
		rsql.Close()
		return nil, fmt.Errorf("enable read query_only: %w", err)
	}

	return &DB{
		WriteSQL: wsql,
		ReadSQL:  rsql,
		W:        bun.NewDB(wsql, sqlitedialect.New()),
		R:        bun.NewDB(rsql, sqlitedialect.New()),
		Path:     path,
	}, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	return nil
}

// Close closes read and write handles.
func (db *DB) Close() error {
	if db == nil {
		return nil
	}
	var errs []error
	if db.W != nil {
		errs = append(errs, db.W.Close())
	}
	if db.R != nil {
		errs = append(errs, db.R.Close())
	}
	return errors.Join(errs...)
}
