package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/uptrace/bun"
)

func schemaObjects(t *testing.T, db *DB) []string {
	t.Helper()
	var names []string
	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT name FROM sqlite_master WHERE type IN ('table', 'index') AND name NOT LIKE 'sqlite_%' ORDER BY name`).Scan(ctx, &names)
	})
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	return names
}

func TestApplyEmbeddedMigrations_CreatesSchema(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "embedded.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply embedded migrations: %v", err)
	}

	want := map[string]bool{"accounts": false, "sessions": false, "idx_sessions_expires_at": false}
	for _, name := range schemaObjects(t, db) {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected %s after migrations", name)
		}
	}
}

func TestApplyMigrations_EmptyDirIsRepeatable(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "repeat.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	for pass := 1; pass <= 2; pass++ {
		if err := ApplyMigrations(context.Background(), db, ""); err != nil {
			t.Fatalf("apply migrations pass %d: %v", pass, err)
		}
	}
}

func TestApplyMigrations_MissingDir(t *testing.T) {
	db := openTestDB(t)
	if err := ApplyMigrations(context.Background(), db, filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing migrations dir")
	}
}
