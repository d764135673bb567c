package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"orgconnect/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "orgconnect.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	if err := ApplyMigrations(context.Background(), db, filepath.Join(filepath.Dir(file), "migrations")); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func demoAccount(id, email string) *models.Account {
	return &models.Account{
		ID:           id,
		Name:         "Mike Chen",
		Email:        email,
		PasswordHash: "hash",
		Organization: "TechCorp Solutions",
		Role:         "Developer",
	}
}

func countSessions(t *testing.T, db *DB) int {
	t.Helper()
	var n int
	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		var err error
		n, err = tx.NewSelect().Table("sessions").Count(ctx)
		return err
	})
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	return n
}

func TestWithWriteTx_RollbackDiscardsAccountAndSession(t *testing.T) {
	db := openTestDB(t)

	boom := errors.New("boom")
	err := db.WithWriteTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(demoAccount("acct-1", "mike@techcorp.com")).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO sessions (id, user_json, expires_at) VALUES (?, ?, ?)`, "tok", `{"id":"acct-1"}`, time.Now().Add(time.Hour)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	var accounts int
	err = db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		var err error
		accounts, err = tx.NewSelect().Model((*models.Account)(nil)).Count(ctx)
		return err
	})
	if err != nil {
		t.Fatalf("count accounts: %v", err)
	}
	if accounts != 0 || countSessions(t, db) != 0 {
		t.Fatalf("rollback left rows behind: accounts=%d sessions=%d", accounts, countSessions(t, db))
	}
}

func TestWithWriteTx_CommitIsVisibleToReader(t *testing.T) {
	db := openTestDB(t)

	err := db.WithWriteTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(demoAccount("acct-2", "lisa@innovate.com")).Exec(ctx)
		return err
	})
	if err != nil {
		t.Fatalf("write tx: %v", err)
	}

	var got models.Account
	err = db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&got).Where("email = ?", "lisa@innovate.com").Scan(ctx)
	})
	if err != nil {
		t.Fatalf("read account: %v", err)
	}
	if got.ID != "acct-2" || got.Organization != "TechCorp Solutions" {
		t.Fatalf("unexpected account %+v", got)
	}
}

func TestWithWriteTx_UniqueEmail(t *testing.T) {
	db := openTestDB(t)
	insert := func(id string) error {
		return db.WithWriteTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
			_, err := tx.NewInsert().Model(demoAccount(id, "john@techcorp.com")).Exec(ctx)
			return err
		})
	}
	if err := insert("a"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := insert("b"); err == nil {
		t.Fatalf("expected duplicate email to fail")
	}
}

func TestWithReadTx_RejectsWrite(t *testing.T) {
	db := openTestDB(t)

	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO sessions (id, user_json, expires_at) VALUES (?, ?, ?)`, "ro", `{}`, time.Now())
		return err
	})
	if err == nil && countSessions(t, db) > 0 {
		t.Fatalf("write inside read tx was committed")
	}
}

func TestNilDB(t *testing.T) {
	var db *DB
	noop := func(context.Context, bun.Tx) error { return nil }
	if err := db.WithWriteTx(context.Background(), noop); err == nil {
		t.Fatalf("expected error from nil writer")
	}
	if err := db.WithReadTx(context.Background(), noop); err == nil {
		t.Fatalf("expected error from nil reader")
	}
}
