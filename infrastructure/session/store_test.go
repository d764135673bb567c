package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"orgconnect/infrastructure/sqlite"
	"orgconnect/models"
)

func openTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	db, err := sqlite.OpenDB(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := sqlite.ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return NewStore(db, ttl)
}

var john = models.User{ID: "1", Name: "John Smith", Email: "john@techcorp.com", Organization: "TechCorp Solutions", Role: "Project Manager"}

func TestCreateLoadRoundTripsUser(t *testing.T) {
	store := openTestStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, john)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(sess.ID) != 48 {
		t.Fatalf("expected 48 hex token, got %q", sess.ID)
	}

	// Bypass the cache so the user object comes back out of sqlite.
	store.cache.Delete(sess.ID)
	loaded, err := store.Load(ctx, sess.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.User != john {
		t.Fatalf("user did not round-trip: %+v", loaded.User)
	}
}

func TestLoadUnknownToken(t *testing.T) {
	store := openTestStore(t, time.Hour)
	for _, token := range []string{"", "missing"} {
		if _, err := store.Load(context.Background(), token); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for %q, got %v", token, err)
		}
	}
}

func TestDeleteRemovesSession(t *testing.T) {
	store := openTestStore(t, time.Hour)
	ctx := context.Background()
	sess, err := store.Create(ctx, john)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Load(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted session to be gone, got %v", err)
	}
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestExpiredSessionIsDeletedOnLoad(t *testing.T) {
	store := openTestStore(t, time.Hour)
	ctx := context.Background()
	base := time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	sess, err := store.Create(ctx, john)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	store.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, err := store.Load(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired session to be rejected, got %v", err)
	}
	store.now = func() time.Time { return base }
	if _, err := store.Load(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired session row to be deleted, got %v", err)
	}
}

func TestPurgeExpired(t *testing.T) {
	store := openTestStore(t, time.Hour)
	ctx := context.Background()
	base := time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }
	old, err := store.Create(ctx, john)
	if err != nil {
		t.Fatalf("create old: %v", err)
	}
	store.now = func() time.Time { return base.Add(90 * time.Minute) }
	fresh, err := store.Create(ctx, john)
	if err != nil {
		t.Fatalf("create fresh: %v", err)
	}

	purged, err := store.PurgeExpired(ctx)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if len(purged) != 1 || purged[0] != old.ID {
		t.Fatalf("expected only the old token purged, got %v", purged)
	}
	if _, err := store.Load(ctx, fresh.ID); err != nil {
		t.Fatalf("fresh session should survive: %v", err)
	}
}

func TestSessionCookie(t *testing.T) {
	c := SessionCookie("tok", 60)
	if c.Name != CookieName || !c.HttpOnly || c.Path != "/" || c.MaxAge != 60 {
		t.Fatalf("unexpected cookie %+v", c)
	}
	if ClearCookie().MaxAge != -1 {
		t.Fatalf("expected clear cookie to expire")
	}
}
