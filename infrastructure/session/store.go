package session

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"orgconnect/infrastructure/cache"
	"orgconnect/infrastructure/sqlite"
	"orgconnect/models"
)

// ErrNotFound is returned for unknown and expired tokens alike.
var ErrNotFound = errors.New("session not found")

// Store keeps the signed-in user object under its token in sqlite, with a
// process cache in front.
type Store struct {
	db    *sqlite.DB
	cache *cache.Map[string, models.Session]
	ttl   time.Duration
	now   func() time.Time
}

func NewStore(db *sqlite.DB, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		db:    db,
		cache: cache.New[string, models.Session](),
		ttl:   ttl,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// TTL is the lifetime of newly created sessions.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create persists user under a fresh token.
func (s *Store) Create(ctx context.Context, user models.User) (models.Session, error) {
	payload, err := json.Marshal(user)
	if err != nil {
		return models.Session{}, fmt.Errorf("encode session user: %w", err)
	}
	now := s.now()
	sess := models.Session{
		ID:        newToken(),
		UserJSON:  string(payload),
		User:      user,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	err = s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&sess).Exec(ctx)
		return err
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}
	s.cache.Add(sess.ID, sess)
	return sess, nil
}

// Load returns the session for token. Expired sessions are deleted and
// reported as ErrNotFound.
func (s *Store) Load(ctx context.Context, token string) (models.Session, error) {
	if strings.TrimSpace(token) == "" {
		return models.Session{}, ErrNotFound
	}

	sess, ok := s.cache.Get(token)
	if !ok {
		var err error
		sess, err = s.loadFromDB(ctx, token)
		if err != nil {
			return models.Session{}, err
		}
		s.cache.Add(token, sess)
	}

	if s.now().After(sess.ExpiresAt) {
		if err := s.Delete(ctx, token); err != nil {
			return models.Session{}, err
		}
		return models.Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *Store) loadFromDB(ctx context.Context, token string) (models.Session, error) {
	var sess models.Session
	err := s.db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&sess).Where("s.id = ?", token).Limit(1).Scan(ctx)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if err := json.Unmarshal([]byte(sess.UserJSON), &sess.User); err != nil {
		return models.Session{}, fmt.Errorf("decode session user: %w", err)
	}
	return sess, nil
}

// Delete clears token from the cache and the database. Deleting an unknown
// token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	s.cache.Delete(token)
	return s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().Model((*models.Session)(nil)).Where("id = ?", token).Exec(ctx)
		return err
	})
}

// PurgeExpired removes every expired row and returns the removed tokens.
func (s *Store) PurgeExpired(ctx context.Context) ([]string, error) {
	now := s.now()
	var tokens []string
	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model((*models.Session)(nil)).Column("id").Where("expires_at <= ?", now).Scan(ctx, &tokens); err != nil {
			return err
		}
		if len(tokens) == 0 {
			return nil
		}
		_, err := tx.NewDelete().Model((*models.Session)(nil)).Where("id IN (?)", bun.In(tokens)).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("purge sessions: %w", err)
	}
	for _, token := range tokens {
		s.cache.Delete(token)
	}
	return tokens, nil
}

func newToken() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
