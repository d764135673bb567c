package login

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"orgconnect/infrastructure/password"
	"orgconnect/infrastructure/sqlite"
	"orgconnect/models"
)

// ErrInvalidCredentials covers unknown emails and wrong passwords alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

func findAccountByEmail(ctx context.Context, tx bun.Tx, email string) (models.Account, error) {
	var account models.Account
	err := tx.NewSelect().
		Model(&account).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func authenticate(ctx context.Context, db *sqlite.DB, hasher *password.Hasher, email, rawPassword string) (models.User, error) {
	var account models.Account
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		var err error
		account, err = findAccountByEmail(ctx, tx, email)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load account: %w", err)
	}

	ok, err := hasher.Verify(rawPassword, account.PasswordHash)
	if err != nil {
		return models.User{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	return models.UserFromAccount(account), nil
}

// UpsertAccount stores user with a fresh hash of rawPassword, replacing
// any account with the same email.
func UpsertAccount(ctx context.Context, db *sqlite.DB, hasher *password.Hasher, user models.User, rawPassword string) error {
	if strings.TrimSpace(user.ID) == "" {
		return errors.New("account id is required")
	}
	email := strings.ToLower(strings.TrimSpace(user.Email))
	if email == "" {
		return errors.New("account email is required")
	}
	hash, err := hasher.Hash(rawPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `
INSERT INTO accounts (id, name, email, password_hash, organization, role, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(email) DO UPDATE SET
  name = excluded.name,
  password_hash = excluded.password_hash,
  organization = excluded.organization,
  role = excluded.role,
  updated_at = excluded.updated_at`, user.ID, user.Name, email, hash, user.Organization, user.Role, now, now)
		return err
	})
}
