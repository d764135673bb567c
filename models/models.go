package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Account is a persisted demo login.
type Account struct {
	bun.BaseModel `bun:"table:accounts,alias:a"`

	ID           string    `bun:"id,pk"`
	Name         string    `bun:"name,notnull"`
	Email        string    `bun:"email,unique,notnull"`
	PasswordHash string    `bun:"password_hash,notnull"`
	Organization string    `bun:"organization,notnull"`
	Role         string    `bun:"role,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// User is the signed-in user object. It is what gets serialized into the
// session row and handed to every page.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
}

// UserFromAccount strips credentials from an account.
func UserFromAccount(a Account) User {
	return User{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Organization: a.Organization,
		Role:         a.Role,
	}
}

// Session stores one serialized User under its token.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID        string    `bun:"id,pk"`
	UserJSON  string    `bun:"user_json,notnull"`
	User      User      `bun:"-"`
	ExpiresAt time.Time `bun:"expires_at,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Expired returns true when the session expiry time has passed.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Organization is one of the selectable organizations at registration.
type Organization struct {
	ID   string
	Name string
}
