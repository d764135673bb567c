package context

import (
	"context"

	"orgconnect/models"
)

type sessionKey struct{}

func NewContextWithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(models.Session)
	return s, ok
}

// GetUserFromContext returns the signed-in user, if any.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	s, ok := GetSessionFromContext(ctx)
	if !ok {
		return models.User{}, false
	}
	return s.User, true
}
