package context

import (
	"context"
	"testing"

	"orgconnect/models"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := NewContextWithSession(context.Background(), models.Session{ID: "tok", User: models.User{Name: "John Smith"}})
	s, ok := GetSessionFromContext(ctx)
	if !ok || s.ID != "tok" {
		t.Fatalf("expected session on context, got %+v ok=%v", s, ok)
	}
	u, ok := GetUserFromContext(ctx)
	if !ok || u.Name != "John Smith" {
		t.Fatalf("expected user on context, got %+v ok=%v", u, ok)
	}
	if _, ok := GetUserFromContext(context.Background()); ok {
		t.Fatalf("expected no user on empty context")
	}
}
