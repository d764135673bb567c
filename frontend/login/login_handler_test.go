package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"orgconnect/infrastructure/password"
	"orgconnect/infrastructure/seed"
	"orgconnect/infrastructure/session"
	"orgconnect/infrastructure/sqlite"
)

var testHasher = password.NewHasher(password.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.OpenDB(filepath.Join(t.TempDir(), "login.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := sqlite.ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	for _, u := range seed.DemoAccounts() {
		if err := UpsertAccount(context.Background(), db, testHasher, u, "password"); err != nil {
			t.Fatalf("seed account %s: %v", u.Email, err)
		}
	}
	return db
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatalf("expected %s cookie", session.CookieName)
	return nil
}

func TestCreateLoginHandler_DemoAccountCreatesSession(t *testing.T) {
	db := openTestDB(t)
	sessions := session.NewStore(db, time.Hour)
	handler := CreateLoginHandler(db, sessions, testHasher)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postForm("/login", url.Values{"email": {"Sarah@Innovate.com"}, "password": {"password"}}))

	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/app/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %d %q", rr.Code, rr.Header().Get("Location"))
	}
	cookie := sessionCookie(t, rr)
	if cookie.MaxAge != 3600 {
		t.Fatalf("expected cookie max age 3600, got %d", cookie.MaxAge)
	}

	sess, err := sessions.Load(context.Background(), cookie.Value)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if sess.User.Name != "Sarah Johnson" || sess.User.Organization != "Innovate Ltd" || sess.User.Role != "Developer" {
		t.Fatalf("unexpected session user: %+v", sess.User)
	}
}

func TestCreateLoginHandler_WrongPasswordShowsHint(t *testing.T) {
	db := openTestDB(t)
	handler := CreateLoginHandler(db, session.NewStore(db, time.Hour), testHasher)

	for _, form := range []url.Values{
		{"email": {"john@techcorp.com"}, "password": {"nope"}},
		{"email": {"nobody@example.com"}, "password": {"password"}},
	} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, postForm("/login", form))

		loc, err := url.Parse(rr.Header().Get("Location"))
		if err != nil {
			t.Fatalf("parse location: %v", err)
		}
		if loc.Path != "/login" || loc.Query().Get("error") != InvalidCredentialsMessage {
			t.Fatalf("unexpected redirect: %s", loc)
		}
		if len(rr.Result().Cookies()) != 0 {
			t.Fatalf("expected no cookie on failed login")
		}
	}
}

func TestCreateRegistrationHandler_MissingFields(t *testing.T) {
	db := openTestDB(t)
	handler := CreateRegistrationHandler(session.NewStore(db, time.Hour))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postForm("/register", url.Values{"name": {"Ana"}, "email": {"ana@example.com"}}))

	loc, err := url.Parse(rr.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if got := loc.Query().Get("error"); got != "Please fill in all fields: password, organization" {
		t.Fatalf("unexpected error message: %q", got)
	}
	if loc.Query().Get("name") != "Ana" {
		t.Fatalf("expected name to be sent back")
	}
}

func TestCreateRegistrationHandler_SignsInTeamMember(t *testing.T) {
	db := openTestDB(t)
	sessions := session.NewStore(db, time.Hour)
	handler := CreateRegistrationHandler(sessions)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postForm("/register", url.Values{
		"name":         {"Ana Lima"},
		"email":        {"ana@example.com"},
		"password":     {"secret"},
		"organization": {"innovate-ltd"},
	}))
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/app/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %d %q", rr.Code, rr.Header().Get("Location"))
	}

	sess, err := sessions.Load(context.Background(), sessionCookie(t, rr).Value)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if sess.User.Role != RegisteredRole || sess.User.Organization != "Innovate Ltd" || len(sess.User.ID) != 36 {
		t.Fatalf("unexpected registered user: %+v", sess.User)
	}
}

type recordingCloser struct {
	closed []string
}

func (c *recordingCloser) Close(token string) bool {
	c.closed = append(c.closed, token)
	return true
}

func TestLogoutHandler_DeletesSessionAndWorkspace(t *testing.T) {
	db := openTestDB(t)
	sessions := session.NewStore(db, time.Hour)
	user, err := authenticate(context.Background(), db, testHasher, "john@techcorp.com", "password")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	sess, err := sessions.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	closer := &recordingCloser{}
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(session.SessionCookie(sess.ID, 3600))
	rr := httptest.NewRecorder()
	LogoutHandler(sessions, closer).ServeHTTP(rr, req)

	if rr.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %q", rr.Header().Get("Location"))
	}
	if len(closer.closed) != 1 || closer.closed[0] != sess.ID {
		t.Fatalf("expected workspace close for %s, got %v", sess.ID, closer.closed)
	}
	if _, err := sessions.Load(context.Background(), sess.ID); err != session.ErrNotFound {
		t.Fatalf("expected session to be gone, got %v", err)
	}
	if sessionCookie(t, rr).MaxAge >= 0 {
		t.Fatalf("expected cookie to be cleared")
	}
}

func TestUpsertAccount_ReplacesByEmail(t *testing.T) {
	db := openTestDB(t)
	john := seed.DemoAccounts()[0]
	if err := UpsertAccount(context.Background(), db, testHasher, john, "changed"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := authenticate(context.Background(), db, testHasher, john.Email, "password"); err != ErrInvalidCredentials {
		t.Fatalf("expected old password to fail, got %v", err)
	}
	if _, err := authenticate(context.Background(), db, testHasher, john.Email, "changed"); err != nil {
		t.Fatalf("expected new password to work: %v", err)
	}
}
