package feedback

import (
	stdcontext "context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	sessioncontext "orgconnect/frontend/shared/context"
	"orgconnect/models"
)

func fixedStates(s *State) StateFunc {
	return func(stdcontext.Context) (*State, bool) { return s, true }
}

func fixedNow() time.Time { return now }

func withUser(req *http.Request) *http.Request {
	ctx := sessioncontext.NewContextWithSession(req.Context(), models.Session{ID: "test", User: john})
	return req.WithContext(ctx)
}

func TestSubmitFeedbackCommandHandler_RedirectsWithMessage(t *testing.T) {
	state := NewState()
	handler := SubmitFeedbackCommandHandler(fixedStates(state), fixedNow)

	form := url.Values{"projectId": {"2"}, "rating": {"4"}, "comment": {"Looks good"}}
	req := httptest.NewRequest(http.MethodPost, "/app/feedback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, withUser(req))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); !strings.Contains(loc, "message=Feedback+posted+on+Mobile+App+Development") {
		t.Fatalf("unexpected redirect location: %s", loc)
	}
	if state.Len() != 5 {
		t.Fatalf("expected 5 entries, got %d", state.Len())
	}
}

func TestSubmitFeedbackCommandHandler_BlankCommentKeepsInput(t *testing.T) {
	state := NewState()
	handler := SubmitFeedbackCommandHandler(fixedStates(state), fixedNow)

	form := url.Values{"projectId": {"3"}, "rating": {"2"}, "comment": {" "}}
	req := httptest.NewRequest(http.MethodPost, "/app/feedback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, withUser(req))

	loc := rr.Header().Get("Location")
	if !strings.Contains(loc, "error=please+enter+a+comment") || !strings.Contains(loc, "projectId=3") {
		t.Fatalf("unexpected redirect location: %s", loc)
	}
	if state.Len() != 4 {
		t.Fatalf("expected no new entry, got %d", state.Len())
	}
}

func TestFeedbackPageQueryHandler_RequiresUser(t *testing.T) {
	handler := FeedbackPageQueryHandler(fixedStates(NewState()), fixedNow)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/feedback", nil))

	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestFeedbackPageQueryHandler_FiltersByProject(t *testing.T) {
	handler := FeedbackPageQueryHandler(fixedStates(NewState()), fixedNow)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/app/feedback?project=4", nil)))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Salesforce integration") {
		t.Fatalf("expected CRM feedback in page")
	}
	if strings.Contains(body, "checkout flow") {
		t.Fatalf("expected e-commerce feedback to be filtered out")
	}
}
