package auditlog

import (
	stdcontext "context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sessioncontext "orgconnect/frontend/shared/context"
	"orgconnect/models"
)

func withUser(req *http.Request) *http.Request {
	user := models.User{ID: "1", Name: "John Smith", Organization: "TechCorp Solutions"}
	return req.WithContext(sessioncontext.NewContextWithSession(req.Context(), models.Session{ID: "t", User: user}))
}

func fixed(s *State) StateFunc {
	return func(stdcontext.Context) (*State, bool) { return s, true }
}

func TestExportCSVQueryHandler_FilteredDownload(t *testing.T) {
	handler := ExportCSVQueryHandler(fixed(newTestState(nil)), func() time.Time { return now })

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/app/audit/export.csv?range=today", nil)))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Disposition"); got != `attachment; filename="audit-log-2024-01-25.csv"` {
		t.Fatalf("unexpected content disposition: %q", got)
	}
	rows, err := csv.NewReader(strings.NewReader(rr.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != "ID,Timestamp,Action,User,Organization,Resource,Severity,IP Address,Hash" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "AUDIT-2024-001" || rows[1][1] != "2024-01-25T10:30:15.123Z" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
}

func TestExportCSVQueryHandler_RequiresUser(t *testing.T) {
	handler := ExportCSVQueryHandler(fixed(newTestState(nil)), func() time.Time { return now })
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/audit/export.csv", nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rr.Code)
	}
}

func TestAuditLogPageQueryHandler_CarriesFiltersToExport(t *testing.T) {
	handler := AuditLogPageQueryHandler(fixed(newTestState(nil)), func() time.Time { return now })
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/app/audit?action=user_login&range=week", nil)))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "/app/audit/export.csv?action=user_login&amp;range=week") {
		t.Fatalf("expected export link to carry filters")
	}
	if !strings.Contains(body, "Mike Chen") || strings.Contains(body, "Security Scanner") {
		t.Fatalf("expected only user_login entries")
	}
}
