package nav

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"orgconnect/models"
)

func TestTopNavMarksActiveView(t *testing.T) {
	data := BuildTopNavData(models.User{Name: "Sarah <Johnson>", Organization: "Innovate Ltd"}, ViewAudit)
	var buf bytes.Buffer
	if err := TopNav(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, `href="/app/audit" class="active"`) {
		t.Fatalf("expected audit link to be active: %s", html)
	}
	if strings.Count(html, `class="active"`) != 1 {
		t.Fatalf("expected exactly one active link")
	}
	if strings.Contains(html, "<Johnson>") {
		t.Fatalf("expected user name to be escaped")
	}
}
