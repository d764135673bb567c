package html

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestSelectEscapesAndMarksCurrent(t *testing.T) {
	opts := []Option{{Value: "all", Label: "All"}, {Value: `a"b`, Label: "<script>"}}
	var buf bytes.Buffer
	if err := Select("status", `a"b`, opts).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	got := buf.String()
	if strings.Contains(got, "<script>") {
		t.Fatalf("label was not escaped: %s", got)
	}
	if !strings.Contains(got, `value="a&#34;b" selected`) {
		t.Fatalf("expected escaped current option to be selected: %s", got)
	}
	if strings.Count(got, "selected") != 1 {
		t.Fatalf("expected exactly one selected option: %s", got)
	}
}

func TestBadgeCarriesStatus(t *testing.T) {
	var buf bytes.Buffer
	if err := Badge("overdue").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != `<span class="badge" data-status="overdue">overdue</span>` {
		t.Fatalf("unexpected badge %q", got)
	}
}
