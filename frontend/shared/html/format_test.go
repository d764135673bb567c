package html

import (
	"testing"
	"time"
)

func TestMoney(t *testing.T) {
	cases := map[int64]string{
		0:       "$0",
		950:     "$950",
		8500:    "$8,500",
		33500:   "$33,500",
		120000:  "$120,000",
		1234567: "$1,234,567",
		-2500:   "-$2,500",
	}
	for in, want := range cases {
		if got := Money(in); got != want {
			t.Fatalf("Money(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestDate(t *testing.T) {
	if got := Date(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)); got != "Feb 15, 2024" {
		t.Fatalf("unexpected date %q", got)
	}
	if Date(time.Time{}) != "-" {
		t.Fatalf("expected placeholder for zero date")
	}
}
