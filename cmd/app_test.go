package cmd

import (
	"strings"
	"testing"

	"github.com/reeflab/tradebook"
)

func TestParseHelpers(t *testing.T) {
	m, err := parseMoney("12000.50")
	if err != nil {
		t.Fatal(err)
	}
	if !m.Equal(tradebook.M(12000.5)) {
		t.Errorf("parseMoney = %s", m)
	}
	if _, err := parseMoney("twelve"); err == nil {
		t.Error("parseMoney accepted a non-number")
	}

	q, err := parseQuantity("0.5")
	if err != nil {
		t.Fatal(err)
	}
	if !q.Equal(tradebook.Q(0.5)) {
		t.Errorf("parseQuantity = %s", q)
	}

	d, err := parseDateOrToday("2024-01-05")
	if err != nil {
		t.Fatal(err)
	}
	if d != tradebook.MustParse("2024-01-05") {
		t.Errorf("parseDateOrToday = %s", d)
	}
	if d, err = parseDateOrToday(""); err != nil || d.IsZero() {
		t.Errorf("empty date should default to today, got %s, %v", d, err)
	}
	if _, err := parseDateOrToday("someday"); err == nil {
		t.Error("parseDateOrToday accepted garbage")
	}
}

func TestDisplay(t *testing.T) {
	m := tradebook.M(8000)

	*currency = ""
	if got := display(m); got != "+8000" {
		t.Errorf("display without currency = %q", got)
	}

	*currency = "KRW"
	defer func() { *currency = "" }()
	if got := display(m); !strings.Contains(got, "8,000") {
		t.Errorf("display with KRW = %q, want grouped digits", got)
	}
}
