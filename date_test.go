package tradebook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
		err  bool
	}{
		{in: "2024-01-02", want: NewDate(2024, time.January, 2)},
		{in: "2024-1-2", want: NewDate(2024, time.January, 2)}, // permissive read
		{in: "2024-12-31", want: NewDate(2024, time.December, 31)},
		{in: "02-01-2024", err: true},
		{in: "yesterday", err: true},
		{in: "", err: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("ParseDate(%q) err = %v, want err %v", tc.in, err, tc.err)
			continue
		}
		if !tc.err && got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_Add(t *testing.T) {
	d := NewDate(2024, time.February, 28)
	if got := d.Add(1); got != NewDate(2024, time.February, 29) { // leap year
		t.Errorf("Add(1) = %s", got)
	}
	if got := d.Add(2); got != NewDate(2024, time.March, 1) {
		t.Errorf("Add(2) = %s", got)
	}
	if got := d.Add(-28); got != NewDate(2024, time.January, 31) {
		t.Errorf("Add(-28) = %s", got)
	}
}

func TestDate_ordering(t *testing.T) {
	a, b := MustParse("2024-01-05"), MustParse("2024-02-01")
	if !a.Before(b) || b.Before(a) {
		t.Error("Before is wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After is wrong")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date compares against itself")
	}
}

func TestDate_YearMonth(t *testing.T) {
	if got := MustParse("2024-01-05").YearMonth(); got != "2024-01" {
		t.Errorf("YearMonth() = %q, want 2024-01", got)
	}
}

func TestDate_json(t *testing.T) {
	d := MustParse("2024-01-05")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-01-05"` {
		t.Errorf("marshaled to %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
	if err := json.Unmarshal([]byte(`"not a date"`), &back); err == nil {
		t.Error("unmarshaled an invalid date")
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(MustParse("2024-01-10"), MustParse("2024-01-20"))
	testCases := []struct {
		d    Date
		want bool
	}{
		{d: MustParse("2024-01-09"), want: false},
		{d: MustParse("2024-01-10"), want: true},
		{d: MustParse("2024-01-15"), want: true},
		{d: MustParse("2024-01-20"), want: true},
		{d: MustParse("2024-01-21"), want: false},
	}
	for _, tc := range testCases {
		if got := r.Contains(tc.d); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.d, got, tc.want)
		}
	}

	// A zero bound leaves that side open.
	open := NewRange(Date{}, MustParse("2024-01-20"))
	if !open.Contains(MustParse("1999-01-01")) {
		t.Error("open From bound should accept any earlier date")
	}
	if open.Contains(MustParse("2024-01-21")) {
		t.Error("To bound still applies on a half-open range")
	}

	// A zero To bound must stay open, not swap with From.
	tail := NewRange(MustParse("2024-01-10"), Date{})
	if tail.Contains(MustParse("2024-01-09")) {
		t.Error("From bound still applies on a half-open range")
	}
	if !tail.Contains(MustParse("2030-12-31")) {
		t.Error("open To bound should accept any later date")
	}
}
