package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/reeflab/tradebook"
	"github.com/reeflab/tradebook/reeflog"
)

func ledgerFixture(t *testing.T) *tradebook.Ledger {
	t.Helper()
	l := tradebook.NewLedger()
	buy, err := l.CreateBuy(tradebook.MustParse("2024-01-02"), "XYZ", tradebook.M(10000), tradebook.Q(10))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.MatchSale(buy.Id, tradebook.MustParse("2024-01-05"), tradebook.M(12000), tradebook.Q(4)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.CreateOther(tradebook.MustParse("2024-02-01"), "Deposit", tradebook.M(500000)); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestLotsMarkdown(t *testing.T) {
	l := ledgerFixture(t)
	got := LotsMarkdown(l.OpenLots(""))

	for _, want := range []string{
		"# Open Lots",
		"| 1 | 2024-01-02 | XYZ | 10000 | 10 | 6 | partial |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	empty := LotsMarkdown(nil)
	if !strings.Contains(empty, "No open lots.") {
		t.Errorf("empty listing rendered as:\n%s", empty)
	}
}

func TestSeriesMarkdown(t *testing.T) {
	l := ledgerFixture(t)
	got := SeriesMarkdown(l.ComputeSeries(tradebook.Date{}))

	for _, want := range []string{
		"| 2024-01-05 | +8000 |",
		"| 2024-02-01 | +508000 |",
		"## Monthly Totals",
		"| 2024-01 | +8000 |",
		"| 2024-02 | +500000 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	empty := SeriesMarkdown(tradebook.NewLedger().ComputeSeries(tradebook.Date{}))
	if !strings.Contains(empty, "Nothing realized yet.") {
		t.Errorf("empty series rendered as:\n%s", empty)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	l := ledgerFixture(t)
	got := SummaryMarkdown(l.ComputeSeries(tradebook.MustParse("2024-01-31")), nil)

	for _, want := range []string{
		"Total realized profit: +8000",
		"Sells: 1",
		"Average profit per trade: +8000",
		"Best performer: XYZ on 2024-01-05 (+8000)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	// A custom formatter reaches every money figure.
	got = SummaryMarkdown(l.ComputeSeries(tradebook.MustParse("2024-01-31")),
		func(m tradebook.Money) string { return m.String() + " KRW" })
	if !strings.Contains(got, "Total realized profit: 8000 KRW") {
		t.Errorf("formatter not applied in:\n%s", got)
	}
}

func TestRecord(t *testing.T) {
	l := ledgerFixture(t)
	testCases := []struct {
		id   int64
		want string
	}{
		{id: 1, want: "Bought 10 of XYZ at 10000 (6 remaining)"},
		{id: 2, want: "Sold 4 of XYZ at 12000 from lot 1, profit +8000"},
		{id: 3, want: "Cash +500000 for Deposit"},
	}
	for _, tc := range testCases {
		rec, ok := l.Get(tc.id)
		if !ok {
			t.Fatalf("record %d not found", tc.id)
		}
		if got := Record(rec); got != tc.want {
			t.Errorf("Record(%d) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestReefMarkdown(t *testing.T) {
	log := &reeflog.Log{}
	log.Append(reeflog.Entry{
		Date: tradebook.MustParse("2024-05-01"),
		KH:   decimal.RequireFromString("7.8"),
		Ca:   decimal.RequireFromString("410"),
	})
	log.Append(reeflog.Entry{
		Date: tradebook.MustParse("2024-05-05"),
		KH:   decimal.RequireFromString("8.1"),
		Ca:   decimal.RequireFromString("410"),
		Memo: "after water change",
	})
	s, err := log.Summarize()
	if err != nil {
		t.Fatal(err)
	}
	got := ReefMarkdown(s, reeflog.DefaultTargets())

	for _, want := range []string{
		"# Reef Log 2024-05-05",
		"after water change",
		"| KH | 8.1 | +0.3 | 8.3 |",
		"| CA | 410 |  | 420 |", // unchanged value renders an empty delta
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
