package tradebook

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
)

// jsonAt unmarshals the snapshot and evaluates a jsonpath expression on it.
func jsonAt(t *testing.T, snapshot, path string) any {
	t.Helper()
	var jobj any
	if err := json.Unmarshal([]byte(snapshot), &jobj); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v\n%s", err, snapshot)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		t.Fatalf("evaluating %q: %v", path, err)
	}
	return jval
}

func TestEncodeSnapshot(t *testing.T) {
	l := NewLedger()
	buy, err := l.CreateBuy(MustParse("2024-01-02"), "Samsung Electronics", M(70000), Q(10))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.MatchSale(buy.Id, MustParse("2024-01-10"), M(75000), Q(4)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.CreateOther(MustParse("2024-01-15"), "Dividend", M(12000)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, l); err != nil {
		t.Fatal(err)
	}
	snapshot := buf.String()

	testCases := []struct {
		path string
		want any
	}{
		{path: "$[0].id", want: float64(1)},
		{path: "$[0].type", want: "buy"},
		{path: "$[0].name", want: "Samsung Electronics"},
		{path: "$[0].price", want: float64(70000)},
		{path: "$[0].qty", want: float64(10)},
		{path: "$[0].remainingQty", want: float64(6)},
		{path: "$[1].type", want: "sell"},
		{path: "$[1].linkedBuyId", want: float64(1)},
		{path: "$[1].profit", want: float64(20000)},
		{path: "$[2].type", want: "other"},
		// Cash records travel with the amount in "price" and a unit qty.
		{path: "$[2].price", want: float64(12000)},
		{path: "$[2].qty", want: float64(1)},
	}
	for _, tc := range testCases {
		if got := jsonAt(t, snapshot, tc.path); got != tc.want {
			t.Errorf("%s = %v, want %v", tc.path, got, tc.want)
		}
	}

	// One record per line keeps diffs of the snapshot file readable.
	if got := strings.Count(snapshot, "\n"); got != 5 {
		t.Errorf("snapshot spans %d lines, want 5:\n%s", got, snapshot)
	}

	// Key order is stable so the same ledger always snapshots to the
	// same bytes.
	var again bytes.Buffer
	if err := EncodeSnapshot(&again, l); err != nil {
		t.Fatal(err)
	}
	if snapshot != again.String() {
		t.Error("two snapshots of the same ledger differ")
	}
}

func TestSnapshot_roundTrip(t *testing.T) {
	l := NewLedger()
	b1, _ := l.CreateBuy(MustParse("2024-01-02"), "XYZ", M(10000), Q(10))
	b2, _ := l.CreateBuy(MustParse("2024-01-03"), "ABC", M(500.5), Q(100))
	l.MatchSale(b1.Id, MustParse("2024-01-05"), M(12000), Q(4))
	l.MatchSale(b2.Id, MustParse("2024-02-10"), M(450), Q(100)) // closes the lot
	l.CreateOther(MustParse("2024-02-01"), "Fee", M(-300))

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, l); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if got.Len() != l.Len() {
		t.Fatalf("decoded %d records, want %d", got.Len(), l.Len())
	}
	for rec := range l.Records() {
		back, ok := got.Get(rec.ID())
		if !ok {
			t.Fatalf("record %d lost in round trip", rec.ID())
		}
		if !rec.Equal(back) {
			t.Errorf("record %d = %+v, want %+v", rec.ID(), back, rec)
		}
	}

	// The id counter resumes after the highest snapshot id.
	next, err := got.CreateOther(MustParse("2024-03-01"), "Deposit", M(1000))
	if err != nil {
		t.Fatal(err)
	}
	if next.Id != 6 {
		t.Errorf("first id after decode = %d, want 6", next.Id)
	}
}

func TestDecodeSnapshot_rejects(t *testing.T) {
	testCases := []struct {
		name     string
		snapshot string
	}{
		{
			name:     "not json",
			snapshot: `[{`,
		},
		{
			name: "duplicate id",
			snapshot: `[
{"id":1,"date":"2024-01-02","type":"buy","name":"XYZ","price":100,"qty":10,"remainingQty":10},
{"id":1,"date":"2024-01-03","type":"buy","name":"ABC","price":100,"qty":10,"remainingQty":10}
]`,
		},
		{
			name: "dangling lot link",
			snapshot: `[
{"id":2,"date":"2024-01-05","type":"sell","name":"XYZ","price":120,"qty":4,"linkedBuyId":1,"profit":80}
]`,
		},
		{
			name: "remaining above quantity",
			snapshot: `[
{"id":1,"date":"2024-01-02","type":"buy","name":"XYZ","price":100,"qty":10,"remainingQty":11}
]`,
		},
		{
			name: "negative remaining",
			snapshot: `[
{"id":1,"date":"2024-01-02","type":"buy","name":"XYZ","price":100,"qty":10,"remainingQty":-1}
]`,
		},
		{
			name: "remaining disagrees with linked sells",
			snapshot: `[
{"id":1,"date":"2024-01-02","type":"buy","name":"XYZ","price":100,"qty":10,"remainingQty":8},
{"id":2,"date":"2024-01-05","type":"sell","name":"XYZ","price":120,"qty":4,"linkedBuyId":1,"profit":80}
]`,
		},
		{
			name: "unknown record type",
			snapshot: `[
{"id":1,"date":"2024-01-02","type":"split","name":"XYZ","price":100,"qty":10}
]`,
		},
		{
			name: "zero cash amount",
			snapshot: `[
{"id":1,"date":"2024-01-02","type":"other","name":"Fee","price":0,"qty":1}
]`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSnapshot(strings.NewReader(tc.snapshot)); err == nil {
				t.Errorf("decoded an invalid snapshot:\n%s", tc.snapshot)
			}
		})
	}
}

func TestDecodeSnapshot_consistentSells(t *testing.T) {
	// A snapshot whose sells exactly account for the consumed quantity is
	// accepted, including a fully closed lot.
	snapshot := `[
{"id":1,"date":"2024-01-02","type":"buy","name":"XYZ","price":100,"qty":10,"remainingQty":0},
{"id":2,"date":"2024-01-05","type":"sell","name":"XYZ","price":120,"qty":6,"linkedBuyId":1,"profit":120},
{"id":3,"date":"2024-01-06","type":"sell","name":"XYZ","price":110,"qty":4,"linkedBuyId":1,"profit":40}
]`
	l, err := DecodeSnapshot(strings.NewReader(snapshot))
	if err != nil {
		t.Fatal(err)
	}
	rec, ok := l.Get(1)
	if !ok {
		t.Fatal("lot 1 missing after decode")
	}
	if got := rec.(Buy).State(); got != Closed {
		t.Errorf("lot state = %s, want %s", got, Closed)
	}
}
