package tradebook

import "testing"

func TestRealizedProfit(t *testing.T) {
	testCases := []struct {
		name      string
		sellPrice Money
		buyPrice  Money
		qty       Quantity
		want      Money
	}{
		{name: "gain", sellPrice: M(12000), buyPrice: M(10000), qty: Q(4), want: M(8000)},
		{name: "loss", sellPrice: M(9000), buyPrice: M(10000), qty: Q(4), want: M(-4000)},
		{name: "break even", sellPrice: M(10000), buyPrice: M(10000), qty: Q(10), want: M(0)},
		{name: "fractional quantity", sellPrice: M(10.5), buyPrice: M(10), qty: Q(0.5), want: M(0.25)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RealizedProfit(tc.sellPrice, tc.buyPrice, tc.qty)
			if !got.Equal(tc.want) {
				t.Errorf("RealizedProfit(%s, %s, %s) = %s, want %s",
					tc.sellPrice, tc.buyPrice, tc.qty, got, tc.want)
			}
		})
	}
}

func TestLedger_RecomputeDependents(t *testing.T) {
	l := NewLedger()
	buy, _ := l.CreateBuy(MustParse("2024-01-02"), "XYZ", M(10000), Q(10))
	s1, _ := l.MatchSale(buy.Id, MustParse("2024-01-05"), M(12000), Q(4))
	s2, _ := l.MatchSale(buy.Id, MustParse("2024-01-07"), M(8000), Q(2))

	// Recomputing with unchanged state is a no-op.
	if err := l.RecomputeDependents(buy.Id); err != nil {
		t.Fatalf("RecomputeDependents() error = %v", err)
	}
	got, _ := l.Get(s1.Id)
	if p := got.(Sell).Profit; !p.Equal(M(8000)) {
		t.Errorf("sell 1 profit = %s, want 8000", p)
	}
	got, _ = l.Get(s2.Id)
	if p := got.(Sell).Profit; !p.Equal(M(-4000)) {
		t.Errorf("sell 2 profit = %s, want -4000", p)
	}

	// Calling it twice in a row changes nothing either.
	if err := l.RecomputeDependents(buy.Id); err != nil {
		t.Fatal(err)
	}
	again, _ := l.Get(s1.Id)
	if !again.(Sell).Profit.Equal(M(8000)) {
		t.Error("second recompute changed a sell")
	}

	if err := l.RecomputeDependents(999); err == nil {
		t.Error("RecomputeDependents(unknown id) should fail")
	}
}
