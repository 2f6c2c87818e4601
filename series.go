package tradebook

import "sort"

// Point is one entry of the cumulative realized series: the running total of
// sell profits and cash amounts as of the end of one date.
type Point struct {
	Date       Date
	Cumulative Money
}

// Series holds the dashboard figures derived from the ledger: the cumulative
// realized curve and its summary statistics. It is a plain value computed by
// ComputeSeries; it never mutates the ledger and holds no reference to it.
type Series struct {
	// Points has one entry per date with at least one profit-affecting
	// record (sell or cash), carrying the cumulative value at that date.
	Points []Point
	// TotalProfit is the final cumulative value, zero for an empty series.
	TotalProfit Money
	// SellCount is the number of sells folded into the series.
	SellCount int
	// AvgProfitPerTrade is the mean realized profit per sell. Cash amounts
	// are excluded: the statistic is per trade, not per record.
	AvgProfitPerTrade Money
	// BestPerformer is the sell with the highest realized profit within the
	// series' final month (first one encountered on a tie), nil when that
	// month has no sells.
	BestPerformer *Sell

	months map[string]Money // realized deltas bucketed by "YYYY-MM"
}

// MonthProfit returns the sum of profit-affecting deltas dated in the given
// "YYYY-MM" month. It is a sum of deltas, not a difference of cumulative
// values, so months with no surrounding activity still come out right.
func (s *Series) MonthProfit(yearMonth string) Money {
	return s.months[yearMonth]
}

// Months returns the "YYYY-MM" months holding at least one profit-affecting
// record, in ascending order.
func (s *Series) Months() []string {
	months := make([]string, 0, len(s.months))
	for m := range s.months {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}

// ComputeSeries folds the ledger chronologically into a Series. Records
// after asOf are ignored; a zero asOf means the whole ledger. Buys never
// move the cumulative value.
//
// Same-date records collapse into a single point carrying the last
// cumulative value of that date, which is what the dashboard charts. The
// fold is deterministic: same ledger state, same output.
func (l *Ledger) ComputeSeries(asOf Date) *Series {
	s := &Series{months: make(map[string]Money)}

	var cumulative Money
	var sellTotal Money
	var lastMonth string

	for _, rec := range l.chronological() {
		if !asOf.IsZero() && rec.When().After(asOf) {
			break
		}

		var delta Money
		switch v := rec.(type) {
		case Sell:
			delta = v.Profit
			s.SellCount++
			sellTotal = sellTotal.Add(v.Profit)
		case Other:
			delta = v.Amount
		default:
			continue
		}

		cumulative = cumulative.Add(delta)
		s.months[rec.When().YearMonth()] = s.months[rec.When().YearMonth()].Add(delta)
		lastMonth = rec.When().YearMonth()

		if n := len(s.Points); n > 0 && s.Points[n-1].Date == rec.When() {
			s.Points[n-1].Cumulative = cumulative
		} else {
			s.Points = append(s.Points, Point{Date: rec.When(), Cumulative: cumulative})
		}
	}

	s.TotalProfit = cumulative
	if s.SellCount > 0 {
		s.AvgProfitPerTrade = sellTotal.Div(s.SellCount)
	}

	// The "best performer" tile covers the month the series ends in. An
	// explicit asOf pins that month even if it holds no records yet.
	scope := lastMonth
	if !asOf.IsZero() {
		scope = asOf.YearMonth()
	}
	for _, rec := range l.chronological() {
		if !asOf.IsZero() && rec.When().After(asOf) {
			break
		}
		sell, ok := rec.(Sell)
		if !ok || sell.When().YearMonth() != scope {
			continue
		}
		if s.BestPerformer == nil || sell.Profit.GreaterThan(s.BestPerformer.Profit) {
			best := sell
			s.BestPerformer = &best
		}
	}
	return s
}
