package tradebook

// RealizedProfit computes the profit recognized by a sale:
// (sale unit price - lot unit price) * quantity.
// There is no floor or cap; a loss comes out negative.
func RealizedProfit(sellPrice, buyPrice Money, quantity Quantity) Money {
	return sellPrice.Sub(buyPrice).Mul(quantity)
}

// RecomputeDependents re-evaluates the realized profit of every sell linked
// to the given lot, in place, without touching quantities. The result is a
// pure function of the current lot and sell state, so calling it again is a
// no-op.
func (l *Ledger) RecomputeDependents(buyID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	buy, err := l.buyLot(buyID)
	if err != nil {
		return err
	}
	l.recomputeDependents(buy)
	return nil
}

// recomputeDependents is the lock-held body of RecomputeDependents, also
// called when a lot is repriced through UpdateRecord.
func (l *Ledger) recomputeDependents(buy Buy) {
	for i, rec := range l.records {
		sell, ok := rec.(Sell)
		if !ok || sell.LinkedBuy != buy.Id {
			continue
		}
		sell.Profit = RealizedProfit(sell.UnitPrice, buy.UnitPrice, sell.Quantity)
		l.records[i] = sell
	}
}
