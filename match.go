package tradebook

import "fmt"

// MatchSale records a sale against a chosen Buy lot. It is the only way a
// sell enters the ledger: the lot's remaining quantity and the sell's
// existence change together, under the ledger lock, so the lot can never be
// oversold.
//
// Lot selection is deliberately manual. The caller names the lot; the ledger
// never picks one by FIFO or price, even when several open lots exist for
// the same instrument. The sell inherits the lot's name.
//
// Everything is validated before any state changes: on failure the lot is
// untouched and no sell is created.
func (l *Ledger) MatchSale(buyID int64, on Date, unitPrice Money, quantity Quantity) (Sell, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	buy, err := l.buyLot(buyID)
	if err != nil {
		return Sell{}, err
	}

	sell := Sell{
		baseRec:   baseRec{Kind: KindSell, Date: on, Name: buy.Name},
		UnitPrice: unitPrice,
		Quantity:  quantity,
		LinkedBuy: buy.Id,
	}
	if err := sell.validate(); err != nil {
		return Sell{}, err
	}
	if quantity.GreaterThan(buy.Remaining) {
		return Sell{}, fmt.Errorf("%w: lot %d has %s remaining, cannot sell %s",
			ErrInsufficientQuantity, buy.Id, buy.Remaining, quantity)
	}

	sell.Profit = RealizedProfit(unitPrice, buy.UnitPrice, quantity)
	sell.Id = l.allocID()

	buy.Remaining = buy.Remaining.Sub(quantity)
	l.replace(buy)
	l.append(sell)
	return sell, nil
}
