package tradebook

import (
	"fmt"
	"iter"
	"sort"
	"sync"
)

// Ledger is an insertion-ordered collection of records keyed by unique id.
//
// It owns id allocation and enforces the per-lot invariant: for every Buy,
// quantity - remaining equals the sum of linked sell quantities. All
// mutations go through the ledger so the invariant cannot be broken from
// outside; in particular sells are only created by MatchSale.
//
// A single mutex guards each ledger instance: MatchSale reads the remaining
// quantity and then decrements it, and that read-modify-write must not
// interleave with another mutation.
type Ledger struct {
	mu      sync.Mutex
	records []Record
	byID    map[int64]int // record id to position in records
	nextID  int64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		byID:   make(map[int64]int),
		nextID: 1,
	}
}

// allocID returns the next unused record id. Caller must hold mu.
func (l *Ledger) allocID() int64 {
	id := l.nextID
	l.nextID++
	return id
}

// append stores a record at the end of the ledger. Caller must hold mu.
func (l *Ledger) append(rec Record) {
	l.byID[rec.ID()] = len(l.records)
	l.records = append(l.records, rec)
}

// lookup returns the record with the given id. Caller must hold mu.
func (l *Ledger) lookup(id int64) (Record, bool) {
	pos, ok := l.byID[id]
	if !ok {
		return nil, false
	}
	return l.records[pos], true
}

// buyLot resolves an id to a Buy lot. Caller must hold mu.
func (l *Ledger) buyLot(id int64) (Buy, error) {
	rec, ok := l.lookup(id)
	if !ok {
		return Buy{}, fmt.Errorf("%w: no record with id %d", ErrLotNotFound, id)
	}
	buy, ok := rec.(Buy)
	if !ok {
		return Buy{}, fmt.Errorf("%w: record %d is a %s, not a buy", ErrLotNotFound, id, rec.What())
	}
	return buy, nil
}

// replace stores an updated value for an existing record. Caller must hold mu.
func (l *Ledger) replace(rec Record) {
	l.records[l.byID[rec.ID()]] = rec
}

// remove deletes a record and reindexes the tail. Caller must hold mu.
func (l *Ledger) remove(id int64) {
	pos := l.byID[id]
	l.records = append(l.records[:pos], l.records[pos+1:]...)
	delete(l.byID, id)
	for i := pos; i < len(l.records); i++ {
		l.byID[l.records[i].ID()] = i
	}
}

// CreateBuy records a new purchase lot. The remaining quantity starts equal
// to the bought quantity.
func (l *Ledger) CreateBuy(on Date, name string, unitPrice Money, quantity Quantity) (Buy, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	buy := Buy{
		baseRec:   baseRec{Kind: KindBuy, Date: on, Name: name},
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Remaining: quantity,
	}
	if err := buy.validate(); err != nil {
		return Buy{}, err
	}
	buy.Id = l.allocID()
	l.append(buy)
	return buy, nil
}

// CreateOther records a cash movement. A zero amount is rejected: it would
// be a no-op in the cumulative series and is almost certainly an input slip.
func (l *Ledger) CreateOther(on Date, name string, amount Money) (Other, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	other := Other{
		baseRec: baseRec{Kind: KindOther, Date: on, Name: name},
		Amount:  amount,
	}
	if err := other.validate(); err != nil {
		return Other{}, err
	}
	other.Id = l.allocID()
	l.append(other)
	return other, nil
}

// Get returns the record with the given id.
func (l *Ledger) Get(id int64) (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lookup(id)
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Records returns an iterator over the records in insertion order.
// It iterates over a point-in-time copy, so mutating during iteration is safe.
func (l *Ledger) Records() iter.Seq[Record] {
	l.mu.Lock()
	snapshot := make([]Record, len(l.records))
	copy(snapshot, l.records)
	l.mu.Unlock()

	return func(yield func(Record) bool) {
		for _, rec := range snapshot {
			if !yield(rec) {
				return
			}
		}
	}
}

// chronological returns a copy of the records sorted by date ascending.
// The sort is stable: records on the same day keep their insertion order.
func (l *Ledger) chronological() []Record {
	l.mu.Lock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	l.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].When().Before(out[j].When())
	})
	return out
}

// OpenLots returns the Buy lots that still have quantity available to sell,
// in insertion order. A non-empty name restricts the listing to that
// instrument. This feeds the "sell against this lot" selector.
func (l *Ledger) OpenLots(name string) []Buy {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lots []Buy
	for _, rec := range l.records {
		buy, ok := rec.(Buy)
		if !ok || !buy.Remaining.IsPositive() {
			continue
		}
		if name != "" && buy.Name != name {
			continue
		}
		lots = append(lots, buy)
	}
	return lots
}

// Patch carries the updatable fields of a record. Nil fields are left
// untouched. Which fields apply depends on the record kind; patching a field
// the kind does not have is an error, not a silent skip.
type Patch struct {
	Date      *Date
	Name      *string
	UnitPrice *Money
	Quantity  *Quantity
	Amount    *Money
}

// UpdateRecord applies a patch to the record with the given id and returns
// the updated record. All checks run before any state is touched.
//
// For a Buy, a quantity change moves the remaining quantity by the same
// delta and fails if the new quantity is below what was already sold; a unit
// price change recomputes the profit of every linked sell. For a Sell, the
// name and linked lot are immutable; quantity changes are re-validated
// against the lot with the old quantity restored first, so increases work up
// to the lot's capacity.
func (l *Ledger) UpdateRecord(id int64, patch Patch) (Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: no record with id %d", ErrLotNotFound, id)
	}

	switch v := rec.(type) {
	case Buy:
		return l.updateBuy(v, patch)
	case Sell:
		return l.updateSell(v, patch)
	case Other:
		return l.updateOther(v, patch)
	default:
		return nil, fmt.Errorf("unsupported record type for update: %T", rec)
	}
}

func (l *Ledger) updateBuy(buy Buy, patch Patch) (Record, error) {
	if patch.Amount != nil {
		return nil, fmt.Errorf("%w: a buy has no amount field", ErrInvalidInput)
	}
	if patch.Date != nil {
		buy.Date = *patch.Date
	}
	if patch.Name != nil {
		buy.Name = *patch.Name
	}
	if patch.Quantity != nil {
		newQty := *patch.Quantity
		if !newQty.IsPositive() {
			return nil, fmt.Errorf("%w: buy quantity must be positive, got %s", ErrInvalidInput, newQty)
		}
		sold := buy.Sold()
		if newQty.LessThan(sold) {
			return nil, fmt.Errorf("%w: cannot shrink lot %d to %s, %s already sold",
				ErrInsufficientQuantity, buy.Id, newQty, sold)
		}
		buy.Quantity = newQty
		buy.Remaining = newQty.Sub(sold)
	}
	repriced := false
	if patch.UnitPrice != nil {
		repriced = !buy.UnitPrice.Equal(*patch.UnitPrice)
		buy.UnitPrice = *patch.UnitPrice
	}

	l.replace(buy)
	if repriced {
		l.recomputeDependents(buy)
	}
	return buy, nil
}

func (l *Ledger) updateSell(sell Sell, patch Patch) (Record, error) {
	if patch.Name != nil {
		return nil, fmt.Errorf("%w: the name of a sell is defined by its lot", ErrInvalidInput)
	}
	if patch.Amount != nil {
		return nil, fmt.Errorf("%w: a sell has no amount field", ErrInvalidInput)
	}

	buy, err := l.buyLot(sell.LinkedBuy)
	if err != nil {
		return nil, err
	}

	if patch.Date != nil {
		sell.Date = *patch.Date
	}
	if patch.Quantity != nil {
		newQty := *patch.Quantity
		if !newQty.IsPositive() {
			return nil, fmt.Errorf("%w: sell quantity must be positive, got %s", ErrInvalidInput, newQty)
		}
		// Give the old quantity back to the lot before re-validating, so an
		// increase is allowed up to the lot's full capacity.
		available := buy.Remaining.Add(sell.Quantity)
		if newQty.GreaterThan(available) {
			return nil, fmt.Errorf("%w: lot %d has only %s available",
				ErrInsufficientQuantity, buy.Id, available)
		}
		buy.Remaining = available.Sub(newQty)
		sell.Quantity = newQty
	}
	if patch.UnitPrice != nil {
		sell.UnitPrice = *patch.UnitPrice
	}
	sell.Profit = RealizedProfit(sell.UnitPrice, buy.UnitPrice, sell.Quantity)

	l.replace(buy)
	l.replace(sell)
	return sell, nil
}

func (l *Ledger) updateOther(other Other, patch Patch) (Record, error) {
	if patch.UnitPrice != nil || patch.Quantity != nil {
		return nil, fmt.Errorf("%w: a cash record has no price or quantity", ErrInvalidInput)
	}
	if patch.Date != nil {
		other.Date = *patch.Date
	}
	if patch.Name != nil {
		other.Name = *patch.Name
	}
	if patch.Amount != nil {
		other.Amount = *patch.Amount
	}
	if err := other.validate(); err != nil {
		return nil, err
	}

	l.replace(other)
	return other, nil
}

// DeleteRecord removes the record with the given id. Deleting a sell gives
// its quantity back to the linked lot, possibly reopening a closed lot.
// Deleting a buy that still has linked sells fails with ErrDependentRecords;
// use DeleteBuyCascade to remove the lot together with its sells.
func (l *Ledger) DeleteRecord(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.lookup(id)
	if !ok {
		return fmt.Errorf("%w: no record with id %d", ErrLotNotFound, id)
	}

	switch v := rec.(type) {
	case Sell:
		buy, err := l.buyLot(v.LinkedBuy)
		if err != nil {
			return err
		}
		buy.Remaining = buy.Remaining.Add(v.Quantity)
		l.replace(buy)
	case Buy:
		if v.Sold().IsPositive() {
			return fmt.Errorf("%w: lot %d still has %s sold against it",
				ErrDependentRecords, v.Id, v.Sold())
		}
	}

	l.remove(id)
	return nil
}

// DeleteBuyCascade removes a Buy lot and every sell linked to it. This is
// the explicit opt-in alternative to the DeleteRecord dependent guard.
func (l *Ledger) DeleteBuyCascade(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.buyLot(id); err != nil {
		return err
	}

	var doomed []int64
	for _, rec := range l.records {
		if sell, ok := rec.(Sell); ok && sell.LinkedBuy == id {
			doomed = append(doomed, sell.Id)
		}
	}
	for _, sellID := range doomed {
		l.remove(sellID)
	}
	l.remove(id)
	return nil
}
