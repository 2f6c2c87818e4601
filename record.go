package tradebook

import "fmt"

// Kind is a typed string identifying a record variant.
type Kind string

// Record kinds stored in the ledger.
const (
	KindBuy   Kind = "buy"
	KindSell  Kind = "sell"
	KindOther Kind = "other"
)

// Record defines the common interface for the three record variants kept in
// the ledger: a purchase lot (Buy), a sale matched against a lot (Sell), and
// a cash movement with no quantity semantics (Other).
type Record interface {
	ID() int64  // ID returns the ledger-unique record id.
	What() Kind // What returns the record variant (e.g., "buy", "sell").
	When() Date // When returns the date on which the record occurred.
	Equal(Record) bool
}

type baseRec struct {
	Id   int64  `json:"id"`
	Kind Kind   `json:"type"`
	Date Date   `json:"date"`
	Name string `json:"name"` // Name is the instrument or label, e.g. a ticker.
}

func (r baseRec) ID() int64  { return r.Id }
func (r baseRec) What() Kind { return r.Kind }
func (r baseRec) When() Date { return r.Date }

// MarshalJSON implements the json.Marshaler interface for baseRec.
// The snapshot format keys are ordered: id, date, type, name.
func (r baseRec) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.Id)
	w.Append("date", r.Date)
	w.Append("type", r.Kind)
	w.Append("name", r.Name)
	return w.MarshalJSON()
}

// LotState describes where a Buy lot stands in its lifecycle.
type LotState int

const (
	// Open means no quantity has been sold from the lot yet.
	Open LotState = iota
	// PartiallyFilled means some, but not all, quantity has been sold.
	PartiallyFilled
	// Closed means the whole lot quantity has been sold.
	Closed
)

func (s LotState) String() string {
	switch s {
	case Open:
		return "open"
	case PartiallyFilled:
		return "partial"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Buy represents a purchase lot: a quantity of an instrument bought at a
// unit price, with the portion not yet consumed by linked sells.
type Buy struct {
	baseRec
	UnitPrice Money    // UnitPrice is the purchase price per unit.
	Quantity  Quantity // Quantity is the number of units bought.
	Remaining Quantity // Remaining is the unsold portion, in [0, Quantity].
}

// State returns the lot's lifecycle state derived from its remaining quantity.
func (t Buy) State() LotState {
	switch {
	case t.Remaining.Equal(t.Quantity):
		return Open
	case t.Remaining.IsZero():
		return Closed
	default:
		return PartiallyFilled
	}
}

// Sold returns the quantity already consumed by linked sells.
func (t Buy) Sold() Quantity { return t.Quantity.Sub(t.Remaining) }

func (t Buy) Equal(other Record) bool {
	o, ok := other.(Buy)
	return ok && t.baseRec == o.baseRec &&
		t.UnitPrice.Equal(o.UnitPrice) &&
		t.Quantity.Equal(o.Quantity) &&
		t.Remaining.Equal(o.Remaining)
}

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseRec)
	w.Append("price", t.UnitPrice)
	w.Append("qty", t.Quantity)
	w.Append("remainingQty", t.Remaining)
	return w.MarshalJSON()
}

// validate checks the Buy's creation fields. The remaining quantity is not
// checked here: it is owned by the ledger and always initialised to Quantity.
func (t Buy) validate() error {
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("%w: buy quantity must be positive, got %s", ErrInvalidInput, t.Quantity)
	}
	return nil
}

// Sell represents a sale matched against a specific Buy lot. The lot defines
// the cost basis, so the link is immutable once the sale is recorded.
type Sell struct {
	baseRec
	UnitPrice Money    // UnitPrice is the sale price per unit.
	Quantity  Quantity // Quantity is the number of units sold.
	LinkedBuy int64    // LinkedBuy is the id of the Buy lot this sale consumes.
	Profit    Money    // Profit is (UnitPrice - lot.UnitPrice) * Quantity.
}

func (t Sell) Equal(other Record) bool {
	o, ok := other.(Sell)
	return ok && t.baseRec == o.baseRec &&
		t.UnitPrice.Equal(o.UnitPrice) &&
		t.Quantity.Equal(o.Quantity) &&
		t.LinkedBuy == o.LinkedBuy &&
		t.Profit.Equal(o.Profit)
}

// MarshalJSON implements the json.Marshaler interface for Sell.
func (t Sell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseRec)
	w.Append("price", t.UnitPrice)
	w.Append("qty", t.Quantity)
	w.Append("linkedBuyId", t.LinkedBuy)
	w.Append("profit", t.Profit)
	return w.MarshalJSON()
}

func (t Sell) validate() error {
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("%w: sell quantity must be positive, got %s", ErrInvalidInput, t.Quantity)
	}
	return nil
}

// Other represents a cash movement (deposit, fee, dividend...) that
// contributes its amount directly to the cumulative profit series.
type Other struct {
	baseRec
	Amount Money // Amount is the signed cash value.
}

func (t Other) Equal(other Record) bool {
	o, ok := other.(Other)
	return ok && t.baseRec == o.baseRec && t.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Other.
// The snapshot format carries the amount in the "price" column with a unit qty.
func (t Other) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseRec)
	w.Append("price", t.Amount)
	w.Append("qty", 1)
	return w.MarshalJSON()
}

func (t Other) validate() error {
	if t.Amount.IsZero() {
		return fmt.Errorf("%w: amount must not be zero", ErrInvalidInput)
	}
	return nil
}
