package tradebook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger snapshot is the single serializable shape exchanged with the
// persistence collaborator (a file, browser storage, or a spreadsheet): a
// JSON array of flat records, one object per record, in insertion order.

// snapshotRec is a specialized struct to read one snapshot line with all
// possible fields; the record kind decides which ones matter.
type snapshotRec struct {
	ID        int64           `json:"id"`
	Date      Date            `json:"date"`
	Type      Kind            `json:"type"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Qty       decimal.Decimal `json:"qty"`
	Remaining decimal.Decimal `json:"remainingQty"`
	LinkedBuy int64           `json:"linkedBuyId"`
	Profit    decimal.Decimal `json:"profit"`
}

// EncodeSnapshot writes the ledger as a snapshot array, one record per line,
// with stable key order inside each record.
func EncodeSnapshot(w io.Writer, l *Ledger) error {
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	first := true
	for rec := range l.Records() {
		if !first {
			if _, err := io.WriteString(w, ",\n"); err != nil {
				return err
			}
		}
		first = false
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal record %d: %w", rec.ID(), err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n]\n")
	return err
}

// DecodeSnapshot reads a snapshot array and rebuilds a ledger from it.
//
// The file order is taken as the insertion order, so a sell must appear
// after its lot. Decoding re-derives the id counter and re-checks the ledger
// invariants: unique ids, resolvable lot links, remaining quantities within
// bounds, and for every lot quantity - remainingQty equal to the sum of its
// linked sell quantities. A snapshot that fails any of these is rejected
// rather than repaired.
func DecodeSnapshot(r io.Reader) (*Ledger, error) {
	var rows []snapshotRec
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}

	ledger := NewLedger()
	soldByLot := make(map[int64]Quantity)

	for _, row := range rows {
		if _, dup := ledger.byID[row.ID]; dup {
			return nil, fmt.Errorf("duplicate record id %d in snapshot", row.ID)
		}
		base := baseRec{Id: row.ID, Kind: row.Type, Date: row.Date, Name: row.Name}

		switch row.Type {
		case KindBuy:
			buy := Buy{
				baseRec:   base,
				UnitPrice: M(row.Price),
				Quantity:  Q(row.Qty),
				Remaining: Q(row.Remaining),
			}
			if err := buy.validate(); err != nil {
				return nil, fmt.Errorf("record %d: %w", row.ID, err)
			}
			if buy.Remaining.IsNegative() || buy.Remaining.GreaterThan(buy.Quantity) {
				return nil, fmt.Errorf("record %d: remaining quantity %s out of [0, %s]",
					row.ID, buy.Remaining, buy.Quantity)
			}
			ledger.append(buy)
		case KindSell:
			sell := Sell{
				baseRec:   base,
				UnitPrice: M(row.Price),
				Quantity:  Q(row.Qty),
				LinkedBuy: row.LinkedBuy,
				Profit:    M(row.Profit),
			}
			if err := sell.validate(); err != nil {
				return nil, fmt.Errorf("record %d: %w", row.ID, err)
			}
			if _, err := ledger.buyLot(sell.LinkedBuy); err != nil {
				return nil, fmt.Errorf("record %d: dangling lot link: %w", row.ID, err)
			}
			soldByLot[sell.LinkedBuy] = soldByLot[sell.LinkedBuy].Add(sell.Quantity)
			ledger.append(sell)
		case KindOther:
			other := Other{baseRec: base, Amount: M(row.Price)}
			if err := other.validate(); err != nil {
				return nil, fmt.Errorf("record %d: %w", row.ID, err)
			}
			ledger.append(other)
		default:
			return nil, fmt.Errorf("record %d: unknown record type %q", row.ID, row.Type)
		}

		if row.ID >= ledger.nextID {
			ledger.nextID = row.ID + 1
		}
	}

	for _, rec := range ledger.records {
		buy, ok := rec.(Buy)
		if !ok {
			continue
		}
		if !buy.Sold().Equal(soldByLot[buy.Id]) {
			return nil, fmt.Errorf("lot %d: remaining quantity disagrees with linked sells: sold %s, sells total %s",
				buy.Id, buy.Sold(), soldByLot[buy.Id])
		}
	}

	return ledger, nil
}
