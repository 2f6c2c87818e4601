package renderer

import (
	"fmt"

	"github.com/reeflab/tradebook"
)

// Record renders a record to a one-line string.
func Record(rec tradebook.Record) string {
	switch v := rec.(type) {
	case tradebook.Buy:
		return fmt.Sprintf("Bought %s of %s at %s (%s remaining)", v.Quantity, v.Name, v.UnitPrice, v.Remaining)
	case tradebook.Sell:
		return fmt.Sprintf("Sold %s of %s at %s from lot %d, profit %s", v.Quantity, v.Name, v.UnitPrice, v.LinkedBuy, v.Profit.SignedString())
	case tradebook.Other:
		return fmt.Sprintf("Cash %s for %s", v.Amount.SignedString(), v.Name)
	default:
		return string(rec.What())
	}
}
