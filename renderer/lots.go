package renderer

import (
	"fmt"
	"strings"

	"github.com/reeflab/tradebook"
)

// LotsMarkdown renders the open lots as a markdown table.
func LotsMarkdown(lots []tradebook.Buy) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Open Lots\n\n")
	if len(lots) == 0 {
		fmt.Fprintln(&b, "No open lots.")
		return b.String()
	}

	fmt.Fprintln(&b, "| ID | Date | Name | Unit Price | Qty | Remaining | State |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|---:|---:|:---|")
	for _, lot := range lots {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			lot.Id,
			lot.Date,
			lot.Name,
			lot.UnitPrice,
			lot.Quantity,
			lot.Remaining,
			lot.State(),
		)
	}

	return b.String()
}
