package renderer

import (
	"fmt"
	"strings"

	"github.com/reeflab/tradebook"
)

// SeriesMarkdown renders the cumulative realized series and its monthly
// totals as markdown tables.
func SeriesMarkdown(s *tradebook.Series) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Cumulative Realized Profit\n\n")
	if len(s.Points) == 0 {
		fmt.Fprintln(&b, "Nothing realized yet.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Cumulative |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, p := range s.Points {
		fmt.Fprintf(&b, "| %s | %s |\n", p.Date, p.Cumulative.SignedString())
	}

	fmt.Fprint(&b, "\n## Monthly Totals\n\n")
	fmt.Fprintln(&b, "| Month | Profit |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, month := range s.Months() {
		fmt.Fprintf(&b, "| %s | %s |\n", month, s.MonthProfit(month).SignedString())
	}

	return b.String()
}
