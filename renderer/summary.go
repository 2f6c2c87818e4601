package renderer

import (
	"fmt"
	"strings"

	"github.com/reeflab/tradebook"
)

// SummaryMarkdown renders the dashboard figures: total realized profit,
// per-trade average and the best sell of the series' final month. A nil
// format falls back to the plain signed representation.
func SummaryMarkdown(s *tradebook.Series, format func(tradebook.Money) string) string {
	if format == nil {
		format = tradebook.Money.SignedString
	}
	var b strings.Builder

	fmt.Fprint(&b, "# Summary\n\n")
	fmt.Fprintf(&b, "- Total realized profit: %s\n", format(s.TotalProfit))
	fmt.Fprintf(&b, "- Sells: %d\n", s.SellCount)
	fmt.Fprintf(&b, "- Average profit per trade: %s\n", format(s.AvgProfitPerTrade))

	if best := s.BestPerformer; best != nil {
		fmt.Fprintf(&b, "- Best performer: %s on %s (%s)\n", best.Name, best.Date, format(best.Profit))
	} else {
		fmt.Fprintln(&b, "- Best performer: none this month")
	}

	return b.String()
}
