package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/reeflab/tradebook"
	"github.com/reeflab/tradebook/renderer"
)

type summaryCmd struct {
	asOf string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the dashboard figures" }
func (*summaryCmd) Usage() string {
	return `tbk summary [-d <date>]

  Shows the total realized profit, the average profit per trade and the
  best sell of the month. Use the global -currency flag for formatted
  amounts.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "d", "", "Figures as of this date (YYYY-MM-DD).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf := tradebook.Date{}
	if c.asOf != "" {
		var err error
		if asOf, err = tradebook.ParseDate(c.asOf); err != nil {
			return fail(err)
		}
	}

	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SummaryMarkdown(ledger.ComputeSeries(asOf), display))
	return subcommands.ExitSuccess
}
