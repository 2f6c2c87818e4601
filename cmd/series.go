package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/reeflab/tradebook"
	"github.com/reeflab/tradebook/renderer"
)

type seriesCmd struct {
	asOf string
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "show the cumulative realized profit series" }
func (*seriesCmd) Usage() string {
	return `tbk series [-d <date>]

  Shows the running total of realized profits and cash events, one row per
  active date, plus the monthly totals. -d cuts the series at that date.
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "d", "", "Only records up to this date (YYYY-MM-DD).")
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.SeriesMarkdown(ledger.ComputeSeries(asOf)))
	return subcommands.ExitSuccess
}
