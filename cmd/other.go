package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/reeflab/tradebook/renderer"
)

type otherCmd struct {
	date   string
	name   string
	amount string
}

func (*otherCmd) Name() string     { return "other" }
func (*otherCmd) Synopsis() string { return "record a cash event (dividend, fee, deposit)" }
func (*otherCmd) Usage() string {
	return `tbk other -n <name> -a <amount> [-d <date>]

  Records a cash event outside any lot. The amount may be negative for a
  fee or a withdrawal, but not zero.
`
}

func (c *otherCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the event (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.name, "n", "", "Label of the event.")
	f.StringVar(&c.amount, "a", "", "Signed cash amount.")
}

func (c *otherCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateOrToday(c.date)
	if err != nil {
		return fail(err)
	}
	amount, err := parseMoney(c.amount)
	if err != nil {
		return fail(err)
	}

	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	other, err := ledger.CreateOther(on, c.name, amount)
	if err != nil {
		return fail(err)
	}
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("[%d] %s\n", other.Id, renderer.Record(other))
	return subcommands.ExitSuccess
}
