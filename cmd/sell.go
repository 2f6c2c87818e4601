package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/reeflab/tradebook/renderer"
)

type sellCmd struct {
	date  string
	lot   int64
	price string
	qty   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale against a chosen lot" }
func (*sellCmd) Usage() string {
	return `tbk sell -lot <id> -p <unit_price> -q <quantity> [-d <date>]

  Records a sale drawn from the lot you picked with -lot. The lot choice is
  yours: there is no automatic first-in-first-out matching. Use "tbk lots"
  to list the lots still open.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.lot, "lot", 0, "Id of the buy lot the sale draws from.")
	f.StringVar(&c.date, "d", "", "Date of the sale (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.price, "p", "", "Unit price obtained.")
	f.StringVar(&c.qty, "q", "", "Quantity sold.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.lot == 0 {
		fmt.Fprintln(os.Stderr, "Error: -lot is required, pick one with \"tbk lots\".")
		return subcommands.ExitUsageError
	}
	on, err := parseDateOrToday(c.date)
	if err != nil {
		return fail(err)
	}
	price, err := parseMoney(c.price)
	if err != nil {
		return fail(err)
	}
	qty, err := parseQuantity(c.qty)
	if err != nil {
		return fail(err)
	}

	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	sell, err := ledger.MatchSale(c.lot, on, price, qty)
	if err != nil {
		return fail(err)
	}
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("[%d] %s\n", sell.Id, renderer.Record(sell))
	return subcommands.ExitSuccess
}
