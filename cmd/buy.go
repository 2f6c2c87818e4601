package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/reeflab/tradebook/renderer"
)

type buyCmd struct {
	date  string
	name  string
	price string
	qty   string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of a new lot" }
func (*buyCmd) Usage() string {
	return `tbk buy -n <name> -p <unit_price> -q <quantity> [-d <date>]

  Records a buy, opening a new lot that later sells can draw from.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the purchase (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.name, "n", "", "Name of the instrument.")
	f.StringVar(&c.price, "p", "", "Unit price paid.")
	f.StringVar(&c.qty, "q", "", "Quantity bought.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	buy, err := ledger.CreateBuy(on, c.name, price, qty)
	if err != nil {
		return fail(err)
	}
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("[%d] %s\n", buy.Id, renderer.Record(buy))
	return subcommands.ExitSuccess
}
