package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/reeflab/tradebook"
	"github.com/reeflab/tradebook/renderer"
)

type editCmd struct {
	id     int64
	date   string
	name   string
	price  string
	qty    string
	amount string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing record by id" }
func (*editCmd) Usage() string {
	return `tbk edit -id <id> [-d <date>] [-n <name>] [-p <unit_price>] [-q <quantity>] [-a <amount>]

  Edits the fields given by flags and leaves the others untouched.
  Repricing a lot recomputes the profit of its linked sells; changing
  quantities is rejected when it would break the lot bookkeeping.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the record to edit.")
	f.StringVar(&c.date, "d", "", "New date (YYYY-MM-DD).")
	f.StringVar(&c.name, "n", "", "New name (buys and cash records only).")
	f.StringVar(&c.price, "p", "", "New unit price (buys and sells only).")
	f.StringVar(&c.qty, "q", "", "New quantity (buys and sells only).")
	f.StringVar(&c.amount, "a", "", "New amount (cash records only).")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	var patch tradebook.Patch
	touched := false
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "d":
			var on tradebook.Date
			if on, err = tradebook.ParseDate(c.date); err == nil {
				patch.Date = &on
				touched = true
			}
		case "n":
			patch.Name = &c.name
			touched = true
		case "p":
			var price tradebook.Money
			if price, err = parseMoney(c.price); err == nil {
				patch.UnitPrice = &price
				touched = true
			}
		case "q":
			var qty tradebook.Quantity
			if qty, err = parseQuantity(c.qty); err == nil {
				patch.Quantity = &qty
				touched = true
			}
		case "a":
			var amount tradebook.Money
			if amount, err = parseMoney(c.amount); err == nil {
				patch.Amount = &amount
				touched = true
			}
		}
	})
	if err != nil {
		return fail(err)
	}
	if !touched {
		fmt.Fprintln(os.Stderr, "Error: nothing to edit, give at least one field flag.")
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	rec, err := ledger.UpdateRecord(c.id, patch)
	if err != nil {
		return fail(err)
	}
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("[%d] %s\n", rec.ID(), renderer.Record(rec))
	return subcommands.ExitSuccess
}
