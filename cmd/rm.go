package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/reeflab/tradebook"
)

type rmCmd struct {
	id      int64
	cascade bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a record by id" }
func (*rmCmd) Usage() string {
	return `tbk rm -id <id> [-cascade]

  Deletes a record. Deleting a sell returns its quantity to the lot. A lot
  with linked sells is protected; -cascade deletes the lot together with
  all of its sells.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the record to delete.")
	f.BoolVar(&c.cascade, "cascade", false, "Also delete the sells linked to a lot.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}

	if c.cascade {
		err = ledger.DeleteBuyCascade(c.id)
	} else {
		err = ledger.DeleteRecord(c.id)
		if errors.Is(err, tradebook.ErrDependentRecords) {
			fmt.Fprintln(os.Stderr, "Hint: rerun with -cascade to delete the lot and its sells together.")
		}
	}
	if err != nil {
		return fail(err)
	}
	if err := encodeLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Deleted record %d.\n", c.id)
	return subcommands.ExitSuccess
}
