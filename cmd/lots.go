package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/reeflab/tradebook/renderer"
)

type lotsCmd struct {
	name string
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "list the lots still open" }
func (*lotsCmd) Usage() string {
	return `tbk lots [-n <name>]

  Lists the lots with remaining quantity, the ones a sale can draw from.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Only lots of this instrument.")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.LotsMarkdown(ledger.OpenLots(c.name)))
	return subcommands.ExitSuccess
}
