package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/reeflab/tradebook"
	"github.com/reeflab/tradebook/reeflog"
	"github.com/reeflab/tradebook/renderer"
)

type reefCmd struct {
	param string
	start string
	end   string
	csv   bool
}

func (*reefCmd) Name() string     { return "reef" }
func (*reefCmd) Synopsis() string { return "show the reef log summary or a parameter trend" }
func (*reefCmd) Usage() string {
	return `tbk reef [-param <name>] [-s <start_date>] [-d <end_date>] [-csv]

  Without flags, shows the latest measurements with their change since the
  previous entry and the target values. -param shows the dated values of
  one parameter instead. -csv exports the selected range as CSV to stdout.
`
}

func (c *reefCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.param, "param", "", "Parameter to trend ("+strings.Join(reeflog.Params, ", ")+").")
	f.StringVar(&c.start, "s", "", "Start of the date range (YYYY-MM-DD).")
	f.StringVar(&c.end, "d", "", "End of the date range (YYYY-MM-DD).")
	f.BoolVar(&c.csv, "csv", false, "Export the selected range as CSV.")
}

func (c *reefCmd) dateRange() (tradebook.Range, error) {
	var from, to tradebook.Date
	var err error
	if c.start != "" {
		if from, err = tradebook.ParseDate(c.start); err != nil {
			return tradebook.Range{}, err
		}
	}
	if c.end != "" {
		if to, err = tradebook.ParseDate(c.end); err != nil {
			return tradebook.Range{}, err
		}
	}
	return tradebook.NewRange(from, to), nil
}

func (c *reefCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log, err := decodeReefLog()
	if err != nil {
		return fail(err)
	}
	r, err := c.dateRange()
	if err != nil {
		return fail(err)
	}

	if c.csv {
		if err := reeflog.WriteCSV(os.Stdout, log.Between(r)); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	if c.param != "" {
		trend, err := log.Trend(c.param)
		if err != nil {
			return fail(err)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "# %s\n\n", strings.ToUpper(c.param))
		fmt.Fprintln(&b, "| Date | Value |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, sample := range trend {
			if !r.Contains(sample.Date) {
				continue
			}
			fmt.Fprintf(&b, "| %s | %s |\n", sample.Date, sample.Value)
		}
		printMarkdown(b.String())
		return subcommands.ExitSuccess
	}

	summary, err := log.Summarize()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ReefMarkdown(summary, reeflog.DefaultTargets()))
	return subcommands.ExitSuccess
}
