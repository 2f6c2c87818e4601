package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/reeflab/tradebook/reeflog"
)

type reefAddCmd struct {
	date string
	vals map[string]*string
	memo string
}

func (*reefAddCmd) Name() string     { return "reef-add" }
func (*reefAddCmd) Synopsis() string { return "append a measurement entry to the reef log" }
func (*reefAddCmd) Usage() string {
	return `tbk reef-add [-d <date>] [-kh <v>] [-ca <v>] [-mg <v>] [-no2 <v>] [-no3 <v>] [-po4 <v>] [-ph <v>] [-temp <v>] [-salinity <v>] [-dose <v>] [-memo <text>]

  Appends one day's measurements. Parameters you did not measure can be
  left out.
`
}

func (c *reefAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the measurements (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.memo, "memo", "", "Free-form note for the day.")
	c.vals = make(map[string]*string)
	for _, name := range reeflog.Params {
		c.vals[name] = f.String(name, "", "Measured "+name+" value.")
	}
}

func (c *reefAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateOrToday(c.date)
	if err != nil {
		return fail(err)
	}

	entry := reeflog.Entry{Date: on, Memo: c.memo}
	fields := map[string]*decimal.Decimal{
		"kh": &entry.KH, "ca": &entry.Ca, "mg": &entry.Mg,
		"no2": &entry.NO2, "no3": &entry.NO3, "po4": &entry.PO4,
		"ph": &entry.PH, "temp": &entry.Temp, "salinity": &entry.Salinity,
		"dose": &entry.Dose,
	}
	for name, raw := range c.vals {
		if *raw == "" {
			continue
		}
		d, err := decimal.NewFromString(*raw)
		if err != nil {
			return fail(fmt.Errorf("invalid %s value %q: %w", name, *raw, err))
		}
		*fields[name] = d
	}

	log, err := decodeReefLog()
	if err != nil {
		return fail(err)
	}
	log.Append(entry)
	if err := encodeReefLog(log); err != nil {
		return fail(err)
	}

	fmt.Printf("Logged measurements for %s.\n", on)
	return subcommands.ExitSuccess
}
