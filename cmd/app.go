// Package cmd implements the CLI application to manage a trade journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/reeflab/tradebook"
	"github.com/reeflab/tradebook/reeflog"
)

// Commands lists the subcommands in registration order. A main package
// registers each of them on its commander and calls Execute on the
// user-selected one.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&otherCmd{},
	&editCmd{},
	&rmCmd{},
	&lotsCmd{},
	&seriesCmd{},
	&summaryCmd{},
	&reefCmd{},
	&reefAddCmd{},
	&topicCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "tradebook.json", "Path to the ledger snapshot file (JSON array)")
var reefFile = flag.String("reef-file", "reeflog.jsonl", "Path to the reef log file (JSONL format)")
var currency = flag.String("currency", "", "ISO currency code used to format money in reports (e.g. KRW)")

// decodeLedger loads the app ledger snapshot. A missing file is not an
// error: it yields an empty ledger so the first command can bootstrap it.
func decodeLedger() (*tradebook.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
		return tradebook.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return tradebook.DecodeSnapshot(f)
}

// encodeLedger writes the whole ledger back to the app snapshot file.
func encodeLedger(l *tradebook.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return tradebook.EncodeSnapshot(f, l)
}

// decodeReefLog loads the app reef log, empty when the file is missing.
func decodeReefLog() (*reeflog.Log, error) {
	f, err := os.Open(*reefFile)
	if errors.Is(err, fs.ErrNotExist) {
		return &reeflog.Log{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open reef log %q: %w", *reefFile, err)
	}
	defer f.Close()
	return reeflog.Decode(f)
}

// encodeReefLog writes the reef log back to the app reef file.
func encodeReefLog(l *reeflog.Log) error {
	f, err := os.Create(*reefFile)
	if err != nil {
		return fmt.Errorf("could not write reef log %q: %w", *reefFile, err)
	}
	defer f.Close()
	return l.Encode(f)
}

// printMarkdown renders markdown to the terminal. When rendering fails the
// raw markdown is printed instead, so reports survive dumb terminals.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// display formats a money value with the app currency flag when set.
func display(m tradebook.Money) string {
	if *currency == "" {
		return m.SignedString()
	}
	return m.Display(*currency)
}

// parseMoney parses a decimal CLI argument into a Money value.
func parseMoney(s string) (tradebook.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return tradebook.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return tradebook.M(d), nil
}

// parseQuantity parses a decimal CLI argument into a Quantity value.
func parseQuantity(s string) (tradebook.Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return tradebook.Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return tradebook.Q(d), nil
}

// parseDateOrToday parses a CLI date, defaulting to today when empty.
func parseDateOrToday(s string) (tradebook.Date, error) {
	if s == "" {
		return tradebook.Today(), nil
	}
	return tradebook.ParseDate(s)
}

// fail prints an error to stderr and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	if errors.Is(err, tradebook.ErrInvalidInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
