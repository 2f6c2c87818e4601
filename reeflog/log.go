package reeflog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/reeflab/tradebook"
)

// Log is a date-sorted collection of measurement entries.
type Log struct {
	entries []Entry
}

// Append adds entries to the log and restores date order. The sort is
// stable, so two entries on the same date keep their append order.
func (l *Log) Append(entries ...Entry) {
	l.entries = append(l.entries, entries...)
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Date.Before(l.entries[j].Date)
	})
}

// Len returns the number of entries in the log.
func (l *Log) Len() int { return len(l.entries) }

// Between returns the entries dated within r, oldest first.
func (l *Log) Between(r tradebook.Range) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if r.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// Latest returns the newest entry, false on an empty log.
func (l *Log) Latest() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Summary is a snapshot of the newest entry with per-parameter deltas
// against the entry before it.
type Summary struct {
	Latest Entry
	// Deltas maps a parameter name to latest minus previous; empty when
	// the log has a single entry.
	Deltas map[string]decimal.Decimal
}

// Summarize builds the Summary of the log.
func (l *Log) Summarize() (Summary, error) {
	latest, ok := l.Latest()
	if !ok {
		return Summary{}, fmt.Errorf("the log has no entries")
	}
	s := Summary{Latest: latest, Deltas: make(map[string]decimal.Decimal)}
	if len(l.entries) < 2 {
		return s, nil
	}
	prev := l.entries[len(l.entries)-2]
	for _, name := range Params {
		cur, _ := latest.Param(name)
		was, _ := prev.Param(name)
		s.Deltas[name] = cur.Sub(was)
	}
	return s, nil
}

// Sample is one (date, value) point of a parameter's trend.
type Sample struct {
	Date  tradebook.Date
	Value decimal.Decimal
}

// Trend returns the dated values of one parameter, oldest first.
func (l *Log) Trend(param string) ([]Sample, error) {
	var out []Sample
	for _, e := range l.entries {
		v, err := e.Param(param)
		if err != nil {
			return nil, err
		}
		out = append(out, Sample{Date: e.Date, Value: v})
	}
	return out, nil
}

// Encode writes the log as JSON lines, one entry per line, oldest first.
func (l *Log) Encode(w io.Writer) error {
	for _, e := range l.entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal entry of %s: %w", e.Date, err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a JSON-lines log. Blank lines are skipped; entries are
// re-sorted by date on the way in.
func Decode(r io.Reader) (*Log, error) {
	log := &Log{}
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		log.Append(e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return log, nil
}
