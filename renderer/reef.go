package renderer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/reeflab/tradebook/reeflog"
)

// targetFor maps a parameter name to its target value, false for parameters
// without a target (temperature, salinity, dose).
func targetFor(t reeflog.Targets, name string) (decimal.Decimal, bool) {
	switch name {
	case "kh":
		return t.KH, true
	case "ca":
		return t.Ca, true
	case "mg":
		return t.Mg, true
	case "no2":
		return t.NO2, true
	case "no3":
		return t.NO3, true
	case "po4":
		return t.PO4, true
	case "ph":
		return t.PH, true
	}
	return decimal.Decimal{}, false
}

// ReefMarkdown renders the reef log summary: the latest measurements with
// their change since the previous entry and the distance to target.
func ReefMarkdown(s reeflog.Summary, targets reeflog.Targets) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Reef Log %s\n\n", s.Latest.Date)
	if s.Latest.Memo != "" {
		fmt.Fprintf(&b, "%s\n\n", s.Latest.Memo)
	}

	fmt.Fprintln(&b, "| Parameter | Value | Change | Target |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, name := range reeflog.Params {
		value, err := s.Latest.Param(name)
		if err != nil {
			continue
		}
		change := ""
		if delta, ok := s.Deltas[name]; ok && !delta.IsZero() {
			change = signed(delta)
		}
		target := ""
		if tv, ok := targetFor(targets, name); ok {
			target = tv.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", strings.ToUpper(name), value, change, target)
	}

	return b.String()
}

func signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.String()
	}
	return d.String()
}
