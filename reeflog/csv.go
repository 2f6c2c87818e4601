package reeflog

import (
	"encoding/csv"
	"io"
)

var csvHeader = []string{"date", "kh", "ca", "mg", "no2", "no3", "po4", "ph", "temp", "salinity", "dose", "memo"}

// WriteCSV exports entries as CSV with a header row, in the given order.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{e.Date.String()}
		for _, name := range Params {
			v, _ := e.Param(name)
			row = append(row, v.String())
		}
		row = append(row, e.Memo)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
