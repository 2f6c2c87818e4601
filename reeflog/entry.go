// Package reeflog keeps a reef tank's water-parameter journal: dated
// measurement entries, their trends, and the target values they are
// compared against.
package reeflog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/reeflab/tradebook"
)

// Params lists the measured parameter names in display order.
var Params = []string{"kh", "ca", "mg", "no2", "no3", "po4", "ph", "temp", "salinity", "dose"}

// Entry is one day's water measurements. A zero value means the parameter
// was not measured that day.
type Entry struct {
	Date     tradebook.Date  `json:"date"`
	KH       decimal.Decimal `json:"kh"`
	Ca       decimal.Decimal `json:"ca"`
	Mg       decimal.Decimal `json:"mg"`
	NO2      decimal.Decimal `json:"no2"`
	NO3      decimal.Decimal `json:"no3"`
	PO4      decimal.Decimal `json:"po4"`
	PH       decimal.Decimal `json:"ph"`
	Temp     decimal.Decimal `json:"temp"`
	Salinity decimal.Decimal `json:"salinity"`
	Dose     decimal.Decimal `json:"dose"`
	Memo     string          `json:"memo,omitempty"`
}

// Param returns the named measurement.
func (e Entry) Param(name string) (decimal.Decimal, error) {
	switch name {
	case "kh":
		return e.KH, nil
	case "ca":
		return e.Ca, nil
	case "mg":
		return e.Mg, nil
	case "no2":
		return e.NO2, nil
	case "no3":
		return e.NO3, nil
	case "po4":
		return e.PO4, nil
	case "ph":
		return e.PH, nil
	case "temp":
		return e.Temp, nil
	case "salinity":
		return e.Salinity, nil
	case "dose":
		return e.Dose, nil
	}
	return decimal.Decimal{}, fmt.Errorf("unknown parameter %q", name)
}
