package reeflog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Targets holds the tank volume and the values the measurements aim for.
type Targets struct {
	VolumeLiters decimal.Decimal `json:"volumeLiters"`
	KH           decimal.Decimal `json:"kh"`
	Ca           decimal.Decimal `json:"ca"`
	Mg           decimal.Decimal `json:"mg"`
	NO2          decimal.Decimal `json:"no2"`
	NO3          decimal.Decimal `json:"no3"`
	PO4          decimal.Decimal `json:"po4"`
	PH           decimal.Decimal `json:"ph"`
}

// DefaultTargets returns the stock target values for a mixed reef.
func DefaultTargets() Targets {
	return Targets{
		VolumeLiters: decimal.NewFromInt(150),
		KH:           decimal.RequireFromString("8.30"),
		Ca:           decimal.NewFromInt(420),
		Mg:           decimal.NewFromInt(1420),
		NO2:          decimal.RequireFromString("0.010"),
		NO3:          decimal.RequireFromString("5.00"),
		PO4:          decimal.RequireFromString("0.040"),
		PH:           decimal.RequireFromString("8.30"),
	}
}

// EncodeTargets writes the targets as an indented JSON object.
func EncodeTargets(w io.Writer, t Targets) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// DecodeTargets reads a targets object written by EncodeTargets.
func DecodeTargets(r io.Reader) (Targets, error) {
	var t Targets
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return Targets{}, fmt.Errorf("could not decode targets: %w", err)
	}
	return t, nil
}
