// Package penguins embeds the clean reference dataset and documents its
// column semantics: canonical category labels, plausible measurement
// ranges, and the study-year window.
package penguins

import (
	_ "embed"

	"github.com/dshills/messypenguins/internal/table"
)

//go:embed penguins.csv
var referenceCSV []byte

// Column names of the reference table, in serialization order.
const (
	ColSpecies       = "species"
	ColIsland        = "island"
	ColBillLength    = "bill_length_mm"
	ColBillDepth     = "bill_depth_mm"
	ColFlipperLength = "flipper_length_mm"
	ColBodyMass      = "body_mass_g"
	ColSex           = "sex"
	ColYear          = "year"
)

// Study-year window of the reference data.
const (
	YearMin = 2007
	YearMax = 2009
)

// Columns returns the documented column names in order.
func Columns() []string {
	return []string{
		ColSpecies, ColIsland,
		ColBillLength, ColBillDepth, ColFlipperLength, ColBodyMass,
		ColSex, ColYear,
	}
}

// Reference returns the embedded clean dataset.
func Reference() (*table.Table, error) {
	return table.Parse(referenceCSV, "embedded:penguins.csv")
}

// Range is a closed plausible interval for a continuous measurement.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the plausible interval.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Ranges returns the biologically plausible interval per measurement
// column. The intervals bracket every value in the reference data with
// margin; values outside them are impossible for live penguins.
func Ranges() map[string]Range {
	return map[string]Range{
		ColBillLength:    {Min: 25, Max: 70},
		ColBillDepth:     {Min: 10, Max: 25},
		ColFlipperLength: {Min: 160, Max: 240},
		ColBodyMass:      {Min: 2500, Max: 6500},
	}
}

// CanonicalSpecies returns the valid species labels.
func CanonicalSpecies() []string { return []string{"Adelie", "Chinstrap", "Gentoo"} }

// CanonicalIslands returns the valid island labels.
func CanonicalIslands() []string { return []string{"Biscoe", "Dream", "Torgersen"} }

// CanonicalSexes returns the two valid sex codes.
func CanonicalSexes() []string { return []string{"female", "male"} }
