// Package audit scans a penguins-shaped table for the defect classes the
// fixture generator injects: stray whitespace, non-canonical labels and
// codes, sentinel placeholders, impossible measurements, out-of-window
// years, and missing markers. It is the checking half of the tutorial,
// fixed to this dataset's documented columns.
package audit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/cases"

	"github.com/dshills/messypenguins/internal/penguins"
)

// Category classifies a defect found in a scanned table.
type Category string

const (
	CategoryMissingValue      Category = "missing_value"
	CategoryStrayWhitespace   Category = "stray_whitespace"
	CategoryNoncanonicalLabel Category = "noncanonical_label"
	CategoryUnknownLabel      Category = "unknown_label"
	CategorySentinelValue     Category = "sentinel_value"
	CategoryOutOfRange        Category = "out_of_range"
	CategoryOutOfWindowYear   Category = "out_of_window_year"
	CategoryNonnumeric        Category = "nonnumeric"
)

// Finding is one defective cell. Row positions are 1-based data rows.
type Finding struct {
	Row      int      `json:"row"`
	Column   string   `json:"column"`
	Category Category `json:"category"`
	Value    string   `json:"value"`
}

// CategoryCount pairs a category with its occurrence count.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// Missing-value surface forms. "NaN" covers the dataframe library's
// rendering of cells it recognised as NA on load.
var missingMarkers = map[string]bool{
	"": true, "NA": true, "N/A": true, "NaN": true, "null": true, "NULL": true,
}

// Sentinel placeholders analysts historically used to mean "unset".
var sentinels = map[string]bool{
	"999": true, "-999": true, "9999": true, "-9999": true,
}

// Load reads a comma-delimited table into a dataframe without type
// detection, so cell surface forms are preserved for scanning.
func Load(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, fmt.Errorf("loading table: %w", df.Err)
	}
	names := make(map[string]bool, df.Ncol())
	for _, n := range df.Names() {
		names[n] = true
	}
	for _, col := range penguins.Columns() {
		if !names[col] {
			return df, fmt.Errorf("missing column %q", col)
		}
	}
	return df, nil
}

// Scan walks every cell of the documented columns and reports at most
// one finding per cell, checked in order: missing marker, stray
// whitespace, then the column-specific rule.
func Scan(df dataframe.DataFrame) ([]Finding, error) {
	records := df.Records()
	if len(records) < 2 {
		return nil, fmt.Errorf("table has no data rows")
	}
	header := records[0]
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}

	var findings []Finding
	add := func(row int, col string, cat Category, val string) {
		findings = append(findings, Finding{Row: row, Column: col, Category: cat, Value: val})
	}

	ranges := penguins.Ranges()
	for i, rec := range records[1:] {
		row := i + 1
		for _, col := range penguins.Columns() {
			raw := rec[index[col]]
			trimmed := strings.TrimSpace(raw)

			if missingMarkers[trimmed] {
				add(row, col, CategoryMissingValue, raw)
				continue
			}
			if raw != trimmed {
				add(row, col, CategoryStrayWhitespace, raw)
				continue
			}

			switch col {
			case penguins.ColSpecies:
				if cat, bad := checkLabel(trimmed, penguins.CanonicalSpecies()); bad {
					add(row, col, cat, raw)
				}
			case penguins.ColIsland:
				if cat, bad := checkLabel(trimmed, penguins.CanonicalIslands()); bad {
					add(row, col, cat, raw)
				}
			case penguins.ColSex:
				if cat, bad := checkSex(trimmed); bad {
					add(row, col, cat, raw)
				}
			case penguins.ColYear:
				year, err := strconv.Atoi(trimmed)
				switch {
				case err != nil:
					add(row, col, CategoryNonnumeric, raw)
				case year < penguins.YearMin || year > penguins.YearMax:
					add(row, col, CategoryOutOfWindowYear, raw)
				}
			default: // continuous measurements
				if sentinels[trimmed] {
					add(row, col, CategorySentinelValue, raw)
					continue
				}
				v, err := strconv.ParseFloat(trimmed, 64)
				switch {
				case err != nil:
					add(row, col, CategoryNonnumeric, raw)
				case !ranges[col].Contains(v):
					add(row, col, CategoryOutOfRange, raw)
				}
			}
		}
	}
	return findings, nil
}

// Summarize aggregates findings into per-category counts, in a fixed
// category order.
func Summarize(findings []Finding) []CategoryCount {
	order := []Category{
		CategoryMissingValue, CategoryStrayWhitespace,
		CategoryNoncanonicalLabel, CategoryUnknownLabel,
		CategorySentinelValue, CategoryOutOfRange,
		CategoryOutOfWindowYear, CategoryNonnumeric,
	}
	counts := make(map[Category]int)
	for _, f := range findings {
		counts[f.Category]++
	}
	var out []CategoryCount
	for _, c := range order {
		if counts[c] > 0 {
			out = append(out, CategoryCount{Category: c, Count: counts[c]})
		}
	}
	return out
}

var fold = cases.Fold()

// checkLabel classifies a categorical label against its canonical set.
// A caseless match or a canonical prefix with trailing text is a
// non-canonical surface form; anything else is an unknown label.
func checkLabel(v string, canonical []string) (Category, bool) {
	fv := fold.String(v)
	for _, c := range canonical {
		if v == c {
			return "", false
		}
		fc := fold.String(c)
		if fv == fc || strings.HasPrefix(fv, fc+" ") {
			return CategoryNoncanonicalLabel, true
		}
	}
	return CategoryUnknownLabel, true
}

// checkSex classifies a sex code. The canonical codes are lowercase;
// case variants and single-letter abbreviations are non-canonical.
func checkSex(v string) (Category, bool) {
	fv := fold.String(v)
	for _, c := range penguins.CanonicalSexes() {
		if v == c {
			return "", false
		}
		if fv == fold.String(c) || fv == fold.String(c[:1]) {
			return CategoryNoncanonicalLabel, true
		}
	}
	return CategoryUnknownLabel, true
}
