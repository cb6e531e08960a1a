// Package catalogue defines the declarative defect catalogue: which
// cells of the reference table get which intentional data-quality
// defect. The same rule list drives both the corruption pass and the
// issue report, so the two can never drift apart.
package catalogue

import (
	"strings"

	"github.com/dshills/messypenguins/internal/penguins"
)

// Kind classifies a defect injected into the fixture.
type Kind string

const (
	// Transform kinds derive the corrupted value from the original cell.
	KindWhitespace   Kind = "whitespace"    // payload: leading, trailing, or both
	KindCaseFold     Kind = "case_fold"     // payload: lower or upper
	KindAppendedText Kind = "appended_text" // payload appended to the value

	// Literal kinds replace the cell with the payload verbatim.
	KindTypo         Kind = "typo"
	KindNegative     Kind = "negative"
	KindZero         Kind = "zero"
	KindExtreme      Kind = "extreme"
	KindSentinel     Kind = "sentinel"
	KindMissing      Kind = "missing"
	KindBeforeWindow Kind = "before_window"
	KindAfterWindow  Kind = "after_window"
	KindDigitDropped Kind = "digit_dropped"
	KindDigitAdded   Kind = "digit_added"
	KindAltCoding    Kind = "alt_coding"
)

// IsValidKind reports whether k is one of the defined defect kinds.
func IsValidKind(k Kind) bool {
	switch k {
	case KindWhitespace, KindCaseFold, KindAppendedText,
		KindTypo, KindNegative, KindZero, KindExtreme, KindSentinel,
		KindMissing, KindBeforeWindow, KindAfterWindow,
		KindDigitDropped, KindDigitAdded, KindAltCoding:
		return true
	}
	return false
}

// Rule targets one defect kind at a set of 1-based row positions in one
// column. Row sets of rules sharing a column must be disjoint; Validate
// enforces this at construction time.
type Rule struct {
	Column  string `json:"column" yaml:"column"`
	Rows    []int  `json:"rows" yaml:"rows"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Payload string `json:"payload" yaml:"payload"`
}

// Apply computes the corrupted value for a single cell. Transform kinds
// derive it from old; every other kind returns the payload as-is.
func Apply(kind Kind, payload, old string) string {
	switch kind {
	case KindWhitespace:
		switch payload {
		case "leading":
			return " " + old
		case "trailing":
			return old + "  "
		default: // both
			return " " + old + " "
		}
	case KindCaseFold:
		if payload == "upper" {
			return strings.ToUpper(old)
		}
		return strings.ToLower(old)
	case KindAppendedText:
		return old + payload
	default:
		return payload
	}
}

// Default returns the built-in defect catalogue for the reference
// dataset. Row positions are 1-based data rows; the literal payloads
// assume the pinned cells of the embedded reference (for example, row
// 278's island is Torgersen, so the typo payload misspells it).
func Default() []Rule {
	return []Rule{
		// species: surface-form noise on a categorical label
		{Column: penguins.ColSpecies, Rows: []int{3, 58, 143}, Kind: KindWhitespace, Payload: "both"},
		{Column: penguins.ColSpecies, Rows: []int{21, 77, 190}, Kind: KindCaseFold, Payload: "lower"},
		{Column: penguins.ColSpecies, Rows: []int{105, 233}, Kind: KindCaseFold, Payload: "upper"},
		{Column: penguins.ColSpecies, Rows: []int{49, 161}, Kind: KindAppendedText, Payload: " penguin"},
		{Column: penguins.ColSpecies, Rows: []int{88}, Kind: KindTypo, Payload: "Adalie"},

		// island: misspellings plus the same surface-form noise
		{Column: penguins.ColIsland, Rows: []int{278}, Kind: KindTypo, Payload: "Torgerson"},
		{Column: penguins.ColIsland, Rows: []int{132}, Kind: KindTypo, Payload: "Biscoa"},
		{Column: penguins.ColIsland, Rows: []int{44, 209}, Kind: KindWhitespace, Payload: "leading"},
		{Column: penguins.ColIsland, Rows: []int{165, 301}, Kind: KindCaseFold, Payload: "lower"},

		// bill_length_mm: impossible values, sentinels, missing markers
		{Column: penguins.ColBillLength, Rows: []int{12}, Kind: KindNegative, Payload: "-5.2"},
		{Column: penguins.ColBillLength, Rows: []int{31, 97, 202, 311}, Kind: KindMissing, Payload: "NA"},
		{Column: penguins.ColBillLength, Rows: []int{140}, Kind: KindZero, Payload: "0"},
		{Column: penguins.ColBillLength, Rows: []int{256}, Kind: KindExtreme, Payload: "481.9"},
		{Column: penguins.ColBillLength, Rows: []int{67, 180}, Kind: KindSentinel, Payload: "999"},

		// bill_depth_mm
		{Column: penguins.ColBillDepth, Rows: []int{25}, Kind: KindNegative, Payload: "-3.1"},
		{Column: penguins.ColBillDepth, Rows: []int{158, 290}, Kind: KindSentinel, Payload: "999"},
		{Column: penguins.ColBillDepth, Rows: []int{73, 214}, Kind: KindMissing, Payload: "NA"},
		{Column: penguins.ColBillDepth, Rows: []int{119}, Kind: KindExtreme, Payload: "210.4"},

		// flipper_length_mm
		{Column: penguins.ColFlipperLength, Rows: []int{54}, Kind: KindZero, Payload: "0"},
		{Column: penguins.ColFlipperLength, Rows: []int{183}, Kind: KindExtreme, Payload: "2090"},
		{Column: penguins.ColFlipperLength, Rows: []int{246, 330}, Kind: KindMissing, Payload: "NA"},
		{Column: penguins.ColFlipperLength, Rows: []int{99}, Kind: KindSentinel, Payload: "-999"},

		// body_mass_g
		{Column: penguins.ColBodyMass, Rows: []int{17}, Kind: KindNegative, Payload: "-4250"},
		{Column: penguins.ColBodyMass, Rows: []int{230}, Kind: KindSentinel, Payload: "999"},
		{Column: penguins.ColBodyMass, Rows: []int{86, 307}, Kind: KindMissing, Payload: "NA"},
		{Column: penguins.ColBodyMass, Rows: []int{150}, Kind: KindExtreme, Payload: "42500"},

		// sex: every common alternate surface form of the two codes
		{Column: penguins.ColSex, Rows: []int{8, 126}, Kind: KindAltCoding, Payload: "M"},
		{Column: penguins.ColSex, Rows: []int{63, 272}, Kind: KindAltCoding, Payload: "F"},
		{Column: penguins.ColSex, Rows: []int{199}, Kind: KindAltCoding, Payload: "MALE"},
		{Column: penguins.ColSex, Rows: []int{288}, Kind: KindAltCoding, Payload: "FEMALE"},
		{Column: penguins.ColSex, Rows: []int{40}, Kind: KindAltCoding, Payload: "Male"},
		{Column: penguins.ColSex, Rows: []int{322}, Kind: KindAltCoding, Payload: "Female"},

		// year: out-of-window and digit-corruption errors
		{Column: penguins.ColYear, Rows: []int{29}, Kind: KindBeforeWindow, Payload: "1907"},
		{Column: penguins.ColYear, Rows: []int{250}, Kind: KindAfterWindow, Payload: "2107"},
		{Column: penguins.ColYear, Rows: []int{112}, Kind: KindDigitDropped, Payload: "207"},
		{Column: penguins.ColYear, Rows: []int{341}, Kind: KindDigitAdded, Payload: "20088"},
	}
}
