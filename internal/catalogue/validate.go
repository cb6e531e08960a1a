package catalogue

import "fmt"

// Validate checks a rule list against the documented table shape:
// every rule names a known column and kind, carries a payload, targets
// sorted unique rows within 1..rowCount, and no two rules for the same
// column share a row position. Disjointness is a construction invariant
// of the catalogue, so a violation here is a programming error, not a
// data error.
func Validate(rules []Rule, columns []string, rowCount int) error {
	known := make(map[string]bool, len(columns))
	for _, c := range columns {
		known[c] = true
	}

	seen := make(map[string]map[int]int) // column -> row -> rule index
	for i, r := range rules {
		prefix := fmt.Sprintf("rule[%d]", i)

		if !known[r.Column] {
			return fmt.Errorf("%s: unknown column %q", prefix, r.Column)
		}
		if !IsValidKind(r.Kind) {
			return fmt.Errorf("%s: unknown kind %q", prefix, r.Kind)
		}
		if r.Payload == "" {
			return fmt.Errorf("%s: payload is required", prefix)
		}
		if err := validatePayload(r.Kind, r.Payload); err != nil {
			return fmt.Errorf("%s: %w", prefix, err)
		}
		if len(r.Rows) == 0 {
			return fmt.Errorf("%s: no row positions", prefix)
		}

		if seen[r.Column] == nil {
			seen[r.Column] = make(map[int]int)
		}
		prev := 0
		for _, row := range r.Rows {
			if row < 1 || row > rowCount {
				return fmt.Errorf("%s: row %d out of range 1..%d", prefix, row, rowCount)
			}
			if row <= prev {
				return fmt.Errorf("%s: rows must be sorted and unique (row %d after %d)", prefix, row, prev)
			}
			prev = row
			if other, dup := seen[r.Column][row]; dup {
				return fmt.Errorf("%s: row %d of column %q already targeted by rule[%d]", prefix, row, r.Column, other)
			}
			seen[r.Column][row] = i
		}
	}
	return nil
}

// validatePayload checks the mode strings of the transform kinds. Literal
// kinds accept any non-empty payload.
func validatePayload(kind Kind, payload string) error {
	switch kind {
	case KindWhitespace:
		switch payload {
		case "leading", "trailing", "both":
			return nil
		}
		return fmt.Errorf("whitespace payload must be leading, trailing, or both, got %q", payload)
	case KindCaseFold:
		switch payload {
		case "lower", "upper":
			return nil
		}
		return fmt.Errorf("case_fold payload must be lower or upper, got %q", payload)
	}
	return nil
}

// CountEdits returns the total number of cell edits the rule list
// describes, the sum of its row-position set sizes.
func CountEdits(rules []Rule) int {
	n := 0
	for _, r := range rules {
		n += len(r.Rows)
	}
	return n
}
