// Package corrupt applies a defect catalogue to a reference table,
// producing the messy teaching fixture.
package corrupt

import (
	"fmt"

	"github.com/dshills/messypenguins/internal/catalogue"
	"github.com/dshills/messypenguins/internal/table"
)

// Apply returns a corrupted copy of t with every catalogue rule applied.
// The input table is never mutated. Rules are applied in declared order;
// if two rules for one column were ever to share a row, the
// first-declared rule wins (the built-in catalogue is validated to make
// that case unreachable).
//
// The seed parameter is reserved for future randomized rule kinds. Every
// built-in kind is a literal position-keyed edit, so the output does not
// depend on it.
func Apply(t *table.Table, rules []catalogue.Rule, seed int64) (*table.Table, error) {
	if err := catalogue.Validate(rules, t.Header, t.RowCount()); err != nil {
		return nil, fmt.Errorf("invalid catalogue: %w", err)
	}

	out := t.Clone()
	touched := make(map[string]map[int]bool)
	for _, r := range rules {
		if touched[r.Column] == nil {
			touched[r.Column] = make(map[int]bool)
		}
		for _, row := range r.Rows {
			if touched[r.Column][row] {
				continue
			}
			touched[r.Column][row] = true

			old, err := out.Cell(row, r.Column)
			if err != nil {
				return nil, fmt.Errorf("applying %s edit: %w", r.Kind, err)
			}
			if err := out.SetCell(row, r.Column, catalogue.Apply(r.Kind, r.Payload, old)); err != nil {
				return nil, fmt.Errorf("applying %s edit: %w", r.Kind, err)
			}
		}
	}
	return out, nil
}
