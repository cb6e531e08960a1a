// Package report derives the issue summary from the defect catalogue.
// Counts are always computed from the rule list itself, never written
// down separately, so the report cannot drift from what was injected.
package report

import (
	"github.com/dshills/messypenguins/internal/catalogue"
)

// Report is the top-level summary of one corruption run.
type Report struct {
	Tool        string          `json:"tool"`
	Version     string          `json:"version"`
	Source      string          `json:"source"`
	SourceHash  string          `json:"source_hash"`
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	CellCount   int             `json:"cell_count"` // rows x columns
	Columns     []ColumnSummary `json:"columns"`
	TotalIssues int             `json:"total_issues"`
	DefectRate  float64         `json:"defect_rate"` // issues / cells
}

// ColumnSummary lists the defect categories injected into one column.
type ColumnSummary struct {
	Column     string          `json:"column"`
	Categories []CategoryCount `json:"categories"`
	Total      int             `json:"total"`
}

// CategoryCount is the number of cells hit by one defect kind.
type CategoryCount struct {
	Kind  catalogue.Kind `json:"kind"`
	Count int            `json:"count"`
}

// Summarize builds the report for a rule list applied to a table of the
// given shape. Columns appear in table order; within a column, kinds
// appear in first-declared order, with repeated kinds merged.
func Summarize(rules []catalogue.Rule, columns []string, rowCount int) *Report {
	byColumn := make(map[string][]CategoryCount)
	for _, r := range rules {
		cats := byColumn[r.Column]
		merged := false
		for i := range cats {
			if cats[i].Kind == r.Kind {
				cats[i].Count += len(r.Rows)
				merged = true
				break
			}
		}
		if !merged {
			cats = append(cats, CategoryCount{Kind: r.Kind, Count: len(r.Rows)})
		}
		byColumn[r.Column] = cats
	}

	rep := &Report{
		RowCount:    rowCount,
		ColumnCount: len(columns),
		CellCount:   rowCount * len(columns),
	}
	for _, col := range columns {
		cats := byColumn[col]
		if len(cats) == 0 {
			continue
		}
		total := 0
		for _, c := range cats {
			total += c.Count
		}
		rep.Columns = append(rep.Columns, ColumnSummary{Column: col, Categories: cats, Total: total})
		rep.TotalIssues += total
	}
	if rep.CellCount > 0 {
		rep.DefectRate = float64(rep.TotalIssues) / float64(rep.CellCount)
	}
	return rep
}
