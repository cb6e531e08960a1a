package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/messypenguins/internal/catalogue"
	"github.com/dshills/messypenguins/internal/report"
)

func sampleReport() *report.Report {
	return &report.Report{
		Tool:        "messypenguins",
		Version:     "1.0",
		Source:      "embedded:penguins.csv",
		SourceHash:  "sha256:abcd",
		RowCount:    344,
		ColumnCount: 8,
		CellCount:   2752,
		Columns: []report.ColumnSummary{
			{
				Column: "species",
				Categories: []report.CategoryCount{
					{Kind: catalogue.KindWhitespace, Count: 3},
					{Kind: catalogue.KindTypo, Count: 1},
				},
				Total: 4,
			},
		},
		TotalIssues: 4,
		DefectRate:  4.0 / 2752.0,
	}
}

func TestNewRenderer_Text(t *testing.T) {
	r, err := NewRenderer("text")
	if err != nil {
		t.Fatalf("NewRenderer text: %v", err)
	}
	out, err := r.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{
		"344 rows x 8 columns",
		"species (4 issues)",
		"whitespace",
		"Total: 4 issues across 2752 cells",
		"0.15%",
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestNewRenderer_JSON(t *testing.T) {
	r, err := NewRenderer("json")
	if err != nil {
		t.Fatalf("NewRenderer json: %v", err)
	}
	out, err := r.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var decoded report.Report
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, out)
	}
	if decoded.TotalIssues != 4 {
		t.Errorf("TotalIssues = %d, want 4", decoded.TotalIssues)
	}
	if len(decoded.Columns) != 1 || decoded.Columns[0].Column != "species" {
		t.Errorf("columns did not round-trip: %+v", decoded.Columns)
	}
}

func TestNewRenderer_Markdown(t *testing.T) {
	r, err := NewRenderer("md")
	if err != nil {
		t.Fatalf("NewRenderer md: %v", err)
	}
	out, err := r.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{
		"# Messy Penguins Report",
		"## species — 4 issues",
		"| whitespace | 3 |",
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestNewRenderer_DefaultIsText(t *testing.T) {
	r, err := NewRenderer("")
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if _, ok := r.(*textRenderer); !ok {
		t.Errorf("empty format should select text, got %T", r)
	}
}

func TestNewRenderer_Unknown(t *testing.T) {
	if _, err := NewRenderer("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
