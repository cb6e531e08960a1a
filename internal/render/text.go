package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/dshills/messypenguins/internal/report"
)

type textRenderer struct{}

var textFuncs = template.FuncMap{
	"pct": func(f float64) string { return fmt.Sprintf("%.2f%%", f*100) },
}

var textTemplate = template.Must(template.New("report").Funcs(textFuncs).Parse(
	`{{ .Tool }} {{ .Version }} — injected data-quality issues
Source: {{ .Source }} ({{ .SourceHash }})
Shape:  {{ .RowCount }} rows x {{ .ColumnCount }} columns
{{ range .Columns }}
{{ .Column }} ({{ .Total }} issues)
{{- range .Categories }}
  {{ printf "%-14s %d" .Kind .Count }}
{{- end }}
{{ end }}
Total: {{ .TotalIssues }} issues across {{ .CellCount }} cells ({{ pct .DefectRate }} defect rate)
`))

func (r *textRenderer) Render(rep *report.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := textTemplate.Execute(&buf, rep); err != nil {
		return nil, fmt.Errorf("rendering text: %w", err)
	}
	return buf.Bytes(), nil
}
