package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/dshills/messypenguins/internal/report"
)

type markdownRenderer struct{}

var mdTemplate = template.Must(template.New("report").Funcs(textFuncs).Parse(
	`# Messy Penguins Report

**Source:** {{ .Source }} ({{ .SourceHash }})
**Shape:** {{ .RowCount }} rows × {{ .ColumnCount }} columns
**Total issues:** {{ .TotalIssues }} / {{ .CellCount }} cells ({{ pct .DefectRate }})
{{ range .Columns }}
## {{ .Column }} — {{ .Total }} issues

| Category | Count |
|---|---|
{{- range .Categories }}
| {{ .Kind }} | {{ .Count }} |
{{- end }}
{{ end }}
---
*Generated by {{ .Tool }} {{ .Version }}*
`))

func (r *markdownRenderer) Render(rep *report.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, rep); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
