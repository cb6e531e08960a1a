package render

import (
	"encoding/json"

	"github.com/dshills/messypenguins/internal/report"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(rep *report.Report) ([]byte, error) {
	return json.MarshalIndent(rep, "", "  ")
}
