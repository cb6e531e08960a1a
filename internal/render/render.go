package render

import (
	"fmt"

	"github.com/dshills/messypenguins/internal/report"
)

// Renderer formats a Report into bytes for output.
type Renderer interface {
	Render(rep *report.Report) ([]byte, error)
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "text" (default), "json", "md".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "text", "":
		return &textRenderer{}, nil
	case "json":
		return &jsonRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are text, json, md", format)
	}
}
