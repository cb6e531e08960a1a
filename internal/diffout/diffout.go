// Package diffout renders the clean-to-messy change set as
// diff-match-patch patch text, so tutorial readers can see exactly which
// cells the corruption pass touched.
package diffout

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Unified returns patch text transforming the clean serialization into
// the messy one. Returns "" when the inputs are identical.
func Unified(clean, messy []byte) string {
	a, b := string(clean), string(messy)
	if a == b {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	patches := dmp.PatchMake(a, diffs)
	return dmp.PatchToText(patches)
}
