package diffout

import (
	"strings"
	"testing"
)

func TestUnified_Identical(t *testing.T) {
	data := []byte("species,year\nAdelie,2007\n")
	if got := Unified(data, data); got != "" {
		t.Errorf("identical inputs produced patch text: %q", got)
	}
}

func TestUnified_SingleCellEdit(t *testing.T) {
	clean := []byte("species,year\nAdelie,2007\nGentoo,2008\n")
	messy := []byte("species,year\nAdelie,2007\nGentoo,9999\n")

	got := Unified(clean, messy)
	if got == "" {
		t.Fatal("differing inputs produced empty patch text")
	}
	if !strings.Contains(got, "@@") {
		t.Errorf("output is not patch text:\n%s", got)
	}
	if !strings.Contains(got, "9999") {
		t.Errorf("patch text does not mention the injected year:\n%s", got)
	}
}
