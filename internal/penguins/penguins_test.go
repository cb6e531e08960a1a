package penguins

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/dshills/messypenguins/internal/table"
)

func reference(t *testing.T) *table.Table {
	t.Helper()
	ref, err := Reference()
	if err != nil {
		t.Fatalf("Reference: %v", err)
	}
	return ref
}

func TestReference_Shape(t *testing.T) {
	ref := reference(t)
	if ref.RowCount() != 344 {
		t.Errorf("RowCount = %d, want 344", ref.RowCount())
	}
	cols := Columns()
	if ref.ColumnCount() != len(cols) {
		t.Fatalf("ColumnCount = %d, want %d", ref.ColumnCount(), len(cols))
	}
	for i, col := range cols {
		if ref.Header[i] != col {
			t.Errorf("Header[%d] = %q, want %q", i, ref.Header[i], col)
		}
	}
}

func TestReference_SerializationStable(t *testing.T) {
	ref := reference(t)
	out, err := ref.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(out, referenceCSV) {
		t.Error("re-serialization differs from the embedded source")
	}
}

func TestReference_PinnedCells(t *testing.T) {
	ref := reference(t)

	island, err := ref.Cell(278, ColIsland)
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	if island != "Torgersen" {
		t.Errorf("row 278 island = %q, want Torgersen", island)
	}

	bl, err := ref.Cell(12, ColBillLength)
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	v, err := strconv.ParseFloat(bl, 64)
	if err != nil || v <= 0 {
		t.Errorf("row 12 bill length %q is not a plausible positive value", bl)
	}
}

func TestReference_Clean(t *testing.T) {
	ref := reference(t)

	member := func(vals []string) map[string]bool {
		m := make(map[string]bool, len(vals))
		for _, v := range vals {
			m[v] = true
		}
		return m
	}
	species := member(CanonicalSpecies())
	islands := member(CanonicalIslands())
	sexes := member(CanonicalSexes())
	ranges := Ranges()

	for row := 1; row <= ref.RowCount(); row++ {
		get := func(col string) string {
			t.Helper()
			v, err := ref.Cell(row, col)
			if err != nil {
				t.Fatalf("Cell(%d, %s): %v", row, col, err)
			}
			return v
		}

		if v := get(ColSpecies); !species[v] {
			t.Fatalf("row %d: species %q not canonical", row, v)
		}
		if v := get(ColIsland); !islands[v] {
			t.Fatalf("row %d: island %q not canonical", row, v)
		}
		if v := get(ColSex); !sexes[v] {
			t.Fatalf("row %d: sex %q not canonical", row, v)
		}

		year, err := strconv.Atoi(get(ColYear))
		if err != nil || year < YearMin || year > YearMax {
			t.Fatalf("row %d: year %q outside %d..%d", row, get(ColYear), YearMin, YearMax)
		}

		for col, rng := range ranges {
			v, err := strconv.ParseFloat(get(col), 64)
			if err != nil {
				t.Fatalf("row %d: %s %q not numeric", row, col, get(col))
			}
			if !rng.Contains(v) {
				t.Fatalf("row %d: %s %v outside plausible range %v..%v", row, col, v, rng.Min, rng.Max)
			}
		}
	}
}
