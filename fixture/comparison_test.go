package fixture

import (
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"
)

func assertThinBorder(t *testing.T, style *excelize.Style, what string) {
	t.Helper()
	sides := map[string]bool{}
	for _, b := range style.Border {
		if b.Style == 1 {
			sides[b.Type] = true
		}
	}
	for _, side := range []string{"left", "right", "top", "bottom"} {
		if !sides[side] {
			t.Errorf("%s: missing thin %s border (got %+v)", what, side, style.Border)
		}
	}
}

func TestComparisonHeaderRow(t *testing.T) {
	f := buildFixture(t, "comparison", Options{})

	const sheet = "Comparison"
	if got := f.GetSheetName(f.GetActiveSheetIndex()); got != sheet {
		t.Fatalf("sheet name = %q, want %q", got, sheet)
	}

	assertCell(t, f, sheet, "A1", "Benefit")
	assertCell(t, f, sheet, "C1", "Plan A")
	assertCell(t, f, sheet, "E1", "Plan B")
	assertCell(t, f, sheet, "G1", "Plan C")

	// Spacer columns carry no header text.
	for _, cell := range []string{"B1", "D1", "F1"} {
		assertCell(t, f, sheet, cell, "")
	}

	header := cellStyle(t, f, sheet, "C1")
	if header.Font == nil || !header.Font.Bold || header.Font.Size != 11 {
		t.Errorf("plan header font = %+v, want bold 11pt", header.Font)
	}
	if got := normalizeColor(header.Font.Color); got != "FFFFFF" {
		t.Errorf("plan header font color = %q, want FFFFFF", got)
	}
	if len(header.Fill.Color) == 0 || normalizeColor(header.Fill.Color[0]) != comparisonFillColor {
		t.Errorf("plan header fill = %v, want %s", header.Fill.Color, comparisonFillColor)
	}
	if header.Alignment == nil || !header.Alignment.WrapText {
		t.Errorf("plan header should wrap text")
	}
	assertThinBorder(t, header, "plan header")

	// Every row-1 cell is bordered, spacers included.
	assertThinBorder(t, cellStyle(t, f, sheet, "B1"), "spacer header")
}

func TestComparisonBenefitRows(t *testing.T) {
	f := buildFixture(t, "comparison", Options{})

	const sheet = "Comparison"
	for i, want := range placeholderBenefits {
		assertCell(t, f, sheet, fmt.Sprintf("A%d", i+2), want)
	}

	label := cellStyle(t, f, sheet, "A2")
	if label.Font == nil || label.Font.Size != 10 {
		t.Errorf("benefit label font = %+v, want 10pt", label.Font)
	}
	if len(label.Fill.Color) == 0 || normalizeColor(label.Fill.Color[0]) != benefitFillColor {
		t.Errorf("benefit label fill = %v, want %s", label.Fill.Color, benefitFillColor)
	}
	if label.Alignment == nil || label.Alignment.Horizontal != "left" {
		t.Errorf("benefit label should be left-aligned")
	}
	assertThinBorder(t, label, "benefit label")

	value := cellStyle(t, f, sheet, "C3")
	if value.Alignment == nil || value.Alignment.Horizontal != "center" || !value.Alignment.WrapText {
		t.Errorf("plan value alignment = %+v, want centered wrap", value.Alignment)
	}
	assertThinBorder(t, value, "plan value")
	assertThinBorder(t, cellStyle(t, f, sheet, "D4"), "spacer cell")

	// Value cells stay blank for the matrix mapping.
	for _, cell := range []string{"C2", "E4", "G6"} {
		assertCell(t, f, sheet, cell, "")
	}
}

func TestComparisonColumnWidths(t *testing.T) {
	f := buildFixture(t, "comparison", Options{})

	assertColWidths(t, f, "Comparison", map[string]float64{
		"A": 25, "B": 2, "C": 20, "D": 2, "E": 20, "F": 2, "G": 20,
	})
}

func TestComparisonSampleFillsPlanColumns(t *testing.T) {
	f := buildFixture(t, "comparison", Options{Sample: true})

	const sheet = "Comparison"
	for _, cell := range []string{"C2", "E2", "G2", "C6"} {
		if cellValue(t, f, sheet, cell) == "" {
			t.Errorf("%s should hold a sample plan value", cell)
		}
	}
	// Spacers stay empty even in sample mode.
	for _, cell := range []string{"B2", "D3", "F6"} {
		assertCell(t, f, sheet, cell, "")
	}
}
