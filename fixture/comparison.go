package fixture

import (
	"fmt"

	"github.com/orayew2002/excel-fixtures/domain"
	"github.com/orayew2002/excel-fixtures/excel"
	"github.com/xuri/excelize/v2"
)

// Comparison layout: a benefit-name column, then alternating spacer and
// plan-value columns. The spacers keep plans visually separated when the
// sheet is populated by a matrix mapping later.
//
//	A: benefit name   B: spacer   C: Plan A
//	D: spacer         E: Plan B   F: spacer   G: Plan C
var (
	comparisonHeaders = []string{"Benefit", "", "Plan A", "", "Plan B", "", "Plan C"}
	comparisonWidths  = []float64{25, 2, 20, 2, 20, 2, 20}

	placeholderBenefits = []string{
		"Benefit 1",
		"Benefit 2",
		"Benefit 3",
		"Benefit 4",
		"Benefit 5",
	}
)

func buildComparison(f *excelize.File, sm *StyleManager, opts Options) error {
	const sheet = "Comparison"
	if err := renameActiveSheet(f, sheet); err != nil {
		return err
	}

	if err := setColWidths(f, sheet, comparisonWidths); err != nil {
		return err
	}

	if err := writeComparisonHeader(f, sm, sheet); err != nil {
		return err
	}

	if err := writeBenefitRows(f, sm, sheet); err != nil {
		return err
	}

	if opts.Sample {
		if err := fillComparisonSample(f, sheet); err != nil {
			return err
		}
	}

	return nil
}

// writeComparisonHeader writes row 1. Spacer cells carry only a border;
// named cells get the full header styling.
func writeComparisonHeader(f *excelize.File, sm *StyleManager, sheet string) error {
	headerStyle, err := sm.PlanHeader()
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	spacerStyle, err := sm.Bordered()
	if err != nil {
		return fmt.Errorf("spacer style: %w", err)
	}

	for col, text := range comparisonHeaders {
		cell := excel.CellName(0, col)
		styleID := spacerStyle
		if text != "" {
			styleID = headerStyle
			if err := f.SetCellStr(sheet, cell, text); err != nil {
				return fmt.Errorf("header %s: %w", cell, err)
			}
		}
		if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return fmt.Errorf("header style %s: %w", cell, err)
		}
	}

	return nil
}

// writeBenefitRows writes the placeholder benefit rows 2-6. Column A gets
// the label styling; plan columns get the centered value style; spacer
// columns get a border only.
func writeBenefitRows(f *excelize.File, sm *StyleManager, sheet string) error {
	labelStyle, err := sm.BenefitLabel()
	if err != nil {
		return fmt.Errorf("label style: %w", err)
	}
	valueStyle, err := sm.PlanValue()
	if err != nil {
		return fmt.Errorf("value style: %w", err)
	}
	spacerStyle, err := sm.Bordered()
	if err != nil {
		return fmt.Errorf("spacer style: %w", err)
	}

	for i, benefit := range placeholderBenefits {
		row := i + 1
		labelCell := excel.CellName(row, 0)
		if err := f.SetCellStr(sheet, labelCell, benefit); err != nil {
			return fmt.Errorf("benefit %s: %w", labelCell, err)
		}
		if err := f.SetCellStyle(sheet, labelCell, labelCell, labelStyle); err != nil {
			return fmt.Errorf("benefit style %s: %w", labelCell, err)
		}

		for col := 1; col < len(comparisonHeaders); col++ {
			cell := excel.CellName(row, col)
			styleID := valueStyle
			if isSpacerColumn(col) {
				styleID = spacerStyle
			}
			if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
				return fmt.Errorf("cell style %s: %w", cell, err)
			}
		}
	}

	return nil
}

func fillComparisonSample(f *excelize.File, sheet string) error {
	values := domain.GeneratePlanValues(len(placeholderBenefits), planCount())
	for r, row := range values {
		plan := 0
		for col := 1; col < len(comparisonHeaders); col++ {
			if isSpacerColumn(col) {
				continue
			}
			cell := excel.CellName(r+1, col)
			if err := f.SetCellStr(sheet, cell, row[plan]); err != nil {
				return fmt.Errorf("plan value %s: %w", cell, err)
			}
			plan++
		}
	}
	return nil
}

// isSpacerColumn reports whether the 0-based column is one of the narrow
// separator columns (B, D, F).
func isSpacerColumn(col int) bool {
	return col%2 == 1
}

func planCount() int {
	n := 0
	for col := 1; col < len(comparisonHeaders); col++ {
		if !isSpacerColumn(col) {
			n++
		}
	}
	return n
}
