package fixture

import (
	"fmt"
	"time"

	"github.com/orayew2002/excel-fixtures/domain"
	"github.com/orayew2002/excel-fixtures/excel"
	"github.com/xuri/excelize/v2"
)

// RegisterDefaults registers all built-in fixtures in output order.
func RegisterDefaults(r *Registry) {
	r.Register(Fixture{ID: "personal-form", Filename: "personal-form.xlsx", Sheet: "Personal Info", Build: buildPersonalForm})
	r.Register(Fixture{ID: "employee-roster", Filename: "employee-roster.xlsx", Sheet: "Employees", Build: buildEmployeeRoster})
	r.Register(Fixture{ID: "invoice", Filename: "invoice-template.xlsx", Sheet: "Invoice", Build: buildInvoice})
	r.Register(Fixture{ID: "template", Filename: "template.xlsx", Sheet: "Data", Build: buildGenericGrid})
	r.Register(Fixture{ID: "employee-table", Filename: "employee-table.xlsx", Sheet: "Roster", Build: buildEmployeeTable})
	r.Register(Fixture{ID: "comparison", Filename: "comparison-template.xlsx", Sheet: "Comparison", Build: buildComparison})
}

// ---------- personal-form.xlsx ----------

func buildPersonalForm(f *excelize.File, sm *StyleManager, opts Options) error {
	const sheet = "Personal Info"
	if err := renameActiveSheet(f, sheet); err != nil {
		return err
	}

	if err := writeHeaderRow(f, sm, sheet, 0, []string{"First Name", "Last Name", "Email"}); err != nil {
		return err
	}

	// Rows 2-9 stay blank for filling.
	if err := styleDataRegion(f, sm, sheet, 1, 8, 0, 2); err != nil {
		return err
	}

	if opts.Sample {
		people := domain.GeneratePeople(sampleCount(opts, 8))
		for i, p := range people {
			row := []any{p.FirstName, p.LastName, p.Email}
			if err := writeRow(f, sheet, 1+i, 0, row); err != nil {
				return fmt.Errorf("sample row %d: %w", i, err)
			}
		}
	}

	return setColWidths(f, sheet, []float64{20, 20, 30})
}

// ---------- employee-roster.xlsx ----------

func buildEmployeeRoster(f *excelize.File, sm *StyleManager, opts Options) error {
	const sheet = "Employees"
	if err := renameActiveSheet(f, sheet); err != nil {
		return err
	}

	headers := []string{"Employee ID", "First Name", "Last Name", "Email", "Department"}
	if err := writeHeaderRow(f, sm, sheet, 0, headers); err != nil {
		return err
	}

	// Rows 2-51 stay blank for filling.
	if err := styleDataRegion(f, sm, sheet, 1, 50, 0, 4); err != nil {
		return err
	}

	if opts.Sample {
		employees := domain.GenerateEmployees(sampleCount(opts, 50))
		for i, e := range employees {
			row := []any{e.ID, e.FirstName, e.LastName, e.Email, e.Department}
			if err := writeRow(f, sheet, 1+i, 0, row); err != nil {
				return fmt.Errorf("sample row %d: %w", i, err)
			}
		}
	}

	return setColWidths(f, sheet, []float64{15, 18, 18, 25, 20})
}

// ---------- invoice-template.xlsx ----------

func buildInvoice(f *excelize.File, sm *StyleManager, opts Options) error {
	const sheet = "Invoice"
	if err := renameActiveSheet(f, sheet); err != nil {
		return err
	}

	if err := f.SetCellStr(sheet, "A1", "INVOICE"); err != nil {
		return fmt.Errorf("title: %w", err)
	}
	titleStyle, err := sm.Title()
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("title style: %w", err)
	}
	if err := f.MergeCell(sheet, "A1", "D1"); err != nil {
		return fmt.Errorf("title merge: %w", err)
	}

	// Invoice info block: header label next to a blank data cell.
	labels := []struct{ header, data, text string }{
		{"A3", "B3", "Invoice #"},
		{"C3", "D3", "Invoice Date"},
		{"A4", "B4", "Due Date"},
		{"C4", "D4", "Customer"},
		{"A28", "B28", "Subtotal"},
		{"A29", "B29", "Tax"},
	}
	for _, l := range labels {
		if err := writeHeaderCell(f, sm, sheet, l.header, l.text); err != nil {
			return err
		}
		if err := styleDataCell(f, sm, sheet, l.data); err != nil {
			return err
		}
	}

	if err := writeHeaderRow(f, sm, sheet, 5, []string{"Description", "Quantity", "Unit Price", "Total"}); err != nil {
		return err
	}

	// Line item rows 7-26 stay blank for filling.
	if err := styleDataRegion(f, sm, sheet, 6, 25, 0, 3); err != nil {
		return err
	}

	if err := writeHeaderCell(f, sm, sheet, "A30", "TOTAL"); err != nil {
		return err
	}
	totalStyle, err := sm.Total()
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B30", "B30", totalStyle); err != nil {
		return fmt.Errorf("total style: %w", err)
	}

	if opts.Sample {
		if err := fillInvoiceSample(f, sheet, opts); err != nil {
			return err
		}
	}

	return setColWidths(f, sheet, []float64{25, 15, 15, 15})
}

func fillInvoiceSample(f *excelize.File, sheet string, opts Options) error {
	now := time.Now()
	info := map[string]string{
		"B3": fmt.Sprintf("INV-%d%02d-001", now.Year(), now.Month()),
		"D3": now.Format("2006-01-02"),
		"B4": now.AddDate(0, 1, 0).Format("2006-01-02"),
		"D4": "Acme Corporation",
	}
	for cell, val := range info {
		if err := f.SetCellStr(sheet, cell, val); err != nil {
			return fmt.Errorf("invoice info %s: %w", cell, err)
		}
	}

	lines := domain.GenerateInvoiceLines(sampleCount(opts, 20))
	subtotal := 0.0
	for i, l := range lines {
		row := []any{l.Description, l.Quantity, l.UnitPrice, l.Total()}
		if err := writeRow(f, sheet, 6+i, 0, row); err != nil {
			return fmt.Errorf("line item %d: %w", i, err)
		}
		subtotal += l.Total()
	}

	tax := subtotal * 0.1
	totals := map[string]float64{"B28": subtotal, "B29": tax, "B30": subtotal + tax}
	for cell, val := range totals {
		if err := f.SetCellFloat(sheet, cell, val, 2, 64); err != nil {
			return fmt.Errorf("invoice total %s: %w", cell, err)
		}
	}

	return nil
}

// ---------- template.xlsx ----------

func buildGenericGrid(f *excelize.File, sm *StyleManager, opts Options) error {
	const sheet = "Data"
	if err := renameActiveSheet(f, sheet); err != nil {
		return err
	}

	if err := writeHeaderRow(f, sm, sheet, 0, []string{"Item Names", "Item Prices", "Item Code"}); err != nil {
		return err
	}

	// Placeholder rows 2-6 for range examples.
	if err := styleDataRegion(f, sm, sheet, 1, 5, 0, 2); err != nil {
		return err
	}

	// Row headers at B10:E10 for row examples.
	if err := writeHeaderRowAt(f, sm, sheet, 9, 1, []string{"Header 1", "Header 2", "Header 3", "Header 4"}); err != nil {
		return err
	}

	if err := f.SetCellStr(sheet, "A12", "Matrix Example"); err != nil {
		return fmt.Errorf("matrix caption: %w", err)
	}
	boldStyle, err := sm.Bold()
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A12", "A12", boldStyle); err != nil {
		return fmt.Errorf("matrix caption style: %w", err)
	}

	// Matrix cells at rows 13-15.
	if err := styleDataRegion(f, sm, sheet, 12, 14, 0, 2); err != nil {
		return err
	}

	if opts.Sample {
		items := domain.GenerateItems(sampleCount(opts, 5))
		for i, it := range items {
			row := []any{it.Name, it.Price, it.Code}
			if err := writeRow(f, sheet, 1+i, 0, row); err != nil {
				return fmt.Errorf("sample item %d: %w", i, err)
			}
		}
	}

	return setColWidths(f, sheet, []float64{20, 15, 15, 15, 15})
}

// ---------- employee-table.xlsx ----------

func buildEmployeeTable(f *excelize.File, sm *StyleManager, opts Options) error {
	const sheet = "Roster"
	if err := renameActiveSheet(f, sheet); err != nil {
		return err
	}

	if err := f.SetCellStr(sheet, "A1", "Employee Information"); err != nil {
		return fmt.Errorf("caption: %w", err)
	}
	subtitleStyle, err := sm.Subtitle()
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", subtitleStyle); err != nil {
		return fmt.Errorf("caption style: %w", err)
	}

	if err := writeHeaderRow(f, sm, sheet, 1, []string{"ID", "Name", "Department", "Salary"}); err != nil {
		return err
	}

	// Rows 3-24 stay blank for population.
	if err := styleDataRegion(f, sm, sheet, 2, 23, 0, 3); err != nil {
		return err
	}

	if opts.Sample {
		rows := domain.GenerateTableRows(sampleCount(opts, 22))
		for i, r := range rows {
			row := []any{r.ID, r.Name, r.Department, r.Salary}
			if err := writeRow(f, sheet, 2+i, 0, row); err != nil {
				return fmt.Errorf("sample row %d: %w", i, err)
			}
		}
	}

	return setColWidths(f, sheet, []float64{12, 22, 20, 15})
}

// ---------- shared helpers ----------

func renameActiveSheet(f *excelize.File, name string) error {
	current := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(current, name); err != nil {
		return fmt.Errorf("rename sheet %q: %w", name, err)
	}
	return nil
}

func writeHeaderCell(f *excelize.File, sm *StyleManager, sheet, cell, text string) error {
	if err := f.SetCellStr(sheet, cell, text); err != nil {
		return fmt.Errorf("header %s: %w", cell, err)
	}
	styleID, err := sm.Header()
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
		return fmt.Errorf("header style %s: %w", cell, err)
	}
	return nil
}

// writeHeaderRow writes header cells starting at column A of the given 0-based row.
func writeHeaderRow(f *excelize.File, sm *StyleManager, sheet string, row int, headers []string) error {
	return writeHeaderRowAt(f, sm, sheet, row, 0, headers)
}

func writeHeaderRowAt(f *excelize.File, sm *StyleManager, sheet string, row, startCol int, headers []string) error {
	for i, h := range headers {
		if err := writeHeaderCell(f, sm, sheet, excel.CellName(row, startCol+i), h); err != nil {
			return err
		}
	}
	return nil
}

func styleDataCell(f *excelize.File, sm *StyleManager, sheet, cell string) error {
	styleID, err := sm.Data()
	if err != nil {
		return fmt.Errorf("data style: %w", err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
		return fmt.Errorf("data style %s: %w", cell, err)
	}
	return nil
}

// styleDataRegion applies the blank data-cell style across an inclusive
// 0-based rectangle.
func styleDataRegion(f *excelize.File, sm *StyleManager, sheet string, rowStart, rowEnd, colStart, colEnd int) error {
	styleID, err := sm.Data()
	if err != nil {
		return fmt.Errorf("data style: %w", err)
	}
	topLeft := excel.CellName(rowStart, colStart)
	bottomRight := excel.CellName(rowEnd, colEnd)
	if err := f.SetCellStyle(sheet, topLeft, bottomRight, styleID); err != nil {
		return fmt.Errorf("data region %s:%s: %w", topLeft, bottomRight, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row, startCol int, values []any) error {
	for i, v := range values {
		cell := excel.CellName(row, startCol+i)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("cell %s: %w", cell, err)
		}
	}
	return nil
}

func setColWidths(f *excelize.File, sheet string, widths []float64) error {
	for col, w := range widths {
		name := excel.IndexToColumn(col)
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return fmt.Errorf("col %s width: %w", name, err)
		}
	}
	return nil
}

// sampleCount clamps the configured sample row count to the fixture's data region.
func sampleCount(opts Options, regionRows int) int {
	if opts.SampleRows <= 0 || opts.SampleRows > regionRows {
		return regionRows
	}
	return opts.SampleRows
}
