package fixture

import "github.com/xuri/excelize/v2"

// Fill colors shared by the fixture layouts.
const (
	headerFillColor     = "366092" // batch template header rows
	totalFillColor      = "E8F4EA" // invoice TOTAL amount cell
	comparisonFillColor = "4472C4" // comparison header row
	benefitFillColor    = "E7E6E6" // comparison benefit-name column
)

// StyleManager caches Excel styles so each style is created only once per file.
type StyleManager struct {
	file  *excelize.File
	cache map[string]int
}

// NewStyleManager creates a style manager bound to the given file.
func NewStyleManager(f *excelize.File) *StyleManager {
	return &StyleManager{file: f, cache: make(map[string]int)}
}

// Header returns the template header style: bold white 12pt on a solid
// blue fill, centered both ways (cached).
func (sm *StyleManager) Header() (int, error) {
	return sm.getOrCreate("header", &excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      solidFill(headerFillColor),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

// Data returns the blank data-cell style: left-aligned, vertically centered (cached).
func (sm *StyleManager) Data() (int, error) {
	return sm.getOrCreate("data", &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
}

// Title returns the bold 16pt style used for the invoice title (cached).
func (sm *StyleManager) Title() (int, error) {
	return sm.getOrCreate("title", &excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
}

// Total returns the bold 12pt style with a light green fill used for the
// invoice TOTAL amount cell (cached).
func (sm *StyleManager) Total() (int, error) {
	return sm.getOrCreate("total", &excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: solidFill(totalFillColor),
	})
}

// Bold returns a plain bold style at the default size (cached).
func (sm *StyleManager) Bold() (int, error) {
	return sm.getOrCreate("bold", &excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
}

// Subtitle returns the bold 12pt style used for section captions (cached).
func (sm *StyleManager) Subtitle() (int, error) {
	return sm.getOrCreate("subtitle", &excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
}

// PlanHeader returns the comparison header style: bold white 11pt on a
// solid blue fill, centered with wrapped text, thin border (cached).
func (sm *StyleManager) PlanHeader() (int, error) {
	return sm.getOrCreate("planHeader", &excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      solidFill(comparisonFillColor),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
}

// BenefitLabel returns the comparison benefit-name style: 10pt on a light
// grey fill, left-aligned, thin border (cached).
func (sm *StyleManager) BenefitLabel() (int, error) {
	return sm.getOrCreate("benefitLabel", &excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Fill:      solidFill(benefitFillColor),
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorder(),
	})
}

// PlanValue returns the comparison value-cell style: centered with wrapped
// text, thin border (cached).
func (sm *StyleManager) PlanValue() (int, error) {
	return sm.getOrCreate("planValue", &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
}

// Bordered returns a style carrying only a thin border, used for the
// comparison spacer cells (cached).
func (sm *StyleManager) Bordered() (int, error) {
	return sm.getOrCreate("bordered", &excelize.Style{
		Border: thinBorder(),
	})
}

func (sm *StyleManager) getOrCreate(key string, style *excelize.Style) (int, error) {
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	sm.cache[key] = id
	return id, nil
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
