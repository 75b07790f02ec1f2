package render

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/newshield/go-insurance-backend/internal/domain"
)

const sheetName = "Comparison"

// moneyFormat is the number format applied to monetary cells.
const moneyFormat = "#,##0.00"

// RenderWorkbook produces the xlsx workbook for a saved comparison. The
// sheet carries the same ten grid rows as the print document, in the same
// order, with monetary cells stored as numbers (two-decimal grouped format)
// and the recommended quote's Total cell highlighted in green.
func RenderWorkbook(c *domain.Comparison) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return nil, err
	}

	lastCol := 2 + len(c.Quotes)
	if lastCol < 6 {
		lastCol = 6
	}

	// Title banner.
	titleEnd, _ := excelize.CoordinatesToCellName(lastCol, 1)
	if err := f.MergeCell(sheetName, "A1", titleEnd); err != nil {
		return nil, err
	}
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s - Insurance Comparison", c.ProductLineLabel))
	f.SetCellStyle(sheetName, "A1", titleEnd, styles.title)
	f.SetRowHeight(sheetName, 1, 25)

	// Reference and date.
	row := 2
	f.SetCellValue(sheetName, cell(1, row), "Reference: "+c.ReferenceNumber)
	f.SetCellStyle(sheetName, cell(1, row), cell(1, row), styles.refDate)
	f.SetCellValue(sheetName, cell(4, row), "Date: "+c.CreatedAt.Format("2006-01-02"))
	f.SetCellStyle(sheetName, cell(4, row), cell(4, row), styles.refDate)
	row++

	// Customer details; optional fields only when present.
	details := []struct{ label, value string }{
		{"Customer Name:", c.CustomerName},
		{"Address:", c.Address},
		{"Business Activity:", c.BusinessActivity},
		{"Location/Premises:", c.Location},
		{"Property Limit:", c.PropertyLimit},
	}
	for i, d := range details {
		if i > 0 && d.value == "" {
			continue
		}
		f.SetCellValue(sheetName, cell(1, row), d.label)
		f.SetCellStyle(sheetName, cell(1, row), cell(1, row), styles.subheader)
		f.SetCellValue(sheetName, cell(2, row), d.value)
		row++
	}
	row++

	// Table header.
	f.SetCellValue(sheetName, cell(1, row), "S.No.")
	f.SetCellValue(sheetName, cell(2, row), "Particulars")
	for i := range c.Quotes {
		f.SetCellValue(sheetName, cell(3+i, row), c.Quotes[i].Insurer)
	}
	f.SetCellStyle(sheetName, cell(1, row), cell(2+len(c.Quotes), row), styles.header)
	row++

	// Grid rows, one cell per quote.
	for i, r := range Rows(c) {
		f.SetCellValue(sheetName, cell(1, row), i+1)
		f.SetCellStyle(sheetName, cell(1, row), cell(1, row), styles.bordered)
		f.SetCellValue(sheetName, cell(2, row), r.Label)
		f.SetCellStyle(sheetName, cell(2, row), cell(2, row), styles.particulars)

		for j, cl := range r.Cells {
			target := cell(3+j, row)
			switch r.Kind {
			case RowMoney:
				f.SetCellValue(sheetName, target, cl.Amount)
				if cl.Recommended {
					f.SetCellStyle(sheetName, target, target, styles.recommended)
				} else {
					f.SetCellStyle(sheetName, target, target, styles.money)
				}
			case RowList:
				f.SetCellValue(sheetName, target, bulletText(cl.Items))
				f.SetCellStyle(sheetName, target, target, styles.wrapped)
			default:
				f.SetCellValue(sheetName, target, cl.Text)
				f.SetCellStyle(sheetName, target, target, styles.bordered)
			}
		}
		row++
	}

	// Advisor comment block.
	if c.AdvisorComment != "" {
		row++
		labelEnd, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.MergeCell(sheetName, cell(1, row), labelEnd); err != nil {
			return nil, err
		}
		f.SetCellValue(sheetName, cell(1, row), "Advisor Comment:")
		f.SetCellStyle(sheetName, cell(1, row), labelEnd, styles.comment)
		row++
		bodyEnd, _ := excelize.CoordinatesToCellName(2+len(c.Quotes), row)
		if err := f.MergeCell(sheetName, cell(1, row), bodyEnd); err != nil {
			return nil, err
		}
		f.SetCellValue(sheetName, cell(1, row), c.AdvisorComment)
		f.SetCellStyle(sheetName, cell(1, row), bodyEnd, styles.wrapped)
		f.SetRowHeight(sheetName, row, 50)
	}

	// Column widths.
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 30)
	if n := len(c.Quotes); n > 0 {
		first, _ := excelize.ColumnNumberToName(3)
		last, _ := excelize.ColumnNumberToName(2 + n)
		f.SetColWidth(sheetName, first, last, 35)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// bulletText joins clauses into the newline-separated bullet text used in
// spreadsheet cells.
func bulletText(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(it)
	}
	return b.String()
}

// cell converts 1-based coordinates to an A1-style reference, ignoring the
// error since columns here are always in range.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// workbookStyles holds the style ids registered on a fresh workbook.
type workbookStyles struct {
	title       int
	refDate     int
	subheader   int
	header      int
	particulars int
	bordered    int
	money       int
	recommended int
	wrapped     int
	comment     int
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var s workbookStyles
	var err error

	thin := []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}
	numFmt := moneyFormat

	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"203864"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return s, err
	}
	if s.refDate, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
	}); err != nil {
		return s, err
	}
	if s.subheader, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thin,
	}); err != nil {
		return s, err
	}
	if s.particulars, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: thin,
	}); err != nil {
		return s, err
	}
	if s.bordered, err = f.NewStyle(&excelize.Style{
		Border: thin,
	}); err != nil {
		return s, err
	}
	if s.money, err = f.NewStyle(&excelize.Style{
		Border:       thin,
		CustomNumFmt: &numFmt,
	}); err != nil {
		return s, err
	}
	if s.recommended, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: "006100"},
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"C6EFCE"}},
		Border:       thin,
		CustomNumFmt: &numFmt,
	}); err != nil {
		return s, err
	}
	if s.wrapped, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border:    thin,
	}); err != nil {
		return s, err
	}
	if s.comment, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFC000"}},
	}); err != nil {
		return s, err
	}

	return s, nil
}
