package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateInvoiceExcel creates an Excel workbook from a proforma invoice and
// returns the file contents as a byte slice. Line-item amounts and the tax
// summary are re-derived from the raw items at export time.
func GenerateInvoiceExcel(inv *Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet name from the PI number (max 31 chars, slashes not allowed).
	sheetName := "Proforma Invoice"

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through H).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1] // "H"

	// Set column widths.
	widths := []float64{8, 44, 12, 10, 8, 12, 8, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	// Title style: bold, 16pt.
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	// Subtitle style (PI number, date).
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	// Header style: bold white on dark fill, bordered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Item row style: bordered.
	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	// Amount column style: bordered, right-aligned.
	amountStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create amount style: %w", err)
	}

	// Summary styles: bold label right-aligned, bold value.
	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title cell: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Proforma Invoice - "+sanitizeExcelCell(inv.ClientName))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge pi cell: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "PI No: "+sanitizeExcelCell(inv.PINo))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date cell: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Date: "+sanitizeExcelCell(inv.Date))
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: column headers ───────────────────────────────────────────

	headers := []string{"Sr. No.", "Description", "HSN Code", "Qty", "UOM", "Rate/Kg", "%", "Amount"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Line items (row 6 onward) ───────────────────────────────────────

	row := 6
	for i, item := range inv.Items {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, i+1)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(item.Description))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(item.HSNCode))
		f.SetCellValue(sheetName, "D"+rowStr, item.Qty)
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(item.UOM))
		f.SetCellValue(sheetName, "F"+rowStr, ParseLenient(item.RatePerKg))
		f.SetCellValue(sheetName, "G"+rowStr, ParseLenient(item.Percentage))
		f.SetCellValue(sheetName, "H"+rowStr, CalcItemAmount(item))

		f.SetCellStyle(sheetName, "A"+rowStr, "G"+rowStr, itemStyle)
		f.SetCellStyle(sheetName, "H"+rowStr, "H"+rowStr, amountStyle)
		row++
	}

	// ── Tax summary ─────────────────────────────────────────────────────

	totals := CalcInvoiceTotals(inv.Items, inv.TaxType)
	row++

	type summaryRow struct {
		label string
		value float64
	}
	summaries := []summaryRow{{"Basic Amount", totals.Basic}}
	if inv.TaxType == TaxInterState {
		summaries = append(summaries, summaryRow{"IGST @ 18%", totals.IGST})
	} else {
		summaries = append(summaries,
			summaryRow{"CGST @ 9%", totals.CGST},
			summaryRow{"SGST @ 9%", totals.SGST},
		)
	}
	summaries = append(summaries,
		summaryRow{"Round Off", totals.RoundOff},
		summaryRow{"Grand Total", totals.Rounded},
	)

	for _, s := range summaries {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "G"+rowStr, s.label)
		f.SetCellStyle(sheetName, "G"+rowStr, "G"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "H"+rowStr, s.value)
		f.SetCellStyle(sheetName, "H"+rowStr, "H"+rowStr, summaryValueStyle)
		row++
	}

	// ── Amount in words ─────────────────────────────────────────────────

	row++
	rowStr := fmt.Sprintf("%d", row)
	if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
		return nil, fmt.Errorf("merge words cell: %w", err)
	}
	f.SetCellValue(sheetName, "A"+rowStr, "Amount in Words: Rupees "+InvoiceAmountInWords(inv))
	f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, subtitleStyle)

	// Write to buffer.
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel file: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing a single quote
// when a cell value starts with a character Excel would interpret as the
// beginning of a formula.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a thin black border for all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
