package services

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateInvoiceExcel(t *testing.T) {
	inv := testInvoice()

	out, err := GenerateInvoiceExcel(inv)
	if err != nil {
		t.Fatalf("GenerateInvoiceExcel failed: %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(out))
	if err != nil {
		t.Fatalf("generated file does not open as xlsx: %v", err)
	}
	defer f.Close()

	sheet := "Proforma Invoice"

	title, _ := f.GetCellValue(sheet, "A1")
	if want := "Proforma Invoice - Vidarbha Agro Industries"; title != want {
		t.Errorf("A1 = %q, want %q", title, want)
	}

	piNo, _ := f.GetCellValue(sheet, "A2")
	if !strings.HasPrefix(piNo, "PI No: RNS/PI/") {
		t.Errorf("A2 = %q, want the PI number line", piNo)
	}

	header, _ := f.GetCellValue(sheet, "B5")
	if header != "Description" {
		t.Errorf("B5 = %q, want Description", header)
	}

	firstItem, _ := f.GetCellValue(sheet, "B6")
	if firstItem != "PEB Steel Structure - Supply & Fabrication" {
		t.Errorf("B6 = %q", firstItem)
	}

	// Items on rows 6-7, blank row 8, summary from row 9: basic, CGST,
	// SGST, round off, grand total for an intra-state invoice.
	labels := []struct {
		cell string
		want string
	}{
		{"G9", "Basic Amount"},
		{"G10", "CGST @ 9%"},
		{"G11", "SGST @ 9%"},
		{"G12", "Round Off"},
		{"G13", "Grand Total"},
	}
	for _, l := range labels {
		got, _ := f.GetCellValue(sheet, l.cell)
		if got != l.want {
			t.Errorf("%s = %q, want %q", l.cell, got, l.want)
		}
	}

	words, _ := f.GetCellValue(sheet, "A15")
	if !strings.HasPrefix(words, "Amount in Words: Rupees ") {
		t.Errorf("A15 = %q, want the amount-in-words line", words)
	}
}

func TestGenerateInvoiceExcelInterState(t *testing.T) {
	inv := testInvoice()
	inv.TaxType = TaxInterState

	out, err := GenerateInvoiceExcel(inv)
	if err != nil {
		t.Fatalf("GenerateInvoiceExcel failed: %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(out))
	if err != nil {
		t.Fatalf("generated file does not open as xlsx: %v", err)
	}
	defer f.Close()

	igst, _ := f.GetCellValue("Proforma Invoice", "G10")
	if igst != "IGST @ 18%" {
		t.Errorf("G10 = %q, want IGST @ 18%%", igst)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1", "'+1"},
		{"-1", "'-1"},
		{"@cmd", "'@cmd"},
		{"|pipe", "'|pipe"},
		{"plain text", "plain text"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.in); got != tt.want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateInvoiceExcelSanitizesFormulas(t *testing.T) {
	inv := testInvoice()
	inv.Items[0].Description = "=HYPERLINK(\"http://evil\")"

	out, err := GenerateInvoiceExcel(inv)
	if err != nil {
		t.Fatalf("GenerateInvoiceExcel failed: %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(out))
	if err != nil {
		t.Fatalf("generated file does not open as xlsx: %v", err)
	}
	defer f.Close()

	got, _ := f.GetCellValue("Proforma Invoice", "B6")
	if !strings.HasPrefix(got, "'=") {
		t.Errorf("B6 = %q, want the formula neutralized with a leading quote", got)
	}
}
