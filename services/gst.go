package services

import (
	"math"
	"strconv"
	"strings"
)

// GST rates for structural steel supply. Intra-state orders split 18% into
// equal CGST and SGST halves; inter-state orders charge IGST at the full rate.
const (
	cgstRate = 0.09
	sgstRate = 0.09
	igstRate = 0.18
)

// InvoiceTotals holds the derived totals for an invoice. It is recomputed
// from the items slice on every read; nothing here is stored.
type InvoiceTotals struct {
	Basic    float64
	CGST     float64
	SGST     float64
	IGST     float64
	Grand    float64
	Rounded  float64
	RoundOff float64
}

// ParseLenient parses a string-typed numeric field, returning 0 for anything
// that does not parse. Edit widgets store raw user input here, so partial
// entries like "12." must not break computation.
func ParseLenient(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// CalcItemAmount derives a line item's amount: qty × ratePerKg × percentage/100.
func CalcItemAmount(item InvoiceLineItem) float64 {
	rate := ParseLenient(item.RatePerKg)
	pct := ParseLenient(item.Percentage)
	return item.Qty * rate * pct / 100
}

// RecalcItems returns a copy of items with each Amount re-derived from the
// current qty/rate/percentage fields.
func RecalcItems(items []InvoiceLineItem) []InvoiceLineItem {
	out := make([]InvoiceLineItem, len(items))
	for i, item := range items {
		item.Amount = CalcItemAmount(item)
		out[i] = item
	}
	return out
}

// CalcInvoiceTotals computes GST totals for a set of line items. Amounts are
// re-derived from the raw item fields so a stale stored Amount can never
// desynchronize the totals. An empty items slice yields all zeros.
func CalcInvoiceTotals(items []InvoiceLineItem, taxType TaxType) InvoiceTotals {
	var basic float64
	for _, item := range items {
		basic += CalcItemAmount(item)
	}

	t := InvoiceTotals{Basic: basic}
	if taxType == TaxInterState {
		t.IGST = igstRate * basic
	} else {
		t.CGST = cgstRate * basic
		t.SGST = sgstRate * basic
	}

	t.Grand = t.Basic + t.CGST + t.SGST + t.IGST
	t.Rounded = math.Round(t.Grand)
	t.RoundOff = t.Rounded - t.Grand
	return t
}

// InvoiceAmountInWords returns the words form of the invoice's rounded grand
// total. The stored amountInWords field is a cache of this value and is
// refreshed on every save.
func InvoiceAmountInWords(inv *Invoice) string {
	totals := CalcInvoiceTotals(inv.Items, inv.TaxType)
	return NumberToWords(int64(totals.Rounded))
}
