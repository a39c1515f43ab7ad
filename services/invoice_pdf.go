package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateInvoicePDF creates the proforma invoice PDF using maroto/v2.
// Totals are derived from the items at render time, never read from stored
// fields. Returns the raw PDF bytes or an error.
func GenerateInvoicePDF(inv *Invoice, branding *BrandingConfig) ([]byte, error) {
	branding = ResolveBranding(branding)
	totals := CalcInvoiceTotals(inv.Items, inv.TaxType)

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addInvoiceHeader(m, inv, branding)
	addInvoiceParties(m, inv)
	addInvoiceItemsTable(m, inv)
	addInvoiceTotals(m, inv, totals)
	addInvoiceAmountInWords(m, totals)
	addInvoiceBankDetails(m, inv.BankDetails)
	addInvoiceSignature(m, inv, branding)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addInvoiceHeader adds the company block and "PROFORMA INVOICE" title with
// PI number, date and WO reference.
func addInvoiceHeader(m core.Maroto, inv *Invoice, branding *BrandingConfig) {
	reg := branding.Registry

	m.AddRows(
		row.New(10).Add(
			col.New(7).Add(
				text.New(reg.Name, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(5).Add(
				text.New("PROFORMA INVOICE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	subline := joinNonEmpty([]string{firstOf(reg.Addresses), reg.Email}, " | ")
	m.AddRows(
		row.New(8).Add(
			col.New(7).Add(
				text.New(subline, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(5).Add(
				text.New(fmt.Sprintf("PI #: %s", inv.PINo), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	rightLabel := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Right, Color: &props.Color{Red: 100, Green: 100, Blue: 100}}
	rightValue := props.Text{Size: 8, Align: align.Right}
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New(fmtField("GSTIN", reg.GSTIN), props.Text{Size: 8, Align: align.Left})),
			col.New(3).Add(text.New("Date:", rightLabel)),
			col.New(3).Add(text.New(inv.Date, rightValue)),
		),
	)
	if inv.WONo != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(text.New("", props.Text{})),
				col.New(3).Add(text.New("WO No:", rightLabel)),
				col.New(3).Add(text.New(inv.WONo, rightValue)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addInvoiceParties adds the registered and consignee address blocks side by
// side. These are the denormalized client fields copied at creation time.
func addInvoiceParties(m core.Maroto, inv *Invoice) {
	sectionLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{Size: 8, Align: align.Left}
	boldValue := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}

	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 243, Blue: 239}}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("BILL TO (REGISTERED)", sectionLabel)).WithStyle(headerCell),
			col.New(6).Add(text.New("CONSIGNEE (SHIP TO)", sectionLabel)).WithStyle(headerCell),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(inv.ClientName, boldValue)),
			col.New(6).Add(text.New(inv.ClientName, boldValue)),
		),
	)
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(text.New(inv.RegisteredAddress, valueStyle)),
			col.New(6).Add(text.New(inv.ConsigneeAddress, valueStyle)),
		),
	)
	if inv.GSTIN != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(fmtField("GSTIN", inv.GSTIN), valueStyle)),
			),
		)
	}
	if inv.DispatchDetails != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(fmtField("Dispatch", inv.DispatchDetails), valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addInvoiceItemsTable adds the line items table. Amounts are re-derived
// from qty/rate/percentage for every row.
func addInvoiceItemsTable(m core.Maroto, inv *Invoice) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("Sr. No.", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("HSN", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("UOM", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Rate/Kg", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("%", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, item := range inv.Items {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		amount := CalcItemAmount(item)

		colSr := col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), bodyText))
		colDesc := col.New(4).Add(text.New(item.Description, bodyTextLeft))
		colHSN := col.New(1).Add(text.New(item.HSNCode, bodyText))
		colQty := col.New(1).Add(text.New(FormatQty(item.Qty), bodyTextRight))
		colUOM := col.New(1).Add(text.New(item.UOM, bodyText))
		colRate := col.New(1).Add(text.New(item.RatePerKg, bodyTextRight))
		colPct := col.New(1).Add(text.New(item.Percentage, bodyText))
		colAmount := col.New(2).Add(text.New(FormatINR(amount), bodyTextRight))

		if cellStyle != nil {
			colSr = colSr.WithStyle(cellStyle)
			colDesc = colDesc.WithStyle(cellStyle)
			colHSN = colHSN.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colUOM = colUOM.WithStyle(cellStyle)
			colRate = colRate.WithStyle(cellStyle)
			colPct = colPct.WithStyle(cellStyle)
			colAmount = colAmount.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(7).Add(colSr, colDesc, colHSN, colQty, colUOM, colRate, colPct, colAmount),
		)
	}

	m.AddRows(row.New(2))
}

// addInvoiceTotals adds the tax summary. Intra-state invoices show CGST and
// SGST rows; inter-state invoices show a single IGST row.
func addInvoiceTotals(m core.Maroto, inv *Invoice, totals InvoiceTotals) {
	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 8, Align: align.Right}

	addTotalRow := func(label string, value float64) {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatINR(value), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	addTotalRow("Basic Amount", totals.Basic)
	if inv.TaxType == TaxInterState {
		addTotalRow("IGST @ 18%", totals.IGST)
	} else {
		addTotalRow("CGST @ 9%", totals.CGST)
		addTotalRow("SGST @ 9%", totals.SGST)
	}
	addTotalRow("Round Off", totals.RoundOff)

	grandCell := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Grand Total", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatINR(totals.Rounded), grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

func addInvoiceAmountInWords(m core.Maroto, totals InvoiceTotals) {
	words := NumberToWords(int64(totals.Rounded))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: Rupees %s", words), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)
	m.AddRows(row.New(3))
}

// addInvoiceBankDetails adds the structured beneficiary block.
func addInvoiceBankDetails(m core.Maroto, bank BankDetails) {
	sectionLabel := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 33, Green: 37, Blue: 41},
	}
	fieldLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	fieldValue := props.Text{Size: 8, Align: align.Left}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("BANK DETAILS", sectionLabel)),
		),
	)

	bankRows := []struct{ label, value string }{
		{"Account Name", bank.AccountName},
		{"Bank & Branch", bank.Address},
		{"Account No", bank.AccountNumber},
		{"IFSC Code", bank.IFSCCode},
	}
	for _, br := range bankRows {
		if br.value == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(br.label, fieldLabel)),
				col.New(9).Add(text.New(br.value, fieldValue)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addInvoiceSignature adds the regards block with the optional stamp image.
func addInvoiceSignature(m core.Maroto, inv *Invoice, branding *BrandingConfig) {
	m.AddRows(row.New(8))

	if branding.StampSignature != nil {
		ext := extension.Png
		if detectImageType(branding.StampSignature) == "JPG" {
			ext = extension.Jpg
		}
		m.AddRows(
			row.New(22).Add(
				col.New(8),
				col.New(4).Add(
					image.NewFromBytes(branding.StampSignature, ext, props.Rect{
						Center:  true,
						Percent: 90,
					}),
				),
			),
		)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(6),
			col.New(6).Add(text.New(inv.RegardsName, props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(6),
			col.New(6).Add(text.New("Authorized Signatory", props.Text{
				Size:  7,
				Align: align.Right,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
	)
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	result := ""
	for i, p := range nonEmpty {
		if i > 0 {
			result += sep
		}
		result += p
	}
	return result
}

// fmtField returns "label: value" if value is non-empty, otherwise empty string.
func fmtField(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, value)
}

func firstOf(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
