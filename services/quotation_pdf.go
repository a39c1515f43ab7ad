package services

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// RenderQuotationPDF lays out the quotation and renders the resulting page
// plan to PDF bytes with manual coordinate placement. The same plan drives
// the screen preview, so the two can never disagree on pagination.
//
// mockups maps design-mockup references to raw image bytes; unresolvable
// references are skipped rather than aborting the render.
func RenderQuotationPDF(doc *Quotation, branding *BrandingConfig, mockups map[string][]byte) ([]byte, error) {
	plan, err := BuildQuotationPlan(doc, branding)
	if err != nil {
		return nil, err
	}
	return RenderPlanPDF(plan, mockups)
}

// RenderPlanPDF maps a page plan to gofpdf drawing calls: one AddPage per
// plan page, text/rect/line/image ops at their computed coordinates.
func RenderPlanPDF(plan *PagePlan, mockups map[string][]byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	imageSeq := 0

	for _, page := range plan.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			switch op.Kind {
			case OpText:
				drawTextOp(pdf, tr, op)
			case OpRect:
				if op.Style.Fill {
					pdf.SetFillColor(33, 37, 41)
					pdf.Rect(op.X, op.Y, op.W, op.H, "F")
				} else {
					pdf.SetDrawColor(180, 180, 180)
					pdf.Rect(op.X, op.Y, op.W, op.H, "D")
				}
			case OpLine:
				pdf.SetDrawColor(120, 120, 120)
				pdf.Line(op.X, op.Y, op.X+op.W, op.Y+op.H)
			case OpImage:
				img := op.Image
				if img == nil && op.Text != "" {
					img = mockups[op.Text]
				}
				if img == nil {
					continue
				}
				imageSeq++
				drawImageOp(pdf, img, imageSeq, op)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quotation PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func drawTextOp(pdf *gofpdf.Fpdf, tr func(string) string, op DrawOp) {
	style := ""
	if op.Style.Bold {
		style += "B"
	}
	if op.Style.Italic {
		style += "I"
	}
	pdf.SetFont("Helvetica", style, op.Style.Size)

	if op.Style.Fill {
		pdf.SetTextColor(255, 255, 255)
	} else {
		pdf.SetTextColor(33, 37, 41)
	}

	align := op.Style.Align
	if align == "" {
		align = "L"
	}
	pdf.SetXY(op.X, op.Y)
	pdf.CellFormat(op.W, op.H, tr(op.Text), "", 0, align, false, 0, "")
}

// drawImageOp embeds a decode-checked image. Images reaching this point have
// already passed ResolveBranding or the mockup resolver, so a registration
// failure only skips the overlay instead of poisoning the document.
func drawImageOp(pdf *gofpdf.Fpdf, img []byte, seq int, op DrawOp) {
	imgType := detectImageType(img)
	if imgType == "" {
		return
	}
	name := fmt.Sprintf("img-%d", seq)
	opts := gofpdf.ImageOptions{ImageType: imgType, ReadDpi: true}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
	pdf.ImageOptions(name, op.X, op.Y, op.W, op.H, false, opts, 0, "")
}
