package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/services"
)

var invoiceRenders = services.NewRenderGuard()

func loadInvoice(app *pocketbase.PocketBase, e *core.RequestEvent) (*services.Invoice, string, error) {
	invoiceID := e.Request.PathValue("id")
	rec, err := app.FindRecordById("invoices", invoiceID)
	if err != nil {
		return nil, invoiceID, err
	}
	return services.InvoiceFromRecord(rec), invoiceID, nil
}

func renderInvoicePDF(app *pocketbase.PocketBase, e *core.RequestEvent, inv *services.Invoice, invoiceID string) ([]byte, error) {
	branding := services.BrandingFromApp(app)
	return invoiceRenders.Do(e.Request.Context(), invoiceID, func() ([]byte, error) {
		return services.GenerateInvoicePDF(inv, branding)
	})
}

// HandleInvoicePreview streams the invoice PDF inline so the browser shows
// it instead of downloading.
func HandleInvoicePreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		inv, invoiceID, err := loadInvoice(app, e)
		if err != nil {
			log.Printf("invoice_preview: could not find invoice %s: %v", invoiceID, err)
			return e.String(http.StatusNotFound, "Invoice not found")
		}

		pdfBytes, err := renderInvoicePDF(app, e, inv, invoiceID)
		if errors.Is(err, services.ErrRenderInFlight) {
			return e.String(http.StatusConflict, "A render for this invoice is already in progress")
		}
		if err != nil {
			log.Printf("invoice_preview: render failed for %s: %v", invoiceID, err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", "inline")
		e.Response.Write(pdfBytes)
		return nil
	}
}

func HandleInvoicePDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		inv, invoiceID, err := loadInvoice(app, e)
		if err != nil {
			log.Printf("invoice_pdf: could not find invoice %s: %v", invoiceID, err)
			return e.String(http.StatusNotFound, "Invoice not found")
		}

		project := services.LookupProject(app, inv.ProjectID)

		pdfBytes, err := renderInvoicePDF(app, e, inv, invoiceID)
		if errors.Is(err, services.ErrRenderInFlight) {
			return e.String(http.StatusConflict, "A render for this invoice is already in progress")
		}
		if err != nil {
			log.Printf("invoice_pdf: render failed for %s: %v", invoiceID, err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, services.InvoicePDFFileName(inv.PINo, project.Name)))
		e.Response.Write(pdfBytes)
		return nil
	}
}

func HandleInvoiceExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		inv, invoiceID, err := loadInvoice(app, e)
		if err != nil {
			log.Printf("invoice_excel: could not find invoice %s: %v", invoiceID, err)
			return e.String(http.StatusNotFound, "Invoice not found")
		}

		xlsxBytes, err := services.GenerateInvoiceExcel(inv)
		if err != nil {
			log.Printf("invoice_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := services.PDFFileName(inv.PINo)
		filename = filename[:len(filename)-len(".pdf")] + ".xlsx"

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
