package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/services"
	"rnsdocs/templates"
)

var quotationRenders = services.NewRenderGuard()

func HandleQuotationPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			log.Printf("quotation_preview: could not find quotation %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		q := services.QuotationFromRecord(rec)
		branding := services.BrandingFromApp(app)

		plan, err := services.BuildQuotationPlan(q, branding)
		if err != nil {
			log.Printf("quotation_preview: layout failed for %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to lay out quotation")
		}

		mockups := services.DecodeMockups(q.DesignMockups)
		data := templates.PreviewData{
			Title:        q.RefNo,
			BackHref:     "/quotations/" + quotationID + "/edit",
			DownloadHref: "/quotations/" + quotationID + "/pdf",
			Pages:        planPreviewData(plan, mockups),
		}

		component := templates.PreviewPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuotationPDF renders and downloads the quotation PDF. Renders are
// serialized per document; nothing is written to the response until the
// whole document has rendered, so a failed render never leaves a partial
// download behind.
func HandleQuotationPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			log.Printf("quotation_pdf: could not find quotation %s: %v", quotationID, err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		q := services.QuotationFromRecord(rec)
		branding := services.BrandingFromApp(app)
		mockups := services.DecodeMockups(q.DesignMockups)

		pdfBytes, err := quotationRenders.Do(e.Request.Context(), quotationID, func() ([]byte, error) {
			return services.RenderQuotationPDF(q, branding, mockups)
		})
		if errors.Is(err, services.ErrRenderInFlight) {
			return e.String(http.StatusConflict, "A render for this quotation is already in progress")
		}
		if err != nil {
			log.Printf("quotation_pdf: render failed for %s: %v", quotationID, err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, services.PDFFileName(q.RefNo)))
		e.Response.Write(pdfBytes)
		return nil
	}
}
