package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			log.Printf("quotation_delete: could not find quotation %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		projectID := rec.GetString("project")
		if err := app.Delete(rec); err != nil {
			log.Printf("quotation_delete: failed to delete quotation %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete quotation")
		}

		SetToast(e, "success", "Quotation deleted")
		return redirectAfterWrite(e, "/projects/"+projectID)
	}
}
