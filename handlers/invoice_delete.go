package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleInvoiceDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("invoices", invoiceID)
		if err != nil {
			log.Printf("invoice_delete: could not find invoice %s: %v", invoiceID, err)
			return ErrorToast(e, http.StatusNotFound, "Invoice not found")
		}

		projectID := rec.GetString("project")
		if err := app.Delete(rec); err != nil {
			log.Printf("invoice_delete: failed to delete invoice %s: %v", invoiceID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete invoice")
		}

		SetToast(e, "success", "Invoice deleted")
		return redirectAfterWrite(e, "/projects/"+projectID)
	}
}
