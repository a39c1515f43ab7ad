package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/services"
)

// HandleInvoiceCreate issues the next proforma invoice version for a
// project. The PI number is generated with a retry loop so it stays unique
// across all projects.
func HandleInvoiceCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("projectId")
		project := services.LookupProject(app, projectID)
		if project.ID == "" {
			return ErrorToast(e, http.StatusNotFound, "Project not found")
		}
		client := services.LookupClient(app, project.ClientID)

		version, err := services.NextInvoiceVersion(app, projectID)
		if err != nil {
			log.Printf("invoice_create: could not determine next version for %s: %v", projectID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		now := time.Now()
		piNo, err := services.GeneratePINumber(app, now)
		if err != nil {
			log.Printf("invoice_create: could not generate PI number: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not allocate a PI number. Please try again.")
		}

		inv := services.BuildInvoice(projectID, version, client, piNo, now)

		invoicesCol, err := app.FindCollectionByNameOrId("invoices")
		if err != nil {
			log.Printf("invoice_create: could not find invoices collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(invoicesCol)
		services.ApplyInvoiceToRecord(&inv, record)

		if err := app.Save(record); err != nil {
			log.Printf("invoice_create: could not save invoice: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Proforma invoice "+piNo+" created")
		return redirectAfterWrite(e, "/invoices/"+record.Id+"/edit")
	}
}
