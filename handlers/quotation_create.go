package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/services"
)

// HandleQuotationCreate issues the next quotation version for a project,
// pre-filled from the workflow template and the client record.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("projectId")
		project := services.LookupProject(app, projectID)
		if project.ID == "" {
			return ErrorToast(e, http.StatusNotFound, "Project not found")
		}
		client := services.LookupClient(app, project.ClientID)

		version, err := services.NextQuotationVersion(app, projectID)
		if err != nil {
			log.Printf("quotation_create: could not determine next version for %s: %v", projectID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		q := services.BuildQuotation(projectID, version, client.Name, project.Location, project.Workflow, time.Now())
		q.RecipientName = client.ContactPerson
		q.RecipientCompany = client.Name
		q.RecipientAddress = client.Address

		quotationsCol, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			log.Printf("quotation_create: could not find quotations collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(quotationsCol)
		services.ApplyQuotationToRecord(&q, record)

		if err := app.Save(record); err != nil {
			log.Printf("quotation_create: could not save quotation: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation "+q.RefNo+" created")
		return redirectAfterWrite(e, "/quotations/"+record.Id+"/edit")
	}
}
