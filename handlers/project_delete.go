package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleProjectDelete removes a project together with every quotation and
// proforma invoice issued under it. The document collections carry cascade
// relations, so deleting the project record takes the documents with it.
func HandleProjectDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		projectRecord, err := app.FindRecordById("projects", projectID)
		if err != nil {
			log.Printf("project_delete: could not find project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusNotFound, "Project not found")
		}

		countFor := func(collection string) int {
			docs, err := app.FindRecordsByFilter(
				collection,
				"project = {:projectId}",
				"", 0, 0,
				map[string]any{"projectId": projectID},
			)
			if err != nil {
				return 0
			}
			return len(docs)
		}
		quotationCount := countFor("quotations")
		invoiceCount := countFor("invoices")

		if err := app.Delete(projectRecord); err != nil {
			log.Printf("project_delete: failed to delete project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete project")
		}

		log.Printf("project_delete: deleted project %s (quotations=%d, invoices=%d)\n",
			projectID, quotationCount, invoiceCount)

		// Clear the active-project cookie if it pointed at the deleted project
		if cookie, err := e.Request.Cookie("active_project"); err == nil && cookie.Value == projectID {
			http.SetCookie(e.Response, &http.Cookie{
				Name:   "active_project",
				Value:  "",
				Path:   "/",
				MaxAge: -1,
			})
		}

		SetToast(e, "success", "Project deleted")
		return redirectAfterWrite(e, "/")
	}
}
