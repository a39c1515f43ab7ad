package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleClientDelete removes a client. Clients with projects cannot be
// deleted: the projects (and the documents hanging off them) would be left
// pointing nowhere.
func HandleClientDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("clients", clientID)
		if err != nil {
			log.Printf("client_delete: could not find client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		projects, err := app.FindRecordsByFilter(
			"projects",
			"client = {:clientId}",
			"", 1, 0,
			map[string]any{"clientId": clientID},
		)
		if err == nil && len(projects) > 0 {
			return ErrorToast(e, http.StatusConflict, "Client has projects; delete those first")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("client_delete: failed to delete client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete client")
		}

		SetToast(e, "success", "Client deleted")
		return redirectAfterWrite(e, "/clients")
	}
}
