package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/templates"
)

func HandleClientEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("clients", clientID)
		if err != nil {
			log.Printf("client_edit: could not find client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		data := templates.ClientFormData{
			ID:            rec.Id,
			Name:          rec.GetString("name"),
			Address:       rec.GetString("address"),
			GSTIN:         rec.GetString("gstin"),
			ContactPerson: rec.GetString("contact_person"),
			Email:         rec.GetString("email"),
			Phone:         rec.GetString("phone"),
		}

		component := templates.ClientFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleClientUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("clients", clientID)
		if err != nil {
			log.Printf("client_update: could not find client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Client name is required")
		}

		applyClientForm(e, rec, name)

		if err := app.Save(rec); err != nil {
			log.Printf("client_update: could not save client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Client updated")
		return redirectAfterWrite(e, "/clients")
	}
}
