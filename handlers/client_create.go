package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/templates"
)

func HandleClientCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		component := templates.ClientFormPage(templates.ClientFormData{},
			GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleClientSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Client name is required")
		}

		clientsCol, err := app.FindCollectionByNameOrId("clients")
		if err != nil {
			log.Printf("client_create: could not find clients collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(clientsCol)
		applyClientForm(e, record, name)

		if err := app.Save(record); err != nil {
			log.Printf("client_create: could not save client: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Client created")
		return redirectAfterWrite(e, "/clients")
	}
}

func applyClientForm(e *core.RequestEvent, record *core.Record, name string) {
	record.Set("name", name)
	record.Set("address", strings.TrimSpace(e.Request.FormValue("address")))
	record.Set("gstin", strings.TrimSpace(e.Request.FormValue("gstin")))
	record.Set("contact_person", strings.TrimSpace(e.Request.FormValue("contact_person")))
	record.Set("email", strings.TrimSpace(e.Request.FormValue("email")))
	record.Set("phone", strings.TrimSpace(e.Request.FormValue("phone")))
}
