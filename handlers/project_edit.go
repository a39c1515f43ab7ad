package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/templates"
)

func HandleProjectEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("projects", projectID)
		if err != nil {
			log.Printf("project_edit: could not find project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusNotFound, "Project not found")
		}

		data := templates.ProjectFormData{
			ID:       rec.Id,
			Name:     rec.GetString("name"),
			Location: rec.GetString("location"),
			Workflow: rec.GetString("workflow"),
			Status:   rec.GetString("status"),
			Clients:  clientOptions(app, rec.GetString("client")),
		}

		component := templates.ProjectFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleProjectUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("projects", projectID)
		if err != nil {
			log.Printf("project_update: could not find project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusNotFound, "Project not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Project name is required")
		}
		rec.Set("name", name)

		if clientID := strings.TrimSpace(e.Request.FormValue("client")); clientID != "" {
			if _, err := app.FindRecordById("clients", clientID); err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Selected client does not exist")
			}
			rec.Set("client", clientID)
		}

		applyProjectForm(e, rec)

		if err := app.Save(rec); err != nil {
			log.Printf("project_update: could not save project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Project updated")
		return redirectAfterWrite(e, "/projects/"+projectID)
	}
}
