package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/services"
	"rnsdocs/templates"
)

var ProjectStatusOptions = []string{"active", "completed", "on_hold"}

func clientOptions(app *pocketbase.PocketBase, selectedID string) []templates.ClientOption {
	clientsCol, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		return nil
	}
	records, _ := app.FindAllRecords(clientsCol)

	var options []templates.ClientOption
	for _, rec := range records {
		options = append(options, templates.ClientOption{
			ID:       rec.Id,
			Name:     rec.GetString("name"),
			Selected: rec.Id == selectedID,
		})
	}
	return options
}

func HandleProjectCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ProjectFormData{
			Workflow: string(services.WorkflowSupplyAndFabrication),
			Status:   "active",
			Clients:  clientOptions(app, ""),
		}
		component := templates.ProjectFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleProjectSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		clientID := strings.TrimSpace(e.Request.FormValue("client"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Project name is required")
		}
		if clientID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Select a client")
		}
		if _, err := app.FindRecordById("clients", clientID); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Selected client does not exist")
		}

		projectsCol, err := app.FindCollectionByNameOrId("projects")
		if err != nil {
			log.Printf("project_create: could not find projects collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(projectsCol)
		record.Set("name", name)
		record.Set("client", clientID)
		applyProjectForm(e, record)

		if err := app.Save(record); err != nil {
			log.Printf("project_create: could not save project: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Project created")
		return redirectAfterWrite(e, "/projects/"+record.Id)
	}
}

func applyProjectForm(e *core.RequestEvent, record *core.Record) {
	record.Set("location", strings.TrimSpace(e.Request.FormValue("location")))

	workflow := services.Workflow(e.Request.FormValue("workflow"))
	switch workflow {
	case services.WorkflowSupplyAndFabrication, services.WorkflowStructuralFabrication, services.WorkflowJobWork:
	default:
		workflow = services.WorkflowSupplyAndFabrication
	}
	record.Set("workflow", string(workflow))

	status := e.Request.FormValue("status")
	valid := false
	for _, s := range ProjectStatusOptions {
		if status == s {
			valid = true
			break
		}
	}
	if !valid {
		status = "active"
	}
	record.Set("status", status)
}
