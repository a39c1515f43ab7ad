package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/services"
	"rnsdocs/templates"
)

func statusBadgeClass(status string) string {
	switch status {
	case "active":
		return "badge-success"
	case "completed":
		return "badge-info"
	case "on_hold":
		return "badge-warning"
	default:
		return "badge-ghost"
	}
}

func HandleProjectList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectsCol, err := app.FindCollectionByNameOrId("projects")
		if err != nil {
			log.Printf("project_list: could not find projects collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(projectsCol)
		if err != nil {
			log.Printf("project_list: could not query projects: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.ProjectListItem
		for _, rec := range records {
			countFor := func(collection string) int {
				docs, err := app.FindRecordsByFilter(
					collection,
					"project = {:projectId}",
					"", 0, 0,
					map[string]any{"projectId": rec.Id},
				)
				if err != nil {
					return 0
				}
				return len(docs)
			}

			createdDate := "—"
			if dt := rec.GetDateTime("created"); !dt.IsZero() {
				createdDate = dt.Time().Format("02 Jan 2006")
			}

			client := services.LookupClient(app, rec.GetString("client"))
			workflow := services.Workflow(rec.GetString("workflow"))
			status := rec.GetString("status")

			items = append(items, templates.ProjectListItem{
				ID:               rec.Id,
				Name:             rec.GetString("name"),
				ClientName:       client.Name,
				Location:         rec.GetString("location"),
				Workflow:         string(workflow),
				WorkflowLabel:    services.WorkflowLabel(workflow),
				Status:           status,
				StatusBadgeClass: statusBadgeClass(status),
				QuotationCount:   countFor("quotations"),
				InvoiceCount:     countFor("invoices"),
				CreatedDate:      createdDate,
			})
		}

		data := templates.ProjectListData{
			Items:      items,
			TotalCount: len(records),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ProjectListContent(data)
		} else {
			component = templates.ProjectListPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
