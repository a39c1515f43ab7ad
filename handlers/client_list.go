package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/templates"
)

func HandleClientList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientsCol, err := app.FindCollectionByNameOrId("clients")
		if err != nil {
			log.Printf("client_list: could not find clients collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(clientsCol)
		if err != nil {
			log.Printf("client_list: could not query clients: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.ClientListItem
		for _, rec := range records {
			projects, err := app.FindRecordsByFilter(
				"projects",
				"client = {:clientId}",
				"", 0, 0,
				map[string]any{"clientId": rec.Id},
			)
			if err != nil {
				projects = nil
			}

			createdDate := "—"
			if dt := rec.GetDateTime("created"); !dt.IsZero() {
				createdDate = dt.Time().Format("02 Jan 2006")
			}

			items = append(items, templates.ClientListItem{
				ID:            rec.Id,
				Name:          rec.GetString("name"),
				GSTIN:         rec.GetString("gstin"),
				ContactPerson: rec.GetString("contact_person"),
				Email:         rec.GetString("email"),
				Phone:         rec.GetString("phone"),
				ProjectCount:  len(projects),
				CreatedDate:   createdDate,
			})
		}

		data := templates.ClientListData{
			Items:      items,
			TotalCount: len(records),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ClientListContent(data)
		} else {
			component = templates.ClientListPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
