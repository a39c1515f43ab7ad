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

func HandleProjectView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("projects", projectID)
		if err != nil {
			log.Printf("project_view: could not find project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusNotFound, "Project not found")
		}

		client := services.LookupClient(app, rec.GetString("client"))

		data := templates.ProjectViewData{
			ID:            rec.Id,
			Name:          rec.GetString("name"),
			ClientName:    client.Name,
			Location:      rec.GetString("location"),
			WorkflowLabel: services.WorkflowLabel(services.Workflow(rec.GetString("workflow"))),
			Status:        rec.GetString("status"),
			Quotations:    quotationRegister(app, projectID),
			Invoices:      invoiceRegister(app, projectID),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ProjectViewContent(data)
		} else {
			component = templates.ProjectViewPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func quotationRegister(app *pocketbase.PocketBase, projectID string) []templates.DocumentListItem {
	records, err := app.FindRecordsByFilter(
		"quotations",
		"project = {:projectId}",
		"-version", 0, 0,
		map[string]any{"projectId": projectID},
	)
	if err != nil {
		return nil
	}

	var items []templates.DocumentListItem
	for _, rec := range records {
		items = append(items, templates.DocumentListItem{
			ID:          rec.Id,
			Number:      rec.GetString("ref_no"),
			Version:     services.FormatVersion(rec.GetInt("version")),
			Status:      rec.GetString("status"),
			Date:        rec.GetString("date"),
			EditHref:    "/quotations/" + rec.Id + "/edit",
			PreviewHref: "/quotations/" + rec.Id + "/preview",
			PDFHref:     "/quotations/" + rec.Id + "/pdf",
			DeleteHref:  "/quotations/" + rec.Id,
		})
	}
	return items
}

func invoiceRegister(app *pocketbase.PocketBase, projectID string) []templates.DocumentListItem {
	records, err := app.FindRecordsByFilter(
		"invoices",
		"project = {:projectId}",
		"-version", 0, 0,
		map[string]any{"projectId": projectID},
	)
	if err != nil {
		return nil
	}

	var items []templates.DocumentListItem
	for _, rec := range records {
		inv := services.InvoiceFromRecord(rec)
		totals := services.CalcInvoiceTotals(inv.Items, inv.TaxType)

		items = append(items, templates.DocumentListItem{
			ID:          rec.Id,
			Number:      inv.PINo,
			Version:     services.FormatVersion(inv.Version),
			Status:      inv.Status,
			Date:        inv.Date,
			Amount:      services.FormatINR(totals.Rounded),
			EditHref:    "/invoices/" + rec.Id + "/edit",
			PreviewHref: "/invoices/" + rec.Id + "/preview",
			PDFHref:     "/invoices/" + rec.Id + "/pdf",
			ExcelHref:   "/invoices/" + rec.Id + "/excel",
			DeleteHref:  "/invoices/" + rec.Id,
		})
	}
	return items
}
