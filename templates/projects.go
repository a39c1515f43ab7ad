package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ProjectListItem is one row of the project table.
type ProjectListItem struct {
	ID               string
	Name             string
	ClientName       string
	Location         string
	Workflow         string
	WorkflowLabel    string
	Status           string
	StatusBadgeClass string
	QuotationCount   int
	InvoiceCount     int
	CreatedDate      string
}

// ProjectListData feeds the project list view.
type ProjectListData struct {
	Items      []ProjectListItem
	TotalCount int
}

// ClientOption is a client entry for the project form dropdown.
type ClientOption struct {
	ID       string
	Name     string
	Selected bool
}

// ProjectFormData feeds the create/edit project form. A zero ID means create.
type ProjectFormData struct {
	ID       string
	Name     string
	Location string
	Workflow string
	Status   string
	Clients  []ClientOption
}

// DocumentListItem is one document row on the project overview, either a
// quotation or a proforma invoice.
type DocumentListItem struct {
	ID          string
	Number      string
	Version     string
	Status      string
	Date        string
	Amount      string
	EditHref    string
	PreviewHref string
	PDFHref     string
	ExcelHref   string
	DeleteHref  string
}

// ProjectViewData feeds the project overview with its document registers.
type ProjectViewData struct {
	ID            string
	Name          string
	ClientName    string
	Location      string
	WorkflowLabel string
	Status        string
	Quotations    []DocumentListItem
	Invoices      []DocumentListItem
}

func ProjectListPage(data ProjectListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Projects", header, sidebar, ProjectListContent(data))
}

func ProjectListContent(data ProjectListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="flex items-center justify-between mb-4">
<h1 class="text-2xl font-bold">Projects <span class="badge">%d</span></h1>
<a href="/projects/new" class="btn btn-primary btn-sm">New Project</a>
</div>`, data.TotalCount)

		if len(data.Items) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center opacity-70">No projects yet. Create one to start issuing documents.</div>`)
			return nil
		}

		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100 shadow-sm"><table class="table">
<thead><tr><th>Project</th><th>Client</th><th>Workflow</th><th>Status</th><th>Quotations</th><th>Invoices</th><th>Created</th><th></th></tr></thead><tbody>`)
		for _, it := range data.Items {
			fmt.Fprintf(w, `<tr>
<td><a href="/projects/%s" class="link link-hover font-medium">%s</a><div class="text-xs opacity-60">%s</div></td>
<td>%s</td>
<td>%s</td>
<td><span class="badge %s">%s</span></td>
<td>%d</td>
<td>%d</td>
<td>%s</td>
<td><button class="btn btn-ghost btn-xs text-error" hx-delete="/projects/%s" hx-confirm="Delete this project and all of its quotations and invoices?" hx-swap="none">Delete</button></td>
</tr>`,
				esc(it.ID), esc(it.Name), esc(it.Location), esc(it.ClientName),
				esc(it.WorkflowLabel), esc(it.StatusBadgeClass), esc(it.Status),
				it.QuotationCount, it.InvoiceCount, esc(it.CreatedDate), esc(it.ID))
		}
		io.WriteString(w, `</tbody></table></div>`)
		return nil
	})
}

func ProjectFormPage(data ProjectFormData, header HeaderData, sidebar SidebarData) templ.Component {
	title := "New Project"
	if data.ID != "" {
		title = "Edit Project"
	}
	return Page(title, header, sidebar, ProjectFormContent(data))
}

func ProjectFormContent(data ProjectFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/projects"
		heading := "New Project"
		if data.ID != "" {
			action = "/projects/" + data.ID
			heading = "Edit Project"
		}

		fmt.Fprintf(w, `<h1 class="text-2xl font-bold mb-4">%s</h1>
<form hx-post="%s" hx-swap="none" class="card bg-base-100 shadow-sm p-6 max-w-2xl space-y-4">`,
			esc(heading), esc(action))

		textInput(w, "name", "Project Name", data.Name, true)

		io.WriteString(w, `<label class="form-control"><span class="label-text">Client</span>
<select name="client" class="select select-bordered" required>
<option value="">Select a client</option>`)
		for _, c := range data.Clients {
			sel := ""
			if c.Selected {
				sel = " selected"
			}
			fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(c.ID), sel, esc(c.Name))
		}
		io.WriteString(w, `</select></label>`)

		textInput(w, "location", "Site Location", data.Location, false)

		selectInput(w, "workflow", "Workflow", data.Workflow, [][2]string{
			{"supply_and_fabrication", "Supply & Fabrication"},
			{"structural_fabrication", "Structural Fabrication"},
			{"job_work", "Job Work"},
		})
		selectInput(w, "status", "Status", data.Status, [][2]string{
			{"active", "Active"},
			{"completed", "Completed"},
			{"on_hold", "On Hold"},
		})

		io.WriteString(w, `<div class="flex gap-2">
<button type="submit" class="btn btn-primary">Save</button>
<a href="/" class="btn btn-ghost">Cancel</a>
</div></form>`)
		return nil
	})
}

func ProjectViewPage(data ProjectViewData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page(data.Name, header, sidebar, ProjectViewContent(data))
}

func ProjectViewContent(data ProjectViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="mb-6">
<h1 class="text-2xl font-bold">%s</h1>
<p class="opacity-70">%s · %s · %s · <span class="badge">%s</span></p>
</div>`, esc(data.Name), esc(data.ClientName), esc(data.Location), esc(data.WorkflowLabel), esc(data.Status))

		documentRegister(w, "Quotations", "/projects/"+data.ID+"/quotations", data.Quotations, false)
		documentRegister(w, "Proforma Invoices", "/projects/"+data.ID+"/invoices", data.Invoices, true)
		return nil
	})
}

func documentRegister(w io.Writer, title, createHref string, items []DocumentListItem, withExcel bool) {
	fmt.Fprintf(w, `<div class="card bg-base-100 shadow-sm p-6 mb-6">
<div class="flex items-center justify-between mb-3">
<h2 class="text-lg font-semibold">%s</h2>
<button class="btn btn-primary btn-sm" hx-post="%s" hx-swap="none">New Version</button>
</div>`, esc(title), esc(createHref))

	if len(items) == 0 {
		io.WriteString(w, `<p class="opacity-60 text-sm">None yet.</p></div>`)
		return
	}

	io.WriteString(w, `<table class="table table-sm">
<thead><tr><th>Number</th><th>Ver</th><th>Status</th><th>Date</th><th>Amount</th><th class="text-right">Actions</th></tr></thead><tbody>`)
	for _, it := range items {
		fmt.Fprintf(w, `<tr>
<td class="font-mono text-xs">%s</td><td>%s</td><td>%s</td><td>%s</td><td class="text-right">%s</td>
<td class="text-right">
<a href="%s" class="btn btn-ghost btn-xs">Edit</a>
<a href="%s" class="btn btn-ghost btn-xs">Preview</a>
<a href="%s" class="btn btn-ghost btn-xs">PDF</a>`,
			esc(it.Number), esc(it.Version), esc(it.Status), esc(it.Date), esc(it.Amount),
			esc(it.EditHref), esc(it.PreviewHref), esc(it.PDFHref))
		if withExcel && it.ExcelHref != "" {
			fmt.Fprintf(w, `<a href="%s" class="btn btn-ghost btn-xs">Excel</a>`, esc(it.ExcelHref))
		}
		fmt.Fprintf(w, `<button class="btn btn-ghost btn-xs text-error" hx-delete="%s" hx-confirm="Delete this document?" hx-swap="none">Delete</button>
</td></tr>`, esc(it.DeleteHref))
	}
	io.WriteString(w, `</tbody></table></div>`)
}

func selectInput(w io.Writer, name, label, value string, options [][2]string) {
	fmt.Fprintf(w, `<label class="form-control"><span class="label-text">%s</span>
<select name="%s" class="select select-bordered">`, esc(label), esc(name))
	for _, opt := range options {
		sel := ""
		if opt[0] == value {
			sel = " selected"
		}
		fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(opt[0]), sel, esc(opt[1]))
	}
	io.WriteString(w, `</select></label>`)
}
