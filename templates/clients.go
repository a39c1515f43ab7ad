package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ClientListItem is one row of the client table.
type ClientListItem struct {
	ID            string
	Name          string
	GSTIN         string
	ContactPerson string
	Email         string
	Phone         string
	ProjectCount  int
	CreatedDate   string
}

// ClientListData feeds the client list view.
type ClientListData struct {
	Items      []ClientListItem
	TotalCount int
}

// ClientFormData feeds the create/edit client form. A zero ID means create.
type ClientFormData struct {
	ID            string
	Name          string
	Address       string
	GSTIN         string
	ContactPerson string
	Email         string
	Phone         string
}

func ClientListPage(data ClientListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Clients", header, sidebar, ClientListContent(data))
}

func ClientListContent(data ClientListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="flex items-center justify-between mb-4">
<h1 class="text-2xl font-bold">Clients <span class="badge">%d</span></h1>
<a href="/clients/new" class="btn btn-primary btn-sm">New Client</a>
</div>`, data.TotalCount)

		if len(data.Items) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center opacity-70">No clients yet.</div>`)
			return nil
		}

		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100 shadow-sm"><table class="table">
<thead><tr><th>Name</th><th>GSTIN</th><th>Contact</th><th>Projects</th><th>Created</th><th></th></tr></thead><tbody>`)
		for _, it := range data.Items {
			fmt.Fprintf(w, `<tr>
<td><a href="/clients/%s/edit" class="link link-hover font-medium">%s</a></td>
<td class="font-mono text-xs">%s</td>
<td>%s<div class="text-xs opacity-60">%s %s</div></td>
<td>%d</td>
<td>%s</td>
<td><button class="btn btn-ghost btn-xs text-error" hx-delete="/clients/%s" hx-confirm="Delete this client?" hx-swap="none">Delete</button></td>
</tr>`,
				esc(it.ID), esc(it.Name), esc(it.GSTIN), esc(it.ContactPerson),
				esc(it.Email), esc(it.Phone), it.ProjectCount, esc(it.CreatedDate), esc(it.ID))
		}
		io.WriteString(w, `</tbody></table></div>`)
		return nil
	})
}

func ClientFormPage(data ClientFormData, header HeaderData, sidebar SidebarData) templ.Component {
	title := "New Client"
	if data.ID != "" {
		title = "Edit Client"
	}
	return Page(title, header, sidebar, ClientFormContent(data))
}

func ClientFormContent(data ClientFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/clients"
		heading := "New Client"
		if data.ID != "" {
			action = "/clients/" + data.ID
			heading = "Edit Client"
		}

		fmt.Fprintf(w, `<h1 class="text-2xl font-bold mb-4">%s</h1>
<form hx-post="%s" hx-swap="none" class="card bg-base-100 shadow-sm p-6 max-w-2xl space-y-4">`,
			esc(heading), esc(action))

		textInput(w, "name", "Name", data.Name, true)
		textArea(w, "address", "Address", data.Address)
		textInput(w, "gstin", "GSTIN", data.GSTIN, false)
		textInput(w, "contact_person", "Contact Person", data.ContactPerson, false)
		textInput(w, "email", "Email", data.Email, false)
		textInput(w, "phone", "Phone", data.Phone, false)

		io.WriteString(w, `<div class="flex gap-2">
<button type="submit" class="btn btn-primary">Save</button>
<a href="/clients" class="btn btn-ghost">Cancel</a>
</div></form>`)
		return nil
	})
}

func textInput(w io.Writer, name, label, value string, required bool) {
	req := ""
	if required {
		req = " required"
	}
	fmt.Fprintf(w, `<label class="form-control"><span class="label-text">%s</span>
<input type="text" name="%s" value="%s" class="input input-bordered"%s/></label>`,
		esc(label), esc(name), esc(value), req)
}

func textArea(w io.Writer, name, label, value string) {
	fmt.Fprintf(w, `<label class="form-control"><span class="label-text">%s</span>
<textarea name="%s" class="textarea textarea-bordered" rows="3">%s</textarea></label>`,
		esc(label), esc(name), esc(value))
}
