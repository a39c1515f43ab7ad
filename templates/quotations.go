package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// SectionFormData is one editable quotation section. Table rows are edited as
// pipe-separated lines, list items and paragraphs as plain lines.
type SectionFormData struct {
	ID      string
	Title   string
	Type    string
	Headers string
	Rows    string
	Items   string
	Content string
}

// QuotationFormData feeds the quotation editor.
type QuotationFormData struct {
	ID               string
	ProjectID        string
	RefNo            string
	Version          string
	Status           string
	WorkflowLabel    string
	Date             string
	EnquiryNo        string
	Subject          string
	Salutation       string
	IntroText        string
	IntroBody        string
	ClosingBody      string
	RecipientName    string
	RecipientCompany string
	RecipientAddress string
	RegardsName      string
	RegardsPhone     string
	RegardsEmail     string
	Sections         []SectionFormData
	MockupCount      int
}

func QuotationEditPage(data QuotationFormData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Quotation "+data.RefNo, header, sidebar, QuotationEditContent(data))
}

func QuotationEditContent(data QuotationFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="flex items-center justify-between mb-4">
<div>
<h1 class="text-2xl font-bold font-mono">%s</h1>
<p class="opacity-70">%s · Version %s · %s</p>
</div>
<div class="flex gap-2">
<a href="/quotations/%s/preview" class="btn btn-sm">Preview</a>
<a href="/quotations/%s/pdf" class="btn btn-sm">Download PDF</a>
</div>
</div>`, esc(data.RefNo), esc(data.WorkflowLabel), esc(data.Version), esc(data.Status),
			esc(data.ID), esc(data.ID))

		fmt.Fprintf(w, `<form hx-post="/quotations/%s" hx-swap="none" class="space-y-6">`, esc(data.ID))

		io.WriteString(w, `<div class="card bg-base-100 shadow-sm p-6 grid grid-cols-2 gap-4">`)
		textInput(w, "date", "Date", data.Date, false)
		textInput(w, "enquiry_no", "Enquiry No", data.EnquiryNo, false)
		textInput(w, "subject", "Subject", data.Subject, false)
		selectInput(w, "status", "Status", data.Status, [][2]string{
			{"draft", "Draft"}, {"sent", "Sent"}, {"accepted", "Accepted"}, {"rejected", "Rejected"},
		})
		textInput(w, "recipient_name", "Recipient Name", data.RecipientName, false)
		textInput(w, "recipient_company", "Recipient Company", data.RecipientCompany, false)
		textArea(w, "recipient_address", "Recipient Address", data.RecipientAddress)
		textInput(w, "salutation", "Salutation", data.Salutation, false)
		io.WriteString(w, `</div>`)

		io.WriteString(w, `<div class="card bg-base-100 shadow-sm p-6 space-y-4">
<h2 class="text-lg font-semibold">Cover Letter</h2>`)
		textInput(w, "intro_text", "Intro Line", data.IntroText, false)
		textArea(w, "intro_body", "Intro Body", data.IntroBody)
		textArea(w, "closing_body", "Closing Body", data.ClosingBody)
		io.WriteString(w, `</div>`)

		fmt.Fprintf(w, `<div class="card bg-base-100 shadow-sm p-6 space-y-6">
<div class="flex items-center justify-between">
<h2 class="text-lg font-semibold">Sections <span class="badge">%d</span></h2>
</div>`, len(data.Sections))
		for i, sec := range data.Sections {
			sectionEditor(w, i, sec)
		}
		io.WriteString(w, `</div>`)

		io.WriteString(w, `<div class="card bg-base-100 shadow-sm p-6 grid grid-cols-3 gap-4">`)
		textInput(w, "regards_name", "Regards Name", data.RegardsName, false)
		textInput(w, "regards_phone", "Regards Phone", data.RegardsPhone, false)
		textInput(w, "regards_email", "Regards Email", data.RegardsEmail, false)
		io.WriteString(w, `</div>`)

		io.WriteString(w, `<div class="flex gap-2">
<button type="submit" class="btn btn-primary">Save</button>
</div></form>`)
		return nil
	})
}

func sectionEditor(w io.Writer, idx int, sec SectionFormData) {
	p := fmt.Sprintf("sections.%d.", idx)

	fmt.Fprintf(w, `<div class="border border-base-300 rounded-lg p-4 space-y-3">
<input type="hidden" name="%sid" value="%s"/>
<input type="hidden" name="%stype" value="%s"/>
<div class="flex items-center gap-3">
<input type="text" name="%stitle" value="%s" class="input input-bordered input-sm flex-1 font-semibold"/>
<span class="badge badge-ghost">%s</span>
</div>`,
		p, esc(sec.ID), p, esc(sec.Type), p, esc(sec.Title), esc(sec.Type))

	switch sec.Type {
	case "table":
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text text-xs">Columns (pipe separated)</span>
<input type="text" name="%sheaders" value="%s" class="input input-bordered input-sm font-mono"/></label>
<label class="form-control"><span class="label-text text-xs">Rows (one per line, cells pipe separated)</span>
<textarea name="%srows" class="textarea textarea-bordered font-mono text-xs" rows="5">%s</textarea></label>`,
			p, esc(sec.Headers), p, esc(sec.Rows))
	case "list":
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text text-xs">Items (one per line)</span>
<textarea name="%sitems" class="textarea textarea-bordered text-sm" rows="5">%s</textarea></label>`,
			p, esc(sec.Items))
	case "mixed":
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text text-xs">Paragraph</span>
<textarea name="%scontent" class="textarea textarea-bordered text-sm" rows="3">%s</textarea></label>
<label class="form-control"><span class="label-text text-xs">Items (one per line)</span>
<textarea name="%sitems" class="textarea textarea-bordered text-sm" rows="4">%s</textarea></label>`,
			p, esc(sec.Content), p, esc(sec.Items))
	default:
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text text-xs">Text</span>
<textarea name="%scontent" class="textarea textarea-bordered text-sm" rows="4">%s</textarea></label>`,
			p, esc(sec.Content))
	}

	io.WriteString(w, `</div>`)
}
