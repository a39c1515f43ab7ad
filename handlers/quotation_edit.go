package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/services"
	"rnsdocs/templates"
)

func HandleQuotationEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			log.Printf("quotation_edit: could not find quotation %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		q := services.QuotationFromRecord(rec)
		data := quotationFormData(q)

		component := templates.QuotationEditPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleQuotationUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			log.Printf("quotation_update: could not find quotation %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		q := services.QuotationFromRecord(rec)
		q.Date = strings.TrimSpace(e.Request.FormValue("date"))
		q.EnquiryNo = strings.TrimSpace(e.Request.FormValue("enquiry_no"))
		q.Subject = strings.TrimSpace(e.Request.FormValue("subject"))
		q.Salutation = strings.TrimSpace(e.Request.FormValue("salutation"))
		q.IntroText = strings.TrimSpace(e.Request.FormValue("intro_text"))
		q.IntroBody = strings.TrimSpace(e.Request.FormValue("intro_body"))
		q.ClosingBody = strings.TrimSpace(e.Request.FormValue("closing_body"))
		q.RecipientName = strings.TrimSpace(e.Request.FormValue("recipient_name"))
		q.RecipientCompany = strings.TrimSpace(e.Request.FormValue("recipient_company"))
		q.RecipientAddress = strings.TrimSpace(e.Request.FormValue("recipient_address"))
		q.RegardsName = strings.TrimSpace(e.Request.FormValue("regards_name"))
		q.RegardsPhone = strings.TrimSpace(e.Request.FormValue("regards_phone"))
		q.RegardsEmail = strings.TrimSpace(e.Request.FormValue("regards_email"))

		if status := e.Request.FormValue("status"); status != "" {
			q.Status = status
		}

		q.Sections = parseSectionsForm(e, q.Sections)

		services.ApplyQuotationToRecord(q, rec)
		if err := app.Save(rec); err != nil {
			log.Printf("quotation_update: could not save quotation %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation saved")
		return redirectAfterWrite(e, "/quotations/"+quotationID+"/edit")
	}
}

// parseSectionsForm rebuilds the section list from indexed form fields.
// Column widths are carried over from the existing sections by ID, since
// the editor does not expose them.
func parseSectionsForm(e *core.RequestEvent, existing []services.Section) []services.Section {
	widthsByID := make(map[string][]float64, len(existing))
	for _, sec := range existing {
		widthsByID[sec.ID] = sec.ColumnWidths
	}

	var sections []services.Section
	for i := 0; ; i++ {
		prefix := fmt.Sprintf("sections.%d.", i)
		if !e.Request.Form.Has(prefix + "id") {
			break
		}

		sec := services.Section{
			ID:      e.Request.FormValue(prefix + "id"),
			Title:   strings.TrimSpace(e.Request.FormValue(prefix + "title")),
			Type:    services.SectionType(e.Request.FormValue(prefix + "type")),
			Content: strings.TrimSpace(e.Request.FormValue(prefix + "content")),
		}
		sec.ColumnWidths = widthsByID[sec.ID]

		if headers := strings.TrimSpace(e.Request.FormValue(prefix + "headers")); headers != "" {
			sec.Headers = splitPipe(headers)
		}
		for _, line := range splitLines(e.Request.FormValue(prefix + "rows")) {
			sec.Rows = append(sec.Rows, splitPipe(line))
		}
		sec.Items = splitLines(e.Request.FormValue(prefix + "items"))

		sections = append(sections, sec)
	}
	return sections
}

func splitPipe(s string) []string {
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func quotationFormData(q *services.Quotation) templates.QuotationFormData {
	data := templates.QuotationFormData{
		ID:               q.ID,
		ProjectID:        q.ProjectID,
		RefNo:            q.RefNo,
		Version:          services.FormatVersion(q.Version),
		Status:           q.Status,
		WorkflowLabel:    services.WorkflowLabel(q.Workflow),
		Date:             q.Date,
		EnquiryNo:        q.EnquiryNo,
		Subject:          q.Subject,
		Salutation:       q.Salutation,
		IntroText:        q.IntroText,
		IntroBody:        q.IntroBody,
		ClosingBody:      q.ClosingBody,
		RecipientName:    q.RecipientName,
		RecipientCompany: q.RecipientCompany,
		RecipientAddress: q.RecipientAddress,
		RegardsName:      q.RegardsName,
		RegardsPhone:     q.RegardsPhone,
		RegardsEmail:     q.RegardsEmail,
		MockupCount:      len(q.DesignMockups),
	}

	for _, sec := range q.Sections {
		var rows []string
		for _, row := range sec.Rows {
			rows = append(rows, strings.Join(row, " | "))
		}
		data.Sections = append(data.Sections, templates.SectionFormData{
			ID:      sec.ID,
			Title:   sec.Title,
			Type:    string(sec.Type),
			Headers: strings.Join(sec.Headers, " | "),
			Rows:    strings.Join(rows, "\n"),
			Items:   strings.Join(sec.Items, "\n"),
			Content: sec.Content,
		})
	}
	return data
}
