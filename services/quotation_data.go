package services

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// QuotationFromRecord rebuilds the in-memory quotation model from its
// PocketBase record. Malformed JSON fields degrade to empty slices so a
// damaged record still renders instead of crashing.
func QuotationFromRecord(rec *core.Record) *Quotation {
	q := &Quotation{
		ID:               rec.Id,
		ProjectID:        rec.GetString("project"),
		Version:          rec.GetInt("version"),
		Status:           rec.GetString("status"),
		Workflow:         Workflow(rec.GetString("workflow")),
		RefNo:            rec.GetString("ref_no"),
		Date:             rec.GetString("date"),
		EnquiryNo:        rec.GetString("enquiry_no"),
		Location:         rec.GetString("location"),
		Subject:          rec.GetString("subject"),
		Salutation:       rec.GetString("salutation"),
		IntroText:        rec.GetString("intro_text"),
		IntroBody:        rec.GetString("intro_body"),
		ClosingBody:      rec.GetString("closing_body"),
		RecipientName:    rec.GetString("recipient_name"),
		RecipientCompany: rec.GetString("recipient_company"),
		RecipientAddress: rec.GetString("recipient_address"),
		PriceNotes:       rec.GetString("price_notes"),
		BankDetails:      rec.GetString("bank_details"),
		RegardsName:      rec.GetString("regards_name"),
		RegardsPhone:     rec.GetString("regards_phone"),
		RegardsEmail:     rec.GetString("regards_email"),
		CreatedAt:        rec.GetString("created"),
	}

	if err := rec.UnmarshalJSONField("sections", &q.Sections); err != nil {
		log.Printf("quotation_data: bad sections JSON on %s: %v", rec.Id, err)
		q.Sections = nil
	}
	if err := rec.UnmarshalJSONField("design_mockups", &q.DesignMockups); err != nil {
		q.DesignMockups = nil
	}
	return q
}

// ApplyQuotationToRecord writes the model fields onto a record for saving.
func ApplyQuotationToRecord(q *Quotation, rec *core.Record) {
	rec.Set("project", q.ProjectID)
	rec.Set("version", q.Version)
	rec.Set("status", q.Status)
	rec.Set("workflow", string(q.Workflow))
	rec.Set("ref_no", q.RefNo)
	rec.Set("date", q.Date)
	rec.Set("enquiry_no", q.EnquiryNo)
	rec.Set("location", q.Location)
	rec.Set("subject", q.Subject)
	rec.Set("salutation", q.Salutation)
	rec.Set("intro_text", q.IntroText)
	rec.Set("intro_body", q.IntroBody)
	rec.Set("closing_body", q.ClosingBody)
	rec.Set("recipient_name", q.RecipientName)
	rec.Set("recipient_company", q.RecipientCompany)
	rec.Set("recipient_address", q.RecipientAddress)
	rec.Set("price_notes", q.PriceNotes)
	rec.Set("bank_details", q.BankDetails)
	rec.Set("regards_name", q.RegardsName)
	rec.Set("regards_phone", q.RegardsPhone)
	rec.Set("regards_email", q.RegardsEmail)
	rec.Set("sections", q.Sections)
	rec.Set("design_mockups", q.DesignMockups)
}

// LookupClient returns the client lookup fields for recipient composition.
// A missing or deleted client yields a zero value: the document renders with
// blank recipient fields rather than failing.
func LookupClient(app *pocketbase.PocketBase, clientID string) ClientInfo {
	if clientID == "" {
		return ClientInfo{}
	}
	rec, err := app.FindRecordById("clients", clientID)
	if err != nil {
		log.Printf("quotation_data: could not find client %s: %v", clientID, err)
		return ClientInfo{}
	}
	return ClientInfo{
		ID:            rec.Id,
		Name:          rec.GetString("name"),
		Address:       rec.GetString("address"),
		GSTIN:         rec.GetString("gstin"),
		ContactPerson: rec.GetString("contact_person"),
		Email:         rec.GetString("email"),
		Phone:         rec.GetString("phone"),
	}
}

// LookupProject returns the project lookup fields, zero-valued when missing.
func LookupProject(app *pocketbase.PocketBase, projectID string) ProjectInfo {
	if projectID == "" {
		return ProjectInfo{}
	}
	rec, err := app.FindRecordById("projects", projectID)
	if err != nil {
		log.Printf("quotation_data: could not find project %s: %v", projectID, err)
		return ProjectInfo{}
	}
	return ProjectInfo{
		ID:       rec.Id,
		ClientID: rec.GetString("client"),
		Name:     rec.GetString("name"),
		Location: rec.GetString("location"),
		Workflow: Workflow(rec.GetString("workflow")),
		Status:   rec.GetString("status"),
	}
}
