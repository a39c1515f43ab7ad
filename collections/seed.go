package collections

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/services"
)

// Seed populates the collections with a realistic starting data set: the
// default branding record, two clients and a project per workflow, each with
// a first quotation version. It is safe to call on every startup because it
// returns early if any client records already exist.
func Seed(app *pocketbase.PocketBase) error {
	clientsCol, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		return fmt.Errorf("seed: could not find clients collection: %w", err)
	}
	existing, err := app.FindAllRecords(clientsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query clients: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: clients collection is empty – inserting seed data …")

	projectsCol, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		return fmt.Errorf("seed: could not find projects collection: %w", err)
	}
	quotationsCol, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return fmt.Errorf("seed: could not find quotations collection: %w", err)
	}
	brandingCol, err := app.FindCollectionByNameOrId("branding_settings")
	if err != nil {
		return fmt.Errorf("seed: could not find branding_settings collection: %w", err)
	}

	// ── default branding ─────────────────────────────────────────────
	branding := services.DefaultBranding()
	br := core.NewRecord(brandingCol)
	br.Set("header_text", branding.HeaderText)
	br.Set("footer_text", branding.FooterText)
	br.Set("brand_color", branding.BrandColor)
	br.Set("registry", branding.Registry)
	if err := app.Save(br); err != nil {
		return fmt.Errorf("seed: save branding: %w", err)
	}

	// ── clients ──────────────────────────────────────────────────────
	createClient := func(name, address, gstin, contact, email, phone string) (*core.Record, error) {
		r := core.NewRecord(clientsCol)
		r.Set("name", name)
		r.Set("address", address)
		r.Set("gstin", gstin)
		r.Set("contact_person", contact)
		r.Set("email", email)
		r.Set("phone", phone)
		if err := app.Save(r); err != nil {
			return nil, fmt.Errorf("seed: save client %q: %w", name, err)
		}
		return r, nil
	}

	c1, err := createClient(
		"Vidarbha Agro Industries Ltd.",
		"Survey 88, Butibori Industrial Area, Nagpur - 441122, Maharashtra",
		"27AABCV2345K1Z7", "Sunil Deshmukh", "projects@vidarbha-agro.in", "+91 98230 45671",
	)
	if err != nil {
		return err
	}

	c2, err := createClient(
		"Deccan Warehousing Pvt. Ltd.",
		"Plot 7, Industrial Estate, Hyderabad - 500055, Telangana",
		"36AADCD8910L1Z3", "K. Srinivas", "ops@deccanwarehousing.com", "+91 99490 23456",
	)
	if err != nil {
		return err
	}

	// ── projects with a first quotation each ─────────────────────────
	now := time.Now()

	createProject := func(client *core.Record, name, location string, workflow services.Workflow) error {
		p := core.NewRecord(projectsCol)
		p.Set("client", client.Id)
		p.Set("name", name)
		p.Set("location", location)
		p.Set("workflow", string(workflow))
		p.Set("status", "active")
		if err := app.Save(p); err != nil {
			return fmt.Errorf("seed: save project %q: %w", name, err)
		}

		q := services.BuildQuotation(p.Id, 1, client.GetString("name"), location, workflow, now)
		qr := core.NewRecord(quotationsCol)
		services.ApplyQuotationToRecord(&q, qr)
		if err := app.Save(qr); err != nil {
			return fmt.Errorf("seed: save quotation for %q: %w", name, err)
		}
		return nil
	}

	if err := createProject(c1, "Warehouse Shed 60m x 24m", "Butibori, Nagpur", services.WorkflowSupplyAndFabrication); err != nil {
		return err
	}
	if err := createProject(c2, "Cold Storage Structure Phase II", "Medchal, Hyderabad", services.WorkflowStructuralFabrication); err != nil {
		return err
	}
	if err := createProject(c1, "Conveyor Gantry Fabrication", "Butibori, Nagpur", services.WorkflowJobWork); err != nil {
		return err
	}

	log.Println("seed: all seed data inserted successfully (2 clients, 3 projects, 3 quotations)")
	return nil
}
