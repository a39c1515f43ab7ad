package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the clients, projects, quotations,
// invoices and branding_settings collections exist.
func Setup(app *pocketbase.PocketBase) {
	clients := ensureCollection(app, "clients", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "gstin", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_person", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	projects := ensureCollection(app, "projects", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "client",
			Required:     true,
			CollectionId: clients.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "location", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "workflow",
			Required:  true,
			Values:    []string{"supply_and_fabrication", "structural_fabrication", "job_work"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"active", "completed", "on_hold"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "project",
			Required:      true,
			CollectionId:  projects.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "version", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"draft", "sent", "accepted", "rejected"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "workflow",
			Required:  true,
			Values:    []string{"supply_and_fabrication", "structural_fabrication", "job_work"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "ref_no", Required: true})
		c.Fields.Add(&core.TextField{Name: "date", Required: false})
		c.Fields.Add(&core.TextField{Name: "enquiry_no", Required: false})
		c.Fields.Add(&core.TextField{Name: "location", Required: false})
		c.Fields.Add(&core.TextField{Name: "subject", Required: false})
		c.Fields.Add(&core.TextField{Name: "salutation", Required: false})
		c.Fields.Add(&core.TextField{Name: "intro_text", Required: false})
		c.Fields.Add(&core.TextField{Name: "intro_body", Required: false})
		c.Fields.Add(&core.TextField{Name: "closing_body", Required: false})
		c.Fields.Add(&core.TextField{Name: "recipient_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "recipient_company", Required: false})
		c.Fields.Add(&core.TextField{Name: "recipient_address", Required: false})
		c.Fields.Add(&core.TextField{Name: "price_notes", Required: false})
		c.Fields.Add(&core.TextField{Name: "bank_details", Required: false})
		c.Fields.Add(&core.TextField{Name: "regards_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "regards_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "regards_email", Required: false})
		c.Fields.Add(&core.JSONField{Name: "sections", Required: false})
		c.Fields.Add(&core.JSONField{Name: "design_mockups", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "invoices", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "project",
			Required:      true,
			CollectionId:  projects.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "version", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"draft", "sent", "paid", "cancelled"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "pi_no", Required: true})
		c.Fields.Add(&core.TextField{Name: "date", Required: false})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "registered_address", Required: false})
		c.Fields.Add(&core.TextField{Name: "consignee_address", Required: false})
		c.Fields.Add(&core.TextField{Name: "gstin", Required: false})
		c.Fields.Add(&core.TextField{Name: "wo_no", Required: false})
		c.Fields.Add(&core.TextField{Name: "dispatch_details", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "tax_type",
			Required:  true,
			Values:    []string{"intra_state", "inter_state"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.JSONField{Name: "items", Required: false})
		c.Fields.Add(&core.JSONField{Name: "bank_details", Required: false})
		c.Fields.Add(&core.TextField{Name: "regards_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "amount_in_words", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "branding_settings", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "header_text", Required: false})
		c.Fields.Add(&core.TextField{Name: "footer_text", Required: false})
		c.Fields.Add(&core.TextField{Name: "brand_color", Required: false})
		c.Fields.Add(&core.TextField{Name: "logo_background_color", Required: false})
		c.Fields.Add(&core.JSONField{Name: "registry", Required: false})
		// Images are stored base64-encoded; document letterhead assets stay
		// small enough that record storage beats a file field here.
		c.Fields.Add(&core.TextField{Name: "logo", Required: false, Max: 2_000_000})
		c.Fields.Add(&core.TextField{Name: "header_image", Required: false, Max: 2_000_000})
		c.Fields.Add(&core.TextField{Name: "footer_image", Required: false, Max: 2_000_000})
		c.Fields.Add(&core.TextField{Name: "stamp_signature", Required: false, Max: 2_000_000})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
