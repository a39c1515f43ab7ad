package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/collections"
	"rnsdocs/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateQuotationWorkflows(app); err != nil {
			log.Printf("Warning: quotation workflow migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Apply active project middleware globally
		se.Router.BindFunc(handlers.ActiveProjectMiddleware(app))

		// ── Project activation ───────────────────────────────────
		se.Router.POST("/projects/{id}/switch", handlers.HandleProjectSwitch(app))

		// ── Client CRUD ──────────────────────────────────────────
		se.Router.GET("/clients", handlers.HandleClientList(app))
		se.Router.GET("/clients/new", handlers.HandleClientCreate(app))
		se.Router.POST("/clients", handlers.HandleClientSave(app))
		se.Router.GET("/clients/{id}/edit", handlers.HandleClientEdit(app))
		se.Router.POST("/clients/{id}", handlers.HandleClientUpdate(app))
		se.Router.DELETE("/clients/{id}", handlers.HandleClientDelete(app))

		// ── Project CRUD ─────────────────────────────────────────
		se.Router.GET("/projects/new", handlers.HandleProjectCreate(app))
		se.Router.POST("/projects", handlers.HandleProjectSave(app))
		se.Router.GET("/projects/{id}/edit", handlers.HandleProjectEdit(app))
		se.Router.POST("/projects/{id}", handlers.HandleProjectUpdate(app))
		se.Router.DELETE("/projects/{id}", handlers.HandleProjectDelete(app))
		se.Router.GET("/projects/{id}", handlers.HandleProjectView(app))

		// ── Quotations (project-scoped creation, then global by id) ──
		se.Router.POST("/projects/{projectId}/quotations", handlers.HandleQuotationCreate(app))
		se.Router.GET("/quotations/{id}/edit", handlers.HandleQuotationEdit(app))
		se.Router.POST("/quotations/{id}", handlers.HandleQuotationUpdate(app))
		se.Router.DELETE("/quotations/{id}", handlers.HandleQuotationDelete(app))
		se.Router.GET("/quotations/{id}/preview", handlers.HandleQuotationPreview(app))
		se.Router.GET("/quotations/{id}/pdf", handlers.HandleQuotationPDF(app))

		// ── Proforma invoices ────────────────────────────────────
		se.Router.POST("/projects/{projectId}/invoices", handlers.HandleInvoiceCreate(app))
		se.Router.GET("/invoices/{id}/edit", handlers.HandleInvoiceEdit(app))
		se.Router.POST("/invoices/{id}", handlers.HandleInvoiceUpdate(app))
		se.Router.DELETE("/invoices/{id}", handlers.HandleInvoiceDelete(app))
		se.Router.GET("/invoices/{id}/preview", handlers.HandleInvoicePreview(app))
		se.Router.GET("/invoices/{id}/pdf", handlers.HandleInvoicePDF(app))
		se.Router.GET("/invoices/{id}/excel", handlers.HandleInvoiceExcel(app))

		// ── Branding settings ────────────────────────────────────
		se.Router.GET("/settings/branding", handlers.HandleBrandingSettings(app))
		se.Router.POST("/settings/branding", handlers.HandleBrandingUpdate(app))

		// Project list is the home page
		se.Router.GET("/", handlers.HandleProjectList(app))

		// Legacy path kept for old bookmarks
		se.Router.GET("/projects", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
