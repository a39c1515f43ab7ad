package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateQuotationWorkflows backfills the workflow field on quotation records
// that predate per-quotation workflow storage, copying it from the owning
// project. Safe to call on every startup -- returns early if nothing to
// migrate.
func MigrateQuotationWorkflows(app *pocketbase.PocketBase) error {
	quotationsCol, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return fmt.Errorf("migrate: could not find quotations collection: %w", err)
	}

	orphans, err := app.FindRecordsByFilter(
		quotationsCol,
		"workflow = ''",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query quotations without workflow: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	log.Printf("migrate: backfilling workflow on %d quotation(s) …", len(orphans))

	for _, q := range orphans {
		project, err := app.FindRecordById("projects", q.GetString("project"))
		if err != nil {
			log.Printf("migrate: quotation %s has no resolvable project, skipping: %v", q.Id, err)
			continue
		}

		workflow := project.GetString("workflow")
		if workflow == "" {
			workflow = "supply_and_fabrication"
		}

		q.Set("workflow", workflow)
		if err := app.Save(q); err != nil {
			return fmt.Errorf("migrate: save quotation %s: %w", q.Id, err)
		}
	}

	return nil
}
