package collections_test

import (
	"testing"

	"rnsdocs/collections"
	"rnsdocs/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	clients, err := app.FindAllRecords("clients")
	if err != nil {
		t.Fatalf("query clients error: %v", err)
	}
	if len(clients) != 2 {
		t.Errorf("expected 2 clients, got %d", len(clients))
	}

	projects, err := app.FindAllRecords("projects")
	if err != nil {
		t.Fatalf("query projects error: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}

	// One project per workflow.
	workflows := map[string]bool{}
	for _, p := range projects {
		workflows[p.GetString("workflow")] = true
	}
	for _, w := range []string{"supply_and_fabrication", "structural_fabrication", "job_work"} {
		if !workflows[w] {
			t.Errorf("no seeded project with workflow %q", w)
		}
	}

	// Each project starts with a first quotation version.
	quotations, err := app.FindAllRecords("quotations")
	if err != nil {
		t.Fatalf("query quotations error: %v", err)
	}
	if len(quotations) != 3 {
		t.Errorf("expected 3 quotations, got %d", len(quotations))
	}
	for _, q := range quotations {
		if q.GetInt("version") != 1 {
			t.Errorf("seeded quotation version = %d, want 1", q.GetInt("version"))
		}
		if q.GetString("ref_no") == "" {
			t.Error("seeded quotation has an empty ref_no")
		}
	}

	branding, err := app.FindAllRecords("branding_settings")
	if err != nil {
		t.Fatalf("query branding error: %v", err)
	}
	if len(branding) != 1 {
		t.Errorf("expected 1 branding record, got %d", len(branding))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	clients, err := app.FindAllRecords("clients")
	if err != nil {
		t.Fatalf("query clients error: %v", err)
	}
	if len(clients) != 2 {
		t.Errorf("expected 2 clients after re-seed, got %d", len(clients))
	}
}
