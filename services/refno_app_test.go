package services_test

// App-backed numbering tests live in an external test package so they can use
// the shared test app helpers.

import (
	"fmt"
	"testing"
	"time"

	"rnsdocs/services"
	"rnsdocs/testhelpers"
)

func TestGeneratePINumber(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	first, err := services.GeneratePINumber(app, now)
	if err != nil {
		t.Fatalf("GeneratePINumber failed: %v", err)
	}
	if first != "RNS/PI/AUG-2026/RNS-1" {
		t.Errorf("first PI number = %q, want RNS/PI/AUG-2026/RNS-1", first)
	}

	// Occupy the first two serials; the generator must retry past them.
	client := testhelpers.CreateTestClient(t, app, "Vidarbha Agro Industries")
	project := testhelpers.CreateTestProject(t, app, client.Id, "Warehouse Shed", services.WorkflowJobWork)
	for serial := 1; serial <= 2; serial++ {
		testhelpers.CreateTestInvoice(t, app, project.Id, fmt.Sprintf("RNS/PI/AUG-2026/RNS-%d", serial), serial)
	}

	next, err := services.GeneratePINumber(app, now)
	if err != nil {
		t.Fatalf("GeneratePINumber failed: %v", err)
	}
	if next != "RNS/PI/AUG-2026/RNS-3" {
		t.Errorf("next PI number = %q, want RNS/PI/AUG-2026/RNS-3", next)
	}
}

func TestNextQuotationVersion(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Deccan Warehousing")
	project := testhelpers.CreateTestProject(t, app, client.Id, "Cold Storage", services.WorkflowSupplyAndFabrication)

	v, err := services.NextQuotationVersion(app, project.Id)
	if err != nil {
		t.Fatalf("NextQuotationVersion failed: %v", err)
	}
	if v != 1 {
		t.Errorf("first version = %d, want 1", v)
	}

	testhelpers.CreateTestQuotation(t, app, project.Id, "Deccan Warehousing", 1, services.WorkflowSupplyAndFabrication)
	testhelpers.CreateTestQuotation(t, app, project.Id, "Deccan Warehousing", 3, services.WorkflowSupplyAndFabrication)

	v, err = services.NextQuotationVersion(app, project.Id)
	if err != nil {
		t.Fatalf("NextQuotationVersion failed: %v", err)
	}
	if v != 4 {
		t.Errorf("next version = %d, want max+1 = 4", v)
	}

	// Versions are scoped per project.
	other := testhelpers.CreateTestProject(t, app, client.Id, "Second Shed", services.WorkflowJobWork)
	v, err = services.NextQuotationVersion(app, other.Id)
	if err != nil {
		t.Fatalf("NextQuotationVersion failed: %v", err)
	}
	if v != 1 {
		t.Errorf("other project version = %d, want 1", v)
	}
}

func TestNextInvoiceVersion(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Deccan Warehousing")
	project := testhelpers.CreateTestProject(t, app, client.Id, "Cold Storage", services.WorkflowSupplyAndFabrication)

	v, err := services.NextInvoiceVersion(app, project.Id)
	if err != nil {
		t.Fatalf("NextInvoiceVersion failed: %v", err)
	}
	if v != 1 {
		t.Errorf("first version = %d, want 1", v)
	}

	testhelpers.CreateTestInvoice(t, app, project.Id, "RNS/PI/AUG-2026/RNS-1", 1)
	testhelpers.CreateTestInvoice(t, app, project.Id, "RNS/PI/AUG-2026/RNS-2", 2)

	v, err = services.NextInvoiceVersion(app, project.Id)
	if err != nil {
		t.Fatalf("NextInvoiceVersion failed: %v", err)
	}
	if v != 3 {
		t.Errorf("next version = %d, want 3", v)
	}
}
