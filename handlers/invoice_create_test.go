package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"

	"rnsdocs/services"
	"rnsdocs/testhelpers"
)

func createInvoiceViaHandler(t *testing.T, app *pocketbase.PocketBase, projectID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := HandleInvoiceCreate(app)

	req := httptest.NewRequest(http.MethodPost, "/projects/"+projectID+"/invoices", nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("projectId", projectID)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestHandleInvoiceCreate_GeneratesUniquePINumbers(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Vidarbha Agro Industries")
	proj := testhelpers.CreateTestProject(t, app, client.Id, "Warehouse Shed", services.WorkflowSupplyAndFabrication)

	rec := createInvoiceViaHandler(t, app, proj.Id)
	redirect := rec.Header().Get("HX-Redirect")
	if !strings.HasPrefix(redirect, "/invoices/") || !strings.HasSuffix(redirect, "/edit") {
		t.Fatalf("HX-Redirect = %q, want /invoices/{id}/edit", redirect)
	}

	createInvoiceViaHandler(t, app, proj.Id)

	records, err := app.FindRecordsByFilter("invoices", "project = {:p}", "version", 0, 0,
		map[string]any{"p": proj.Id})
	if err != nil {
		t.Fatalf("could not list invoices: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d invoices, want 2", len(records))
	}

	monthYear := services.MonthYearStr(time.Now())
	first := records[0].GetString("pi_no")
	second := records[1].GetString("pi_no")
	if first != "RNS/PI/"+monthYear+"/RNS-1" {
		t.Errorf("first pi_no = %q", first)
	}
	if second != "RNS/PI/"+monthYear+"/RNS-2" {
		t.Errorf("second pi_no = %q, want the next serial", second)
	}
	if records[0].GetInt("version") != 1 || records[1].GetInt("version") != 2 {
		t.Errorf("versions = %d/%d, want 1/2",
			records[0].GetInt("version"), records[1].GetInt("version"))
	}
}

func TestHandleInvoiceCreate_PINumbersUniqueAcrossProjects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Vidarbha Agro Industries")
	projA := testhelpers.CreateTestProject(t, app, client.Id, "Shed A", services.WorkflowJobWork)
	projB := testhelpers.CreateTestProject(t, app, client.Id, "Shed B", services.WorkflowJobWork)

	createInvoiceViaHandler(t, app, projA.Id)
	createInvoiceViaHandler(t, app, projB.Id)

	records, err := app.FindRecordsByFilter("invoices", "id != ''", "created", 0, 0, nil)
	if err != nil || len(records) != 2 {
		t.Fatalf("could not list invoices: %v (n=%d)", err, len(records))
	}

	if records[0].GetString("pi_no") == records[1].GetString("pi_no") {
		t.Errorf("PI numbers collide across projects: %q", records[0].GetString("pi_no"))
	}

	// Versions restart per project while the PI serial keeps counting.
	for _, r := range records {
		if r.GetInt("version") != 1 {
			t.Errorf("version = %d, want 1 for each project's first invoice", r.GetInt("version"))
		}
	}
}

func TestHandleInvoiceCreate_CopiesClientSnapshot(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Deccan Warehousing")
	proj := testhelpers.CreateTestProject(t, app, client.Id, "Cold Storage", services.WorkflowJobWork)

	createInvoiceViaHandler(t, app, proj.Id)

	records, err := app.FindRecordsByFilter("invoices", "project = {:p}", "", 0, 0,
		map[string]any{"p": proj.Id})
	if err != nil || len(records) != 1 {
		t.Fatalf("could not load created invoice: %v", err)
	}

	if got := records[0].GetString("client_name"); got != "Deccan Warehousing" {
		t.Errorf("client_name = %q", got)
	}
	if got := records[0].GetString("gstin"); got != "27AADCB2230M1ZV" {
		t.Errorf("gstin = %q", got)
	}
	if got := records[0].GetString("tax_type"); got != "intra_state" {
		t.Errorf("tax_type = %q, want intra_state default", got)
	}
}
