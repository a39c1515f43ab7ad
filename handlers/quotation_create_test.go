package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"rnsdocs/services"
	"rnsdocs/testhelpers"
)

func createQuotationViaHandler(t *testing.T, app *pocketbase.PocketBase, projectID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := HandleQuotationCreate(app)

	req := httptest.NewRequest(http.MethodPost, "/projects/"+projectID+"/quotations", nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("projectId", projectID)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestHandleQuotationCreate_AssignsSequentialVersions(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Vidarbha Agro Industries")
	proj := testhelpers.CreateTestProject(t, app, client.Id, "Warehouse Shed", services.WorkflowStructuralFabrication)

	rec := createQuotationViaHandler(t, app, proj.Id)
	redirect := rec.Header().Get("HX-Redirect")
	if !strings.HasPrefix(redirect, "/quotations/") || !strings.HasSuffix(redirect, "/edit") {
		t.Fatalf("HX-Redirect = %q, want /quotations/{id}/edit", redirect)
	}

	createQuotationViaHandler(t, app, proj.Id)

	records, err := app.FindRecordsByFilter("quotations", "project = {:p}", "version", 0, 0,
		map[string]any{"p": proj.Id})
	if err != nil {
		t.Fatalf("could not list quotations: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d quotations, want 2", len(records))
	}
	if records[0].GetInt("version") != 1 || records[1].GetInt("version") != 2 {
		t.Errorf("versions = %d/%d, want 1/2",
			records[0].GetInt("version"), records[1].GetInt("version"))
	}

	// The ref number carries the workflow suffix and the padded version.
	refNo := records[1].GetString("ref_no")
	if !strings.Contains(refNo, "/RNS-SF-002") {
		t.Errorf("ref_no = %q, want the RNS-SF-002 tail", refNo)
	}
	if !strings.Contains(refNo, "Vidarbha Agro Industries") {
		t.Errorf("ref_no = %q, want the client name in it", refNo)
	}
}

func TestHandleQuotationCreate_CopiesRecipientFromClient(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Deccan Warehousing")
	proj := testhelpers.CreateTestProject(t, app, client.Id, "Cold Storage", services.WorkflowJobWork)

	createQuotationViaHandler(t, app, proj.Id)

	records, err := app.FindRecordsByFilter("quotations", "project = {:p}", "", 0, 0,
		map[string]any{"p": proj.Id})
	if err != nil || len(records) != 1 {
		t.Fatalf("could not load created quotation: %v", err)
	}

	if got := records[0].GetString("recipient_company"); got != "Deccan Warehousing" {
		t.Errorf("recipient_company = %q", got)
	}
	if got := records[0].GetString("recipient_name"); got != "Test Contact" {
		t.Errorf("recipient_name = %q", got)
	}
	if got := records[0].GetString("workflow"); got != "job_work" {
		t.Errorf("workflow = %q, want job_work", got)
	}
}

func TestHandleQuotationCreate_ProjectNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuotationCreate(app)

	req := httptest.NewRequest(http.MethodPost, "/projects/nonexistent/quotations", nil)
	req.SetPathValue("projectId", "nonexistent")
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
