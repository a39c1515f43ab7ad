package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rnsdocs/services"
	"rnsdocs/testhelpers"
)

func TestHandleInvoicePDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Vidarbha Agro Industries")
	proj := testhelpers.CreateTestProject(t, app, client.Id, "Warehouse Shed", services.WorkflowSupplyAndFabrication)
	invoice := testhelpers.CreateTestInvoice(t, app, proj.Id, "RNS/PI/AUG-2026/RNS-1", 1)

	handler := HandleInvoicePDF(app)

	req := httptest.NewRequest(http.MethodGet, "/invoices/"+invoice.Id+"/pdf", nil)
	req.SetPathValue("id", invoice.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}

	wantName := services.InvoicePDFFileName("RNS/PI/AUG-2026/RNS-1", "Warehouse Shed")
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, wantName) {
		t.Errorf("Content-Disposition = %q, want %q in it", disposition, wantName)
	}

	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("body does not start with the PDF magic bytes")
	}
}

func TestHandleInvoicePreview_StreamsInline(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Vidarbha Agro Industries")
	proj := testhelpers.CreateTestProject(t, app, client.Id, "Warehouse Shed", services.WorkflowJobWork)
	invoice := testhelpers.CreateTestInvoice(t, app, proj.Id, "RNS/PI/AUG-2026/RNS-1", 1)

	handler := HandleInvoicePreview(app)

	req := httptest.NewRequest(http.MethodGet, "/invoices/"+invoice.Id+"/preview", nil)
	req.SetPathValue("id", invoice.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := rec.Header().Get("Content-Disposition"); got != "inline" {
		t.Errorf("Content-Disposition = %q, want inline", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("body does not start with the PDF magic bytes")
	}
}

func TestHandleInvoiceExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Vidarbha Agro Industries")
	proj := testhelpers.CreateTestProject(t, app, client.Id, "Warehouse Shed", services.WorkflowJobWork)
	invoice := testhelpers.CreateTestInvoice(t, app, proj.Id, "RNS/PI/AUG-2026/RNS-1", 1)

	handler := HandleInvoiceExcel(app)

	req := httptest.NewRequest(http.MethodGet, "/invoices/"+invoice.Id+"/excel", nil)
	req.SetPathValue("id", invoice.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q", ct)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, ".xlsx") {
		t.Errorf("Content-Disposition = %q, want an .xlsx filename", disposition)
	}

	// XLSX files are zip archives.
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("body is not a zip archive")
	}
}
