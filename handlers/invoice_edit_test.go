package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"rnsdocs/services"
	"rnsdocs/testhelpers"
)

func TestHandleInvoiceUpdate_RebuildsItemsAndTotals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Vidarbha Agro Industries")
	proj := testhelpers.CreateTestProject(t, app, client.Id, "Warehouse Shed", services.WorkflowSupplyAndFabrication)
	invoice := testhelpers.CreateTestInvoice(t, app, proj.Id, "RNS/PI/AUG-2026/RNS-1", 1)

	form := url.Values{}
	form.Set("date", "15.08.2026")
	form.Set("client_name", "Vidarbha Agro Industries")
	form.Set("tax_type", "inter_state")
	form.Set("items.0.description", "PEB Steel Structure")
	form.Set("items.0.hsn_code", "94060019")
	form.Set("items.0.qty", "1000")
	form.Set("items.0.uom", "Kg")
	form.Set("items.0.rate_per_kg", "60")
	form.Set("items.0.percentage", "100")
	form.Set("items.1.description", "Erection at site")
	form.Set("items.1.hsn_code", "73089090")
	form.Set("items.1.qty", "1000")
	form.Set("items.1.uom", "Kg")
	form.Set("items.1.rate_per_kg", "8")
	form.Set("items.1.percentage", "100")
	form.Set("bank_ifsc_code", "YESB0000733")

	handler := HandleInvoiceUpdate(app)

	req := httptest.NewRequest(http.MethodPost, "/invoices/"+invoice.Id, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", invoice.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/invoices/"+invoice.Id+"/edit")

	stored, err := app.FindRecordById("invoices", invoice.Id)
	if err != nil {
		t.Fatalf("could not reload invoice: %v", err)
	}

	inv := services.InvoiceFromRecord(stored)
	if len(inv.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(inv.Items))
	}
	if inv.TaxType != services.TaxInterState {
		t.Errorf("TaxType = %q, want inter_state", inv.TaxType)
	}
	if inv.BankDetails.IFSCCode != "YESB0000733" {
		t.Errorf("IFSC = %q", inv.BankDetails.IFSCCode)
	}

	// Basic 60000 + 8000 = 68000; IGST 18% makes the rounded grand 80240.
	totals := services.CalcInvoiceTotals(inv.Items, inv.TaxType)
	if totals.Rounded != 80240 {
		t.Errorf("Rounded = %v, want 80240", totals.Rounded)
	}
	if got := stored.GetString("amount_in_words"); got != services.NumberToWords(80240) {
		t.Errorf("amount_in_words = %q, want %q", got, services.NumberToWords(80240))
	}
}

func TestHandleInvoiceUpdate_CarriesItemIDs(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Vidarbha Agro Industries")
	proj := testhelpers.CreateTestProject(t, app, client.Id, "Warehouse Shed", services.WorkflowJobWork)
	invoice := testhelpers.CreateTestInvoice(t, app, proj.Id, "RNS/PI/AUG-2026/RNS-1", 1)

	form := url.Values{}
	form.Set("client_name", "Vidarbha Agro Industries")
	form.Set("tax_type", "intra_state")
	// Existing row round-trips its id; a freshly added row has none.
	form.Set("items.0.id", "item-keep-me")
	form.Set("items.0.description", "Job work")
	form.Set("items.0.qty", "100")
	form.Set("items.1.description", "Transport")
	form.Set("items.1.qty", "1")

	handler := HandleInvoiceUpdate(app)

	req := httptest.NewRequest(http.MethodPost, "/invoices/"+invoice.Id, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", invoice.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	stored, err := app.FindRecordById("invoices", invoice.Id)
	if err != nil {
		t.Fatalf("could not reload invoice: %v", err)
	}

	inv := services.InvoiceFromRecord(stored)
	if len(inv.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(inv.Items))
	}
	if inv.Items[0].ID != "item-keep-me" {
		t.Errorf("item 0 ID = %q, want the submitted id kept", inv.Items[0].ID)
	}
	if inv.Items[1].ID == "" {
		t.Error("item 1 ID is empty, want a minted id for new rows")
	}
}

func TestHandleInvoiceEdit_RendersForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Vidarbha Agro Industries")
	proj := testhelpers.CreateTestProject(t, app, client.Id, "Warehouse Shed", services.WorkflowJobWork)
	invoice := testhelpers.CreateTestInvoice(t, app, proj.Id, "RNS/PI/AUG-2026/RNS-1", 1)

	handler := HandleInvoiceEdit(app)

	req := httptest.NewRequest(http.MethodGet, "/invoices/"+invoice.Id+"/edit", nil)
	req.SetPathValue("id", invoice.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		invoice.GetString("pi_no"),
		"Dispatch Details",
		"items.0.id",
		"items.0.description",
	)
}

func TestHandleInvoiceUpdate_KeepsRawPartialInput(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Vidarbha Agro Industries")
	proj := testhelpers.CreateTestProject(t, app, client.Id, "Warehouse Shed", services.WorkflowJobWork)
	invoice := testhelpers.CreateTestInvoice(t, app, proj.Id, "RNS/PI/AUG-2026/RNS-1", 1)

	form := url.Values{}
	form.Set("client_name", "Vidarbha Agro Industries")
	form.Set("tax_type", "intra_state")
	form.Set("items.0.description", "Job work")
	form.Set("items.0.qty", "100")
	form.Set("items.0.rate_per_kg", "12.")
	form.Set("items.0.percentage", "abc")

	handler := HandleInvoiceUpdate(app)

	req := httptest.NewRequest(http.MethodPost, "/invoices/"+invoice.Id, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", invoice.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	stored, err := app.FindRecordById("invoices", invoice.Id)
	if err != nil {
		t.Fatalf("could not reload invoice: %v", err)
	}

	inv := services.InvoiceFromRecord(stored)
	if len(inv.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(inv.Items))
	}
	// The raw strings survive the round trip even when unparseable.
	if inv.Items[0].RatePerKg != "12." {
		t.Errorf("RatePerKg = %q, want the raw input kept", inv.Items[0].RatePerKg)
	}
	if inv.Items[0].Percentage != "abc" {
		t.Errorf("Percentage = %q, want the raw input kept", inv.Items[0].Percentage)
	}
}
