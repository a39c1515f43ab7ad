package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"rnsdocs/testhelpers"
)

func TestHandleClientSave_CreatesRecord(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "Nagpur Logistics Park")
	form.Set("address", "Plot 7, MIDC, Butibori")
	form.Set("gstin", "27AABCN1234F1Z5")
	form.Set("contact_person", "S. Deshmukh")

	handler := HandleClientSave(app)

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/clients")

	records, err := app.FindRecordsByFilter("clients", "name = {:n}", "", 0, 0,
		map[string]any{"n": "Nagpur Logistics Park"})
	if err != nil || len(records) != 1 {
		t.Fatalf("expected one created client, got %d (err=%v)", len(records), err)
	}
	if got := records[0].GetString("gstin"); got != "27AABCN1234F1Z5" {
		t.Errorf("gstin = %q", got)
	}
}

func TestHandleClientSave_RequiresName(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "   ")

	handler := HandleClientSave(app)

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap: none on validation errors")
	}
}
