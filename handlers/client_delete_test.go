package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rnsdocs/services"
	"rnsdocs/testhelpers"
)

func TestHandleClientDelete_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "No Projects Yet")

	handler := HandleClientDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+client.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/clients")

	if _, err := app.FindRecordById("clients", client.Id); err == nil {
		t.Error("expected client to be deleted")
	}
}

func TestHandleClientDelete_RefusedWithProjects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Busy Client")
	testhelpers.CreateTestProject(t, app, client.Id, "Ongoing Shed", services.WorkflowJobWork)

	handler := HandleClientDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+client.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}

	if _, err := app.FindRecordById("clients", client.Id); err != nil {
		t.Errorf("client with projects must not be deleted: %v", err)
	}
}

func TestHandleClientDelete_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleClientDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/clients/nonexistent", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
