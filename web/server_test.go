package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"travelog/logbook"
	"travelog/storage"
)

func testServer(t *testing.T, names ...string) (http.Handler, *logbook.Workspace) {
	t.Helper()

	store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "travelog_test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, name := range names {
		if _, err := store.Open(name); err != nil {
			t.Fatalf("create collection %q: %v", name, err)
		}
	}

	workspace, err := logbook.LoadWorkspace(store)
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}
	return NewServer(workspace), workspace
}

func jsonBody(t *testing.T, payload any) *strings.Reader {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return strings.NewReader(string(data))
}

func validLogPayload() map[string]string {
	return map[string]string{
		"origin":      "Home",
		"destination": "Office",
		"mode":        "Car",
		"startDate":   "2026-01-05",
		"startTime":   "08:10",
		"endDate":     "2026-01-05",
		"endTime":     "08:55",
		"description": "morning commute",
	}
}

func TestIndex_RedirectsToActiveCollection(t *testing.T) {
	t.Parallel()

	server, _ := testServer(t, "Commutes")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", recorder.Code)
	}
	if location := recorder.Header().Get("Location"); location != "/collection/Commutes" {
		t.Fatalf("unexpected redirect target %q", location)
	}
}

func TestIndex_EmptyWorkspaceRendersPage(t *testing.T) {
	t.Parallel()

	server, _ := testServer(t)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "No collections yet") {
		t.Fatalf("expected empty-state page, got %q", recorder.Body.String())
	}
}

func TestCollectionPage_RendersRowsAndSummary(t *testing.T) {
	t.Parallel()

	server, _ := testServer(t, "Commutes")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/collections/Commutes/logs", jsonBody(t, validLogPayload())))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/collection/Commutes", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "2026, Jan 5 [8:10 AM]") {
		t.Fatalf("expected display-formatted start in page")
	}
	if !strings.Contains(body, "45 mins") {
		t.Fatalf("expected duration text in page")
	}
	if !strings.Contains(body, "1 trips, total 45 mins") {
		t.Fatalf("expected summary line in page")
	}
}

func TestCollectionPage_UnknownCollection(t *testing.T) {
	t.Parallel()

	server, _ := testServer(t, "Commutes")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/collection/Missing", nil))

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestCollectionPage_InvalidSortColumn(t *testing.T) {
	t.Parallel()

	server, _ := testServer(t, "Commutes")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/collection/Commutes?sort=bogus", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestLogCreate_ValidationErrors(t *testing.T) {
	t.Parallel()

	server, workspace := testServer(t, "Commutes")

	payload := validLogPayload()
	payload["origin"] = "   "
	payload["endTime"] = "08:10"

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/collections/Commutes/logs", jsonBody(t, payload)))

	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response errorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if len(response.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", response.Fields)
	}

	collection, _ := workspace.Collection("Commutes")
	if collection.Len() != 0 {
		t.Fatalf("expected nothing persisted after validation failure")
	}
}

func TestLogCreate_PartialDateTimeReportsMissingField(t *testing.T) {
	t.Parallel()

	server, workspace := testServer(t, "Commutes")

	payload := validLogPayload()
	payload["endTime"] = ""

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/collections/Commutes/logs", jsonBody(t, payload)))

	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response errorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if len(response.Fields) != 1 {
		t.Fatalf("expected 1 field error, got %+v", response.Fields)
	}
	if response.Fields[0].Field != "End" || response.Fields[0].Message != "End is required." {
		t.Fatalf("unexpected field error %+v", response.Fields[0])
	}

	collection, _ := workspace.Collection("Commutes")
	if collection.Len() != 0 {
		t.Fatalf("expected nothing persisted after validation failure")
	}
}

func TestLogUpdateAndDelete(t *testing.T) {
	t.Parallel()

	server, workspace := testServer(t, "Commutes")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/collections/Commutes/logs", jsonBody(t, validLogPayload())))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", recorder.Code)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	payload := validLogPayload()
	payload["destination"] = "Gym"
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/api/collections/Commutes/logs/1", jsonBody(t, payload)))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	collection, _ := workspace.Collection("Commutes")
	entry, err := collection.Get(created.ID)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if entry.Destination != "Gym" {
		t.Fatalf("expected updated destination, got %q", entry.Destination)
	}

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/collections/Commutes/logs/1", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if collection.Len() != 0 {
		t.Fatalf("expected empty collection after delete")
	}

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/collections/Commutes/logs/1", nil))
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for repeated delete, got %d", recorder.Code)
	}
}

func TestLogsClear(t *testing.T) {
	t.Parallel()

	server, workspace := testServer(t, "Commutes")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/collections/Commutes/logs", jsonBody(t, validLogPayload())))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/collections/Commutes/logs", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	collection, _ := workspace.Collection("Commutes")
	if collection.Len() != 0 {
		t.Fatalf("expected cleared collection")
	}
}

func TestCollectionLifecycle(t *testing.T) {
	t.Parallel()

	server, workspace := testServer(t)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/collections", jsonBody(t, map[string]string{"name": "Commutes"})))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/collections", jsonBody(t, map[string]string{"name": "Commutes"})))
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate name, got %d", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/collections/Commutes/rename", jsonBody(t, map[string]string{"name": "Daily"})))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if _, ok := workspace.Collection("Daily"); !ok {
		t.Fatalf("expected renamed collection")
	}

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/collections/Daily", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if workspace.Len() != 0 {
		t.Fatalf("expected empty workspace after delete")
	}
}
