package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"cueron/config"
	"cueron/handlers"
	"cueron/routes"
	"cueron/schema"
	"cueron/storage"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*mux.Router, *storage.MemoryStore) {
	t.Helper()

	schemas, err := schema.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	store := storage.NewMemoryStore()
	r := mux.NewRouter()
	routes.RegisterRoutes(r, handlers.NewHandler(store, schemas))
	return r, store
}

// newDisabledRouter builds the route table with no store configured.
func newDisabledRouter(t *testing.T) *mux.Router {
	t.Helper()

	schemas, err := schema.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	r := mux.NewRouter()
	routes.RegisterRoutes(r, handlers.NewHandler(nil, schemas))
	return r
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var docs []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &docs); err != nil {
		t.Fatalf("decode list: %v (body %s)", err, w.Body.String())
	}
	return docs
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var doc map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode object: %v (body %s)", err, w.Body.String())
	}
	return doc
}

func TestCreateAndListSites(t *testing.T) {
	r, store := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/sites", `{"name":"Plant A","city":"Pune"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create site: expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	id := decodeObject(t, w)["_id"]
	idStr, _ := id.(string)
	if idStr == "" {
		t.Fatalf("expected non-empty _id, got %v", id)
	}

	// No deduplication: an identical POST creates a distinct record.
	w2 := doJSON(t, r, http.MethodPost, "/sites", `{"name":"Plant A","city":"Pune"}`)
	if w2.Code != http.StatusCreated {
		t.Fatalf("repeat create site: expected 201 got %d", w2.Code)
	}
	if id2 := decodeObject(t, w2)["_id"]; id2 == idStr {
		t.Fatalf("repeated POST must create a distinct id, both %v", id2)
	}
	if got := store.Count(storage.CollectionSite); got != 2 {
		t.Fatalf("expected 2 stored sites, got %d", got)
	}

	wl := doJSON(t, r, http.MethodGet, "/sites", "")
	if wl.Code != http.StatusOK {
		t.Fatalf("list sites: expected 200 got %d", wl.Code)
	}
	docs := decodeList(t, wl)
	if len(docs) != 2 {
		t.Fatalf("expected 2 sites, got %d", len(docs))
	}
	for _, doc := range docs {
		if s, ok := doc["_id"].(string); !ok || s == "" {
			t.Fatalf("expected stringified _id, got %v", doc["_id"])
		}
		if doc["name"] != "Plant A" {
			t.Fatalf("unexpected site %v", doc)
		}
	}
}

func TestCreateSiteValidationError(t *testing.T) {
	r, store := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/sites", `{"city":"Pune"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "errors") {
		t.Fatalf("expected field errors in body, got %s", w.Body.String())
	}
	if got := store.Count(storage.CollectionSite); got != 0 {
		t.Fatalf("invalid payload must not persist, store has %d", got)
	}
}

func TestCreateSiteMalformedJSON(t *testing.T) {
	r, store := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/sites", `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if got := store.Count(storage.CollectionSite); got != 0 {
		t.Fatalf("malformed payload must not persist, store has %d", got)
	}
}

func TestAssetDefaultStatusAndSiteFilter(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/assets", `{"site_id":"s1","name":"Chiller 1","type":"HVAC"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create asset: expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	doJSON(t, r, http.MethodPost, "/assets", `{"site_id":"s2","name":"Genset","type":"Generator","status":"maintenance"}`)

	wl := doJSON(t, r, http.MethodGet, "/assets?site_id=s1", "")
	docs := decodeList(t, wl)
	if len(docs) != 1 {
		t.Fatalf("expected 1 asset for s1, got %d", len(docs))
	}
	if docs[0]["site_id"] != "s1" {
		t.Fatalf("filter returned wrong asset %v", docs[0])
	}
	if docs[0]["status"] != "active" {
		t.Fatalf("omitted status must default to active, got %v", docs[0]["status"])
	}

	all := decodeList(t, doJSON(t, r, http.MethodGet, "/assets", ""))
	if len(all) != 2 {
		t.Fatalf("expected 2 assets without filter, got %d", len(all))
	}
}

func TestCreateAssetEnumRejected(t *testing.T) {
	r, store := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/assets", `{"site_id":"s1","name":"Chiller","type":"HVAC","status":"broken"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d (%s)", w.Code, w.Body.String())
	}
	if got := store.Count(storage.CollectionAsset); got != 0 {
		t.Fatalf("rejected asset must not persist, store has %d", got)
	}
}

func TestCreateJobSynthesizesNewJob(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/jobs", `{"service_type":"Repair","site_id":"s1","asset_ids":["a1"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create job: expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	resp := decodeObject(t, w)
	if resp["status"] != "New" {
		t.Fatalf("expected status New, got %v", resp["status"])
	}
	if jobID, _ := resp["job_id"].(string); jobID == "" {
		t.Fatalf("expected non-empty job_id, got %v", resp["job_id"])
	}

	docs := decodeList(t, doJSON(t, r, http.MethodGet, "/jobs", ""))
	if len(docs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(docs))
	}
	job := docs[0]
	if job["status"] != "New" {
		t.Fatalf("stored job status must be New, got %v", job["status"])
	}
	timeline, ok := job["timeline"].([]interface{})
	if !ok || len(timeline) != 1 {
		t.Fatalf("expected one timeline entry, got %v", job["timeline"])
	}
	entry, _ := timeline[0].(map[string]interface{})
	if entry["status"] != "New" {
		t.Fatalf("timeline seed entry must be New, got %v", entry)
	}
}

func TestListJobsStatusFilter(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/jobs", `{"service_type":"AMC","site_id":"s1"}`)

	docs := decodeList(t, doJSON(t, r, http.MethodGet, "/jobs?status=Closed", ""))
	if len(docs) != 0 {
		t.Fatalf("no Closed jobs exist, got %d", len(docs))
	}

	docs = decodeList(t, doJSON(t, r, http.MethodGet, "/jobs?status=New", ""))
	if len(docs) != 1 {
		t.Fatalf("expected 1 New job, got %d", len(docs))
	}
}

func TestCreateJobValidation(t *testing.T) {
	r, store := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/jobs", `{"site_id":"s1"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing service_type, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/jobs", `{"service_type":"Cleaning","site_id":"s1"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for out-of-set service_type, got %d", w.Code)
	}

	if got := store.Count(storage.CollectionJob); got != 0 {
		t.Fatalf("rejected jobs must not persist, store has %d", got)
	}
}

func TestInvoiceDefaultsAndStatusFilter(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/invoices", `{"job_id":"j1","amount":2500}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create invoice: expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	doJSON(t, r, http.MethodPost, "/invoices", `{"job_id":"j2","amount":100,"status":"paid"}`)

	unpaid := decodeList(t, doJSON(t, r, http.MethodGet, "/invoices?status=unpaid", ""))
	if len(unpaid) != 1 {
		t.Fatalf("expected 1 unpaid invoice, got %d", len(unpaid))
	}
	if unpaid[0]["job_id"] != "j1" {
		t.Fatalf("status filter returned wrong invoice %v", unpaid[0])
	}
}

func TestFeedbackRatingBoundaries(t *testing.T) {
	r, store := newTestRouter(t)

	for _, rating := range []int{0, 6} {
		w := doJSON(t, r, http.MethodPost, "/feedback",
			fmt.Sprintf(`{"job_id":"j1","rating_overall":%d}`, rating))
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("rating %d: expected 422 got %d", rating, w.Code)
		}
	}
	for _, rating := range []int{1, 5} {
		w := doJSON(t, r, http.MethodPost, "/feedback",
			fmt.Sprintf(`{"job_id":"j1","rating_overall":%d}`, rating))
		if w.Code != http.StatusCreated {
			t.Fatalf("rating %d: expected 201 got %d (%s)", rating, w.Code, w.Body.String())
		}
	}

	if got := store.Count(storage.CollectionFeedback); got != 2 {
		t.Fatalf("expected 2 stored feedback records, got %d", got)
	}
}

func TestEntityEndpointsWithoutStore(t *testing.T) {
	r := newDisabledRouter(t)

	w := doJSON(t, r, http.MethodPost, "/sites", `{"name":"Plant A"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without store, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "database not configured") {
		t.Fatalf("unexpected error body %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/jobs", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without store, got %d", w.Code)
	}

	// Diagnostics stay reachable.
	w = doJSON(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health must survive a missing store, got %d", w.Code)
	}
}
