package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/retailpulse/searchd/internal/domain/document"
	"github.com/retailpulse/searchd/internal/index/fuzzy"
	"github.com/retailpulse/searchd/internal/index/primary"
	"github.com/retailpulse/searchd/internal/usecase/analytics"
	ingestuc "github.com/retailpulse/searchd/internal/usecase/ingest"
	searchuc "github.com/retailpulse/searchd/internal/usecase/search"
)

func newTestServer(t *testing.T) (*searchuc.Service, http.Handler) {
	t.Helper()
	engine := searchuc.New(
		primary.New(), fuzzy.New(0), analytics.NewLog(true), zap.NewNop(),
		searchuc.Config{EnableFuzzy: true, EnableAnalytics: true},
	)
	engine.RebuildIndex([]document.Document{
		document.Reconstruct(
			"p1", "Cotton T-Shirt", "Soft everyday tee", "",
			document.TypeProduct, "Apparel", "/products/p1",
			[]string{"clothing"}, nil,
			time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		),
		document.Reconstruct(
			"m1", "Total Revenue", "Monthly revenue metric", "",
			document.TypeDashboardMetric, "Dashboard", "/dashboard",
			nil, nil, time.Time{},
		),
	})

	srv := NewServer(engine, ingestuc.New(engine, zap.NewNop()), zap.NewNop())
	r := chi.NewRouter()
	srv.Routes(r)
	return engine, r
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func TestHandleSearch(t *testing.T) {
	_, h := newTestServer(t)

	rec, body := doJSON(t, h, http.MethodPost, "/search", `{"query":"shirt"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	results, _ := body["results"].([]any)
	if len(results) != 1 {
		t.Fatalf("results: %v", body["results"])
	}
	first, _ := results[0].(map[string]any)
	if first["id"] != "p1" {
		t.Errorf("result id: %v", first["id"])
	}
	if body["total"] != float64(1) || body["page"] != float64(1) {
		t.Errorf("total/page: %v/%v", body["total"], body["page"])
	}
}

func TestHandleSearch_FiltersAndPagination(t *testing.T) {
	_, h := newTestServer(t)

	payload := `{"query":"revenue","filters":{"type":["product"]}}`
	rec, body := doJSON(t, h, http.MethodPost, "/search", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if body["total"] != float64(0) {
		t.Errorf("type filter must exclude the metric, got total=%v", body["total"])
	}
}

func TestHandleSearch_BadBody(t *testing.T) {
	_, h := newTestServer(t)
	rec, body := doJSON(t, h, http.MethodPost, "/search", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
	if body["code"] != "bad_request" {
		t.Errorf("error code: %v", body["code"])
	}
}

func TestHandleSuggestions(t *testing.T) {
	_, h := newTestServer(t)

	rec, body := doJSON(t, h, http.MethodGet, "/suggestions?q=reven", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	suggestions, _ := body["suggestions"].([]any)
	found := false
	for _, s := range suggestions {
		if s == "revenue" {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestions: %v", body["suggestions"])
	}

	_, body = doJSON(t, h, http.MethodGet, "/suggestions", "")
	if _, ok := body["suggestions"].([]any); !ok {
		t.Errorf("empty partial must still return an array, got %v", body["suggestions"])
	}
}

func TestHandleAddDocuments(t *testing.T) {
	engine, h := newTestServer(t)

	payload := `[
		{"id":"p2","title":"Wireless Headphones","type":"product"},
		{"id":"","title":"No Identity","type":"product"},
		{"id":"x1","title":"Bad Type","type":"spaceship"}
	]`
	rec, body := doJSON(t, h, http.MethodPost, "/documents", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if body["indexed"] != float64(1) || body["skipped"] != float64(2) {
		t.Errorf("report: %v", body)
	}
	if got := engine.DocumentCount(); got != 3 {
		t.Errorf("DocumentCount: %d, want 3", got)
	}
}

func TestHandleRebuildIndex(t *testing.T) {
	engine, h := newTestServer(t)

	payload := `[{"id":"n1","title":"Fresh","type":"insight"}]`
	rec, _ := doJSON(t, h, http.MethodPut, "/index", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if got := engine.DocumentCount(); got != 1 {
		t.Errorf("DocumentCount after rebuild: %d, want 1", got)
	}
}

func TestHandleAddRecord(t *testing.T) {
	engine, h := newTestServer(t)

	rec, _ := doJSON(t, h, http.MethodPost, "/records",
		`{"kind":"product","data":{"id":"p7","name":"Beanie"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if got := engine.DocumentCount(); got != 3 {
		t.Errorf("DocumentCount: %d, want 3", got)
	}

	rec, body := doJSON(t, h, http.MethodPost, "/records",
		`{"kind":"invoice","data":{}}`)
	if rec.Code != http.StatusBadRequest || body["code"] != "unknown_record_kind" {
		t.Errorf("unknown kind: status %d code %v", rec.Code, body["code"])
	}
}

func TestHandleAnalyticsFlow(t *testing.T) {
	_, h := newTestServer(t)

	doJSON(t, h, http.MethodPost, "/search", `{"query":"revenue"}`)
	doJSON(t, h, http.MethodPost, "/search", `{"query":"revenue"}`)
	doJSON(t, h, http.MethodPost, "/search", `{"query":"shirt"}`)

	_, body := doJSON(t, h, http.MethodGet, "/analytics", "")
	records, _ := body["records"].([]any)
	if len(records) != 3 {
		t.Fatalf("records: %v", body["records"])
	}

	_, body = doJSON(t, h, http.MethodGet, "/analytics/popular?limit=1", "")
	queries, _ := body["queries"].([]any)
	if len(queries) != 1 || queries[0] != "revenue" {
		t.Errorf("popular: %v", body["queries"])
	}

	rec, body := doJSON(t, h, http.MethodGet, "/analytics/stats", "")
	if rec.Code != http.StatusOK || body["totalSearches"] != float64(3) {
		t.Errorf("stats: %v", body)
	}
}

func TestHandleClickThrough(t *testing.T) {
	_, h := newTestServer(t)

	rec, body := doJSON(t, h, http.MethodPost, "/analytics/click",
		`{"query":"revenue","resultId":"m1"}`)
	if rec.Code != http.StatusNotFound || body["code"] != "not_found" {
		t.Fatalf("before any search: status %d code %v", rec.Code, body["code"])
	}

	doJSON(t, h, http.MethodPost, "/search", `{"query":"revenue"}`)
	rec, body = doJSON(t, h, http.MethodPost, "/analytics/click",
		`{"query":"revenue","resultId":"m1"}`)
	if rec.Code != http.StatusOK || body["status"] != "tracked" {
		t.Errorf("after search: status %d body %v", rec.Code, body)
	}
}

func TestHandleHealth(t *testing.T) {
	_, h := newTestServer(t)
	rec, body := doJSON(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("health: status %d body %v", rec.Code, body)
	}
	if body["documents"] != float64(2) {
		t.Errorf("documents: %v", body["documents"])
	}
}
