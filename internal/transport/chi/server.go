// Package chi is the HTTP surface over the in-process search engine. It is
// a thin collaborator layer: all search semantics live in the usecases.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/retailpulse/searchd/internal/domain"
	"github.com/retailpulse/searchd/internal/domain/document"
	ingestuc "github.com/retailpulse/searchd/internal/usecase/ingest"
	searchuc "github.com/retailpulse/searchd/internal/usecase/search"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Server holds the usecase services behind the HTTP API.
type Server struct {
	engine *searchuc.Service
	ingest *ingestuc.Service
	logger *zap.Logger
}

// NewServer creates the HTTP API server.
func NewServer(engine *searchuc.Service, ingest *ingestuc.Service, logger *zap.Logger) *Server {
	return &Server{engine: engine, ingest: ingest, logger: logger}
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/search", s.handleSearch)
	r.Get("/suggestions", s.handleSuggestions)
	r.Post("/documents", s.handleAddDocuments)
	r.Put("/index", s.handleRebuildIndex)
	r.Post("/records", s.handleAddRecord)
	r.Get("/analytics", s.handleAnalytics)
	r.Get("/analytics/popular", s.handlePopular)
	r.Get("/analytics/stats", s.handleStats)
	r.Post("/analytics/click", s.handleClickThrough)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// handleSearch handles POST /search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	resp := s.engine.Search(r.Context(), req.toQuery())
	writeJSON(w, http.StatusOK, responseToDTO(resp))
}

// handleSuggestions handles GET /suggestions?q=.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions := s.engine.GetSuggestions(r.URL.Query().Get("q"))
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

// handleAddDocuments handles POST /documents: incremental raw-document ingestion.
func (s *Server) handleAddDocuments(w http.ResponseWriter, r *http.Request) {
	report, ok := s.decodeAndIngest(w, r, false)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"indexed": report.Indexed, "skipped": report.Skipped})
}

// handleRebuildIndex handles PUT /index: full replace from supplied documents.
func (s *Server) handleRebuildIndex(w http.ResponseWriter, r *http.Request) {
	report, ok := s.decodeAndIngest(w, r, true)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"indexed": report.Indexed, "skipped": report.Skipped})
}

func (s *Server) decodeAndIngest(
	w http.ResponseWriter, r *http.Request, rebuild bool,
) (searchuc.IngestReport, bool) {
	var dtos []documentDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return searchuc.IngestReport{}, false
	}

	// Best-effort conversion: unconvertible documents count as skipped.
	converted, skipped := convertDocuments(dtos, s.logger)
	var report searchuc.IngestReport
	if rebuild {
		report = s.engine.RebuildIndex(converted)
	} else {
		report = s.engine.AddDocuments(converted)
	}
	report.Skipped += skipped
	return report, true
}

// handleAddRecord handles POST /records: one business record, converted by
// the data adapter.
func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind string          `json:"kind"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	if err := s.ingest.AddRecord(req.Kind, req.Data); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "indexed"})
}

// handleAnalytics handles GET /analytics.
func (s *Server) handleAnalytics(w http.ResponseWriter, _ *http.Request) {
	records := s.engine.GetAnalytics()
	dtos := make([]analyticsDTO, len(records))
	for i := range records {
		dtos[i] = analyticsToDTO(&records[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": dtos})
}

// handlePopular handles GET /analytics/popular?limit=.
func (s *Server) handlePopular(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	queries := s.engine.GetPopularQueries(limit)
	if queries == nil {
		queries = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"queries": queries})
}

// handleStats handles GET /analytics/stats.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statsToDTO(s.engine.AnalyticsStats()))
}

// handleClickThrough handles POST /analytics/click.
func (s *Server) handleClickThrough(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query    string `json:"query"`
		ResultID string `json:"resultId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	if !s.engine.TrackClickThrough(req.Query, req.ResultID) {
		writeError(w, http.StatusNotFound, "not_found", "no analytics record for query")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "tracked"})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"documents": s.engine.DocumentCount(),
	})
}

// handleDomainError maps sentinel errors to HTTP statuses.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownRecordKind):
		writeError(w, http.StatusBadRequest, "unknown_record_kind", err.Error())
	case errors.Is(err, domain.ErrMissingID), errors.Is(err, domain.ErrInvalidDocType):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		s.logger.Error("unhandled domain error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

// convertDocuments builds domain documents from wire DTOs, skipping the
// malformed ones instead of failing the batch.
func convertDocuments(dtos []documentDTO, logger *zap.Logger) ([]document.Document, int) {
	docs := make([]document.Document, 0, len(dtos))
	skipped := 0
	for i := range dtos {
		doc, err := dtos[i].toDocument()
		if err != nil {
			logger.Warn("skipping malformed document",
				zap.String("id", dtos[i].ID), zap.Error(err))
			skipped++
			continue
		}
		docs = append(docs, doc)
	}
	return docs, skipped
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
