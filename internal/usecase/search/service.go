// Package search implements the engine orchestrator: it owns the document
// set and both index implementations, and runs the full query pipeline —
// match, fuzzy top-up, filter, sort, paginate, facets, suggestions,
// analytics.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	domanalytics "github.com/retailpulse/searchd/internal/domain/analytics"
	"github.com/retailpulse/searchd/internal/domain/document"
	"github.com/retailpulse/searchd/internal/domain/search/query"
	"github.com/retailpulse/searchd/internal/domain/search/result"
	"github.com/retailpulse/searchd/internal/index"
	"github.com/retailpulse/searchd/internal/logger"
	"github.com/retailpulse/searchd/internal/metrics"
	"github.com/retailpulse/searchd/internal/usecase/analytics"
)

// DefaultMaxResults is the hard page-size ceiling when config leaves it unset.
const DefaultMaxResults = 50

// minPrimaryHits is the threshold below which the fuzzy fallback tops up
// the primary result set.
const minPrimaryHits = 5

// Config fixes engine behavior for its lifetime.
type Config struct {
	EnableFuzzy     bool
	EnableAnalytics bool
	MaxResults      int
	FuzzyThreshold  float64
}

// Response is the complete answer to one search call.
type Response struct {
	Results     []result.Result
	Analytics   domanalytics.Record
	Suggestions []string
	Facets      map[string]int
	Total       int
	Page        int
	TotalPages  int
}

// IngestReport summarizes a best-effort document ingestion.
type IngestReport struct {
	Indexed int
	Skipped int
}

// Service is the search engine instance. One per application session, held
// by the composition root. Writes take the exclusive lock; searches share
// the read lock and observe a consistent snapshot.
type Service struct {
	mu       sync.RWMutex
	cfg      Config
	primary  PrimaryMatcher
	fallback Matcher
	docs     map[string]document.Document
	log      AnalyticsLog
	logger   *zap.Logger
}

// New creates an engine around the two matchers and the analytics log.
func New(primary PrimaryMatcher, fallback Matcher, log AnalyticsLog, lg *zap.Logger, cfg Config) *Service {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Service{
		cfg:      cfg,
		primary:  primary,
		fallback: fallback,
		docs:     make(map[string]document.Document),
		log:      log,
		logger:   lg,
	}
}

// AddDocuments appends documents incrementally. Ingestion is best-effort:
// a document without an id is skipped and counted, never aborts the batch.
// An id collision replaces the stored copy (last write wins); rebuild
// remains the only bulk cleanup.
func (s *Service) AddDocuments(docs []document.Document) IngestReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(docs)
}

// RebuildIndex replaces the whole document set and both indexes. Atomic from
// the caller's perspective: searches either see the old snapshot or the new.
func (s *Service) RebuildIndex(docs []document.Document) IngestReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = make(map[string]document.Document, len(docs))
	s.primary.Reset()
	s.fallback.Reset()
	return s.addLocked(docs)
}

func (s *Service) addLocked(docs []document.Document) IngestReport {
	var report IngestReport
	for i := range docs {
		if docs[i].ID() == "" {
			report.Skipped++
			continue
		}
		s.docs[docs[i].ID()] = docs[i]
		s.primary.Add(docs[i])
		s.fallback.Add(docs[i])
		report.Indexed++
	}
	if report.Skipped > 0 {
		s.logger.Warn("skipped malformed documents during ingest",
			zap.Int("skipped", report.Skipped),
			zap.Int("indexed", report.Indexed),
		)
		metrics.IngestSkippedTotal.Add(float64(report.Skipped))
	}
	metrics.IndexedDocuments.Set(float64(len(s.docs)))
	return report
}

// DocumentCount returns the number of indexed documents.
func (s *Service) DocumentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Search runs the query pipeline. It never fails: malformed input has
// already been degraded to defaults by query.New, and the worst case is an
// empty result set.
func (s *Service) Search(ctx context.Context, q query.Query) Response {
	start := time.Now()
	lg := logger.FromContext(ctx)

	// Empty query: explicit early exit, popular queries as suggestions.
	// No analytics record is appended for a query that ran no match.
	if q.IsEmpty() {
		metrics.SearchesTotal.WithLabelValues("empty_query").Inc()
		return Response{
			Results:     []result.Result{},
			Analytics:   domanalytics.New("", 0, time.Since(start), q.Filters()),
			Suggestions: s.log.Popular(maxSuggestions),
			Facets:      map[string]int{},
			Page:        q.Page(),
		}
	}

	s.mu.RLock()
	opts := index.Options{
		Fuzzy:      q.Fuzzy(),
		Prefix:     q.Prefix(),
		RequireAll: q.Combine() == query.CombineAnd,
		Boosts:     boostMap(q.Boosts()),
	}
	hits := s.primary.Match(q.Text(), opts)

	fuzzyIDs := map[string]bool{}
	if len(hits) < minPrimaryHits && s.cfg.EnableFuzzy {
		fallbackHits := s.fallback.Match(q.Text(), opts)
		if merged, ids := mergeHits(hits, fallbackHits); len(ids) > 0 {
			hits, fuzzyIDs = merged, ids
			metrics.FuzzyFallbackTotal.Inc()
		}
	}

	filtered := make([]result.Result, 0, len(hits))
	for _, h := range hits {
		doc, ok := s.docs[h.ID]
		if !ok {
			continue
		}
		if !q.Filters().Matches(&doc) {
			continue
		}
		filtered = append(filtered, result.FromDocument(&doc, h.Score, h.Fields, fuzzyIDs[h.ID]))
	}
	suggestions := s.suggest(q.Text())
	s.mu.RUnlock()

	sortResults(filtered, q.SortBy(), q.SortOrder())

	total := len(filtered)
	facets := computeFacets(filtered)
	page, limit := q.Page(), q.Limit()
	if limit > s.cfg.MaxResults {
		limit = s.cfg.MaxResults
	}
	paged := paginate(filtered, page, limit)
	totalPages := (total + limit - 1) / limit

	took := time.Since(start)
	rec := s.log.Record(q.Text(), total, took, q.Filters())

	outcome := "ok"
	if total == 0 {
		outcome = "no_results"
	}
	metrics.SearchesTotal.WithLabelValues(outcome).Inc()
	metrics.SearchDuration.Observe(took.Seconds())
	lg.Debug("search executed",
		zap.String("query", q.Text()),
		zap.Int("total", total),
		zap.Int("page", page),
		zap.Bool("fuzzy_fallback", len(fuzzyIDs) > 0),
		zap.Duration("took", took),
	)

	return Response{
		Results:     paged,
		Analytics:   rec,
		Suggestions: suggestions,
		Facets:      facets,
		Total:       total,
		Page:        page,
		TotalPages:  totalPages,
	}
}

// GetSuggestions returns autocomplete candidates; an empty partial yields
// the popular-queries list.
func (s *Service) GetSuggestions(partial string) []string {
	if strings.TrimSpace(partial) == "" {
		return s.log.Popular(maxSuggestions)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.suggest(partial)
}

// GetAnalytics returns the session's analytics records in call order.
func (s *Service) GetAnalytics() []domanalytics.Record {
	return s.log.All()
}

// GetPopularQueries returns the most frequent query strings.
func (s *Service) GetPopularQueries(limit int) []string {
	return s.log.Popular(limit)
}

// TrackClickThrough attributes a result selection to the most recent
// analytics record for the query.
func (s *Service) TrackClickThrough(queryText, resultID string) bool {
	return s.log.TrackClickThrough(queryText, resultID)
}

// AnalyticsStats summarizes session response times and result counts.
func (s *Service) AnalyticsStats() analytics.Stats {
	return s.log.Stats()
}

// paginate slices one 1-based page out of results. Pages past the end are
// empty, never an error.
func paginate(results []result.Result, page, limit int) []result.Result {
	start := (page - 1) * limit
	if start >= len(results) {
		return []result.Result{}
	}
	end := start + limit
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}

func boostMap(b query.Boosts) map[string]float64 {
	m := make(map[string]float64, 4)
	if b.Title > 0 {
		m[index.FieldTitle] = b.Title
	}
	if b.Description > 0 {
		m[index.FieldDescription] = b.Description
	}
	if b.Content > 0 {
		m[index.FieldContent] = b.Content
	}
	if b.Tags > 0 {
		m[index.FieldTags] = b.Tags
	}
	return m
}
