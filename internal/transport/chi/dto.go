package chi

import (
	"time"

	domanalytics "github.com/retailpulse/searchd/internal/domain/analytics"
	"github.com/retailpulse/searchd/internal/domain/document"
	"github.com/retailpulse/searchd/internal/domain/document/meta"
	"github.com/retailpulse/searchd/internal/domain/search/filter"
	"github.com/retailpulse/searchd/internal/domain/search/query"
	"github.com/retailpulse/searchd/internal/domain/search/result"
	"github.com/retailpulse/searchd/internal/usecase/analytics"
	searchuc "github.com/retailpulse/searchd/internal/usecase/search"
)

// Wire shapes. Field names follow the SPA client's existing contract.

type dateRangeDTO struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type filtersDTO struct {
	Types      []string      `json:"type,omitempty"`
	Categories []string      `json:"category,omitempty"`
	Tags       []string      `json:"tags,omitempty"`
	DateRange  *dateRangeDTO `json:"dateRange,omitempty"`
	Metadata   meta.Map      `json:"metadata,omitempty"`
}

type boostDTO struct {
	Title       float64 `json:"title,omitempty"`
	Description float64 `json:"description,omitempty"`
	Content     float64 `json:"content,omitempty"`
	Tags        float64 `json:"tags,omitempty"`
}

type searchRequest struct {
	Query       string      `json:"query"`
	Filters     *filtersDTO `json:"filters,omitempty"`
	SortBy      string      `json:"sortBy,omitempty"`
	SortOrder   string      `json:"sortOrder,omitempty"`
	Page        int         `json:"page,omitempty"`
	Limit       int         `json:"limit,omitempty"`
	Boost       *boostDTO   `json:"boost,omitempty"`
	Fuzzy       *bool       `json:"fuzzy,omitempty"`
	Prefix      *bool       `json:"prefix,omitempty"`
	CombineWith string      `json:"combineWith,omitempty"`
}

// toQuery maps the wire request onto a normalized query. Malformed values
// degrade to defaults inside query.New; nothing here rejects.
func (r *searchRequest) toQuery() query.Query {
	opts := []query.Option{
		query.WithSort(query.SortKey(r.SortBy), query.SortOrder(r.SortOrder)),
		query.WithPage(r.Page, r.Limit),
	}
	if r.Filters != nil {
		opts = append(opts, query.WithFilters(r.Filters.toFilters()))
	}
	if r.Boost != nil {
		opts = append(opts, query.WithBoosts(query.Boosts{
			Title:       r.Boost.Title,
			Description: r.Boost.Description,
			Content:     r.Boost.Content,
			Tags:        r.Boost.Tags,
		}))
	}
	if r.Fuzzy != nil {
		opts = append(opts, query.WithFuzzy(*r.Fuzzy))
	}
	if r.Prefix != nil {
		opts = append(opts, query.WithPrefix(*r.Prefix))
	}
	if r.CombineWith != "" {
		opts = append(opts, query.WithCombine(query.CombineMode(r.CombineWith)))
	}
	return query.New(r.Query, opts...)
}

func (f *filtersDTO) toFilters() filter.Filters {
	out := filter.Filters{
		Categories: f.Categories,
		Tags:       f.Tags,
		Metadata:   f.Metadata,
	}
	for _, t := range f.Types {
		out.Types = append(out.Types, document.Type(t))
	}
	if f.DateRange != nil {
		out.DateRange = &filter.DateRange{From: f.DateRange.From, To: f.DateRange.To}
	}
	return out
}

type resultDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	URL         string     `json:"url"`
	Score       float64    `json:"score"`
	Metadata    meta.Map   `json:"metadata,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Matches     []string   `json:"matches,omitempty"`
	FuzzyMatch  bool       `json:"fuzzyMatch,omitempty"`
}

func resultToDTO(r *result.Result) resultDTO {
	dto := resultDTO{
		ID:          r.ID(),
		Title:       r.Title(),
		Description: r.Description(),
		Type:        r.Type().String(),
		Category:    r.Category(),
		URL:         r.URL(),
		Score:       r.Score(),
		Metadata:    r.Metadata(),
		Tags:        r.Tags(),
		Matches:     r.Matches(),
		FuzzyMatch:  r.Fuzzy(),
	}
	if ts := r.Timestamp(); !ts.IsZero() {
		dto.Timestamp = &ts
	}
	return dto
}

type analyticsDTO struct {
	ID           string    `json:"id"`
	Query        string    `json:"query"`
	Timestamp    time.Time `json:"timestamp"`
	ResultCount  int       `json:"resultCount"`
	ResponseMs   float64   `json:"responseTime"`
	ClickThrough string    `json:"clickThrough,omitempty"`
}

func analyticsToDTO(rec *domanalytics.Record) analyticsDTO {
	return analyticsDTO{
		ID:           rec.ID(),
		Query:        rec.Query(),
		Timestamp:    rec.Timestamp(),
		ResultCount:  rec.ResultCount(),
		ResponseMs:   float64(rec.ResponseTime().Microseconds()) / 1000,
		ClickThrough: rec.ClickThrough(),
	}
}

type searchResponse struct {
	Results     []resultDTO    `json:"results"`
	Analytics   analyticsDTO   `json:"analytics"`
	Suggestions []string       `json:"suggestions"`
	Facets      map[string]int `json:"facets"`
	Total       int            `json:"total"`
	Page        int            `json:"page"`
	TotalPages  int            `json:"totalPages"`
}

func responseToDTO(resp searchuc.Response) searchResponse {
	results := make([]resultDTO, len(resp.Results))
	for i := range resp.Results {
		results[i] = resultToDTO(&resp.Results[i])
	}
	suggestions := resp.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return searchResponse{
		Results:     results,
		Analytics:   analyticsToDTO(&resp.Analytics),
		Suggestions: suggestions,
		Facets:      resp.Facets,
		Total:       resp.Total,
		Page:        resp.Page,
		TotalPages:  resp.TotalPages,
	}
}

type statsDTO struct {
	TotalSearches  int     `json:"totalSearches"`
	AvgResponseMs  float64 `json:"avgResponseTime"`
	AvgResultCount float64 `json:"avgResultCount"`
	ZeroResultRate float64 `json:"zeroResultRate"`
}

func statsToDTO(s analytics.Stats) statsDTO {
	return statsDTO{
		TotalSearches:  s.TotalSearches,
		AvgResponseMs:  float64(s.AvgResponseTime.Microseconds()) / 1000,
		AvgResultCount: s.AvgResultCount,
		ZeroResultRate: s.ZeroResultRate,
	}
}

type documentDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	URL         string     `json:"url"`
	Tags        []string   `json:"tags,omitempty"`
	Metadata    meta.Map   `json:"metadata,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

// toDocument validates and builds the domain document.
func (d *documentDTO) toDocument() (document.Document, error) {
	var ts time.Time
	if d.Timestamp != nil {
		ts = *d.Timestamp
	}
	return document.New(
		d.ID, d.Title, d.Description, d.Content,
		document.Type(d.Type), d.Category, d.URL,
		d.Tags, d.Metadata, ts,
	)
}
