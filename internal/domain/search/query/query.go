// Package query defines the normalized search request.
package query

import (
	"strings"

	"github.com/retailpulse/searchd/internal/domain/search/filter"
)

// Sort keys.
type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortDate      SortKey = "date"
	SortTitle     SortKey = "title"
	SortType      SortKey = "type"
)

// Sort directions.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Combination modes across query tokens.
type CombineMode string

const (
	CombineAnd CombineMode = "and"
	CombineOr  CombineMode = "or"
)

// Defaults applied by New when the caller omits or mangles a parameter.
const (
	DefaultLimit   = 20
	MaxQueryLength = 1024
)

// Boosts are per-field relevance weight overrides. Zero means "use default".
type Boosts struct {
	Title       float64
	Description float64
	Content     float64
	Tags        float64
}

// Query is a normalized search request. Construction degrades bad input to
// defaults instead of rejecting it: the engine sits behind a keystroke-driven
// UI where availability beats strictness.
type Query struct {
	text      string
	filters   filter.Filters
	sortBy    SortKey
	sortOrder SortOrder
	page      int
	limit     int
	boosts    Boosts
	fuzzy     bool
	prefix    bool
	combine   CombineMode
}

// Option mutates a query under construction.
type Option func(*Query)

// WithFilters sets the result filters.
func WithFilters(f filter.Filters) Option {
	return func(q *Query) { q.filters = f }
}

// WithSort sets the sort key and direction. Unknown values degrade to
// relevance/desc.
func WithSort(key SortKey, order SortOrder) Option {
	return func(q *Query) {
		switch key {
		case SortRelevance, SortDate, SortTitle, SortType:
			q.sortBy = key
		}
		switch order {
		case OrderAsc, OrderDesc:
			q.sortOrder = order
		}
	}
}

// WithPage sets 1-based pagination. Nonsensical values degrade to defaults.
func WithPage(page, limit int) Option {
	return func(q *Query) {
		if page >= 1 {
			q.page = page
		}
		if limit >= 1 {
			q.limit = limit
		}
	}
}

// WithBoosts overrides per-field weights.
func WithBoosts(b Boosts) Option {
	return func(q *Query) { q.boosts = b }
}

// WithFuzzy toggles light fuzzy matching in the primary index.
func WithFuzzy(on bool) Option {
	return func(q *Query) { q.fuzzy = on }
}

// WithPrefix toggles prefix matching in the primary index.
func WithPrefix(on bool) Option {
	return func(q *Query) { q.prefix = on }
}

// WithCombine sets the token combination mode. Unknown values degrade to OR.
func WithCombine(mode CombineMode) Option {
	return func(q *Query) {
		if mode == CombineAnd || mode == CombineOr {
			q.combine = mode
		}
	}
}

// New builds a normalized query. Text is trimmed; over-long text is truncated.
// Defaults: relevance/desc, page 1, limit 20, fuzzy and prefix on, OR mode.
func New(text string, opts ...Option) Query {
	text = strings.TrimSpace(text)
	if len(text) > MaxQueryLength {
		text = text[:MaxQueryLength]
	}
	q := Query{
		text:      text,
		sortBy:    SortRelevance,
		sortOrder: OrderDesc,
		page:      1,
		limit:     DefaultLimit,
		fuzzy:     true,
		prefix:    true,
		combine:   CombineOr,
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// Text returns the trimmed query text.
func (q *Query) Text() string { return q.text }

// IsEmpty reports whether the query has no text to match.
func (q Query) IsEmpty() bool { return q.text == "" }

// Filters returns the result filters.
func (q *Query) Filters() filter.Filters { return q.filters }

// SortBy returns the sort key.
func (q *Query) SortBy() SortKey { return q.sortBy }

// SortOrder returns the sort direction.
func (q *Query) SortOrder() SortOrder { return q.sortOrder }

// Page returns the 1-based page number.
func (q *Query) Page() int { return q.page }

// Limit returns the requested page size, before the engine's hard cap.
func (q *Query) Limit() int { return q.limit }

// Boosts returns the per-field weight overrides.
func (q *Query) Boosts() Boosts { return q.boosts }

// Fuzzy reports whether light fuzzy matching is requested.
func (q *Query) Fuzzy() bool { return q.fuzzy }

// Prefix reports whether prefix matching is requested.
func (q *Query) Prefix() bool { return q.prefix }

// Combine returns the token combination mode.
func (q *Query) Combine() CombineMode { return q.combine }
