package search

import (
	"time"

	domanalytics "github.com/retailpulse/searchd/internal/domain/analytics"
	"github.com/retailpulse/searchd/internal/domain/document"
	"github.com/retailpulse/searchd/internal/domain/search/filter"
	"github.com/retailpulse/searchd/internal/index"
	"github.com/retailpulse/searchd/internal/usecase/analytics"
)

// Matcher is the text-matching contract the engine consumes.
type Matcher interface {
	Index(docs []document.Document)
	Add(doc document.Document)
	Reset()
	Match(text string, opts index.Options) []index.Hit
}

// PrimaryMatcher additionally exposes the index vocabulary for
// autocomplete suggestions.
type PrimaryMatcher interface {
	Matcher
	SuggestTerms(partial string, limit int) []string
}

// AnalyticsLog records executed searches and answers popularity queries.
type AnalyticsLog interface {
	Record(query string, resultCount int, took time.Duration, filters filter.Filters) domanalytics.Record
	All() []domanalytics.Record
	Popular(limit int) []string
	TrackClickThrough(query, resultID string) bool
	Stats() analytics.Stats
}
