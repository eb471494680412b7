// Package analytics defines the per-search telemetry record.
package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/retailpulse/searchd/internal/domain/search/filter"
)

// Record captures one search call.
type Record struct {
	id           string
	query        string
	timestamp    time.Time
	resultCount  int
	responseTime time.Duration
	clickThrough string
	filters      filter.Filters
}

// New creates a record for one executed search.
func New(query string, resultCount int, responseTime time.Duration, filters filter.Filters) Record {
	return Record{
		id:           uuid.NewString(),
		query:        query,
		timestamp:    time.Now().UTC(),
		resultCount:  resultCount,
		responseTime: responseTime,
		filters:      filters,
	}
}

// ID returns the record identifier.
func (r *Record) ID() string { return r.id }

// Query returns the search text as issued.
func (r *Record) Query() string { return r.query }

// Timestamp returns when the search ran.
func (r *Record) Timestamp() time.Time { return r.timestamp }

// ResultCount returns the pre-pagination match count.
func (r *Record) ResultCount() int { return r.resultCount }

// ResponseTime returns how long the search took.
func (r *Record) ResponseTime() time.Duration { return r.responseTime }

// ClickThrough returns the result id the user selected, if attributed.
func (r *Record) ClickThrough() string { return r.clickThrough }

// Filters returns the filters active for the search.
func (r *Record) Filters() filter.Filters { return r.filters }

// WithClickThrough returns a copy with click-through attribution attached.
func (r Record) WithClickThrough(resultID string) Record {
	r.clickThrough = resultID
	return r
}
