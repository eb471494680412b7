// Package analytics keeps the append-only in-memory log of executed
// searches and derives popularity and latency statistics from it.
package analytics

import (
	"sort"
	"sync"
	"time"

	domanalytics "github.com/retailpulse/searchd/internal/domain/analytics"
	"github.com/retailpulse/searchd/internal/domain/search/filter"
)

// Stats summarizes the log for the current session.
type Stats struct {
	TotalSearches   int
	AvgResponseTime time.Duration
	AvgResultCount  float64
	ZeroResultRate  float64
}

// Log is the session-scoped search telemetry store. The log has its own
// mutex so records can be appended while the engine holds a read lock.
type Log struct {
	mu      sync.Mutex
	enabled bool
	records []domanalytics.Record
}

// NewLog creates a log. A disabled log drops every record.
func NewLog(enabled bool) *Log {
	return &Log{enabled: enabled}
}

// Record appends one search record and returns it.
func (l *Log) Record(
	query string, resultCount int, took time.Duration, filters filter.Filters,
) domanalytics.Record {
	rec := domanalytics.New(query, resultCount, took, filters)
	if !l.enabled {
		return rec
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	return rec
}

// All returns the records in call order.
func (l *Log) All() []domanalytics.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domanalytics.Record, len(l.records))
	copy(out, l.records)
	return out
}

// Popular returns up to limit query strings by descending frequency.
// Ties break by first-seen order.
func (l *Log) Popular(limit int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var queries []string
	for i, rec := range l.records {
		q := rec.Query()
		if _, seen := counts[q]; !seen {
			firstSeen[q] = i
			queries = append(queries, q)
		}
		counts[q]++
	}

	sort.SliceStable(queries, func(i, j int) bool {
		if counts[queries[i]] != counts[queries[j]] {
			return counts[queries[i]] > counts[queries[j]]
		}
		return firstSeen[queries[i]] < firstSeen[queries[j]]
	})

	if limit > 0 && len(queries) > limit {
		queries = queries[:limit]
	}
	return queries
}

// TrackClickThrough attributes a selection to the most recent record for the
// query. Earlier records for the same query are left untouched. Reports
// whether a record was found.
func (l *Log) TrackClickThrough(query, resultID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := len(l.records) - 1; i >= 0; i-- {
		if l.records[i].Query() == query {
			l.records[i] = l.records[i].WithClickThrough(resultID)
			return true
		}
	}
	return false
}

// Stats computes response-time and result-count aggregates.
func (l *Log) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Stats{TotalSearches: len(l.records)}
	if s.TotalSearches == 0 {
		return s
	}
	var totalTook time.Duration
	var totalResults, zero int
	for _, rec := range l.records {
		totalTook += rec.ResponseTime()
		totalResults += rec.ResultCount()
		if rec.ResultCount() == 0 {
			zero++
		}
	}
	s.AvgResponseTime = totalTook / time.Duration(s.TotalSearches)
	s.AvgResultCount = float64(totalResults) / float64(s.TotalSearches)
	s.ZeroResultRate = float64(zero) / float64(s.TotalSearches)
	return s
}
