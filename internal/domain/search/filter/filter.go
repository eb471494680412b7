// Package filter defines result filtering: all dimensions AND together,
// tag values OR within their dimension.
package filter

import (
	"time"

	"github.com/retailpulse/searchd/internal/domain/document"
	"github.com/retailpulse/searchd/internal/domain/document/meta"
)

// DateRange is an inclusive timestamp window.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window.
func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// Filters restricts a result set. Empty slices and nil maps mean
// "no filtering on that dimension".
type Filters struct {
	Types      []document.Type
	Categories []string
	Tags       []string
	DateRange  *DateRange
	Metadata   meta.Map
}

// IsEmpty reports whether no dimension is active.
func (f Filters) IsEmpty() bool {
	return len(f.Types) == 0 && len(f.Categories) == 0 && len(f.Tags) == 0 &&
		f.DateRange == nil && len(f.Metadata) == 0
}

// Matches reports whether the document passes every active dimension.
// Documents without a timestamp are excluded while a date filter is active.
func (f Filters) Matches(d *document.Document) bool {
	if len(f.Types) > 0 && !containsType(f.Types, d.Type()) {
		return false
	}
	if len(f.Categories) > 0 && !containsString(f.Categories, d.Category()) {
		return false
	}
	if len(f.Tags) > 0 && !intersects(d.Tags(), f.Tags) {
		return false
	}
	if f.DateRange != nil {
		if !d.HasTimestamp() || !f.DateRange.Contains(d.Timestamp()) {
			return false
		}
	}
	if len(f.Metadata) > 0 {
		docMeta := d.Metadata()
		for key, want := range f.Metadata {
			got, ok := docMeta[key]
			if !ok || !got.Equal(want) {
				return false
			}
		}
	}
	return true
}

func containsType(list []document.Type, t document.Type) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
