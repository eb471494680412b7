// Package result defines a single search hit as returned to callers.
package result

import (
	"time"

	"github.com/retailpulse/searchd/internal/domain/document"
	"github.com/retailpulse/searchd/internal/domain/document/meta"
)

// Result is a ranked search hit.
type Result struct {
	id          string
	title       string
	description string
	docType     document.Type
	category    string
	url         string
	score       float64
	metadata    meta.Map
	timestamp   time.Time
	tags        []string
	matches     []string
	fuzzy       bool
}

// MetaFuzzyMatch is the metadata key tagged onto approximate hits so the
// UI can visually distinguish them.
const MetaFuzzyMatch = "fuzzyMatch"

// FromDocument builds a result from a matched document.
// matches names the fields the query matched in; fuzzy marks hits contributed
// by the approximate fallback so the UI can distinguish them.
func FromDocument(d *document.Document, score float64, matches []string, fuzzy bool) Result {
	md := d.Metadata().Clone()
	if fuzzy {
		if md == nil {
			md = meta.Map{}
		}
		md[MetaFuzzyMatch] = meta.Bool(true)
	}
	return Result{
		id:          d.ID(),
		title:       d.Title(),
		description: d.Description(),
		docType:     d.Type(),
		category:    d.Category(),
		url:         d.URL(),
		score:       score,
		metadata:    md,
		timestamp:   d.Timestamp(),
		tags:        d.Tags(),
		matches:     matches,
		fuzzy:       fuzzy,
	}
}

// ID returns the document identity key.
func (r *Result) ID() string { return r.id }

// Title returns the display title.
func (r *Result) Title() string { return r.title }

// Description returns the short description.
func (r *Result) Description() string { return r.description }

// Type returns the record classification.
func (r *Result) Type() document.Type { return r.docType }

// Category returns the grouping label.
func (r *Result) Category() string { return r.category }

// URL returns the navigation target.
func (r *Result) URL() string { return r.url }

// Score returns the relevance score; higher is more relevant.
func (r *Result) Score() float64 { return r.score }

// Metadata returns the document metadata.
func (r *Result) Metadata() meta.Map { return r.metadata }

// Timestamp returns the document timestamp; zero means unset.
func (r *Result) Timestamp() time.Time { return r.timestamp }

// Tags returns the document labels.
func (r *Result) Tags() []string { return r.tags }

// Matches returns the fields the query matched in.
func (r *Result) Matches() []string { return r.matches }

// Fuzzy reports whether the hit came from the approximate fallback.
func (r *Result) Fuzzy() bool { return r.fuzzy }
