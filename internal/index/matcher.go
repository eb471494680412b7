// Package index defines the text-matching seam between the search
// orchestrator and its index implementations.
package index

import "github.com/retailpulse/searchd/internal/domain/document"

// Searchable field names, as reported in Hit.Fields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldContent     = "content"
	FieldTags        = "tags"
	FieldSearchable  = "searchableText"
)

// Hit is one matched document, scored in [0,1] where higher is more relevant.
type Hit struct {
	ID     string
	Score  float64
	Fields []string
}

// Options tune a single match call.
type Options struct {
	// Fuzzy allows light approximate term matching.
	Fuzzy bool
	// Prefix allows terms to match as prefixes of indexed terms.
	Prefix bool
	// RequireAll demands every query token match (AND); otherwise any (OR).
	RequireAll bool
	// Boosts overrides per-field weights; zero entries fall back to defaults.
	Boosts map[string]float64
}

// Matcher indexes documents and answers free-text match calls.
// Implementations are single-writer; the orchestrator serializes mutation.
type Matcher interface {
	Index(docs []document.Document)
	Add(doc document.Document)
	Reset()
	Match(text string, opts Options) []Hit
}
