// Package fuzzy implements the approximate-match fallback: a weighted
// per-field Levenshtein scorer used to top up thin primary result sets.
//
// Threshold semantics: the threshold is the maximum allowed normalized edit
// distance per field — 0 admits exact matches only, 1 admits anything.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/retailpulse/searchd/internal/domain/document"
	"github.com/retailpulse/searchd/internal/index"
)

// DefaultThreshold is the maximum normalized edit distance admitted by
// default.
const DefaultThreshold = 0.6

// Per-field similarity weights. They sum to 1 so scores land in [0,1].
var fieldWeights = map[string]float64{
	index.FieldTitle:       0.4,
	index.FieldDescription: 0.3,
	index.FieldContent:     0.2,
	index.FieldTags:        0.1,
}

// entry is the indexed projection of one document.
type entry struct {
	id     string
	fields map[string][]string // field -> lower-cased tokens
}

// Matcher scans documents linearly; it is a fallback, not the hot path.
type Matcher struct {
	threshold float64
	order     []string
	entries   map[string]entry
}

var _ index.Matcher = (*Matcher)(nil)

// New creates a fuzzy matcher. A threshold outside (0,1] falls back to the
// default.
func New(threshold float64) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	m := &Matcher{threshold: threshold}
	m.Reset()
	return m
}

// Reset drops all indexed documents.
func (m *Matcher) Reset() {
	m.order = nil
	m.entries = make(map[string]entry)
}

// Index adds a batch of documents.
func (m *Matcher) Index(docs []document.Document) {
	for i := range docs {
		m.Add(docs[i])
	}
}

// Add indexes one document, replacing any previous entry with the same id.
func (m *Matcher) Add(doc document.Document) {
	id := doc.ID()
	if _, exists := m.entries[id]; !exists {
		m.order = append(m.order, id)
	}
	m.entries[id] = entry{
		id: id,
		fields: map[string][]string{
			index.FieldTitle:       tokens(doc.Title()),
			index.FieldDescription: tokens(doc.Description()),
			index.FieldContent:     tokens(doc.Content()),
			index.FieldTags:        tagTokens(doc.Tags()),
		},
	}
}

// Match scores every document against the query. A field matches when its
// closest token is within the distance threshold; the field then contributes
// weight × (1 − distance). Options are accepted for interface symmetry but
// only boost-free approximate matching is performed here.
func (m *Matcher) Match(text string, _ index.Options) []index.Hit {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return nil
	}
	queryTokens := tokens(query)
	if len(queryTokens) == 0 {
		return nil
	}

	var hits []index.Hit
	for _, id := range m.order {
		e := m.entries[id]
		var score float64
		var matched []string
		for field, weight := range fieldWeights {
			d, ok := m.closest(queryTokens, e.fields[field])
			if !ok {
				continue
			}
			score += weight * (1 - d)
			matched = append(matched, field)
		}
		if len(matched) == 0 {
			continue
		}
		sort.Strings(matched)
		hits = append(hits, index.Hit{ID: id, Score: score, Fields: matched})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})
	return hits
}

// closest returns the best normalized distance between any query token and
// any field token, and whether it clears the threshold.
func (m *Matcher) closest(queryTokens, fieldTokens []string) (float64, bool) {
	best := 2.0
	for _, q := range queryTokens {
		for _, t := range fieldTokens {
			if d := normalizedDistance(q, t); d < best {
				best = d
			}
		}
	}
	return best, best <= m.threshold
}

func tokens(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

func tagTokens(tags []string) []string {
	var out []string
	for _, tag := range tags {
		out = append(out, tokens(tag)...)
	}
	return out
}
