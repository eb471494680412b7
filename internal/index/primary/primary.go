// Package primary implements the main inverted index: exact, prefix and
// edit-distance-1 term matching over weighted document fields.
package primary

import (
	"sort"

	"github.com/retailpulse/searchd/internal/domain/document"
	"github.com/retailpulse/searchd/internal/index"
)

// Match-kind multipliers. An exact term hit outranks a prefix expansion,
// which outranks a fuzzy correction.
const (
	exactWeight  = 1.0
	prefixWeight = 0.6
	fuzzyWeight  = 0.4
)

// maxTermFrequency caps per-field term frequency so long content cannot
// drown out title hits.
const maxTermFrequency = 5

// maxExpansions bounds prefix/fuzzy term expansion per query token.
const maxExpansions = 50

// DefaultBoosts are the per-field weights applied when the query does not
// override them. The derived searchable text is indexed at a low weight so
// metadata terms stay findable without double-counting the main fields.
var DefaultBoosts = map[string]float64{
	index.FieldTitle:       3,
	index.FieldDescription: 2,
	index.FieldContent:     1,
	index.FieldTags:        2,
	index.FieldSearchable:  0.5,
}

// fieldTF is term frequency by field for one document.
type fieldTF map[string]int

// Index is the primary text index. Not safe for concurrent mutation;
// the orchestrator serializes writers.
type Index struct {
	postings map[string]map[string]fieldTF // term -> docID -> field tf
	docTerms map[string]map[string]fieldTF // docID -> term -> field tf
	termRefs map[string]int                // term -> number of docs containing it
	vocab    *trie
	dict     *deleteDict
}

var _ index.Matcher = (*Index)(nil)

// New creates an empty primary index.
func New() *Index {
	idx := &Index{}
	idx.Reset()
	return idx
}

// Reset drops all indexed documents.
func (idx *Index) Reset() {
	idx.postings = make(map[string]map[string]fieldTF)
	idx.docTerms = make(map[string]map[string]fieldTF)
	idx.termRefs = make(map[string]int)
	idx.vocab = newTrie()
	idx.dict = newDeleteDict()
}

// Index adds a batch of documents.
func (idx *Index) Index(docs []document.Document) {
	for i := range docs {
		idx.Add(docs[i])
	}
}

// Add indexes one document. Re-adding an id replaces its postings, so an id
// never appears twice in a match result.
func (idx *Index) Add(doc document.Document) {
	id := doc.ID()
	if _, exists := idx.docTerms[id]; exists {
		idx.removeDoc(id)
	}

	terms := make(map[string]fieldTF)
	indexField := func(field, text string) {
		for _, term := range tokenize(text) {
			tf, ok := terms[term]
			if !ok {
				tf = make(fieldTF)
				terms[term] = tf
			}
			if tf[field] < maxTermFrequency {
				tf[field]++
			}
		}
	}

	indexField(index.FieldTitle, doc.Title())
	indexField(index.FieldDescription, doc.Description())
	indexField(index.FieldContent, doc.Content())
	for _, tag := range doc.Tags() {
		indexField(index.FieldTags, tag)
	}
	indexField(index.FieldSearchable, doc.SearchableText())

	idx.docTerms[id] = terms
	for term, tf := range terms {
		byDoc, ok := idx.postings[term]
		if !ok {
			byDoc = make(map[string]fieldTF)
			idx.postings[term] = byDoc
			idx.vocab.insert(term)
		}
		byDoc[id] = tf
		if idx.termRefs[term] == 0 {
			idx.dict.add(term)
		}
		idx.termRefs[term]++
	}
}

// removeDoc unindexes everything recorded for the id.
func (idx *Index) removeDoc(id string) {
	for term := range idx.docTerms[id] {
		if byDoc, ok := idx.postings[term]; ok {
			delete(byDoc, id)
			if len(byDoc) == 0 {
				delete(idx.postings, term)
			}
		}
		idx.termRefs[term]--
		if idx.termRefs[term] <= 0 {
			delete(idx.termRefs, term)
			idx.dict.remove(term)
		}
	}
	delete(idx.docTerms, id)
}

// Match scores documents against the query text. Scores are normalized to
// (0,1] against the best hit. An empty query matches nothing.
func (idx *Index) Match(text string, opts index.Options) []index.Hit {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	boosts := resolveBoosts(opts.Boosts)

	type acc struct {
		score     float64
		fields    map[string]struct{}
		tokensHit int
	}
	scores := make(map[string]*acc)

	for _, token := range tokens {
		tokenDocs := make(map[string]struct{})

		score := func(term string, mult float64) {
			for id, tf := range idx.postings[term] {
				a, ok := scores[id]
				if !ok {
					a = &acc{fields: make(map[string]struct{})}
					scores[id] = a
				}
				for field, count := range tf {
					a.score += boosts[field] * mult * float64(count)
					a.fields[field] = struct{}{}
				}
				tokenDocs[id] = struct{}{}
			}
		}

		score(token, exactWeight)
		if opts.Prefix {
			for _, term := range idx.vocab.withPrefix(token, maxExpansions) {
				score(term, prefixWeight)
			}
		}
		if opts.Fuzzy {
			for _, term := range idx.dict.lookup(token, maxExpansions) {
				score(term, fuzzyWeight)
			}
		}

		for id := range tokenDocs {
			scores[id].tokensHit++
		}
	}

	hits := make([]index.Hit, 0, len(scores))
	var best float64
	for id, a := range scores {
		if opts.RequireAll && a.tokensHit < len(tokens) {
			continue
		}
		if a.score > best {
			best = a.score
		}
		hits = append(hits, index.Hit{ID: id, Score: a.score, Fields: sortedFields(a.fields)})
	}
	if best > 0 {
		for i := range hits {
			hits[i].Score /= best
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})
	return hits
}

// SuggestTerms returns vocabulary terms usable as autocomplete candidates:
// prefix expansions first, then edit-distance-1 corrections.
func (idx *Index) SuggestTerms(partial string, limit int) []string {
	tokens := tokenize(partial)
	if len(tokens) == 0 {
		return nil
	}
	last := tokens[len(tokens)-1]

	seen := make(map[string]struct{})
	var out []string
	add := func(term string) {
		if _, dup := seen[term]; dup {
			return
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}

	if _, ok := idx.postings[last]; ok {
		add(last)
	}
	prefixed := idx.vocab.withPrefix(last, limit*2)
	sort.Strings(prefixed)
	for _, term := range prefixed {
		// Trie entries can outlive their postings after a re-add.
		if _, ok := idx.postings[term]; ok {
			add(term)
		}
	}
	for _, term := range idx.dict.lookup(last, limit) {
		add(term)
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func resolveBoosts(overrides map[string]float64) map[string]float64 {
	boosts := make(map[string]float64, len(DefaultBoosts))
	for field, w := range DefaultBoosts {
		boosts[field] = w
	}
	for field, w := range overrides {
		if w > 0 {
			boosts[field] = w
		}
	}
	return boosts
}

func sortedFields(set map[string]struct{}) []string {
	fields := make([]string, 0, len(set))
	for f := range set {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
