package search

import "github.com/retailpulse/searchd/internal/domain/search/result"

// Facet key prefixes. Facets are one flat map of composite keys to counts.
const (
	facetType     = "type:"
	facetCategory = "category:"
	facetTag      = "tag:"
)

// computeFacets counts the filtered, pre-pagination result set by type,
// category and tag, so facet totals reflect everything that matched.
func computeFacets(results []result.Result) map[string]int {
	facets := make(map[string]int)
	for i := range results {
		r := &results[i]
		facets[facetType+r.Type().String()]++
		if r.Category() != "" {
			facets[facetCategory+r.Category()]++
		}
		for _, tag := range r.Tags() {
			facets[facetTag+tag]++
		}
	}
	return facets
}
