package search

import (
	"sort"

	"github.com/retailpulse/searchd/internal/domain/search/query"
	"github.com/retailpulse/searchd/internal/domain/search/result"
)

// sortResults orders results by the requested key and direction.
// The sort is stable: tied keys keep their merge order. Documents without a
// timestamp sort as the epoch under the date key.
func sortResults(results []result.Result, key query.SortKey, order query.SortOrder) {
	less := lessFunc(results, key)
	if order == query.OrderDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(results, less)
}

func lessFunc(results []result.Result, key query.SortKey) func(i, j int) bool {
	switch key {
	case query.SortDate:
		return func(i, j int) bool {
			return results[i].Timestamp().Before(results[j].Timestamp())
		}
	case query.SortTitle:
		return func(i, j int) bool {
			return results[i].Title() < results[j].Title()
		}
	case query.SortType:
		return func(i, j int) bool {
			return results[i].Type() < results[j].Type()
		}
	default: // relevance
		return func(i, j int) bool {
			return results[i].Score() < results[j].Score()
		}
	}
}
