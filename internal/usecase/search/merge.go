package search

import "github.com/retailpulse/searchd/internal/index"

// mergeHits unions primary and fallback hits by document id. The primary hit
// wins on conflict: its score came from the lexical index and the document is
// not an approximate match. Returned alongside is the set of ids contributed
// by the fallback, so downstream can tag them.
func mergeHits(primary, fallback []index.Hit) ([]index.Hit, map[string]bool) {
	seen := make(map[string]struct{}, len(primary))
	for _, h := range primary {
		seen[h.ID] = struct{}{}
	}

	merged := primary
	fuzzyIDs := make(map[string]bool)
	for _, h := range fallback {
		if _, ok := seen[h.ID]; ok {
			continue
		}
		seen[h.ID] = struct{}{}
		fuzzyIDs[h.ID] = true
		merged = append(merged, h)
	}
	return merged, fuzzyIDs
}
