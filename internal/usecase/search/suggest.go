package search

import "strings"

// maxSuggestions caps the autocomplete candidate list.
const maxSuggestions = 10

// synonyms is the static semantic-expansion table: matched tokens in the
// partial query are rewritten to produce additional suggested variants.
// A static lookup, not a learned model.
var synonyms = map[string][]string{
	"revenue":   {"sales", "income", "earnings", "profit"},
	"sales":     {"revenue", "orders"},
	"customer":  {"client", "buyer", "shopper"},
	"product":   {"item", "sku", "merchandise"},
	"order":     {"purchase", "transaction"},
	"forecast":  {"prediction", "projection"},
	"inventory": {"stock", "supply"},
	"insight":   {"trend", "analysis"},
}

// suggest builds autocomplete candidates for a non-empty partial query:
// vocabulary terms (prefix plus edit-distance-1) with the partial's last
// token substituted, then synonym rewrites. Deduplicated, capped.
func (s *Service) suggest(partial string) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if partial == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(candidate string) {
		if candidate == "" || candidate == partial {
			return
		}
		if _, dup := seen[candidate]; dup {
			return
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	tokens := strings.Fields(partial)
	head := ""
	if len(tokens) > 1 {
		head = strings.Join(tokens[:len(tokens)-1], " ") + " "
	}

	for _, term := range s.primary.SuggestTerms(partial, maxSuggestions) {
		add(head + term)
	}

	for i, token := range tokens {
		for _, alt := range synonyms[token] {
			rewritten := make([]string, len(tokens))
			copy(rewritten, tokens)
			rewritten[i] = alt
			add(strings.Join(rewritten, " "))
		}
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
