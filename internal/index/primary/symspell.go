package primary

// deleteDict implements symmetric-delete lookup for edit-distance-1 term
// matching: every single-character deletion of each indexed term is
// precomputed, so a query resolves in O(len(query)) map probes.
type deleteDict struct {
	deletes map[string]map[string]struct{} // deletion variant -> original terms
}

func newDeleteDict() *deleteDict {
	return &deleteDict{deletes: make(map[string]map[string]struct{})}
}

func (d *deleteDict) add(term string) {
	d.put(term, term)
	for i := 0; i < len(term); i++ {
		d.put(term[:i]+term[i+1:], term)
	}
}

func (d *deleteDict) put(variant, term string) {
	set, ok := d.deletes[variant]
	if !ok {
		set = make(map[string]struct{})
		d.deletes[variant] = set
	}
	set[term] = struct{}{}
}

func (d *deleteDict) remove(term string) {
	d.drop(term, term)
	for i := 0; i < len(term); i++ {
		d.drop(term[:i]+term[i+1:], term)
	}
}

func (d *deleteDict) drop(variant, term string) {
	set, ok := d.deletes[variant]
	if !ok {
		return
	}
	delete(set, term)
	if len(set) == 0 {
		delete(d.deletes, variant)
	}
}

// lookup returns indexed terms within Levenshtein distance 1 of query,
// the query itself excluded.
func (d *deleteDict) lookup(query string, limit int) []string {
	seen := map[string]struct{}{query: {}}
	var results []string

	collect := func(variant string) bool {
		for term := range d.deletes[variant] {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			results = append(results, term)
			if limit > 0 && len(results) >= limit {
				return true
			}
		}
		return false
	}

	if collect(query) {
		return results
	}
	for i := 0; i < len(query); i++ {
		if collect(query[:i] + query[i+1:]) {
			break
		}
	}
	return results
}
