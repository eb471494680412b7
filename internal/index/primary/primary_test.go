package primary

import (
	"testing"
	"time"

	"github.com/retailpulse/searchd/internal/domain/document"
	"github.com/retailpulse/searchd/internal/index"
)

func doc(id, title, description, content string, tags ...string) document.Document {
	return document.Reconstruct(
		id, title, description, content,
		document.TypeProduct, "Catalog", "/d/"+id,
		tags, nil, time.Time{},
	)
}

func ids(hits []index.Hit) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.ID
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestMatch_Exact(t *testing.T) {
	idx := New()
	idx.Index([]document.Document{
		doc("p1", "Wireless Headphones", "Noise cancelling", ""),
		doc("p2", "Cotton T-Shirt", "Soft everyday tee", ""),
	})

	hits := idx.Match("headphones", index.Options{})
	if len(hits) != 1 || hits[0].ID != "p1" {
		t.Fatalf("exact match: got %v, want [p1]", ids(hits))
	}
	if hits[0].Score != 1.0 {
		t.Errorf("single hit must normalize to 1.0, got %v", hits[0].Score)
	}
}

func TestMatch_EmptyQuery(t *testing.T) {
	idx := New()
	idx.Add(doc("p1", "Anything", "", ""))
	if hits := idx.Match("   ", index.Options{}); hits != nil {
		t.Errorf("empty query must match nothing, got %v", ids(hits))
	}
}

func TestMatch_Prefix(t *testing.T) {
	idx := New()
	idx.Add(doc("p1", "Wireless Headphones", "", ""))

	if hits := idx.Match("head", index.Options{Prefix: true}); len(hits) != 1 {
		t.Errorf("prefix on: got %v, want [p1]", ids(hits))
	}
	if hits := idx.Match("head", index.Options{Prefix: false}); len(hits) != 0 {
		t.Errorf("prefix off: got %v, want none", ids(hits))
	}
}

func TestMatch_Fuzzy(t *testing.T) {
	idx := New()
	idx.Add(doc("p1", "Cotton T-Shirt", "", ""))

	// One character off from "shirt".
	if hits := idx.Match("shrit", index.Options{Fuzzy: true}); len(hits) != 1 {
		t.Errorf("fuzzy on: got %v, want [p1]", ids(hits))
	}
	if hits := idx.Match("shrit", index.Options{Fuzzy: false}); len(hits) != 0 {
		t.Errorf("fuzzy off: got %v, want none", ids(hits))
	}
}

func TestMatch_ExactOutranksPrefixOutranksFuzzy(t *testing.T) {
	idx := New()
	idx.Index([]document.Document{
		doc("exact", "shirt", "", ""),
		doc("prefix", "shirting", "", ""),
		doc("fuzzy", "shift", "", ""),
	})

	hits := idx.Match("shirt", index.Options{Prefix: true, Fuzzy: true})
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3: %v", len(hits), ids(hits))
	}
	want := []string{"exact", "prefix", "fuzzy"}
	for i, id := range want {
		if hits[i].ID != id {
			t.Fatalf("rank %d: got %s, want %s (all: %v)", i, hits[i].ID, id, ids(hits))
		}
	}
}

func TestMatch_TitleOutranksContent(t *testing.T) {
	idx := New()
	idx.Index([]document.Document{
		doc("inTitle", "Revenue Report", "", ""),
		doc("inContent", "Quarterly Summary", "", "revenue by region"),
	})

	hits := idx.Match("revenue", index.Options{})
	if len(hits) != 2 || hits[0].ID != "inTitle" {
		t.Fatalf("field boosting: got %v, want inTitle first", ids(hits))
	}
}

func TestMatch_BoostOverride(t *testing.T) {
	idx := New()
	idx.Index([]document.Document{
		doc("inTitle", "Revenue Report", "", ""),
		doc("inContent", "Quarterly Summary", "", "revenue by region"),
	})

	hits := idx.Match("revenue", index.Options{Boosts: map[string]float64{
		index.FieldTitle:   0.1,
		index.FieldContent: 10,
	}})
	if len(hits) != 2 || hits[0].ID != "inContent" {
		t.Fatalf("boost override: got %v, want inContent first", ids(hits))
	}
}

func TestMatch_RequireAll(t *testing.T) {
	idx := New()
	idx.Index([]document.Document{
		doc("both", "wireless headphones", "", ""),
		doc("one", "wireless speaker", "", ""),
	})

	or := idx.Match("wireless headphones", index.Options{})
	if len(or) != 2 {
		t.Errorf("OR mode: got %v, want both docs", ids(or))
	}

	and := idx.Match("wireless headphones", index.Options{RequireAll: true})
	if len(and) != 1 || and[0].ID != "both" {
		t.Errorf("AND mode: got %v, want [both]", ids(and))
	}
}

func TestAdd_ReplacesExistingID(t *testing.T) {
	idx := New()
	idx.Add(doc("p1", "Old Widget", "", ""))
	idx.Add(doc("p1", "New Gadget", "", ""))

	if hits := idx.Match("widget", index.Options{}); len(hits) != 0 {
		t.Errorf("stale postings survived re-add: %v", ids(hits))
	}
	hits := idx.Match("gadget", index.Options{})
	if len(hits) != 1 || hits[0].ID != "p1" {
		t.Fatalf("re-added doc not findable: %v", ids(hits))
	}
}

func TestReset(t *testing.T) {
	idx := New()
	idx.Add(doc("p1", "Anything", "", ""))
	idx.Reset()
	if hits := idx.Match("anything", index.Options{}); len(hits) != 0 {
		t.Errorf("reset index must match nothing, got %v", ids(hits))
	}
}

func TestMatch_HitFieldsRecorded(t *testing.T) {
	idx := New()
	idx.Add(doc("p1", "Revenue", "", "", "revenue"))

	hits := idx.Match("revenue", index.Options{})
	if len(hits) != 1 {
		t.Fatalf("got %v", ids(hits))
	}
	if !contains(hits[0].Fields, index.FieldTitle) || !contains(hits[0].Fields, index.FieldTags) {
		t.Errorf("matched fields: got %v, want title and tags", hits[0].Fields)
	}
}

func TestSuggestTerms(t *testing.T) {
	idx := New()
	idx.Index([]document.Document{
		doc("p1", "revenue report", "", ""),
		doc("p2", "revenue forecast", "", ""),
	})

	got := idx.SuggestTerms("rev", 10)
	if !contains(got, "revenue") {
		t.Errorf("prefix suggestion: got %v, want to include revenue", got)
	}

	got = idx.SuggestTerms("revenu", 10)
	if !contains(got, "revenue") {
		t.Errorf("fuzzy suggestion: got %v, want to include revenue", got)
	}

	if got := idx.SuggestTerms("", 10); got != nil {
		t.Errorf("empty partial: got %v, want nil", got)
	}
}

func TestSuggestTerms_Limit(t *testing.T) {
	idx := New()
	idx.Index([]document.Document{
		doc("p1", "report reply repeat rewind", "", ""),
	})
	if got := idx.SuggestTerms("re", 2); len(got) > 2 {
		t.Errorf("limit not honored: got %v", got)
	}
}
