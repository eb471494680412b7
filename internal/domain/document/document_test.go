package document

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/retailpulse/searchd/internal/domain"
	"github.com/retailpulse/searchd/internal/domain/document/meta"
)

func TestNew_MissingID(t *testing.T) {
	_, err := New("", "Title", "", "", TypeProduct, "Products", "/p/1", nil, nil, time.Time{})
	if !errors.Is(err, domain.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestNew_InvalidType(t *testing.T) {
	_, err := New("p1", "Title", "", "", Type("widget"), "", "", nil, nil, time.Time{})
	if !errors.Is(err, domain.ErrInvalidDocType) {
		t.Fatalf("expected ErrInvalidDocType, got %v", err)
	}
}

func TestNew_DerivesSearchableText(t *testing.T) {
	doc, err := New(
		"p1", "Wireless Headphones", "Over-ear Bluetooth", "WH-1000",
		TypeProduct, "Products", "/products/p1",
		[]string{"electronics", "Audio"},
		meta.Map{"sku": meta.String("WH-1000")},
		time.Time{},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	text := doc.SearchableText()
	if text != strings.ToLower(text) {
		t.Errorf("searchable text not lower-cased: %q", text)
	}
	for _, want := range []string{"wireless headphones", "over-ear bluetooth", "electronics", "audio", "wh-1000"} {
		if !strings.Contains(text, want) {
			t.Errorf("searchable text missing %q: %q", want, text)
		}
	}
}

func TestNew_CopiesTagsAndMetadata(t *testing.T) {
	tags := []string{"a"}
	md := meta.Map{"k": meta.String("v")}
	doc, err := New("p1", "T", "", "", TypeProduct, "", "", tags, md, time.Time{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tags[0] = "mutated"
	md["k"] = meta.String("mutated")

	if doc.Tags()[0] != "a" {
		t.Errorf("tags aliased caller slice: %v", doc.Tags())
	}
	if !doc.Metadata()["k"].Equal(meta.String("v")) {
		t.Error("metadata aliased caller map")
	}
}

func TestHasTimestamp(t *testing.T) {
	withTS := Reconstruct("a", "T", "", "", TypeOrder, "", "", nil, nil, time.Now())
	withoutTS := Reconstruct("b", "T", "", "", TypeOrder, "", "", nil, nil, time.Time{})

	if !withTS.HasTimestamp() {
		t.Error("expected HasTimestamp true")
	}
	if withoutTS.HasTimestamp() {
		t.Error("expected HasTimestamp false")
	}
}

func TestType_IsValid(t *testing.T) {
	for _, typ := range []Type{
		TypeDashboardMetric, TypeForecast, TypeDataSource, TypeConnector,
		TypeConversation, TypeCustomer, TypeProduct, TypeOrder,
		TypeInsight, TypeSetting, TypeHelpArticle,
	} {
		if !typ.IsValid() {
			t.Errorf("%s should be valid", typ)
		}
	}
	if Type("plugin").IsValid() {
		t.Error("unknown type should be invalid")
	}
}
