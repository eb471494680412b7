// Package document defines the unit of indexing: a normalized searchable
// record converted from the product's business data.
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/retailpulse/searchd/internal/domain"
	"github.com/retailpulse/searchd/internal/domain/document/meta"
)

// MaxIDLength bounds the identity key.
const MaxIDLength = 256

// Document is the searchable record aggregate (immutable value object).
type Document struct {
	id             string
	title          string
	description    string
	content        string
	docType        Type
	category       string
	url            string
	tags           []string
	metadata       meta.Map
	timestamp      time.Time
	searchableText string
}

// New validates and creates a Document. The searchable text is derived here:
// title, description, content, tags and stringified metadata, lower-cased.
func New(
	id, title, description, content string,
	docType Type, category, url string,
	tags []string, metadata meta.Map, timestamp time.Time,
) (Document, error) {
	if id == "" {
		return Document{}, domain.ErrMissingID
	}
	if len(id) > MaxIDLength {
		return Document{}, fmt.Errorf("document id too long (max %d)", MaxIDLength)
	}
	if !docType.IsValid() {
		return Document{}, fmt.Errorf("%w: %q", domain.ErrInvalidDocType, docType)
	}

	d := Document{
		id:          id,
		title:       title,
		description: description,
		content:     content,
		docType:     docType,
		category:    category,
		url:         url,
		tags:        cloneTags(tags),
		metadata:    metadata.Clone(),
		timestamp:   timestamp,
	}
	d.searchableText = deriveSearchableText(d)
	return d, nil
}

// Reconstruct creates a Document without validation (test fixtures, hydration).
func Reconstruct(
	id, title, description, content string,
	docType Type, category, url string,
	tags []string, metadata meta.Map, timestamp time.Time,
) Document {
	d := Document{
		id: id, title: title, description: description, content: content,
		docType: docType, category: category, url: url,
		tags: cloneTags(tags), metadata: metadata.Clone(), timestamp: timestamp,
	}
	d.searchableText = deriveSearchableText(d)
	return d
}

// ID returns the stable identity key.
func (d *Document) ID() string { return d.id }

// Title returns the display title.
func (d *Document) Title() string { return d.title }

// Description returns the short description.
func (d *Document) Description() string { return d.description }

// Content returns the body text.
func (d *Document) Content() string { return d.content }

// Type returns the record classification.
func (d *Document) Type() Type { return d.docType }

// Category returns the free-text grouping label.
func (d *Document) Category() string { return d.category }

// URL returns the opaque navigation target.
func (d *Document) URL() string { return d.url }

// Tags returns the document labels.
func (d *Document) Tags() []string { return d.tags }

// Metadata returns the typed metadata bag.
func (d *Document) Metadata() meta.Map { return d.metadata }

// Timestamp returns the document point in time; zero means unset.
func (d *Document) Timestamp() time.Time { return d.timestamp }

// HasTimestamp reports whether the document carries a timestamp.
func (d *Document) HasTimestamp() bool { return !d.timestamp.IsZero() }

// SearchableText returns the derived lower-cased concatenation used for
// fuzzy matching.
func (d *Document) SearchableText() string { return d.searchableText }

func deriveSearchableText(d Document) string {
	parts := []string{d.title, d.description, d.content}
	parts = append(parts, d.tags...)
	if mt := d.metadata.Text(); mt != "" {
		parts = append(parts, mt)
	}
	joined := strings.Join(parts, " ")
	return strings.ToLower(strings.Join(strings.Fields(joined), " "))
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	c := make([]string, len(tags))
	copy(c, tags)
	return c
}
