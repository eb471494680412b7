// Package meta provides the typed metadata bag attached to search documents.
// Values are a closed variant so exact-match filtering stays well-defined
// without reflection.
package meta

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the value variant.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindTime
	KindStringList
)

// Value is one metadata field: exactly one variant is set, per Kind.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	ts   time.Time
	list []string
}

// String creates a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number creates a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Time creates a timestamp value.
func Time(t time.Time) Value { return Value{kind: KindTime, ts: t} }

// StringList creates a string-list value.
func StringList(list []string) Value {
	c := make([]string, len(list))
	copy(c, list)
	return Value{kind: KindStringList, list: c}
}

// Kind returns the variant discriminator.
func (v Value) Kind() Kind { return v.kind }

// Equal reports exact equality between two values, including kind.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindTime:
		return v.ts.Equal(o.ts)
	case KindStringList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	}
	return false
}

// Text renders the value for inclusion in a document's searchable text.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.ts.UTC().Format(time.RFC3339)
	case KindStringList:
		return strings.Join(v.list, " ")
	}
	return ""
}

// Map is a set of named metadata values.
type Map map[string]Value

// Clone returns a copy of the map. Nil stays nil.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	c := make(Map, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Text renders all values in key order, for searchable-text derivation.
func (m Map) Text() string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if t := m[k].Text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
