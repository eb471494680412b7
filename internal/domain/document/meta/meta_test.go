package meta

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEqual_SameKind(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"string equal", String("x"), String("x"), true},
		{"string differ", String("x"), String("y"), false},
		{"number equal", Number(1.5), Number(1.5), true},
		{"bool differ", Bool(true), Bool(false), false},
		{"list equal", StringList([]string{"a", "b"}), StringList([]string{"a", "b"}), true},
		{"list order matters", StringList([]string{"a", "b"}), StringList([]string{"b", "a"}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEqual_KindMismatch(t *testing.T) {
	if String("1").Equal(Number(1)) {
		t.Error("values of different kinds must not be equal")
	}
}

func TestText(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := Map{
		"b_price": Number(19.99),
		"a_name":  String("Tee"),
		"c_when":  Time(ts),
	}
	got := m.Text()
	want := "Tee 19.99 2026-03-01T12:00:00Z"
	if got != want {
		t.Errorf("Text: got %q, want %q", got, want)
	}
}

func TestUnmarshalJSON_Variants(t *testing.T) {
	var m Map
	raw := `{"s":"hi","n":2.5,"b":true,"l":["x","y"]}`
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !m["s"].Equal(String("hi")) {
		t.Errorf("string variant: got %+v", m["s"])
	}
	if !m["n"].Equal(Number(2.5)) {
		t.Errorf("number variant: got %+v", m["n"])
	}
	if !m["b"].Equal(Bool(true)) {
		t.Errorf("bool variant: got %+v", m["b"])
	}
	if !m["l"].Equal(StringList([]string{"x", "y"})) {
		t.Errorf("list variant: got %+v", m["l"])
	}
}

func TestUnmarshalJSON_RejectsMixedList(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`["x", 1]`), &v); err == nil {
		t.Fatal("expected error for mixed-type list")
	}
}

func TestClone_Isolated(t *testing.T) {
	m := Map{"k": String("v")}
	c := m.Clone()
	c["k"] = String("changed")
	if !m["k"].Equal(String("v")) {
		t.Error("clone shares storage with original")
	}
}
