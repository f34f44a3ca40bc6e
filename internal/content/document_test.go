package content

import (
	"encoding/json"
	"testing"
)

// parse is a helper that builds a Document from a JSON literal.
func parse(t *testing.T, raw string) Document {
	t.Helper()
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

func TestText(t *testing.T) {
	doc := parse(t, `{
		"title": "Our Menu",
		"empty": "",
		"count": 3,
		"nothing": null,
		"details": {"phone": {"link": "tel:123"}}
	}`)

	tests := []struct {
		path, fallback, want string
	}{
		{"title", "fallback", "Our Menu"},
		{"missing", "fallback", "fallback"},
		{"missing", "", ""},
		{"empty", "fallback", ""},
		{"count", "fallback", "fallback"},
		{"nothing", "fallback", "fallback"},
		{"details.phone.link", "#contact", "tel:123"},
		{"details.phone.label", "", ""},
		{"details.fax.link", "#contact", "#contact"},
		{"title.nested", "fallback", "fallback"},
	}
	for _, tt := range tests {
		got := Text(doc, tt.path, tt.fallback)
		if got != tt.want {
			t.Errorf("Text(doc, %q, %q) = %q, want %q", tt.path, tt.fallback, got, tt.want)
		}
	}
}

func TestTextNilDocument(t *testing.T) {
	if got := Text(nil, "title", "fallback"); got != "fallback" {
		t.Errorf("Text(nil, ...) = %q, want fallback", got)
	}
}

func TestStrings(t *testing.T) {
	doc := parse(t, `{
		"paragraphs": ["first", "second"],
		"mixed": ["keep", 42, null, "also keep"],
		"scalar": "not a list"
	}`)

	if got := Strings(doc, "paragraphs"); len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Strings(paragraphs) = %v, want [first second]", got)
	}
	if got := Strings(doc, "mixed"); len(got) != 2 || got[0] != "keep" || got[1] != "also keep" {
		t.Errorf("Strings(mixed) = %v, want the two string elements", got)
	}
	if got := Strings(doc, "scalar"); got != nil {
		t.Errorf("Strings(scalar) = %v, want nil", got)
	}
	if got := Strings(doc, "missing"); got != nil {
		t.Errorf("Strings(missing) = %v, want nil", got)
	}
}

func TestList(t *testing.T) {
	doc := parse(t, `{
		"categories": [
			{"name": "Mains"},
			{"name": "Desserts"}
		],
		"mixed": [{"name": "ok"}, "stray string", 7],
		"note": "just text"
	}`)

	cats := List(doc, "categories")
	if len(cats) != 2 {
		t.Fatalf("List(categories) = %d items, want 2", len(cats))
	}
	if Text(cats[0], "name", "") != "Mains" || Text(cats[1], "name", "") != "Desserts" {
		t.Errorf("List(categories) lost ordering: %v", cats)
	}

	if got := List(doc, "mixed"); len(got) != 1 {
		t.Errorf("List(mixed) = %d items, want 1 (non-objects skipped)", len(got))
	}
	if got := List(doc, "note"); got != nil {
		t.Errorf("List(note) = %v, want nil for non-sequence", got)
	}
	if got := List(doc, "missing"); got != nil {
		t.Errorf("List(missing) = %v, want nil", got)
	}
}

func TestChild(t *testing.T) {
	doc := parse(t, `{"details": {"phone": {"value": "123"}}, "title": "x"}`)

	phone, ok := Child(doc, "details.phone")
	if !ok {
		t.Fatal("Child(details.phone) not found")
	}
	if Text(phone, "value", "") != "123" {
		t.Errorf("phone value = %q, want 123", Text(phone, "value", ""))
	}

	if _, ok := Child(doc, "title"); ok {
		t.Error("Child(title) should fail for a string field")
	}
	if _, ok := Child(doc, "details.email"); ok {
		t.Error("Child(details.email) should fail for a missing field")
	}
}
