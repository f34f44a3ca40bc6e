package content

import "strings"

// Document is a parsed content document: a JSON object mapping string keys
// to strings, sequences, or nested objects. The schema belongs to the
// content author; consumers read it through the accessors below and never
// assume a field is present.
type Document map[string]any

// lookup walks a dotted path ("details.phone.link") through nested objects.
func lookup(doc Document, path string) (any, bool) {
	if doc == nil {
		return nil, false
	}
	parts := strings.Split(path, ".")
	var current any = map[string]any(doc)
	for _, part := range parts {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Text resolves a string field at the given dotted path. A missing field,
// a null, or a value of any other type yields the fallback, so template
// output never contains a literal "null".
func Text(doc Document, path, fallback string) string {
	v, ok := lookup(doc, path)
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	return s
}

// Strings resolves a sequence of strings at the given dotted path. A
// missing or non-sequence field yields nil; elements that are not strings
// are skipped rather than failing the whole sequence.
func Strings(doc Document, path string) []string {
	v, ok := lookup(doc, path)
	if !ok {
		return nil
	}
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range seq {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// List resolves a sequence of objects at the given dotted path, preserving
// source order. A missing or non-sequence field yields nil, so callers
// render zero items instead of erroring. Non-object elements are skipped.
func List(doc Document, path string) []Document {
	v, ok := lookup(doc, path)
	if !ok {
		return nil
	}
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []Document
	for _, item := range seq {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, Document(obj))
		}
	}
	return out
}

// Child resolves a nested object at the given dotted path.
func Child(doc Document, path string) (Document, bool) {
	v, ok := lookup(doc, path)
	if !ok {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Document(obj), true
}
