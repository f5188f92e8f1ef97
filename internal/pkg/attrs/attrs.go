// Package attrs provides schema-driven extraction of named fields from
// raw configuration bytes and structural diffing of the extracted sets.
//
// Decoding is deliberately lenient: a field is kept only when its value
// matches the declared kind; type mismatches, unknown fields and
// malformed documents degrade to "absent" instead of failing, so callers
// can fall back to defaults.
package attrs

import (
	"reflect"

	"gopkg.in/yaml.v3"
)

// Kind is the expected type of a schema field.
type Kind int

const (
	String Kind = iota
	Int
	Bool
	Array
)

// Field names a single extractable attribute.
type Field struct {
	Name string
	Kind Kind
}

// Schema is an ordered list of extractable attributes.
type Schema []Field

// AttrSet holds the fields of one schema extracted from a raw blob.
// Absent fields have no entry.
type AttrSet map[string]any

// Decode extracts the schema's fields from raw YAML bytes. Fields whose
// value does not match the declared kind are treated as absent, as is
// everything in a document that fails to parse at all.
func Decode(raw []byte, schema Schema) AttrSet {
	set := make(AttrSet, len(schema))

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return set
	}

	for _, field := range schema {
		value, ok := doc[field.Name]
		if !ok {
			continue
		}
		switch field.Kind {
		case String:
			if s, ok := value.(string); ok {
				set[field.Name] = s
			}
		case Int:
			if n, ok := asInt(value); ok {
				set[field.Name] = n
			}
		case Bool:
			if b, ok := value.(bool); ok {
				set[field.Name] = b
			}
		case Array:
			if list, ok := value.([]any); ok {
				set[field.Name] = list
			}
		}
	}
	return set
}

// String returns the named string field.
func (s AttrSet) String(name string) (string, bool) {
	v, ok := s[name].(string)
	return v, ok
}

// Int returns the named integer field.
func (s AttrSet) Int(name string) (int64, bool) {
	v, ok := s[name].(int64)
	return v, ok
}

// Bool returns the named boolean field.
func (s AttrSet) Bool(name string) (bool, bool) {
	v, ok := s[name].(bool)
	return v, ok
}

// Array returns the named list field.
func (s AttrSet) Array(name string) ([]any, bool) {
	v, ok := s[name].([]any)
	return v, ok
}

// Diff reports whether the two attribute sets differ in any field of the
// schema, comparing presence and value field by field.
func Diff(a, b AttrSet, schema Schema) bool {
	for _, field := range schema {
		av, aok := a[field.Name]
		bv, bok := b[field.Name]
		if aok != bok {
			return true
		}
		if aok && !reflect.DeepEqual(av, bv) {
			return true
		}
	}
	return false
}

func asInt(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}
