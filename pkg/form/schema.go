package form

import (
	"fmt"

	"github.com/goliatone/go-formkit/pkg/coerce"
)

// fieldDecl is a single field declaration with its coercer resolved at
// declaration time. A nil coercer passes the raw value through unchanged.
type fieldDecl struct {
	name    string
	tag     string
	coercer coerce.Coercer
}

type nestedDecl struct {
	attr    string
	variant *Variant
}

type checkDecl struct {
	field   string
	rule    string
	message string
}

// Schema is the immutable per-variant declaration: field names in
// declaration order, declarative checks, and nested sub-form attributes.
// Instances hold a reference to their variant's schema and never mutate it.
type Schema struct {
	fields []fieldDecl
	nested []nestedDecl
	checks []checkDecl
}

// FieldNames returns the declared field names in declaration order.
func (s *Schema) FieldNames() []string {
	if s == nil || len(s.fields) == 0 {
		return nil
	}
	names := make([]string, len(s.fields))
	for idx, field := range s.fields {
		names[idx] = field.name
	}
	return names
}

// NestedAttrs returns the nested attribute names in declaration order.
func (s *Schema) NestedAttrs() []string {
	if s == nil || len(s.nested) == 0 {
		return nil
	}
	attrs := make([]string, len(s.nested))
	for idx, decl := range s.nested {
		attrs[idx] = decl.attr
	}
	return attrs
}

// extract filters raw input down to the declared fields, applying each
// field's coercer. Declared names absent from the input are omitted, not
// defaulted; keys outside the schema never appear in the result.
func (s *Schema) extract(raw Values) (Values, error) {
	out := make(Values, len(s.fields))
	for _, field := range s.fields {
		value, ok := raw[field.name]
		if !ok {
			continue
		}
		if field.coercer != nil {
			coerced, err := field.coercer(value)
			if err != nil {
				return nil, fmt.Errorf("form: field %q: %w", field.name, err)
			}
			value = coerced
		}
		out[field.name] = value
	}
	return out, nil
}
