package formfile

import "strings"

// document is the top-level shape of a definition file.
type document struct {
	Variants map[string]VariantConfig `json:"variants" yaml:"variants"`
}

// VariantConfig declares one form variant: its fields in declaration order
// and the nested sub-forms it composes.
type VariantConfig struct {
	Fields []FieldConfig  `json:"fields" yaml:"fields"`
	Nested []NestedConfig `json:"nested,omitempty" yaml:"nested,omitempty"`
}

// FieldConfig declares a single field. Type names a coercion tag from the
// registry; an empty type passes the raw value through unchanged.
type FieldConfig struct {
	Name   string        `json:"name" yaml:"name"`
	Type   string        `json:"type,omitempty" yaml:"type,omitempty"`
	Label  string        `json:"label,omitempty" yaml:"label,omitempty"`
	Checks []CheckConfig `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// CheckConfig declares a validation rule for the enclosing field. Rule uses
// validator/v10 tag syntax; Message is the text added to the error set when
// the rule fails and defaults to one derived from the field label.
type CheckConfig struct {
	Rule    string `json:"rule" yaml:"rule"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NestedConfig binds a nested attribute to another variant declared in the
// same set. Order in the list is declaration order, which fixes validation
// and execution order.
type NestedConfig struct {
	Attr    string `json:"attr" yaml:"attr"`
	Variant string `json:"variant" yaml:"variant"`
}

func isDefinitionFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".yaml") ||
		strings.HasSuffix(lower, ".yml") ||
		strings.HasSuffix(lower, ".json")
}
