package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formkit/pkg/coerce"
)

// Option customises a variant declaration.
type Option func(*variantBuilder)

type pendingField struct {
	name string
	tags []string
}

type variantBuilder struct {
	name     string
	registry *coerce.Registry
	fields   []pendingField
	nested   []nestedDecl
	checks   []checkDecl
	handler  Handler
	err      error
}

func (b *variantBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// WithName assigns a diagnostic name to the variant.
func WithName(name string) Option {
	return func(b *variantBuilder) {
		b.name = strings.TrimSpace(name)
	}
}

// WithRegistry supplies the coercion registry consulted when resolving field
// tags. When omitted, a registry with the builtin coercers is used.
func WithRegistry(registry *coerce.Registry) Option {
	return func(b *variantBuilder) {
		if registry == nil {
			b.fail(errors.New("form: registry is required"))
			return
		}
		b.registry = registry
	}
}

// WithField appends a field declaration. The optional tag names a coercion
// from the registry; a field declared without a tag passes its raw value
// through unchanged.
func WithField(name string, tag ...string) Option {
	return func(b *variantBuilder) {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			b.fail(errors.New("form: field name is required"))
			return
		}
		if len(tag) > 1 {
			b.fail(fmt.Errorf("form: field %q declares more than one coercion tag", trimmed))
			return
		}
		b.fields = append(b.fields, pendingField{name: trimmed, tags: tag})
	}
}

// WithCheck declares a rule for a field, evaluated before the Validate hook
// on every validation pass. The rule uses validator/v10 tag syntax (for
// example "required" or "min=4"); when it fails, message is added to the
// error set.
func WithCheck(field, rule, message string) Option {
	return func(b *variantBuilder) {
		name := strings.TrimSpace(field)
		if name == "" {
			b.fail(errors.New("form: check field name is required"))
			return
		}
		if strings.TrimSpace(rule) == "" {
			b.fail(fmt.Errorf("form: check on field %q requires a rule", name))
			return
		}
		if strings.TrimSpace(message) == "" {
			b.fail(fmt.Errorf("form: check on field %q requires a message", name))
			return
		}
		b.checks = append(b.checks, checkDecl{
			field:   name,
			rule:    strings.TrimSpace(rule),
			message: strings.TrimSpace(message),
		})
	}
}

// WithNested declares that instances of this variant own a child form built
// from the sub-mapping found under attr in the raw input. The child is
// accessible through Form.Nested(attr).
func WithNested(attr string, child *Variant) Option {
	return func(b *variantBuilder) {
		trimmed := strings.TrimSpace(attr)
		if trimmed == "" {
			b.fail(errors.New("form: nested attribute name is required"))
			return
		}
		if child == nil {
			b.fail(fmt.Errorf("form: nested attribute %q requires a variant", trimmed))
			return
		}
		b.nested = append(b.nested, nestedDecl{attr: trimmed, variant: child})
	}
}

// WithHandler attaches the variant's validate/execute hooks.
func WithHandler(handler Handler) Option {
	return func(b *variantBuilder) {
		if handler == nil {
			b.fail(errors.New("form: handler is required"))
			return
		}
		b.handler = handler
	}
}

// Variant is an immutable form declaration: the field schema, nested
// composition, and behaviour hooks shared by every instance built from it.
type Variant struct {
	name     string
	schema   *Schema
	handler  Handler
	registry *coerce.Registry
}

// NewVariant resolves a declaration into a Variant. Declaring a field
// against a tag absent from the coercion registry fails here, before any
// instance exists, with a *coerce.NoCoercionError naming the tag.
func NewVariant(options ...Option) (*Variant, error) {
	b := &variantBuilder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	if b.err != nil {
		return nil, b.err
	}

	registry := b.registry
	if registry == nil {
		registry = coerce.NewRegistry()
	}

	schema := &Schema{checks: b.checks}
	seenFields := make(map[string]struct{}, len(b.fields))
	for _, pending := range b.fields {
		if _, dup := seenFields[pending.name]; dup {
			return nil, fmt.Errorf("form: field %q declared twice", pending.name)
		}
		seenFields[pending.name] = struct{}{}

		decl := fieldDecl{name: pending.name}
		if len(pending.tags) == 1 {
			tag := strings.TrimSpace(pending.tags[0])
			if tag != "" {
				coercer, ok := registry.Lookup(tag)
				if !ok {
					return nil, &coerce.NoCoercionError{Tag: tag}
				}
				decl.tag = tag
				decl.coercer = coercer
			}
		}
		schema.fields = append(schema.fields, decl)
	}

	seenNested := make(map[string]struct{}, len(b.nested))
	for _, decl := range b.nested {
		if _, dup := seenNested[decl.attr]; dup {
			return nil, fmt.Errorf("form: nested attribute %q declared twice", decl.attr)
		}
		seenNested[decl.attr] = struct{}{}
		schema.nested = append(schema.nested, decl)
	}

	for _, check := range b.checks {
		if _, ok := seenFields[check.field]; !ok {
			return nil, fmt.Errorf("form: check references undeclared field %q", check.field)
		}
	}

	handler := b.handler
	if handler == nil {
		handler = NopHandler{}
	}

	return &Variant{
		name:     b.name,
		schema:   schema,
		handler:  handler,
		registry: registry,
	}, nil
}

// MustVariant panics when the declaration cannot be resolved. Useful for
// package-level variant wiring.
func MustVariant(options ...Option) *Variant {
	variant, err := NewVariant(options...)
	if err != nil {
		panic(err)
	}
	return variant
}

// Name returns the diagnostic name assigned with WithName.
func (v *Variant) Name() string {
	if v == nil {
		return ""
	}
	return v.name
}

// Schema exposes the resolved schema for inspection.
func (v *Variant) Schema() *Schema {
	if v == nil {
		return nil
	}
	return v.schema
}

// WithHandler returns a derived variant sharing this declaration's schema
// with the given hooks attached. The receiver is left untouched, so a loaded
// declaration can be bound to different behaviours.
func (v *Variant) WithHandler(handler Handler) *Variant {
	if v == nil {
		return nil
	}
	derived := *v
	if handler == nil {
		handler = NopHandler{}
	}
	derived.handler = handler
	return &derived
}

// New constructs a form instance: raw input is filtered and coerced against
// the schema, and one child instance is built per nested declaration from
// the sub-mapping at the attribute key. An absent sub-mapping constructs the
// child over an empty mapping; a present non-mapping value is a construction
// error.
func (v *Variant) New(raw Values) (*Form, error) {
	if v == nil {
		return nil, errors.New("form: variant is required")
	}
	if raw == nil {
		raw = Values{}
	}

	fields, err := v.schema.extract(raw)
	if err != nil {
		return nil, err
	}

	children := make(map[string]*Form, len(v.schema.nested))
	for _, decl := range v.schema.nested {
		sub, err := nestedValues(decl.attr, raw[decl.attr])
		if err != nil {
			return nil, err
		}
		child, err := decl.variant.New(sub)
		if err != nil {
			return nil, fmt.Errorf("form: nested attribute %q: %w", decl.attr, err)
		}
		children[decl.attr] = child
	}

	return &Form{
		variant:  v,
		fields:   fields,
		children: children,
		errs:     NewErrors(),
	}, nil
}

// MustNew panics when the instance cannot be constructed.
func (v *Variant) MustNew(raw Values) *Form {
	f, err := v.New(raw)
	if err != nil {
		panic(err)
	}
	return f
}

func nestedValues(attr string, raw any) (Values, error) {
	switch sub := raw.(type) {
	case nil:
		return Values{}, nil
	case Values:
		return sub, nil
	case map[string]any:
		return Values(sub), nil
	default:
		return nil, fmt.Errorf("form: nested attribute %q: expected a mapping, got %T", attr, raw)
	}
}
