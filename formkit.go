// Package formkit exposes the form lifecycle engine from the module root:
// variants declare fields with coercion tags, checks, nested sub-forms, and
// validate/execute hooks; instances filter raw input, aggregate validation
// messages across the tree, and execute all-or-nothing.
package formkit

import (
	"github.com/goliatone/go-formkit/pkg/coerce"
	"github.com/goliatone/go-formkit/pkg/form"
)

// Values is the untyped mapping used for raw input and extracted fields.
type Values = form.Values

// Variant is an immutable form declaration.
type Variant = form.Variant

// Form is a single instance of a variant.
type Form = form.Form

// Errors is the deduplicated validation message set.
type Errors = form.Errors

// Handler carries the per-variant validate/execute hooks.
type Handler = form.Handler

// Hooks adapts plain functions to the Handler interface.
type Hooks = form.Hooks

// NopHandler provides no-op hook implementations.
type NopHandler = form.NopHandler

// Option customises a variant declaration.
type Option = form.Option

// NewVariant resolves a declaration into a Variant.
func NewVariant(options ...Option) (*Variant, error) {
	return form.NewVariant(options...)
}

// MustVariant panics when the declaration cannot be resolved.
func MustVariant(options ...Option) *Variant {
	return form.MustVariant(options...)
}

// NewRegistry constructs a coercion registry with the builtin tags.
func NewRegistry() *coerce.Registry {
	return coerce.NewRegistry()
}

// WithName assigns a diagnostic name to the variant.
func WithName(name string) Option { return form.WithName(name) }

// WithRegistry supplies the coercion registry used to resolve field tags.
func WithRegistry(registry *coerce.Registry) Option { return form.WithRegistry(registry) }

// WithField appends a field declaration with an optional coercion tag.
func WithField(name string, tag ...string) Option { return form.WithField(name, tag...) }

// WithCheck declares a validator rule for a field.
func WithCheck(field, rule, message string) Option { return form.WithCheck(field, rule, message) }

// WithNested declares a nested sub-form under the given attribute.
func WithNested(attr string, child *Variant) Option { return form.WithNested(attr, child) }

// WithHandler attaches the variant's validate/execute hooks.
func WithHandler(handler Handler) Option { return form.WithHandler(handler) }
