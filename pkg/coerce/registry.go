// Package coerce maps declared type tags to conversion functions. A Registry
// is built once at startup, pre-loaded with the builtin tags, and treated as
// read-only afterwards; schema declarations look tags up and fail when no
// coercion is registered for one.
package coerce

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Builtin type tags registered by NewRegistry.
const (
	TagString  = "string"
	TagInteger = "integer"
	TagNumber  = "number"
	TagBoolean = "boolean"
)

// Coercer converts a raw input value into its typed representation. It
// returns an error when the value has no accepted representation for the tag.
type Coercer func(value any) (any, error)

// NoCoercionError reports a tag with no registered coercion. Schema
// declarations surface it before any form instance is built.
type NoCoercionError struct {
	Tag string
}

func (e *NoCoercionError) Error() string {
	return fmt.Sprintf("coerce: no coercion registered for tag %q", e.Tag)
}

// Registry stores coercers by tag. It is safe for concurrent readers when
// treated as immutable after construction.
type Registry struct {
	mu       sync.RWMutex
	coercers map[string]Coercer
}

// NewRegistry constructs a registry with the builtin coercers registered.
func NewRegistry() *Registry {
	reg := &Registry{coercers: make(map[string]Coercer)}
	reg.registerBuiltins()
	return reg
}

// Register adds a coercer under the given tag. Duplicate tags return an
// error; registration is expected to happen during process initialisation.
func (r *Registry) Register(tag string, fn Coercer) error {
	if fn == nil {
		return fmt.Errorf("coerce: coercer is required")
	}
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return fmt.Errorf("coerce: tag is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.coercers[trimmed]; exists {
		return fmt.Errorf("coerce: tag %q already registered", trimmed)
	}
	r.coercers[trimmed] = fn
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(tag string, fn Coercer) {
	if err := r.Register(tag, fn); err != nil {
		panic(err)
	}
}

// Lookup retrieves the coercer registered for tag.
func (r *Registry) Lookup(tag string) (Coercer, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.coercers[strings.TrimSpace(tag)]
	return fn, ok
}

// Tags returns the registered tag names in sorted order.
func (r *Registry) Tags() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.coercers))
	for tag := range r.coercers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (r *Registry) registerBuiltins() {
	r.coercers[TagString] = ToString
	r.coercers[TagInteger] = ToInteger
	r.coercers[TagNumber] = ToNumber
	r.coercers[TagBoolean] = ToBoolean
}
