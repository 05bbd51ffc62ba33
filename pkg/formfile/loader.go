// Package formfile loads form variant declarations from YAML or JSON
// documents on a filesystem. Files declare fields, coercion tags, checks,
// and nested composition; behaviour hooks are attached in code, either at
// load time or later through Variant.WithHandler.
package formfile

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formkit/internal/label"
	"github.com/goliatone/go-formkit/pkg/coerce"
	"github.com/goliatone/go-formkit/pkg/form"
)

// Option customises loading.
type Option func(*loader)

// WithRegistry supplies the coercion registry used when resolving field
// types. When omitted, the builtin registry is used.
func WithRegistry(registry *coerce.Registry) Option {
	return func(l *loader) {
		if registry != nil {
			l.registry = registry
		}
	}
}

// WithHandler attaches validate/execute hooks to the named variant at load
// time. Handlers for names absent from the loaded documents are an error.
func WithHandler(variant string, handler form.Handler) Option {
	return func(l *loader) {
		if l.handlers == nil {
			l.handlers = make(map[string]form.Handler)
		}
		l.handlers[strings.TrimSpace(variant)] = handler
	}
}

// Set holds the variants resolved from a load. It is safe for concurrent
// readers when treated as immutable after construction.
type Set struct {
	variants map[string]*form.Variant
}

// Variant looks a resolved variant up by name.
func (s *Set) Variant(name string) (*form.Variant, bool) {
	if s == nil {
		return nil, false
	}
	variant, ok := s.variants[name]
	return variant, ok
}

// MustVariant panics when the name is not present in the set.
func (s *Set) MustVariant(name string) *form.Variant {
	variant, ok := s.Variant(name)
	if !ok {
		panic(fmt.Sprintf("formfile: variant %q not loaded", name))
	}
	return variant
}

// Names returns the resolved variant names in sorted order.
func (s *Set) Names() []string {
	if s == nil || len(s.variants) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.variants))
	for name := range s.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the set holds no variants.
func (s *Set) Empty() bool {
	return s == nil || len(s.variants) == 0
}

type loader struct {
	registry *coerce.Registry
	handlers map[string]form.Handler

	configs map[string]VariantConfig
	sources map[string]string
	built   map[string]*form.Variant
	pending map[string]bool
}

// LoadFS walks the provided filesystem and parses every YAML/JSON definition
// file, then resolves the declared variants, following nested references
// between them. Unknown references and reference cycles are errors. When
// fsys is nil or holds no definition files, the returned set is empty.
func LoadFS(fsys fs.FS, options ...Option) (*Set, error) {
	l := &loader{
		configs: make(map[string]VariantConfig),
		sources: make(map[string]string),
		built:   make(map[string]*form.Variant),
		pending: make(map[string]bool),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	if l.registry == nil {
		l.registry = coerce.NewRegistry()
	}

	if fsys != nil {
		if err := l.collect(fsys); err != nil {
			return nil, err
		}
	}

	for name := range l.handlers {
		if _, ok := l.configs[name]; !ok {
			return nil, fmt.Errorf("formfile: handler bound to undeclared variant %q", name)
		}
	}

	for _, name := range l.names() {
		if _, err := l.build(name); err != nil {
			return nil, err
		}
	}

	return &Set{variants: l.built}, nil
}

func (l *loader) collect(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formfile: read %s: %w", path, err)
		}

		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("formfile: parse %s: %w", path, err)
		}

		for rawName, cfg := range doc.Variants {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("formfile: file %s declares an empty variant name", path)
			}
			if prior, dup := l.sources[name]; dup {
				return fmt.Errorf("formfile: variant %q declared in both %s and %s", name, prior, path)
			}
			l.configs[name] = cfg
			l.sources[name] = path
		}
		return nil
	})
}

func (l *loader) names() []string {
	names := make([]string, 0, len(l.configs))
	for name := range l.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l *loader) build(name string) (*form.Variant, error) {
	if variant, ok := l.built[name]; ok {
		return variant, nil
	}
	if l.pending[name] {
		return nil, fmt.Errorf("formfile: variant %q is part of a reference cycle", name)
	}

	cfg, ok := l.configs[name]
	if !ok {
		return nil, fmt.Errorf("formfile: variant %q is not declared", name)
	}

	l.pending[name] = true
	defer delete(l.pending, name)

	options := []form.Option{
		form.WithName(name),
		form.WithRegistry(l.registry),
	}

	for _, field := range cfg.Fields {
		fieldName := strings.TrimSpace(field.Name)
		if fieldName == "" {
			return nil, fmt.Errorf("formfile: variant %q declares a field without a name (%s)", name, l.sources[name])
		}
		if fieldType := strings.TrimSpace(field.Type); fieldType != "" {
			options = append(options, form.WithField(fieldName, fieldType))
		} else {
			options = append(options, form.WithField(fieldName))
		}
		for _, check := range field.Checks {
			options = append(options, form.WithCheck(fieldName, check.Rule, checkMessage(field, check)))
		}
	}

	for _, nested := range cfg.Nested {
		attr := strings.TrimSpace(nested.Attr)
		ref := strings.TrimSpace(nested.Variant)
		if ref == "" {
			ref = attr
		}
		child, err := l.build(ref)
		if err != nil {
			return nil, err
		}
		options = append(options, form.WithNested(attr, child))
	}

	if handler, ok := l.handlers[name]; ok && handler != nil {
		options = append(options, form.WithHandler(handler))
	}

	variant, err := form.NewVariant(options...)
	if err != nil {
		return nil, fmt.Errorf("formfile: variant %q (%s): %w", name, l.sources[name], err)
	}
	l.built[name] = variant
	return variant, nil
}

// checkMessage resolves the message for a declared check: the sanitized
// explicit message when given, otherwise one derived from the field label.
func checkMessage(field FieldConfig, check CheckConfig) string {
	if message := sanitizeText(check.Message); message != "" {
		return message
	}

	display := sanitizeText(field.Label)
	if display == "" {
		display = label.Humanize(strings.TrimSpace(field.Name))
	}
	if strings.Contains(check.Rule, "required") {
		return fmt.Sprintf("%s is not present", display)
	}
	return fmt.Sprintf("%s is not valid", display)
}
