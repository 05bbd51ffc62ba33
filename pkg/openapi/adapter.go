// Package openapi derives form variant declarations from OpenAPI documents
// using kin-openapi. The JSON request body schema of an operation maps onto
// a field schema: property types become coercion tags, object properties
// become nested variants, and required properties become presence checks.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formkit/internal/label"
	"github.com/goliatone/go-formkit/pkg/coerce"
	"github.com/goliatone/go-formkit/pkg/form"
)

const jsonContentType = "application/json"

// Option customises variant derivation.
type Option func(*adapter)

// WithRegistry supplies the coercion registry used when resolving property
// types. When omitted, the builtin registry is used.
func WithRegistry(registry *coerce.Registry) Option {
	return func(a *adapter) {
		if registry != nil {
			a.registry = registry
		}
	}
}

// WithHandler attaches validate/execute hooks to the derived root variant.
func WithHandler(handler form.Handler) Option {
	return func(a *adapter) {
		a.handler = handler
	}
}

type adapter struct {
	registry *coerce.Registry
	handler  form.Handler
}

// VariantFromData loads an OpenAPI document (JSON or YAML payload), locates
// the operation by id, and derives a form variant from its JSON request body
// schema. Properties are declared in sorted name order so derivation is
// deterministic regardless of document map ordering.
func VariantFromData(ctx context.Context, data []byte, operationID string, options ...Option) (*form.Variant, error) {
	if ctx == nil {
		return nil, errors.New("openapi: context is required")
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	opID := strings.TrimSpace(operationID)
	if opID == "" {
		return nil, errors.New("openapi: operation id is required")
	}

	a := &adapter{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	if a.registry == nil {
		a.registry = coerce.NewRegistry()
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	operation, err := findOperation(spec, opID)
	if err != nil {
		return nil, err
	}

	schema, err := requestSchema(operation)
	if err != nil {
		return nil, fmt.Errorf("openapi: operation %q: %w", opID, err)
	}

	variant, err := a.variantFromSchema(opID, schema, a.handler)
	if err != nil {
		return nil, fmt.Errorf("openapi: operation %q: %w", opID, err)
	}
	return variant, nil
}

func findOperation(spec *openapi3.T, operationID string) (*openapi3.Operation, error) {
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation, nil
			}
		}
	}
	return nil, fmt.Errorf("openapi: operation %q not found", operationID)
}

func requestSchema(operation *openapi3.Operation) (*openapi3.Schema, error) {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil, errors.New("request body is required")
	}
	content := operation.RequestBody.Value.Content.Get(jsonContentType)
	if content == nil || content.Schema == nil || content.Schema.Value == nil {
		return nil, fmt.Errorf("request body has no %s schema", jsonContentType)
	}
	return content.Schema.Value, nil
}

// variantFromSchema maps an object schema onto a variant declaration. The
// handler is attached to the root only; nested variants stay hook-free and
// can be rebound through Variant.WithHandler.
func (a *adapter) variantFromSchema(name string, schema *openapi3.Schema, handler form.Handler) (*form.Variant, error) {
	if !typeIs(schema, openapi3.TypeObject) && len(schema.Properties) == 0 {
		return nil, fmt.Errorf("schema for %q is not an object", name)
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, field := range schema.Required {
		required[field] = struct{}{}
	}

	options := []form.Option{
		form.WithName(name),
		form.WithRegistry(a.registry),
	}

	for _, propName := range sortedPropertyNames(schema) {
		ref := schema.Properties[propName]
		if ref == nil || ref.Value == nil {
			options = append(options, form.WithField(propName))
			continue
		}
		prop := ref.Value

		if typeIs(prop, openapi3.TypeObject) || len(prop.Properties) > 0 {
			child, err := a.variantFromSchema(propName, prop, nil)
			if err != nil {
				return nil, err
			}
			options = append(options, form.WithNested(propName, child))
			continue
		}

		if tag := coercionTag(prop); tag != "" {
			options = append(options, form.WithField(propName, tag))
		} else {
			options = append(options, form.WithField(propName))
		}

		if _, ok := required[propName]; ok {
			message := fmt.Sprintf("%s is not present", label.Humanize(propName))
			options = append(options, form.WithCheck(propName, "required", message))
		}
	}

	if handler != nil {
		options = append(options, form.WithHandler(handler))
	}

	return form.NewVariant(options...)
}

func sortedPropertyNames(schema *openapi3.Schema) []string {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func coercionTag(schema *openapi3.Schema) string {
	switch {
	case typeIs(schema, openapi3.TypeString):
		return coerce.TagString
	case typeIs(schema, openapi3.TypeInteger):
		return coerce.TagInteger
	case typeIs(schema, openapi3.TypeNumber):
		return coerce.TagNumber
	case typeIs(schema, openapi3.TypeBoolean):
		return coerce.TagBoolean
	default:
		return ""
	}
}

func typeIs(schema *openapi3.Schema, want string) bool {
	return schema != nil && schema.Type != nil && schema.Type.Is(want)
}
