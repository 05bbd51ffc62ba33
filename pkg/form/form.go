package form

// Form is a single instance of a variant: the extracted field mapping, one
// child form per nested declaration, and the error set from the most recent
// validation pass. Instances are not meant to be shared across concurrent
// operations; each raw input produces an independent tree.
type Form struct {
	variant  *Variant
	fields   Values
	children map[string]*Form
	errs     *Errors
}

// Variant returns the declaration this instance was built from.
func (f *Form) Variant() *Variant {
	if f == nil {
		return nil
	}
	return f.variant
}

// Fields returns the extracted field mapping. The result is a copy; repeated
// calls return equal mappings.
func (f *Form) Fields() Values {
	if f == nil {
		return Values{}
	}
	return f.fields.Clone()
}

// Field returns the extracted value for a declared field name.
func (f *Form) Field(name string) (any, bool) {
	if f == nil {
		return nil, false
	}
	value, ok := f.fields[name]
	return value, ok
}

// String returns the field value when it extracted as a string.
func (f *Form) String(name string) string {
	value, _ := f.Field(name)
	s, _ := value.(string)
	return s
}

// Int returns the field value when it extracted as an int64 (the integer
// coercion's representation).
func (f *Form) Int(name string) int64 {
	value, _ := f.Field(name)
	n, _ := value.(int64)
	return n
}

// Float returns the field value when it extracted as a float64.
func (f *Form) Float(name string) float64 {
	value, _ := f.Field(name)
	n, _ := value.(float64)
	return n
}

// Bool returns the field value when it extracted as a bool.
func (f *Form) Bool(name string) bool {
	value, _ := f.Field(name)
	b, _ := value.(bool)
	return b
}

// Nested returns the child form built for the given nested attribute.
// Children are built once, at construction time, and reused across calls.
func (f *Form) Nested(attr string) *Form {
	if f == nil {
		return nil
	}
	return f.children[attr]
}

// Valid recomputes the error set from scratch: declared checks run in field
// order, then the Validate hook, then every nested child depth-first in
// declaration order. Child messages are merged into this instance's set so
// the root aggregates the whole tree. Returns true iff the instance's own
// pass produced no messages and every child is valid. Re-invoking Valid
// never accumulates stale messages from a prior call.
func (f *Form) Valid() bool {
	if f == nil {
		return false
	}

	errs := NewErrors()
	f.applyChecks(errs)
	f.variant.handler.Validate(f, errs)
	valid := errs.Empty()

	for _, decl := range f.variant.schema.nested {
		child := f.children[decl.attr]
		if !child.Valid() {
			valid = false
		}
		errs.Merge(child.Errors())
	}

	f.errs = errs
	return valid
}

// Errors returns the message set populated by the most recent Valid call.
// Before the first call the set is empty.
func (f *Form) Errors() *Errors {
	if f == nil {
		return NewErrors()
	}
	return f.errs
}

// Run validates the whole tree and, only when every form in it is valid,
// executes each form's hook: self first, then nested children in declaration
// order. Invalid trees return (false, nil) with no execution anywhere. Hook
// errors abort the remaining sequence and propagate untranslated; there is
// no rollback of effects already committed.
func (f *Form) Run() (bool, error) {
	if f == nil {
		return false, nil
	}
	if !f.Valid() {
		return false, nil
	}
	if err := f.execute(); err != nil {
		return false, err
	}
	return true, nil
}

// execute runs this form's hook before descending into children, so a parent
// record exists before nested results attach to it.
func (f *Form) execute() error {
	if err := f.variant.handler.Execute(f); err != nil {
		return err
	}
	for _, decl := range f.variant.schema.nested {
		if err := f.children[decl.attr].execute(); err != nil {
			return err
		}
	}
	return nil
}
