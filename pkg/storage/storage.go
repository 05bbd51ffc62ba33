// Package storage defines the persisted-record collaborator consumed by
// execute hooks: create, equality lookup, find-or-create, and save. The form
// engine makes no assumption about the implementation beyond the operations
// being synchronous and surfacing failures as errors.
package storage

import (
	"errors"

	"github.com/goliatone/go-formkit/pkg/form"
)

// ErrNotFound is returned when no record matches a lookup.
var ErrNotFound = errors.New("storage: record not found")

// Record is a persisted row: a generated identifier plus its attributes.
type Record struct {
	ID    string
	Attrs form.Values
}

// Attr returns a single attribute value.
func (r Record) Attr(name string) any {
	return r.Attrs[name]
}

// Store is the collaborator contract. Find and FindOrCreate match records by
// equality of every given attribute.
type Store interface {
	Create(attrs form.Values) (Record, error)
	Find(attrs form.Values) (Record, error)
	FindOrCreate(attrs form.Values) (Record, error)
	Save(record Record) error
}
