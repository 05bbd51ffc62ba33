package storage

import (
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-formkit/pkg/form"
)

// Memory is an in-memory Store. It keeps the reference implementation
// lightweight and testable, favouring clarity over performance. Records are
// matched in insertion order so lookups are deterministic.
type Memory struct {
	mu      sync.RWMutex
	records map[string]Record
	order   []string
}

var _ Store = (*Memory)(nil)

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]Record)}
}

// Create inserts a new record with a generated identifier.
func (s *Memory) Create(attrs form.Values) (Record, error) {
	record := Record{ID: uuid.NewString(), Attrs: attrs.Clone()}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = record
	s.order = append(s.order, record.ID)
	return record, nil
}

// Find returns the first record whose attributes equal every given attribute.
func (s *Memory) Find(attrs form.Values) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if matches(s.records[id], attrs) {
			return s.records[id], nil
		}
	}
	return Record{}, ErrNotFound
}

// FindOrCreate looks a record up by equality of the given attributes and
// creates one from them when the lookup misses.
func (s *Memory) FindOrCreate(attrs form.Values) (Record, error) {
	if record, err := s.Find(attrs); err == nil {
		return record, nil
	}
	return s.Create(attrs)
}

// Save replaces the attributes of an existing record.
func (s *Memory) Save(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[record.ID]; !ok {
		return ErrNotFound
	}
	s.records[record.ID] = Record{ID: record.ID, Attrs: record.Attrs.Clone()}
	return nil
}

// Get returns a record by identifier.
func (s *Memory) Get(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if record, ok := s.records[id]; ok {
		return record, nil
	}
	return Record{}, ErrNotFound
}

// Len reports the number of stored records.
func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// All returns every record in insertion order.
func (s *Memory) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

func matches(record Record, attrs form.Values) bool {
	for name, want := range attrs {
		if !reflect.DeepEqual(record.Attrs[name], want) {
			return false
		}
	}
	return true
}
