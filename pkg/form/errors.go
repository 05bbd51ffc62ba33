package form

import (
	"sort"
	"strings"
)

// Errors collects validation messages for a single validation pass. Messages
// are trimmed and deduplicated; insertion order is preserved for display but
// the collection compares as an unordered set (see Sorted).
type Errors struct {
	messages []string
	seen     map[string]struct{}
}

// NewErrors returns an empty message set.
func NewErrors() *Errors {
	return &Errors{seen: make(map[string]struct{})}
}

// Add records a human-readable validation message. Empty messages and
// duplicates are dropped.
func (e *Errors) Add(message string) {
	if e == nil {
		return
	}
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return
	}
	if e.seen == nil {
		e.seen = make(map[string]struct{})
	}
	if _, exists := e.seen[trimmed]; exists {
		return
	}
	e.seen[trimmed] = struct{}{}
	e.messages = append(e.messages, trimmed)
}

// Merge adds every message from other, preserving dedup semantics.
func (e *Errors) Merge(other *Errors) {
	if e == nil || other == nil {
		return
	}
	for _, message := range other.messages {
		e.Add(message)
	}
}

// Messages returns the collected messages in insertion order.
func (e *Errors) Messages() []string {
	if e == nil || len(e.messages) == 0 {
		return nil
	}
	return append([]string(nil), e.messages...)
}

// Sorted returns the collected messages sorted lexically, for order-free
// comparison.
func (e *Errors) Sorted() []string {
	out := e.Messages()
	sort.Strings(out)
	return out
}

// Has reports whether the given message was collected.
func (e *Errors) Has(message string) bool {
	if e == nil || e.seen == nil {
		return false
	}
	_, ok := e.seen[strings.TrimSpace(message)]
	return ok
}

// Len returns the number of distinct messages.
func (e *Errors) Len() int {
	if e == nil {
		return 0
	}
	return len(e.messages)
}

// Empty reports whether no messages were collected.
func (e *Errors) Empty() bool {
	return e.Len() == 0
}
