// Package form implements the form lifecycle engine: variants declare an
// ordered field schema with optional coercion tags, nested sub-forms, and
// validate/execute hooks; instances filter and coerce raw input, aggregate
// validation messages across the nested tree, and gate execution on a
// full-tree validity check so no side effect runs on invalid input.
package form
