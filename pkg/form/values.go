package form

// Values is the untyped mapping used for raw input and for the extracted
// field mapping of a form instance.
type Values map[string]any

// Clone returns a shallow copy of the mapping. A nil receiver yields an
// empty, non-nil mapping so callers can range and index safely.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}
