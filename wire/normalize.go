package wire

// Normalize converts a validated record, or any nested value of one, into
// its canonical wire form. The walk is recursive, depth-first and
// order-preserving:
//
//   - enumerated values become their underlying string token
//   - records become a *Map of their fields in declaration order
//   - sequences are walked element-wise, preserving order and length
//   - payload and plain mappings are walked value-wise, preserving keys
//   - scalars and nil (explicit absence) pass through unchanged
//
// Sequences must be in the []any shape; Records converts a typed record
// slice into it. A slice of any other element type is outside the closed
// set and passes through as an opaque scalar.
//
// Already-canonical input comes back unchanged, so the procedure is
// idempotent.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Enum:
		return x.Token()
	case Record:
		m := NewMap()
		for _, f := range x.Fields() {
			m.Set(f.Name, Normalize(f.Value))
		}
		return m
	case *Map:
		if x == nil {
			return nil
		}
		for _, k := range x.keys {
			x.values[k] = Normalize(x.values[k])
		}
		return x
	case []any:
		if x == nil {
			return nil
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Normalize(e)
		}
		return out
	case Payload:
		if x == nil {
			return nil
		}
		out := make(Payload, len(x))
		for k, e := range x {
			out[k] = Normalize(e)
		}
		return out
	case map[string]any:
		if x == nil {
			return nil
		}
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Normalize(e)
		}
		return out
	default:
		return v
	}
}

// Opt unwraps an optional scalar, enum or nested record field: nil pointers
// map to explicit absence, everything else to the pointed-to value.
func Opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// Records converts a typed record slice into the canonical sequence shape.
// A nil slice is an absent optional list; an empty one is a present, empty
// list.
func Records[T Record](s []T) any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i := range s {
		out[i] = s[i]
	}
	return out
}
