package wire

import (
	"bytes"
	"encoding/json"
)

// Enum is implemented by enumerated field values. Token returns the declared
// underlying string token.
type Enum interface {
	Token() string
}

// Field is a single named field of a record, in declaration order.
type Field struct {
	Name  string
	Value any
}

// Record is implemented by every validated schema type. Fields returns the
// record's fields in schema declaration order; absent optional fields carry
// a nil value.
type Record interface {
	Fields() []Field
}

// Payload is the schema-less escape hatch attached to several entities:
// an open string-keyed mapping that carries caller-defined extension data
// and is never validated.
type Payload map[string]any

// Map is an insertion-ordered string-keyed mapping. It is the canonical
// form of a normalized record: JSON marshalling preserves key order and
// emits explicit nulls for absent fields.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{values: map[string]any{}}
}

// Set inserts or replaces a key. First insertion fixes the key's position.
func (m *Map) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Map) Len() int { return len(m.keys) }

// MarshalJSON writes the map as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
