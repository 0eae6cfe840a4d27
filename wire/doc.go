// Package wire defines the canonical wire representation of validated
// transport-operation records.
//
// A validated record graph (see the schema and ecmr packages) is converted
// into a canonical, enum-free, plain-data form by Normalize. The canonical
// form is built from a closed set of shapes:
//
//   - *Map: an insertion-ordered string-keyed mapping (a normalized record)
//   - []any: an ordered sequence
//   - Payload: an opaque, schema-less string-keyed mapping
//   - scalars: numbers, strings, booleans, and nil for explicit absence
//
// Record types participate by implementing Record, which yields their fields
// in declaration order. Enumerated values participate by implementing Enum,
// which yields the underlying string token. Normalize pattern-matches on
// this closed set; no reflection is involved.
//
// Normalization never fails and is idempotent: applying Normalize to an
// already-canonical value returns it unchanged.
package wire
