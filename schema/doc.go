// Package schema is the registry of transport-operation record types.
//
// Every entity of the model (vehicles, drivers, organizations, consignment
// documents, the TransportOperation root aggregate) is a plain Go struct
// whose field constraints are declared as validator struct tags: numeric
// bounds, string lengths, anchored patterns and enumerated tokens. The
// Registry wraps a configured go-playground/validator instance and is the
// single entry point for turning untrusted JSON into a validated record.
//
// # Validation contract
//
//   - required fields must be present and satisfy their constraint
//   - optional fields are pointers (or nil slices) and, when present, must
//     satisfy their constraint; absence is always the nil value, never a
//     sentinel
//   - enumerated fields accept exactly their declared tokens, case-sensitive
//   - pattern constraints are anchored at both ends; partial matches fail
//   - numeric bounds are inclusive
//   - nested records are validated recursively; a failure at any depth is
//     reported with the full dotted field path (vehicle.owner.vat)
//   - unknown fields are rejected everywhere except inside the Payload
//     escape hatch
//
// Violations are collected in one pass and returned together as
// ValidationErrors; validation never stops at the first failure.
//
// Validation is pure: no I/O, no mutation of shared state. A Registry is
// immutable after construction and safe for concurrent use.
package schema
