// Package ecmr defines the e-CMR electronic consignment note sub-schema,
// aligned with the Open Logistics Foundation e-CMR backend schema (v0.1).
//
// Every leaf of the consignment body is optional; only the top-level
// consignment itself is required on an EcmrModel. Unlike the source
// schema, timestamp fields use the same fixed YYYY-MM-DDTHH:MM:SSZ string
// convention as the rest of the transport-operation model, so the whole
// record graph carries one date-time representation.
//
// e-CMR identifiers are opaque and issued at creation time by NewID,
// standing in for an external issuance service.
package ecmr
