// Package storage provides the flat-file JSON stores backing the demo API
// server.
//
// Each top-level entity lives in one JSON array file under the configured
// data directory (vehicle.json, driver.json, ...). A store loads its file
// once at open time, serves lookups from memory under a read-write mutex,
// and rewrites the whole file on every mutation. There are no transactions
// and no cross-store consistency; the stores exist to exercise the data
// model end to end, not to be a database.
//
// Lookups use the natural external keys of the model: vehicles by
// (countryCode, plateNumber), drivers by (countryCode, vat), organizations
// and transport operations by id, e-CMR records by their issued id.
package storage
