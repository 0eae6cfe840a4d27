package schema

import "github.com/aethongr/keystone-api-standard/wire"

// Payload is the open escape-hatch field attached to several entities.
// It carries caller-defined key-value extension data and is deliberately
// excluded from validation; a nil Payload means the field is absent.
type Payload = wire.Payload
