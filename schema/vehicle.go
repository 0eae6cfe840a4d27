package schema

import "github.com/aethongr/keystone-api-standard/wire"

// Coordinates is a geographical position in decimal degrees.
type Coordinates struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// Fields returns the record's fields in declaration order.
func (c Coordinates) Fields() []wire.Field {
	return []wire.Field{
		{Name: "latitude", Value: wire.Opt(c.Latitude)},
		{Name: "longitude", Value: wire.Opt(c.Longitude)},
	}
}

// Geolocation is a timestamped position report for a vehicle.
type Geolocation struct {
	DateTime    *string      `json:"dateTime" validate:"required,datetimeutc"`
	Coordinates *Coordinates `json:"coordinates" validate:"required"`
}

// Fields returns the record's fields in declaration order.
func (g Geolocation) Fields() []wire.Field {
	return []wire.Field{
		{Name: "dateTime", Value: wire.Opt(g.DateTime)},
		{Name: "coordinates", Value: wire.Opt(g.Coordinates)},
	}
}

// Location is a named point of a transport operation (gate, terminal,
// port, ...).
type Location struct {
	ID          *int         `json:"id" validate:"required,gte=1"`
	CountryCode *string      `json:"countryCode" validate:"required,countrycode"`
	Description *string      `json:"description" validate:"required,min=1,max=100"`
	Mode        *Mode        `json:"mode" validate:"required,oneof=GENERIC GATE TERMINAL PORT AIRPORT STATION"`
	Coordinates *Coordinates `json:"coordinates" validate:"omitempty"`
}

// Fields returns the record's fields in declaration order.
func (l Location) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(l.ID)},
		{Name: "countryCode", Value: wire.Opt(l.CountryCode)},
		{Name: "description", Value: wire.Opt(l.Description)},
		{Name: "mode", Value: wire.Opt(l.Mode)},
		{Name: "coordinates", Value: wire.Opt(l.Coordinates)},
	}
}

// Owner identifies the owner of a vehicle.
type Owner struct {
	ID      *int    `json:"id" validate:"required,gte=1"`
	Name    *string `json:"name" validate:"required,min=1,max=20"`
	Vat     *string `json:"vat" validate:"omitempty,min=2,max=13"`
	Payload Payload `json:"payload" validate:"-"`
}

// Fields returns the record's fields in declaration order.
func (o Owner) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(o.ID)},
		{Name: "name", Value: wire.Opt(o.Name)},
		{Name: "vat", Value: wire.Opt(o.Vat)},
		{Name: "payload", Value: o.Payload},
	}
}

// Insurance is one insurance policy of a vehicle. Whether the activation
// date actually precedes the expiration date is a convention between the
// parties and is not checked here.
type Insurance struct {
	ID             *int    `json:"id" validate:"required,gte=1"`
	Name           *string `json:"name" validate:"required,min=1,max=20"`
	Number         *string `json:"number" validate:"required,min=1,max=20"`
	IsInsured      *bool   `json:"isInsured" validate:"required"`
	ActivationDate *string `json:"activationDate" validate:"required,dateonly"`
	ExpirationDate *string `json:"expirationDate" validate:"required,dateonly"`
	Payload        Payload `json:"payload" validate:"-"`
}

// Fields returns the record's fields in declaration order.
func (i Insurance) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(i.ID)},
		{Name: "name", Value: wire.Opt(i.Name)},
		{Name: "number", Value: wire.Opt(i.Number)},
		{Name: "isInsured", Value: wire.Opt(i.IsInsured)},
		{Name: "activationDate", Value: wire.Opt(i.ActivationDate)},
		{Name: "expirationDate", Value: wire.Opt(i.ExpirationDate)},
		{Name: "payload", Value: i.Payload},
	}
}

// Revision is one periodic technical revision of a vehicle.
type Revision struct {
	ID             *int    `json:"id" validate:"required,gte=1"`
	Name           *string `json:"name" validate:"required,min=1,max=20"`
	Number         *string `json:"number" validate:"required,min=1,max=20"`
	ExecutionDate  *string `json:"executionDate" validate:"required,dateonly"`
	ExpirationDate *string `json:"expirationDate" validate:"required,dateonly"`
	Payload        Payload `json:"payload" validate:"-"`
}

// Fields returns the record's fields in declaration order.
func (r Revision) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(r.ID)},
		{Name: "name", Value: wire.Opt(r.Name)},
		{Name: "number", Value: wire.Opt(r.Number)},
		{Name: "executionDate", Value: wire.Opt(r.ExecutionDate)},
		{Name: "expirationDate", Value: wire.Opt(r.ExpirationDate)},
		{Name: "payload", Value: r.Payload},
	}
}

// Vehicle is the vehicle used in a transport operation. Its natural
// external key is (countryCode, plateNumber). The insurance and revision
// lists are required but may be empty.
type Vehicle struct {
	ID          *int          `json:"id" validate:"required,gte=1"`
	CountryCode *string       `json:"countryCode" validate:"required,countrycode"`
	PlateNumber *string       `json:"plateNumber" validate:"required,min=1,max=20"`
	Type        *string       `json:"type" validate:"omitempty,min=1,max=20"`
	Model       *string       `json:"model" validate:"omitempty,min=1,max=20"`
	Geolocation []Geolocation `json:"geolocation" validate:"omitempty,dive"`
	Owner       *Owner        `json:"owner" validate:"required"`
	Insurance   []Insurance   `json:"insurance" validate:"notnil,dive"`
	Revision    []Revision    `json:"revision" validate:"notnil,dive"`
}

// Fields returns the record's fields in declaration order.
func (v Vehicle) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(v.ID)},
		{Name: "countryCode", Value: wire.Opt(v.CountryCode)},
		{Name: "plateNumber", Value: wire.Opt(v.PlateNumber)},
		{Name: "type", Value: wire.Opt(v.Type)},
		{Name: "model", Value: wire.Opt(v.Model)},
		{Name: "geolocation", Value: wire.Records(v.Geolocation)},
		{Name: "owner", Value: wire.Opt(v.Owner)},
		{Name: "insurance", Value: wire.Records(v.Insurance)},
		{Name: "revision", Value: wire.Records(v.Revision)},
	}
}
