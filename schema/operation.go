package schema

import (
	"github.com/aethongr/keystone-api-standard/ecmr"
	"github.com/aethongr/keystone-api-standard/wire"
)

// Organization is a party to a transport operation, keyed externally by id.
type Organization struct {
	ID          *int              `json:"id" validate:"required,gte=1"`
	Name        *string           `json:"name" validate:"required,min=1,max=20"`
	CountryCode *string           `json:"countryCode" validate:"required,countrycode"`
	Type        *OrganizationType `json:"type" validate:"required,oneof=OPERATOR CUSTOMER"`
	Vat         *string           `json:"vat" validate:"omitempty,min=2,max=13"`
	Address     *string           `json:"address" validate:"omitempty,min=1,max=100"`
}

// Fields returns the record's fields in declaration order.
func (o Organization) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(o.ID)},
		{Name: "name", Value: wire.Opt(o.Name)},
		{Name: "countryCode", Value: wire.Opt(o.CountryCode)},
		{Name: "type", Value: wire.Opt(o.Type)},
		{Name: "vat", Value: wire.Opt(o.Vat)},
		{Name: "address", Value: wire.Opt(o.Address)},
	}
}

// Schedule carries the planned and actual times of a transport operation.
type Schedule struct {
	DepartureDateTime          *string `json:"departureDateTime" validate:"required,datetimeutc"`
	RealDepartureDateTime      *string `json:"realDepartureDateTime" validate:"omitempty,datetimeutc"`
	EstimatedDateTimeOfArrival *string `json:"estimatedDateTimeOfArrival" validate:"required,datetimeutc"`
	RealArrivalDateTime        *string `json:"realArrivalDateTime" validate:"omitempty,datetimeutc"`
}

// Fields returns the record's fields in declaration order.
func (s Schedule) Fields() []wire.Field {
	return []wire.Field{
		{Name: "departureDateTime", Value: wire.Opt(s.DepartureDateTime)},
		{Name: "realDepartureDateTime", Value: wire.Opt(s.RealDepartureDateTime)},
		{Name: "estimatedDateTimeOfArrival", Value: wire.Opt(s.EstimatedDateTimeOfArrival)},
		{Name: "realArrivalDateTime", Value: wire.Opt(s.RealArrivalDateTime)},
	}
}

// Phase is one stage of a transport operation's lifecycle. The state field
// is a flat token; transitions between states are not checked.
type Phase struct {
	ID       *int        `json:"id" validate:"required,gte=1"`
	Location *Location   `json:"location" validate:"required"`
	DateTime *string     `json:"dateTime" validate:"required,datetimeutc"`
	State    *PhaseState `json:"state" validate:"required,oneof=PLANNING IN_PROGRESS ARRIVED_AT_PICKUP ARRIVED_AT_DESTINATION LOADING UNLOADING IN_TRANSIT COMPLETED DELAYED CANCELED"`
	Payload  Payload     `json:"payload" validate:"-"`
}

// Fields returns the record's fields in declaration order.
func (p Phase) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(p.ID)},
		{Name: "location", Value: wire.Opt(p.Location)},
		{Name: "dateTime", Value: wire.Opt(p.DateTime)},
		{Name: "state", Value: wire.Opt(p.State)},
		{Name: "payload", Value: p.Payload},
	}
}

// Component is one physical component of a load item, dimensions in the
// declared unit of measurement.
type Component struct {
	Type        *string  `json:"type" validate:"required,min=1,max=20"`
	Description *string  `json:"description" validate:"omitempty,min=1,max=100"`
	Width       *float64 `json:"width" validate:"required,gte=0"`
	Height      *float64 `json:"height" validate:"required,gte=0"`
	Depth       *float64 `json:"depth" validate:"required,gte=0"`
	Unitary     *bool    `json:"unitary" validate:"required"`
	Um          *string  `json:"um" validate:"required,min=1,max=20"`
}

// Fields returns the record's fields in declaration order.
func (c Component) Fields() []wire.Field {
	return []wire.Field{
		{Name: "type", Value: wire.Opt(c.Type)},
		{Name: "description", Value: wire.Opt(c.Description)},
		{Name: "width", Value: wire.Opt(c.Width)},
		{Name: "height", Value: wire.Opt(c.Height)},
		{Name: "depth", Value: wire.Opt(c.Depth)},
		{Name: "unitary", Value: wire.Opt(c.Unitary)},
		{Name: "um", Value: wire.Opt(c.Um)},
	}
}

// Load is one item of load being transported.
type Load struct {
	Type        *string     `json:"type" validate:"required,min=1,max=20"`
	Description *string     `json:"description" validate:"omitempty,min=1,max=100"`
	Weight      *float64    `json:"weight" validate:"required,gte=0"`
	UmWeight    *string     `json:"umWeight" validate:"required,min=1,max=20"`
	Component   []Component `json:"component" validate:"notnil,dive"`
}

// Fields returns the record's fields in declaration order.
func (l Load) Fields() []wire.Field {
	return []wire.Field{
		{Name: "type", Value: wire.Opt(l.Type)},
		{Name: "description", Value: wire.Opt(l.Description)},
		{Name: "weight", Value: wire.Opt(l.Weight)},
		{Name: "umWeight", Value: wire.Opt(l.UmWeight)},
		{Name: "component", Value: wire.Records(l.Component)},
	}
}

// Document is an international consignment note used for a transport
// operation, keyed by referenceCode within the operation.
type Document struct {
	ReferenceCode        *string       `json:"referenceCode" validate:"required,min=1,max=20"`
	SenderOrganization   *Organization `json:"senderOrganization" validate:"required"`
	ReceiverOrganization *Organization `json:"receiverOrganization" validate:"required"`
	StartingPoint        *Location     `json:"startingPoint" validate:"required"`
	EndingPoint          *Location     `json:"endingPoint" validate:"required"`
	Load                 *Load         `json:"load" validate:"required"`
	Report               *string       `json:"report" validate:"omitempty"`
	Payload              Payload       `json:"payload" validate:"-"`
}

// Fields returns the record's fields in declaration order.
func (d Document) Fields() []wire.Field {
	return []wire.Field{
		{Name: "referenceCode", Value: wire.Opt(d.ReferenceCode)},
		{Name: "senderOrganization", Value: wire.Opt(d.SenderOrganization)},
		{Name: "receiverOrganization", Value: wire.Opt(d.ReceiverOrganization)},
		{Name: "startingPoint", Value: wire.Opt(d.StartingPoint)},
		{Name: "endingPoint", Value: wire.Opt(d.EndingPoint)},
		{Name: "load", Value: wire.Opt(d.Load)},
		{Name: "report", Value: wire.Opt(d.Report)},
		{Name: "payload", Value: d.Payload},
	}
}

// TransportOperation is the root aggregate: one logistics transport
// operation with its operator, schedule, driver, vehicle and attached
// phases, consignment documents and eCMR waybills.
type TransportOperation struct {
	ID       *int             `json:"id" validate:"required,gte=1"`
	Operator *Organization    `json:"operator" validate:"required"`
	Schedule *Schedule        `json:"schedule" validate:"required"`
	Driver   *Driver          `json:"driver" validate:"required"`
	Vehicle  *Vehicle         `json:"vehicle" validate:"required"`
	Phase    []Phase          `json:"phase" validate:"omitempty,dive"`
	Document []Document       `json:"document" validate:"omitempty,dive"`
	Ecmr     []ecmr.EcmrModel `json:"ecmr" validate:"omitempty,dive"`
	Payload  Payload          `json:"payload" validate:"-"`
}

// Fields returns the record's fields in declaration order.
func (t TransportOperation) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(t.ID)},
		{Name: "operator", Value: wire.Opt(t.Operator)},
		{Name: "schedule", Value: wire.Opt(t.Schedule)},
		{Name: "driver", Value: wire.Opt(t.Driver)},
		{Name: "vehicle", Value: wire.Opt(t.Vehicle)},
		{Name: "phase", Value: wire.Records(t.Phase)},
		{Name: "document", Value: wire.Records(t.Document)},
		{Name: "ecmr", Value: wire.Records(t.Ecmr)},
		{Name: "payload", Value: t.Payload},
	}
}
