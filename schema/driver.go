package schema

import "github.com/aethongr/keystone-api-standard/wire"

// Category is one category of a driving license.
type Category struct {
	Type        *LicenseType   `json:"type" validate:"required,oneof=AM A A1 A2 B BE B1 C1 C1E C CE D1 D1E D DE"`
	Description *string        `json:"description" validate:"omitempty,min=1,max=20"`
	IssueDate   *string        `json:"issueDate" validate:"required,dateonly"`
	ExpiryDate  *string        `json:"expiryDate" validate:"required,dateonly"`
	Status      *LicenseStatus `json:"status" validate:"required,oneof=VALID EXPIRED SUSPENDED REVOKED CONFISCATED LOST/STOLEN"`
	Code95      *string        `json:"code95" validate:"omitempty,min=1,max=20"`
}

// Fields returns the record's fields in declaration order.
func (c Category) Fields() []wire.Field {
	return []wire.Field{
		{Name: "type", Value: wire.Opt(c.Type)},
		{Name: "description", Value: wire.Opt(c.Description)},
		{Name: "issueDate", Value: wire.Opt(c.IssueDate)},
		{Name: "expiryDate", Value: wire.Opt(c.ExpiryDate)},
		{Name: "status", Value: wire.Opt(c.Status)},
		{Name: "code95", Value: wire.Opt(c.Code95)},
	}
}

// License is a driving license; the id may correspond to the actual EU
// licence number.
type License struct {
	ID          *string    `json:"id" validate:"required,upperid"`
	CountryCode *string    `json:"countryCode" validate:"required,countrycode"`
	Category    []Category `json:"category" validate:"notnil,dive"`
}

// Fields returns the record's fields in declaration order.
func (l License) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(l.ID)},
		{Name: "countryCode", Value: wire.Opt(l.CountryCode)},
		{Name: "category", Value: wire.Records(l.Category)},
	}
}

// TrafficViolation is one recorded traffic violation of a driver.
type TrafficViolation struct {
	ID             *int     `json:"id" validate:"required,gte=1"`
	Description    *string  `json:"description" validate:"required,min=1,max=100"`
	Code           *string  `json:"code" validate:"required,min=1,max=20"`
	CountryCode    *string  `json:"countryCode" validate:"required,countrycode"`
	Fine           *float64 `json:"fine" validate:"omitempty,gte=0"`
	PaymentDueDate *string  `json:"paymentDueDate" validate:"omitempty,dateonly"`
	PaymentDate    *string  `json:"paymentDate" validate:"omitempty,dateonly"`
	IsPayed        *bool    `json:"isPayed" validate:"omitempty"`
	ValidityPoints *int     `json:"validityPoints" validate:"omitempty,gte=0"`
	Payload        Payload  `json:"payload" validate:"-"`
}

// Fields returns the record's fields in declaration order.
func (t TrafficViolation) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(t.ID)},
		{Name: "description", Value: wire.Opt(t.Description)},
		{Name: "code", Value: wire.Opt(t.Code)},
		{Name: "countryCode", Value: wire.Opt(t.CountryCode)},
		{Name: "fine", Value: wire.Opt(t.Fine)},
		{Name: "paymentDueDate", Value: wire.Opt(t.PaymentDueDate)},
		{Name: "paymentDate", Value: wire.Opt(t.PaymentDate)},
		{Name: "isPayed", Value: wire.Opt(t.IsPayed)},
		{Name: "validityPoints", Value: wire.Opt(t.ValidityPoints)},
		{Name: "payload", Value: t.Payload},
	}
}

// ExceededTimeLimits quantifies how far a driving time limit was exceeded.
type ExceededTimeLimits struct {
	Type    *string `json:"type" validate:"omitempty,min=1,max=20"`
	Hours   *int    `json:"hours" validate:"required,gte=0"`
	Minutes *int    `json:"minutes" validate:"required,gte=0,lte=59"`
	Seconds *int    `json:"seconds" validate:"required,gte=0,lte=59"`
}

// Fields returns the record's fields in declaration order.
func (e ExceededTimeLimits) Fields() []wire.Field {
	return []wire.Field{
		{Name: "type", Value: wire.Opt(e.Type)},
		{Name: "hours", Value: wire.Opt(e.Hours)},
		{Name: "minutes", Value: wire.Opt(e.Minutes)},
		{Name: "seconds", Value: wire.Opt(e.Seconds)},
	}
}

// DrivingInterval is one recorded driving interval of a tachograph card.
type DrivingInterval struct {
	StartDateTime *string              `json:"startDateTime" validate:"required,datetimeutc"`
	EndDateTime   *string              `json:"endDateTime" validate:"required,datetimeutc"`
	Etl           []ExceededTimeLimits `json:"etl" validate:"omitempty,dive"`
}

// Fields returns the record's fields in declaration order.
func (d DrivingInterval) Fields() []wire.Field {
	return []wire.Field{
		{Name: "startDateTime", Value: wire.Opt(d.StartDateTime)},
		{Name: "endDateTime", Value: wire.Opt(d.EndDateTime)},
		{Name: "etl", Value: wire.Records(d.Etl)},
	}
}

// TachographCard is a driver's tachograph card with its recorded driving
// intervals.
type TachographCard struct {
	ID              *string           `json:"id" validate:"required,upperid"`
	DrivingInterval []DrivingInterval `json:"drivingInterval" validate:"notnil,dive"`
}

// Fields returns the record's fields in declaration order.
func (t TachographCard) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(t.ID)},
		{Name: "drivingInterval", Value: wire.Records(t.DrivingInterval)},
	}
}

// Driver is the driver assigned to a transport operation. Its natural
// external key is (countryCode, vat).
type Driver struct {
	ID               *int               `json:"id" validate:"required,gte=1"`
	FirstName        *string            `json:"firstName" validate:"required,min=1,max=20"`
	LastName         *string            `json:"lastName" validate:"required,min=1,max=20"`
	CountryCode      *string            `json:"countryCode" validate:"required,countrycode"`
	Vat              *string            `json:"vat" validate:"required,min=2,max=13"`
	License          *License           `json:"license" validate:"required"`
	TrafficViolation []TrafficViolation `json:"trafficViolation" validate:"omitempty,dive"`
	TachographCard   []TachographCard   `json:"tachographCard" validate:"omitempty,dive"`
}

// Fields returns the record's fields in declaration order.
func (d Driver) Fields() []wire.Field {
	return []wire.Field{
		{Name: "id", Value: wire.Opt(d.ID)},
		{Name: "firstName", Value: wire.Opt(d.FirstName)},
		{Name: "lastName", Value: wire.Opt(d.LastName)},
		{Name: "countryCode", Value: wire.Opt(d.CountryCode)},
		{Name: "vat", Value: wire.Opt(d.Vat)},
		{Name: "license", Value: wire.Opt(d.License)},
		{Name: "trafficViolation", Value: wire.Records(d.TrafficViolation)},
		{Name: "tachographCard", Value: wire.Records(d.TachographCard)},
	}
}
