package ecmr

import "github.com/aethongr/keystone-api-standard/wire"

// SenderContactInformation is the sender's contact block.
type SenderContactInformation struct {
	Email *string `json:"email" validate:"omitempty,max=255"`
	Phone *string `json:"phone" validate:"omitempty,phone"`
}

// Fields returns the record's fields in declaration order.
func (s SenderContactInformation) Fields() []wire.Field {
	return []wire.Field{
		{Name: "email", Value: wire.Opt(s.Email)},
		{Name: "phone", Value: wire.Opt(s.Phone)},
	}
}

// SenderCountryCode is the sender's country, an ISO code plus a free-text
// region distinct from the code itself.
type SenderCountryCode struct {
	Region *string `json:"region" validate:"omitempty,min=2,max=60"`
	Value  *string `json:"value" validate:"omitempty,isocountry"`
}

// Fields returns the record's fields in declaration order.
func (s SenderCountryCode) Fields() []wire.Field {
	return []wire.Field{
		{Name: "region", Value: wire.Opt(s.Region)},
		{Name: "value", Value: wire.Opt(s.Value)},
	}
}

// SenderInformation identifies the sender of the goods.
type SenderInformation struct {
	SenderCompanyName        *string                   `json:"senderCompanyName" validate:"omitempty"`
	SenderPersonName         *string                   `json:"senderPersonName" validate:"omitempty,min=2,max=60"`
	SenderStreet             *string                   `json:"senderStreet" validate:"omitempty,min=2,max=255"`
	SenderPostcode           *string                   `json:"senderPostcode" validate:"omitempty,min=2,max=17"`
	SenderCity               *string                   `json:"senderCity" validate:"omitempty,min=2,max=60"`
	SenderCountryCode        *SenderCountryCode        `json:"senderCountryCode" validate:"omitempty"`
	SenderContactInformation *SenderContactInformation `json:"senderContactInformation" validate:"omitempty"`
}

// Fields returns the record's fields in declaration order.
func (s SenderInformation) Fields() []wire.Field {
	return []wire.Field{
		{Name: "senderCompanyName", Value: wire.Opt(s.SenderCompanyName)},
		{Name: "senderPersonName", Value: wire.Opt(s.SenderPersonName)},
		{Name: "senderStreet", Value: wire.Opt(s.SenderStreet)},
		{Name: "senderPostcode", Value: wire.Opt(s.SenderPostcode)},
		{Name: "senderCity", Value: wire.Opt(s.SenderCity)},
		{Name: "senderCountryCode", Value: wire.Opt(s.SenderCountryCode)},
		{Name: "senderContactInformation", Value: wire.Opt(s.SenderContactInformation)},
	}
}

// ConsigneeContactInformation is the consignee's contact block.
type ConsigneeContactInformation struct {
	Email *string `json:"email" validate:"omitempty,max=255"`
	Phone *string `json:"phone" validate:"omitempty,phone"`
}

// Fields returns the record's fields in declaration order.
func (c ConsigneeContactInformation) Fields() []wire.Field {
	return []wire.Field{
		{Name: "email", Value: wire.Opt(c.Email)},
		{Name: "phone", Value: wire.Opt(c.Phone)},
	}
}

// ConsigneeCountryCode is the consignee's country code and region.
type ConsigneeCountryCode struct {
	Region *string `json:"region" validate:"omitempty,min=2,max=60"`
	Value  *string `json:"value" validate:"omitempty,isocountry"`
}

// Fields returns the record's fields in declaration order.
func (c ConsigneeCountryCode) Fields() []wire.Field {
	return []wire.Field{
		{Name: "region", Value: wire.Opt(c.Region)},
		{Name: "value", Value: wire.Opt(c.Value)},
	}
}

// ConsigneeInformation identifies the receiver of the goods.
type ConsigneeInformation struct {
	ConsigneeCompanyName        *string                      `json:"consigneeCompanyName" validate:"omitempty"`
	ConsigneePersonName         *string                      `json:"consigneePersonName" validate:"omitempty,min=2,max=60"`
	ConsigneePostcode           *string                      `json:"consigneePostcode" validate:"omitempty,min=2,max=17"`
	ConsigneeCity               *string                      `json:"consigneeCity" validate:"omitempty,min=2,max=60"`
	ConsigneeCountryCode        *ConsigneeCountryCode        `json:"consigneeCountryCode" validate:"omitempty"`
	ConsigneeStreet             *string                      `json:"consigneeStreet" validate:"omitempty,min=2,max=255"`
	ConsigneeContactInformation *ConsigneeContactInformation `json:"consigneeContactInformation" validate:"omitempty"`
}

// Fields returns the record's fields in declaration order.
func (c ConsigneeInformation) Fields() []wire.Field {
	return []wire.Field{
		{Name: "consigneeCompanyName", Value: wire.Opt(c.ConsigneeCompanyName)},
		{Name: "consigneePersonName", Value: wire.Opt(c.ConsigneePersonName)},
		{Name: "consigneePostcode", Value: wire.Opt(c.ConsigneePostcode)},
		{Name: "consigneeCity", Value: wire.Opt(c.ConsigneeCity)},
		{Name: "consigneeCountryCode", Value: wire.Opt(c.ConsigneeCountryCode)},
		{Name: "consigneeStreet", Value: wire.Opt(c.ConsigneeStreet)},
		{Name: "consigneeContactInformation", Value: wire.Opt(c.ConsigneeContactInformation)},
	}
}

// CarrierContactInformation is the carrier's contact block, with separate
// numbers for the company and the driver.
type CarrierContactInformation struct {
	Email        *string `json:"email" validate:"omitempty,max=255"`
	CarrierPhone *string `json:"carrierPhone" validate:"omitempty,phone"`
	DriverPhone  *string `json:"driverPhone" validate:"omitempty,phone"`
}

// Fields returns the record's fields in declaration order.
func (c CarrierContactInformation) Fields() []wire.Field {
	return []wire.Field{
		{Name: "email", Value: wire.Opt(c.Email)},
		{Name: "carrierPhone", Value: wire.Opt(c.CarrierPhone)},
		{Name: "driverPhone", Value: wire.Opt(c.DriverPhone)},
	}
}

// CarrierCountryCode is the carrier's country code and region.
type CarrierCountryCode struct {
	Region *string `json:"region" validate:"omitempty,min=2,max=60"`
	Value  *string `json:"value" validate:"omitempty,isocountry"`
}

// Fields returns the record's fields in declaration order.
func (c CarrierCountryCode) Fields() []wire.Field {
	return []wire.Field{
		{Name: "region", Value: wire.Opt(c.Region)},
		{Name: "value", Value: wire.Opt(c.Value)},
	}
}

// CarrierInformation identifies the carrier performing the transport.
type CarrierInformation struct {
	CarrierCompanyName        *string                    `json:"carrierCompanyName" validate:"omitempty"`
	CarrierDriverName         *string                    `json:"carrierDriverName" validate:"omitempty,min=2,max=60"`
	CarrierStreet             *string                    `json:"carrierStreet" validate:"omitempty,min=2,max=255"`
	CarrierPostcode           *string                    `json:"carrierPostcode" validate:"omitempty,min=2,max=17"`
	CarrierCity               *string                    `json:"carrierCity" validate:"omitempty,min=2,max=60"`
	CarrierCountryCode        *CarrierCountryCode        `json:"carrierCountryCode" validate:"omitempty"`
	CarrierLicensePlate       *string                    `json:"carrierLicensePlate" validate:"omitempty,min=2,max=30"`
	CarrierContactInformation *CarrierContactInformation `json:"carrierContactInformation" validate:"omitempty"`
}

// Fields returns the record's fields in declaration order.
func (c CarrierInformation) Fields() []wire.Field {
	return []wire.Field{
		{Name: "carrierCompanyName", Value: wire.Opt(c.CarrierCompanyName)},
		{Name: "carrierDriverName", Value: wire.Opt(c.CarrierDriverName)},
		{Name: "carrierStreet", Value: wire.Opt(c.CarrierStreet)},
		{Name: "carrierPostcode", Value: wire.Opt(c.CarrierPostcode)},
		{Name: "carrierCity", Value: wire.Opt(c.CarrierCity)},
		{Name: "carrierCountryCode", Value: wire.Opt(c.CarrierCountryCode)},
		{Name: "carrierLicensePlate", Value: wire.Opt(c.CarrierLicensePlate)},
		{Name: "carrierContactInformation", Value: wire.Opt(c.CarrierContactInformation)},
	}
}

// SuccessiveCarrierContactInformation is the contact block of a successive
// carrier.
type SuccessiveCarrierContactInformation struct {
	Email        *string `json:"email" validate:"omitempty,max=255"`
	CarrierPhone *string `json:"carrierPhone" validate:"omitempty,phone"`
	DriverPhone  *string `json:"driverPhone" validate:"omitempty,phone"`
}

// Fields returns the record's fields in declaration order.
func (s SuccessiveCarrierContactInformation) Fields() []wire.Field {
	return []wire.Field{
		{Name: "email", Value: wire.Opt(s.Email)},
		{Name: "carrierPhone", Value: wire.Opt(s.CarrierPhone)},
		{Name: "driverPhone", Value: wire.Opt(s.DriverPhone)},
	}
}

// SuccessiveCarrierCountryCode is the successive carrier's country code and
// region.
type SuccessiveCarrierCountryCode struct {
	Region *string `json:"region" validate:"omitempty,min=2,max=60"`
	Value  *string `json:"value" validate:"omitempty,isocountry"`
}

// Fields returns the record's fields in declaration order.
func (s SuccessiveCarrierCountryCode) Fields() []wire.Field {
	return []wire.Field{
		{Name: "region", Value: wire.Opt(s.Region)},
		{Name: "value", Value: wire.Opt(s.Value)},
	}
}

// SuccessiveCarrierInformation identifies a carrier that takes over the
// goods along the route.
type SuccessiveCarrierInformation struct {
	SuccessiveCarrierCity               *string                              `json:"successiveCarrierCity" validate:"omitempty,min=2,max=60"`
	SuccessiveCarrierCountryCode        *SuccessiveCarrierCountryCode        `json:"successiveCarrierCountryCode" validate:"omitempty"`
	SuccessiveCarrierCompanyName        *string                              `json:"successiveCarrierCompanyName" validate:"omitempty"`
	SuccessiveCarrierDriverName         *string                              `json:"successiveCarrierDriverName" validate:"omitempty,min=2,max=60"`
	SuccessiveCarrierPostcode           *string                              `json:"successiveCarrierPostcode" validate:"omitempty,min=2,max=17"`
	SuccessiveCarrierStreet             *string                              `json:"successiveCarrierStreet" validate:"omitempty,min=2,max=255"`
	SuccessiveCarrierContactInformation *SuccessiveCarrierContactInformation `json:"successiveCarrierContactInformation" validate:"omitempty"`
}

// Fields returns the record's fields in declaration order.
func (s SuccessiveCarrierInformation) Fields() []wire.Field {
	return []wire.Field{
		{Name: "successiveCarrierCity", Value: wire.Opt(s.SuccessiveCarrierCity)},
		{Name: "successiveCarrierCountryCode", Value: wire.Opt(s.SuccessiveCarrierCountryCode)},
		{Name: "successiveCarrierCompanyName", Value: wire.Opt(s.SuccessiveCarrierCompanyName)},
		{Name: "successiveCarrierDriverName", Value: wire.Opt(s.SuccessiveCarrierDriverName)},
		{Name: "successiveCarrierPostcode", Value: wire.Opt(s.SuccessiveCarrierPostcode)},
		{Name: "successiveCarrierStreet", Value: wire.Opt(s.SuccessiveCarrierStreet)},
		{Name: "successiveCarrierContactInformation", Value: wire.Opt(s.SuccessiveCarrierContactInformation)},
	}
}

// Signature is an electronic signature captured on the waybill.
type Signature struct {
	Type         *string `json:"type" validate:"omitempty"`
	UserName     *string `json:"userName" validate:"omitempty"`
	UserCompany  *string `json:"userCompany" validate:"omitempty"`
	UserStreet   *string `json:"userStreet" validate:"omitempty"`
	UserPostCode *string `json:"userPostCode" validate:"omitempty"`
	UserCity     *string `json:"userCity" validate:"omitempty"`
	UserCountry  *string `json:"userCountry" validate:"omitempty"`
	Timestamp    *string `json:"timestamp" validate:"omitempty,datetimeutc"`
	Data         *string `json:"data" validate:"omitempty"`
}

// Fields returns the record's fields in declaration order.
func (s Signature) Fields() []wire.Field {
	return []wire.Field{
		{Name: "type", Value: wire.Opt(s.Type)},
		{Name: "userName", Value: wire.Opt(s.UserName)},
		{Name: "userCompany", Value: wire.Opt(s.UserCompany)},
		{Name: "userStreet", Value: wire.Opt(s.UserStreet)},
		{Name: "userPostCode", Value: wire.Opt(s.UserPostCode)},
		{Name: "userCity", Value: wire.Opt(s.UserCity)},
		{Name: "userCountry", Value: wire.Opt(s.UserCountry)},
		{Name: "timestamp", Value: wire.Opt(s.Timestamp)},
		{Name: "data", Value: wire.Opt(s.Data)},
	}
}
