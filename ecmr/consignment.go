package ecmr

import "github.com/aethongr/keystone-api-standard/wire"

// MultiConsigneeShipment flags a shipment with more than one consignee.
// This is the only required leaf in the consignment body.
type MultiConsigneeShipment struct {
	IsMultiConsigneeShipment *bool `json:"isMultiConsigneeShipment" validate:"required"`
}

// Fields returns the record's fields in declaration order.
func (m MultiConsigneeShipment) Fields() []wire.Field {
	return []wire.Field{{Name: "isMultiConsigneeShipment", Value: wire.Opt(m.IsMultiConsigneeShipment)}}
}

// TakingOverTheGoods records where and when the carrier took the goods over.
type TakingOverTheGoods struct {
	TakingOverTheGoodsPlace          *string `json:"takingOverTheGoodsPlace" validate:"omitempty,min=2,max=60"`
	LogisticsTimeOfArrivalDateTime   *string `json:"logisticsTimeOfArrivalDateTime" validate:"omitempty,datetimeutc"`
	LogisticsTimeOfDepartureDateTime *string `json:"logisticsTimeOfDepartureDateTime" validate:"omitempty,datetimeutc"`
}

// Fields returns the record's fields in declaration order.
func (t TakingOverTheGoods) Fields() []wire.Field {
	return []wire.Field{
		{Name: "takingOverTheGoodsPlace", Value: wire.Opt(t.TakingOverTheGoodsPlace)},
		{Name: "logisticsTimeOfArrivalDateTime", Value: wire.Opt(t.LogisticsTimeOfArrivalDateTime)},
		{Name: "logisticsTimeOfDepartureDateTime", Value: wire.Opt(t.LogisticsTimeOfDepartureDateTime)},
	}
}

// DeliveryOfTheGoods names the delivery location and its opening hours.
type DeliveryOfTheGoods struct {
	LogisticsLocationCity         *string `json:"logisticsLocationCity" validate:"omitempty,min=2,max=60"`
	LogisticsLocationOpeningHours *string `json:"logisticsLocationOpeningHours" validate:"omitempty,min=2,max=255"`
}

// Fields returns the record's fields in declaration order.
func (d DeliveryOfTheGoods) Fields() []wire.Field {
	return []wire.Field{
		{Name: "logisticsLocationCity", Value: wire.Opt(d.LogisticsLocationCity)},
		{Name: "logisticsLocationOpeningHours", Value: wire.Opt(d.LogisticsLocationOpeningHours)},
	}
}

// SendersInstructions carries transport instructions from the sender.
type SendersInstructions struct {
	TransportInstructionsDescription *string `json:"transportInstructionsDescription" validate:"omitempty,min=2,max=512"`
}

// Fields returns the record's fields in declaration order.
func (s SendersInstructions) Fields() []wire.Field {
	return []wire.Field{{Name: "transportInstructionsDescription", Value: wire.Opt(s.TransportInstructionsDescription)}}
}

// CarriersReservationsAndObservationsOnTakingOverTheGoods records the
// carrier's reservations at takeover, optionally countersigned.
type CarriersReservationsAndObservationsOnTakingOverTheGoods struct {
	CarrierReservationsObservations         *string    `json:"carrierReservationsObservations" validate:"omitempty,min=2,max=512"`
	SenderReservationsObservationsSignature *Signature `json:"senderReservationsObservationsSignature" validate:"omitempty"`
}

// Fields returns the record's fields in declaration order.
func (c CarriersReservationsAndObservationsOnTakingOverTheGoods) Fields() []wire.Field {
	return []wire.Field{
		{Name: "carrierReservationsObservations", Value: wire.Opt(c.CarrierReservationsObservations)},
		{Name: "senderReservationsObservationsSignature", Value: wire.Opt(c.SenderReservationsObservationsSignature)},
	}
}

// DocumentsHandedToCarrier lists remarks about documents handed over with
// the goods.
type DocumentsHandedToCarrier struct {
	DocumentsRemarks *string `json:"documentsRemarks" validate:"omitempty,min=2,max=512"`
}

// Fields returns the record's fields in declaration order.
func (d DocumentsHandedToCarrier) Fields() []wire.Field {
	return []wire.Field{{Name: "documentsRemarks", Value: wire.Opt(d.DocumentsRemarks)}}
}

// SpecialAgreementsSenderCarrier is a free-text agreement between sender
// and carrier.
type SpecialAgreementsSenderCarrier struct {
	CustomSpecialAgreement *string `json:"customSpecialAgreement" validate:"omitempty,min=2,max=255"`
}

// Fields returns the record's fields in declaration order.
func (s SpecialAgreementsSenderCarrier) Fields() []wire.Field {
	return []wire.Field{{Name: "customSpecialAgreement", Value: wire.Opt(s.CustomSpecialAgreement)}}
}

// Payer designates which party pays a custom charge.
type Payer string

const (
	PayerSender    Payer = "SENDER"
	PayerConsignee Payer = "CONSIGNEE"
)

// Token returns the underlying string token.
func (p Payer) Token() string { return string(p) }

// CustomCharge is one charge entry with its currency and paying party.
type CustomCharge struct {
	Value    *float64 `json:"value" validate:"omitempty,gte=0,lte=99999"`
	Currency *string  `json:"currency" validate:"omitempty,min=2,max=512"`
	Payer    *Payer   `json:"payer" validate:"omitempty,oneof=SENDER CONSIGNEE"`
}

// Fields returns the record's fields in declaration order.
func (c CustomCharge) Fields() []wire.Field {
	return []wire.Field{
		{Name: "value", Value: wire.Opt(c.Value)},
		{Name: "currency", Value: wire.Opt(c.Currency)},
		{Name: "payer", Value: wire.Opt(c.Payer)},
	}
}

// ToBePaidBy allocates the charge categories of the transport.
type ToBePaidBy struct {
	CustomChargeCarriage      *CustomCharge `json:"customChargeCarriage" validate:"omitempty"`
	CustomChargeSupplementary *CustomCharge `json:"customChargeSupplementary" validate:"omitempty"`
	CustomChargeCustomsDuties *CustomCharge `json:"customChargeCustomsDuties" validate:"omitempty"`
	CustomChargeOther         *CustomCharge `json:"customChargeOther" validate:"omitempty"`
}

// Fields returns the record's fields in declaration order.
func (t ToBePaidBy) Fields() []wire.Field {
	return []wire.Field{
		{Name: "customChargeCarriage", Value: wire.Opt(t.CustomChargeCarriage)},
		{Name: "customChargeSupplementary", Value: wire.Opt(t.CustomChargeSupplementary)},
		{Name: "customChargeCustomsDuties", Value: wire.Opt(t.CustomChargeCustomsDuties)},
		{Name: "customChargeOther", Value: wire.Opt(t.CustomChargeOther)},
	}
}

// OtherUsefulParticulars is a free-text remarks block.
type OtherUsefulParticulars struct {
	CustomParticulars *string `json:"customParticulars" validate:"omitempty,min=2,max=512"`
}

// Fields returns the record's fields in declaration order.
func (o OtherUsefulParticulars) Fields() []wire.Field {
	return []wire.Field{{Name: "customParticulars", Value: wire.Opt(o.CustomParticulars)}}
}

// CashOnDelivery is the amount to collect on delivery.
type CashOnDelivery struct {
	CustomCashOnDelivery *float64 `json:"customCashOnDelivery" validate:"omitempty,gte=0,lte=999999"`
}

// Fields returns the record's fields in declaration order.
func (c CashOnDelivery) Fields() []wire.Field {
	return []wire.Field{{Name: "customCashOnDelivery", Value: wire.Opt(c.CustomCashOnDelivery)}}
}

// Established records where and when the waybill was established.
type Established struct {
	CustomEstablishedDate *string `json:"customEstablishedDate" validate:"omitempty,datetimeutc"`
	CustomEstablishedIn   *string `json:"customEstablishedIn" validate:"omitempty,min=2,max=30"`
}

// Fields returns the record's fields in declaration order.
func (e Established) Fields() []wire.Field {
	return []wire.Field{
		{Name: "customEstablishedDate", Value: wire.Opt(e.CustomEstablishedDate)},
		{Name: "customEstablishedIn", Value: wire.Opt(e.CustomEstablishedIn)},
	}
}

// GoodsReceived records the consignee's confirmation of delivery.
type GoodsReceived struct {
	ConfirmedLogisticsLocationName    *string    `json:"confirmedLogisticsLocationName" validate:"omitempty,min=2,max=60"`
	ConsigneeReservationsObservations *string    `json:"consigneeReservationsObservations" validate:"omitempty,min=2,max=512"`
	ConsigneeSignature                *Signature `json:"consigneeSignature" validate:"omitempty"`
	ConsigneeSignatureDate            *string    `json:"consigneeSignatureDate" validate:"omitempty,datetimeutc"`
	ConsigneeTimeOfArrival            *string    `json:"consigneeTimeOfArrival" validate:"omitempty,datetimeutc"`
	ConsigneeTimeOfDeparture          *string    `json:"consigneeTimeOfDeparture" validate:"omitempty,datetimeutc"`
}

// Fields returns the record's fields in declaration order.
func (g GoodsReceived) Fields() []wire.Field {
	return []wire.Field{
		{Name: "confirmedLogisticsLocationName", Value: wire.Opt(g.ConfirmedLogisticsLocationName)},
		{Name: "consigneeReservationsObservations", Value: wire.Opt(g.ConsigneeReservationsObservations)},
		{Name: "consigneeSignature", Value: wire.Opt(g.ConsigneeSignature)},
		{Name: "consigneeSignatureDate", Value: wire.Opt(g.ConsigneeSignatureDate)},
		{Name: "consigneeTimeOfArrival", Value: wire.Opt(g.ConsigneeTimeOfArrival)},
		{Name: "consigneeTimeOfDeparture", Value: wire.Opt(g.ConsigneeTimeOfDeparture)},
	}
}

// NonContractualPartReservedForTheCarrier carries non-contractual carrier
// remarks.
type NonContractualPartReservedForTheCarrier struct {
	NonContractualCarrierRemarks *string `json:"nonContractualCarrierRemarks" validate:"omitempty,min=2,max=512"`
}

// Fields returns the record's fields in declaration order.
func (n NonContractualPartReservedForTheCarrier) Fields() []wire.Field {
	return []wire.Field{{Name: "nonContractualCarrierRemarks", Value: wire.Opt(n.NonContractualCarrierRemarks)}}
}

// ReferenceIdentificationNumber is the waybill's external reference number.
type ReferenceIdentificationNumber struct {
	Value *string `json:"value" validate:"omitempty,min=1,max=35"`
}

// Fields returns the record's fields in declaration order.
func (r ReferenceIdentificationNumber) Fields() []wire.Field {
	return []wire.Field{{Name: "value", Value: wire.Opt(r.Value)}}
}

// EcmrConsignment is the consignment body of an e-CMR waybill. Every
// sub-structure is optional.
type EcmrConsignment struct {
	SenderInformation            *SenderInformation            `json:"senderInformation" validate:"omitempty"`
	MultiConsigneeShipment       *MultiConsigneeShipment       `json:"multiConsigneeShipment" validate:"omitempty"`
	ConsigneeInformation         *ConsigneeInformation         `json:"consigneeInformation" validate:"omitempty"`
	TakingOverTheGoods           *TakingOverTheGoods           `json:"takingOverTheGoods" validate:"omitempty"`
	DeliveryOfTheGoods           *DeliveryOfTheGoods           `json:"deliveryOfTheGoods" validate:"omitempty"`
	SendersInstructions          *SendersInstructions          `json:"sendersInstructions" validate:"omitempty"`
	CarrierInformation           *CarrierInformation           `json:"carrierInformation" validate:"omitempty"`
	SuccessiveCarrierInformation *SuccessiveCarrierInformation `json:"successiveCarrierInformation" validate:"omitempty"`

	CarriersReservationsAndObservationsOnTakingOverTheGoods *CarriersReservationsAndObservationsOnTakingOverTheGoods `json:"carriersReservationsAndObservationsOnTakingOverTheGoods" validate:"omitempty"`

	DocumentsHandedToCarrier       *DocumentsHandedToCarrier       `json:"documentsHandedToCarrier" validate:"omitempty"`
	ItemList                       []Item                          `json:"itemList" validate:"omitempty,dive"`
	SpecialAgreementsSenderCarrier *SpecialAgreementsSenderCarrier `json:"specialAgreementsSenderCarrier" validate:"omitempty"`
	ToBePaidBy                     *ToBePaidBy                     `json:"toBePaidBy" validate:"omitempty"`
	OtherUsefulParticulars         *OtherUsefulParticulars         `json:"otherUsefulParticulars" validate:"omitempty"`
	CashOnDelivery                 *CashOnDelivery                 `json:"cashOnDelivery" validate:"omitempty"`
	Established                    *Established                    `json:"established" validate:"omitempty"`
	GoodsReceived                  *GoodsReceived                  `json:"goodsReceived" validate:"omitempty"`

	NonContractualPartReservedForTheCarrier *NonContractualPartReservedForTheCarrier `json:"nonContractualPartReservedForTheCarrier" validate:"omitempty"`
	ReferenceIdentificationNumber           *ReferenceIdentificationNumber           `json:"referenceIdentificationNumber" validate:"omitempty"`
}

// Fields returns the record's fields in declaration order.
func (c EcmrConsignment) Fields() []wire.Field {
	return []wire.Field{
		{Name: "senderInformation", Value: wire.Opt(c.SenderInformation)},
		{Name: "multiConsigneeShipment", Value: wire.Opt(c.MultiConsigneeShipment)},
		{Name: "consigneeInformation", Value: wire.Opt(c.ConsigneeInformation)},
		{Name: "takingOverTheGoods", Value: wire.Opt(c.TakingOverTheGoods)},
		{Name: "deliveryOfTheGoods", Value: wire.Opt(c.DeliveryOfTheGoods)},
		{Name: "sendersInstructions", Value: wire.Opt(c.SendersInstructions)},
		{Name: "carrierInformation", Value: wire.Opt(c.CarrierInformation)},
		{Name: "successiveCarrierInformation", Value: wire.Opt(c.SuccessiveCarrierInformation)},
		{Name: "carriersReservationsAndObservationsOnTakingOverTheGoods", Value: wire.Opt(c.CarriersReservationsAndObservationsOnTakingOverTheGoods)},
		{Name: "documentsHandedToCarrier", Value: wire.Opt(c.DocumentsHandedToCarrier)},
		{Name: "itemList", Value: wire.Records(c.ItemList)},
		{Name: "specialAgreementsSenderCarrier", Value: wire.Opt(c.SpecialAgreementsSenderCarrier)},
		{Name: "toBePaidBy", Value: wire.Opt(c.ToBePaidBy)},
		{Name: "otherUsefulParticulars", Value: wire.Opt(c.OtherUsefulParticulars)},
		{Name: "cashOnDelivery", Value: wire.Opt(c.CashOnDelivery)},
		{Name: "established", Value: wire.Opt(c.Established)},
		{Name: "goodsReceived", Value: wire.Opt(c.GoodsReceived)},
		{Name: "nonContractualPartReservedForTheCarrier", Value: wire.Opt(c.NonContractualPartReservedForTheCarrier)},
		{Name: "referenceIdentificationNumber", Value: wire.Opt(c.ReferenceIdentificationNumber)},
	}
}
