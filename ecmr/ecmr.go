package ecmr

import (
	"github.com/google/uuid"

	"github.com/aethongr/keystone-api-standard/wire"
)

// EcmrStatus is the lifecycle status of an e-CMR waybill.
type EcmrStatus string

const (
	EcmrStatusNew         EcmrStatus = "NEW"
	EcmrStatusLoading     EcmrStatus = "LOADING"
	EcmrStatusInTransport EcmrStatus = "IN_TRANSPORT"
	EcmrStatusDelivered   EcmrStatus = "DELIVERED"
)

// Token returns the underlying string token.
func (s EcmrStatus) Token() string { return string(s) }

// EcmrModel is one e-CMR electronic consignment note. The consignment body
// is the only required part; the id is issued at creation time.
type EcmrModel struct {
	EcmrID          *string          `json:"ecmrId" validate:"omitempty"`
	EcmrConsignment *EcmrConsignment `json:"ecmrConsignment" validate:"required"`
	EcmrStatus      *EcmrStatus      `json:"ecmrStatus" validate:"omitempty,oneof=NEW LOADING IN_TRANSPORT DELIVERED"`
	CreatedAt       *string          `json:"createdAt" validate:"omitempty,datetimeutc"`
	CreatedBy       *string          `json:"createdBy" validate:"omitempty"`
	EditedAt        *string          `json:"editedAt" validate:"omitempty,datetimeutc"`
	EditedBy        *string          `json:"editedBy" validate:"omitempty"`
	OriginURL       *string          `json:"originUrl" validate:"omitempty"`
}

// Fields returns the record's fields in declaration order.
func (e EcmrModel) Fields() []wire.Field {
	return []wire.Field{
		{Name: "ecmrId", Value: wire.Opt(e.EcmrID)},
		{Name: "ecmrConsignment", Value: wire.Opt(e.EcmrConsignment)},
		{Name: "ecmrStatus", Value: wire.Opt(e.EcmrStatus)},
		{Name: "createdAt", Value: wire.Opt(e.CreatedAt)},
		{Name: "createdBy", Value: wire.Opt(e.CreatedBy)},
		{Name: "editedAt", Value: wire.Opt(e.EditedAt)},
		{Name: "editedBy", Value: wire.Opt(e.EditedBy)},
		{Name: "originUrl", Value: wire.Opt(e.OriginURL)},
	}
}

// NewID issues an opaque e-CMR identifier. In a full deployment this comes
// from an external issuance service; the demo server assigns one locally.
func NewID() string {
	return uuid.NewString()
}
