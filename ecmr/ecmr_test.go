package ecmr_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aethongr/keystone-api-standard/ecmr"
	"github.com/aethongr/keystone-api-standard/schema"
	"github.com/aethongr/keystone-api-standard/wire"
)

func TestNewID(t *testing.T) {
	a, b := ecmr.NewID(), ecmr.NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestDecode_MinimalWaybill(t *testing.T) {
	reg := schema.NewRegistry()

	e, err := schema.Decode[ecmr.EcmrModel](reg, []byte(`{"ecmrConsignment": {}}`))
	require.NoError(t, err)
	assert.NotNil(t, e.EcmrConsignment)
	assert.Nil(t, e.EcmrID)
}

func TestDecode_ConsignmentRequired(t *testing.T) {
	reg := schema.NewRegistry()

	_, err := schema.Decode[ecmr.EcmrModel](reg, []byte(`{"ecmrStatus": "NEW"}`))
	require.Error(t, err)
	verrs, ok := err.(schema.ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Equal(t, "ecmrConsignment", verrs[0].Path)
	assert.Equal(t, schema.MissingRequiredField, verrs[0].Kind)
}

func TestDecode_StatusEnum(t *testing.T) {
	reg := schema.NewRegistry()

	_, err := schema.Decode[ecmr.EcmrModel](reg, []byte(`{
		"ecmrConsignment": {},
		"ecmrStatus": "PARKED"
	}`))
	require.Error(t, err)
	verrs := err.(schema.ValidationErrors)
	require.Len(t, verrs, 1)
	assert.Equal(t, schema.EnumViolation, verrs[0].Kind)
}

func TestDecode_NestedSignatureTimestamp(t *testing.T) {
	reg := schema.NewRegistry()

	_, err := schema.Decode[ecmr.EcmrModel](reg, []byte(`{
		"ecmrConsignment": {
			"goodsReceived": {
				"consigneeSignature": {"timestamp": "yesterday"}
			}
		}
	}`))
	require.Error(t, err)
	verrs := err.(schema.ValidationErrors)
	require.Len(t, verrs, 1)
	assert.Equal(t, "ecmrConsignment.goodsReceived.consigneeSignature.timestamp", verrs[0].Path)
	assert.Equal(t, schema.PatternViolation, verrs[0].Kind)
}

func TestDecode_MultiConsigneeFlagRequired(t *testing.T) {
	reg := schema.NewRegistry()

	// The block itself is optional, but once present its flag is required.
	_, err := schema.Decode[ecmr.EcmrModel](reg, []byte(`{
		"ecmrConsignment": {"multiConsigneeShipment": {}}
	}`))
	require.Error(t, err)
	verrs := err.(schema.ValidationErrors)
	require.Len(t, verrs, 1)
	assert.Equal(t, "ecmrConsignment.multiConsigneeShipment.isMultiConsigneeShipment", verrs[0].Path)
}

func TestNormalize_WaybillKeyOrder(t *testing.T) {
	reg := schema.NewRegistry()

	e, err := schema.Decode[ecmr.EcmrModel](reg, []byte(`{
		"ecmrConsignment": {"sendersInstructions": {"transportInstructionsDescription": "keep upright"}},
		"ecmrStatus": "LOADING"
	}`))
	require.NoError(t, err)

	m := wire.Normalize(*e).(*wire.Map)
	assert.Equal(t, []string{
		"ecmrId", "ecmrConsignment", "ecmrStatus",
		"createdAt", "createdBy", "editedAt", "editedBy", "originUrl",
	}, m.Keys())

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ecmrStatus":"LOADING"`)
	assert.Contains(t, string(data), `"ecmrId":null`)
}
