package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aethongr/keystone-api-standard/wire"
)

func validVehicleJSON() []byte {
	return []byte(`{
		"id": 1,
		"countryCode": "IT",
		"plateNumber": "AB123CD",
		"owner": {"id": 1, "name": "ACME"},
		"insurance": [],
		"revision": []
	}`)
}

func decodeErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	require.Error(t, err)
	verrs, ok := err.(ValidationErrors)
	require.True(t, ok, "expected ValidationErrors, got %T: %v", err, err)
	return verrs
}

func findError(verrs ValidationErrors, path string) (FieldError, bool) {
	for _, fe := range verrs {
		if fe.Path == path {
			return fe, true
		}
	}
	return FieldError{}, false
}

func TestDecode_ValidVehicle(t *testing.T) {
	reg := NewRegistry()

	v, err := Decode[Vehicle](reg, validVehicleJSON())
	require.NoError(t, err)
	assert.Equal(t, 1, *v.ID)
	assert.Equal(t, "AB123CD", *v.PlateNumber)
	// Present but empty lists survive as empty, not nil.
	require.NotNil(t, v.Insurance)
	assert.Len(t, v.Insurance, 0)
}

func TestDecode_MissingRequiredField(t *testing.T) {
	reg := NewRegistry()

	_, err := Decode[Vehicle](reg, []byte(`{
		"id": 1,
		"countryCode": "IT",
		"owner": {"id": 1, "name": "ACME"},
		"insurance": [],
		"revision": []
	}`))
	verrs := decodeErrors(t, err)

	fe, ok := findError(verrs, "plateNumber")
	require.True(t, ok)
	assert.Equal(t, MissingRequiredField, fe.Kind)
	assert.Nil(t, fe.Value)
}

func TestDecode_MissingRequiredList(t *testing.T) {
	reg := NewRegistry()

	_, err := Decode[Vehicle](reg, []byte(`{
		"id": 1,
		"countryCode": "IT",
		"plateNumber": "AB123CD",
		"owner": {"id": 1, "name": "ACME"},
		"revision": []
	}`))
	verrs := decodeErrors(t, err)

	fe, ok := findError(verrs, "insurance")
	require.True(t, ok)
	assert.Equal(t, MissingRequiredField, fe.Kind)
}

func TestDecode_NestedPath(t *testing.T) {
	reg := NewRegistry()

	_, err := Decode[Vehicle](reg, []byte(`{
		"id": 1,
		"countryCode": "IT",
		"plateNumber": "AB123CD",
		"owner": {"id": 1},
		"insurance": [],
		"revision": []
	}`))
	verrs := decodeErrors(t, err)

	_, ok := findError(verrs, "owner.name")
	assert.True(t, ok, "expected dotted path owner.name, got %v", verrs)
}

func TestDecode_RangeViolationOnBoundary(t *testing.T) {
	reg := NewRegistry()

	// 90 is the last valid latitude; 95 is out of range.
	_, err := Decode[Geolocation](reg, []byte(`{
		"dateTime": "2024-05-01T10:00:00Z",
		"coordinates": {"latitude": 95, "longitude": 10}
	}`))
	verrs := decodeErrors(t, err)

	fe, ok := findError(verrs, "coordinates.latitude")
	require.True(t, ok)
	assert.Equal(t, RangeViolation, fe.Kind)
	assert.Equal(t, 95.0, fe.Value)

	_, err = Decode[Geolocation](reg, []byte(`{
		"dateTime": "2024-05-01T10:00:00Z",
		"coordinates": {"latitude": 90, "longitude": 10}
	}`))
	assert.NoError(t, err)
}

func TestDecode_LengthViolation(t *testing.T) {
	reg := NewRegistry()

	_, err := Decode[Organization](reg, []byte(`{
		"id": 1,
		"name": "a name well over twenty characters long",
		"countryCode": "IT",
		"type": "OPERATOR"
	}`))
	verrs := decodeErrors(t, err)

	fe, ok := findError(verrs, "name")
	require.True(t, ok)
	assert.Equal(t, LengthViolation, fe.Kind)
}

func TestDecode_EnumViolationIsCaseSensitive(t *testing.T) {
	reg := NewRegistry()

	for _, mode := range []string{"DOCK", "gate"} {
		_, err := Decode[Location](reg, []byte(`{
			"id": 1,
			"countryCode": "IT",
			"description": "north gate",
			"mode": "`+mode+`"
		}`))
		verrs := decodeErrors(t, err)

		fe, ok := findError(verrs, "mode")
		require.True(t, ok, mode)
		assert.Equal(t, EnumViolation, fe.Kind, mode)
	}
}

func TestDecode_PatternViolation(t *testing.T) {
	reg := NewRegistry()

	body := validVehicleJSON()
	_, err := Decode[Vehicle](reg, []byte(`{
		"id": 1,
		"countryCode": "it",
		"plateNumber": "AB123CD",
		"owner": {"id": 1, "name": "ACME"},
		"insurance": [],
		"revision": []
	}`))
	verrs := decodeErrors(t, err)

	fe, ok := findError(verrs, "countryCode")
	require.True(t, ok)
	assert.Equal(t, PatternViolation, fe.Kind)
	assert.Equal(t, "it", fe.Value)

	// The anchored pattern rejects partial matches too.
	_, err = Decode[Vehicle](reg, body)
	assert.NoError(t, err)
}

func TestDecode_UnknownFieldRejected(t *testing.T) {
	reg := NewRegistry()

	_, err := Decode[Organization](reg, []byte(`{
		"id": 1,
		"name": "ACME",
		"countryCode": "IT",
		"type": "OPERATOR",
		"bogus": true
	}`))
	verrs := decodeErrors(t, err)

	fe, ok := findError(verrs, "bogus")
	require.True(t, ok)
	assert.Equal(t, UnknownField, fe.Kind)
}

func TestDecode_TypeMismatch(t *testing.T) {
	reg := NewRegistry()

	_, err := Decode[Organization](reg, []byte(`{
		"id": "one",
		"name": "ACME",
		"countryCode": "IT",
		"type": "OPERATOR"
	}`))
	verrs := decodeErrors(t, err)

	require.Len(t, verrs, 1)
	assert.Equal(t, TypeMismatch, verrs[0].Kind)
	assert.Equal(t, "id", verrs[0].Path)
}

func TestDecode_CollectsAllFailures(t *testing.T) {
	reg := NewRegistry()

	// Missing name and invalid country code fail in the same pass.
	_, err := Decode[Organization](reg, []byte(`{
		"id": 1,
		"countryCode": "italy!",
		"type": "OPERATOR"
	}`))
	verrs := decodeErrors(t, err)
	assert.GreaterOrEqual(t, len(verrs), 2)
}

func TestDecode_PayloadPassthrough(t *testing.T) {
	reg := NewRegistry()

	ph, err := Decode[Phase](reg, []byte(`{
		"id": 1,
		"location": {"id": 1, "countryCode": "IT", "description": "terminal 2", "mode": "TERMINAL"},
		"dateTime": "2024-05-01T10:00:00Z",
		"state": "LOADING",
		"payload": {"customKey": {"deep": [1, 2, 3]}}
	}`))
	require.NoError(t, err)
	assert.Contains(t, ph.Payload, "customKey")
}

func TestDecodeEntity(t *testing.T) {
	reg := NewRegistry()

	rec, err := reg.DecodeEntity("vehicle", validVehicleJSON())
	require.NoError(t, err)
	assert.NotNil(t, rec)

	_, err = reg.DecodeEntity("spaceship", []byte(`{}`))
	assert.Error(t, err)
}

func TestDriver_LicenseStatusTokens(t *testing.T) {
	reg := NewRegistry()

	// LOST/STOLEN is a single token despite the slash.
	_, err := Decode[Category](reg, []byte(`{
		"type": "CE",
		"issueDate": "2020-01-15",
		"expiryDate": "2030-01-15",
		"status": "LOST/STOLEN"
	}`))
	assert.NoError(t, err)

	_, err = Decode[Category](reg, []byte(`{
		"type": "CE",
		"issueDate": "2020-01-15",
		"expiryDate": "2030-01-15",
		"status": "MISPLACED"
	}`))
	verrs := decodeErrors(t, err)
	fe, ok := findError(verrs, "status")
	require.True(t, ok)
	assert.Equal(t, EnumViolation, fe.Kind)
}

func TestDecode_DeepNestedPath(t *testing.T) {
	reg := NewRegistry()

	// The vat bound (13) is violated three levels down from the root.
	_, err := Decode[TransportOperation](reg, []byte(`{
		"id": 1,
		"operator": {"id": 1, "name": "ACME Logistics", "countryCode": "IT", "type": "OPERATOR"},
		"schedule": {"departureDateTime": "2024-05-01T08:00:00Z", "estimatedDateTimeOfArrival": "2024-05-02T18:00:00Z"},
		"driver": {
			"id": 1, "firstName": "Anna", "lastName": "Rossi", "countryCode": "IT", "vat": "12345678901",
			"license": {"id": "AB12345", "countryCode": "IT", "category": []}
		},
		"vehicle": {
			"id": 1,
			"countryCode": "IT",
			"plateNumber": "AB123CD",
			"owner": {"id": 1, "name": "ACME", "vat": "12345678901234"},
			"insurance": [],
			"revision": []
		}
	}`))
	verrs := decodeErrors(t, err)

	fe, ok := findError(verrs, "vehicle.owner.vat")
	require.True(t, ok, "expected full path vehicle.owner.vat, got %v", verrs)
	assert.Equal(t, LengthViolation, fe.Kind)
}

func TestNormalize_LocationCanonicalForm(t *testing.T) {
	reg := NewRegistry()

	loc, err := Decode[Location](reg, []byte(`{
		"id": 3, "countryCode": "USA", "description": "Intl", "mode": "AIRPORT"
	}`))
	require.NoError(t, err)

	m := wire.Normalize(*loc).(*wire.Map)
	assert.Equal(t, []string{"id", "countryCode", "description", "mode", "coordinates"}, m.Keys())

	mode, _ := m.Get("mode")
	assert.Equal(t, "AIRPORT", mode)

	// Absent optional field is present with an explicit null.
	coords, ok := m.Get("coordinates")
	assert.True(t, ok)
	assert.Nil(t, coords)
}

func TestDecode_DateTimePattern(t *testing.T) {
	reg := NewRegistry()

	// A date-only value is not a valid UTC timestamp.
	_, err := Decode[Schedule](reg, []byte(`{
		"departureDateTime": "2024-05-01",
		"estimatedDateTimeOfArrival": "2024-05-02T08:00:00Z"
	}`))
	verrs := decodeErrors(t, err)

	fe, ok := findError(verrs, "departureDateTime")
	require.True(t, ok)
	assert.Equal(t, PatternViolation, fe.Kind)
}
