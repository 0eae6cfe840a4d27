package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aethongr/keystone-api-standard/internal"
	"github.com/aethongr/keystone-api-standard/schema"
)

func ip(v int) *int { return &v }

func sp(v string) *string { return &v }

func testVehicle(cc, plate string) schema.Vehicle {
	return schema.Vehicle{
		ID:          ip(1),
		CountryCode: sp(cc),
		PlateNumber: sp(plate),
		Owner:       &schema.Owner{ID: ip(1), Name: sp("ACME")},
		Insurance:   []schema.Insurance{},
		Revision:    []schema.Revision{},
	}
}

func TestVehicleStore_CRUD(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenVehicleStore(dir, internal.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, s.Add(testVehicle("IT", "AB123CD")))

	got, err := s.ByPlate("IT", "AB123CD")
	require.NoError(t, err)
	assert.Equal(t, "AB123CD", *got.PlateNumber)

	_, err = s.ByPlate("IT", "ZZ999ZZ")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Add(testVehicle("IT", "AB123CD"))
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Same plate under a different country is a different key.
	require.NoError(t, s.Add(testVehicle("FR", "AB123CD")))
	assert.Len(t, s.All(), 2)

	updated := testVehicle("IT", "AB123CD")
	updated.Model = sp("Actros")
	require.NoError(t, s.Replace("IT", "AB123CD", updated))
	got, err = s.ByPlate("IT", "AB123CD")
	require.NoError(t, err)
	assert.Equal(t, "Actros", *got.Model)

	require.NoError(t, s.Delete("IT", "AB123CD"))
	_, err = s.ByPlate("IT", "AB123CD")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete("IT", "AB123CD"), ErrNotFound)
}

func TestVehicleStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	log := internal.NewNopLogger()

	s, err := OpenVehicleStore(dir, log)
	require.NoError(t, err)
	require.NoError(t, s.Add(testVehicle("IT", "AB123CD")))

	_, err = os.Stat(filepath.Join(dir, "vehicle.json"))
	require.NoError(t, err)

	reopened, err := OpenVehicleStore(dir, log)
	require.NoError(t, err)
	got, err := reopened.ByPlate("IT", "AB123CD")
	require.NoError(t, err)
	assert.Equal(t, 1, *got.ID)
}

func TestDriverStore_ByVat(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenDriverStore(dir, internal.NewNopLogger())
	require.NoError(t, err)

	d := schema.Driver{
		ID:          ip(1),
		FirstName:   sp("Anna"),
		LastName:    sp("Rossi"),
		CountryCode: sp("IT"),
		Vat:         sp("12345678901"),
		License: &schema.License{
			ID:          sp("AB12345"),
			CountryCode: sp("IT"),
			Category:    []schema.Category{},
		},
	}
	require.NoError(t, s.Add(d))

	got, err := s.ByVat("IT", "12345678901")
	require.NoError(t, err)
	assert.Equal(t, "Rossi", *got.LastName)

	_, err = s.ByVat("FR", "12345678901")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransportOperationStore_Filters(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenTransportOperationStore(dir, internal.NewNopLogger())
	require.NoError(t, err)

	op := func(id, operatorID, driverID int, plate string) schema.TransportOperation {
		return schema.TransportOperation{
			ID:       ip(id),
			Operator: &schema.Organization{ID: ip(operatorID)},
			Driver:   &schema.Driver{ID: ip(driverID)},
			Vehicle:  &schema.Vehicle{CountryCode: sp("IT"), PlateNumber: sp(plate)},
		}
	}
	require.NoError(t, s.Add(op(1, 10, 100, "AA111AA")))
	require.NoError(t, s.Add(op(2, 10, 200, "BB222BB")))
	require.NoError(t, s.Add(op(3, 20, 100, "CC333CC")))

	assert.Len(t, s.All(0, 0), 3)
	assert.Len(t, s.All(10, 0), 2)
	assert.Len(t, s.All(0, 100), 2)
	assert.Len(t, s.All(10, 100), 1)

	got, err := s.ByPlate("IT", "BB222BB")
	require.NoError(t, err)
	assert.Equal(t, 2, *got.ID)

	_, err = s.ByPlate("DE", "BB222BB")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEcmrStore_ByID(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenEcmrStore(dir, internal.NewNopLogger())
	require.NoError(t, err)

	_, err = s.ByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
