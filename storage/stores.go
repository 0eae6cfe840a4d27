package storage

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/aethongr/keystone-api-standard/ecmr"
	"github.com/aethongr/keystone-api-standard/schema"
)

func strOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOf(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// VehicleStore holds vehicles keyed by (countryCode, plateNumber).
type VehicleStore struct {
	c *collection[schema.Vehicle]
}

// OpenVehicleStore opens vehicle.json under dir.
func OpenVehicleStore(dir string, log zerolog.Logger) (*VehicleStore, error) {
	c, err := openCollection[schema.Vehicle](filepath.Join(dir, "vehicle.json"), log)
	if err != nil {
		return nil, err
	}
	return &VehicleStore{c: c}, nil
}

func vehicleKey(countryCode, plateNumber string) func(schema.Vehicle) bool {
	return func(v schema.Vehicle) bool {
		return strOf(v.CountryCode) == countryCode && strOf(v.PlateNumber) == plateNumber
	}
}

// Add inserts a vehicle; the plate key must be free.
func (s *VehicleStore) Add(v schema.Vehicle) error {
	return s.c.add(v, vehicleKey(strOf(v.CountryCode), strOf(v.PlateNumber)))
}

// All returns every vehicle.
func (s *VehicleStore) All() []schema.Vehicle { return s.c.all() }

// ByPlate looks a vehicle up by its natural key.
func (s *VehicleStore) ByPlate(countryCode, plateNumber string) (schema.Vehicle, error) {
	return s.c.find(vehicleKey(countryCode, plateNumber))
}

// Replace swaps the vehicle stored under the key for a fresh record.
func (s *VehicleStore) Replace(countryCode, plateNumber string, v schema.Vehicle) error {
	return s.c.replace(vehicleKey(countryCode, plateNumber), v)
}

// Delete removes the vehicle stored under the key.
func (s *VehicleStore) Delete(countryCode, plateNumber string) error {
	return s.c.remove(vehicleKey(countryCode, plateNumber))
}

// DriverStore holds drivers keyed by (countryCode, vat).
type DriverStore struct {
	c *collection[schema.Driver]
}

// OpenDriverStore opens driver.json under dir.
func OpenDriverStore(dir string, log zerolog.Logger) (*DriverStore, error) {
	c, err := openCollection[schema.Driver](filepath.Join(dir, "driver.json"), log)
	if err != nil {
		return nil, err
	}
	return &DriverStore{c: c}, nil
}

func driverKey(countryCode, vat string) func(schema.Driver) bool {
	return func(d schema.Driver) bool {
		return strOf(d.CountryCode) == countryCode && strOf(d.Vat) == vat
	}
}

// Add inserts a driver; the (countryCode, vat) key must be free.
func (s *DriverStore) Add(d schema.Driver) error {
	return s.c.add(d, driverKey(strOf(d.CountryCode), strOf(d.Vat)))
}

// All returns every driver.
func (s *DriverStore) All() []schema.Driver { return s.c.all() }

// ByVat looks a driver up by its natural key.
func (s *DriverStore) ByVat(countryCode, vat string) (schema.Driver, error) {
	return s.c.find(driverKey(countryCode, vat))
}

// Replace swaps the driver stored under the key for a fresh record.
func (s *DriverStore) Replace(countryCode, vat string, d schema.Driver) error {
	return s.c.replace(driverKey(countryCode, vat), d)
}

// Delete removes the driver stored under the key.
func (s *DriverStore) Delete(countryCode, vat string) error {
	return s.c.remove(driverKey(countryCode, vat))
}

// OrganizationStore holds organizations keyed by id.
type OrganizationStore struct {
	c *collection[schema.Organization]
}

// OpenOrganizationStore opens organization.json under dir.
func OpenOrganizationStore(dir string, log zerolog.Logger) (*OrganizationStore, error) {
	c, err := openCollection[schema.Organization](filepath.Join(dir, "organization.json"), log)
	if err != nil {
		return nil, err
	}
	return &OrganizationStore{c: c}, nil
}

func organizationKey(id int) func(schema.Organization) bool {
	return func(o schema.Organization) bool { return intOf(o.ID) == id }
}

// Add inserts an organization; the id must be free.
func (s *OrganizationStore) Add(o schema.Organization) error {
	return s.c.add(o, organizationKey(intOf(o.ID)))
}

// All returns every organization.
func (s *OrganizationStore) All() []schema.Organization { return s.c.all() }

// ByID looks an organization up by id.
func (s *OrganizationStore) ByID(id int) (schema.Organization, error) {
	return s.c.find(organizationKey(id))
}

// Replace swaps the organization stored under id for a fresh record.
func (s *OrganizationStore) Replace(id int, o schema.Organization) error {
	return s.c.replace(organizationKey(id), o)
}

// Delete removes the organization stored under id.
func (s *OrganizationStore) Delete(id int) error {
	return s.c.remove(organizationKey(id))
}

// TransportOperationStore holds transport operations keyed by id.
type TransportOperationStore struct {
	c *collection[schema.TransportOperation]
}

// OpenTransportOperationStore opens transport_operation.json under dir.
func OpenTransportOperationStore(dir string, log zerolog.Logger) (*TransportOperationStore, error) {
	c, err := openCollection[schema.TransportOperation](filepath.Join(dir, "transport_operation.json"), log)
	if err != nil {
		return nil, err
	}
	return &TransportOperationStore{c: c}, nil
}

func operationKey(id int) func(schema.TransportOperation) bool {
	return func(t schema.TransportOperation) bool { return intOf(t.ID) == id }
}

// Add inserts a transport operation; the id must be free.
func (s *TransportOperationStore) Add(t schema.TransportOperation) error {
	return s.c.add(t, operationKey(intOf(t.ID)))
}

// All returns every transport operation, optionally filtered by operator
// and driver id (zero means no filter).
func (s *TransportOperationStore) All(operatorID, driverID int) []schema.TransportOperation {
	return s.c.filter(func(t schema.TransportOperation) bool {
		if operatorID != 0 && (t.Operator == nil || intOf(t.Operator.ID) != operatorID) {
			return false
		}
		if driverID != 0 && (t.Driver == nil || intOf(t.Driver.ID) != driverID) {
			return false
		}
		return true
	})
}

// ByID looks a transport operation up by id.
func (s *TransportOperationStore) ByID(id int) (schema.TransportOperation, error) {
	return s.c.find(operationKey(id))
}

// ByPlate looks the operation up whose vehicle carries the plate key.
func (s *TransportOperationStore) ByPlate(countryCode, plateNumber string) (schema.TransportOperation, error) {
	return s.c.find(func(t schema.TransportOperation) bool {
		return t.Vehicle != nil &&
			strOf(t.Vehicle.CountryCode) == countryCode &&
			strOf(t.Vehicle.PlateNumber) == plateNumber
	})
}

// Replace swaps the operation stored under id for a fresh record.
func (s *TransportOperationStore) Replace(id int, t schema.TransportOperation) error {
	return s.c.replace(operationKey(id), t)
}

// Delete removes the operation stored under id.
func (s *TransportOperationStore) Delete(id int) error {
	return s.c.remove(operationKey(id))
}

// EcmrStore holds e-CMR waybills keyed by their issued id.
type EcmrStore struct {
	c *collection[ecmr.EcmrModel]
}

// OpenEcmrStore opens ecmr.json under dir.
func OpenEcmrStore(dir string, log zerolog.Logger) (*EcmrStore, error) {
	c, err := openCollection[ecmr.EcmrModel](filepath.Join(dir, "ecmr.json"), log)
	if err != nil {
		return nil, err
	}
	return &EcmrStore{c: c}, nil
}

func ecmrKey(id string) func(ecmr.EcmrModel) bool {
	return func(e ecmr.EcmrModel) bool { return strOf(e.EcmrID) == id }
}

// Add inserts a waybill under its issued id.
func (s *EcmrStore) Add(e ecmr.EcmrModel) error {
	return s.c.add(e, ecmrKey(strOf(e.EcmrID)))
}

// ByID looks a waybill up by its issued id.
func (s *EcmrStore) ByID(id string) (ecmr.EcmrModel, error) {
	return s.c.find(ecmrKey(id))
}

// Replace swaps the waybill stored under id for a fresh record.
func (s *EcmrStore) Replace(id string, e ecmr.EcmrModel) error {
	return s.c.replace(ecmrKey(id), e)
}

// Delete removes the waybill stored under id.
func (s *EcmrStore) Delete(id string) error {
	return s.c.remove(ecmrKey(id))
}
