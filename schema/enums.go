package schema

// Mode is the mode of a location.
type Mode string

const (
	ModeGeneric  Mode = "GENERIC"
	ModeGate     Mode = "GATE"
	ModeTerminal Mode = "TERMINAL"
	ModePort     Mode = "PORT"
	ModeAirport  Mode = "AIRPORT"
	ModeStation  Mode = "STATION"
)

// Token returns the underlying string token.
func (m Mode) Token() string { return string(m) }

// LicenseType is an EU driving-license category class.
type LicenseType string

const (
	LicenseTypeAM  LicenseType = "AM"
	LicenseTypeA   LicenseType = "A"
	LicenseTypeA1  LicenseType = "A1"
	LicenseTypeA2  LicenseType = "A2"
	LicenseTypeB   LicenseType = "B"
	LicenseTypeBE  LicenseType = "BE"
	LicenseTypeB1  LicenseType = "B1"
	LicenseTypeC1  LicenseType = "C1"
	LicenseTypeC1E LicenseType = "C1E"
	LicenseTypeC   LicenseType = "C"
	LicenseTypeCE  LicenseType = "CE"
	LicenseTypeD1  LicenseType = "D1"
	LicenseTypeD1E LicenseType = "D1E"
	LicenseTypeD   LicenseType = "D"
	LicenseTypeDE  LicenseType = "DE"
)

// Token returns the underlying string token.
func (t LicenseType) Token() string { return string(t) }

// LicenseStatus is the status of a driving-license category.
type LicenseStatus string

const (
	LicenseStatusValid       LicenseStatus = "VALID"
	LicenseStatusExpired     LicenseStatus = "EXPIRED"
	LicenseStatusSuspended   LicenseStatus = "SUSPENDED"
	LicenseStatusRevoked     LicenseStatus = "REVOKED"
	LicenseStatusConfiscated LicenseStatus = "CONFISCATED"
	LicenseStatusLostStolen  LicenseStatus = "LOST/STOLEN"
)

// Token returns the underlying string token.
func (s LicenseStatus) Token() string { return string(s) }

// PhaseState is the lifecycle state of a transport-operation phase.
type PhaseState string

const (
	PhaseStatePlanning             PhaseState = "PLANNING"
	PhaseStateInProgress           PhaseState = "IN_PROGRESS"
	PhaseStateArrivedAtPickup      PhaseState = "ARRIVED_AT_PICKUP"
	PhaseStateArrivedAtDestination PhaseState = "ARRIVED_AT_DESTINATION"
	PhaseStateLoading              PhaseState = "LOADING"
	PhaseStateUnloading            PhaseState = "UNLOADING"
	PhaseStateInTransit            PhaseState = "IN_TRANSIT"
	PhaseStateCompleted            PhaseState = "COMPLETED"
	PhaseStateDelayed              PhaseState = "DELAYED"
	PhaseStateCanceled             PhaseState = "CANCELED"
)

// Token returns the underlying string token.
func (s PhaseState) Token() string { return string(s) }

// OrganizationType is the role of an organization in a transport operation.
type OrganizationType string

const (
	OrganizationTypeOperator OrganizationType = "OPERATOR"
	OrganizationTypeCustomer OrganizationType = "CUSTOMER"
)

// Token returns the underlying string token.
func (t OrganizationType) Token() string { return string(t) }
