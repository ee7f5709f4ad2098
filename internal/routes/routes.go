package routes

const (
	// Health
	Health = "/health"

	// ───────────────────────────────
	// Auth (public)
	// ───────────────────────────────
	AuthLogin    = "/api/v1/auth/login"
	AuthRegister = "/api/v1/auth/register"

	// ───────────────────────────────
	// Manager portal (secured)
	// ───────────────────────────────
	ManagerBase = "/api/v1/manager"

	PortalHome    = "/api/v1/manager/portal/home"
	PortalOptions = "/api/v1/manager/portal/options"
	Countries     = "/api/v1/manager/countries"

	LandLords    = "/api/v1/manager/landlords"
	LandLordByID = "/api/v1/manager/landlords/{id:[0-9]+}"

	Properties   = "/api/v1/manager/properties"
	PropertyByID = "/api/v1/manager/properties/{prop:[0-9]+}"

	PropertyUnits       = "/api/v1/manager/properties/{prop:[0-9]+}/units"
	PropertyUnitByID    = "/api/v1/manager/properties/{prop:[0-9]+}/units/{id:[0-9]+}"
	PropertyPremises    = "/api/v1/manager/properties/{prop:[0-9]+}/premises"
	PropertyPremiseByID = "/api/v1/manager/properties/{prop:[0-9]+}/premises/{id:[0-9]+}"

	PropertyTenants    = "/api/v1/manager/properties/{prop:[0-9]+}/tenants"
	PropertyTenantByID = "/api/v1/manager/properties/{prop:[0-9]+}/tenants/{ten:[0-9]+}"
	AllTenants         = "/api/v1/manager/tenants"

	TenantLease = "/api/v1/manager/properties/{prop:[0-9]+}/tenants/{ten:[0-9]+}/lease"
	LeaseByID   = "/api/v1/manager/leases/{id:[0-9]+}"
)
