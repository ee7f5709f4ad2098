package dtos

// PortalSummary is the dashboard headline for the caller's
// organisation.
type PortalSummary struct {
	Tenants    int `json:"tenants"`
	Portfolios int `json:"portfolios"`
	Managers   int `json:"managers"`
	Properties int `json:"properties"`
}

// FormOptions feeds the front-end dropdowns.
type FormOptions struct {
	PropertyTypes      []string `json:"property_types"`
	IDTypes            []string `json:"id_types"`
	AccommodationTypes []string `json:"accommodation_types"`
}
