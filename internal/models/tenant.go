package models

import "time"

// Tenant rents space at a single property.
//
// LeaseID is denormalized: it mirrors the one-to-one tenant_lessee link
// on Lease so tenant-first reads avoid a reverse lookup. It is nil until
// a lease is first created for the tenant; nil is a normal state, not an
// error.
type Tenant struct {
	ID                 int64     `json:"id"`
	TenantName         string    `json:"tenant_name"`
	TradingAsListName  string    `json:"trading_as_list_name"`
	PropertyID         int64     `json:"property_id"`
	IdentificationType string    `json:"identification_type"`
	Identification     string    `json:"identification"`
	Email1             string    `json:"email_1"`
	Email2             *string   `json:"email_2,omitempty"`
	Phone1             string    `json:"phone_1"`
	Phone2             *string   `json:"phone_2,omitempty"`
	PostalAddress      string    `json:"postal_address"`
	DomicileAddress    *string   `json:"domicile_address,omitempty"`
	NationalityID      int64     `json:"nationality_id"`
	Details            string    `json:"details,omitempty"`
	IsActive           bool      `json:"is_active"`
	DateCreated        time.Time `json:"date_created"`
	LastUpdated        time.Time `json:"last_updated"`
	LeaseID            *int64    `json:"lease_id,omitempty"`
}
