package models

import "time"

// Organisation is a property management company or estate agency.
// It is the root of all row-level scoping: every landlord, property,
// tenant and lease is reachable from exactly one organisation.
type Organisation struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"company_name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	CountryID   int64     `json:"country_id"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	DateCreated time.Time `json:"date_created"`
}
