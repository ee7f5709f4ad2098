package models

import "time"

// LandLord is a property owner whose portfolio is managed by an
// organisation. ManagedByID is always stamped server-side from the
// creating manager's organisation; it has no default.
type LandLord struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	CountryID          int64     `json:"country_id"`
	IdentificationType string    `json:"identification_type"`
	Identification     string    `json:"identification"`
	NationalityID      int64     `json:"nationality_id"`
	Bank               string    `json:"bank"`
	BankBranch         string    `json:"bank_branch"`
	BankAccountNumber  string    `json:"bank_account_number"`
	Details            string    `json:"details,omitempty"`
	Representative     string    `json:"representative,omitempty"`
	ManagedByID        int64     `json:"managed_by_id"`
	DateCreated        time.Time `json:"date_created"`
	LastUpdated        time.Time `json:"last_updated"`
	IsActive           bool      `json:"is_active"`
}
