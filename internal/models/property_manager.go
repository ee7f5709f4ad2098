package models

// PropertyManager links one user to the single organisation they act for.
// A user has at most one manager record.
type PropertyManager struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"user_id"`
	OrganisationID int64  `json:"organisation_id"`
	Details        string `json:"details,omitempty"`
}
