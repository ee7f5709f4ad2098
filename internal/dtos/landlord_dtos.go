package dtos

import "github.com/TerrenceTakunda/ekpm/internal/models"

// LandLordRequest is the create/update payload. managed_by is never
// accepted from the client; it is stamped from the caller's
// organisation.
type LandLordRequest struct {
	Name               string `json:"name" validate:"required"`
	Phone              string `json:"phone" validate:"required"`
	Address            string `json:"address" validate:"required"`
	City               string `json:"city" validate:"required"`
	CountryID          int64  `json:"country_id" validate:"required,gt=0"`
	IdentificationType string `json:"identification_type" validate:"required"`
	Identification     string `json:"identification" validate:"required"`
	NationalityID      int64  `json:"nationality_id" validate:"required,gt=0"`
	Bank               string `json:"bank"`
	BankBranch         string `json:"bank_branch"`
	BankAccountNumber  string `json:"bank_account_number"`
	Details            string `json:"details"`
	Representative     string `json:"representative"`
}

func (r *LandLordRequest) ToModel() *models.LandLord {
	return &models.LandLord{
		Name:               r.Name,
		Phone:              r.Phone,
		Address:            r.Address,
		City:               r.City,
		CountryID:          r.CountryID,
		IdentificationType: r.IdentificationType,
		Identification:     r.Identification,
		NationalityID:      r.NationalityID,
		Bank:               r.Bank,
		BankBranch:         r.BankBranch,
		BankAccountNumber:  r.BankAccountNumber,
		Details:            r.Details,
		Representative:     r.Representative,
	}
}

// Apply copies the updatable fields onto an existing record, leaving
// id, ownership and timestamps alone.
func (r *LandLordRequest) Apply(l *models.LandLord) {
	l.Name = r.Name
	l.Phone = r.Phone
	l.Address = r.Address
	l.City = r.City
	l.CountryID = r.CountryID
	l.IdentificationType = r.IdentificationType
	l.Identification = r.Identification
	l.NationalityID = r.NationalityID
	l.Bank = r.Bank
	l.BankBranch = r.BankBranch
	l.BankAccountNumber = r.BankAccountNumber
	l.Details = r.Details
	l.Representative = r.Representative
}
