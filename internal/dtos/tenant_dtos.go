package dtos

import "github.com/TerrenceTakunda/ekpm/internal/models"

// TenantRequest is the create/update payload. The property comes from
// the route; lease_id is only ever written by lease creation.
type TenantRequest struct {
	TenantName         string  `json:"tenant_name" validate:"required"`
	TradingAsListName  string  `json:"trading_as_list_name" validate:"required"`
	IdentificationType string  `json:"identification_type" validate:"required"`
	Identification     string  `json:"identification" validate:"required"`
	Email1             string  `json:"email_1" validate:"required,email"`
	Email2             *string `json:"email_2,omitempty" validate:"omitempty,email"`
	Phone1             string  `json:"phone_1" validate:"required"`
	Phone2             *string `json:"phone_2,omitempty"`
	PostalAddress      string  `json:"postal_address" validate:"required"`
	DomicileAddress    *string `json:"domicile_address,omitempty"`
	NationalityID      int64   `json:"nationality_id" validate:"required,gt=0"`
	Details            string  `json:"details"`
}

func (r *TenantRequest) ToModel(propertyID int64) *models.Tenant {
	return &models.Tenant{
		TenantName:         r.TenantName,
		TradingAsListName:  r.TradingAsListName,
		PropertyID:         propertyID,
		IdentificationType: r.IdentificationType,
		Identification:     r.Identification,
		Email1:             r.Email1,
		Email2:             r.Email2,
		Phone1:             r.Phone1,
		Phone2:             r.Phone2,
		PostalAddress:      r.PostalAddress,
		DomicileAddress:    r.DomicileAddress,
		NationalityID:      r.NationalityID,
		Details:            r.Details,
	}
}

// Apply copies the updatable fields; property_id and lease_id stay.
func (r *TenantRequest) Apply(t *models.Tenant) {
	t.TenantName = r.TenantName
	t.TradingAsListName = r.TradingAsListName
	t.IdentificationType = r.IdentificationType
	t.Identification = r.Identification
	t.Email1 = r.Email1
	t.Email2 = r.Email2
	t.Phone1 = r.Phone1
	t.Phone2 = r.Phone2
	t.PostalAddress = r.PostalAddress
	t.DomicileAddress = r.DomicileAddress
	t.NationalityID = r.NationalityID
	t.Details = r.Details
}
