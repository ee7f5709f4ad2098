package models

import "time"

// Lease binds one tenant (the authoritative side of the tenant<->lease
// relationship) to either a single subdivision or an entire property,
// under one landlord and one managing organisation.
//
// Exactly one of PremiseID, PropertyUnitID, EntireProperty must be set;
// the service layer rejects anything else before persisting.
type Lease struct {
	ID                            int64      `json:"id"`
	TenantLesseeID                int64      `json:"tenant_lessee_id"`
	TenantRepresentative          *string    `json:"tenant_representative,omitempty"`
	TenantRepresentativeCapacity  *string    `json:"tenant_representative_capacity,omitempty"`
	OwnerLessorID                 int64      `json:"owner_lessor_id"`
	OwnerRepresentative           *string    `json:"owner_representative,omitempty"`
	OwnerRepresentativeCapacity   *string    `json:"owner_representative_capacity,omitempty"`
	OrganizationManagingID        int64      `json:"organization_managing_id"`
	CreatedByManagerID            int64      `json:"created_by_manager_id"`
	PremiseID                     *int64     `json:"premise_id,omitempty"`
	PropertyUnitID                *int64     `json:"property_unit_id,omitempty"`
	EntireProperty                bool       `json:"entire_property"`
	LeaseStarts                   time.Time  `json:"lease_starts"`
	OccupationDate                time.Time  `json:"occupation_date"`
	LeaseEnds                     *time.Time `json:"lease_ends,omitempty"`
	LeaseIndefiniteThereafter     bool       `json:"lease_indefinite_thereafter"`
	RentReviewDate                time.Time  `json:"rent_review_date"`
	AnnualRentReviewDate          time.Time  `json:"annual_rent_review_date"`
	RentReviewNotes               *string    `json:"rent_review_notes,omitempty"`
	MonthlyRentAmount             string     `json:"monthly_rent_amount"`
	MonthlyRate                   string     `json:"monthly_rate"`
	EscalationPercentage          string     `json:"escalation_percentage"`
	RecoveryPercentage            string     `json:"recovery_percentage"`
	MonthlyRecoveryAmount         string     `json:"monthly_recovery_amount"`
	RecoveryNotes                 *string    `json:"recovery_notes,omitempty"`
	CashDepositAmount             string     `json:"cash_deposit_amount"`
	BankGuaranteeAmount           string     `json:"bank_guarantee_amount"`
	DepositNotes                  *string    `json:"deposit_notes,omitempty"`
	LeaseDocumentationFee         string     `json:"lease_documentation_fee"`
	LatePaymentInterestPercentage string     `json:"late_payment_interest_percentage"`
	IsActive                      bool       `json:"is_active"`
	DateCreated                   time.Time  `json:"date_created"`
	LastUpdated                   time.Time  `json:"last_updated"`
}

// CoverageCount counts how many coverage selectors are set; the
// exclusivity invariant requires exactly 1.
func (l *Lease) CoverageCount() int {
	n := 0
	if l.PremiseID != nil {
		n++
	}
	if l.PropertyUnitID != nil {
		n++
	}
	if l.EntireProperty {
		n++
	}
	return n
}
