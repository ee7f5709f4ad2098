package dtos

import "github.com/TerrenceTakunda/ekpm/internal/models"

// LeaseRequest carries the negotiated lease terms. The tenant, lessor,
// organisation and creating manager are all derived server-side from
// the route and the caller; exactly one of premise_id, property_unit_id
// and entire_property must be selected.
type LeaseRequest struct {
	TenantRepresentative         *string `json:"tenant_representative,omitempty"`
	TenantRepresentativeCapacity *string `json:"tenant_representative_capacity,omitempty"`
	OwnerRepresentative          *string `json:"owner_representative,omitempty"`
	OwnerRepresentativeCapacity  *string `json:"owner_representative_capacity,omitempty"`

	PremiseID      *int64 `json:"premise_id,omitempty" validate:"omitempty,gt=0"`
	PropertyUnitID *int64 `json:"property_unit_id,omitempty" validate:"omitempty,gt=0"`
	EntireProperty bool   `json:"entire_property"`

	LeaseStarts               string  `json:"lease_starts" validate:"required,datetime=2006-01-02"`
	OccupationDate            string  `json:"occupation_date" validate:"required,datetime=2006-01-02"`
	LeaseEnds                 *string `json:"lease_ends,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LeaseIndefiniteThereafter bool    `json:"lease_indefinite_thereafter"`

	RentReviewDate       string  `json:"rent_review_date" validate:"required,datetime=2006-01-02"`
	AnnualRentReviewDate string  `json:"annual_rent_review_date" validate:"required,datetime=2006-01-02"`
	RentReviewNotes      *string `json:"rent_review_notes,omitempty"`

	MonthlyRentAmount     string  `json:"monthly_rent_amount" validate:"required,numeric"`
	MonthlyRate           string  `json:"monthly_rate" validate:"required,numeric"`
	EscalationPercentage  string  `json:"escalation_percentage" validate:"required,numeric"`
	RecoveryPercentage    string  `json:"recovery_percentage" validate:"required,numeric"`
	MonthlyRecoveryAmount string  `json:"monthly_recovery_amount" validate:"required,numeric"`
	RecoveryNotes         *string `json:"recovery_notes,omitempty"`

	CashDepositAmount   string  `json:"cash_deposit_amount" validate:"omitempty,numeric"`
	BankGuaranteeAmount string  `json:"bank_guarantee_amount" validate:"omitempty,numeric"`
	DepositNotes        *string `json:"deposit_notes,omitempty"`

	LeaseDocumentationFee         string `json:"lease_documentation_fee" validate:"omitempty,numeric"`
	LatePaymentInterestPercentage string `json:"late_payment_interest_percentage" validate:"omitempty,numeric"`
}

// ToModel builds a lease holding only the client-supplied terms; the
// service fills the derived links before persisting.
func (r *LeaseRequest) ToModel() (*models.Lease, error) {
	leaseStarts, err := parseDate(r.LeaseStarts)
	if err != nil {
		return nil, err
	}
	occupation, err := parseDate(r.OccupationDate)
	if err != nil {
		return nil, err
	}
	leaseEnds, err := parseDatePtr(r.LeaseEnds)
	if err != nil {
		return nil, err
	}
	rentReview, err := parseDate(r.RentReviewDate)
	if err != nil {
		return nil, err
	}
	annualRentReview, err := parseDate(r.AnnualRentReviewDate)
	if err != nil {
		return nil, err
	}

	return &models.Lease{
		TenantRepresentative:         r.TenantRepresentative,
		TenantRepresentativeCapacity: r.TenantRepresentativeCapacity,
		OwnerRepresentative:          r.OwnerRepresentative,
		OwnerRepresentativeCapacity:  r.OwnerRepresentativeCapacity,

		PremiseID:      r.PremiseID,
		PropertyUnitID: r.PropertyUnitID,
		EntireProperty: r.EntireProperty,

		LeaseStarts:               leaseStarts,
		OccupationDate:            occupation,
		LeaseEnds:                 leaseEnds,
		LeaseIndefiniteThereafter: r.LeaseIndefiniteThereafter,

		RentReviewDate:       rentReview,
		AnnualRentReviewDate: annualRentReview,
		RentReviewNotes:      r.RentReviewNotes,

		MonthlyRentAmount:     r.MonthlyRentAmount,
		MonthlyRate:           r.MonthlyRate,
		EscalationPercentage:  r.EscalationPercentage,
		RecoveryPercentage:    r.RecoveryPercentage,
		MonthlyRecoveryAmount: r.MonthlyRecoveryAmount,
		RecoveryNotes:         r.RecoveryNotes,

		CashDepositAmount:   orZero(r.CashDepositAmount),
		BankGuaranteeAmount: orZero(r.BankGuaranteeAmount),
		DepositNotes:        r.DepositNotes,

		LeaseDocumentationFee:         orZero(r.LeaseDocumentationFee),
		LatePaymentInterestPercentage: orZero(r.LatePaymentInterestPercentage),
	}, nil
}

// Apply copies the updatable terms onto an existing lease; the derived
// links and the tenant back-reference are fixed at creation.
func (r *LeaseRequest) Apply(l *models.Lease) error {
	next, err := r.ToModel()
	if err != nil {
		return err
	}
	next.ID = l.ID
	next.TenantLesseeID = l.TenantLesseeID
	next.OwnerLessorID = l.OwnerLessorID
	next.OrganizationManagingID = l.OrganizationManagingID
	next.CreatedByManagerID = l.CreatedByManagerID
	next.IsActive = l.IsActive
	next.DateCreated = l.DateCreated
	next.LastUpdated = l.LastUpdated
	*l = *next
	return nil
}
