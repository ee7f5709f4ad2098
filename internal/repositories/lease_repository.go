package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type LeaseRepository interface {
	// Create inserts the lease and points the tenant's lease_id at it,
	// in one transaction. Either both land or neither does.
	Create(ctx context.Context, l *models.Lease) error

	GetByID(ctx context.Context, id, orgID int64) (*models.Lease, error)
	GetByTenant(ctx context.Context, tenantID, orgID int64) (*models.Lease, error)

	Update(ctx context.Context, l *models.Lease) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type leaseRepo struct {
	db DB
}

func NewLeaseRepository(db DB) LeaseRepository {
	return &leaseRepo{db: db}
}

func (r *leaseRepo) Create(ctx context.Context, l *models.Lease) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// The unique constraint on tenant_lessee_id rejects a concurrent
	// second lease for the same tenant here, inside the transaction.
	err = tx.QueryRow(ctx, `
        INSERT INTO leases (
            tenant_lessee_id, tenant_representative, tenant_representative_capacity,
            owner_lessor_id, owner_representative, owner_representative_capacity,
            organization_managing_id, created_by_manager_id,
            premise_id, property_unit_id, entire_property,
            lease_starts, occupation_date, lease_ends, lease_indefinite_thereafter,
            rent_review_date, annual_rent_review_date, rent_review_notes,
            monthly_rent_amount, monthly_rate,
            escalation_percentage, recovery_percentage, monthly_recovery_amount,
            recovery_notes, cash_deposit_amount, bank_guarantee_amount, deposit_notes,
            lease_documentation_fee, late_payment_interest_percentage,
            is_active, date_created, last_updated
        ) VALUES (
            $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,
            $19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29, TRUE, NOW(), NOW()
        )
        RETURNING id, is_active, date_created, last_updated
    `,
		l.TenantLesseeID, l.TenantRepresentative, l.TenantRepresentativeCapacity,
		l.OwnerLessorID, l.OwnerRepresentative, l.OwnerRepresentativeCapacity,
		l.OrganizationManagingID, l.CreatedByManagerID,
		l.PremiseID, l.PropertyUnitID, l.EntireProperty,
		l.LeaseStarts, l.OccupationDate, l.LeaseEnds, l.LeaseIndefiniteThereafter,
		l.RentReviewDate, l.AnnualRentReviewDate, l.RentReviewNotes,
		l.MonthlyRentAmount, l.MonthlyRate,
		l.EscalationPercentage, l.RecoveryPercentage, l.MonthlyRecoveryAmount,
		l.RecoveryNotes, l.CashDepositAmount, l.BankGuaranteeAmount, l.DepositNotes,
		l.LeaseDocumentationFee, l.LatePaymentInterestPercentage,
	).Scan(&l.ID, &l.IsActive, &l.DateCreated, &l.LastUpdated)
	if err != nil {
		return err
	}

	// Propagate the denormalized back-reference. Zero rows here means
	// the tenant vanished mid-flight: a data-integrity failure, so the
	// whole creation rolls back.
	tag, err := tx.Exec(ctx,
		`UPDATE tenants SET lease_id=$1, last_updated=NOW() WHERE id=$2`,
		l.ID, l.TenantLesseeID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		err = fmt.Errorf("link lease %d to tenant %d: %w", l.ID, l.TenantLesseeID, utils.ErrTenantNotLinked)
		return err
	}

	return nil
}

func (r *leaseRepo) GetByID(ctx context.Context, id, orgID int64) (*models.Lease, error) {
	row := r.db.QueryRow(ctx,
		baseSelectLease()+" WHERE id=$1 AND organization_managing_id=$2", id, orgID)
	return scanLease(row)
}

func (r *leaseRepo) GetByTenant(ctx context.Context, tenantID, orgID int64) (*models.Lease, error) {
	row := r.db.QueryRow(ctx,
		baseSelectLease()+" WHERE tenant_lessee_id=$1 AND organization_managing_id=$2", tenantID, orgID)
	return scanLease(row)
}

// Update changes lease terms only. The derived links (tenant, lessor,
// organisation, creating manager) and the tenant back-reference are
// fixed at creation.
func (r *leaseRepo) Update(ctx context.Context, l *models.Lease) error {
	_, err := r.db.Exec(ctx, `
        UPDATE leases SET
            tenant_representative=$1, tenant_representative_capacity=$2,
            owner_representative=$3, owner_representative_capacity=$4,
            premise_id=$5, property_unit_id=$6, entire_property=$7,
            lease_starts=$8, occupation_date=$9, lease_ends=$10,
            lease_indefinite_thereafter=$11,
            rent_review_date=$12, annual_rent_review_date=$13, rent_review_notes=$14,
            monthly_rent_amount=$15, monthly_rate=$16,
            escalation_percentage=$17, recovery_percentage=$18,
            monthly_recovery_amount=$19, recovery_notes=$20,
            cash_deposit_amount=$21, bank_guarantee_amount=$22, deposit_notes=$23,
            lease_documentation_fee=$24, late_payment_interest_percentage=$25,
            is_active=$26, last_updated=NOW()
        WHERE id=$27
    `,
		l.TenantRepresentative, l.TenantRepresentativeCapacity,
		l.OwnerRepresentative, l.OwnerRepresentativeCapacity,
		l.PremiseID, l.PropertyUnitID, l.EntireProperty,
		l.LeaseStarts, l.OccupationDate, l.LeaseEnds,
		l.LeaseIndefiniteThereafter,
		l.RentReviewDate, l.AnnualRentReviewDate, l.RentReviewNotes,
		l.MonthlyRentAmount, l.MonthlyRate,
		l.EscalationPercentage, l.RecoveryPercentage,
		l.MonthlyRecoveryAmount, l.RecoveryNotes,
		l.CashDepositAmount, l.BankGuaranteeAmount, l.DepositNotes,
		l.LeaseDocumentationFee, l.LatePaymentInterestPercentage,
		l.IsActive,
		l.ID,
	)
	return err
}

func baseSelectLease() string {
	return `
        SELECT
            id, tenant_lessee_id, tenant_representative, tenant_representative_capacity,
            owner_lessor_id, owner_representative, owner_representative_capacity,
            organization_managing_id, created_by_manager_id,
            premise_id, property_unit_id, entire_property,
            lease_starts, occupation_date, lease_ends, lease_indefinite_thereafter,
            rent_review_date, annual_rent_review_date, rent_review_notes,
            monthly_rent_amount::text, monthly_rate::text,
            escalation_percentage::text, recovery_percentage::text,
            monthly_recovery_amount::text, recovery_notes,
            cash_deposit_amount::text, bank_guarantee_amount::text, deposit_notes,
            lease_documentation_fee::text, late_payment_interest_percentage::text,
            is_active, date_created, last_updated
        FROM leases
    `
}

func scanLease(row pgx.Row) (*models.Lease, error) {
	var l models.Lease
	err := row.Scan(
		&l.ID,
		&l.TenantLesseeID,
		&l.TenantRepresentative,
		&l.TenantRepresentativeCapacity,
		&l.OwnerLessorID,
		&l.OwnerRepresentative,
		&l.OwnerRepresentativeCapacity,
		&l.OrganizationManagingID,
		&l.CreatedByManagerID,
		&l.PremiseID,
		&l.PropertyUnitID,
		&l.EntireProperty,
		&l.LeaseStarts,
		&l.OccupationDate,
		&l.LeaseEnds,
		&l.LeaseIndefiniteThereafter,
		&l.RentReviewDate,
		&l.AnnualRentReviewDate,
		&l.RentReviewNotes,
		&l.MonthlyRentAmount,
		&l.MonthlyRate,
		&l.EscalationPercentage,
		&l.RecoveryPercentage,
		&l.MonthlyRecoveryAmount,
		&l.RecoveryNotes,
		&l.CashDepositAmount,
		&l.BankGuaranteeAmount,
		&l.DepositNotes,
		&l.LeaseDocumentationFee,
		&l.LatePaymentInterestPercentage,
		&l.IsActive,
		&l.DateCreated,
		&l.LastUpdated,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}
