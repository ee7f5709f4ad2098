package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/TerrenceTakunda/ekpm/internal/models"
)

/* ------------------------------------------------------------------
   Public interface

   Per-property reads take a property id the caller already resolved
   within scope; the organisation-wide list joins through properties.
------------------------------------------------------------------ */

type TenantRepository interface {
	Create(ctx context.Context, t *models.Tenant) error

	GetByID(ctx context.Context, id, propertyID int64) (*models.Tenant, error)
	GetByIDInOrganisation(ctx context.Context, id, orgID int64) (*models.Tenant, error)
	ListByProperty(ctx context.Context, propertyID int64, limit, offset int) ([]*models.Tenant, error)
	CountByProperty(ctx context.Context, propertyID int64) (int, error)
	ListByOrganisation(ctx context.Context, orgID int64, limit, offset int) ([]*models.Tenant, error)
	CountByOrganisation(ctx context.Context, orgID int64) (int, error)

	Update(ctx context.Context, t *models.Tenant) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type tenantRepo struct {
	db DB
}

func NewTenantRepository(db DB) TenantRepository {
	return &tenantRepo{db: db}
}

// Create leaves lease_id NULL; only the lease-creation transaction
// ever sets it.
func (r *tenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO tenants (
            tenant_name, trading_as_list_name, property_id,
            identification_type, identification,
            email_1, email_2, phone_1, phone_2,
            postal_address, domicile_address, nationality_id, details,
            is_active, date_created, last_updated
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13, TRUE, NOW(), NOW())
        RETURNING id, is_active, date_created, last_updated
    `,
		t.TenantName,
		t.TradingAsListName,
		t.PropertyID,
		t.IdentificationType,
		t.Identification,
		t.Email1,
		t.Email2,
		t.Phone1,
		t.Phone2,
		t.PostalAddress,
		t.DomicileAddress,
		t.NationalityID,
		t.Details,
	).Scan(&t.ID, &t.IsActive, &t.DateCreated, &t.LastUpdated)
}

func (r *tenantRepo) GetByID(ctx context.Context, id, propertyID int64) (*models.Tenant, error) {
	row := r.db.QueryRow(ctx,
		baseSelectTenant()+" WHERE t.id=$1 AND t.property_id=$2", id, propertyID)
	return scanTenant(row)
}

// GetByIDInOrganisation scopes through the parent property, for callers
// that hold an organisation but not the property id.
func (r *tenantRepo) GetByIDInOrganisation(ctx context.Context, id, orgID int64) (*models.Tenant, error) {
	row := r.db.QueryRow(ctx,
		baseSelectTenant()+`
            JOIN properties p ON p.id = t.property_id
            WHERE t.id=$1 AND p.organisation_managing_id=$2`,
		id, orgID,
	)
	return scanTenant(row)
}

// Ordered by id ascending (creation order).
func (r *tenantRepo) ListByProperty(ctx context.Context, propertyID int64, limit, offset int) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx,
		baseSelectTenant()+" WHERE t.property_id=$1 AND t.is_active=TRUE ORDER BY t.id LIMIT $2 OFFSET $3",
		propertyID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

func (r *tenantRepo) CountByProperty(ctx context.Context, propertyID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tenants WHERE property_id=$1 AND is_active=TRUE`, propertyID,
	).Scan(&n)
	return n, err
}

// ListByOrganisation spans every property the organisation manages.
func (r *tenantRepo) ListByOrganisation(ctx context.Context, orgID int64, limit, offset int) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx,
		baseSelectTenant()+`
            JOIN properties p ON p.id = t.property_id
            WHERE p.organisation_managing_id=$1 AND t.is_active=TRUE
            ORDER BY t.id LIMIT $2 OFFSET $3`,
		orgID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

func (r *tenantRepo) CountByOrganisation(ctx context.Context, orgID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*)
        FROM tenants t
        JOIN properties p ON p.id = t.property_id
        WHERE p.organisation_managing_id=$1 AND t.is_active=TRUE
    `, orgID).Scan(&n)
	return n, err
}

// Update never touches property_id or lease_id.
func (r *tenantRepo) Update(ctx context.Context, t *models.Tenant) error {
	_, err := r.db.Exec(ctx, `
        UPDATE tenants SET
            tenant_name=$1, trading_as_list_name=$2,
            identification_type=$3, identification=$4,
            email_1=$5, email_2=$6, phone_1=$7, phone_2=$8,
            postal_address=$9, domicile_address=$10, nationality_id=$11,
            details=$12, is_active=$13, last_updated=NOW()
        WHERE id=$14
    `,
		t.TenantName, t.TradingAsListName,
		t.IdentificationType, t.Identification,
		t.Email1, t.Email2, t.Phone1, t.Phone2,
		t.PostalAddress, t.DomicileAddress, t.NationalityID,
		t.Details, t.IsActive,
		t.ID,
	)
	return err
}

func baseSelectTenant() string {
	return `
        SELECT
            t.id, t.tenant_name, t.trading_as_list_name, t.property_id,
            t.identification_type, t.identification,
            t.email_1, t.email_2, t.phone_1, t.phone_2,
            t.postal_address, t.domicile_address, t.nationality_id, t.details,
            t.is_active, t.date_created, t.last_updated, t.lease_id
        FROM tenants t
    `
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var t models.Tenant
	err := row.Scan(
		&t.ID,
		&t.TenantName,
		&t.TradingAsListName,
		&t.PropertyID,
		&t.IdentificationType,
		&t.Identification,
		&t.Email1,
		&t.Email2,
		&t.Phone1,
		&t.Phone2,
		&t.PostalAddress,
		&t.DomicileAddress,
		&t.NationalityID,
		&t.Details,
		&t.IsActive,
		&t.DateCreated,
		&t.LastUpdated,
		&t.LeaseID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func scanTenants(rows pgx.Rows) ([]*models.Tenant, error) {
	var out []*models.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
