package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/TerrenceTakunda/ekpm/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type OrganisationRepository interface {
	Create(ctx context.Context, o *models.Organisation) error
	GetByID(ctx context.Context, id int64) (*models.Organisation, error)
	GetByCompanyName(ctx context.Context, name string) (*models.Organisation, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type organisationRepo struct {
	db DB
}

func NewOrganisationRepository(db DB) OrganisationRepository {
	return &organisationRepo{db: db}
}

func (r *organisationRepo) Create(ctx context.Context, o *models.Organisation) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO organisations (
            company_name, address, city, country_id, phone, email,
            is_active, date_created
        ) VALUES ($1,$2,$3,$4,$5,$6, TRUE, NOW())
        RETURNING id, is_active, date_created
    `,
		o.CompanyName,
		o.Address,
		o.City,
		o.CountryID,
		o.Phone,
		o.Email,
	).Scan(&o.ID, &o.IsActive, &o.DateCreated)
}

func (r *organisationRepo) GetByID(ctx context.Context, id int64) (*models.Organisation, error) {
	row := r.db.QueryRow(ctx, baseSelectOrganisation()+" WHERE id=$1", id)
	return scanOrganisation(row)
}

func (r *organisationRepo) GetByCompanyName(ctx context.Context, name string) (*models.Organisation, error) {
	row := r.db.QueryRow(ctx, baseSelectOrganisation()+" WHERE company_name=$1 LIMIT 1", name)
	return scanOrganisation(row)
}

func baseSelectOrganisation() string {
	return `
        SELECT id, company_name, address, city, country_id, phone, email,
               is_active, date_created
        FROM organisations
    `
}

func scanOrganisation(row pgx.Row) (*models.Organisation, error) {
	var o models.Organisation
	err := row.Scan(
		&o.ID,
		&o.CompanyName,
		&o.Address,
		&o.City,
		&o.CountryID,
		&o.Phone,
		&o.Email,
		&o.IsActive,
		&o.DateCreated,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
