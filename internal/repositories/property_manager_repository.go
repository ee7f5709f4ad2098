package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/TerrenceTakunda/ekpm/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyManagerRepository interface {
	Create(ctx context.Context, pm *models.PropertyManager) error
	GetByID(ctx context.Context, id int64) (*models.PropertyManager, error)
	GetByUserID(ctx context.Context, userID int64) (*models.PropertyManager, error)
	CountByOrganisation(ctx context.Context, orgID int64) (int, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyManagerRepo struct {
	db DB
}

func NewPropertyManagerRepository(db DB) PropertyManagerRepository {
	return &propertyManagerRepo{db: db}
}

func (r *propertyManagerRepo) Create(ctx context.Context, pm *models.PropertyManager) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO property_managers (user_id, organisation_id, details)
        VALUES ($1,$2,$3)
        RETURNING id
    `, pm.UserID, pm.OrganisationID, pm.Details).Scan(&pm.ID)
}

func (r *propertyManagerRepo) GetByID(ctx context.Context, id int64) (*models.PropertyManager, error) {
	row := r.db.QueryRow(ctx, baseSelectPropertyManager()+" WHERE id=$1", id)
	return scanPropertyManager(row)
}

func (r *propertyManagerRepo) GetByUserID(ctx context.Context, userID int64) (*models.PropertyManager, error) {
	row := r.db.QueryRow(ctx, baseSelectPropertyManager()+" WHERE user_id=$1", userID)
	return scanPropertyManager(row)
}

func (r *propertyManagerRepo) CountByOrganisation(ctx context.Context, orgID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM property_managers WHERE organisation_id=$1`, orgID,
	).Scan(&n)
	return n, err
}

func baseSelectPropertyManager() string {
	return `SELECT id, user_id, organisation_id, details FROM property_managers`
}

func scanPropertyManager(row pgx.Row) (*models.PropertyManager, error) {
	var pm models.PropertyManager
	err := row.Scan(&pm.ID, &pm.UserID, &pm.OrganisationID, &pm.Details)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &pm, nil
}
