package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/TerrenceTakunda/ekpm/internal/models"
)

/* ------------------------------------------------------------------
   Public interface

   Every read is scoped by organisation: a landlord outside orgID is
   indistinguishable from a missing row.
------------------------------------------------------------------ */

type LandLordRepository interface {
	Create(ctx context.Context, l *models.LandLord) error

	GetByID(ctx context.Context, id, orgID int64) (*models.LandLord, error)
	ListByOrganisation(ctx context.Context, orgID int64, limit, offset int) ([]*models.LandLord, error)
	CountByOrganisation(ctx context.Context, orgID int64) (int, error)

	Update(ctx context.Context, l *models.LandLord) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type landLordRepo struct {
	db DB
}

func NewLandLordRepository(db DB) LandLordRepository {
	return &landLordRepo{db: db}
}

func (r *landLordRepo) Create(ctx context.Context, l *models.LandLord) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO landlords (
            name, phone, address, city, country_id,
            identification_type, identification, nationality_id,
            bank, bank_branch, bank_account_number,
            details, representative, managed_by_id,
            date_created, last_updated, is_active
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14, NOW(), NOW(), TRUE)
        RETURNING id, date_created, last_updated, is_active
    `,
		l.Name,
		l.Phone,
		l.Address,
		l.City,
		l.CountryID,
		l.IdentificationType,
		l.Identification,
		l.NationalityID,
		l.Bank,
		l.BankBranch,
		l.BankAccountNumber,
		l.Details,
		l.Representative,
		l.ManagedByID,
	).Scan(&l.ID, &l.DateCreated, &l.LastUpdated, &l.IsActive)
}

func (r *landLordRepo) GetByID(ctx context.Context, id, orgID int64) (*models.LandLord, error) {
	row := r.db.QueryRow(ctx, baseSelectLandLord()+" WHERE id=$1 AND managed_by_id=$2", id, orgID)
	return scanLandLord(row)
}

// Ordered by id ascending, i.e. creation order.
func (r *landLordRepo) ListByOrganisation(ctx context.Context, orgID int64, limit, offset int) ([]*models.LandLord, error) {
	rows, err := r.db.Query(ctx,
		baseSelectLandLord()+" WHERE managed_by_id=$1 AND is_active=TRUE ORDER BY id LIMIT $2 OFFSET $3",
		orgID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLandLords(rows)
}

func (r *landLordRepo) CountByOrganisation(ctx context.Context, orgID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM landlords WHERE managed_by_id=$1 AND is_active=TRUE`, orgID,
	).Scan(&n)
	return n, err
}

// Update never touches managed_by_id; ownership is fixed at creation.
func (r *landLordRepo) Update(ctx context.Context, l *models.LandLord) error {
	_, err := r.db.Exec(ctx, `
        UPDATE landlords SET
            name=$1, phone=$2, address=$3, city=$4, country_id=$5,
            identification_type=$6, identification=$7, nationality_id=$8,
            bank=$9, bank_branch=$10, bank_account_number=$11,
            details=$12, representative=$13, is_active=$14,
            last_updated=NOW()
        WHERE id=$15
    `,
		l.Name, l.Phone, l.Address, l.City, l.CountryID,
		l.IdentificationType, l.Identification, l.NationalityID,
		l.Bank, l.BankBranch, l.BankAccountNumber,
		l.Details, l.Representative, l.IsActive,
		l.ID,
	)
	return err
}

func baseSelectLandLord() string {
	return `
        SELECT
            id, name, phone, address, city, country_id,
            identification_type, identification, nationality_id,
            bank, bank_branch, bank_account_number,
            details, representative, managed_by_id,
            date_created, last_updated, is_active
        FROM landlords
    `
}

func scanLandLord(row pgx.Row) (*models.LandLord, error) {
	var l models.LandLord
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Phone,
		&l.Address,
		&l.City,
		&l.CountryID,
		&l.IdentificationType,
		&l.Identification,
		&l.NationalityID,
		&l.Bank,
		&l.BankBranch,
		&l.BankAccountNumber,
		&l.Details,
		&l.Representative,
		&l.ManagedByID,
		&l.DateCreated,
		&l.LastUpdated,
		&l.IsActive,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func scanLandLords(rows pgx.Rows) ([]*models.LandLord, error) {
	var out []*models.LandLord
	for rows.Next() {
		l, err := scanLandLord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
