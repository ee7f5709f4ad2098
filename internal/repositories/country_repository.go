package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/TerrenceTakunda/ekpm/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type CountryRepository interface {
	Create(ctx context.Context, c *models.Country) error
	GetByID(ctx context.Context, id int64) (*models.Country, error)
	GetByCode(ctx context.Context, code string) (*models.Country, error)
	List(ctx context.Context) ([]*models.Country, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type countryRepo struct {
	db DB
}

func NewCountryRepository(db DB) CountryRepository {
	return &countryRepo{db: db}
}

func (r *countryRepo) Create(ctx context.Context, c *models.Country) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO countries (code, name)
        VALUES ($1, $2)
        RETURNING id
    `, c.Code, c.Name).Scan(&c.ID)
}

func (r *countryRepo) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	row := r.db.QueryRow(ctx, baseSelectCountry()+" WHERE id=$1", id)
	return scanCountry(row)
}

func (r *countryRepo) GetByCode(ctx context.Context, code string) (*models.Country, error) {
	row := r.db.QueryRow(ctx, baseSelectCountry()+" WHERE code=$1", code)
	return scanCountry(row)
}

func (r *countryRepo) List(ctx context.Context) ([]*models.Country, error) {
	rows, err := r.db.Query(ctx, baseSelectCountry()+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Country
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func baseSelectCountry() string {
	return `SELECT id, code, name FROM countries`
}

func scanCountry(row pgx.Row) (*models.Country, error) {
	var c models.Country
	err := row.Scan(&c.ID, &c.Code, &c.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
