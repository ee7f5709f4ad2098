package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/TerrenceTakunda/ekpm/internal/models"
)

/* ------------------------------------------------------------------
   Public interface

   Subdivisions are scoped through their parent property: callers must
   already hold an organisation-scoped property id.
------------------------------------------------------------------ */

type SubdivisionRepository interface {
	Create(ctx context.Context, s *models.Subdivision) error

	GetByID(ctx context.Context, id, propertyID int64) (*models.Subdivision, error)
	ListByProperty(ctx context.Context, propertyID int64, kind models.SubdivisionKind, limit, offset int) ([]*models.Subdivision, error)
	CountByProperty(ctx context.Context, propertyID int64, kind models.SubdivisionKind) (int, error)

	Update(ctx context.Context, s *models.Subdivision) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type subdivisionRepo struct {
	db DB
}

func NewSubdivisionRepository(db DB) SubdivisionRepository {
	return &subdivisionRepo{db: db}
}

func (r *subdivisionRepo) Create(ctx context.Context, s *models.Subdivision) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO subdivisions (
            property_id, kind, title, accommodation_type, total_area,
            is_vacant, is_active, details, date_created, last_updated
        ) VALUES ($1,$2,$3,$4,$5,$6, TRUE, $7, NOW(), NOW())
        RETURNING id, is_active, date_created, last_updated
    `,
		s.PropertyID,
		string(s.Kind),
		s.Title,
		s.AccommodationType,
		s.TotalArea,
		s.IsVacant,
		s.Details,
	).Scan(&s.ID, &s.IsActive, &s.DateCreated, &s.LastUpdated)
}

func (r *subdivisionRepo) GetByID(ctx context.Context, id, propertyID int64) (*models.Subdivision, error) {
	row := r.db.QueryRow(ctx,
		baseSelectSubdivision()+" WHERE id=$1 AND property_id=$2", id, propertyID)
	return scanSubdivision(row)
}

// ListByProperty returns active subdivisions of one kind, ordered by id
// ascending (creation order).
func (r *subdivisionRepo) ListByProperty(ctx context.Context, propertyID int64, kind models.SubdivisionKind, limit, offset int) ([]*models.Subdivision, error) {
	rows, err := r.db.Query(ctx,
		baseSelectSubdivision()+` WHERE property_id=$1 AND kind=$2 AND is_active=TRUE ORDER BY id LIMIT $3 OFFSET $4`,
		propertyID, string(kind), limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Subdivision
	for rows.Next() {
		s, err := scanSubdivision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *subdivisionRepo) CountByProperty(ctx context.Context, propertyID int64, kind models.SubdivisionKind) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM subdivisions WHERE property_id=$1 AND kind=$2 AND is_active=TRUE`,
		propertyID, string(kind),
	).Scan(&n)
	return n, err
}

// Update never touches property_id or kind.
func (r *subdivisionRepo) Update(ctx context.Context, s *models.Subdivision) error {
	_, err := r.db.Exec(ctx, `
        UPDATE subdivisions SET
            title=$1, accommodation_type=$2, total_area=$3,
            is_vacant=$4, is_active=$5, details=$6, last_updated=NOW()
        WHERE id=$7
    `,
		s.Title, s.AccommodationType, s.TotalArea,
		s.IsVacant, s.IsActive, s.Details,
		s.ID,
	)
	return err
}

func baseSelectSubdivision() string {
	return `
        SELECT
            id, property_id, kind, title, accommodation_type,
            total_area::text, is_vacant, is_active,
            date_created, last_updated, details
        FROM subdivisions
    `
}

func scanSubdivision(row pgx.Row) (*models.Subdivision, error) {
	var (
		s    models.Subdivision
		kind string
	)
	err := row.Scan(
		&s.ID,
		&s.PropertyID,
		&kind,
		&s.Title,
		&s.AccommodationType,
		&s.TotalArea,
		&s.IsVacant,
		&s.IsActive,
		&s.DateCreated,
		&s.LastUpdated,
		&s.Details,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.Kind = models.SubdivisionKind(kind)
	return &s, nil
}
