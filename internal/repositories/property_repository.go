package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/TerrenceTakunda/ekpm/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error

	GetByID(ctx context.Context, id, orgID int64) (*models.Property, error)
	ListByOrganisation(ctx context.Context, orgID int64, limit, offset int) ([]*models.Property, error)
	CountByOrganisation(ctx context.Context, orgID int64) (int, error)

	Update(ctx context.Context, p *models.Property) error
}

/* ------------------------------------------------------------------
   Implementation

   NUMERIC columns round-trip as text: the Go side holds validated
   decimal strings and Postgres casts the bound text parameters.
------------------------------------------------------------------ */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	return r.db.QueryRow(ctx, `
        INSERT INTO properties (
            property_type, organisation_managing_id, land_lord_id, title,
            property_value, address, city, country_id, description,
            lot_size, building_size, geographic_location,
            first_erected_date, property_acquired_date, acquisition_cost,
            management_started_date, management_stopped_date,
            property_disposed_date, selling_price, zone, details,
            date_created, last_updated, is_active
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21, NOW(), NOW(), TRUE)
        RETURNING id, date_created, last_updated, is_active
    `,
		string(p.PropertyType),
		p.OrganisationManagingID,
		p.LandLordID,
		p.Title,
		p.PropertyValue,
		p.Address,
		p.City,
		p.CountryID,
		p.Description,
		p.LotSize,
		p.BuildingSize,
		p.GeographicLocation,
		p.FirstErectedDate,
		p.PropertyAcquiredDate,
		p.AcquisitionCost,
		p.ManagementStartedDate,
		p.ManagementStoppedDate,
		p.PropertyDisposedDate,
		p.SellingPrice,
		p.Zone,
		p.Details,
	).Scan(&p.ID, &p.DateCreated, &p.LastUpdated, &p.IsActive)
}

func (r *propertyRepo) GetByID(ctx context.Context, id, orgID int64) (*models.Property, error) {
	row := r.db.QueryRow(ctx,
		baseSelectProperty()+" WHERE id=$1 AND organisation_managing_id=$2", id, orgID)
	return scanProperty(row)
}

// Ordered by id ascending, i.e. creation order.
func (r *propertyRepo) ListByOrganisation(ctx context.Context, orgID int64, limit, offset int) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx,
		baseSelectProperty()+" WHERE organisation_managing_id=$1 AND is_active=TRUE ORDER BY id LIMIT $2 OFFSET $3",
		orgID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *propertyRepo) CountByOrganisation(ctx context.Context, orgID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM properties WHERE organisation_managing_id=$1 AND is_active=TRUE`, orgID,
	).Scan(&n)
	return n, err
}

// Update never touches organisation_managing_id or land_lord_id.
func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	_, err := r.db.Exec(ctx, `
        UPDATE properties SET
            property_type=$1, title=$2, property_value=$3, address=$4,
            city=$5, country_id=$6, description=$7, lot_size=$8,
            building_size=$9, geographic_location=$10,
            first_erected_date=$11, property_acquired_date=$12,
            acquisition_cost=$13, management_started_date=$14,
            management_stopped_date=$15, property_disposed_date=$16,
            selling_price=$17, zone=$18, details=$19, is_active=$20,
            last_updated=NOW()
        WHERE id=$21
    `,
		string(p.PropertyType), p.Title, p.PropertyValue, p.Address,
		p.City, p.CountryID, p.Description, p.LotSize,
		p.BuildingSize, p.GeographicLocation,
		p.FirstErectedDate, p.PropertyAcquiredDate,
		p.AcquisitionCost, p.ManagementStartedDate,
		p.ManagementStoppedDate, p.PropertyDisposedDate,
		p.SellingPrice, p.Zone, p.Details, p.IsActive,
		p.ID,
	)
	return err
}

func baseSelectProperty() string {
	return `
        SELECT
            id, property_type, organisation_managing_id, land_lord_id, title,
            property_value::text, address, city, country_id, description,
            lot_size::text, building_size::text, geographic_location,
            first_erected_date, property_acquired_date, acquisition_cost::text,
            management_started_date, management_stopped_date,
            property_disposed_date, selling_price::text, zone, details,
            date_created, last_updated, is_active
        FROM properties
    `
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var (
		p            models.Property
		propertyType string
	)
	err := row.Scan(
		&p.ID,
		&propertyType,
		&p.OrganisationManagingID,
		&p.LandLordID,
		&p.Title,
		&p.PropertyValue,
		&p.Address,
		&p.City,
		&p.CountryID,
		&p.Description,
		&p.LotSize,
		&p.BuildingSize,
		&p.GeographicLocation,
		&p.FirstErectedDate,
		&p.PropertyAcquiredDate,
		&p.AcquisitionCost,
		&p.ManagementStartedDate,
		&p.ManagementStoppedDate,
		&p.PropertyDisposedDate,
		&p.SellingPrice,
		&p.Zone,
		&p.Details,
		&p.DateCreated,
		&p.LastUpdated,
		&p.IsActive,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.PropertyType = models.PropertyType(propertyType)
	return &p, nil
}
