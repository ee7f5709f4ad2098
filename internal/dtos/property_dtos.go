package dtos

import "github.com/TerrenceTakunda/ekpm/internal/models"

// PropertyRequest is the create/update payload. organisation_managing
// is stamped from the caller; land_lord_id must resolve within the
// caller's scope. Dates are "2006-01-02" strings; money and area
// figures are decimal strings.
type PropertyRequest struct {
	PropertyType          string  `json:"property_type" validate:"required"`
	LandLordID            int64   `json:"land_lord_id" validate:"required,gt=0"`
	Title                 string  `json:"title" validate:"required"`
	PropertyValue         string  `json:"property_value" validate:"required,numeric"`
	Address               string  `json:"address" validate:"required"`
	City                  string  `json:"city" validate:"required"`
	CountryID             int64   `json:"country_id" validate:"required,gt=0"`
	Description           string  `json:"description"`
	LotSize               string  `json:"lot_size" validate:"required,numeric"`
	BuildingSize          string  `json:"building_size" validate:"required,numeric"`
	GeographicLocation    *string `json:"geographic_location,omitempty"`
	FirstErectedDate      *string `json:"first_erected_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PropertyAcquiredDate  *string `json:"property_acquired_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AcquisitionCost       string  `json:"acquisition_cost" validate:"omitempty,numeric"`
	ManagementStartedDate *string `json:"management_started_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ManagementStoppedDate *string `json:"management_stopped_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PropertyDisposedDate  *string `json:"property_disposed_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SellingPrice          string  `json:"selling_price" validate:"omitempty,numeric"`
	Zone                  *string `json:"zone,omitempty"`
	Details               *string `json:"details,omitempty"`
}

func (r *PropertyRequest) ToModel() (*models.Property, error) {
	pt, err := models.ParsePropertyType(r.PropertyType)
	if err != nil {
		return nil, err
	}

	firstErected, err := parseDatePtr(r.FirstErectedDate)
	if err != nil {
		return nil, err
	}
	acquired, err := parseDatePtr(r.PropertyAcquiredDate)
	if err != nil {
		return nil, err
	}
	mgmtStarted, err := parseDatePtr(r.ManagementStartedDate)
	if err != nil {
		return nil, err
	}
	mgmtStopped, err := parseDatePtr(r.ManagementStoppedDate)
	if err != nil {
		return nil, err
	}
	disposed, err := parseDatePtr(r.PropertyDisposedDate)
	if err != nil {
		return nil, err
	}

	return &models.Property{
		PropertyType:          pt,
		LandLordID:            r.LandLordID,
		Title:                 r.Title,
		PropertyValue:         r.PropertyValue,
		Address:               r.Address,
		City:                  r.City,
		CountryID:             r.CountryID,
		Description:           r.Description,
		LotSize:               r.LotSize,
		BuildingSize:          r.BuildingSize,
		GeographicLocation:    r.GeographicLocation,
		FirstErectedDate:      firstErected,
		PropertyAcquiredDate:  acquired,
		AcquisitionCost:       orZero(r.AcquisitionCost),
		ManagementStartedDate: mgmtStarted,
		ManagementStoppedDate: mgmtStopped,
		PropertyDisposedDate:  disposed,
		SellingPrice:          orZero(r.SellingPrice),
		Zone:                  r.Zone,
		Details:               r.Details,
	}, nil
}

// Apply copies the updatable fields onto an existing record.
// land_lord_id and organisation_managing stay as created.
func (r *PropertyRequest) Apply(p *models.Property) error {
	next, err := r.ToModel()
	if err != nil {
		return err
	}
	next.ID = p.ID
	next.OrganisationManagingID = p.OrganisationManagingID
	next.LandLordID = p.LandLordID
	next.IsActive = p.IsActive
	next.DateCreated = p.DateCreated
	next.LastUpdated = p.LastUpdated
	*p = *next
	return nil
}
