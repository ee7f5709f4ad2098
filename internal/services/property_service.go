package services

import (
	"context"

	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/repositories"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

type PropertyService struct {
	scope      *ScopeService
	properties repositories.PropertyRepository
	landlords  repositories.LandLordRepository
}

func NewPropertyService(scope *ScopeService, properties repositories.PropertyRepository, landlords repositories.LandLordRepository) *PropertyService {
	return &PropertyService{scope: scope, properties: properties, landlords: landlords}
}

// Create stamps organisation_managing from the caller. The landlord
// must already be managed by the caller's organisation; one outside it
// reads as missing.
func (s *PropertyService) Create(ctx context.Context, userID int64, req *dtos.PropertyRequest) (*models.Property, error) {
	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}

	landlord, err := s.landlords.GetByID(ctx, req.LandLordID, caller.OrganisationID())
	if err != nil {
		return nil, err
	}
	if landlord == nil {
		return nil, utils.NotFoundError("Landlord not found")
	}

	property, err := req.ToModel()
	if err != nil {
		return nil, utils.ValidationError(err.Error(), err)
	}
	property.OrganisationManagingID = caller.OrganisationID()
	property.LandLordID = landlord.ID

	if err := s.properties.Create(ctx, property); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, utils.ConflictError("Referenced record does not exist", err)
		}
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) List(ctx context.Context, userID int64, rawPage string) (dtos.Paged[*models.Property], error) {
	var empty dtos.Paged[*models.Property]

	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return empty, err
	}

	total, err := s.properties.CountByOrganisation(ctx, caller.OrganisationID())
	if err != nil {
		return empty, err
	}
	page := utils.ResolvePage(rawPage, total, PageSize)

	properties, err := s.properties.ListByOrganisation(ctx, caller.OrganisationID(), page.PageSize, page.Offset())
	if err != nil {
		return empty, err
	}
	return dtos.NewPaged(properties, page), nil
}

func (s *PropertyService) Get(ctx context.Context, userID, id int64) (*models.Property, error) {
	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}
	property, err := s.properties.GetByID(ctx, id, caller.OrganisationID())
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, utils.NotFoundError("Property not found")
	}
	return property, nil
}

func (s *PropertyService) Update(ctx context.Context, userID, id int64, req *dtos.PropertyRequest) (*models.Property, error) {
	property, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}

	if err := req.Apply(property); err != nil {
		return nil, utils.ValidationError(err.Error(), err)
	}
	if err := s.properties.Update(ctx, property); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, utils.ConflictError("Referenced record does not exist", err)
		}
		return nil, err
	}
	return property, nil
}
