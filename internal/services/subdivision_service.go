package services

import (
	"context"

	"github.com/TerrenceTakunda/ekpm/internal/config"
	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/repositories"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

// SubdivisionService serves both flavours (units and premises) through
// one code path; the kind always comes from the route.
type SubdivisionService struct {
	cfg          *config.Config
	scope        *ScopeService
	properties   repositories.PropertyRepository
	subdivisions repositories.SubdivisionRepository
}

func NewSubdivisionService(
	cfg *config.Config,
	scope *ScopeService,
	properties repositories.PropertyRepository,
	subdivisions repositories.SubdivisionRepository,
) *SubdivisionService {
	return &SubdivisionService{cfg: cfg, scope: scope, properties: properties, subdivisions: subdivisions}
}

// resolveProperty is the transitive scope check: every subdivision
// operation first proves the parent property belongs to the caller.
func (s *SubdivisionService) resolveProperty(ctx context.Context, userID, propertyID int64) (*Caller, *models.Property, error) {
	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	property, err := s.properties.GetByID(ctx, propertyID, caller.OrganisationID())
	if err != nil {
		return nil, nil, err
	}
	if property == nil {
		return nil, nil, utils.NotFoundError("Property not found")
	}
	return caller, property, nil
}

func (s *SubdivisionService) Create(ctx context.Context, userID, propertyID int64, kind models.SubdivisionKind, req *dtos.SubdivisionRequest) (*models.Subdivision, error) {
	_, property, err := s.resolveProperty(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}
	if err := s.checkAccommodationType(kind, req); err != nil {
		return nil, err
	}

	subdivision := req.ToModel(property.ID, kind)
	if kind == models.SubdivisionUnit {
		subdivision.AccommodationType = nil
	}
	if err := s.subdivisions.Create(ctx, subdivision); err != nil {
		return nil, err
	}
	return subdivision, nil
}

func (s *SubdivisionService) List(ctx context.Context, userID, propertyID int64, kind models.SubdivisionKind, rawPage string) (dtos.Paged[*models.Subdivision], error) {
	var empty dtos.Paged[*models.Subdivision]

	_, property, err := s.resolveProperty(ctx, userID, propertyID)
	if err != nil {
		return empty, err
	}

	total, err := s.subdivisions.CountByProperty(ctx, property.ID, kind)
	if err != nil {
		return empty, err
	}
	page := utils.ResolvePage(rawPage, total, PageSize)

	subdivisions, err := s.subdivisions.ListByProperty(ctx, property.ID, kind, page.PageSize, page.Offset())
	if err != nil {
		return empty, err
	}
	return dtos.NewPaged(subdivisions, page), nil
}

// Get returns the subdivision only when it hangs off the given property
// and matches the requested kind; anything else is NotFound.
func (s *SubdivisionService) Get(ctx context.Context, userID, propertyID, id int64, kind models.SubdivisionKind) (*models.Subdivision, error) {
	_, property, err := s.resolveProperty(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	subdivision, err := s.subdivisions.GetByID(ctx, id, property.ID)
	if err != nil {
		return nil, err
	}
	if subdivision == nil || subdivision.Kind != kind {
		return nil, utils.NotFoundError("Subdivision not found")
	}
	return subdivision, nil
}

func (s *SubdivisionService) Update(ctx context.Context, userID, propertyID, id int64, kind models.SubdivisionKind, req *dtos.SubdivisionRequest) (*models.Subdivision, error) {
	subdivision, err := s.Get(ctx, userID, propertyID, id, kind)
	if err != nil {
		return nil, err
	}
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}
	if err := s.checkAccommodationType(kind, req); err != nil {
		return nil, err
	}

	req.Apply(subdivision)
	if kind == models.SubdivisionUnit {
		subdivision.AccommodationType = nil
	}
	if err := s.subdivisions.Update(ctx, subdivision); err != nil {
		return nil, err
	}
	return subdivision, nil
}

// checkAccommodationType enforces the tagged-variant rule: premises
// must name a configured accommodation type, units must not.
func (s *SubdivisionService) checkAccommodationType(kind models.SubdivisionKind, req *dtos.SubdivisionRequest) error {
	if kind != models.SubdivisionPremise {
		return nil
	}
	if req.AccommodationType == nil || *req.AccommodationType == "" {
		return utils.ValidationError("Accommodation type is required for a premise", nil)
	}
	if !contains(s.cfg.AccommodationTypes, *req.AccommodationType) {
		return utils.ValidationError("Unknown accommodation type", nil)
	}
	return nil
}
