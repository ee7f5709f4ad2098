package services

import (
	"context"

	"github.com/TerrenceTakunda/ekpm/internal/config"
	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/repositories"
)

// PortalService produces the dashboard numbers, all scoped to the
// caller's organisation.
type PortalService struct {
	cfg        *config.Config
	scope      *ScopeService
	tenants    repositories.TenantRepository
	landlords  repositories.LandLordRepository
	managers   repositories.PropertyManagerRepository
	properties repositories.PropertyRepository
	countries  repositories.CountryRepository
}

func NewPortalService(
	cfg *config.Config,
	scope *ScopeService,
	tenants repositories.TenantRepository,
	landlords repositories.LandLordRepository,
	managers repositories.PropertyManagerRepository,
	properties repositories.PropertyRepository,
	countries repositories.CountryRepository,
) *PortalService {
	return &PortalService{
		cfg:        cfg,
		scope:      scope,
		tenants:    tenants,
		landlords:  landlords,
		managers:   managers,
		properties: properties,
		countries:  countries,
	}
}

func (s *PortalService) Summary(ctx context.Context, userID int64) (*dtos.PortalSummary, error) {
	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}
	orgID := caller.OrganisationID()

	tenants, err := s.tenants.CountByOrganisation(ctx, orgID)
	if err != nil {
		return nil, err
	}
	portfolios, err := s.landlords.CountByOrganisation(ctx, orgID)
	if err != nil {
		return nil, err
	}
	managers, err := s.managers.CountByOrganisation(ctx, orgID)
	if err != nil {
		return nil, err
	}
	properties, err := s.properties.CountByOrganisation(ctx, orgID)
	if err != nil {
		return nil, err
	}

	return &dtos.PortalSummary{
		Tenants:    tenants,
		Portfolios: portfolios,
		Managers:   managers,
		Properties: properties,
	}, nil
}

// Countries lists the lookup table for address and nationality forms.
func (s *PortalService) Countries(ctx context.Context) ([]*models.Country, error) {
	return s.countries.List(ctx)
}

// FormOptions lists the accepted dropdown values for the front end.
func (s *PortalService) FormOptions() *dtos.FormOptions {
	types := models.PropertyTypes()
	propertyTypes := make([]string, len(types))
	for i, t := range types {
		propertyTypes[i] = string(t)
	}
	return &dtos.FormOptions{
		PropertyTypes:      propertyTypes,
		IDTypes:            s.cfg.IDTypes,
		AccommodationTypes: s.cfg.AccommodationTypes,
	}
}
