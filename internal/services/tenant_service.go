package services

import (
	"context"

	"github.com/TerrenceTakunda/ekpm/internal/config"
	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/repositories"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

type TenantService struct {
	cfg        *config.Config
	scope      *ScopeService
	properties repositories.PropertyRepository
	tenants    repositories.TenantRepository
}

func NewTenantService(
	cfg *config.Config,
	scope *ScopeService,
	properties repositories.PropertyRepository,
	tenants repositories.TenantRepository,
) *TenantService {
	return &TenantService{cfg: cfg, scope: scope, properties: properties, tenants: tenants}
}

func (s *TenantService) resolveProperty(ctx context.Context, userID, propertyID int64) (*Caller, *models.Property, error) {
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

func (s *TenantService) Create(ctx context.Context, userID, propertyID int64, req *dtos.TenantRequest) (*models.Tenant, error) {
	_, property, err := s.resolveProperty(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}
	if !contains(s.cfg.IDTypes, req.IdentificationType) {
		return nil, utils.ValidationError("Unknown identification type", nil)
	}

	tenant := req.ToModel(property.ID)
	tenant.Email1 = utils.NormalizeEmail(tenant.Email1)
	if tenant.Email2 != nil {
		tenant.Email2 = utils.Ptr(utils.NormalizeEmail(*tenant.Email2))
	}

	if err := s.tenants.Create(ctx, tenant); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, utils.ConflictError("Referenced record does not exist", err)
		}
		return nil, err
	}
	return tenant, nil
}

// ListByProperty pages the active tenants of one property.
func (s *TenantService) ListByProperty(ctx context.Context, userID, propertyID int64, rawPage string) (dtos.Paged[*models.Tenant], error) {
	var empty dtos.Paged[*models.Tenant]

	_, property, err := s.resolveProperty(ctx, userID, propertyID)
	if err != nil {
		return empty, err
	}

	total, err := s.tenants.CountByProperty(ctx, property.ID)
	if err != nil {
		return empty, err
	}
	page := utils.ResolvePage(rawPage, total, PageSize)

	tenants, err := s.tenants.ListByProperty(ctx, property.ID, page.PageSize, page.Offset())
	if err != nil {
		return empty, err
	}
	return dtos.NewPaged(tenants, page), nil
}

// ListAll pages the active tenants across every property the caller's
// organisation manages.
func (s *TenantService) ListAll(ctx context.Context, userID int64, rawPage string) (dtos.Paged[*models.Tenant], error) {
	var empty dtos.Paged[*models.Tenant]

	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return empty, err
	}

	total, err := s.tenants.CountByOrganisation(ctx, caller.OrganisationID())
	if err != nil {
		return empty, err
	}
	page := utils.ResolvePage(rawPage, total, PageSize)

	tenants, err := s.tenants.ListByOrganisation(ctx, caller.OrganisationID(), page.PageSize, page.Offset())
	if err != nil {
		return empty, err
	}
	return dtos.NewPaged(tenants, page), nil
}

func (s *TenantService) Get(ctx context.Context, userID, propertyID, id int64) (*models.Tenant, error) {
	_, property, err := s.resolveProperty(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	tenant, err := s.tenants.GetByID(ctx, id, property.ID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, utils.NotFoundError("Tenant not found")
	}
	return tenant, nil
}

func (s *TenantService) Update(ctx context.Context, userID, propertyID, id int64, req *dtos.TenantRequest) (*models.Tenant, error) {
	tenant, err := s.Get(ctx, userID, propertyID, id)
	if err != nil {
		return nil, err
	}
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}
	if !contains(s.cfg.IDTypes, req.IdentificationType) {
		return nil, utils.ValidationError("Unknown identification type", nil)
	}

	req.Apply(tenant)
	tenant.Email1 = utils.NormalizeEmail(tenant.Email1)
	if tenant.Email2 != nil {
		tenant.Email2 = utils.Ptr(utils.NormalizeEmail(*tenant.Email2))
	}
	if err := s.tenants.Update(ctx, tenant); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, utils.ConflictError("Referenced record does not exist", err)
		}
		return nil, err
	}
	return tenant, nil
}
