package services

import (
	"context"

	"github.com/TerrenceTakunda/ekpm/internal/config"
	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/repositories"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

type LandLordService struct {
	cfg       *config.Config
	scope     *ScopeService
	landlords repositories.LandLordRepository
}

func NewLandLordService(cfg *config.Config, scope *ScopeService, landlords repositories.LandLordRepository) *LandLordService {
	return &LandLordService{cfg: cfg, scope: scope, landlords: landlords}
}

// Create stamps managed_by with the caller's organisation; whatever
// the client might claim about ownership is ignored.
func (s *LandLordService) Create(ctx context.Context, userID int64, req *dtos.LandLordRequest) (*models.LandLord, error) {
	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}
	if !contains(s.cfg.IDTypes, req.IdentificationType) {
		return nil, utils.ValidationError("Unknown identification type", nil)
	}

	landlord := req.ToModel()
	landlord.ManagedByID = caller.OrganisationID()

	if err := s.landlords.Create(ctx, landlord); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, utils.ConflictError("Referenced record does not exist", err)
		}
		return nil, err
	}
	return landlord, nil
}

func (s *LandLordService) List(ctx context.Context, userID int64, rawPage string) (dtos.Paged[*models.LandLord], error) {
	var empty dtos.Paged[*models.LandLord]

	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return empty, err
	}

	total, err := s.landlords.CountByOrganisation(ctx, caller.OrganisationID())
	if err != nil {
		return empty, err
	}
	page := utils.ResolvePage(rawPage, total, PageSize)

	landlords, err := s.landlords.ListByOrganisation(ctx, caller.OrganisationID(), page.PageSize, page.Offset())
	if err != nil {
		return empty, err
	}
	return dtos.NewPaged(landlords, page), nil
}

func (s *LandLordService) Get(ctx context.Context, userID, id int64) (*models.LandLord, error) {
	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}
	landlord, err := s.landlords.GetByID(ctx, id, caller.OrganisationID())
	if err != nil {
		return nil, err
	}
	if landlord == nil {
		return nil, utils.NotFoundError("Landlord not found")
	}
	return landlord, nil
}

func (s *LandLordService) Update(ctx context.Context, userID, id int64, req *dtos.LandLordRequest) (*models.LandLord, error) {
	landlord, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}
	if !contains(s.cfg.IDTypes, req.IdentificationType) {
		return nil, utils.ValidationError("Unknown identification type", nil)
	}

	req.Apply(landlord)
	if err := s.landlords.Update(ctx, landlord); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, utils.ConflictError("Referenced record does not exist", err)
		}
		return nil, err
	}
	return landlord, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
