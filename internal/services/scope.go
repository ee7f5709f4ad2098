package services

import (
	"context"
	"net/http"

	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/repositories"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

// Every listing in the manager portal pages at this size.
const PageSize = 10

// Caller is an authenticated user together with their manager record.
// Holding a Caller proves the organisation scope has been resolved.
type Caller struct {
	User    *models.User
	Manager *models.PropertyManager
}

func (c *Caller) OrganisationID() int64 {
	return c.Manager.OrganisationID
}

// ScopeService maps an authenticated user id onto the organisation all
// row-level filtering hangs off.
type ScopeService struct {
	users    repositories.UserRepository
	managers repositories.PropertyManagerRepository
}

func NewScopeService(users repositories.UserRepository, managers repositories.PropertyManagerRepository) *ScopeService {
	return &ScopeService{users: users, managers: managers}
}

// ResolveCaller loads the user and their manager record. A valid token
// for a user without a manager record is a 403, not a 404: the account
// exists, it just has no organisation to act for.
func (s *ScopeService) ResolveCaller(ctx context.Context, userID int64) (*Caller, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeUnauthorized,
			Message:    "Account is unknown or disabled",
		}
	}

	manager, err := s.managers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusForbidden,
			Code:       utils.ErrCodeNotAManager,
			Message:    "User is not a property manager",
			Err:        utils.ErrNotAManager,
		}
	}

	return &Caller{User: user, Manager: manager}, nil
}
