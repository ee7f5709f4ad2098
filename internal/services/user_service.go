package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/TerrenceTakunda/ekpm/internal/config"
	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/middleware"
	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/repositories"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

type UserService struct {
	cfg   *config.Config
	users repositories.UserRepository
}

func NewUserService(cfg *config.Config, users repositories.UserRepository) *UserService {
	return &UserService{cfg: cfg, users: users}
}

// CreateUser registers a regular account. The email's domain part is
// lowercased before storage; lookups are case-insensitive either way.
func (s *UserService) CreateUser(ctx context.Context, req *dtos.RegisterUserRequest) (*models.User, error) {
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}
	return s.createUser(ctx, req, false)
}

// CreateSuperuser registers a staff account with full privileges. Used
// by seeding, never exposed over HTTP.
func (s *UserService) CreateSuperuser(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	req := &dtos.RegisterUserRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}
	return s.createUser(ctx, req, true)
}

func (s *UserService) createUser(ctx context.Context, req *dtos.RegisterUserRequest, super bool) (*models.User, error) {
	email := utils.NormalizeEmail(req.Email)
	if strings.TrimSpace(email) == "" {
		return nil, utils.ValidationError("Email must be set", utils.ErrInvalidEmail)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError("An account with this email already exists", utils.ErrEmailExists)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
		IsStaff:      super,
		IsSuperuser:  super,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, utils.ConflictError("An account with this email already exists", err)
		}
		return nil, err
	}
	return user, nil
}

// Login exchanges credentials for an access token. Unknown email,
// wrong password and disabled account are indistinguishable to the
// client.
func (s *UserService) Login(ctx context.Context, req *dtos.LoginRequest) (*dtos.LoginResponse, error) {
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}

	user, err := s.users.GetByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || user.PasswordHash == "" ||
		!utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeUnauthorized,
			Message:    "Invalid email or password",
			Err:        utils.ErrBadCredentials,
		}
	}

	token, err := middleware.IssueToken(s.cfg.RSAPrivateKey, s.cfg.TokenIssuer, user.ID, s.cfg.TokenExpiry)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		utils.Logger.WithError(err).Warn("Failed to record last login")
	}
	user.LastLogin = &now

	return &dtos.LoginResponse{
		Token: token,
		User:  dtos.NewUserFromModel(user),
	}, nil
}
