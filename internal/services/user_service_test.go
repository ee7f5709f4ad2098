package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/middleware"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

func registerReq() *dtos.RegisterUserRequest {
	return &dtos.RegisterUserRequest{
		Email:     "Tariro@EXAMPLE.com",
		Password:  "s3cret-passw0rd",
		FirstName: "Tariro",
		LastName:  "Ndlovu",
	}
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.cfg, f.users)

	user, err := svc.CreateUser(context.Background(), registerReq())
	require.NoError(t, err)
	// Only the domain part is lowercased.
	assert.Equal(t, "Tariro@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cret-passw0rd", user.PasswordHash)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.cfg, f.users)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, registerReq())
	require.NoError(t, err)

	// Same address with different casing is still the same account.
	req := registerReq()
	req.Email = "tariro@example.COM"
	_, err = svc.CreateUser(ctx, req)
	requireAppError(t, err, http.StatusConflict, utils.ErrCodeConflict)
}

func TestCreateUserValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.cfg, f.users)

	t.Run("short password", func(t *testing.T) {
		req := registerReq()
		req.Password = "short"
		_, err := svc.CreateUser(context.Background(), req)
		requireAppError(t, err, http.StatusBadRequest, utils.ErrCodeValidation)
	})

	t.Run("bad email", func(t *testing.T) {
		req := registerReq()
		req.Email = "not-an-email"
		_, err := svc.CreateUser(context.Background(), req)
		requireAppError(t, err, http.StatusBadRequest, utils.ErrCodeValidation)
	})
}

func TestCreateSuperuser(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.cfg, f.users)

	user, err := svc.CreateSuperuser(context.Background(), "root@example.com", "s3cret-passw0rd", "Site", "Admin")
	require.NoError(t, err)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
}

func TestLoginIssuesValidToken(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.cfg, f.users)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &dtos.LoginRequest{Email: "tariro@example.com", Password: "s3cret-passw0rd"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.User.ID)

	userID, err := middleware.ValidateToken(resp.Token, f.cfg.TokenIssuer, f.cfg.RSAPublicKey)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)

	stored, err := f.users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.cfg, f.users)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, registerReq())
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dtos.LoginRequest{Email: created.Email, Password: "wrong-password"})
		requireAppError(t, err, http.StatusUnauthorized, utils.ErrCodeUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &dtos.LoginRequest{Email: "nobody@example.com", Password: "s3cret-passw0rd"})
		requireAppError(t, err, http.StatusUnauthorized, utils.ErrCodeUnauthorized)
	})

	t.Run("disabled account", func(t *testing.T) {
		for _, u := range f.users.users {
			if u.ID == created.ID {
				u.IsActive = false
			}
		}
		_, err := svc.Login(ctx, &dtos.LoginRequest{Email: created.Email, Password: "s3cret-passw0rd"})
		requireAppError(t, err, http.StatusUnauthorized, utils.ErrCodeUnauthorized)
	})

	t.Run("account without a password", func(t *testing.T) {
		// Seed fixture users carry no hash at all.
		_, err := svc.Login(ctx, &dtos.LoginRequest{Email: "alice@example.com", Password: "anything-at-all"})
		requireAppError(t, err, http.StatusUnauthorized, utils.ErrCodeUnauthorized)
	})
}
