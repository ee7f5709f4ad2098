package controllers

import (
	"net/http"

	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/services"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

type AuthController struct {
	userService *services.UserService
}

func NewAuthController(userService *services.UserService) *AuthController {
	return &AuthController{userService: userService}
}

// POST /api/v1/auth/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := c.userService.Login(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// POST /api/v1/auth/register
func (c *AuthController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := c.userService.CreateUser(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewUserFromModel(user))
}
