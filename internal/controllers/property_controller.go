package controllers

import (
	"net/http"

	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/services"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

type PropertyController struct {
	propertyService *services.PropertyService
}

func NewPropertyController(propertyService *services.PropertyService) *PropertyController {
	return &PropertyController{propertyService: propertyService}
}

// POST /api/v1/manager/properties
func (c *PropertyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req dtos.PropertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	property, err := c.propertyService.Create(r.Context(), userID, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, property)
}

// GET /api/v1/manager/properties?page=N
func (c *PropertyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	page, err := c.propertyService.List(r.Context(), userID, pageParam(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

// GET /api/v1/manager/properties/{prop}
func (c *PropertyController) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "prop")
	if !ok {
		return
	}

	property, err := c.propertyService.Get(r.Context(), userID, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, property)
}

// PUT /api/v1/manager/properties/{prop}
func (c *PropertyController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "prop")
	if !ok {
		return
	}
	var req dtos.PropertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	property, err := c.propertyService.Update(r.Context(), userID, id, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, property)
}
