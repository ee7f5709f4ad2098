package controllers

import (
	"net/http"

	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/services"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

type LandLordController struct {
	landLordService *services.LandLordService
}

func NewLandLordController(landLordService *services.LandLordService) *LandLordController {
	return &LandLordController{landLordService: landLordService}
}

// POST /api/v1/manager/landlords
func (c *LandLordController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req dtos.LandLordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	landlord, err := c.landLordService.Create(r.Context(), userID, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, landlord)
}

// GET /api/v1/manager/landlords?page=N
func (c *LandLordController) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	page, err := c.landLordService.List(r.Context(), userID, pageParam(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

// GET /api/v1/manager/landlords/{id}
func (c *LandLordController) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	landlord, err := c.landLordService.Get(r.Context(), userID, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, landlord)
}

// PUT /api/v1/manager/landlords/{id}
func (c *LandLordController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.LandLordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	landlord, err := c.landLordService.Update(r.Context(), userID, id, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, landlord)
}
