package controllers

import (
	"net/http"

	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/services"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

// SubdivisionController serves units and premises from the same
// handlers; the routes bind each path to its kind.
type SubdivisionController struct {
	subdivisionService *services.SubdivisionService
}

func NewSubdivisionController(subdivisionService *services.SubdivisionService) *SubdivisionController {
	return &SubdivisionController{subdivisionService: subdivisionService}
}

// POST /api/v1/manager/properties/{prop}/units
func (c *SubdivisionController) CreateUnitHandler(w http.ResponseWriter, r *http.Request) {
	c.create(w, r, models.SubdivisionUnit)
}

// POST /api/v1/manager/properties/{prop}/premises
func (c *SubdivisionController) CreatePremiseHandler(w http.ResponseWriter, r *http.Request) {
	c.create(w, r, models.SubdivisionPremise)
}

// GET /api/v1/manager/properties/{prop}/units?page=N
func (c *SubdivisionController) ListUnitsHandler(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, models.SubdivisionUnit)
}

// GET /api/v1/manager/properties/{prop}/premises?page=N
func (c *SubdivisionController) ListPremisesHandler(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, models.SubdivisionPremise)
}

// GET /api/v1/manager/properties/{prop}/units/{id}
func (c *SubdivisionController) GetUnitHandler(w http.ResponseWriter, r *http.Request) {
	c.get(w, r, models.SubdivisionUnit)
}

// GET /api/v1/manager/properties/{prop}/premises/{id}
func (c *SubdivisionController) GetPremiseHandler(w http.ResponseWriter, r *http.Request) {
	c.get(w, r, models.SubdivisionPremise)
}

// PUT /api/v1/manager/properties/{prop}/units/{id}
func (c *SubdivisionController) UpdateUnitHandler(w http.ResponseWriter, r *http.Request) {
	c.update(w, r, models.SubdivisionUnit)
}

// PUT /api/v1/manager/properties/{prop}/premises/{id}
func (c *SubdivisionController) UpdatePremiseHandler(w http.ResponseWriter, r *http.Request) {
	c.update(w, r, models.SubdivisionPremise)
}

func (c *SubdivisionController) create(w http.ResponseWriter, r *http.Request, kind models.SubdivisionKind) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "prop")
	if !ok {
		return
	}
	var req dtos.SubdivisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	subdivision, err := c.subdivisionService.Create(r.Context(), userID, propertyID, kind, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, subdivision)
}

func (c *SubdivisionController) list(w http.ResponseWriter, r *http.Request, kind models.SubdivisionKind) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "prop")
	if !ok {
		return
	}

	page, err := c.subdivisionService.List(r.Context(), userID, propertyID, kind, pageParam(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

func (c *SubdivisionController) get(w http.ResponseWriter, r *http.Request, kind models.SubdivisionKind) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "prop")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	subdivision, err := c.subdivisionService.Get(r.Context(), userID, propertyID, id, kind)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, subdivision)
}

func (c *SubdivisionController) update(w http.ResponseWriter, r *http.Request, kind models.SubdivisionKind) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "prop")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.SubdivisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	subdivision, err := c.subdivisionService.Update(r.Context(), userID, propertyID, id, kind, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, subdivision)
}
