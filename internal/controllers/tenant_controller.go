package controllers

import (
	"net/http"

	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/services"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

type TenantController struct {
	tenantService *services.TenantService
}

func NewTenantController(tenantService *services.TenantService) *TenantController {
	return &TenantController{tenantService: tenantService}
}

// POST /api/v1/manager/properties/{prop}/tenants
func (c *TenantController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "prop")
	if !ok {
		return
	}
	var req dtos.TenantRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tenant, err := c.tenantService.Create(r.Context(), userID, propertyID, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, tenant)
}

// GET /api/v1/manager/properties/{prop}/tenants?page=N
func (c *TenantController) ListByPropertyHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "prop")
	if !ok {
		return
	}

	page, err := c.tenantService.ListByProperty(r.Context(), userID, propertyID, pageParam(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

// GET /api/v1/manager/tenants?page=N
func (c *TenantController) ListAllHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	page, err := c.tenantService.ListAll(r.Context(), userID, pageParam(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

// GET /api/v1/manager/properties/{prop}/tenants/{ten}
func (c *TenantController) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "prop")
	if !ok {
		return
	}
	tenantID, ok := pathID(w, r, "ten")
	if !ok {
		return
	}

	tenant, err := c.tenantService.Get(r.Context(), userID, propertyID, tenantID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// PUT /api/v1/manager/properties/{prop}/tenants/{ten}
func (c *TenantController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "prop")
	if !ok {
		return
	}
	tenantID, ok := pathID(w, r, "ten")
	if !ok {
		return
	}
	var req dtos.TenantRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tenant, err := c.tenantService.Update(r.Context(), userID, propertyID, tenantID, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}
