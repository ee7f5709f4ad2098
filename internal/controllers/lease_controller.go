package controllers

import (
	"net/http"

	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/services"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

type LeaseController struct {
	leaseService *services.LeaseService
}

func NewLeaseController(leaseService *services.LeaseService) *LeaseController {
	return &LeaseController{leaseService: leaseService}
}

// POST /api/v1/manager/properties/{prop}/tenants/{ten}/lease
func (c *LeaseController) CreateHandler(w http.ResponseWriter, r *http.Request) {
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
	var req dtos.LeaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lease, err := c.leaseService.Create(r.Context(), userID, propertyID, tenantID, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, lease)
}

// GET /api/v1/manager/properties/{prop}/tenants/{ten}/lease
func (c *LeaseController) GetForTenantHandler(w http.ResponseWriter, r *http.Request) {
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

	lease, err := c.leaseService.GetForTenant(r.Context(), userID, propertyID, tenantID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lease)
}

// GET /api/v1/manager/leases/{id}
func (c *LeaseController) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	lease, err := c.leaseService.Get(r.Context(), userID, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lease)
}

// PUT /api/v1/manager/leases/{id}
func (c *LeaseController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.LeaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lease, err := c.leaseService.Update(r.Context(), userID, id, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lease)
}
