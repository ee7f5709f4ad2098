package controllers

import (
	"net/http"

	"github.com/TerrenceTakunda/ekpm/internal/services"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

type PortalController struct {
	portalService *services.PortalService
}

func NewPortalController(portalService *services.PortalService) *PortalController {
	return &PortalController{portalService: portalService}
}

// GET /api/v1/manager/portal/home
func (c *PortalController) HomeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	summary, err := c.portalService.Summary(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// GET /api/v1/manager/portal/options
func (c *PortalController) OptionsHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.portalService.FormOptions())
}

// GET /api/v1/manager/countries
func (c *PortalController) CountriesHandler(w http.ResponseWriter, r *http.Request) {
	countries, err := c.portalService.Countries(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, countries)
}
