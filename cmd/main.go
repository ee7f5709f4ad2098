package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/TerrenceTakunda/ekpm/internal/app"
	"github.com/TerrenceTakunda/ekpm/internal/config"
	"github.com/TerrenceTakunda/ekpm/internal/controllers"
	"github.com/TerrenceTakunda/ekpm/internal/middleware"
	"github.com/TerrenceTakunda/ekpm/internal/repositories"
	"github.com/TerrenceTakunda/ekpm/internal/routes"
	"github.com/TerrenceTakunda/ekpm/internal/services"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.AppName)

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize ekpm:", err)
	}
	defer application.Close()

	// Repositories
	countryRepo := repositories.NewCountryRepository(application.DB)
	organisationRepo := repositories.NewOrganisationRepository(application.DB)
	userRepo := repositories.NewUserRepository(application.DB)
	managerRepo := repositories.NewPropertyManagerRepository(application.DB)
	landLordRepo := repositories.NewLandLordRepository(application.DB)
	propertyRepo := repositories.NewPropertyRepository(application.DB)
	subdivisionRepo := repositories.NewSubdivisionRepository(application.DB)
	tenantRepo := repositories.NewTenantRepository(application.DB)
	leaseRepo := repositories.NewLeaseRepository(application.DB)

	// Services
	scopeService := services.NewScopeService(userRepo, managerRepo)
	userService := services.NewUserService(cfg, userRepo)
	landLordService := services.NewLandLordService(cfg, scopeService, landLordRepo)
	propertyService := services.NewPropertyService(scopeService, propertyRepo, landLordRepo)
	subdivisionService := services.NewSubdivisionService(cfg, scopeService, propertyRepo, subdivisionRepo)
	tenantService := services.NewTenantService(cfg, scopeService, propertyRepo, tenantRepo)
	leaseService := services.NewLeaseService(scopeService, propertyRepo, tenantRepo, subdivisionRepo, leaseRepo)
	portalService := services.NewPortalService(cfg, scopeService, tenantRepo, landLordRepo, managerRepo, propertyRepo, countryRepo)

	// Seeding
	if err := app.SeedCountries(context.Background(), countryRepo); err != nil {
		utils.Logger.Fatal("Failed to seed countries:", err)
	}
	if cfg.SeedDemoData {
		if err := app.SeedDemoData(context.Background(), countryRepo, organisationRepo, userRepo, managerRepo, userService); err != nil {
			utils.Logger.Fatal("Failed to seed demo data:", err)
		}
	}

	// Controllers
	healthController := controllers.NewHealthController()
	authController := controllers.NewAuthController(userService)
	portalController := controllers.NewPortalController(portalService)
	landLordController := controllers.NewLandLordController(landLordService)
	propertyController := controllers.NewPropertyController(propertyService)
	subdivisionController := controllers.NewSubdivisionController(subdivisionService)
	tenantController := controllers.NewTenantController(tenantService)
	leaseController := controllers.NewLeaseController(leaseService)

	// Router setup
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc(routes.Health, healthController.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthRegister, authController.RegisterHandler).Methods(http.MethodPost)

	// Secured manager portal
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey, cfg.TokenIssuer))

	secured.HandleFunc(routes.PortalHome, portalController.HomeHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PortalOptions, portalController.OptionsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Countries, portalController.CountriesHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.LandLords, landLordController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.LandLords, landLordController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LandLordByID, landLordController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LandLordByID, landLordController.UpdateHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.Properties, propertyController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Properties, propertyController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyByID, propertyController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyByID, propertyController.UpdateHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.PropertyUnits, subdivisionController.CreateUnitHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PropertyUnits, subdivisionController.ListUnitsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyUnitByID, subdivisionController.GetUnitHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyUnitByID, subdivisionController.UpdateUnitHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.PropertyPremises, subdivisionController.CreatePremiseHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PropertyPremises, subdivisionController.ListPremisesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyPremiseByID, subdivisionController.GetPremiseHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyPremiseByID, subdivisionController.UpdatePremiseHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.PropertyTenants, tenantController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PropertyTenants, tenantController.ListByPropertyHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyTenantByID, tenantController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyTenantByID, tenantController.UpdateHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.AllTenants, tenantController.ListAllHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.TenantLease, leaseController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.TenantLease, leaseController.GetForTenantHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeaseByID, leaseController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeaseByID, leaseController.UpdateHandler).Methods(http.MethodPut)

	co := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("ekpm failed to start:", err)
	}
}
