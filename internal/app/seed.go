package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/repositories"
	"github.com/TerrenceTakunda/ekpm/internal/services"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

// The fixed accounts demo environments boot with.
const (
	demoOrganisationName = "Demo Property Group"
	demoSuperuserEmail   = "admin@ekpm.local"
	demoManagerEmail     = "manager@ekpm.local"
	demoPassword         = "ChangeMe123!"
)

var seedCountries = []models.Country{
	{Code: "ZW", Name: "Zimbabwe"},
	{Code: "ZA", Name: "South Africa"},
	{Code: "BW", Name: "Botswana"},
	{Code: "ZM", Name: "Zambia"},
	{Code: "MZ", Name: "Mozambique"},
	{Code: "NA", Name: "Namibia"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "US", Name: "United States"},
}

// SeedCountries fills the lookup table. Idempotent per code; races
// with another instance lose to the unique constraint and move on.
func SeedCountries(ctx context.Context, countries repositories.CountryRepository) error {
	for i := range seedCountries {
		c := seedCountries[i]
		existing, err := countries.GetByCode(ctx, c.Code)
		if err != nil {
			return fmt.Errorf("check country %s: %w", c.Code, err)
		}
		if existing != nil {
			continue
		}
		if err := countries.Create(ctx, &c); err != nil {
			if repositories.IsUniqueViolation(err) {
				continue
			}
			return fmt.Errorf("seed country %s: %w", c.Code, err)
		}
	}
	utils.Logger.Infof("Seeded %d countries", len(seedCountries))
	return nil
}

// SeedDemoData creates a demo organisation, a superuser and one
// property manager bound to the organisation. Idempotent: existing
// records are left alone.
func SeedDemoData(
	ctx context.Context,
	countries repositories.CountryRepository,
	organisations repositories.OrganisationRepository,
	users repositories.UserRepository,
	managers repositories.PropertyManagerRepository,
	userService *services.UserService,
) error {
	home, err := countries.GetByCode(ctx, "ZW")
	if err != nil {
		return err
	}
	if home == nil {
		return errors.New("seed countries before demo data")
	}

	org, err := organisations.GetByCompanyName(ctx, demoOrganisationName)
	if err != nil {
		return err
	}
	if org == nil {
		org = &models.Organisation{
			CompanyName: demoOrganisationName,
			Address:     "1 Union Avenue",
			City:        "Harare",
			CountryID:   home.ID,
			Phone:       "+263 242 000000",
			Email:       "info@ekpm.local",
		}
		if err := organisations.Create(ctx, org); err != nil {
			return fmt.Errorf("seed organisation: %w", err)
		}
	}

	if _, err := seedUser(ctx, users, userService, demoSuperuserEmail, "Site", "Admin", true); err != nil {
		return err
	}

	managerUser, err := seedUser(ctx, users, userService, demoManagerEmail, "Molly", "Moyo", false)
	if err != nil {
		return err
	}

	manager, err := managers.GetByUserID(ctx, managerUser.ID)
	if err != nil {
		return err
	}
	if manager == nil {
		manager = &models.PropertyManager{
			UserID:         managerUser.ID,
			OrganisationID: org.ID,
			Details:        "Seeded demo manager",
		}
		if err := managers.Create(ctx, manager); err != nil && !repositories.IsUniqueViolation(err) {
			return fmt.Errorf("seed manager: %w", err)
		}
	}

	utils.Logger.Info("Demo data seeding completed.")
	return nil
}

func seedUser(
	ctx context.Context,
	users repositories.UserRepository,
	userService *services.UserService,
	email, firstName, lastName string,
	super bool,
) (*models.User, error) {
	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if super {
		return userService.CreateSuperuser(ctx, email, demoPassword, firstName, lastName)
	}
	return userService.CreateUser(ctx, &dtos.RegisterUserRequest{
		Email:     email,
		Password:  demoPassword,
		FirstName: firstName,
		LastName:  lastName,
	})
}
