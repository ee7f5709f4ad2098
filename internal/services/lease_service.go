package services

import (
	"context"

	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/repositories"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

type LeaseService struct {
	scope        *ScopeService
	properties   repositories.PropertyRepository
	tenants      repositories.TenantRepository
	subdivisions repositories.SubdivisionRepository
	leases       repositories.LeaseRepository
}

func NewLeaseService(
	scope *ScopeService,
	properties repositories.PropertyRepository,
	tenants repositories.TenantRepository,
	subdivisions repositories.SubdivisionRepository,
	leases repositories.LeaseRepository,
) *LeaseService {
	return &LeaseService{
		scope:        scope,
		properties:   properties,
		tenants:      tenants,
		subdivisions: subdivisions,
		leases:       leases,
	}
}

// Create derives every link server-side: the lessee from the tenant
// route param, the lessor from the property's landlord, the
// organisation and manager from the caller. The insert and the tenant
// back-reference land in one transaction; a tenant that already holds
// a lease fails the unique constraint and surfaces as a conflict.
func (s *LeaseService) Create(ctx context.Context, userID, propertyID, tenantID int64, req *dtos.LeaseRequest) (*models.Lease, error) {
	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	property, err := s.properties.GetByID(ctx, propertyID, caller.OrganisationID())
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, utils.NotFoundError("Property not found")
	}

	tenant, err := s.tenants.GetByID(ctx, tenantID, property.ID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, utils.NotFoundError("Tenant not found")
	}

	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}

	lease, err := req.ToModel()
	if err != nil {
		return nil, utils.ValidationError(err.Error(), err)
	}
	if lease.CoverageCount() != 1 {
		return nil, utils.ValidationError(
			"Exactly one of premise, property unit or entire property must be selected", nil)
	}
	if err := s.checkCoverage(ctx, lease, property.ID); err != nil {
		return nil, err
	}

	lease.TenantLesseeID = tenant.ID
	lease.OwnerLessorID = property.LandLordID
	lease.OrganizationManagingID = caller.OrganisationID()
	lease.CreatedByManagerID = caller.Manager.ID

	if err := s.leases.Create(ctx, lease); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, utils.ConflictError("Tenant already has a lease", utils.ErrLeaseExists)
		}
		return nil, err
	}
	return lease, nil
}

// checkCoverage proves a selected subdivision hangs off the leased
// property and is of the flavour the field claims. A mismatch reads as
// missing, like every other scope violation.
func (s *LeaseService) checkCoverage(ctx context.Context, lease *models.Lease, propertyID int64) error {
	check := func(id int64, kind models.SubdivisionKind, msg string) error {
		subdivision, err := s.subdivisions.GetByID(ctx, id, propertyID)
		if err != nil {
			return err
		}
		if subdivision == nil || subdivision.Kind != kind {
			return utils.NotFoundError(msg)
		}
		return nil
	}

	if lease.PremiseID != nil {
		return check(*lease.PremiseID, models.SubdivisionPremise, "Premise not found")
	}
	if lease.PropertyUnitID != nil {
		return check(*lease.PropertyUnitID, models.SubdivisionUnit, "Property unit not found")
	}
	return nil
}

// GetForTenant fetches the lease hanging off a tenant, addressed through
// the tenant's property.
func (s *LeaseService) GetForTenant(ctx context.Context, userID, propertyID, tenantID int64) (*models.Lease, error) {
	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}
	property, err := s.properties.GetByID(ctx, propertyID, caller.OrganisationID())
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, utils.NotFoundError("Property not found")
	}
	tenant, err := s.tenants.GetByID(ctx, tenantID, property.ID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, utils.NotFoundError("Tenant not found")
	}
	lease, err := s.leases.GetByTenant(ctx, tenant.ID, caller.OrganisationID())
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, utils.NotFoundError("Lease not found")
	}
	return lease, nil
}

func (s *LeaseService) Get(ctx context.Context, userID, id int64) (*models.Lease, error) {
	caller, err := s.scope.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}
	lease, err := s.leases.GetByID(ctx, id, caller.OrganisationID())
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, utils.NotFoundError("Lease not found")
	}
	return lease, nil
}

// Update changes the lease terms only; it never re-runs the tenant
// back-reference and never re-derives the links. The leased property is
// reached through the lessee, so the coverage rule keeps holding.
func (s *LeaseService) Update(ctx context.Context, userID, id int64, req *dtos.LeaseRequest) (*models.Lease, error) {
	lease, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if appErr := utils.ValidateStruct(req); appErr != nil {
		return nil, appErr
	}

	tenant, err := s.tenants.GetByIDInOrganisation(ctx, lease.TenantLesseeID, lease.OrganizationManagingID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, utils.NotFoundError("Tenant not found")
	}

	if err := req.Apply(lease); err != nil {
		return nil, utils.ValidationError(err.Error(), err)
	}
	if lease.CoverageCount() != 1 {
		return nil, utils.ValidationError(
			"Exactly one of premise, property unit or entire property must be selected", nil)
	}
	if err := s.checkCoverage(ctx, lease, tenant.PropertyID); err != nil {
		return nil, err
	}

	if err := s.leases.Update(ctx, lease); err != nil {
		return nil, err
	}
	return lease, nil
}
