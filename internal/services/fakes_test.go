package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/TerrenceTakunda/ekpm/internal/config"
	"github.com/TerrenceTakunda/ekpm/internal/models"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

/* ------------------------------------------------------------------
   In-memory repository fakes. They reproduce the scoping behaviour of
   the SQL layer (out-of-scope rows read as missing) and the unique
   constraint on one lease per tenant.
------------------------------------------------------------------ */

type fakeUserRepo struct {
	nextID int64
	users  []*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.nextID++
	u.ID = r.nextID
	u.DateJoined = time.Now()
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if equalFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	for _, u := range r.users {
		if u.ID == id {
			u.LastLogin = &at
		}
	}
	return nil
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

type fakeManagerRepo struct {
	nextID   int64
	managers []*models.PropertyManager
}

func (r *fakeManagerRepo) Create(_ context.Context, pm *models.PropertyManager) error {
	r.nextID++
	pm.ID = r.nextID
	cp := *pm
	r.managers = append(r.managers, &cp)
	return nil
}

func (r *fakeManagerRepo) GetByID(_ context.Context, id int64) (*models.PropertyManager, error) {
	for _, pm := range r.managers {
		if pm.ID == id {
			cp := *pm
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeManagerRepo) GetByUserID(_ context.Context, userID int64) (*models.PropertyManager, error) {
	for _, pm := range r.managers {
		if pm.UserID == userID {
			cp := *pm
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeManagerRepo) CountByOrganisation(_ context.Context, orgID int64) (int, error) {
	n := 0
	for _, pm := range r.managers {
		if pm.OrganisationID == orgID {
			n++
		}
	}
	return n, nil
}

type fakeLandLordRepo struct {
	nextID    int64
	landlords []*models.LandLord
}

func (r *fakeLandLordRepo) Create(_ context.Context, l *models.LandLord) error {
	r.nextID++
	l.ID = r.nextID
	l.IsActive = true
	l.DateCreated = time.Now()
	l.LastUpdated = l.DateCreated
	cp := *l
	r.landlords = append(r.landlords, &cp)
	return nil
}

func (r *fakeLandLordRepo) GetByID(_ context.Context, id, orgID int64) (*models.LandLord, error) {
	for _, l := range r.landlords {
		if l.ID == id && l.ManagedByID == orgID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLandLordRepo) ListByOrganisation(_ context.Context, orgID int64, limit, offset int) ([]*models.LandLord, error) {
	var scoped []*models.LandLord
	for _, l := range r.landlords {
		if l.ManagedByID == orgID && l.IsActive {
			cp := *l
			scoped = append(scoped, &cp)
		}
	}
	return window(scoped, limit, offset), nil
}

func (r *fakeLandLordRepo) CountByOrganisation(_ context.Context, orgID int64) (int, error) {
	n := 0
	for _, l := range r.landlords {
		if l.ManagedByID == orgID && l.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeLandLordRepo) Update(_ context.Context, l *models.LandLord) error {
	for i, existing := range r.landlords {
		if existing.ID == l.ID {
			cp := *l
			cp.ManagedByID = existing.ManagedByID
			r.landlords[i] = &cp
		}
	}
	return nil
}

type fakePropertyRepo struct {
	nextID     int64
	properties []*models.Property
}

func (r *fakePropertyRepo) Create(_ context.Context, p *models.Property) error {
	r.nextID++
	p.ID = r.nextID
	p.IsActive = true
	p.DateCreated = time.Now()
	p.LastUpdated = p.DateCreated
	cp := *p
	r.properties = append(r.properties, &cp)
	return nil
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id, orgID int64) (*models.Property, error) {
	for _, p := range r.properties {
		if p.ID == id && p.OrganisationManagingID == orgID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePropertyRepo) ListByOrganisation(_ context.Context, orgID int64, limit, offset int) ([]*models.Property, error) {
	var scoped []*models.Property
	for _, p := range r.properties {
		if p.OrganisationManagingID == orgID && p.IsActive {
			cp := *p
			scoped = append(scoped, &cp)
		}
	}
	return window(scoped, limit, offset), nil
}

func (r *fakePropertyRepo) CountByOrganisation(_ context.Context, orgID int64) (int, error) {
	n := 0
	for _, p := range r.properties {
		if p.OrganisationManagingID == orgID && p.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakePropertyRepo) Update(_ context.Context, p *models.Property) error {
	for i, existing := range r.properties {
		if existing.ID == p.ID {
			cp := *p
			cp.OrganisationManagingID = existing.OrganisationManagingID
			cp.LandLordID = existing.LandLordID
			r.properties[i] = &cp
		}
	}
	return nil
}

type fakeSubdivisionRepo struct {
	nextID       int64
	subdivisions []*models.Subdivision
}

func (r *fakeSubdivisionRepo) Create(_ context.Context, s *models.Subdivision) error {
	r.nextID++
	s.ID = r.nextID
	s.IsActive = true
	s.DateCreated = time.Now()
	s.LastUpdated = s.DateCreated
	cp := *s
	r.subdivisions = append(r.subdivisions, &cp)
	return nil
}

func (r *fakeSubdivisionRepo) GetByID(_ context.Context, id, propertyID int64) (*models.Subdivision, error) {
	for _, s := range r.subdivisions {
		if s.ID == id && s.PropertyID == propertyID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSubdivisionRepo) ListByProperty(_ context.Context, propertyID int64, kind models.SubdivisionKind, limit, offset int) ([]*models.Subdivision, error) {
	var scoped []*models.Subdivision
	for _, s := range r.subdivisions {
		if s.PropertyID == propertyID && s.Kind == kind && s.IsActive {
			cp := *s
			scoped = append(scoped, &cp)
		}
	}
	return window(scoped, limit, offset), nil
}

func (r *fakeSubdivisionRepo) CountByProperty(_ context.Context, propertyID int64, kind models.SubdivisionKind) (int, error) {
	n := 0
	for _, s := range r.subdivisions {
		if s.PropertyID == propertyID && s.Kind == kind && s.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubdivisionRepo) Update(_ context.Context, s *models.Subdivision) error {
	for i, existing := range r.subdivisions {
		if existing.ID == s.ID {
			cp := *s
			cp.PropertyID = existing.PropertyID
			cp.Kind = existing.Kind
			r.subdivisions[i] = &cp
		}
	}
	return nil
}

type fakeTenantRepo struct {
	nextID     int64
	tenants    []*models.Tenant
	properties *fakePropertyRepo
}

func (r *fakeTenantRepo) Create(_ context.Context, t *models.Tenant) error {
	r.nextID++
	t.ID = r.nextID
	t.IsActive = true
	t.DateCreated = time.Now()
	t.LastUpdated = t.DateCreated
	cp := *t
	r.tenants = append(r.tenants, &cp)
	return nil
}

func (r *fakeTenantRepo) GetByID(_ context.Context, id, propertyID int64) (*models.Tenant, error) {
	for _, t := range r.tenants {
		if t.ID == id && t.PropertyID == propertyID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTenantRepo) GetByIDInOrganisation(ctx context.Context, id, orgID int64) (*models.Tenant, error) {
	for _, t := range r.tenants {
		if t.ID != id {
			continue
		}
		p, _ := r.properties.GetByID(ctx, t.PropertyID, orgID)
		if p == nil {
			return nil, nil
		}
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeTenantRepo) ListByProperty(_ context.Context, propertyID int64, limit, offset int) ([]*models.Tenant, error) {
	var scoped []*models.Tenant
	for _, t := range r.tenants {
		if t.PropertyID == propertyID && t.IsActive {
			cp := *t
			scoped = append(scoped, &cp)
		}
	}
	return window(scoped, limit, offset), nil
}

func (r *fakeTenantRepo) CountByProperty(_ context.Context, propertyID int64) (int, error) {
	n := 0
	for _, t := range r.tenants {
		if t.PropertyID == propertyID && t.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeTenantRepo) ListByOrganisation(ctx context.Context, orgID int64, limit, offset int) ([]*models.Tenant, error) {
	var scoped []*models.Tenant
	for _, t := range r.tenants {
		if !t.IsActive {
			continue
		}
		p, _ := r.properties.GetByID(ctx, t.PropertyID, orgID)
		if p == nil {
			continue
		}
		cp := *t
		scoped = append(scoped, &cp)
	}
	return window(scoped, limit, offset), nil
}

func (r *fakeTenantRepo) CountByOrganisation(ctx context.Context, orgID int64) (int, error) {
	scoped, _ := r.ListByOrganisation(ctx, orgID, int(^uint(0)>>1), 0)
	return len(scoped), nil
}

func (r *fakeTenantRepo) Update(_ context.Context, t *models.Tenant) error {
	for i, existing := range r.tenants {
		if existing.ID == t.ID {
			cp := *t
			cp.PropertyID = existing.PropertyID
			cp.LeaseID = existing.LeaseID
			r.tenants[i] = &cp
		}
	}
	return nil
}

func (r *fakeTenantRepo) setLease(tenantID, leaseID int64) {
	for _, t := range r.tenants {
		if t.ID == tenantID {
			id := leaseID
			t.LeaseID = &id
		}
	}
}

type fakeLeaseRepo struct {
	nextID  int64
	leases  []*models.Lease
	tenants *fakeTenantRepo
}

// Create mirrors the transactional SQL path: it enforces one lease per
// tenant via a synthetic 23505 and writes the tenant back-reference.
func (r *fakeLeaseRepo) Create(_ context.Context, l *models.Lease) error {
	for _, existing := range r.leases {
		if existing.TenantLesseeID == l.TenantLesseeID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "leases_tenant_lessee_id_key"}
		}
	}
	r.nextID++
	l.ID = r.nextID
	l.IsActive = true
	l.DateCreated = time.Now()
	l.LastUpdated = l.DateCreated
	cp := *l
	r.leases = append(r.leases, &cp)
	r.tenants.setLease(l.TenantLesseeID, l.ID)
	return nil
}

func (r *fakeLeaseRepo) GetByID(_ context.Context, id, orgID int64) (*models.Lease, error) {
	for _, l := range r.leases {
		if l.ID == id && l.OrganizationManagingID == orgID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLeaseRepo) GetByTenant(_ context.Context, tenantID, orgID int64) (*models.Lease, error) {
	for _, l := range r.leases {
		if l.TenantLesseeID == tenantID && l.OrganizationManagingID == orgID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLeaseRepo) Update(_ context.Context, l *models.Lease) error {
	for i, existing := range r.leases {
		if existing.ID == l.ID {
			cp := *l
			r.leases[i] = &cp
		}
	}
	return nil
}

type fakeCountryRepo struct {
	nextID    int64
	countries []*models.Country
}

func (r *fakeCountryRepo) Create(_ context.Context, c *models.Country) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.countries = append(r.countries, &cp)
	return nil
}

func (r *fakeCountryRepo) GetByID(_ context.Context, id int64) (*models.Country, error) {
	for _, c := range r.countries {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCountryRepo) GetByCode(_ context.Context, code string) (*models.Country, error) {
	for _, c := range r.countries {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCountryRepo) List(_ context.Context) ([]*models.Country, error) {
	out := make([]*models.Country, 0, len(r.countries))
	for _, c := range r.countries {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func window[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

/* ------------------------------------------------------------------
   Fixture: two organisations, a manager in each, and a user with no
   manager record at all.
------------------------------------------------------------------ */

type fixture struct {
	cfg *config.Config

	users        *fakeUserRepo
	managers     *fakeManagerRepo
	landlords    *fakeLandLordRepo
	properties   *fakePropertyRepo
	subdivisions *fakeSubdivisionRepo
	tenants      *fakeTenantRepo
	leases       *fakeLeaseRepo
	countries    *fakeCountryRepo

	scope *ScopeService

	orgA, orgB int64

	managerA  int64 // user id of org A's manager
	managerB  int64 // user id of org B's manager
	plainUser int64 // user id with no manager record
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	f := &fixture{
		cfg: &config.Config{
			AppName:            "ekpm-test",
			TokenExpiry:        time.Hour,
			TokenIssuer:        "ekpm",
			RSAPrivateKey:      key,
			RSAPublicKey:       &key.PublicKey,
			IDTypes:            []string{"National ID", "Passport"},
			AccommodationTypes: []string{"Apartment", "Office Space"},
		},
		users:      &fakeUserRepo{},
		managers:   &fakeManagerRepo{},
		landlords:  &fakeLandLordRepo{},
		properties: &fakePropertyRepo{},
		countries:  &fakeCountryRepo{},
	}
	f.subdivisions = &fakeSubdivisionRepo{}
	f.tenants = &fakeTenantRepo{properties: f.properties}
	f.leases = &fakeLeaseRepo{tenants: f.tenants}
	f.scope = NewScopeService(f.users, f.managers)

	ctx := context.Background()
	require.NoError(t, f.countries.Create(ctx, &models.Country{Code: "ZW", Name: "Zimbabwe"}))

	f.orgA = 1
	f.orgB = 2

	f.managerA = f.addManager(t, "alice@example.com", f.orgA)
	f.managerB = f.addManager(t, "bob@example.com", f.orgB)

	plain := &models.User{Email: "carol@example.com", FirstName: "Carol", LastName: "Clerk", IsActive: true}
	require.NoError(t, f.users.Create(ctx, plain))
	f.plainUser = plain.ID

	return f
}

func (f *fixture) addManager(t *testing.T, email string, orgID int64) int64 {
	t.Helper()
	u := &models.User{Email: email, FirstName: "Pat", LastName: "Manager", IsActive: true}
	require.NoError(t, f.users.Create(context.Background(), u))
	require.NoError(t, f.managers.Create(context.Background(), &models.PropertyManager{
		UserID:         u.ID,
		OrganisationID: orgID,
	}))
	return u.ID
}

func (f *fixture) addLandLord(t *testing.T, orgID int64) *models.LandLord {
	t.Helper()
	l := &models.LandLord{
		Name:               "Owner",
		Phone:              "+263 77 000 0000",
		Address:            "2 Samora Machel Ave",
		City:               "Harare",
		CountryID:          1,
		IdentificationType: "National ID",
		Identification:     "63-000000A00",
		NationalityID:      1,
		ManagedByID:        orgID,
	}
	require.NoError(t, f.landlords.Create(context.Background(), l))
	return l
}

func (f *fixture) addProperty(t *testing.T, orgID, landLordID int64) *models.Property {
	t.Helper()
	p := &models.Property{
		PropertyType:           models.PropertyCommercial,
		OrganisationManagingID: orgID,
		LandLordID:             landLordID,
		Title:                  "Karigamombe Centre",
		PropertyValue:          "1500000.00",
		Address:                "53 Samora Machel Ave",
		City:                   "Harare",
		CountryID:              1,
		LotSize:                "1200.5",
		BuildingSize:           "900",
		AcquisitionCost:        "0",
		SellingPrice:           "0",
	}
	require.NoError(t, f.properties.Create(context.Background(), p))
	return p
}

func (f *fixture) addSubdivision(t *testing.T, propertyID int64, kind models.SubdivisionKind) *models.Subdivision {
	t.Helper()
	s := &models.Subdivision{
		PropertyID: propertyID,
		Kind:       kind,
		Title:      "Suite 4",
		TotalArea:  "85.5",
		IsVacant:   true,
	}
	if kind == models.SubdivisionPremise {
		s.AccommodationType = ptr("Office Space")
	}
	require.NoError(t, f.subdivisions.Create(context.Background(), s))
	return s
}

func (f *fixture) addTenant(t *testing.T, propertyID int64) *models.Tenant {
	t.Helper()
	tn := &models.Tenant{
		TenantName:         "Takura Holdings",
		TradingAsListName:  "Takura",
		PropertyID:         propertyID,
		IdentificationType: "National ID",
		Identification:     "63-111111B00",
		Email1:             "takura@example.com",
		Phone1:             "+263 77 111 1111",
		PostalAddress:      "PO Box 100, Harare",
		NationalityID:      1,
	}
	require.NoError(t, f.tenants.Create(context.Background(), tn))
	return tn
}

func ptr[T any](v T) *T { return &v }

// requireAppError asserts err is an AppError with the given status and
// code.
func requireAppError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, status, appErr.StatusCode)
	require.Equal(t, code, appErr.Code)
}
