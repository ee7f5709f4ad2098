package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TerrenceTakunda/ekpm/internal/dtos"
	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

func propertyReq(landLordID int64) *dtos.PropertyRequest {
	return &dtos.PropertyRequest{
		PropertyType:  "Commercial",
		LandLordID:    landLordID,
		Title:         "Karigamombe Centre",
		PropertyValue: "1500000.00",
		Address:       "53 Samora Machel Ave",
		City:          "Harare",
		CountryID:     1,
		LotSize:       "1200.5",
		BuildingSize:  "900",
	}
}

func TestPropertyCreateStampsOrganisation(t *testing.T) {
	f := newFixture(t)
	svc := NewPropertyService(f.scope, f.properties, f.landlords)

	landlord := f.addLandLord(t, f.orgA)

	property, err := svc.Create(context.Background(), f.managerA, propertyReq(landlord.ID))
	require.NoError(t, err)
	assert.Equal(t, f.orgA, property.OrganisationManagingID)
	assert.Equal(t, landlord.ID, property.LandLordID)
}

func TestPropertyCreateRejectsForeignLandlord(t *testing.T) {
	f := newFixture(t)
	svc := NewPropertyService(f.scope, f.properties, f.landlords)

	// The landlord exists, but belongs to another organisation; to the
	// caller it must look absent.
	foreign := f.addLandLord(t, f.orgB)

	_, err := svc.Create(context.Background(), f.managerA, propertyReq(foreign.ID))
	requireAppError(t, err, http.StatusNotFound, utils.ErrCodeNotFound)
}

func TestPropertyCreateRejectsBadPayload(t *testing.T) {
	f := newFixture(t)
	svc := NewPropertyService(f.scope, f.properties, f.landlords)
	landlord := f.addLandLord(t, f.orgA)

	t.Run("bad decimal", func(t *testing.T) {
		req := propertyReq(landlord.ID)
		req.PropertyValue = "a lot"
		_, err := svc.Create(context.Background(), f.managerA, req)
		requireAppError(t, err, http.StatusBadRequest, utils.ErrCodeValidation)
	})

	t.Run("bad property type", func(t *testing.T) {
		req := propertyReq(landlord.ID)
		req.PropertyType = "Castle"
		_, err := svc.Create(context.Background(), f.managerA, req)
		requireAppError(t, err, http.StatusBadRequest, utils.ErrCodeValidation)
	})

	t.Run("bad date", func(t *testing.T) {
		req := propertyReq(landlord.ID)
		req.FirstErectedDate = ptr("12/01/1999")
		_, err := svc.Create(context.Background(), f.managerA, req)
		requireAppError(t, err, http.StatusBadRequest, utils.ErrCodeValidation)
	})
}

func TestPropertyListAndGetAreScoped(t *testing.T) {
	f := newFixture(t)
	svc := NewPropertyService(f.scope, f.properties, f.landlords)

	landlordA := f.addLandLord(t, f.orgA)
	landlordB := f.addLandLord(t, f.orgB)
	propA := f.addProperty(t, f.orgA, landlordA.ID)
	f.addProperty(t, f.orgB, landlordB.ID)

	page, err := svc.List(context.Background(), f.managerA, "")
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, propA.ID, page.Results[0].ID)

	_, err = svc.Get(context.Background(), f.managerB, propA.ID)
	requireAppError(t, err, http.StatusNotFound, utils.ErrCodeNotFound)
}

func TestPropertyUpdateKeepsLinks(t *testing.T) {
	f := newFixture(t)
	svc := NewPropertyService(f.scope, f.properties, f.landlords)

	landlord := f.addLandLord(t, f.orgA)
	property := f.addProperty(t, f.orgA, landlord.ID)

	req := propertyReq(9999) // client-sent landlord id is ignored on update
	req.Title = "Renamed Towers"
	updated, err := svc.Update(context.Background(), f.managerA, property.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Towers", updated.Title)
	assert.Equal(t, landlord.ID, updated.LandLordID)
	assert.Equal(t, f.orgA, updated.OrganisationManagingID)
}
