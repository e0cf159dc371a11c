package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"homestead/internal/models/db_models"
	"homestead/internal/models/request_models"
	"homestead/pkg/utils"
)

func TestDeriveListingType(t *testing.T) {
	cases := []struct {
		propertyType string
		requested    string
		want         string
	}{
		{db_models.PropertyTypeHouse, "", db_models.ListingTypeRent},
		{db_models.PropertyTypeHouse, "sale", db_models.ListingTypeSale},
		{db_models.PropertyTypeApartment, "rent", db_models.ListingTypeRent},
		{db_models.PropertyTypeVacation, "", db_models.ListingTypeRent},
		{db_models.PropertyTypeLand, "rent", db_models.ListingTypeSale},
		{db_models.PropertyTypeLand, "", db_models.ListingTypeSale},
		{db_models.PropertyTypeCommercial, "rent", db_models.ListingTypeSale},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DeriveListingType(tc.propertyType, tc.requested),
			"%s/%s", tc.propertyType, tc.requested)
	}
}

func TestCreatePropertyForcesSaleForLand(t *testing.T) {
	repo := newFakePropertyRepo()
	service := NewCatalogService(repo, zap.NewNop())
	agent := utils.AuthContext{UserID: uuid.New(), Role: db_models.RoleAgent}

	response, err := service.CreateProperty(context.Background(), agent, request_models.PropertyRequest{
		Type:        db_models.PropertyTypeLand,
		Price:       90000,
		City:        "Springfield",
		Sqft:        5000,
		ListingType: "rent",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.ListingTypeSale, response.ListingType)
	assert.Equal(t, 5000.0, response.Sqft)
	assert.True(t, response.Available)
}

func TestCreatePropertyValidatesSubtype(t *testing.T) {
	repo := newFakePropertyRepo()
	service := NewCatalogService(repo, zap.NewNop())
	agent := utils.AuthContext{UserID: uuid.New(), Role: db_models.RoleAgent}

	_, err := service.CreateProperty(context.Background(), agent, request_models.PropertyRequest{
		Type:  db_models.PropertyTypeHouse,
		Price: 1500,
		City:  "Springfield",
		Sqft:  1200,
		// no rooms
	})
	require.ErrorIs(t, err, utils.ErrInvalidInput)
	require.Empty(t, repo.properties)
}

func TestUpdatePropertyRequiresOwnership(t *testing.T) {
	repo := newFakePropertyRepo()
	service := NewCatalogService(repo, zap.NewNop())
	owner := utils.AuthContext{UserID: uuid.New(), Role: db_models.RoleAgent}
	stranger := utils.AuthContext{UserID: uuid.New(), Role: db_models.RoleAgent}

	property := repo.add(1500, true, owner.UserID)

	request := request_models.PropertyRequest{
		Type:  db_models.PropertyTypeHouse,
		Price: 1600,
		City:  "Springfield",
		Sqft:  1200,
		Rooms: 3,
	}
	_, err := service.UpdateProperty(context.Background(), stranger, property.ID.String(), request)
	require.ErrorIs(t, err, utils.ErrNotOwner)

	response, err := service.UpdateProperty(context.Background(), owner, property.ID.String(), request)
	require.NoError(t, err)
	assert.Equal(t, 1600.0, response.Price)
	assert.Equal(t, 3, response.Rooms)
}

func TestDeletePropertyRequiresOwnership(t *testing.T) {
	repo := newFakePropertyRepo()
	service := NewCatalogService(repo, zap.NewNop())
	owner := utils.AuthContext{UserID: uuid.New(), Role: db_models.RoleAgent}
	stranger := utils.AuthContext{UserID: uuid.New(), Role: db_models.RoleAgent}

	property := repo.add(1500, true, owner.UserID)

	err := service.DeleteProperty(context.Background(), stranger, property.ID.String())
	require.ErrorIs(t, err, utils.ErrNotOwner)
	require.Len(t, repo.properties, 1)

	err = service.DeleteProperty(context.Background(), owner, property.ID.String())
	require.NoError(t, err)
	require.Empty(t, repo.properties)
}
