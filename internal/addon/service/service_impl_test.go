package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	addondomain "github.com/lodgewise/lodgewise/internal/addon/domain"
	addonrepo "github.com/lodgewise/lodgewise/internal/addon/repository"
)

func setupService(t *testing.T) (addondomain.Service, addondomain.Repository, *gorm.DB, snowflake.ID) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&addondomain.Addon{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	repo := addonrepo.Provide()
	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repo,
	})
	return svc, repo, db, node.Generate()
}

func TestCreateAndUpdate(t *testing.T) {
	svc, _, _, propertyID := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, addondomain.CreateRequest{
		PropertyID: propertyID.String(),
		Name:       "Breakfast",
		Price:      20,
		PerPerson:  true,
		PerDay:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, addondomain.AddonStatusActive, created.Status)
	assert.True(t, created.PerPerson)
	assert.True(t, created.PerDay)

	inactive := addondomain.AddonStatusInactive
	updated, err := svc.Update(ctx, addondomain.UpdateRequest{
		PropertyID: propertyID.String(),
		ID:         created.ID,
		Status:     &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, addondomain.AddonStatusInactive, updated.Status)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _, propertyID := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, addondomain.CreateRequest{PropertyID: "bogus", Name: "Parking", Price: 10})
	assert.ErrorIs(t, err, addondomain.ErrInvalidProperty)

	_, err = svc.Create(ctx, addondomain.CreateRequest{PropertyID: propertyID.String(), Name: "", Price: 10})
	assert.ErrorIs(t, err, addondomain.ErrInvalidName)

	_, err = svc.Create(ctx, addondomain.CreateRequest{PropertyID: propertyID.String(), Name: "Parking", Price: -1})
	assert.ErrorIs(t, err, addondomain.ErrInvalidPrice)

	bad := addondomain.AddonStatus("archived")
	_, err = svc.Create(ctx, addondomain.CreateRequest{PropertyID: propertyID.String(), Name: "Parking", Price: 10, Status: &bad})
	assert.ErrorIs(t, err, addondomain.ErrInvalidStatus)
}

func TestFindActiveByIDs(t *testing.T) {
	svc, repo, db, propertyID := setupService(t)
	ctx := context.Background()

	breakfast, err := svc.Create(ctx, addondomain.CreateRequest{
		PropertyID: propertyID.String(),
		Name:       "Breakfast",
		Price:      20,
	})
	require.NoError(t, err)

	inactive := addondomain.AddonStatusInactive
	parking, err := svc.Create(ctx, addondomain.CreateRequest{
		PropertyID: propertyID.String(),
		Name:       "Parking",
		Price:      15,
		Status:     &inactive,
	})
	require.NoError(t, err)

	node, err := snowflake.NewNode(3)
	require.NoError(t, err)
	foreignProperty := node.Generate()
	foreign, err := svc.Create(ctx, addondomain.CreateRequest{
		PropertyID: foreignProperty.String(),
		Name:       "Spa",
		Price:      50,
	})
	require.NoError(t, err)

	breakfastID, _ := snowflake.ParseString(breakfast.ID)
	parkingID, _ := snowflake.ParseString(parking.ID)
	foreignID, _ := snowflake.ParseString(foreign.ID)

	// Inactive, foreign and unknown ids are silently dropped.
	found, err := repo.FindActiveByIDs(ctx, db, propertyID, []snowflake.ID{
		breakfastID, parkingID, foreignID, snowflake.ID(424242),
	})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, breakfastID, found[0].ID)

	found, err = repo.FindActiveByIDs(ctx, db, propertyID, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}
