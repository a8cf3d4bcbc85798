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

	roomtypedomain "github.com/lodgewise/lodgewise/internal/roomtype/domain"
	roomtyperepo "github.com/lodgewise/lodgewise/internal/roomtype/repository"
)

func setupService(t *testing.T) (roomtypedomain.Service, snowflake.ID) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&roomtypedomain.RoomType{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  roomtyperepo.Provide(),
	})
	return svc, node.Generate()
}

func TestCreate(t *testing.T) {
	svc, propertyID := setupService(t)

	created, err := svc.Create(context.Background(), roomtypedomain.CreateRequest{
		PropertyID: propertyID.String(),
		Name:       "Deluxe Suite",
		BasePrice:  350,
		Capacity:   4,
	})
	require.NoError(t, err)
	assert.Equal(t, "deluxe-suite", created.Code)
	assert.Equal(t, 350.0, created.BasePrice)
	assert.True(t, created.Active)
}

func TestCreate_Validation(t *testing.T) {
	svc, propertyID := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, roomtypedomain.CreateRequest{PropertyID: "bogus", Name: "A", BasePrice: 1, Capacity: 1})
	assert.ErrorIs(t, err, roomtypedomain.ErrInvalidProperty)

	_, err = svc.Create(ctx, roomtypedomain.CreateRequest{PropertyID: propertyID.String(), Name: " ", BasePrice: 1, Capacity: 1})
	assert.ErrorIs(t, err, roomtypedomain.ErrInvalidName)

	_, err = svc.Create(ctx, roomtypedomain.CreateRequest{PropertyID: propertyID.String(), Name: "A", BasePrice: -1, Capacity: 1})
	assert.ErrorIs(t, err, roomtypedomain.ErrInvalidBasePrice)

	_, err = svc.Create(ctx, roomtypedomain.CreateRequest{PropertyID: propertyID.String(), Name: "A", BasePrice: 1, Capacity: 0})
	assert.ErrorIs(t, err, roomtypedomain.ErrInvalidCapacity)
}

func TestCreate_DuplicateCode(t *testing.T) {
	svc, propertyID := setupService(t)
	ctx := context.Background()

	req := roomtypedomain.CreateRequest{
		PropertyID: propertyID.String(),
		Name:       "Garden View",
		BasePrice:  150,
		Capacity:   2,
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, roomtypedomain.ErrCodeTaken)
}

func TestGetListUpdate(t *testing.T) {
	svc, propertyID := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, roomtypedomain.CreateRequest{
		PropertyID: propertyID.String(),
		Name:       "Standard Double",
		BasePrice:  200,
		Capacity:   2,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, propertyID.String(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(ctx, propertyID.String(), snowflake.ID(424242).String())
	assert.ErrorIs(t, err, roomtypedomain.ErrNotFound)

	list, err := svc.List(ctx, propertyID.String())
	require.NoError(t, err)
	require.Len(t, list, 1)

	newPrice := 220.0
	inactive := false
	updated, err := svc.Update(ctx, roomtypedomain.UpdateRequest{
		PropertyID: propertyID.String(),
		ID:         created.ID,
		BasePrice:  &newPrice,
		Active:     &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, 220.0, updated.BasePrice)
	assert.False(t, updated.Active)
}
