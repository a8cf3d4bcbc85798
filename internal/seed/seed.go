// Package seed provisions a demo property catalog so a fresh deployment can
// answer quotes immediately. Seeding is idempotent: rows are keyed by their
// natural identifiers and re-running is a no-op.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	addondomain "github.com/lodgewise/lodgewise/internal/addon/domain"
	pricingruledomain "github.com/lodgewise/lodgewise/internal/pricingrule/domain"
	roomtypedomain "github.com/lodgewise/lodgewise/internal/roomtype/domain"
)

const (
	// DemoPropertyID is the fixed property the demo catalog belongs to.
	DemoPropertyID snowflake.ID = 1

	demoStandardName = "Standard Double"
	demoDeluxeName   = "Deluxe Suite"
	demoRuleName     = "Winter High Season"
	demoAddonName    = "Breakfast"
)

// EnsureDemoCatalog seeds two room types, a seasonal pricing rule and a
// breakfast add-on for the demo property.
func EnsureDemoCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		standard, err := ensureRoomTypeTx(ctx, tx, node, demoStandardName, "Queen bed, city view.", 200, 2)
		if err != nil {
			return err
		}
		if _, err := ensureRoomTypeTx(ctx, tx, node, demoDeluxeName, "King bed, separate living area.", 350, 4); err != nil {
			return err
		}
		if err := ensureSeasonalRuleTx(ctx, tx, node, standard.ID); err != nil {
			return err
		}
		return ensureBreakfastAddonTx(ctx, tx, node)
	})
}

func ensureRoomTypeTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, name, description string, basePrice float64, capacity int) (*roomtypedomain.RoomType, error) {
	code := slug.Make(name)

	var existing roomtypedomain.RoomType
	err := tx.WithContext(ctx).
		Where("property_id = ? AND code = ?", DemoPropertyID, code).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	roomType := roomtypedomain.RoomType{
		ID:          node.Generate(),
		PropertyID:  DemoPropertyID,
		Code:        code,
		Name:        name,
		Description: &description,
		BasePrice:   basePrice,
		Capacity:    capacity,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tx.WithContext(ctx).Create(&roomType).Error; err != nil {
		return nil, err
	}
	return &roomType, nil
}

func ensureSeasonalRuleTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, roomTypeID snowflake.ID) error {
	var count int64
	err := tx.WithContext(ctx).
		Model(&pricingruledomain.PricingRule{}).
		Where("property_id = ? AND name = ?", DemoPropertyID, demoRuleName).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	year := now.Year()
	modifier := 1.5
	minStay := 2

	rule := pricingruledomain.PricingRule{
		ID:            node.Generate(),
		PropertyID:    DemoPropertyID,
		RoomTypeID:    &roomTypeID,
		Name:          demoRuleName,
		StartDate:     time.Date(year, time.December, 20, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(year+1, time.January, 5, 0, 0, 0, 0, time.UTC),
		PriceModifier: &modifier,
		MinStay:       &minStay,
		Status:        pricingruledomain.RuleStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return tx.WithContext(ctx).Create(&rule).Error
}

func ensureBreakfastAddonTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	err := tx.WithContext(ctx).
		Model(&addondomain.Addon{}).
		Where("property_id = ? AND name = ?", DemoPropertyID, demoAddonName).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	addon := addondomain.Addon{
		ID:         node.Generate(),
		PropertyID: DemoPropertyID,
		Name:       demoAddonName,
		Price:      15,
		PerPerson:  true,
		PerDay:     true,
		Status:     addondomain.AddonStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return tx.WithContext(ctx).Create(&addon).Error
}
