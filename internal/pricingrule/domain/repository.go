package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/lodgewise/lodgewise/pkg/db/pagination"
)

type ListOptions struct {
	RoomTypeID *snowflake.ID
	Status     *RuleStatus
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, rule *PricingRule) error
	FindByID(ctx context.Context, db *gorm.DB, propertyID, id snowflake.ID) (*PricingRule, error)
	List(ctx context.Context, db *gorm.DB, propertyID snowflake.ID, opts ListOptions, page pagination.Pagination) ([]*PricingRule, error)
	Update(ctx context.Context, db *gorm.DB, rule *PricingRule) error
	Delete(ctx context.Context, db *gorm.DB, propertyID, id snowflake.ID) error

	// ListOverlapping returns active rules whose [start_date, end_date]
	// interval touches [checkIn, checkOut), scoped to the room type or
	// property-wide, newest first. The engine's first-match selection relies
	// on this order: the most recently created rule wins a contested night.
	ListOverlapping(ctx context.Context, db *gorm.DB, propertyID, roomTypeID snowflake.ID, checkIn, checkOut time.Time) ([]PricingRule, error)
}
