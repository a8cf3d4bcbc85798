// Package domain holds date-bounded pricing rules. A rule overrides or
// scales the base nightly rate on [start_date, end_date); end_date is
// inclusive at the query layer and exclusive per night in the engine.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type RuleStatus string

const (
	RuleStatusActive   RuleStatus = "active"
	RuleStatusInactive RuleStatus = "inactive"
)

func (s RuleStatus) Valid() bool {
	return s == RuleStatusActive || s == RuleStatusInactive
}

type PricingRule struct {
	ID         snowflake.ID `gorm:"primaryKey"`
	PropertyID snowflake.ID `gorm:"not null;index:idx_pricing_rules_property_window"`
	// RoomTypeID nil means the rule applies to every room type in the property.
	RoomTypeID *snowflake.ID `gorm:"index"`
	Name       string        `gorm:"type:text;not null"`
	StartDate  time.Time     `gorm:"not null;index:idx_pricing_rules_property_window"`
	EndDate    time.Time     `gorm:"not null;index:idx_pricing_rules_property_window"`

	// Override replaces the nightly base price outright; when both override
	// and modifier are present the override wins.
	BasePriceOverride *float64
	PriceModifier     *float64

	MinStay *int
	MaxStay *int

	Status    RuleStatus        `gorm:"type:text;not null;default:'active'"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (PricingRule) TableName() string { return "pricing_rules" }
