// Package domain holds the room type catalog model. Room types are
// property-scoped sellable categories; the quote engine reads their base
// nightly price and capacity.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type RoomType struct {
	ID          snowflake.ID `gorm:"primaryKey"`
	PropertyID  snowflake.ID `gorm:"not null;uniqueIndex:idx_room_types_property_code"`
	Code        string       `gorm:"type:text;not null;uniqueIndex:idx_room_types_property_code"`
	Name        string       `gorm:"type:text;not null"`
	Description *string      `gorm:"type:text"`
	BasePrice   float64      `gorm:"not null"`
	Capacity    int          `gorm:"not null"`
	Active      bool         `gorm:"not null;default:true"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (RoomType) TableName() string { return "room_types" }
