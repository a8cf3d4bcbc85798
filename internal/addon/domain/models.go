// Package domain holds add-on services: optional charges a guest can attach
// to a stay (breakfast, parking, airport pickup). Per-person and per-day
// multipliers compose independently.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type AddonStatus string

const (
	AddonStatusActive   AddonStatus = "active"
	AddonStatusInactive AddonStatus = "inactive"
)

func (s AddonStatus) Valid() bool {
	return s == AddonStatusActive || s == AddonStatusInactive
}

type Addon struct {
	ID         snowflake.ID `gorm:"primaryKey"`
	PropertyID snowflake.ID `gorm:"not null;index"`
	Name       string       `gorm:"type:text;not null"`
	Price      float64      `gorm:"not null"`
	PerPerson  bool         `gorm:"not null;default:false"`
	PerDay     bool         `gorm:"not null;default:false"`
	Status     AddonStatus  `gorm:"type:text;not null;default:'active'"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Addon) TableName() string { return "addon_services" }
