package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, addon *Addon) error
	FindByID(ctx context.Context, db *gorm.DB, propertyID, id snowflake.ID) (*Addon, error)
	List(ctx context.Context, db *gorm.DB, propertyID snowflake.ID) ([]Addon, error)
	Update(ctx context.Context, db *gorm.DB, addon *Addon) error

	// FindActiveByIDs returns only the active add-ons among ids that belong
	// to the property. Unknown, inactive and foreign ids are simply absent
	// from the result, never an error.
	FindActiveByIDs(ctx context.Context, db *gorm.DB, propertyID snowflake.ID, ids []snowflake.ID) ([]Addon, error)
}
