package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, roomType *RoomType) error
	FindByID(ctx context.Context, db *gorm.DB, propertyID, id snowflake.ID) (*RoomType, error)
	FindActiveByID(ctx context.Context, db *gorm.DB, propertyID, id snowflake.ID) (*RoomType, error)
	List(ctx context.Context, db *gorm.DB, propertyID snowflake.ID) ([]RoomType, error)
	Update(ctx context.Context, db *gorm.DB, roomType *RoomType) error
}
