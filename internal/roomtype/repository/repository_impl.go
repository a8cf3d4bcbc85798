package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	roomtypedomain "github.com/lodgewise/lodgewise/internal/roomtype/domain"
)

type repo struct{}

func Provide() roomtypedomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, roomType *roomtypedomain.RoomType) error {
	return db.WithContext(ctx).Create(roomType).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, propertyID, id snowflake.ID) (*roomtypedomain.RoomType, error) {
	var rt roomtypedomain.RoomType
	err := db.WithContext(ctx).
		Where("property_id = ? AND id = ?", propertyID, id).
		First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *repo) FindActiveByID(ctx context.Context, db *gorm.DB, propertyID, id snowflake.ID) (*roomtypedomain.RoomType, error) {
	var rt roomtypedomain.RoomType
	err := db.WithContext(ctx).
		Where("property_id = ? AND id = ? AND active = ?", propertyID, id, true).
		First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, propertyID snowflake.ID) ([]roomtypedomain.RoomType, error) {
	var items []roomtypedomain.RoomType
	err := db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, roomType *roomtypedomain.RoomType) error {
	return db.WithContext(ctx).Save(roomType).Error
}
