package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	addondomain "github.com/lodgewise/lodgewise/internal/addon/domain"
)

type repo struct{}

func Provide() addondomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, addon *addondomain.Addon) error {
	return db.WithContext(ctx).Create(addon).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, propertyID, id snowflake.ID) (*addondomain.Addon, error) {
	var a addondomain.Addon
	err := db.WithContext(ctx).
		Where("property_id = ? AND id = ?", propertyID, id).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, propertyID snowflake.ID) ([]addondomain.Addon, error) {
	var items []addondomain.Addon
	err := db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, addon *addondomain.Addon) error {
	return db.WithContext(ctx).Save(addon).Error
}

func (r *repo) FindActiveByIDs(ctx context.Context, db *gorm.DB, propertyID snowflake.ID, ids []snowflake.ID) ([]addondomain.Addon, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var items []addondomain.Addon
	err := db.WithContext(ctx).
		Where("property_id = ? AND status = ? AND id IN ?", propertyID, addondomain.AddonStatusActive, ids).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
