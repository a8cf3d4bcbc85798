package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	pricingruledomain "github.com/lodgewise/lodgewise/internal/pricingrule/domain"
	"github.com/lodgewise/lodgewise/pkg/db/pagination"
)

type repo struct{}

func Provide() pricingruledomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rule *pricingruledomain.PricingRule) error {
	return db.WithContext(ctx).Create(rule).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, propertyID, id snowflake.ID) (*pricingruledomain.PricingRule, error) {
	var rule pricingruledomain.PricingRule
	err := db.WithContext(ctx).
		Where("property_id = ? AND id = ?", propertyID, id).
		First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, propertyID snowflake.ID, opts pricingruledomain.ListOptions, page pagination.Pagination) ([]*pricingruledomain.PricingRule, error) {
	query := db.WithContext(ctx).
		Model(&pricingruledomain.PricingRule{}).
		Where("property_id = ?", propertyID)

	if opts.RoomTypeID != nil {
		query = query.Where("room_type_id = ?", *opts.RoomTypeID)
	}
	if opts.Status != nil {
		query = query.Where("status = ?", *opts.Status)
	}

	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err != nil {
			return nil, err
		}
		createdAt, err := time.Parse(time.RFC3339Nano, cursor.CreatedAt)
		if err != nil {
			return nil, pagination.ErrInvalidPageToken
		}
		id, err := snowflake.ParseString(cursor.ID)
		if err != nil {
			return nil, pagination.ErrInvalidPageToken
		}
		query = query.Where("created_at < ? OR (created_at = ? AND id < ?)", createdAt, createdAt, id)
	}
	if page.PageSize > 0 {
		query = query.Limit(page.PageSize + 1)
	}
	query = query.Order("created_at DESC, id DESC")

	var items []*pricingruledomain.PricingRule
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, rule *pricingruledomain.PricingRule) error {
	return db.WithContext(ctx).Save(rule).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, propertyID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("property_id = ? AND id = ?", propertyID, id).
		Delete(&pricingruledomain.PricingRule{}).Error
}

func (r *repo) ListOverlapping(ctx context.Context, db *gorm.DB, propertyID, roomTypeID snowflake.ID, checkIn, checkOut time.Time) ([]pricingruledomain.PricingRule, error) {
	var items []pricingruledomain.PricingRule
	err := db.WithContext(ctx).
		Where("property_id = ? AND status = ?", propertyID, pricingruledomain.RuleStatusActive).
		Where("room_type_id IS NULL OR room_type_id = ?", roomTypeID).
		Where("start_date <= ? AND end_date >= ?", checkOut, checkIn).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
