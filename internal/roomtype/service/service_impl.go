package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	roomtypedomain "github.com/lodgewise/lodgewise/internal/roomtype/domain"
)

const pgUniqueViolation = "23505"

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  roomtypedomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  roomtypedomain.Repository
}

func New(p Params) roomtypedomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("roomtype.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req roomtypedomain.CreateRequest) (*roomtypedomain.Response, error) {
	propertyID, err := parseID(req.PropertyID)
	if err != nil {
		return nil, roomtypedomain.ErrInvalidProperty
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, roomtypedomain.ErrInvalidName
	}
	if req.BasePrice < 0 {
		return nil, roomtypedomain.ErrInvalidBasePrice
	}
	if req.Capacity < 1 {
		return nil, roomtypedomain.ErrInvalidCapacity
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	entity := &roomtypedomain.RoomType{
		ID:          s.genID.Generate(),
		PropertyID:  propertyID,
		Code:        slug.Make(name),
		Name:        name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Capacity:    req.Capacity,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, roomtypedomain.ErrCodeTaken
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, roomtypedomain.ErrCodeTaken
		}
		return nil, err
	}

	s.log.Info("room type created",
		zap.String("room_type_id", entity.ID.String()),
		zap.String("property_id", propertyID.String()),
		zap.String("code", entity.Code),
	)
	return toResponse(entity), nil
}

func (s *Service) Get(ctx context.Context, propertyID, id string) (*roomtypedomain.Response, error) {
	pid, err := parseID(propertyID)
	if err != nil {
		return nil, roomtypedomain.ErrInvalidProperty
	}
	rtID, err := parseID(id)
	if err != nil {
		return nil, roomtypedomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, pid, rtID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, roomtypedomain.ErrNotFound
	}
	return toResponse(entity), nil
}

func (s *Service) List(ctx context.Context, propertyID string) ([]roomtypedomain.Response, error) {
	pid, err := parseID(propertyID)
	if err != nil {
		return nil, roomtypedomain.ErrInvalidProperty
	}

	items, err := s.repo.List(ctx, s.db, pid)
	if err != nil {
		return nil, err
	}

	out := make([]roomtypedomain.Response, 0, len(items))
	for i := range items {
		out = append(out, *toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, req roomtypedomain.UpdateRequest) (*roomtypedomain.Response, error) {
	pid, err := parseID(req.PropertyID)
	if err != nil {
		return nil, roomtypedomain.ErrInvalidProperty
	}
	rtID, err := parseID(req.ID)
	if err != nil {
		return nil, roomtypedomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, pid, rtID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, roomtypedomain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, roomtypedomain.ErrInvalidName
		}
		entity.Name = name
	}
	if req.Description != nil {
		entity.Description = req.Description
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return nil, roomtypedomain.ErrInvalidBasePrice
		}
		entity.BasePrice = *req.BasePrice
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, roomtypedomain.ErrInvalidCapacity
		}
		entity.Capacity = *req.Capacity
	}
	if req.Active != nil {
		entity.Active = *req.Active
	}
	entity.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, entity); err != nil {
		return nil, err
	}
	return toResponse(entity), nil
}

func toResponse(rt *roomtypedomain.RoomType) *roomtypedomain.Response {
	return &roomtypedomain.Response{
		ID:          rt.ID.String(),
		PropertyID:  rt.PropertyID.String(),
		Code:        rt.Code,
		Name:        rt.Name,
		Description: rt.Description,
		BasePrice:   rt.BasePrice,
		Capacity:    rt.Capacity,
		Active:      rt.Active,
		CreatedAt:   rt.CreatedAt,
		UpdatedAt:   rt.UpdatedAt,
	}
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}
