package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	addondomain "github.com/lodgewise/lodgewise/internal/addon/domain"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  addondomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  addondomain.Repository
}

func New(p Params) addondomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("addon.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req addondomain.CreateRequest) (*addondomain.Response, error) {
	propertyID, err := parseID(req.PropertyID)
	if err != nil {
		return nil, addondomain.ErrInvalidProperty
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, addondomain.ErrInvalidName
	}
	if req.Price < 0 {
		return nil, addondomain.ErrInvalidPrice
	}

	status := addondomain.AddonStatusActive
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, addondomain.ErrInvalidStatus
		}
		status = *req.Status
	}

	now := time.Now().UTC()
	entity := &addondomain.Addon{
		ID:         s.genID.Generate(),
		PropertyID: propertyID,
		Name:       name,
		Price:      req.Price,
		PerPerson:  req.PerPerson,
		PerDay:     req.PerDay,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	s.log.Info("addon service created",
		zap.String("addon_id", entity.ID.String()),
		zap.String("property_id", propertyID.String()),
	)
	return toResponse(entity), nil
}

func (s *Service) Get(ctx context.Context, propertyID, id string) (*addondomain.Response, error) {
	pid, err := parseID(propertyID)
	if err != nil {
		return nil, addondomain.ErrInvalidProperty
	}
	addonID, err := parseID(id)
	if err != nil {
		return nil, addondomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, pid, addonID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, addondomain.ErrNotFound
	}
	return toResponse(entity), nil
}

func (s *Service) List(ctx context.Context, propertyID string) ([]addondomain.Response, error) {
	pid, err := parseID(propertyID)
	if err != nil {
		return nil, addondomain.ErrInvalidProperty
	}

	items, err := s.repo.List(ctx, s.db, pid)
	if err != nil {
		return nil, err
	}

	out := make([]addondomain.Response, 0, len(items))
	for i := range items {
		out = append(out, *toResponse(&items[i]))
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, req addondomain.UpdateRequest) (*addondomain.Response, error) {
	pid, err := parseID(req.PropertyID)
	if err != nil {
		return nil, addondomain.ErrInvalidProperty
	}
	addonID, err := parseID(req.ID)
	if err != nil {
		return nil, addondomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, pid, addonID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, addondomain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, addondomain.ErrInvalidName
		}
		entity.Name = name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, addondomain.ErrInvalidPrice
		}
		entity.Price = *req.Price
	}
	if req.PerPerson != nil {
		entity.PerPerson = *req.PerPerson
	}
	if req.PerDay != nil {
		entity.PerDay = *req.PerDay
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, addondomain.ErrInvalidStatus
		}
		entity.Status = *req.Status
	}
	entity.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, entity); err != nil {
		return nil, err
	}
	return toResponse(entity), nil
}

func toResponse(a *addondomain.Addon) *addondomain.Response {
	return &addondomain.Response{
		ID:         a.ID.String(),
		PropertyID: a.PropertyID.String(),
		Name:       a.Name,
		Price:      a.Price,
		PerPerson:  a.PerPerson,
		PerDay:     a.PerDay,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}
