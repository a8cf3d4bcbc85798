package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	pricingruledomain "github.com/lodgewise/lodgewise/internal/pricingrule/domain"
	"github.com/lodgewise/lodgewise/pkg/db/pagination"
)

const dateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  pricingruledomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  pricingruledomain.Repository
}

func New(p Params) pricingruledomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("pricingrule.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req pricingruledomain.CreateRequest) (*pricingruledomain.Response, error) {
	propertyID, err := parseID(req.PropertyID)
	if err != nil {
		return nil, pricingruledomain.ErrInvalidProperty
	}

	var roomTypeID *snowflake.ID
	if req.RoomTypeID != nil && strings.TrimSpace(*req.RoomTypeID) != "" {
		id, err := parseID(*req.RoomTypeID)
		if err != nil {
			return nil, pricingruledomain.ErrInvalidRoomType
		}
		roomTypeID = &id
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pricingruledomain.ErrInvalidName
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, pricingruledomain.ErrInvalidDateWindow
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, pricingruledomain.ErrInvalidDateWindow
	}
	if !endDate.After(startDate) {
		return nil, pricingruledomain.ErrInvalidDateWindow
	}

	// A rule must carry at least one price term. Both may be present; the
	// engine treats the override as authoritative in that case.
	if req.BasePriceOverride == nil && req.PriceModifier == nil {
		return nil, pricingruledomain.ErrMissingPriceTerm
	}
	if req.BasePriceOverride != nil && *req.BasePriceOverride < 0 {
		return nil, pricingruledomain.ErrInvalidPriceTerm
	}
	if req.PriceModifier != nil && *req.PriceModifier <= 0 {
		return nil, pricingruledomain.ErrInvalidPriceTerm
	}

	if req.MinStay != nil && *req.MinStay < 1 {
		return nil, pricingruledomain.ErrInvalidStayBound
	}
	if req.MaxStay != nil && *req.MaxStay < 1 {
		return nil, pricingruledomain.ErrInvalidStayBound
	}
	if req.MinStay != nil && req.MaxStay != nil && *req.MaxStay < *req.MinStay {
		return nil, pricingruledomain.ErrInvalidStayBound
	}

	status := pricingruledomain.RuleStatusActive
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, pricingruledomain.ErrInvalidStatus
		}
		status = *req.Status
	}

	now := time.Now().UTC()
	entity := &pricingruledomain.PricingRule{
		ID:                s.genID.Generate(),
		PropertyID:        propertyID,
		RoomTypeID:        roomTypeID,
		Name:              name,
		StartDate:         startDate,
		EndDate:           endDate,
		BasePriceOverride: req.BasePriceOverride,
		PriceModifier:     req.PriceModifier,
		MinStay:           req.MinStay,
		MaxStay:           req.MaxStay,
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if req.Metadata != nil {
		entity.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	s.log.Info("pricing rule created",
		zap.String("rule_id", entity.ID.String()),
		zap.String("property_id", propertyID.String()),
		zap.Time("start_date", startDate),
		zap.Time("end_date", endDate),
	)
	return toResponse(entity), nil
}

func (s *Service) Get(ctx context.Context, propertyID, id string) (*pricingruledomain.Response, error) {
	pid, err := parseID(propertyID)
	if err != nil {
		return nil, pricingruledomain.ErrInvalidProperty
	}
	ruleID, err := parseID(id)
	if err != nil {
		return nil, pricingruledomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, pid, ruleID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, pricingruledomain.ErrNotFound
	}
	return toResponse(entity), nil
}

func (s *Service) List(ctx context.Context, req pricingruledomain.ListRequest) (pricingruledomain.ListResponse, error) {
	pid, err := parseID(req.PropertyID)
	if err != nil {
		return pricingruledomain.ListResponse{}, pricingruledomain.ErrInvalidProperty
	}

	opts := pricingruledomain.ListOptions{Status: req.Status}
	if req.RoomTypeID != nil && strings.TrimSpace(*req.RoomTypeID) != "" {
		id, err := parseID(*req.RoomTypeID)
		if err != nil {
			return pricingruledomain.ListResponse{}, pricingruledomain.ErrInvalidRoomType
		}
		opts.RoomTypeID = &id
	}

	pageSize := req.PageSize
	if pageSize < 0 {
		pageSize = 0
	} else if pageSize == 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, pid, opts, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return pricingruledomain.ListResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(item *pricingruledomain.PricingRule) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        item.ID.String(),
			CreatedAt: item.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	resp := pricingruledomain.ListResponse{Rules: make([]pricingruledomain.Response, 0, len(items))}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	for _, item := range items {
		resp.Rules = append(resp.Rules, *toResponse(item))
	}
	return resp, nil
}

func (s *Service) UpdateStatus(ctx context.Context, propertyID, id string, status pricingruledomain.RuleStatus) (*pricingruledomain.Response, error) {
	if !status.Valid() {
		return nil, pricingruledomain.ErrInvalidStatus
	}
	pid, err := parseID(propertyID)
	if err != nil {
		return nil, pricingruledomain.ErrInvalidProperty
	}
	ruleID, err := parseID(id)
	if err != nil {
		return nil, pricingruledomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, pid, ruleID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, pricingruledomain.ErrNotFound
	}

	entity.Status = status
	entity.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, entity); err != nil {
		return nil, err
	}
	return toResponse(entity), nil
}

func (s *Service) Delete(ctx context.Context, propertyID, id string) error {
	pid, err := parseID(propertyID)
	if err != nil {
		return pricingruledomain.ErrInvalidProperty
	}
	ruleID, err := parseID(id)
	if err != nil {
		return pricingruledomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, pid, ruleID)
	if err != nil {
		return err
	}
	if entity == nil {
		return pricingruledomain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, pid, ruleID)
}

func toResponse(rule *pricingruledomain.PricingRule) *pricingruledomain.Response {
	resp := &pricingruledomain.Response{
		ID:                rule.ID.String(),
		PropertyID:        rule.PropertyID.String(),
		Name:              rule.Name,
		StartDate:         rule.StartDate.Format(dateLayout),
		EndDate:           rule.EndDate.Format(dateLayout),
		BasePriceOverride: rule.BasePriceOverride,
		PriceModifier:     rule.PriceModifier,
		MinStay:           rule.MinStay,
		MaxStay:           rule.MaxStay,
		Status:            rule.Status,
		CreatedAt:         rule.CreatedAt,
		UpdatedAt:         rule.UpdatedAt,
	}
	if rule.RoomTypeID != nil {
		id := rule.RoomTypeID.String()
		resp.RoomTypeID = &id
	}
	if rule.Metadata != nil {
		resp.Metadata = map[string]any(rule.Metadata)
	}
	return resp
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(value))
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}
