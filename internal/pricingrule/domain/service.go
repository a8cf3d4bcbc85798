package domain

import (
	"context"
	"errors"
	"time"

	"github.com/lodgewise/lodgewise/pkg/db/pagination"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Get(ctx context.Context, propertyID, id string) (*Response, error)
	List(ctx context.Context, req ListRequest) (ListResponse, error)
	UpdateStatus(ctx context.Context, propertyID, id string, status RuleStatus) (*Response, error)
	Delete(ctx context.Context, propertyID, id string) error
}

type CreateRequest struct {
	PropertyID        string         `json:"property_id"`
	RoomTypeID        *string        `json:"room_type_id,omitempty"`
	Name              string         `json:"name"`
	StartDate         string         `json:"start_date"`
	EndDate           string         `json:"end_date"`
	BasePriceOverride *float64       `json:"base_price_override,omitempty"`
	PriceModifier     *float64       `json:"price_modifier,omitempty"`
	MinStay           *int           `json:"min_stay,omitempty"`
	MaxStay           *int           `json:"max_stay,omitempty"`
	Status            *RuleStatus    `json:"status,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

type ListRequest struct {
	PropertyID string
	RoomTypeID *string
	Status     *RuleStatus
	PageToken  string
	PageSize   int
}

type ListResponse struct {
	PageInfo pagination.PageInfo `json:"page_info"`
	Rules    []Response          `json:"rules"`
}

type Response struct {
	ID                string         `json:"id"`
	PropertyID        string         `json:"property_id"`
	RoomTypeID        *string        `json:"room_type_id,omitempty"`
	Name              string         `json:"name"`
	StartDate         string         `json:"start_date"`
	EndDate           string         `json:"end_date"`
	BasePriceOverride *float64       `json:"base_price_override,omitempty"`
	PriceModifier     *float64       `json:"price_modifier,omitempty"`
	MinStay           *int           `json:"min_stay,omitempty"`
	MaxStay           *int           `json:"max_stay,omitempty"`
	Status            RuleStatus     `json:"status"`
	Metadata          map[string]any `json:"metadata,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

var (
	ErrInvalidProperty   = errors.New("invalid_property")
	ErrInvalidRoomType   = errors.New("invalid_room_type")
	ErrInvalidID         = errors.New("invalid_id")
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidDateWindow = errors.New("invalid_date_window")
	ErrMissingPriceTerm  = errors.New("missing_price_term")
	ErrInvalidPriceTerm  = errors.New("invalid_price_term")
	ErrInvalidStayBound  = errors.New("invalid_stay_bound")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrNotFound          = errors.New("not_found")
)
