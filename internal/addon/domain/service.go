package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Get(ctx context.Context, propertyID, id string) (*Response, error)
	List(ctx context.Context, propertyID string) ([]Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
}

type CreateRequest struct {
	PropertyID string       `json:"property_id"`
	Name       string       `json:"name"`
	Price      float64      `json:"price"`
	PerPerson  bool         `json:"is_per_person"`
	PerDay     bool         `json:"is_per_day"`
	Status     *AddonStatus `json:"status,omitempty"`
}

type UpdateRequest struct {
	PropertyID string       `json:"property_id"`
	ID         string       `json:"id"`
	Name       *string      `json:"name,omitempty"`
	Price      *float64     `json:"price,omitempty"`
	PerPerson  *bool        `json:"is_per_person,omitempty"`
	PerDay     *bool        `json:"is_per_day,omitempty"`
	Status     *AddonStatus `json:"status,omitempty"`
}

type Response struct {
	ID         string      `json:"id"`
	PropertyID string      `json:"property_id"`
	Name       string      `json:"name"`
	Price      float64     `json:"price"`
	PerPerson  bool        `json:"is_per_person"`
	PerDay     bool        `json:"is_per_day"`
	Status     AddonStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

var (
	ErrInvalidProperty = errors.New("invalid_property")
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrNotFound        = errors.New("not_found")
)
