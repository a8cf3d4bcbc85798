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
	PropertyID  string  `json:"property_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price"`
	Capacity    int     `json:"capacity"`
	Active      *bool   `json:"active,omitempty"`
}

type UpdateRequest struct {
	PropertyID  string   `json:"property_id"`
	ID          string   `json:"id"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	BasePrice   *float64 `json:"base_price,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

type Response struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	BasePrice   float64   `json:"base_price"`
	Capacity    int       `json:"capacity"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrInvalidProperty  = errors.New("invalid_property")
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidBasePrice = errors.New("invalid_base_price")
	ErrInvalidCapacity  = errors.New("invalid_capacity")
	ErrCodeTaken        = errors.New("code_taken")
	ErrNotFound         = errors.New("not_found")
)
