// Package domain defines the quote request/result pair and the error
// taxonomy of the pricing engine. A quote is ephemeral: nothing here is
// persisted, and the engine issues no writes.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type QuoteRequest struct {
	PropertyID  snowflake.ID
	RoomTypeID  snowflake.ID
	CheckIn     time.Time
	CheckOut    time.Time
	TotalGuests int
	AddonIDs    []snowflake.ID
}

type QuoteResult struct {
	// QuoteRef is an ephemeral correlation token; it is logged but never stored.
	QuoteRef       string  `json:"quote_ref"`
	TotalAmount    float64 `json:"total_amount"`
	PricePerNight  float64 `json:"price_per_night"`
	NumberOfNights int     `json:"number_of_nights"`
}

type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error)
}

var (
	ErrInvalidRequest   = errors.New("invalid_request")
	ErrInvalidDateRange = errors.New("invalid_date_range")
	ErrRoomTypeNotFound = errors.New("room_type_not_found")
	ErrMinStayViolation = errors.New("min_stay_violation")
	ErrMaxStayViolation = errors.New("max_stay_violation")
)
