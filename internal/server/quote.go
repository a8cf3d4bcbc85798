package server

import (
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	quotedomain "github.com/lodgewise/lodgewise/internal/quote/domain"
)

const dateLayout = "2006-01-02"

type createQuoteRequest struct {
	PropertyID          string   `json:"property_id" binding:"required"`
	RoomTypeID          string   `json:"room_type_id" binding:"required"`
	CheckIn             string   `json:"check_in" binding:"required"`
	CheckOut            string   `json:"check_out" binding:"required"`
	TotalGuests         int      `json:"total_guests" binding:"required"`
	SelectedServicesIDs []string `json:"selected_services_ids"`
}

// CreateQuote godoc
// @Summary      Price a prospective stay
// @Description  Computes a nightly-resolved quote for a room type over a date range, including selected add-on services. Nothing is persisted.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body createQuoteRequest true "quote parameters"
// @Success      200 {object} quotedomain.QuoteResult
// @Failure      400 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /api/quotes [post]
func (s *Server) CreateQuote(c *gin.Context) {
	var body createQuoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.AbortWithError(c, invalidRequestError())
		return
	}

	req, err := body.toDomain()
	if err != nil {
		s.AbortWithError(c, err)
		return
	}

	result, err := s.quoteSvc.Quote(c.Request.Context(), *req)
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	// The quote body is the result itself, not a data envelope: clients read
	// total_amount and friends at the top level.
	c.JSON(http.StatusOK, result)
}

func (b createQuoteRequest) toDomain() (*quotedomain.QuoteRequest, error) {
	propertyID, err := snowflake.ParseString(b.PropertyID)
	if err != nil {
		return nil, quotedomain.ErrInvalidRequest
	}
	roomTypeID, err := snowflake.ParseString(b.RoomTypeID)
	if err != nil {
		return nil, quotedomain.ErrInvalidRequest
	}
	checkIn, err := time.ParseInLocation(dateLayout, b.CheckIn, time.UTC)
	if err != nil {
		return nil, quotedomain.ErrInvalidDateRange
	}
	checkOut, err := time.ParseInLocation(dateLayout, b.CheckOut, time.UTC)
	if err != nil {
		return nil, quotedomain.ErrInvalidDateRange
	}

	addonIDs := make([]snowflake.ID, 0, len(b.SelectedServicesIDs))
	for _, raw := range b.SelectedServicesIDs {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return nil, quotedomain.ErrInvalidRequest
		}
		addonIDs = append(addonIDs, id)
	}

	return &quotedomain.QuoteRequest{
		PropertyID:  propertyID,
		RoomTypeID:  roomTypeID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalGuests: b.TotalGuests,
		AddonIDs:    addonIDs,
	}, nil
}
