package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	addondomain "github.com/lodgewise/lodgewise/internal/addon/domain"
	pricingruledomain "github.com/lodgewise/lodgewise/internal/pricingrule/domain"
	quotedomain "github.com/lodgewise/lodgewise/internal/quote/domain"
	roomtypedomain "github.com/lodgewise/lodgewise/internal/roomtype/domain"
	"github.com/lodgewise/lodgewise/pkg/db/pagination"
)

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func invalidRequestError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "invalid_request"}
}

// AbortWithError maps domain sentinels onto HTTP statuses. Anything
// unrecognized is a 500; the request id in the log line is the correlation
// point, the client never sees internals.
func (s *Server) AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}

	if status, ok := statusForError(err); ok {
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		return
	}

	s.log.Error("request failed",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
}

func statusForError(err error) (int, bool) {
	switch {
	case errors.Is(err, quotedomain.ErrRoomTypeNotFound),
		errors.Is(err, roomtypedomain.ErrNotFound),
		errors.Is(err, pricingruledomain.ErrNotFound),
		errors.Is(err, addondomain.ErrNotFound):
		return http.StatusNotFound, true

	case errors.Is(err, quotedomain.ErrInvalidRequest),
		errors.Is(err, quotedomain.ErrInvalidDateRange),
		errors.Is(err, quotedomain.ErrMinStayViolation),
		errors.Is(err, quotedomain.ErrMaxStayViolation),
		errors.Is(err, pagination.ErrInvalidPageToken):
		return http.StatusBadRequest, true

	case isRoomTypeValidationError(err),
		isPricingRuleValidationError(err),
		isAddonValidationError(err):
		return http.StatusBadRequest, true
	}
	return 0, false
}

func isRoomTypeValidationError(err error) bool {
	switch {
	case errors.Is(err, roomtypedomain.ErrInvalidProperty),
		errors.Is(err, roomtypedomain.ErrInvalidID),
		errors.Is(err, roomtypedomain.ErrInvalidName),
		errors.Is(err, roomtypedomain.ErrInvalidBasePrice),
		errors.Is(err, roomtypedomain.ErrInvalidCapacity),
		errors.Is(err, roomtypedomain.ErrCodeTaken):
		return true
	}
	return false
}

func isPricingRuleValidationError(err error) bool {
	switch {
	case errors.Is(err, pricingruledomain.ErrInvalidProperty),
		errors.Is(err, pricingruledomain.ErrInvalidRoomType),
		errors.Is(err, pricingruledomain.ErrInvalidID),
		errors.Is(err, pricingruledomain.ErrInvalidName),
		errors.Is(err, pricingruledomain.ErrInvalidDateWindow),
		errors.Is(err, pricingruledomain.ErrMissingPriceTerm),
		errors.Is(err, pricingruledomain.ErrInvalidPriceTerm),
		errors.Is(err, pricingruledomain.ErrInvalidStayBound),
		errors.Is(err, pricingruledomain.ErrInvalidStatus):
		return true
	}
	return false
}

func isAddonValidationError(err error) bool {
	switch {
	case errors.Is(err, addondomain.ErrInvalidProperty),
		errors.Is(err, addondomain.ErrInvalidID),
		errors.Is(err, addondomain.ErrInvalidName),
		errors.Is(err, addondomain.ErrInvalidPrice),
		errors.Is(err, addondomain.ErrInvalidStatus):
		return true
	}
	return false
}
