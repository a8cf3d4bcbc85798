package server

import (
	"github.com/gin-gonic/gin"

	roomtypedomain "github.com/lodgewise/lodgewise/internal/roomtype/domain"
)

// CreateRoomType godoc
// @Summary      Create a room type
// @Tags         room-types
// @Accept       json
// @Produce      json
// @Param        request body roomtypedomain.CreateRequest true "room type"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Router       /api/room-types [post]
func (s *Server) CreateRoomType(c *gin.Context) {
	var req roomtypedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.roomTypeSvc.Create(c.Request.Context(), req)
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// ListRoomTypes godoc
// @Summary      List room types for a property
// @Tags         room-types
// @Produce      json
// @Param        property_id query string true "property id"
// @Success      200 {object} map[string]any
// @Router       /api/room-types [get]
func (s *Server) ListRoomTypes(c *gin.Context) {
	resp, err := s.roomTypeSvc.List(c.Request.Context(), c.Query("property_id"))
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondList(c, resp, nil)
}

// GetRoomType godoc
// @Summary      Fetch a room type
// @Tags         room-types
// @Produce      json
// @Param        id path string true "room type id"
// @Param        property_id query string true "property id"
// @Success      200 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /api/room-types/{id} [get]
func (s *Server) GetRoomType(c *gin.Context) {
	resp, err := s.roomTypeSvc.Get(c.Request.Context(), c.Query("property_id"), c.Param("id"))
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// UpdateRoomType godoc
// @Summary      Update a room type
// @Tags         room-types
// @Accept       json
// @Produce      json
// @Param        id path string true "room type id"
// @Param        request body roomtypedomain.UpdateRequest true "fields to update"
// @Success      200 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /api/room-types/{id} [patch]
func (s *Server) UpdateRoomType(c *gin.Context) {
	var req roomtypedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.roomTypeSvc.Update(c.Request.Context(), req)
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}
