package server

import (
	"github.com/gin-gonic/gin"

	addondomain "github.com/lodgewise/lodgewise/internal/addon/domain"
)

// CreateAddon godoc
// @Summary      Create an add-on service
// @Tags         addon-services
// @Accept       json
// @Produce      json
// @Param        request body addondomain.CreateRequest true "add-on service"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Router       /api/addon-services [post]
func (s *Server) CreateAddon(c *gin.Context) {
	var req addondomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.addonSvc.Create(c.Request.Context(), req)
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// ListAddons godoc
// @Summary      List add-on services for a property
// @Tags         addon-services
// @Produce      json
// @Param        property_id query string true "property id"
// @Success      200 {object} map[string]any
// @Router       /api/addon-services [get]
func (s *Server) ListAddons(c *gin.Context) {
	resp, err := s.addonSvc.List(c.Request.Context(), c.Query("property_id"))
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondList(c, resp, nil)
}

// GetAddon godoc
// @Summary      Fetch an add-on service
// @Tags         addon-services
// @Produce      json
// @Param        id path string true "add-on id"
// @Param        property_id query string true "property id"
// @Success      200 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /api/addon-services/{id} [get]
func (s *Server) GetAddon(c *gin.Context) {
	resp, err := s.addonSvc.Get(c.Request.Context(), c.Query("property_id"), c.Param("id"))
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// UpdateAddon godoc
// @Summary      Update an add-on service
// @Tags         addon-services
// @Accept       json
// @Produce      json
// @Param        id path string true "add-on id"
// @Param        request body addondomain.UpdateRequest true "fields to update"
// @Success      200 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /api/addon-services/{id} [patch]
func (s *Server) UpdateAddon(c *gin.Context) {
	var req addondomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.addonSvc.Update(c.Request.Context(), req)
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}
