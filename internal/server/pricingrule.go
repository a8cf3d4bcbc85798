package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pricingruledomain "github.com/lodgewise/lodgewise/internal/pricingrule/domain"
)

// CreatePricingRule godoc
// @Summary      Create a pricing rule
// @Description  A rule covers a half-open [start_date, end_date) window and carries a price override or modifier plus optional stay bounds.
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Param        request body pricingruledomain.CreateRequest true "pricing rule"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Router       /api/pricing-rules [post]
func (s *Server) CreatePricingRule(c *gin.Context) {
	var req pricingruledomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ruleSvc.Create(c.Request.Context(), req)
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// ListPricingRules godoc
// @Summary      List pricing rules for a property
// @Tags         pricing-rules
// @Produce      json
// @Param        property_id query string true "property id"
// @Param        room_type_id query string false "filter by room type"
// @Param        status query string false "filter by status"
// @Param        page_token query string false "cursor from a previous page"
// @Param        page_size query int false "page size"
// @Success      200 {object} map[string]any
// @Router       /api/pricing-rules [get]
func (s *Server) ListPricingRules(c *gin.Context) {
	req := pricingruledomain.ListRequest{
		PropertyID: c.Query("property_id"),
		PageToken:  c.Query("page_token"),
	}
	if v := c.Query("room_type_id"); v != "" {
		req.RoomTypeID = &v
	}
	if v := c.Query("status"); v != "" {
		status := pricingruledomain.RuleStatus(v)
		req.Status = &status
	}
	if v := c.Query("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			s.AbortWithError(c, invalidRequestError())
			return
		}
		req.PageSize = size
	}

	resp, err := s.ruleSvc.List(c.Request.Context(), req)
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondList(c, resp.Rules, &resp.PageInfo)
}

// GetPricingRule godoc
// @Summary      Fetch a pricing rule
// @Tags         pricing-rules
// @Produce      json
// @Param        id path string true "rule id"
// @Param        property_id query string true "property id"
// @Success      200 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /api/pricing-rules/{id} [get]
func (s *Server) GetPricingRule(c *gin.Context) {
	resp, err := s.ruleSvc.Get(c.Request.Context(), c.Query("property_id"), c.Param("id"))
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

type updateRuleStatusRequest struct {
	PropertyID string                       `json:"property_id" binding:"required"`
	Status     pricingruledomain.RuleStatus `json:"status" binding:"required"`
}

// UpdatePricingRuleStatus godoc
// @Summary      Activate or deactivate a pricing rule
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Param        id path string true "rule id"
// @Param        request body updateRuleStatusRequest true "new status"
// @Success      200 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /api/pricing-rules/{id}/status [patch]
func (s *Server) UpdatePricingRuleStatus(c *gin.Context) {
	var body updateRuleStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ruleSvc.UpdateStatus(c.Request.Context(), body.PropertyID, c.Param("id"), body.Status)
	if err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// DeletePricingRule godoc
// @Summary      Delete a pricing rule
// @Tags         pricing-rules
// @Produce      json
// @Param        id path string true "rule id"
// @Param        property_id query string true "property id"
// @Success      200 {object} map[string]any
// @Failure      404 {object} map[string]any
// @Router       /api/pricing-rules/{id} [delete]
func (s *Server) DeletePricingRule(c *gin.Context) {
	if err := s.ruleSvc.Delete(c.Request.Context(), c.Query("property_id"), c.Param("id")); err != nil {
		s.AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}
