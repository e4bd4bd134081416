// File: handlers/plan.go
package handlers

import (
	"errors"
	"net/http"

	"letslink/middleware"
	"letslink/models"
	plan "letslink/services/plan"
	"letslink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlanHandler bundles the plan endpoints.
type PlanHandler struct {
	PlanService plan.PlanService
}

// planErrorStatus maps plan service errors onto HTTP statuses.
func planErrorStatus(err error) int {
	switch {
	case errors.Is(err, plan.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, plan.ErrNotMember), errors.Is(err, plan.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CreatePlanHandler handles POST /api/groups/:groupID/plans.
func (h *PlanHandler) CreatePlanHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := middleware.AuthUserID(c)
	groupID := c.Param("groupID")

	var req models.PlanCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.PlanService.CreatePlan(groupID, userID, req)
	if err != nil {
		if status := planErrorStatus(err); status != http.StatusInternalServerError {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create plan", zap.String("groupID", groupID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListPlansHandler handles GET /api/groups/:groupID/plans.
func (h *PlanHandler) ListPlansHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	groupID := c.Param("groupID")

	plans, err := h.PlanService.GetPlansForGroup(groupID, userID)
	if err != nil {
		c.JSON(planErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlanHandler handles GET /api/groups/:groupID/plans/:planID.
func (h *PlanHandler) GetPlanHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	groupID := c.Param("groupID")
	planID := c.Param("planID")

	p, err := h.PlanService.GetPlan(groupID, planID, userID)
	if err != nil {
		c.JSON(planErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePlanHandler handles DELETE /api/groups/:groupID/plans/:planID.
func (h *PlanHandler) DeletePlanHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	groupID := c.Param("groupID")
	planID := c.Param("planID")

	if err := h.PlanService.DeletePlan(groupID, planID, userID); err != nil {
		c.JSON(planErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}
