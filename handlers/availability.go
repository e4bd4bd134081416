// File: handlers/availability.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"letslink/middleware"
	"letslink/models"
	group "letslink/services/group"
	"letslink/services/schedule"
	user "letslink/services/user"
	"letslink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler bundles the availability submission and aggregated
// view endpoints. Every route is scoped under a group and checks membership
// before touching plan data.
type AvailabilityHandler struct {
	ScheduleService schedule.ScheduleService
	GroupService    group.GroupService
	UserService     user.UserService
}

// scheduleErrorStatus maps schedule service errors onto HTTP statuses.
func scheduleErrorStatus(err error) int {
	switch {
	case schedule.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, schedule.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, schedule.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, group.ErrNotMember):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// SubmitHandler handles POST /api/groups/:groupID/plans/:planID/availability.
func (h *AvailabilityHandler) SubmitHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := middleware.AuthUserID(c)
	groupID := c.Param("groupID")
	planID := c.Param("planID")

	if err := h.GroupService.RequireMember(groupID, userID); err != nil {
		c.JSON(scheduleErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	var req models.SubmitAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := h.ScheduleService.Submit(c.Request.Context(), groupID, planID, userID, req)
	if err != nil {
		status := scheduleErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Availability submission failed",
				zap.String("planID", planID), zap.String("userID", userID), zap.Error(err))
			utils.JSONError(c, status, "failed to save availability", "")
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, records)
}

// GetMyRecordsHandler handles GET /api/groups/:groupID/plans/:planID/availability/me.
func (h *AvailabilityHandler) GetMyRecordsHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	groupID := c.Param("groupID")
	planID := c.Param("planID")

	if err := h.GroupService.RequireMember(groupID, userID); err != nil {
		c.JSON(scheduleErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	records, err := h.ScheduleService.GetUserRecords(c.Request.Context(), planID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// UpdateRecordHandler handles PUT /api/availability/:recordID.
func (h *AvailabilityHandler) UpdateRecordHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	recordID := c.Param("recordID")

	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ScheduleService.UpdateRecord(c.Request.Context(), recordID, userID, req); err != nil {
		c.JSON(scheduleErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

// DeleteRecordHandler handles DELETE /api/availability/:recordID.
func (h *AvailabilityHandler) DeleteRecordHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	recordID := c.Param("recordID")

	if err := h.ScheduleService.DeleteRecord(c.Request.Context(), recordID, userID); err != nil {
		c.JSON(scheduleErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted"})
}

// GetChartHandler handles GET /api/groups/:groupID/plans/:planID/availability/chart.
// Optional query params: interval (bucket width in hours), buffer (lead buckets).
func (h *AvailabilityHandler) GetChartHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	groupID := c.Param("groupID")
	planID := c.Param("planID")

	if err := h.GroupService.RequireMember(groupID, userID); err != nil {
		c.JSON(scheduleErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	// The bucket width falls back to the requesting user's profile
	// preference when not passed explicitly.
	intervalHours := queryInt(c, "interval", 0)
	if intervalHours <= 0 {
		if usr, err := h.UserService.GetUserByID(userID); err == nil && usr != nil {
			intervalHours = usr.DefaultInterval
		}
	}
	bufferCount := queryInt(c, "buffer", -1)

	chart, err := h.ScheduleService.GetChart(c.Request.Context(), groupID, planID, intervalHours, bufferCount)
	if err != nil {
		c.JSON(scheduleErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, chart)
}

// GetTimelineHandler handles GET /api/groups/:groupID/plans/:planID/availability/timeline.
func (h *AvailabilityHandler) GetTimelineHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	groupID := c.Param("groupID")
	planID := c.Param("planID")

	if err := h.GroupService.RequireMember(groupID, userID); err != nil {
		c.JSON(scheduleErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	timeline, err := h.ScheduleService.GetTimeline(c.Request.Context(), groupID, planID)
	if err != nil {
		c.JSON(scheduleErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, timeline)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
