// File: handlers/group.go
package handlers

import (
	"errors"
	"net/http"

	"letslink/middleware"
	group "letslink/services/group"
	"letslink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GroupHandler bundles the group and invite endpoints.
type GroupHandler struct {
	GroupService group.GroupService
}

// groupErrorStatus maps group service errors onto HTTP statuses.
func groupErrorStatus(err error) int {
	switch {
	case errors.Is(err, group.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, group.ErrNotMember):
		return http.StatusForbidden
	case errors.Is(err, group.ErrProfileIncomplete), errors.Is(err, group.ErrInviteExpired):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CreateGroupHandler handles POST /api/groups.
func (h *GroupHandler) CreateGroupHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := middleware.AuthUserID(c)

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grp, err := h.GroupService.CreateGroup(userID, req.Name)
	if err != nil {
		logger.Error("Failed to create group", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, grp)
}

// ListGroupsHandler handles GET /api/groups.
func (h *GroupHandler) ListGroupsHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)

	groups, err := h.GroupService.GetGroupsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetGroupHandler handles GET /api/groups/:groupID.
func (h *GroupHandler) GetGroupHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	groupID := c.Param("groupID")

	grp, members, err := h.GroupService.GetGroup(groupID, userID)
	if err != nil {
		c.JSON(groupErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": grp, "members": members})
}

// LeaveGroupHandler handles DELETE /api/groups/:groupID/membership.
func (h *GroupHandler) LeaveGroupHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	groupID := c.Param("groupID")

	if err := h.GroupService.LeaveGroup(groupID, userID); err != nil {
		c.JSON(groupErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Left group"})
}

// CreateInviteHandler handles POST /api/groups/:groupID/invites.
func (h *GroupHandler) CreateInviteHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := middleware.AuthUserID(c)
	groupID := c.Param("groupID")

	invite, err := h.GroupService.CreateInvite(groupID, userID)
	if err != nil {
		logger.Error("Failed to create invite", zap.String("groupID", groupID), zap.Error(err))
		c.JSON(groupErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, invite)
}

// JoinByInviteHandler handles POST /api/invites/:token/join.
func (h *GroupHandler) JoinByInviteHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := middleware.AuthUserID(c)
	token := c.Param("token")

	grp, err := h.GroupService.JoinByInvite(token, userID)
	if err != nil {
		logger.Warn("Failed to join by invite", zap.String("userID", userID), zap.Error(err))
		c.JSON(groupErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grp)
}
