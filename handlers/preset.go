// File: handlers/preset.go
package handlers

import (
	"net/http"

	"letslink/middleware"
	"letslink/models"
	"letslink/services/schedule"

	"github.com/gin-gonic/gin"
)

// PresetHandler bundles the availability preset endpoints. Presets are
// per-user; built-ins are served alongside the user's own.
type PresetHandler struct {
	ScheduleService schedule.ScheduleService
}

// ListPresetsHandler handles GET /api/presets.
func (h *PresetHandler) ListPresetsHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)

	presets, err := h.ScheduleService.ListPresets(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, presets)
}

// CreatePresetHandler handles POST /api/presets.
func (h *PresetHandler) CreatePresetHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)

	var req models.PresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := h.ScheduleService.CreatePreset(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, preset)
}

// UpdatePresetHandler handles PUT /api/presets/:presetID.
func (h *PresetHandler) UpdatePresetHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	presetID := c.Param("presetID")

	var req models.PresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ScheduleService.UpdatePreset(userID, presetID, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preset updated"})
}

// DeletePresetHandler handles DELETE /api/presets/:presetID.
func (h *PresetHandler) DeletePresetHandler(c *gin.Context) {
	userID := middleware.AuthUserID(c)
	presetID := c.Param("presetID")

	if err := h.ScheduleService.DeletePreset(userID, presetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preset deleted"})
}
