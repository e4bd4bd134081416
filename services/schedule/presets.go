// File: services/schedule/presets.go
package schedule

import (
	"fmt"

	"letslink/models"
	"letslink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// builtinPresets is the fixed catalog every user can apply without defining
// their own. Windows stay within a single day; anyone wanting an
// overnight window submits it in custom mode, which splits at midnight.
var builtinPresets = []models.Preset{
	{ID: "builtin-morning", Label: "Morning", StartTime: "08:00", EndTime: "12:00", BuiltIn: true},
	{ID: "builtin-afternoon", Label: "Afternoon", StartTime: "12:00", EndTime: "17:00", BuiltIn: true},
	{ID: "builtin-evening", Label: "Evening", StartTime: "17:00", EndTime: "21:00", BuiltIn: true},
	{ID: "builtin-late-night", Label: "Late night", StartTime: "21:00", EndTime: "23:59", BuiltIn: true},
}

// ListPresets returns the built-in catalog followed by the user's own
// presets.
func (s *DefaultScheduleService) ListPresets(userID string) ([]models.Preset, error) {
	own, err := s.PresetRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	presets := make([]models.Preset, 0, len(builtinPresets)+len(own))
	presets = append(presets, builtinPresets...)
	presets = append(presets, own...)
	return presets, nil
}

// CreatePreset saves a new user-defined preset. Duplicate labels per user
// are rejected by the unique index; the error message names the label.
func (s *DefaultScheduleService) CreatePreset(userID string, req models.PresetRequest) (*models.Preset, error) {
	logger := utils.GetLogger()

	if err := validatePresetTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	for _, b := range builtinPresets {
		if b.Label == req.Label {
			return nil, ValidationError{Reason: fmt.Sprintf("label %q is reserved for a built-in preset", req.Label)}
		}
	}

	preset := &models.Preset{
		UserID:    userID,
		Label:     req.Label,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.PresetRepo.Create(preset); err != nil {
		logger.Warn("CreatePreset failed", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return preset, nil
}

// UpdatePreset edits one of the user's presets in place.
func (s *DefaultScheduleService) UpdatePreset(userID, presetID string, req models.PresetRequest) error {
	if err := validatePresetTimes(req.StartTime, req.EndTime); err != nil {
		return err
	}
	fields := bson.M{
		"label":     req.Label,
		"startTime": req.StartTime,
		"endTime":   req.EndTime,
	}
	return s.PresetRepo.Update(presetID, userID, fields)
}

// DeletePreset removes one of the user's presets.
func (s *DefaultScheduleService) DeletePreset(userID, presetID string) error {
	return s.PresetRepo.Delete(presetID, userID)
}

// resolvePresets maps selected preset ids to concrete time windows, checking
// ownership for user-defined entries.
func (s *DefaultScheduleService) resolvePresets(userID string, presetIDs []string) ([]models.Preset, error) {
	resolved := make([]models.Preset, 0, len(presetIDs))
	for _, id := range presetIDs {
		if p, ok := builtinPreset(id); ok {
			resolved = append(resolved, p)
			continue
		}
		p, err := s.PresetRepo.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve preset %s: %w", id, err)
		}
		if p == nil || p.UserID != userID {
			return nil, ValidationError{Reason: fmt.Sprintf("unknown preset %q", id)}
		}
		resolved = append(resolved, *p)
	}
	return resolved, nil
}

func builtinPreset(id string) (models.Preset, bool) {
	for _, p := range builtinPresets {
		if p.ID == id {
			return p, true
		}
	}
	return models.Preset{}, false
}

func validatePresetTimes(start, end string) error {
	startClock, ok := parseClock(start)
	if !ok {
		return ValidationError{Reason: "invalid start time"}
	}
	endClock, ok := parseClock(end)
	if !ok {
		return ValidationError{Reason: "invalid end time"}
	}
	if startClock >= endClock {
		return ValidationError{Reason: "start time must be before end time"}
	}
	return nil
}
