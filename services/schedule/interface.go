// File: services/schedule/interface.go
package schedule

import (
	"context"

	availabilityRepo "letslink/database/repository/availability"
	groupRepo "letslink/database/repository/group"
	planRepo "letslink/database/repository/plan"
	presetRepo "letslink/database/repository/preset"
	"letslink/models"
)

// ScheduleService exposes availability submission and the aggregated plan
// views. Every view call fetches a fresh snapshot and runs the pure
// normalize → merge → bucketize → map pipeline; nothing is cached between
// invocations.
type ScheduleService interface {
	// Submission workflow
	Submit(ctx context.Context, groupID, planID, userID string, req models.SubmitAvailabilityRequest) ([]models.AvailabilityRecord, error)
	UpdateRecord(ctx context.Context, recordID, userID string, req models.UpdateAvailabilityRequest) error
	DeleteRecord(ctx context.Context, recordID, userID string) error
	GetUserRecords(ctx context.Context, planID, userID string) ([]models.AvailabilityRecord, error)

	// Aggregated views
	GetChart(ctx context.Context, groupID, planID string, intervalHours, bufferCount int) (*models.AvailabilityChart, error)
	GetTimeline(ctx context.Context, groupID, planID string) (*models.AvailabilityTimeline, error)

	// Presets
	ListPresets(userID string) ([]models.Preset, error)
	CreatePreset(userID string, req models.PresetRequest) (*models.Preset, error)
	UpdatePreset(userID, presetID string, req models.PresetRequest) error
	DeletePreset(userID, presetID string) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	PlanRepo         planRepo.PlanRepository
	GroupRepo        groupRepo.GroupRepository
	PresetRepo       presetRepo.PresetRepository
}
