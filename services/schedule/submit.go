// File: services/schedule/submit.go
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"letslink/models"
	"letslink/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	startOfDay = "00:00"
	endOfDay   = "23:59"
)

// Submit validates and expands an availability submission into one record
// per calendar day (per preset, in preset mode) and writes the batch. The
// insert is ordered without rollback: on failure the first store error is
// surfaced and records written before it remain.
func (s *DefaultScheduleService) Submit(ctx context.Context, groupID, planID, userID string, req models.SubmitAvailabilityRequest) ([]models.AvailabilityRecord, error) {
	logger := utils.GetLogger()

	plan, err := s.PlanRepo.GetByID(planID, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	if plan == nil {
		return nil, ErrNotFound
	}

	startDay, err := time.ParseInLocation(models.DateLayout, req.StartDate, time.Local)
	if err != nil {
		return nil, ValidationError{Reason: "invalid start date"}
	}
	endDay, err := time.ParseInLocation(models.DateLayout, req.EndDate, time.Local)
	if err != nil {
		return nil, ValidationError{Reason: "invalid end date"}
	}
	if endDay.Before(startDay) {
		return nil, ValidationError{Reason: "start date must not be after end date"}
	}
	if !plan.ContainsDay(startDay) || !plan.ContainsDay(endDay) {
		return nil, ValidationError{
			Reason: fmt.Sprintf("pick days between %s and %s", plan.StartDate, plan.EndDate),
		}
	}

	var records []models.AvailabilityRecord
	switch req.Mode {
	case "custom":
		startClock, ok := parseClock(req.StartTime)
		if !ok {
			return nil, ValidationError{Reason: "invalid start time"}
		}
		endClock, ok := parseClock(req.EndTime)
		if !ok {
			return nil, ValidationError{Reason: "invalid end time"}
		}
		// A multi-day custom submission is one continuous block, so its end
		// time-of-day may legitimately precede its start time-of-day.
		if startDay.Equal(endDay) && startClock >= endClock {
			return nil, ValidationError{Reason: "start time must be before end time"}
		}
		records = expandCustom(startDay, endDay, req.StartTime, req.EndTime)
	case "preset":
		if len(req.PresetIDs) == 0 {
			return nil, ValidationError{Reason: "select at least one preset"}
		}
		presets, err := s.resolvePresets(userID, req.PresetIDs)
		if err != nil {
			return nil, err
		}
		records = expandPresets(startDay, endDay, presets)
	default:
		return nil, ValidationError{Reason: "unknown submission mode"}
	}

	for i := range records {
		records[i].ID = uuid.New().String()
		records[i].PlanID = planID
		records[i].UserID = userID
	}

	if _, err := s.AvailabilityRepo.CreateMany(ctx, records); err != nil {
		logger.Error("Submit: batch insert failed",
			zap.String("planID", planID), zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}
	return records, nil
}

// expandCustom splits one continuous block into per-day records: the first
// day runs from the start time to end of day, middle days cover the whole
// day, and the last day runs from midnight to the end time.
func expandCustom(startDay, endDay time.Time, startTime, endTime string) []models.AvailabilityRecord {
	if startDay.Equal(endDay) {
		return []models.AvailabilityRecord{{
			Day:       startDay.Format(models.DateLayout),
			StartTime: startTime,
			EndTime:   endTime,
		}}
	}

	var records []models.AvailabilityRecord
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		rec := models.AvailabilityRecord{
			Day:       d.Format(models.DateLayout),
			StartTime: startOfDay,
			EndTime:   endOfDay,
		}
		switch {
		case d.Equal(startDay):
			rec.StartTime = startTime
		case d.Equal(endDay):
			rec.EndTime = endTime
		}
		records = append(records, rec)
	}
	return records
}

// expandPresets produces one record per day per selected preset, each using
// the preset's own window. No midnight splitting: preset windows stay
// within a single day.
func expandPresets(startDay, endDay time.Time, presets []models.Preset) []models.AvailabilityRecord {
	var records []models.AvailabilityRecord
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		for _, p := range presets {
			records = append(records, models.AvailabilityRecord{
				Day:       d.Format(models.DateLayout),
				StartTime: p.StartTime,
				EndTime:   p.EndTime,
			})
		}
	}
	return records
}

// GetUserRecords returns the caller's own rows in a plan for the edit view.
func (s *DefaultScheduleService) GetUserRecords(ctx context.Context, planID, userID string) ([]models.AvailabilityRecord, error) {
	return s.AvailabilityRepo.GetByPlanAndUser(ctx, planID, userID)
}

// UpdateRecord edits one record in place. Only the owning user may mutate
// it.
func (s *DefaultScheduleService) UpdateRecord(ctx context.Context, recordID, userID string, req models.UpdateAvailabilityRequest) error {
	if _, err := time.ParseInLocation(models.DateLayout, req.Day, time.Local); err != nil {
		return ValidationError{Reason: "invalid day"}
	}
	startClock, ok := parseClock(req.StartTime)
	if !ok {
		return ValidationError{Reason: "invalid start time"}
	}
	endClock, ok := parseClock(req.EndTime)
	if !ok {
		return ValidationError{Reason: "invalid end time"}
	}
	if startClock >= endClock {
		return ValidationError{Reason: "start time must be before end time"}
	}

	existing, err := s.AvailabilityRepo.GetByID(ctx, recordID)
	if err != nil {
		return fmt.Errorf("failed to fetch record: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.UserID != userID {
		return ErrForbidden
	}

	fields := bson.M{
		"day":       req.Day,
		"startTime": req.StartTime,
		"endTime":   req.EndTime,
	}
	if err := s.AvailabilityRepo.Update(ctx, recordID, userID, fields); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// DeleteRecord removes one record. Only the owning user may delete it.
func (s *DefaultScheduleService) DeleteRecord(ctx context.Context, recordID, userID string) error {
	existing, err := s.AvailabilityRepo.GetByID(ctx, recordID)
	if err != nil {
		return fmt.Errorf("failed to fetch record: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.UserID != userID {
		return ErrForbidden
	}

	if err := s.AvailabilityRepo.DeleteByID(ctx, recordID, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
