// File: services/schedule/view.go
package schedule

import (
	"context"
	"fmt"

	"letslink/models"
	"letslink/utils"

	"go.uber.org/zap"
)

// Default chart shape when the caller does not override it.
const (
	DefaultIntervalHours = 3
	DefaultBufferBuckets = 2
)

// GetChart builds the summary chart for a plan from a fresh snapshot of all
// submitted availability. Every call re-runs the full pipeline; there is no
// cross-request caching.
func (s *DefaultScheduleService) GetChart(ctx context.Context, groupID, planID string, intervalHours, bufferCount int) (*models.AvailabilityChart, error) {
	logger := utils.GetLogger()

	if intervalHours <= 0 {
		intervalHours = DefaultIntervalHours
	}
	if bufferCount < 0 {
		bufferCount = DefaultBufferBuckets
	}

	plan, members, records, err := s.loadPlanView(ctx, groupID, planID)
	if err != nil {
		return nil, err
	}

	planStart, planEnd, err := plan.Bounds()
	if err != nil {
		logger.Error("GetChart: plan has unparseable dates",
			zap.String("planID", planID), zap.Error(err))
		return nil, fmt.Errorf("plan has invalid dates: %w", err)
	}

	mergedByUser := MergeByUser(Normalize(records))
	buckets := GenerateBuckets(planStart, planEnd, intervalHours, bufferCount)
	return BuildChart(plan, buckets, mergedByUser, members, intervalHours), nil
}

// GetTimeline builds the per-member timeline rows for a plan, again from a
// fresh snapshot.
func (s *DefaultScheduleService) GetTimeline(ctx context.Context, groupID, planID string) (*models.AvailabilityTimeline, error) {
	plan, members, records, err := s.loadPlanView(ctx, groupID, planID)
	if err != nil {
		return nil, err
	}

	mergedByUser := MergeByUser(Normalize(records))
	return BuildTimeline(plan, mergedByUser, members), nil
}

// loadPlanView fetches the three inputs both aggregated views share: the
// plan itself, the group's member profiles, and every availability record
// submitted against the plan.
func (s *DefaultScheduleService) loadPlanView(ctx context.Context, groupID, planID string) (*models.Plan, []models.MemberProfile, []models.AvailabilityRecord, error) {
	plan, err := s.PlanRepo.GetByID(planID, groupID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	if plan == nil {
		return nil, nil, nil, ErrNotFound
	}

	members, err := s.GroupRepo.GetMemberProfiles(groupID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch group members: %w", err)
	}

	records, err := s.AvailabilityRepo.GetByPlanID(ctx, planID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	return plan, members, records, nil
}
