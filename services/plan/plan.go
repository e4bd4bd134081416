// File: services/plan/plan.go
package plan

import (
	"errors"
	"fmt"
	"strings"
	"time"

	groupRepo "letslink/database/repository/group"
	planRepo "letslink/database/repository/plan"
	"letslink/models"
	"letslink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound signals that a plan does not exist in the group.
var ErrNotFound = errors.New("not found")

// ErrNotMember signals that the caller does not belong to the plan's group.
var ErrNotMember = errors.New("not a group member")

// ErrForbidden signals that the caller may not delete the plan.
var ErrForbidden = errors.New("forbidden")

type PlanService interface {
	CreatePlan(groupID, userID string, req models.PlanCreateRequest) (*models.Plan, error)
	GetPlan(groupID, planID, userID string) (*models.Plan, error)
	GetPlansForGroup(groupID, userID string) ([]models.Plan, error)
	DeletePlan(groupID, planID, userID string) error
}

// DefaultPlanService is the production implementation.
type DefaultPlanService struct {
	Repo      planRepo.PlanRepository
	GroupRepo groupRepo.GroupRepository
}

// CreatePlan validates the date range and creates a plan in the group.
func (s *DefaultPlanService) CreatePlan(groupID, userID string, req models.PlanCreateRequest) (*models.Plan, error) {
	logger := utils.GetLogger()

	if err := s.requireMember(groupID, userID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}

	start, err := time.ParseInLocation(models.DateLayout, req.StartDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid start date")
	}
	end, err := time.ParseInLocation(models.DateLayout, req.EndDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid end date")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date must not be before start date")
	}

	p := &models.Plan{
		ID:          uuid.New().String(),
		GroupID:     groupID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(p); err != nil {
		logger.Error("CreatePlan: failed to create plan", zap.String("groupID", groupID), zap.Error(err))
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	return p, nil
}

// GetPlan fetches one plan, scoped to its group.
func (s *DefaultPlanService) GetPlan(groupID, planID, userID string) (*models.Plan, error) {
	if err := s.requireMember(groupID, userID); err != nil {
		return nil, err
	}

	p, err := s.Repo.GetByID(planID, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// GetPlansForGroup lists the group's plans.
func (s *DefaultPlanService) GetPlansForGroup(groupID, userID string) ([]models.Plan, error) {
	if err := s.requireMember(groupID, userID); err != nil {
		return nil, err
	}

	plans, err := s.Repo.GetByGroupID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// DeletePlan removes a plan. Only the plan's creator or the group owner may
// delete it; availability records under the plan become unreachable and are
// not cleaned up here.
func (s *DefaultPlanService) DeletePlan(groupID, planID, userID string) error {
	if err := s.requireMember(groupID, userID); err != nil {
		return err
	}

	p, err := s.Repo.GetByID(planID, groupID)
	if err != nil {
		return fmt.Errorf("failed to fetch plan: %w", err)
	}
	if p == nil {
		return ErrNotFound
	}

	if p.CreatedBy != userID {
		grp, err := s.GroupRepo.GetByID(groupID)
		if err != nil {
			return fmt.Errorf("failed to fetch group: %w", err)
		}
		if grp == nil || grp.OwnerID != userID {
			return ErrForbidden
		}
	}

	if err := s.Repo.Delete(planID, groupID); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}

func (s *DefaultPlanService) requireMember(groupID, userID string) error {
	ok, err := s.GroupRepo.IsMember(groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !ok {
		return ErrNotMember
	}
	return nil
}
