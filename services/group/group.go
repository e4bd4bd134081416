// File: services/group/group.go
package group

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"letslink/config"
	"letslink/models"
	"letslink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound signals that a group or invite does not exist.
var ErrNotFound = errors.New("not found")

// ErrNotMember signals that the caller does not belong to the group.
var ErrNotMember = errors.New("not a group member")

// ErrProfileIncomplete signals that the user must fill in their name before
// joining a group; member lists and charts label people by name.
var ErrProfileIncomplete = errors.New("complete your profile before joining a group")

// ErrInviteExpired signals that the invite link can no longer be redeemed.
var ErrInviteExpired = errors.New("this invite link has expired")

// CreateGroup creates a group and enrolls the creator as its admin member.
func (s *DefaultGroupService) CreateGroup(userID, name string) (*models.Group, error) {
	logger := utils.GetLogger()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}

	grp := &models.Group{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   userID,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(grp); err != nil {
		logger.Error("CreateGroup: failed to create group", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	member := &models.GroupMember{
		GroupID:  grp.ID,
		UserID:   userID,
		Role:     "admin",
		JoinedAt: time.Now(),
	}
	if err := s.Repo.AddMember(member); err != nil {
		logger.Error("CreateGroup: failed to enroll creator", zap.String("groupID", grp.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return grp, nil
}

// GetGroup returns the group and its member profiles. Callers must be
// members themselves.
func (s *DefaultGroupService) GetGroup(groupID, userID string) (*models.Group, []models.MemberProfile, error) {
	if err := s.RequireMember(groupID, userID); err != nil {
		return nil, nil, err
	}

	grp, err := s.Repo.GetByID(groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch group: %w", err)
	}
	if grp == nil {
		return nil, nil, ErrNotFound
	}

	members, err := s.Repo.GetMemberProfiles(groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch group members: %w", err)
	}
	return grp, members, nil
}

// GetGroupsForUser lists all groups the user belongs to.
func (s *DefaultGroupService) GetGroupsForUser(userID string) ([]models.Group, error) {
	groups, err := s.Repo.GetGroupsForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// LeaveGroup removes the caller's membership. Their availability records
// stay behind; charts simply stop listing them once membership is gone.
func (s *DefaultGroupService) LeaveGroup(groupID, userID string) error {
	if err := s.RequireMember(groupID, userID); err != nil {
		return err
	}
	if err := s.Repo.RemoveMember(groupID, userID); err != nil {
		return fmt.Errorf("failed to leave group: %w", err)
	}
	return nil
}

// RequireMember returns ErrNotMember unless the user belongs to the group.
func (s *DefaultGroupService) RequireMember(groupID, userID string) error {
	ok, err := s.Repo.IsMember(groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !ok {
		return ErrNotMember
	}
	return nil
}

// CreateInvite issues a new shareable invite link for the group. Any member
// may invite; links expire after the configured TTL.
func (s *DefaultGroupService) CreateInvite(groupID, userID string) (*InviteResponse, error) {
	logger := utils.GetLogger()

	if err := s.RequireMember(groupID, userID); err != nil {
		return nil, err
	}

	ttl := time.Duration(config.AppConfig.InviteTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	invite := &models.GroupInvite{
		ID:        uuid.New().String(),
		GroupID:   groupID,
		Token:     uuid.New().String(),
		CreatedBy: userID,
		ExpiresAt: time.Now().Add(ttl),
		CreatedAt: time.Now(),
	}
	if err := s.Repo.CreateInvite(invite); err != nil {
		logger.Error("CreateInvite: failed to create invite", zap.String("groupID", groupID), zap.Error(err))
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	return &InviteResponse{
		Token:     invite.Token,
		URL:       fmt.Sprintf("%s/join/%s", config.AppConfig.PublicBaseURL, invite.Token),
		ExpiresAt: invite.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// JoinByInvite redeems an invite token. Joining twice is a no-op thanks to
// the upsert in AddMember, so a stale invite page never errors for someone
// who is already in.
func (s *DefaultGroupService) JoinByInvite(token, userID string) (*models.Group, error) {
	logger := utils.GetLogger()

	invite, err := s.Repo.GetInviteByToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invite: %w", err)
	}
	if invite == nil {
		return nil, ErrNotFound
	}
	if invite.Expired(time.Now()) {
		return nil, ErrInviteExpired
	}

	usr, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, ErrNotFound
	}
	if !usr.ProfileComplete() {
		return nil, ErrProfileIncomplete
	}

	grp, err := s.Repo.GetByID(invite.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group: %w", err)
	}
	if grp == nil {
		return nil, ErrNotFound
	}

	member := &models.GroupMember{
		GroupID:  grp.ID,
		UserID:   userID,
		Role:     "member",
		JoinedAt: time.Now(),
	}
	if err := s.Repo.AddMember(member); err != nil {
		logger.Error("JoinByInvite: failed to add member", zap.String("groupID", grp.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to join group: %w", err)
	}
	return grp, nil
}
