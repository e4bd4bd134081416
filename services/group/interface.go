// File: services/group/interface.go
package group

import (
	groupRepo "letslink/database/repository/group"
	userRepo "letslink/database/repository/user"
	"letslink/models"
)

type GroupService interface {
	// Groups
	CreateGroup(userID, name string) (*models.Group, error)
	GetGroup(groupID, userID string) (*models.Group, []models.MemberProfile, error)
	GetGroupsForUser(userID string) ([]models.Group, error)
	LeaveGroup(groupID, userID string) error

	// Membership checks for other services and middleware.
	RequireMember(groupID, userID string) error

	// Invites
	CreateInvite(groupID, userID string) (*InviteResponse, error)
	JoinByInvite(token, userID string) (*models.Group, error)
}

// DefaultGroupService is the production implementation.
type DefaultGroupService struct {
	Repo     groupRepo.GroupRepository
	UserRepo userRepo.UserRepository
}

// InviteResponse is the shareable invite link together with its expiry.
type InviteResponse struct {
	Token     string `json:"token"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expiresAt"`
}
