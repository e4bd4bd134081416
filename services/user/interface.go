// File: services/user/interface.go
package user

import (
	userRepo "letslink/database/repository/user"
	"letslink/models"
)

type UserService interface {
	// Authentication
	Register(email, password string) (*AuthResponse, error)
	SignIn(email, password string) (*AuthResponse, error)
	SignOut(userID string) error

	// Account management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error)
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, session token, and profile summary.
type AuthResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	Surname   string `json:"surname,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
