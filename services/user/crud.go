// File: services/user/crud.go
package user

import (
	"context"
	"fmt"
	"time"

	"letslink/models"
	"letslink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update of the editable profile fields.
func (s *DefaultUserService) UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error) {
	logger := utils.GetLogger()

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if req.FirstName != "" {
		updateFields["firstName"] = req.FirstName
	}
	if req.Surname != "" {
		updateFields["surname"] = req.Surname
	}
	if req.AvatarURL != "" {
		updateFields["avatarUrl"] = req.AvatarURL
	}
	if req.TimeFormat != "" {
		if req.TimeFormat != "12h" && req.TimeFormat != "24h" {
			return nil, fmt.Errorf("time format must be 12h or 24h")
		}
		updateFields["timeFormat"] = req.TimeFormat
	}
	if req.DefaultInterval != 0 {
		if req.DefaultInterval < 1 || req.DefaultInterval > 24 {
			return nil, fmt.Errorf("default interval must be between 1 and 24 hours")
		}
		updateFields["defaultInterval"] = req.DefaultInterval
	}

	if len(updateFields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(userID, updateFields); err != nil {
		logger.Error("UpdateProfile: failed to update user", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	updated, err := s.Repo.GetByID(userID)
	if err != nil {
		logger.Error("UpdateProfile: failed to fetch updated user", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// UpdateUserPassword verifies the current password, stores the new hash and
// revokes the active session so every client signs in again.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	existing, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updateDoc := bson.M{
		"passwordHash":     string(newHash),
		"sessionTokenHash": "",
		"updatedAt":        time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(userID, updateDoc); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	_ = authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err()
	return nil
}

// DeleteUser removes a user account by ID.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user with id %s: %w", userID, err)
	}
	authCache := utils.GetAuthCacheClient()
	_ = authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err()
	return nil
}
