// File: services/user/auth.go
package user

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"letslink/models"
	"letslink/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account from an email and password and signs the
// user in. The profile starts empty; names are filled in later via
// UpdateProfile before the user can join a group.
func (s *DefaultUserService) Register(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	if err := VerifyPasswordComplexity(password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	userObj := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, utils.SessionTokenTTL)
	if err != nil {
		logger.Error("Register: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.SessionTokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&userObj); err != nil {
		logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.cacheSession(userObj.ID, userObj.SessionTokenHash)

	return &AuthResponse{
		ID:    userObj.ID,
		Token: token,
		Email: userObj.Email,
	}, nil
}

// SignIn verifies the credentials and issues a fresh session token,
// replacing any previous session.
func (s *DefaultUserService) SignIn(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("SignIn: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	if existing == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(existing.ID, existing.Email, utils.SessionTokenTTL)
	if err != nil {
		logger.Error("SignIn: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	updateDoc := bson.M{
		"sessionTokenHash": tokenHash,
		"updatedAt":        time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(existing.ID, updateDoc); err != nil {
		logger.Error("SignIn: failed to store session token", zap.String("userID", existing.ID), zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}

	s.cacheSession(existing.ID, tokenHash)

	return &AuthResponse{
		ID:        existing.ID,
		Token:     token,
		Email:     existing.Email,
		FirstName: existing.FirstName,
		Surname:   existing.Surname,
		AvatarURL: existing.AvatarURL,
	}, nil
}

// SignOut revokes the user's current session token and clears the cached
// entry so the token stops validating immediately.
func (s *DefaultUserService) SignOut(userID string) error {
	logger := utils.GetLogger()

	updateDoc := bson.M{
		"sessionTokenHash": "",
		"updatedAt":        time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(userID, updateDoc); err != nil {
		logger.Error("SignOut: failed to revoke session token", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to sign out, please try again")
	}

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		logger.Error("SignOut: failed to clear auth cache", zap.Error(err))
	}
	return nil
}

// cacheSession stores the token hash in Redis so auth middleware can skip
// the database on the hot path. Cache failures are logged and ignored; the
// middleware falls back to Mongo.
func (s *DefaultUserService) cacheSession(userID, tokenHash string) {
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(context.Background(), utils.AuthCachePrefix+userID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache session token", zap.String("userID", userID), zap.Error(err))
	}
}
