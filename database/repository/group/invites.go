// File: database/repository/group/invites.go
package groupRepo

import (
	"errors"
	"fmt"
	"time"

	"letslink/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateInvite inserts a new invite link document.
func (r *MongoGroupRepo) CreateInvite(invite *models.GroupInvite) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if invite.ID == "" {
		invite.ID = uuid.New().String()
	}
	invite.CreatedAt = time.Now()

	_, err := r.invites.InsertOne(ctx, invite)
	if err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}
	return nil
}

// GetInviteByToken retrieves an invite by its token.
func (r *MongoGroupRepo) GetInviteByToken(token string) (*models.GroupInvite, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var invite models.GroupInvite
	if err := r.invites.FindOne(ctx, bson.M{"token": token}).Decode(&invite); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch invite: %w", err)
	}
	return &invite, nil
}
