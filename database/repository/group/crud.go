// File: database/repository/group/crud.go
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

// Create inserts a new group document.
func (r *MongoGroupRepo) Create(group *models.Group) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	group.CreatedAt = time.Now()

	_, err := r.groups.InsertOne(ctx, group)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

// GetByID retrieves a group by its unique ID.
func (r *MongoGroupRepo) GetByID(id string) (*models.Group, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var group models.Group
	if err := r.groups.FindOne(ctx, bson.M{"id": id}).Decode(&group); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch group with id %s: %w", id, err)
	}
	return &group, nil
}

// GetGroupsForUser returns every group the user is a member of.
func (r *MongoGroupRepo) GetGroupsForUser(userID string) ([]models.Group, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.members.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships for user %s: %w", userID, err)
	}
	var memberships []models.GroupMember
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, fmt.Errorf("failed to decode memberships: %w", err)
	}
	if len(memberships) == 0 {
		return nil, nil
	}

	ids := make([]string, len(memberships))
	for i, m := range memberships {
		ids[i] = m.GroupID
	}

	gcursor, err := r.groups.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}
	var groups []models.Group
	if err := gcursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode groups: %w", err)
	}
	return groups, nil
}
