// File: database/repository/group/group.go
package groupRepo

import (
	"context"
	"fmt"
	"time"

	"letslink/database"
	"letslink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GroupRepository defines persistence operations for groups, memberships and
// invite links.
type GroupRepository interface {
	Create(group *models.Group) error
	GetByID(id string) (*models.Group, error)
	GetGroupsForUser(userID string) ([]models.Group, error)

	AddMember(member *models.GroupMember) error
	RemoveMember(groupID, userID string) error
	IsMember(groupID, userID string) (bool, error)
	GetMemberProfiles(groupID string) ([]models.MemberProfile, error)

	CreateInvite(invite *models.GroupInvite) error
	GetInviteByToken(token string) (*models.GroupInvite, error)
}

// MongoGroupRepo implements GroupRepository using MongoDB.
type MongoGroupRepo struct {
	groups  *mongo.Collection
	members *mongo.Collection
	invites *mongo.Collection
}

// NewMongoGroupRepo creates a new instance of GroupRepository using MongoDB.
func NewMongoGroupRepo() GroupRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &MongoGroupRepo{
		groups:  db.Collection("groups"),
		members: db.Collection("group_members"),
		invites: db.Collection("group_invites"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoGroupRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.groups.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create group indexes: %w", err)
	}

	_, err = r.members.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "groupId", Value: 1}, {Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create member indexes: %w", err)
	}

	_, err = r.invites.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "groupId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create invite indexes: %w", err)
	}
	return nil
}
