// File: database/repository/group/members.go
package groupRepo

import (
	"errors"
	"fmt"
	"time"

	"letslink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddMember upserts a membership so redeeming the same invite twice stays
// idempotent.
func (r *MongoGroupRepo) AddMember(member *models.GroupMember) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}

	filter := bson.M{"groupId": member.GroupID, "userId": member.UserID}
	update := bson.M{"$setOnInsert": member}
	opts := options.Update().SetUpsert(true)

	_, err := r.members.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to add member %s to group %s: %w", member.UserID, member.GroupID, err)
	}
	return nil
}

// RemoveMember deletes a membership row.
func (r *MongoGroupRepo) RemoveMember(groupID, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.members.DeleteOne(ctx, bson.M{"groupId": groupID, "userId": userID})
	if err != nil {
		return fmt.Errorf("failed to remove member %s from group %s: %w", userID, groupID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IsMember reports whether the user belongs to the group.
func (r *MongoGroupRepo) IsMember(groupID, userID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	err := r.members.FindOne(ctx, bson.M{"groupId": groupID, "userId": userID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return true, nil
}

// GetMemberProfiles joins memberships with user profiles, the equivalent of
// the group_members_with_profiles view the pages render.
func (r *MongoGroupRepo) GetMemberProfiles(groupID string) ([]models.MemberProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"groupId": groupID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "id",
			"as":           "profile",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$profile", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"userId":    1,
			"role":      1,
			"firstName": "$profile.firstName",
			"surname":   "$profile.surname",
			"avatarUrl": "$profile.avatarUrl",
		}}},
	}

	cursor, err := r.members.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate member profiles for group %s: %w", groupID, err)
	}
	defer cursor.Close(ctx)

	var profiles []models.MemberProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode member profiles: %w", err)
	}
	return profiles, nil
}
