// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"letslink/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMany inserts a batch of availability records in order. The insert is
// ordered, so on failure the error reports the first rejected record;
// earlier records stay written (no rollback).
func (r *mongoAvailabilityRepo) CreateMany(ctx context.Context, records []models.AvailabilityRecord) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		rec.CreatedAt = now
		rec.UpdatedAt = now
		docs[i] = rec
	}

	res, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(res.InsertedIDs))
	for i, raw := range res.InsertedIDs {
		switch v := raw.(type) {
		case string:
			ids[i] = v
		case primitive.ObjectID:
			ids[i] = v.Hex()
		default:
			return nil, errors.New("unexpected type for inserted ID")
		}
	}
	return ids, nil
}

// GetByPlanID returns every availability record submitted against a plan.
func (r *mongoAvailabilityRepo) GetByPlanID(ctx context.Context, planID string) ([]models.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"planId": planID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for plan %s: %w", planID, err)
	}
	defer cursor.Close(ctx)

	var records []models.AvailabilityRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode availability records: %w", err)
	}
	return records, nil
}

// GetByPlanAndUser returns one user's records within a plan.
func (r *mongoAvailabilityRepo) GetByPlanAndUser(ctx context.Context, planID, userID string) ([]models.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"planId": planID, "userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for plan %s user %s: %w", planID, userID, err)
	}
	defer cursor.Close(ctx)

	var records []models.AvailabilityRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode availability records: %w", err)
	}
	return records, nil
}

// GetByID fetches a single record.
func (r *mongoAvailabilityRepo) GetByID(ctx context.Context, recordID string) (*models.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.AvailabilityRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": recordID}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability record %s: %w", recordID, err)
	}
	return &rec, nil
}

// Update applies a partial update to a record owned by userID.
func (r *mongoAvailabilityRepo) Update(ctx context.Context, recordID, userID string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	filter := bson.M{"id": recordID, "userId": userID}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update availability record %s: %w", recordID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByID removes a record owned by userID.
func (r *mongoAvailabilityRepo) DeleteByID(ctx context.Context, recordID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": recordID, "userId": userID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete availability record %s: %w", recordID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }
