// File: database/repository/preset/preset.go
package presetRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"letslink/database"
	"letslink/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PresetRepository defines persistence operations for user-defined
// availability presets.
type PresetRepository interface {
	Create(preset *models.Preset) error
	GetByUserID(userID string) ([]models.Preset, error)
	GetByID(presetID string) (*models.Preset, error)
	Update(presetID, userID string, fields bson.M) error
	Delete(presetID, userID string) error
}

type mongoPresetRepo struct {
	coll *mongo.Collection
}

// NewMongoPresetRepo constructs a new MongoDB PresetRepository.
func NewMongoPresetRepo() PresetRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoPresetRepo{coll: db.Collection("availability_presets")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *mongoPresetRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "label", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new preset document.
func (r *mongoPresetRepo) Create(preset *models.Preset) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if preset.ID == "" {
		preset.ID = uuid.New().String()
	}
	preset.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, preset)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("preset label %q already in use", preset.Label)
		}
		return fmt.Errorf("failed to create preset: %w", err)
	}
	return nil
}

// GetByUserID lists a user's presets.
func (r *mongoPresetRepo) GetByUserID(userID string) ([]models.Preset, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch presets for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var presets []models.Preset
	if err := cursor.All(ctx, &presets); err != nil {
		return nil, fmt.Errorf("failed to decode presets: %w", err)
	}
	return presets, nil
}

// GetByID fetches a single preset.
func (r *mongoPresetRepo) GetByID(presetID string) (*models.Preset, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var preset models.Preset
	if err := r.coll.FindOne(ctx, bson.M{"id": presetID}).Decode(&preset); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch preset %s: %w", presetID, err)
	}
	return &preset, nil
}

// Update applies a partial update to a preset owned by userID.
func (r *mongoPresetRepo) Update(presetID, userID string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": presetID, "userId": userID}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("preset label already in use")
		}
		return fmt.Errorf("failed to update preset %s: %w", presetID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a preset owned by userID.
func (r *mongoPresetRepo) Delete(presetID, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": presetID, "userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete preset %s: %w", presetID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
