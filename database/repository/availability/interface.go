// File: database/repository/availability/interface.go
package availabilityRepo

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

// AvailabilityRepository defines persistence operations for availability
// records. Mutations are scoped by the owning user so one member can never
// touch another member's rows.
type AvailabilityRepository interface {
	CreateMany(ctx context.Context, records []models.AvailabilityRecord) ([]string, error)
	GetByPlanID(ctx context.Context, planID string) ([]models.AvailabilityRecord, error)
	GetByPlanAndUser(ctx context.Context, planID, userID string) ([]models.AvailabilityRecord, error)
	GetByID(ctx context.Context, recordID string) (*models.AvailabilityRecord, error)
	Update(ctx context.Context, recordID, userID string, fields bson.M) error
	DeleteByID(ctx context.Context, recordID, userID string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoAvailabilityRepo{
		coll: db.Collection("plan_availability"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *mongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "planId", Value: 1}}},
		{Keys: bson.D{{Key: "planId", Value: 1}, {Key: "userId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
