// File: database/repository/plan/plan.go
package planRepo

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

// PlanRepository defines persistence operations for plans.
type PlanRepository interface {
	Create(plan *models.Plan) error
	GetByID(planID, groupID string) (*models.Plan, error)
	GetByGroupID(groupID string) ([]models.Plan, error)
	Delete(planID, groupID string) error
}

// MongoPlanRepo implements PlanRepository using MongoDB.
type MongoPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoPlanRepo creates a new instance of PlanRepository using MongoDB.
func NewMongoPlanRepo() PlanRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("plans")
	repo := &MongoPlanRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPlanRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "groupId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new plan document.
func (r *MongoPlanRepo) Create(plan *models.Plan) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	plan.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

// GetByID retrieves a plan scoped by group, mirroring the page query that
// filters on both ids.
func (r *MongoPlanRepo) GetByID(planID, groupID string) (*models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var plan models.Plan
	filter := bson.M{"id": planID, "groupId": groupID}
	if err := r.coll.FindOne(ctx, filter).Decode(&plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch plan with id %s: %w", planID, err)
	}
	return &plan, nil
}

// GetByGroupID lists all plans in a group.
func (r *MongoPlanRepo) GetByGroupID(groupID string) ([]models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"groupId": groupID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plans for group %s: %w", groupID, err)
	}
	defer cursor.Close(ctx)

	var plans []models.Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode plans: %w", err)
	}
	return plans, nil
}

// Delete removes a plan by its ID within a group.
func (r *MongoPlanRepo) Delete(planID, groupID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": planID, "groupId": groupID})
	if err != nil {
		return fmt.Errorf("failed to delete plan with id %s: %w", planID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
