package repository

import (
	"context"
	"time"

	"standcap-service/internal/domain/entity"
	"standcap-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMaintenanceRepository implements MaintenanceRepository
type MongoMaintenanceRepository struct {
	collection *mongo.Collection
}

// NewMongoMaintenanceRepository creates a new maintenance request repository
func NewMongoMaintenanceRepository(db *mongo.Database) repository.MaintenanceRepository {
	collection := db.Collection("maintenance_requests")

	// Index on standId for per-stand queries
	ctx := context.Background()
	standIndex := mongo.IndexModel{
		Keys: bson.M{"standId": 1},
	}
	collection.Indexes().CreateOne(ctx, standIndex)

	// Compound index on the interval for overlap queries
	intervalIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "startAt", Value: 1}, {Key: "endAt", Value: 1}},
	}
	collection.Indexes().CreateOne(ctx, intervalIndex)

	return &MongoMaintenanceRepository{
		collection: collection,
	}
}

// FindOverlapping returns requests whose [startAt, endAt) interval intersects
// [from, to), in ascending ID order. Boundary touches are excluded.
func (r *MongoMaintenanceRepository) FindOverlapping(ctx context.Context, from, to time.Time) ([]entity.MaintenanceRequest, error) {
	filter := bson.M{
		"startAt": bson.M{"$lt": to},
		"endAt":   bson.M{"$gt": from},
	}
	opts := options.Find().SetSort(bson.M{"_id": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []entity.MaintenanceRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
