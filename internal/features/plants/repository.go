package plants

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when an id does not resolve to a plant.
var ErrNotFound = errors.New("plant not found")

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("plants")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "waterAt", Value: 1}}},
		{Keys: bson.D{{Key: "acquiredAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, plant *Plant) error {
	now := time.Now()
	if plant.AcquiredAt.IsZero() {
		plant.AcquiredAt = now
	}
	if plant.WaterAt.IsZero() {
		plant.WaterAt = now
	}

	result, err := r.collection.InsertOne(ctx, plant)
	if err != nil {
		return err
	}

	plant.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) List(ctx context.Context) ([]Plant, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plants []Plant
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, err
	}

	if plants == nil {
		plants = []Plant{}
	}

	return plants, nil
}

// GetByID returns nil, nil when the id is malformed or unknown; a malformed
// id is not a fault.
func (r *Repository) GetByID(ctx context.Context, id string) (*Plant, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var plant Plant
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&plant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &plant, nil
}

// UpdateByID sets only the given fields and returns the updated document.
func (r *Repository) UpdateByID(ctx context.Context, id string, updates bson.M) (*Plant, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var plant Plant
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updates},
		opts,
	).Decode(&plant)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &plant, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
