// Package configrepo persists boolean configuration flags as independent
// documents in a MongoDB collection. The startup seeder uses it to remember
// whether sample data has already been loaded.
package configrepo

import (
	"context"
	"errors"

	"pizzashop/internal/core/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "config"

// FlagDTO represents the document structure for a configuration flag.
// The flag name doubles as the document key.
type FlagDTO struct {
	ID    string `bson:"_id"`
	Value bool   `bson:"value"`
}

// MongoConfigRepository implements ConfigRepository over a MongoDB collection.
type MongoConfigRepository struct {
	collection *mongo.Collection
}

// NewMongoConfigRepository creates a config repository bound to the config
// collection of the given database.
func NewMongoConfigRepository(db *mongo.Database) *MongoConfigRepository {
	return &MongoConfigRepository{
		collection: db.Collection(collectionName),
	}
}

// GetFlag returns the value of the named flag; missing documents read as false.
func (r *MongoConfigRepository) GetFlag(ctx context.Context, key string) (bool, error) {
	var dto FlagDTO
	err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&dto)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return dto.Value, nil
}

// SetFlag writes the named flag, creating the document if needed.
func (r *MongoConfigRepository) SetFlag(ctx context.Context, key string, value bool) error {
	dto := FlagDTO{ID: key, Value: value}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: key}}, dto, opts)
	return err
}

var _ ports.ConfigRepository = (*MongoConfigRepository)(nil)
