package orderrepo

import (
	"context"
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/ports"
	"pizzashop/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "orders"

// MongoOrderRepository implements OrderRepository over a MongoDB collection.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates an order repository bound to the orders
// collection of the given database.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection(collectionName),
	}
}

// GetAll retrieves every order document, oldest first.
func (r *MongoOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, bson.D{})
}

// GetAllByStatus retrieves the orders whose stored status matches the given
// wire representation. Unmatched statuses yield an empty slice.
func (r *MongoOrderRepository) GetAllByStatus(ctx context.Context, status string) ([]*order.Order, error) {
	return r.find(ctx, bson.D{{Key: "status", Value: status}})
}

// Get retrieves an order by ID.
func (r *MongoOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&dto)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Add saves a new order document.
func (r *MongoOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	_, err := r.collection.InsertOne(ctx, dto)
	return err
}

// Update replaces the stored order document wholesale.
func (r *MongoOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result, err := r.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: dto.ID}}, dto)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}
	return nil
}

// Delete removes the order document.
func (r *MongoOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

func (r *MongoOrderRepository) find(ctx context.Context, filter bson.D) ([]*order.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := make([]*order.Order, 0)
	for cursor.Next(ctx) {
		var dto OrderDTO
		if err := cursor.Decode(&dto); err != nil {
			return nil, err
		}

		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, aggregate)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

var _ ports.OrderRepository = (*MongoOrderRepository)(nil)
