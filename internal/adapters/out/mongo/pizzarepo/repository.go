package pizzarepo

import (
	"context"
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/pizza"
	"pizzashop/internal/core/ports"
	"pizzashop/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "pizzas"

// MongoPizzaRepository implements PizzaRepository over a MongoDB collection.
type MongoPizzaRepository struct {
	collection *mongo.Collection
}

// NewMongoPizzaRepository creates a pizza repository bound to the pizzas
// collection of the given database.
func NewMongoPizzaRepository(db *mongo.Database) *MongoPizzaRepository {
	return &MongoPizzaRepository{
		collection: db.Collection(collectionName),
	}
}

// GetAll retrieves every pizza document.
func (r *MongoPizzaRepository) GetAll(ctx context.Context) ([]*pizza.Pizza, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := make([]*pizza.Pizza, 0)
	for cursor.Next(ctx) {
		var dto PizzaDTO
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

// Get retrieves a pizza by ID.
func (r *MongoPizzaRepository) Get(ctx context.Context, id kernel.ID) (*pizza.Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PizzaDTO
	err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&dto)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("pizza", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a pizza by exact, case-sensitive name match.
func (r *MongoPizzaRepository) GetByName(ctx context.Context, name string) (*pizza.Pizza, error) {
	var dto PizzaDTO
	err := r.collection.FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&dto)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("pizza", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Add saves a new pizza document.
func (r *MongoPizzaRepository) Add(ctx context.Context, aggregate *pizza.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	_, err := r.collection.InsertOne(ctx, dto)
	return err
}

// Update replaces the stored pizza document wholesale.
func (r *MongoPizzaRepository) Update(ctx context.Context, aggregate *pizza.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result, err := r.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: dto.ID}}, dto)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("pizza", dto.ID)
	}
	return nil
}

// Delete removes the pizza document.
func (r *MongoPizzaRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.NewObjectNotFoundError("pizza", id.String())
	}
	return nil
}

var _ ports.PizzaRepository = (*MongoPizzaRepository)(nil)
