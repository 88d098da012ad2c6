package repository

import (
	"context"
	"fmt"
	"time"

	"catalog-admin-core/internal/domain"
	"catalog-admin-core/internal/infrastructure/repository/entity"
	"catalog-admin-core/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOptionRepository implements OptionRepository over the flat categories,
// brands and websites collections.
type MongoOptionRepository struct {
	collections map[domain.OptionCollection]*mongo.Collection
}

// NewMongoOptionRepository creates a new MongoDB option repository.
func NewMongoOptionRepository(db *mongo.Database) ports.OptionRepository {
	return &MongoOptionRepository{
		collections: map[domain.OptionCollection]*mongo.Collection{
			domain.CollectionCategories: db.Collection("categories"),
			domain.CollectionBrands:     db.Collection("brands"),
			domain.CollectionWebsites:   db.Collection("websites"),
		},
	}
}

func (r *MongoOptionRepository) coll(c domain.OptionCollection) (*mongo.Collection, error) {
	collection, ok := r.collections[c]
	if !ok {
		return nil, fmt.Errorf("unknown option collection: %s", c)
	}
	return collection, nil
}

// Add inserts a new option document.
func (r *MongoOptionRepository) Add(ctx context.Context, c domain.OptionCollection, name string) (*domain.Option, error) {
	collection, err := r.coll(c)
	if err != nil {
		return nil, err
	}

	doc := entity.MongoOptionDoc{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to add option: %w", err)
	}

	return doc.ToDomain(), nil
}

// Delete removes an option by id.
func (r *MongoOptionRepository) Delete(ctx context.Context, c domain.OptionCollection, id string) error {
	collection, err := r.coll(c)
	if err != nil {
		return err
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return fmt.Errorf("failed to delete option: %w", err)
	}

	return nil
}

// List retrieves all options ordered by creation time.
func (r *MongoOptionRepository) List(ctx context.Context, c domain.OptionCollection) ([]*domain.Option, error) {
	collection, err := r.coll(c)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list options: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Option
	for cursor.Next(ctx) {
		var doc entity.MongoOptionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode option: %w", err)
		}
		out = append(out, doc.ToDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return out, nil
}
