package repository

import (
	"context"
	"fmt"
	"time"

	"catalog-admin-core/internal/domain"
	"catalog-admin-core/internal/infrastructure/repository/entity"
	"catalog-admin-core/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTaxonomyRepository implements TaxonomyRepository using MongoDB.
// Classification documents live in the classifications collection, keyed by
// tenant name.
type MongoTaxonomyRepository struct {
	collection *mongo.Collection
}

// NewMongoTaxonomyRepository creates a new MongoDB taxonomy repository.
func NewMongoTaxonomyRepository(db *mongo.Database) ports.TaxonomyRepository {
	return &MongoTaxonomyRepository{
		collection: db.Collection("classifications"),
	}
}

// Get retrieves a tenant's classification document.
func (r *MongoTaxonomyRepository) Get(ctx context.Context, tenant domain.Tenant) (*domain.TaxonomySet, error) {
	var doc entity.MongoClassificationDoc

	err := r.collection.FindOne(ctx, bson.M{"_id": string(tenant)}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get classification: %w", err)
	}

	return doc.ToDomain(), nil
}

// MergeDefaults unions default names into the tenant's lists using $addToSet,
// creating the document when absent. The union is commutative, so concurrent
// seeders cannot lose each other's writes.
func (r *MongoTaxonomyRepository) MergeDefaults(ctx context.Context, tenant domain.Tenant, brands, categories []string) error {
	opts := options.Update().SetUpsert(true)
	update := bson.M{
		"$addToSet": bson.M{
			"brands":     bson.M{"$each": brands},
			"categories": bson.M{"$each": categories},
		},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": string(tenant)}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to seed classification: %w", err)
	}

	return nil
}

// ReplaceList overwrites the whole option list for kind. There is no version
// check: a writer holding a stale read silently undoes concurrent changes.
func (r *MongoTaxonomyRepository) ReplaceList(ctx context.Context, tenant domain.Tenant, kind domain.OptionKind, names []string) error {
	field := "categories"
	if kind == domain.OptionBrand {
		field = "brands"
	}

	opts := options.Update().SetUpsert(true)
	update := bson.M{
		"$set": bson.M{
			field:       names,
			"updatedAt": time.Now(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": string(tenant)}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to replace %s list: %w", field, err)
	}

	return nil
}
