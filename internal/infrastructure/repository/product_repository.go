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

// MongoProductRepository implements ProductRepository using MongoDB.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new MongoDB product repository.
func NewMongoProductRepository(db *mongo.Database) ports.ProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("products"),
	}
}

// Create inserts a new product record with a server-assigned creation time
// and fills in the assigned id.
func (r *MongoProductRepository) Create(ctx context.Context, product *domain.Product) error {
	doc := entity.MongoProductDocFromDomain(product)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	product.ID = doc.ID.Hex()
	product.CreatedAt = doc.CreatedAt
	product.UpdatedAt = doc.UpdatedAt
	return nil
}

// Update merges the record's fields into the existing document. The original
// creation time is preserved.
func (r *MongoProductRepository) Update(ctx context.Context, id string, product *domain.Product) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	doc := entity.MongoProductDocFromDomain(product)
	doc.ID = objID
	doc.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"name":             doc.Name,
		"shortDescription": doc.ShortDescription,
		"sku":              doc.SKU,
		"regularPrice":     doc.RegularPrice,
		"salePrice":        doc.SalePrice,
		"technicalSpecs":   doc.TechnicalSpecs,
		"dynamicSpecs":     doc.DynamicSpecs,
		"mainImage":        doc.MainImage,
		"galleryImage":     doc.GalleryImage,
		"category":         doc.Category,
		"brand":            doc.Brand,
		"website":          doc.Website,
		"updatedAt":        doc.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Get retrieves a product by id, or nil when absent.
func (r *MongoProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc entity.MongoProductDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return doc.ToDomain(), nil
}

// List retrieves all products, newest first.
func (r *MongoProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	for cursor.Next(ctx) {
		var doc entity.MongoProductDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, doc.ToDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return products, nil
}

// Delete removes a product by id.
func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
