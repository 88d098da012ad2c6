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

// MongoSectionRepository implements SectionRepository using MongoDB.
type MongoSectionRepository struct {
	collection *mongo.Collection
}

// NewMongoSectionRepository creates a new MongoDB section repository.
func NewMongoSectionRepository(db *mongo.Database) ports.SectionRepository {
	return &MongoSectionRepository{
		collection: db.Collection("custom_sections"),
	}
}

// Create inserts a new section document and assigns its id.
func (r *MongoSectionRepository) Create(ctx context.Context, section *domain.CustomSection) error {
	doc := entity.MongoSectionDoc{
		ID:        primitive.NewObjectID(),
		Title:     section.Title,
		Items:     entity.MongoSectionItemsFromDomain(section.Items),
		CreatedAt: section.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	if doc.Items == nil {
		doc.Items = []entity.MongoSectionItem{}
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create section: %w", err)
	}

	section.ID = doc.ID.Hex()
	section.CreatedAt = doc.CreatedAt
	return nil
}

// Get retrieves a section by id, or nil when absent.
func (r *MongoSectionRepository) Get(ctx context.Context, id string) (*domain.CustomSection, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc entity.MongoSectionDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	return doc.ToDomain(), nil
}

// List retrieves all sections ordered by creation time.
func (r *MongoSectionRepository) List(ctx context.Context) ([]*domain.CustomSection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer cursor.Close(ctx)

	var sections []*domain.CustomSection
	for cursor.Next(ctx) {
		var doc entity.MongoSectionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode section: %w", err)
		}
		sections = append(sections, doc.ToDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return sections, nil
}

// PushItem appends one item with $push. The append commutes at the store
// layer, so concurrent writers are safe here.
func (r *MongoSectionRepository) PushItem(ctx context.Context, sectionID string, item domain.SectionItem) error {
	objID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return domain.ErrNotFound
	}

	update := bson.M{
		"$push": bson.M{
			"items": entity.MongoSectionItem{ID: item.ID, Name: item.Name},
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to push section item: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// ReplaceItems overwrites the whole item list. Unlike PushItem this is a
// plain replace and can lose a concurrent append.
func (r *MongoSectionRepository) ReplaceItems(ctx context.Context, sectionID string, items []domain.SectionItem) error {
	objID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return domain.ErrNotFound
	}

	docItems := entity.MongoSectionItemsFromDomain(items)
	if docItems == nil {
		docItems = []entity.MongoSectionItem{}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"items": docItems}})
	if err != nil {
		return fmt.Errorf("failed to replace section items: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a section document outright. Products that copied values
// from it are untouched.
func (r *MongoSectionRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}

	return nil
}
