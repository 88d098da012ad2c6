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

// MongoProjectRepository implements ProjectRepository using MongoDB.
type MongoProjectRepository struct {
	collection *mongo.Collection
}

// NewMongoProjectRepository creates a new MongoDB project repository.
func NewMongoProjectRepository(db *mongo.Database) ports.ProjectRepository {
	return &MongoProjectRepository{
		collection: db.Collection("projects"),
	}
}

// Create inserts a new project and fills in the assigned id.
func (r *MongoProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	doc := entity.MongoProjectDocFromDomain(project)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	project.ID = doc.ID.Hex()
	project.CreatedAt = doc.CreatedAt
	project.UpdatedAt = doc.UpdatedAt
	return nil
}

// Update merges the project's fields into the existing document.
func (r *MongoProjectRepository) Update(ctx context.Context, id string, project *domain.Project) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":     project.Title,
		"details":   project.Details,
		"website":   project.Website,
		"mainImage": project.MainImage,
		"logo":      project.Logo,
		"status":    string(project.Status),
		"updatedAt": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Get retrieves a project by id, or nil when absent.
func (r *MongoProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc entity.MongoProjectDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return doc.ToDomain(), nil
}

// List retrieves all projects, newest first.
func (r *MongoProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*domain.Project
	for cursor.Next(ctx) {
		var doc entity.MongoProjectDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode project: %w", err)
		}
		projects = append(projects, doc.ToDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return projects, nil
}

// Delete removes a project by id.
func (r *MongoProjectRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
