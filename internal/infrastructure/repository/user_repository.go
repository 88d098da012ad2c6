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
)

// MongoUserRepository implements UserRepository using MongoDB.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoDB user repository.
func NewMongoUserRepository(db *mongo.Database) ports.UserRepository {
	return &MongoUserRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new staff account and fills in the assigned id.
func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := entity.MongoUserDocFromDomain(user)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt
	return nil
}

// GetByEmail retrieves a user by email, or nil when absent.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc entity.MongoUserDoc

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return doc.ToDomain(), nil
}

// GetByKey retrieves a user by admin key, or nil when absent.
func (r *MongoUserRepository) GetByKey(ctx context.Context, key string) (*domain.User, error) {
	var doc entity.MongoUserDoc

	err := r.collection.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return doc.ToDomain(), nil
}
