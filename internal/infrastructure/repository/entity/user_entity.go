package entity

import (
	"time"

	"catalog-admin-core/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoUserDoc represents a staff account in MongoDB.
type MongoUserDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	PhotoURL  string             `bson:"photoURL"`
	Provider  string             `bson:"provider"`
	Key       string             `bson:"key"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// ToDomain converts the MongoDB document to a domain entity.
func (d *MongoUserDoc) ToDomain() *domain.User {
	return &domain.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		PhotoURL:  d.PhotoURL,
		Provider:  d.Provider,
		Key:       d.Key,
		CreatedAt: d.CreatedAt,
	}
}

// MongoUserDocFromDomain converts a domain entity to a MongoDB document.
func MongoUserDocFromDomain(u *domain.User) *MongoUserDoc {
	doc := &MongoUserDoc{
		Name:      u.Name,
		Email:     u.Email,
		PhotoURL:  u.PhotoURL,
		Provider:  u.Provider,
		Key:       u.Key,
		CreatedAt: u.CreatedAt,
	}

	if u.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(u.ID); err == nil {
			doc.ID = objID
		}
	}

	return doc
}
