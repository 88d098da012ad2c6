package entity

import (
	"time"

	"catalog-admin-core/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoOptionDoc represents one quick-add option in the flat categories,
// brands or websites collections.
type MongoOptionDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// ToDomain converts the MongoDB document to a domain entity.
func (d *MongoOptionDoc) ToDomain() *domain.Option {
	return &domain.Option{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}
