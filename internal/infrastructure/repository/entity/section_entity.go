package entity

import (
	"time"

	"catalog-admin-core/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoSectionItem is one choice inside a custom section document.
type MongoSectionItem struct {
	ID   string `bson:"id"`
	Name string `bson:"name"`
}

// MongoSectionDoc represents a custom section in MongoDB.
type MongoSectionDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Items     []MongoSectionItem `bson:"items"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// ToDomain converts the MongoDB document to a domain entity.
func (d *MongoSectionDoc) ToDomain() *domain.CustomSection {
	items := make([]domain.SectionItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domain.SectionItem{ID: it.ID, Name: it.Name})
	}
	return &domain.CustomSection{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Items:     items,
		CreatedAt: d.CreatedAt,
	}
}

// MongoSectionItemsFromDomain converts domain items to document items.
func MongoSectionItemsFromDomain(items []domain.SectionItem) []MongoSectionItem {
	out := make([]MongoSectionItem, 0, len(items))
	for _, it := range items {
		out = append(out, MongoSectionItem{ID: it.ID, Name: it.Name})
	}
	return out
}
