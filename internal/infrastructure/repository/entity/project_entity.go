package entity

import (
	"time"

	"catalog-admin-core/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoProjectDoc represents a portfolio project in MongoDB.
type MongoProjectDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Details   string             `bson:"details"`
	Website   string             `bson:"website"`
	MainImage string             `bson:"mainImage"`
	Logo      string             `bson:"logo"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// ToDomain converts the MongoDB document to a domain entity.
func (d *MongoProjectDoc) ToDomain() *domain.Project {
	return &domain.Project{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Details:   d.Details,
		Website:   d.Website,
		MainImage: d.MainImage,
		Logo:      d.Logo,
		Status:    domain.ProjectStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// MongoProjectDocFromDomain converts a domain entity to a MongoDB document.
func MongoProjectDocFromDomain(p *domain.Project) *MongoProjectDoc {
	doc := &MongoProjectDoc{
		Title:     p.Title,
		Details:   p.Details,
		Website:   p.Website,
		MainImage: p.MainImage,
		Logo:      p.Logo,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(p.ID); err == nil {
			doc.ID = objID
		}
	}

	return doc
}
