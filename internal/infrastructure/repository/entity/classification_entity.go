package entity

import (
	"time"

	"catalog-admin-core/internal/domain"
)

// MongoClassificationDoc represents a per-tenant classification document in
// MongoDB. Keyed by tenant name, not a store-assigned id.
type MongoClassificationDoc struct {
	ID         string    `bson:"_id"`
	Brands     []string  `bson:"brands"`
	Categories []string  `bson:"categories"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

// ToDomain converts the MongoDB document to a domain entity.
func (d *MongoClassificationDoc) ToDomain() *domain.TaxonomySet {
	return &domain.TaxonomySet{
		Tenant:     domain.Tenant(d.ID),
		Brands:     d.Brands,
		Categories: d.Categories,
	}
}
