package entity

import (
	"time"

	"catalog-admin-core/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoSpecRow mirrors domain.SpecRow in MongoDB.
type MongoSpecRow struct {
	Name  string `bson:"name"`
	Value string `bson:"value"`
}

// MongoSpecBlock mirrors domain.SpecBlock in MongoDB.
type MongoSpecBlock struct {
	ID    int64          `bson:"id"`
	Label string         `bson:"label"`
	Rows  []MongoSpecRow `bson:"rows"`
}

// MongoDynamicSpec mirrors domain.DynamicSpec in MongoDB.
type MongoDynamicSpec struct {
	Title string `bson:"title"`
	Value string `bson:"value"`
}

// MongoProductDoc represents a product record in MongoDB.
type MongoProductDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	ShortDescription string             `bson:"shortDescription"`
	SKU              string             `bson:"sku"`
	RegularPrice     float64            `bson:"regularPrice"`
	SalePrice        float64            `bson:"salePrice"`
	TechnicalSpecs   []MongoSpecBlock   `bson:"technicalSpecs"`
	DynamicSpecs     []MongoDynamicSpec `bson:"dynamicSpecs"`
	MainImage        string             `bson:"mainImage"`
	GalleryImage     string             `bson:"galleryImage"`
	Category         string             `bson:"category"`
	Brand            string             `bson:"brand"`
	Website          string             `bson:"website"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

// ToDomain converts the MongoDB document to a domain entity.
func (d *MongoProductDoc) ToDomain() *domain.Product {
	specs := make([]domain.SpecBlock, 0, len(d.TechnicalSpecs))
	for _, b := range d.TechnicalSpecs {
		rows := make([]domain.SpecRow, 0, len(b.Rows))
		for _, r := range b.Rows {
			rows = append(rows, domain.SpecRow{Name: r.Name, Value: r.Value})
		}
		specs = append(specs, domain.SpecBlock{ID: b.ID, Label: b.Label, Rows: rows})
	}

	dynamic := make([]domain.DynamicSpec, 0, len(d.DynamicSpecs))
	for _, s := range d.DynamicSpecs {
		dynamic = append(dynamic, domain.DynamicSpec{Title: s.Title, Value: s.Value})
	}

	return &domain.Product{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		ShortDescription: d.ShortDescription,
		SKU:              d.SKU,
		RegularPrice:     d.RegularPrice,
		SalePrice:        d.SalePrice,
		TechnicalSpecs:   specs,
		DynamicSpecs:     dynamic,
		MainImage:        d.MainImage,
		GalleryImage:     d.GalleryImage,
		Category:         d.Category,
		Brand:            d.Brand,
		Website:          d.Website,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// MongoProductDocFromDomain converts a domain entity to a MongoDB document.
func MongoProductDocFromDomain(p *domain.Product) *MongoProductDoc {
	specs := make([]MongoSpecBlock, 0, len(p.TechnicalSpecs))
	for _, b := range p.TechnicalSpecs {
		rows := make([]MongoSpecRow, 0, len(b.Rows))
		for _, r := range b.Rows {
			rows = append(rows, MongoSpecRow{Name: r.Name, Value: r.Value})
		}
		specs = append(specs, MongoSpecBlock{ID: b.ID, Label: b.Label, Rows: rows})
	}

	dynamic := make([]MongoDynamicSpec, 0, len(p.DynamicSpecs))
	for _, s := range p.DynamicSpecs {
		dynamic = append(dynamic, MongoDynamicSpec{Title: s.Title, Value: s.Value})
	}

	doc := &MongoProductDoc{
		Name:             p.Name,
		ShortDescription: p.ShortDescription,
		SKU:              p.SKU,
		RegularPrice:     p.RegularPrice,
		SalePrice:        p.SalePrice,
		TechnicalSpecs:   specs,
		DynamicSpecs:     dynamic,
		MainImage:        p.MainImage,
		GalleryImage:     p.GalleryImage,
		Category:         p.Category,
		Brand:            p.Brand,
		Website:          p.Website,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}

	if p.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(p.ID); err == nil {
			doc.ID = objID
		}
	}

	return doc
}
