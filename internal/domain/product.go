package domain

import (
	"strconv"
	"strings"
	"time"
)

// Fallback classification values written when the form had no selection.
const (
	DefaultCategory = "Uncategorized"
	DefaultBrand    = "Generic"
	DefaultWebsite  = "N/A"
)

// SpecRow is one label/value line of a technical specification block.
type SpecRow struct {
	Name  string `json:"name" bson:"name"`
	Value string `json:"value" bson:"value"`
}

// SpecBlock groups free-form specification rows under a label.
type SpecBlock struct {
	ID    int64     `json:"id" bson:"id"`
	Label string    `json:"label" bson:"label"`
	Rows  []SpecRow `json:"rows" bson:"rows"`
}

// DynamicSpec is the value a product copied from a custom section at publish
// time. It is a snapshot: later edits to the section never propagate here.
type DynamicSpec struct {
	Title string `json:"title" bson:"title"`
	Value string `json:"value" bson:"value"`
}

// Product is a denormalized catalog record. Category, brand, website and the
// dynamic specs are copies of the names chosen on the form, not references
// into the taxonomy collections.
type Product struct {
	ID               string        `json:"id" bson:"_id"`
	Name             string        `json:"name" bson:"name"`
	ShortDescription string        `json:"short_description" bson:"shortDescription"`
	SKU              string        `json:"sku" bson:"sku"`
	RegularPrice     float64       `json:"regular_price" bson:"regularPrice"`
	SalePrice        float64       `json:"sale_price" bson:"salePrice"`
	TechnicalSpecs   []SpecBlock   `json:"technical_specs" bson:"technicalSpecs"`
	DynamicSpecs     []DynamicSpec `json:"dynamic_specs" bson:"dynamicSpecs"`
	MainImage        string        `json:"main_image" bson:"mainImage"`
	GalleryImage     string        `json:"gallery_image" bson:"galleryImage"`
	Category         string        `json:"category" bson:"category"`
	Brand            string        `json:"brand" bson:"brand"`
	Website          string        `json:"website" bson:"website"`
	CreatedAt        time.Time     `json:"created_at" bson:"createdAt"`
	UpdatedAt        time.Time     `json:"updated_at" bson:"updatedAt"`
}

// ParsePrice parses price input permissively: empty or non-numeric values
// coerce to 0 rather than failing the publish.
func ParsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
