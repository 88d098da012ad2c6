package domain

import "time"

// OptionCollection names one of the flat quick-add option collections shown
// on the product form sidebar.
type OptionCollection string

const (
	CollectionCategories OptionCollection = "categories"
	CollectionBrands     OptionCollection = "brands"
	CollectionWebsites   OptionCollection = "websites"
)

// ValidOptionCollection reports whether c is a known option collection.
func ValidOptionCollection(c OptionCollection) bool {
	switch c {
	case CollectionCategories, CollectionBrands, CollectionWebsites:
		return true
	}
	return false
}

// Option is a single quick-add entry in one of the flat option collections.
type Option struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}
