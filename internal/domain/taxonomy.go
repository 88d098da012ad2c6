package domain

import (
	"strings"
	"time"
)

// Tenant identifies a website / business unit. The set is fixed and known at
// startup; the concrete keys and their default taxonomies come from config.
type Tenant string

// OptionKind selects which list of a TaxonomySet an operation targets.
type OptionKind string

const (
	OptionBrand    OptionKind = "brand"
	OptionCategory OptionKind = "category"
)

// ValidOptionKind reports whether k is one of the known kinds.
func ValidOptionKind(k OptionKind) bool {
	return k == OptionBrand || k == OptionCategory
}

// TaxonomySet holds the classification option lists for one tenant.
// Names are stored normalized (trimmed, upper-cased) and are unique within
// each list. Both lists are ordered; new options are prepended.
type TaxonomySet struct {
	Tenant     Tenant   `json:"tenant" bson:"_id"`
	Brands     []string `json:"brands" bson:"brands"`
	Categories []string `json:"categories" bson:"categories"`
}

// List returns the option list for the given kind.
func (s *TaxonomySet) List(kind OptionKind) []string {
	if kind == OptionBrand {
		return s.Brands
	}
	return s.Categories
}

// Contains reports whether the normalized form of name is present in the
// list for kind.
func (s *TaxonomySet) Contains(kind OptionKind, name string) bool {
	name = NormalizeName(name)
	for _, v := range s.List(kind) {
		if v == name {
			return true
		}
	}
	return false
}

// NormalizeName is the canonical form applied to brand and category names
// before storage or comparison: trimmed and upper-cased.
func NormalizeName(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// SectionItem is one selectable choice inside a custom section. Names are
// stored verbatim and are not required to be unique; the id alone
// distinguishes items.
type SectionItem struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// CustomSection is an admin-defined classification facet beyond brand and
// category (e.g. "MATERIAL"). Titles are upper-cased on creation. Deleting a
// section does not touch products that copied a value from it: product
// records hold snapshots, not references.
type CustomSection struct {
	ID        string        `json:"id" bson:"_id"`
	Title     string        `json:"title" bson:"title"`
	Items     []SectionItem `json:"items" bson:"items"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}
