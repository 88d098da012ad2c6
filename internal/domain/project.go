package domain

import "time"

// ProjectStatus is the publication state of a portfolio project.
type ProjectStatus string

const (
	StatusPublished ProjectStatus = "Published"
	StatusDraft     ProjectStatus = "Draft"
	StatusArchived  ProjectStatus = "Archived"
)

// ValidProjectStatus reports whether s is a known status.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case StatusPublished, StatusDraft, StatusArchived:
		return true
	}
	return false
}

// Project is a portfolio entry managed by the projects screen. Website holds
// the display name of the owning business unit as a copied string.
type Project struct {
	ID        string        `json:"id" bson:"_id"`
	Title     string        `json:"title" bson:"title"`
	Details   string        `json:"details" bson:"details"`
	Website   string        `json:"website" bson:"website"`
	MainImage string        `json:"main_image" bson:"mainImage"`
	Logo      string        `json:"logo" bson:"logo"`
	Status    ProjectStatus `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updatedAt"`
}
