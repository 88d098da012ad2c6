package domain

import "time"

// User is a registered staff account. Key is the admin API key presented on
// every authenticated request.
type User struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	PhotoURL  string    `json:"photo_url" bson:"photoURL"`
	Provider  string    `json:"provider" bson:"provider"`
	Key       string    `json:"key" bson:"key"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}
