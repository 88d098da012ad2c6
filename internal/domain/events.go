package domain

import "time"

// ChangeOp is the kind of store mutation a ChangeEvent describes.
type ChangeOp string

const (
	OpCreated ChangeOp = "created"
	OpUpdated ChangeOp = "updated"
	OpDeleted ChangeOp = "deleted"
)

// ChangeEvent is pushed to subscribed admin sessions after every successful
// store write, in commit order. Sessions re-read through the normal list
// endpoints; the event carries identity, not document contents.
type ChangeEvent struct {
	Collection string   `json:"collection"`
	Op         ChangeOp `json:"op"`
	DocumentID string   `json:"document_id"`
	Tenant     Tenant   `json:"tenant,omitempty"`
	At         time.Time `json:"at"`
}
