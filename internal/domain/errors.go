package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName is returned when an add/create operation receives a name
	// that is empty after trimming.
	ErrEmptyName = errors.New("name is empty")

	// ErrUnknownTenant is returned for a tenant key outside the configured set.
	ErrUnknownTenant = errors.New("unknown tenant")

	// ErrInvalidInput is returned when a request carries a kind, collection
	// or status outside the known set.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a document the operation targets does not exist.
	ErrNotFound = errors.New("not found")
)

// MissingFieldError reports the required fields a publish was missing. It is
// raised before any upload or store call is made.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field(s): %s", strings.Join(e.Fields, ", "))
}

// UploadError wraps an asset host failure. The publish that triggered the
// upload is aborted; sibling assets already uploaded are left orphaned.
type UploadError struct {
	Field string
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed for %s: %v", e.Field, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
