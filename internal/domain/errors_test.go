package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Fields: []string{"name", "main image"}}
	assert.Equal(t, "missing required field(s): name, main image", err.Error())
}

func TestUploadError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &UploadError{Field: "main image", Err: cause}

	assert.Equal(t, "upload failed for main image: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
}
