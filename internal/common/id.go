package common

import (
	"github.com/google/uuid"
)

// NewProfileID generates a unique branding profile ID with the "bp_" prefix
// Format: bp_<uuid>
func NewProfileID() string {
	return "bp_" + uuid.New().String()
}
