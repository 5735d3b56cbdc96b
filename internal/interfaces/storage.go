package interfaces

import (
	"context"

	"github.com/ternarybob/brandex/internal/models"
)

// ProfileStorage persists extracted branding profiles.
type ProfileStorage interface {
	SaveProfile(profile *models.FinalBrandingProfile) error
	GetProfile(id string) (*models.FinalBrandingProfile, error)
	GetProfileByURL(url string) (*models.FinalBrandingProfile, error)
	ListProfiles(limit int) ([]*models.FinalBrandingProfile, error)
	DeleteProfile(id string) error
}

// KeyValueStorage is a small KV surface used for API key resolution.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// StorageManager aggregates the storage surfaces behind one lifecycle.
type StorageManager interface {
	ProfileStorage() ProfileStorage
	KeyValueStorage() KeyValueStorage
	Close() error
}
