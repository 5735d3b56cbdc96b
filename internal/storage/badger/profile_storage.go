package badger

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/brandex/internal/interfaces"
	"github.com/ternarybob/brandex/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// ProfileStorage implements the ProfileStorage interface for Badger
type ProfileStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewProfileStorage creates a new ProfileStorage instance
func NewProfileStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ProfileStorage {
	return &ProfileStorage{
		db:     db,
		logger: logger,
	}
}

// SaveProfile inserts or updates a branding profile by ID
func (s *ProfileStorage) SaveProfile(profile *models.FinalBrandingProfile) error {
	if profile == nil || profile.ID == "" {
		return fmt.Errorf("profile with non-empty ID is required")
	}

	profile.UpdatedAt = time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = profile.UpdatedAt
	}

	if err := s.db.Store().Upsert(profile.ID, profile); err != nil {
		return fmt.Errorf("failed to save branding profile: %w", err)
	}

	s.logger.Debug().
		Str("profile_id", profile.ID).
		Str("url", profile.URL).
		Msg("Branding profile saved")

	return nil
}

// GetProfile retrieves a branding profile by ID
func (s *ProfileStorage) GetProfile(id string) (*models.FinalBrandingProfile, error) {
	var profile models.FinalBrandingProfile
	err := s.db.Store().Get(id, &profile)
	if err == badgerhold.ErrNotFound {
		return nil, fmt.Errorf("branding profile %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get branding profile: %w", err)
	}
	return &profile, nil
}

// GetProfileByURL retrieves the most recently updated profile for a URL
func (s *ProfileStorage) GetProfileByURL(url string) (*models.FinalBrandingProfile, error) {
	var profiles []models.FinalBrandingProfile
	err := s.db.Store().Find(&profiles, badgerhold.Where("URL").Eq(url).SortBy("UpdatedAt").Reverse().Limit(1))
	if err != nil {
		return nil, fmt.Errorf("failed to query branding profiles by URL: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no branding profile found for %s", url)
	}
	return &profiles[0], nil
}

// ListProfiles returns profiles ordered by updated_at DESC, up to limit
func (s *ProfileStorage) ListProfiles(limit int) ([]*models.FinalBrandingProfile, error) {
	query := badgerhold.Where("ID").Ne("").SortBy("UpdatedAt").Reverse()
	if limit > 0 {
		query = query.Limit(limit)
	}

	var profiles []models.FinalBrandingProfile
	if err := s.db.Store().Find(&profiles, query); err != nil {
		return nil, fmt.Errorf("failed to list branding profiles: %w", err)
	}

	out := make([]*models.FinalBrandingProfile, len(profiles))
	for i := range profiles {
		out[i] = &profiles[i]
	}
	return out, nil
}

// DeleteProfile removes a branding profile by ID
func (s *ProfileStorage) DeleteProfile(id string) error {
	err := s.db.Store().Delete(id, &models.FinalBrandingProfile{})
	if err == badgerhold.ErrNotFound {
		return fmt.Errorf("branding profile %s not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete branding profile: %w", err)
	}
	return nil
}
