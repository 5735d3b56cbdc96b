package branding

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/brandex/internal/common"
	"github.com/ternarybob/brandex/internal/interfaces"
	"github.com/ternarybob/brandex/internal/models"
	"github.com/ternarybob/brandex/internal/services/collector"
	"github.com/ternarybob/brandex/internal/services/inference"
	"github.com/ternarybob/brandex/internal/services/merger"
)

// Service drives the extraction pipeline for one URL at a time: render,
// collect, infer, classify, merge, persist. Collection and inference never
// fail the pipeline on bad page data; only navigation itself is fatal.
type Service struct {
	config     *common.Config
	pool       *collector.BrowserPool
	classifier interfaces.Classifier
	storage    interfaces.StorageManager
	logger     arbor.ILogger
	script     string
}

// NewService wires the extraction pipeline. classifier and storage may be
// nil: the pipeline then runs heuristic-only and skips persistence.
func NewService(config *common.Config, pool *collector.BrowserPool, clf interfaces.Classifier, storage interfaces.StorageManager, logger arbor.ILogger) *Service {
	return &Service{
		config:     config,
		pool:       pool,
		classifier: clf,
		storage:    storage,
		logger:     logger,
		script:     collector.BuildCollectScript(config.Collector),
	}
}

// Extract renders the URL and produces its final branding profile.
func (s *Service) Extract(ctx context.Context, url string) (*models.FinalBrandingProfile, error) {
	accessor, err := s.pool.Acquire()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire browser: %w", err)
	}
	defer accessor.Close()
	accessor.SetCollectScript(s.script)

	return s.ExtractWithAccessor(ctx, accessor, url)
}

// ExtractWithAccessor runs the pipeline over an already-acquired page
// accessor.
func (s *Service) ExtractWithAccessor(ctx context.Context, accessor interfaces.PageAccessor, url string) (*models.FinalBrandingProfile, error) {
	if err := accessor.Navigate(ctx, url); err != nil {
		return nil, err
	}

	signals, err := accessor.CollectSignals(ctx)
	if err != nil {
		return nil, fmt.Errorf("signal collection failed: %w", err)
	}
	if signals.URL == "" {
		signals.URL = url
	}

	record, err := collector.Collect(signals, s.logger)
	if err != nil {
		return nil, err
	}

	heuristic := inference.Infer(record)

	enhancement := s.classify(ctx, accessor, heuristic, url)

	profile := merger.Merge(heuristic, enhancement, merger.Options{
		Debug: s.config.IsDebugEnabled(),
		URL:   url,
	})

	if s.storage != nil {
		if err := s.storage.ProfileStorage().SaveProfile(profile); err != nil {
			s.logger.Warn().Err(err).Str("url", url).Msg("Failed to persist branding profile")
		}
	}

	s.logger.Info().
		Str("url", url).
		Str("profile_id", profile.ID).
		Str("color_scheme", string(profile.ColorScheme)).
		Str("primary", profile.Colors.Primary).
		Msg("Branding profile extracted")

	return profile, nil
}

// classify runs the semantic classifier when one is configured. Any failure
// here is recoverable: it is logged and the pipeline degrades to the
// heuristic profile alone.
func (s *Service) classify(ctx context.Context, accessor interfaces.PageAccessor, heuristic *models.HeuristicProfile, url string) *models.SemanticEnhancement {
	if s.classifier == nil {
		return nil
	}

	input := &interfaces.ClassifierInput{
		Profile:   heuristic,
		Buttons:   heuristic.ButtonCandidates,
		Logos:     heuristic.LogoCandidates,
		BrandName: heuristic.BrandName,
		URL:       url,
	}

	if s.config.Collector.ScreenshotEnabled {
		shot, err := accessor.Screenshot(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Str("url", url).Msg("Screenshot capture failed, classifying without image")
		} else {
			input.Screenshot = shot
		}
	}

	s.logger.Info().
		Str("url", url).
		Int("button_candidates", len(input.Buttons)).
		Int("logo_candidates", len(input.Logos)).
		Msg("Sending candidates for semantic classification")

	enhancement, err := s.classifier.Classify(ctx, input)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", url).Msg("Semantic classification failed, falling back to heuristic profile")
		return nil
	}
	return enhancement
}
