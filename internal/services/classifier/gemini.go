package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/brandex/internal/common"
	"github.com/ternarybob/brandex/internal/interfaces"
	"github.com/ternarybob/brandex/internal/models"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// GeminiClassifier implements the Classifier interface using the Google
// Gemini API via the genai client.
type GeminiClassifier struct {
	config  *common.GeminiConfig
	logger  arbor.ILogger
	client  *genai.Client
	limiter *rate.Limiter
	timeout time.Duration
}

var _ interfaces.Classifier = (*GeminiClassifier)(nil)

// NewGeminiClassifier creates a Gemini-backed classifier. The API key is
// resolved environment-first, then from the KV store, then from config.
func NewGeminiClassifier(geminiConfig *common.GeminiConfig, kv interfaces.KeyValueStorage, logger arbor.ILogger) (*GeminiClassifier, error) {
	ctx := context.Background()
	apiKey, err := common.ResolveAPIKey(ctx, kv, "gemini_api_key", geminiConfig.APIKey)
	if err != nil {
		return nil, fmt.Errorf("Google API key is required for the Gemini classifier (set via BRANDEX_GEMINI_API_KEY or gemini.api_key in config): %w", err)
	}

	if geminiConfig.Model == "" {
		geminiConfig.Model = "gemini-2.0-flash"
	}

	timeout, err := time.ParseDuration(geminiConfig.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout duration '%s': %w", geminiConfig.Timeout, err)
	}

	minInterval, err := time.ParseDuration(geminiConfig.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit duration '%s': %w", geminiConfig.RateLimit, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	service := &GeminiClassifier{
		config:  geminiConfig,
		logger:  logger,
		client:  client,
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
		timeout: timeout,
	}

	logger.Debug().
		Str("model", geminiConfig.Model).
		Dur("timeout", timeout).
		Msg("Gemini classifier initialized successfully")

	return service, nil
}

// Classify sends the heuristic evidence to Gemini and decodes its role
// assignments.
func (s *GeminiClassifier) Classify(ctx context.Context, input *interfaces.ClassifierInput) (*models.SemanticEnhancement, error) {
	if input == nil {
		return nil, fmt.Errorf("classifier input cannot be nil")
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	userPrompt, err := BuildUserPrompt(input)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	startTime := time.Now()
	s.logger.Debug().
		Str("url", input.URL).
		Int("button_candidates", len(input.Buttons)).
		Int("logo_candidates", len(input.Logos)).
		Bool("screenshot", len(input.Screenshot) > 0).
		Msg("Starting Gemini classification")

	parts := []*genai.Part{genai.NewPartFromText(userPrompt)}
	if len(input.Screenshot) > 0 {
		parts = append(parts, genai.NewPartFromBytes(input.Screenshot, "image/png"))
	}
	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: parts},
	}

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(s.config.Temperature),
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(timeoutCtx, s.config.Model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("Gemini API call failed: %w", err)
	}

	var response strings.Builder
	if resp != nil && len(resp.Candidates) > 0 {
		for _, candidate := range resp.Candidates {
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					response.WriteString(part.Text)
				}
			}
			if response.Len() > 0 {
				break
			}
		}
	}
	if response.Len() == 0 {
		return nil, fmt.Errorf("no response generated from Gemini API")
	}

	enhancement, err := ParseEnhancement(response.String())
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("url", input.URL).
		Dur("duration", time.Since(startTime)).
		Msg("Gemini classification completed")

	return enhancement, nil
}

// Close releases the client.
func (s *GeminiClassifier) Close() error {
	s.logger.Debug().Msg("Closing Gemini classifier")
	s.client = nil
	return nil
}
