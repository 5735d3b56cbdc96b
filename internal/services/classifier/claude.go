package classifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/brandex/internal/common"
	"github.com/ternarybob/brandex/internal/interfaces"
	"github.com/ternarybob/brandex/internal/models"
	"golang.org/x/time/rate"
)

// ClaudeClassifier implements the Classifier interface using the Anthropic
// Claude API. When a screenshot is provided it is attached as an image block
// so the model can see the page it is classifying.
type ClaudeClassifier struct {
	config    *common.ClaudeConfig
	logger    arbor.ILogger
	client    *anthropic.Client
	limiter   *rate.Limiter
	timeout   time.Duration
	maxTokens int
}

var _ interfaces.Classifier = (*ClaudeClassifier)(nil)

// NewClaudeClassifier creates a Claude-backed classifier. The API key is
// resolved environment-first, then from the KV store, then from config.
func NewClaudeClassifier(claudeConfig *common.ClaudeConfig, kv interfaces.KeyValueStorage, logger arbor.ILogger) (*ClaudeClassifier, error) {
	ctx := context.Background()
	apiKey, err := common.ResolveAPIKey(ctx, kv, "claude_api_key", claudeConfig.APIKey)
	if err != nil {
		return nil, fmt.Errorf("Anthropic API key is required for the Claude classifier (set via ANTHROPIC_API_KEY, BRANDEX_CLAUDE_API_KEY, or claude.api_key in config): %w", err)
	}

	if claudeConfig.Model == "" {
		claudeConfig.Model = "claude-sonnet-4-20250514"
	}

	timeout, err := time.ParseDuration(claudeConfig.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout duration '%s': %w", claudeConfig.Timeout, err)
	}

	minInterval, err := time.ParseDuration(claudeConfig.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit duration '%s': %w", claudeConfig.RateLimit, err)
	}

	maxTokens := claudeConfig.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	service := &ClaudeClassifier{
		config:    claudeConfig,
		logger:    logger,
		client:    &client,
		limiter:   rate.NewLimiter(rate.Every(minInterval), 1),
		timeout:   timeout,
		maxTokens: maxTokens,
	}

	logger.Debug().
		Str("model", claudeConfig.Model).
		Dur("timeout", timeout).
		Int("max_tokens", maxTokens).
		Msg("Claude classifier initialized successfully")

	return service, nil
}

// Classify sends the heuristic evidence to Claude and decodes its role
// assignments. Errors are recoverable by contract; callers fall back to the
// heuristic profile.
func (s *ClaudeClassifier) Classify(ctx context.Context, input *interfaces.ClassifierInput) (*models.SemanticEnhancement, error) {
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
		Msg("Starting Claude classification")

	blocks := []anthropic.ContentBlockParamUnion{
		anthropic.NewTextBlock(userPrompt),
	}
	if len(input.Screenshot) > 0 {
		blocks = append(blocks, anthropic.NewImageBlockBase64("image/png", encodePNG(input.Screenshot)))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.config.Model),
		MaxTokens: int64(s.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	}
	if s.config.Temperature > 0 {
		params.Temperature = anthropic.Float(float64(s.config.Temperature))
	}

	resp, err := s.client.Messages.New(timeoutCtx, params)
	if err != nil {
		return nil, fmt.Errorf("Claude API call failed: %w", err)
	}

	var response strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			response.WriteString(block.Text)
		}
	}
	if response.Len() == 0 {
		return nil, fmt.Errorf("no response generated from Claude API")
	}

	enhancement, err := ParseEnhancement(response.String())
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("url", input.URL).
		Dur("duration", time.Since(startTime)).
		Msg("Claude classification completed")

	return enhancement, nil
}

// Close releases the client.
func (s *ClaudeClassifier) Close() error {
	s.logger.Debug().Msg("Closing Claude classifier")
	s.client = nil
	return nil
}

func encodePNG(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
