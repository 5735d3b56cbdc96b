package classifier

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/brandex/internal/common"
	"github.com/ternarybob/brandex/internal/interfaces"
)

// NewClassifier creates the configured semantic classifier implementation.
// Returns (nil, nil) when classification is disabled; callers then run
// heuristic-only.
func NewClassifier(cfg *common.Config, kv interfaces.KeyValueStorage, logger arbor.ILogger) (interfaces.Classifier, error) {
	if !cfg.LLM.Enabled {
		logger.Info().Msg("Semantic classification disabled, running heuristic-only")
		return nil, nil
	}

	logger.Info().Str("provider", string(cfg.LLM.DefaultProvider)).Msg("Initializing semantic classifier")

	switch cfg.LLM.DefaultProvider {
	case common.LLMProviderClaude:
		return NewClaudeClassifier(&cfg.Claude, kv, logger)

	case common.LLMProviderGemini:
		return NewGeminiClassifier(&cfg.Gemini, kv, logger)

	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", cfg.LLM.DefaultProvider)
	}
}
