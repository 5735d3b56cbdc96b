package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment" validate:"omitempty,oneof=development production"`
	Debug       bool            `toml:"debug"` // Retain diagnostic payloads in emitted profiles
	Logging     LoggingConfig   `toml:"logging"`
	Storage     StorageConfig   `toml:"storage"`
	Browser     BrowserConfig   `toml:"browser"`
	Collector   CollectorConfig `toml:"collector"`
	Claude      ClaudeConfig    `toml:"claude"`
	Gemini      GeminiConfig    `toml:"gemini"`
	LLM         LLMConfig       `toml:"llm"`
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	Output []string `toml:"output"` // "stdout", "file"
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path; empty disables persistence
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

// BrowserConfig contains ChromeDP browser pool configuration
type BrowserConfig struct {
	MaxInstances       int           `toml:"max_instances" validate:"min=1,max=20"`
	Headless           bool          `toml:"headless"`
	DisableGPU         bool          `toml:"disable_gpu"`
	NoSandbox          bool          `toml:"no_sandbox"`
	UserAgent          string        `toml:"user_agent"`
	NavigationTimeout  time.Duration `toml:"navigation_timeout"`   // Per-page navigation timeout
	JavaScriptWaitTime time.Duration `toml:"javascript_wait_time"` // Settle time after load before sampling
}

// CollectorConfig bounds the per-page sampling pass
type CollectorConfig struct {
	MaxButtons        int  `toml:"max_buttons"`        // Button-like elements sampled per page (default 50)
	MaxFormControls   int  `toml:"max_form_controls"`  // Form-control elements sampled per page (default 25)
	MaxTextElements   int  `toml:"max_text_elements"`  // h1,h2,h3,p,a elements sampled per page (default 50)
	MaxHeaderImages   int  `toml:"max_header_images"`  // Header/logo images sampled per page (default 5)
	ScreenshotEnabled bool `toml:"screenshot_enabled"` // Capture a viewport screenshot for the classifier
}

// ClaudeConfig contains Anthropic Claude API configuration
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`     // Anthropic API key
	Model       string  `toml:"model"`       // Model name (default: "claude-sonnet-4-20250514")
	MaxTokens   int     `toml:"max_tokens"`  // Maximum tokens in response (default: 4096)
	Timeout     string  `toml:"timeout"`     // Call timeout as duration string (default: "2m")
	RateLimit   string  `toml:"rate_limit"`  // Minimum spacing between calls (default: "1s")
	Temperature float32 `toml:"temperature"` // Completion temperature (default: 0)
}

// GeminiConfig contains Google Gemini API configuration
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`     // Google Gemini API key
	Model       string  `toml:"model"`       // Model name (default: "gemini-2.0-flash")
	Timeout     string  `toml:"timeout"`     // Call timeout as duration string (default: "2m")
	RateLimit   string  `toml:"rate_limit"`  // Minimum spacing between calls (default: "4s")
	Temperature float32 `toml:"temperature"` // Completion temperature (default: 0)
}

// LLMProvider represents the AI provider type
type LLMProvider string

const (
	// LLMProviderClaude uses Anthropic Claude API
	LLMProviderClaude LLMProvider = "claude"
	// LLMProviderGemini uses Google Gemini API
	LLMProviderGemini LLMProvider = "gemini"
)

// LLMConfig selects the semantic classification provider
type LLMConfig struct {
	Enabled         bool        `toml:"enabled"`          // Disable to run heuristic-only
	DefaultProvider LLMProvider `toml:"default_provider"` // "claude" or "gemini" (default: "claude")
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability; only
// user-facing settings should be exposed in brandex.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Debug:       false,
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path:           "./data/brandex",
				ResetOnStartup: false,
			},
		},
		Browser: BrowserConfig{
			MaxInstances:       2,
			Headless:           true,
			DisableGPU:         true,
			NoSandbox:          false,
			UserAgent:          "Brandex/1.0",
			NavigationTimeout:  45 * time.Second,
			JavaScriptWaitTime: 3 * time.Second,
		},
		Collector: CollectorConfig{
			MaxButtons:        50,
			MaxFormControls:   25,
			MaxTextElements:   50,
			MaxHeaderImages:   5,
			ScreenshotEnabled: true,
		},
		Claude: ClaudeConfig{
			Model:       "claude-sonnet-4-20250514",
			MaxTokens:   4096,
			Timeout:     "2m",
			RateLimit:   "1s",
			Temperature: 0,
		},
		Gemini: GeminiConfig{
			Model:       "gemini-2.0-flash",
			Timeout:     "2m",
			RateLimit:   "4s",
			Temperature: 0,
		},
		LLM: LLMConfig{
			Enabled:         true,
			DefaultProvider: LLMProviderClaude,
		},
	}
}

// LoadFromFiles loads configuration from TOML files in order, later files
// overriding earlier ones, then applies environment variable overrides.
// With no paths the defaults plus environment are returned.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies BRANDEX_* environment variables on top of the
// loaded configuration. Environment wins over files, CLI flags win over both.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("BRANDEX_LOG_LEVEL"); v != "" {
		config.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("BRANDEX_STORAGE_PATH"); v != "" {
		config.Storage.Badger.Path = v
	}
	if v := os.Getenv("BRANDEX_CLAUDE_API_KEY"); v != "" {
		config.Claude.APIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" && config.Claude.APIKey == "" {
		config.Claude.APIKey = v
	}
	if v := os.Getenv("BRANDEX_GEMINI_API_KEY"); v != "" {
		config.Gemini.APIKey = v
	}
	if v := os.Getenv("BRANDEX_LLM_PROVIDER"); v != "" {
		config.LLM.DefaultProvider = LLMProvider(strings.ToLower(v))
	}
	if v := os.Getenv("BRANDEX_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Debug = b
		}
	}
	if v := os.Getenv("BRANDEX_HEADLESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Browser.Headless = b
		}
	}
}

// Validate checks structural constraints on the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.LLM.DefaultProvider != LLMProviderClaude && c.LLM.DefaultProvider != LLMProviderGemini {
		return fmt.Errorf("invalid llm.default_provider %q: must be 'claude' or 'gemini'", c.LLM.DefaultProvider)
	}
	return nil
}

// IsDebugEnabled reports whether diagnostic payloads should be retained in
// emitted profiles. The BRANDEX_DEBUG environment toggle is honored at call
// time so callers can flip visibility without reloading configuration.
func (c *Config) IsDebugEnabled() bool {
	if v := os.Getenv("BRANDEX_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return c.Debug
}
