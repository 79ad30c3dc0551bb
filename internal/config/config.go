// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the pipeline configuration. It can be loaded from a JSON file
// with CLI flags layered on top; missing values fall back to defaults.
type Config struct {
	// Models
	BrainModel string `json:"brain_model,omitempty" validate:"required"` // Reasoning model for CV analysis
	CoderModel string `json:"coder_model,omitempty" validate:"required"` // Code model for HTML generation

	// Generation parameters
	AnalysisTemperature   float64 `json:"analysis_temperature,omitempty" validate:"gte=0,lte=2"`
	GenerationTemperature float64 `json:"generation_temperature,omitempty" validate:"gte=0,lte=2"`
	ContextWindow         int     `json:"context_window,omitempty" validate:"gte=0"`
	MaxTokens             int     `json:"max_tokens,omitempty" validate:"gte=0"`

	// Runtime behavior
	SettleSeconds  int    `json:"settle_seconds,omitempty" validate:"gte=0"` // Wait after model eviction
	ReasoningOpen  string `json:"reasoning_open,omitempty"`                  // Opening reasoning delimiter
	ReasoningClose string `json:"reasoning_close,omitempty"`                 // Closing reasoning delimiter

	// Paths and UI
	CVPath    string `json:"cv_path,omitempty"`    // Skip the file picker when set
	OutputDir string `json:"output_dir,omitempty"` // Where artifacts are written
	NoGUI     bool   `json:"no_gui,omitempty"`     // Use console prompts instead of dialogs
	Verbose   bool   `json:"verbose,omitempty"`    // Print detailed debug information
}

// Default returns the baseline configuration matching a single-GPU local
// deployment: one reasoning model for extraction, one code model for
// generation, loaded sequentially.
func Default() Config {
	return Config{
		BrainModel:            "deepseek-r1:7b",
		CoderModel:            "qwen2.5-coder:14b",
		AnalysisTemperature:   0.3,
		GenerationTemperature: 0.2,
		ContextWindow:         8192,
		MaxTokens:             4096,
		SettleSeconds:         2,
		ReasoningOpen:         "<think>",
		ReasoningClose:        "</think>",
		OutputDir:             "outputs",
	}
}

// Load loads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks structural constraints on the merged configuration.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("config error: field %s failed %q validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// One delimiter without the other can never match
	if (c.ReasoningOpen == "") != (c.ReasoningClose == "") {
		return fmt.Errorf("config error: reasoning_open and reasoning_close must be set together")
	}

	if c.CVPath != "" {
		if _, err := os.Stat(c.CVPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: cv file not found: %s", c.CVPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Bool fields are not merged; CLI flags always win for those.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	if result.BrainModel == "" {
		result.BrainModel = defaults.BrainModel
	}
	if result.CoderModel == "" {
		result.CoderModel = defaults.CoderModel
	}
	if result.AnalysisTemperature == 0 {
		result.AnalysisTemperature = defaults.AnalysisTemperature
	}
	if result.GenerationTemperature == 0 {
		result.GenerationTemperature = defaults.GenerationTemperature
	}
	if result.ContextWindow == 0 {
		result.ContextWindow = defaults.ContextWindow
	}
	if result.MaxTokens == 0 {
		result.MaxTokens = defaults.MaxTokens
	}
	if result.SettleSeconds == 0 {
		result.SettleSeconds = defaults.SettleSeconds
	}
	if result.ReasoningOpen == "" && result.ReasoningClose == "" {
		result.ReasoningOpen = defaults.ReasoningOpen
		result.ReasoningClose = defaults.ReasoningClose
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}

	return result
}

// SettleDelay returns the eviction settle interval as a duration.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleSeconds) * time.Second
}
