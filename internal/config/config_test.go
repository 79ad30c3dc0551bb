package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "deepseek-r1:7b", cfg.BrainModel)
	assert.Equal(t, "qwen2.5-coder:14b", cfg.CoderModel)
	assert.Equal(t, 0.3, cfg.AnalysisTemperature)
	assert.Equal(t, 0.2, cfg.GenerationTemperature)
	assert.Equal(t, 8192, cfg.ContextWindow)
	assert.Equal(t, 4096, cfg.MaxTokens)
	assert.Equal(t, "outputs", cfg.OutputDir)
	assert.Equal(t, 2*time.Second, cfg.SettleDelay())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"brain_model": "llama3:8b", "analysis_temperature": 0.5, "no_gui": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "llama3:8b", cfg.BrainModel)
	assert.Equal(t, 0.5, cfg.AnalysisTemperature)
	assert.True(t, cfg.NoGUI)
	assert.Empty(t, cfg.CoderModel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults are valid", func(c *Config) {}, false},
		{"Missing brain model", func(c *Config) { c.BrainModel = "" }, true},
		{"Missing coder model", func(c *Config) { c.CoderModel = "" }, true},
		{"Temperature too high", func(c *Config) { c.AnalysisTemperature = 3.0 }, true},
		{"Negative settle", func(c *Config) { c.SettleSeconds = -1 }, true},
		{"Lone open delimiter", func(c *Config) { c.ReasoningClose = "" }, true},
		{"Both delimiters empty", func(c *Config) { c.ReasoningOpen = ""; c.ReasoningClose = "" }, false},
		{"Missing cv file", func(c *Config) { c.CVPath = "/no/such/file.pdf" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{BrainModel: "custom:7b", Verbose: true}
	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, "custom:7b", merged.BrainModel)
	assert.Equal(t, "qwen2.5-coder:14b", merged.CoderModel)
	assert.Equal(t, 0.3, merged.AnalysisTemperature)
	assert.Equal(t, "<think>", merged.ReasoningOpen)
	assert.Equal(t, "outputs", merged.OutputDir)
	assert.True(t, merged.Verbose)
}

func TestMergeKeepsCustomDelimiters(t *testing.T) {
	cfg := Config{ReasoningOpen: "[r]", ReasoningClose: "[/r]"}
	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, "[r]", merged.ReasoningOpen)
	assert.Equal(t, "[/r]", merged.ReasoningClose)
}
