package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProviderSettings overrides per-provider tuning without touching the
// environment. Loaded from the optional PROVIDERS_CONFIG_FILE YAML file.
type ProviderSettings struct {
	Deepgram struct {
		BaseURL    string `yaml:"base_url"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"deepgram"`
}

// LoadProviderSettings parses the YAML settings file at path. An empty path
// yields zero-value settings.
func LoadProviderSettings(path string) (*ProviderSettings, error) {
	var settings ProviderSettings
	if path == "" {
		return &settings, nil
	}

	data, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read provider settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse provider settings: %w", err)
	}

	return &settings, nil
}
