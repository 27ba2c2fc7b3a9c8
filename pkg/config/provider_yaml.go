package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{filename: filename}
}

// LoadConfig loads the complete configuration from a YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	var config ConfigData
	if err := yaml.Unmarshal(cfgFile, &config); err != nil {
		return nil, fmt.Errorf("parse YAML config: %w", err)
	}

	if config.Data.LASDir == "" {
		return nil, fmt.Errorf("config %s: data.las_dir is required", y.filename)
	}

	return &config, nil
}

// IsReadOnly returns true; YAML configs are not written back
func (y *YAMLProvider) IsReadOnly() bool { return true }

// Close is a no-op for YAML providers
func (y *YAMLProvider) Close() error { return nil }
