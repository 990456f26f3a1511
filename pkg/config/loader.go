package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// EventcoreYAMLConfig represents the complete eventcore.yaml file structure.
type EventcoreYAMLConfig struct {
	System     *SystemYAMLConfig `yaml:"system"`
	SLA        *SLASyncConfig    `yaml:"sla"`
	Sources    []SourceSeed      `yaml:"sources"`
	Connectors []ConnectorSeed   `yaml:"connectors"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load eventcore.yaml from configDir
//  2. Expand environment variables ({{.VAR}} syntax)
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"sources", stats.Sources,
		"connectors", stats.Connectors,
		"http_port", cfg.HTTPPort)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	var yamlCfg EventcoreYAMLConfig
	if err := loadYAML(configDir, "eventcore.yaml", &yamlCfg); err != nil {
		return nil, NewLoadError("eventcore.yaml", err)
	}

	retention := DefaultRetentionConfig()
	if yamlCfg.System != nil && yamlCfg.System.Retention != nil {
		// Non-zero user values override defaults, unset values keep them.
		if err := mergo.Merge(retention, yamlCfg.System.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	slaCfg := DefaultSLASyncConfig()
	if yamlCfg.SLA != nil {
		if err := mergo.Merge(slaCfg, yamlCfg.SLA, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge sla config: %w", err)
		}
	}

	cfg := &Config{
		configDir:  configDir,
		HTTPPort:   8080,
		Retention:  retention,
		SLA:        slaCfg,
		Sources:    yamlCfg.Sources,
		Connectors: yamlCfg.Connectors,
	}
	if yamlCfg.System != nil {
		if yamlCfg.System.HTTPPort > 0 {
			cfg.HTTPPort = yamlCfg.System.HTTPPort
		}
		cfg.BacktestAddr = yamlCfg.System.BacktestAddr
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

func loadYAML(configDir, filename string, target any) error {
	path := filepath.Join(configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}
