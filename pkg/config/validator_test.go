package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		HTTPPort:  8080,
		Retention: DefaultRetentionConfig(),
		SLA:       DefaultSLASyncConfig(),
		Sources: []SourceSeed{
			{SourceName: "cninfo", SourceType: "announcement", ReliabilityScore: 0.9},
		},
		Connectors: []ConnectorSeed{
			{ConnectorName: "cninfo_daily", SourceName: "cninfo", ConnectorType: "http_json"},
		},
	}
}

func TestValidator_Valid(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidator_BadPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTPPort = 0
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidator_DuplicateSource(t *testing.T) {
	cfg := validConfig()
	cfg.Sources = append(cfg.Sources, cfg.Sources[0])
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate source_name")
}

func TestValidator_MissingConnectorFields(t *testing.T) {
	cfg := validConfig()
	cfg.Connectors[0].SourceName = ""
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestValidator_ReliabilityBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Sources[0].ReliabilityScore = 1.2
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidator_SLARepeatCounts(t *testing.T) {
	cfg := validConfig()
	cfg.SLA.CriticalRepeatEscalate = 0
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}
