// Package config loads and validates the eventcore.yaml configuration:
// system settings, SLA sync tuning, retention, and the declarative
// source/connector seeds registered at startup.
package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	// HTTPPort is the ops HTTP server port.
	HTTPPort int

	// BacktestAddr is the gRPC address of the backtest comparator.
	// Empty disables contribution drift checks.
	BacktestAddr string

	// Retention controls background pruning.
	Retention *RetentionConfig

	// SLA tunes alert emission and escalation.
	SLA *SLASyncConfig

	// Sources and Connectors are registered (upserted) at startup.
	Sources    []SourceSeed
	Connectors []ConnectorSeed
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Sources    int
	Connectors int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	return Stats{
		Sources:    len(c.Sources),
		Connectors: len(c.Connectors),
	}
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
