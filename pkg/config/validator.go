package config

import (
	"fmt"
	"log/slog"

	"github.com/quantmuse/eventcore/pkg/adapters"
)

// Validator performs validation on loaded configuration.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates the complete configuration.
func (v *Validator) ValidateAll() error {
	if err := v.validateSystem(); err != nil {
		return err
	}
	if err := v.validateSLA(); err != nil {
		return err
	}
	if err := v.validateSources(); err != nil {
		return err
	}
	return v.validateConnectors()
}

func (v *Validator) validateSystem() error {
	if v.cfg.HTTPPort <= 0 || v.cfg.HTTPPort > 65535 {
		return NewValidationError("system", "http_port", "",
			fmt.Errorf("%w: %d", ErrInvalidValue, v.cfg.HTTPPort))
	}
	r := v.cfg.Retention
	for field, d := range map[string]int64{
		"run_age":           int64(r.RunAge),
		"terminal_failures": int64(r.TerminalFailures),
		"sla_history":       int64(r.SLAHistory),
		"drift_snapshots":   int64(r.DriftSnapshots),
		"audit_logs":        int64(r.AuditLogs),
		"prune_interval":    int64(r.PruneInterval),
	} {
		if d < 0 {
			return NewValidationError("system", "retention", field,
				fmt.Errorf("%w: negative duration", ErrInvalidValue))
		}
	}
	return nil
}

func (v *Validator) validateSLA() error {
	s := v.cfg.SLA
	if s.CooldownSeconds < 0 {
		return NewValidationError("sla", "sync", "cooldown_seconds",
			fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if s.WarningRepeatEscalate < 1 || s.CriticalRepeatEscalate < 1 {
		return NewValidationError("sla", "sync", "repeat_escalate",
			fmt.Errorf("%w: escalation repeat counts must be >= 1", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateSources() error {
	seen := make(map[string]bool, len(v.cfg.Sources))
	for _, src := range v.cfg.Sources {
		if src.SourceName == "" {
			return NewValidationError("source", "(unnamed)", "source_name", ErrMissingRequiredField)
		}
		if src.SourceType == "" {
			return NewValidationError("source", src.SourceName, "source_type", ErrMissingRequiredField)
		}
		if src.ReliabilityScore < 0 || src.ReliabilityScore > 1 {
			return NewValidationError("source", src.SourceName, "reliability_score",
				fmt.Errorf("%w: must be within [0,1]", ErrInvalidValue))
		}
		if seen[src.SourceName] {
			return NewValidationError("source", src.SourceName, "",
				fmt.Errorf("%w: duplicate source_name", ErrInvalidValue))
		}
		seen[src.SourceName] = true
	}
	return nil
}

func (v *Validator) validateConnectors() error {
	seededSources := make(map[string]bool, len(v.cfg.Sources))
	for _, src := range v.cfg.Sources {
		seededSources[src.SourceName] = true
	}

	seen := make(map[string]bool, len(v.cfg.Connectors))
	for _, conn := range v.cfg.Connectors {
		if conn.ConnectorName == "" {
			return NewValidationError("connector", "(unnamed)", "connector_name", ErrMissingRequiredField)
		}
		if conn.SourceName == "" {
			return NewValidationError("connector", conn.ConnectorName, "source_name", ErrMissingRequiredField)
		}
		if err := validateConnectorType(conn.ConnectorName, conn.ConnectorType); err != nil {
			return err
		}
		if conn.FetchLimit < 0 || conn.MaxRetry < 0 || conn.ReplayBackoffSeconds < 0 {
			return NewValidationError("connector", conn.ConnectorName, "",
				fmt.Errorf("%w: negative limits are not allowed", ErrInvalidValue))
		}
		if seen[conn.ConnectorName] {
			return NewValidationError("connector", conn.ConnectorName, "",
				fmt.Errorf("%w: duplicate connector_name", ErrInvalidValue))
		}
		seen[conn.ConnectorName] = true

		// A connector may reference a source registered outside this file;
		// registration fails at startup if it does not exist by then.
		if len(v.cfg.Sources) > 0 && !seededSources[conn.SourceName] {
			slog.Warn("Connector references a source not seeded in this file",
				"connector", conn.ConnectorName,
				"source", conn.SourceName)
		}
	}
	return nil
}

func validateConnectorType(connectorName, connectorType string) error {
	if connectorType == "" {
		return NewValidationError("connector", connectorName, "connector_type", ErrMissingRequiredField)
	}
	switch connectorType {
	case adapters.TypeFile, adapters.TypeHTTPJSON, adapters.TypeTushare, adapters.TypeAkshare:
		return nil
	}
	return NewValidationError("connector", connectorName, "connector_type",
		fmt.Errorf("%w: unknown type %q", ErrInvalidValue, connectorType))
}
