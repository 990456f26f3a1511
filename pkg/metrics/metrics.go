// Package metrics registers the Prometheus instruments exported on the
// ops endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConnectorRuns counts finished runs by terminal status.
	ConnectorRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventcore_connector_runs_total",
		Help: "Finished connector runs by terminal status.",
	}, []string{"connector", "status"})

	// EventsIngested counts upserted event rows.
	EventsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventcore_events_ingested_total",
		Help: "Event rows written by ingest, split by insert vs update.",
	}, []string{"source", "outcome"})

	// ConnectorFailures counts dead-letter rows by phase.
	ConnectorFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventcore_connector_failures_total",
		Help: "Failure rows recorded by connector and phase.",
	}, []string{"connector", "phase"})

	// ReplayOutcomes counts replay terminal outcomes.
	ReplayOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventcore_replay_outcomes_total",
		Help: "Replay outcomes by connector (replayed, failed, dead, skipped).",
	}, []string{"connector", "outcome"})

	// SLABreaches counts breaches observed by the SLA monitor.
	SLABreaches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventcore_sla_breaches_total",
		Help: "SLA breaches by connector, axis and severity.",
	}, []string{"connector", "breach_type", "severity"})

	// DriftAlerts counts alerts produced by drift checks.
	DriftAlerts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventcore_nlp_drift_alerts_total",
		Help: "NLP drift alerts by severity.",
	}, []string{"severity"})
)
