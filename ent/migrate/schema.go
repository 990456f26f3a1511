// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[4]},
			},
		},
	}
	// ConnectorsColumns holds the columns for the "connectors" table.
	ConnectorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "connector_name", Type: field.TypeString, Unique: true},
		{Name: "source_name", Type: field.TypeString},
		{Name: "connector_type", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "fetch_limit", Type: field.TypeInt, Default: 50},
		{Name: "poll_interval_minutes", Type: field.TypeInt, Default: 30},
		{Name: "replay_backoff_seconds", Type: field.TypeInt, Default: 300},
		{Name: "max_retry", Type: field.TypeInt, Default: 3},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "note", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConnectorsTable holds the schema information for the "connectors" table.
	ConnectorsTable = &schema.Table{
		Name:       "connectors",
		Columns:    ConnectorsColumns,
		PrimaryKey: []*schema.Column{ConnectorsColumns[0]},
	}
	// ConnectorCheckpointsColumns holds the columns for the "connector_checkpoints" table.
	ConnectorCheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "connector_name", Type: field.TypeString, Unique: true},
		{Name: "checkpoint_cursor", Type: field.TypeString, Nullable: true},
		{Name: "checkpoint_publish_time", Type: field.TypeTime, Nullable: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_success_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConnectorCheckpointsTable holds the schema information for the "connector_checkpoints" table.
	ConnectorCheckpointsTable = &schema.Table{
		Name:       "connector_checkpoints",
		Columns:    ConnectorCheckpointsColumns,
		PrimaryKey: []*schema.Column{ConnectorCheckpointsColumns[0]},
	}
	// ConnectorFailuresColumns holds the columns for the "connector_failures" table.
	ConnectorFailuresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "connector_name", Type: field.TypeString},
		{Name: "source_name", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "replayed", "dead"}, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConnectorFailuresTable holds the schema information for the "connector_failures" table.
	ConnectorFailuresTable = &schema.Table{
		Name:       "connector_failures",
		Columns:    ConnectorFailuresColumns,
		PrimaryKey: []*schema.Column{ConnectorFailuresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "connectorfailure_connector_name_status_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{ConnectorFailuresColumns[1], ConnectorFailuresColumns[4], ConnectorFailuresColumns[6]},
			},
			{
				Name:    "connectorfailure_status",
				Unique:  false,
				Columns: []*schema.Column{ConnectorFailuresColumns[4]},
			},
		},
	}
	// ConnectorRunsColumns holds the columns for the "connector_runs" table.
	ConnectorRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "connector_name", Type: field.TypeString},
		{Name: "source_name", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "success", "partial", "failed", "dry_run"}, Default: "running"},
		{Name: "triggered_by", Type: field.TypeString, Nullable: true},
		{Name: "pulled_count", Type: field.TypeInt, Default: 0},
		{Name: "normalized_count", Type: field.TypeInt, Default: 0},
		{Name: "inserted_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "replayed_count", Type: field.TypeInt, Default: 0},
		{Name: "checkpoint_before", Type: field.TypeString, Nullable: true},
		{Name: "checkpoint_after", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// ConnectorRunsTable holds the schema information for the "connector_runs" table.
	ConnectorRunsTable = &schema.Table{
		Name:       "connector_runs",
		Columns:    ConnectorRunsColumns,
		PrimaryKey: []*schema.Column{ConnectorRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "connectorrun_connector_name_started_at",
				Unique:  false,
				Columns: []*schema.Column{ConnectorRunsColumns[1], ConnectorRunsColumns[3]},
			},
			{
				Name:    "connectorrun_status",
				Unique:  false,
				Columns: []*schema.Column{ConnectorRunsColumns[5]},
			},
		},
	}
	// EventRecordsColumns holds the columns for the "event_records" table.
	EventRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_name", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "symbol", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString, Default: "generic_announcement"},
		{Name: "publish_time", Type: field.TypeTime},
		{Name: "effective_time", Type: field.TypeTime, Nullable: true},
		{Name: "polarity", Type: field.TypeEnum, Enums: []string{"positive", "negative", "neutral"}, Default: "neutral"},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "raw_ref", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EventRecordsTable holds the schema information for the "event_records" table.
	EventRecordsTable = &schema.Table{
		Name:       "event_records",
		Columns:    EventRecordsColumns,
		PrimaryKey: []*schema.Column{EventRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "eventrecord_source_name_event_id",
				Unique:  true,
				Columns: []*schema.Column{EventRecordsColumns[1], EventRecordsColumns[2]},
			},
			{
				Name:    "eventrecord_symbol_publish_time",
				Unique:  false,
				Columns: []*schema.Column{EventRecordsColumns[3], EventRecordsColumns[5]},
			},
			{
				Name:    "eventrecord_source_name_publish_time",
				Unique:  false,
				Columns: []*schema.Column{EventRecordsColumns[1], EventRecordsColumns[5]},
			},
			{
				Name:    "eventrecord_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventRecordsColumns[4]},
			},
		},
	}
	// EventSourcesColumns holds the columns for the "event_sources" table.
	EventSourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_name", Type: field.TypeString, Unique: true},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"manual", "announcement", "news", "model"}, Default: "announcement"},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "Asia/Shanghai"},
		{Name: "ingestion_lag_minutes", Type: field.TypeInt, Default: 0},
		{Name: "reliability_score", Type: field.TypeFloat64, Default: 0.8},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "note", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EventSourcesTable holds the schema information for the "event_sources" table.
	EventSourcesTable = &schema.Table{
		Name:       "event_sources",
		Columns:    EventSourcesColumns,
		PrimaryKey: []*schema.Column{EventSourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "eventsource_source_type",
				Unique:  false,
				Columns: []*schema.Column{EventSourcesColumns[2]},
			},
		},
	}
	// NlpConsensusColumns holds the columns for the "nlp_consensus" table.
	NlpConsensusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_name", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "consensus_event_type", Type: field.TypeString},
		{Name: "consensus_polarity", Type: field.TypeString},
		{Name: "consensus_score", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "label_count", Type: field.TypeInt, Default: 0},
		{Name: "conflict", Type: field.TypeBool, Default: false},
		{Name: "conflict_reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NlpConsensusTable holds the schema information for the "nlp_consensus" table.
	NlpConsensusTable = &schema.Table{
		Name:       "nlp_consensus",
		Columns:    NlpConsensusColumns,
		PrimaryKey: []*schema.Column{NlpConsensusColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "nlpconsensus_source_name_event_id",
				Unique:  true,
				Columns: []*schema.Column{NlpConsensusColumns[1], NlpConsensusColumns[2]},
			},
		},
	}
	// NlpDriftSnapshotsColumns holds the columns for the "nlp_drift_snapshots" table.
	NlpDriftSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_name", Type: field.TypeString, Nullable: true},
		{Name: "ruleset_version", Type: field.TypeString},
		{Name: "current_window", Type: field.TypeString},
		{Name: "baseline_window", Type: field.TypeString},
		{Name: "sample_size", Type: field.TypeInt, Default: 0},
		{Name: "baseline_sample_size", Type: field.TypeInt, Default: 0},
		{Name: "current_metrics", Type: field.TypeJSON},
		{Name: "baseline_metrics", Type: field.TypeJSON},
		{Name: "hit_rate_delta", Type: field.TypeFloat64, Default: 0},
		{Name: "score_p50_delta", Type: field.TypeFloat64, Default: 0},
		{Name: "contribution_delta", Type: field.TypeFloat64, Nullable: true},
		{Name: "feedback_polarity_accuracy_delta", Type: field.TypeFloat64, Nullable: true},
		{Name: "feedback_event_type_accuracy_delta", Type: field.TypeFloat64, Nullable: true},
		{Name: "alerts", Type: field.TypeJSON, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NlpDriftSnapshotsTable holds the schema information for the "nlp_drift_snapshots" table.
	NlpDriftSnapshotsTable = &schema.Table{
		Name:       "nlp_drift_snapshots",
		Columns:    NlpDriftSnapshotsColumns,
		PrimaryKey: []*schema.Column{NlpDriftSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "nlpdriftsnapshot_source_name_created_at",
				Unique:  false,
				Columns: []*schema.Column{NlpDriftSnapshotsColumns[1], NlpDriftSnapshotsColumns[16]},
			},
		},
	}
	// NlpFeedbackColumns holds the columns for the "nlp_feedback" table.
	NlpFeedbackColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_name", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "labeler", Type: field.TypeString, Nullable: true},
		{Name: "label_event_type", Type: field.TypeString, Nullable: true},
		{Name: "label_polarity", Type: field.TypeString, Nullable: true},
		{Name: "label_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NlpFeedbackTable holds the schema information for the "nlp_feedback" table.
	NlpFeedbackTable = &schema.Table{
		Name:       "nlp_feedback",
		Columns:    NlpFeedbackColumns,
		PrimaryKey: []*schema.Column{NlpFeedbackColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "nlpfeedback_source_name_event_id",
				Unique:  false,
				Columns: []*schema.Column{NlpFeedbackColumns[1], NlpFeedbackColumns[2]},
			},
			{
				Name:    "nlpfeedback_created_at",
				Unique:  false,
				Columns: []*schema.Column{NlpFeedbackColumns[8]},
			},
		},
	}
	// NlpRulesetsColumns holds the columns for the "nlp_rulesets" table.
	NlpRulesetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "version", Type: field.TypeString, Unique: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "note", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "rules", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NlpRulesetsTable holds the schema information for the "nlp_rulesets" table.
	NlpRulesetsTable = &schema.Table{
		Name:       "nlp_rulesets",
		Columns:    NlpRulesetsColumns,
		PrimaryKey: []*schema.Column{NlpRulesetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "nlpruleset_is_active",
				Unique:  false,
				Columns: []*schema.Column{NlpRulesetsColumns[4]},
			},
		},
	}
	// SLAAlertStatesColumns holds the columns for the "sla_alert_states" table.
	SLAAlertStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "dedupe_key", Type: field.TypeString, Unique: true},
		{Name: "connector_name", Type: field.TypeString},
		{Name: "source_name", Type: field.TypeString, Nullable: true},
		{Name: "breach_type", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"warning", "critical"}},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"warning", "critical", "escalated"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "last_emitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_recovered_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_escalated_at", Type: field.TypeTime, Nullable: true},
		{Name: "repeat_count", Type: field.TypeInt, Default: 1},
		{Name: "escalation_level", Type: field.TypeInt, Default: 0},
		{Name: "escalation_reason", Type: field.TypeString, Nullable: true},
		{Name: "is_open", Type: field.TypeBool, Default: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SLAAlertStatesTable holds the schema information for the "sla_alert_states" table.
	SLAAlertStatesTable = &schema.Table{
		Name:       "sla_alert_states",
		Columns:    SLAAlertStatesColumns,
		PrimaryKey: []*schema.Column{SLAAlertStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slaalertstate_is_open",
				Unique:  false,
				Columns: []*schema.Column{SLAAlertStatesColumns[16]},
			},
			{
				Name:    "slaalertstate_connector_name",
				Unique:  false,
				Columns: []*schema.Column{SLAAlertStatesColumns[2]},
			},
		},
	}
	// SLAHistoryColumns holds the columns for the "sla_history" table.
	SLAHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "observed_at", Type: field.TypeTime},
		{Name: "connector_name", Type: field.TypeString},
		{Name: "source_name", Type: field.TypeString, Nullable: true},
		{Name: "breach_type", Type: field.TypeString},
		{Name: "severity", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "freshness_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "pending_failures", Type: field.TypeInt, Default: 0},
		{Name: "dead_failures", Type: field.TypeInt, Default: 0},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// SLAHistoryTable holds the schema information for the "sla_history" table.
	SLAHistoryTable = &schema.Table{
		Name:       "sla_history",
		Columns:    SLAHistoryColumns,
		PrimaryKey: []*schema.Column{SLAHistoryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slahistory_connector_name_observed_at",
				Unique:  false,
				Columns: []*schema.Column{SLAHistoryColumns[2], SLAHistoryColumns[1]},
			},
		},
	}
	// SourceBudgetsColumns holds the columns for the "source_budgets" table.
	SourceBudgetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "connector_name", Type: field.TypeString},
		{Name: "source_key", Type: field.TypeString},
		{Name: "window_hour", Type: field.TypeString},
		{Name: "request_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SourceBudgetsTable holds the schema information for the "source_budgets" table.
	SourceBudgetsTable = &schema.Table{
		Name:       "source_budgets",
		Columns:    SourceBudgetsColumns,
		PrimaryKey: []*schema.Column{SourceBudgetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sourcebudget_connector_name_source_key_window_hour",
				Unique:  true,
				Columns: []*schema.Column{SourceBudgetsColumns[1], SourceBudgetsColumns[2], SourceBudgetsColumns[3]},
			},
		},
	}
	// SourceCredentialCursorsColumns holds the columns for the "source_credential_cursors" table.
	SourceCredentialCursorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "connector_name", Type: field.TypeString},
		{Name: "source_key", Type: field.TypeString},
		{Name: "next_index", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SourceCredentialCursorsTable holds the schema information for the "source_credential_cursors" table.
	SourceCredentialCursorsTable = &schema.Table{
		Name:       "source_credential_cursors",
		Columns:    SourceCredentialCursorsColumns,
		PrimaryKey: []*schema.Column{SourceCredentialCursorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sourcecredentialcursor_connector_name_source_key",
				Unique:  true,
				Columns: []*schema.Column{SourceCredentialCursorsColumns[1], SourceCredentialCursorsColumns[2]},
			},
		},
	}
	// SourceStatesColumns holds the columns for the "source_states" table.
	SourceStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "connector_name", Type: field.TypeString},
		{Name: "source_key", Type: field.TypeString},
		{Name: "connector_type", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 100},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "health_score", Type: field.TypeFloat64, Default: 80},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "total_success", Type: field.TypeInt, Default: 0},
		{Name: "total_failures", Type: field.TypeInt, Default: 0},
		{Name: "last_latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "last_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_success_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_failure_at", Type: field.TypeTime, Nullable: true},
		{Name: "checkpoint_cursor", Type: field.TypeString, Nullable: true},
		{Name: "checkpoint_publish_time", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SourceStatesTable holds the schema information for the "source_states" table.
	SourceStatesTable = &schema.Table{
		Name:       "source_states",
		Columns:    SourceStatesColumns,
		PrimaryKey: []*schema.Column{SourceStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sourcestate_connector_name_source_key",
				Unique:  true,
				Columns: []*schema.Column{SourceStatesColumns[1], SourceStatesColumns[2]},
			},
			{
				Name:    "sourcestate_connector_name_is_active",
				Unique:  false,
				Columns: []*schema.Column{SourceStatesColumns[1], SourceStatesColumns[17]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		ConnectorsTable,
		ConnectorCheckpointsTable,
		ConnectorFailuresTable,
		ConnectorRunsTable,
		EventRecordsTable,
		EventSourcesTable,
		NlpConsensusTable,
		NlpDriftSnapshotsTable,
		NlpFeedbackTable,
		NlpRulesetsTable,
		SLAAlertStatesTable,
		SLAHistoryTable,
		SourceBudgetsTable,
		SourceCredentialCursorsTable,
		SourceStatesTable,
	}
)

func init() {
	AuditLogsTable.Annotation = &entsql.Annotation{
		Table: "audit_logs",
	}
	ConnectorsTable.Annotation = &entsql.Annotation{
		Table: "connectors",
	}
	ConnectorCheckpointsTable.Annotation = &entsql.Annotation{
		Table: "connector_checkpoints",
	}
	ConnectorFailuresTable.Annotation = &entsql.Annotation{
		Table: "connector_failures",
	}
	ConnectorRunsTable.Annotation = &entsql.Annotation{
		Table: "connector_runs",
	}
	EventRecordsTable.Annotation = &entsql.Annotation{
		Table: "event_records",
	}
	EventSourcesTable.Annotation = &entsql.Annotation{
		Table: "event_sources",
	}
	NlpConsensusTable.Annotation = &entsql.Annotation{
		Table: "nlp_consensus",
	}
	NlpDriftSnapshotsTable.Annotation = &entsql.Annotation{
		Table: "nlp_drift_snapshots",
	}
	NlpFeedbackTable.Annotation = &entsql.Annotation{
		Table: "nlp_feedback",
	}
	NlpRulesetsTable.Annotation = &entsql.Annotation{
		Table: "nlp_rulesets",
	}
	SLAAlertStatesTable.Annotation = &entsql.Annotation{
		Table: "sla_alert_states",
	}
	SLAHistoryTable.Annotation = &entsql.Annotation{
		Table: "sla_history",
	}
	SourceBudgetsTable.Annotation = &entsql.Annotation{
		Table: "source_budgets",
	}
	SourceCredentialCursorsTable.Annotation = &entsql.Annotation{
		Table: "source_credential_cursors",
	}
	SourceStatesTable.Annotation = &entsql.Annotation{
		Table: "source_states",
	}
}
