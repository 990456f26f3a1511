// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Connector is the predicate function for connector builders.
type Connector func(*sql.Selector)

// ConnectorCheckpoint is the predicate function for connectorcheckpoint builders.
type ConnectorCheckpoint func(*sql.Selector)

// ConnectorFailure is the predicate function for connectorfailure builders.
type ConnectorFailure func(*sql.Selector)

// ConnectorRun is the predicate function for connectorrun builders.
type ConnectorRun func(*sql.Selector)

// EventRecord is the predicate function for eventrecord builders.
type EventRecord func(*sql.Selector)

// EventSource is the predicate function for eventsource builders.
type EventSource func(*sql.Selector)

// NLPConsensus is the predicate function for nlpconsensus builders.
type NLPConsensus func(*sql.Selector)

// NLPDriftSnapshot is the predicate function for nlpdriftsnapshot builders.
type NLPDriftSnapshot func(*sql.Selector)

// NLPFeedback is the predicate function for nlpfeedback builders.
type NLPFeedback func(*sql.Selector)

// NLPRuleset is the predicate function for nlpruleset builders.
type NLPRuleset func(*sql.Selector)

// SLAAlertState is the predicate function for slaalertstate builders.
type SLAAlertState func(*sql.Selector)

// SLAHistory is the predicate function for slahistory builders.
type SLAHistory func(*sql.Selector)

// SourceBudget is the predicate function for sourcebudget builders.
type SourceBudget func(*sql.Selector)

// SourceCredentialCursor is the predicate function for sourcecredentialcursor builders.
type SourceCredentialCursor func(*sql.Selector)

// SourceState is the predicate function for sourcestate builders.
type SourceState func(*sql.Selector)
