// Code generated by ent, DO NOT EDIT.

package connector

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldID, id))
}

// ConnectorName applies equality check predicate on the "connector_name" field. It's identical to ConnectorNameEQ.
func ConnectorName(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldConnectorName, v))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldSourceName, v))
}

// ConnectorType applies equality check predicate on the "connector_type" field. It's identical to ConnectorTypeEQ.
func ConnectorType(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldConnectorType, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldEnabled, v))
}

// FetchLimit applies equality check predicate on the "fetch_limit" field. It's identical to FetchLimitEQ.
func FetchLimit(v int) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldFetchLimit, v))
}

// PollIntervalMinutes applies equality check predicate on the "poll_interval_minutes" field. It's identical to PollIntervalMinutesEQ.
func PollIntervalMinutes(v int) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldPollIntervalMinutes, v))
}

// ReplayBackoffSeconds applies equality check predicate on the "replay_backoff_seconds" field. It's identical to ReplayBackoffSecondsEQ.
func ReplayBackoffSeconds(v int) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldReplayBackoffSeconds, v))
}

// MaxRetry applies equality check predicate on the "max_retry" field. It's identical to MaxRetryEQ.
func MaxRetry(v int) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldMaxRetry, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldCreatedBy, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConnectorNameEQ applies the EQ predicate on the "connector_name" field.
func ConnectorNameEQ(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldConnectorName, v))
}

// ConnectorNameNEQ applies the NEQ predicate on the "connector_name" field.
func ConnectorNameNEQ(v string) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldConnectorName, v))
}

// ConnectorNameIn applies the In predicate on the "connector_name" field.
func ConnectorNameIn(vs ...string) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldConnectorName, vs...))
}

// ConnectorNameNotIn applies the NotIn predicate on the "connector_name" field.
func ConnectorNameNotIn(vs ...string) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldConnectorName, vs...))
}

// ConnectorNameGT applies the GT predicate on the "connector_name" field.
func ConnectorNameGT(v string) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldConnectorName, v))
}

// ConnectorNameGTE applies the GTE predicate on the "connector_name" field.
func ConnectorNameGTE(v string) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldConnectorName, v))
}

// ConnectorNameLT applies the LT predicate on the "connector_name" field.
func ConnectorNameLT(v string) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldConnectorName, v))
}

// ConnectorNameLTE applies the LTE predicate on the "connector_name" field.
func ConnectorNameLTE(v string) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldConnectorName, v))
}

// ConnectorNameContains applies the Contains predicate on the "connector_name" field.
func ConnectorNameContains(v string) predicate.Connector {
	return predicate.Connector(sql.FieldContains(FieldConnectorName, v))
}

// ConnectorNameHasPrefix applies the HasPrefix predicate on the "connector_name" field.
func ConnectorNameHasPrefix(v string) predicate.Connector {
	return predicate.Connector(sql.FieldHasPrefix(FieldConnectorName, v))
}

// ConnectorNameHasSuffix applies the HasSuffix predicate on the "connector_name" field.
func ConnectorNameHasSuffix(v string) predicate.Connector {
	return predicate.Connector(sql.FieldHasSuffix(FieldConnectorName, v))
}

// ConnectorNameEqualFold applies the EqualFold predicate on the "connector_name" field.
func ConnectorNameEqualFold(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEqualFold(FieldConnectorName, v))
}

// ConnectorNameContainsFold applies the ContainsFold predicate on the "connector_name" field.
func ConnectorNameContainsFold(v string) predicate.Connector {
	return predicate.Connector(sql.FieldContainsFold(FieldConnectorName, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.Connector {
	return predicate.Connector(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.Connector {
	return predicate.Connector(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.Connector {
	return predicate.Connector(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.Connector {
	return predicate.Connector(sql.FieldContainsFold(FieldSourceName, v))
}

// ConnectorTypeEQ applies the EQ predicate on the "connector_type" field.
func ConnectorTypeEQ(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldConnectorType, v))
}

// ConnectorTypeNEQ applies the NEQ predicate on the "connector_type" field.
func ConnectorTypeNEQ(v string) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldConnectorType, v))
}

// ConnectorTypeIn applies the In predicate on the "connector_type" field.
func ConnectorTypeIn(vs ...string) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldConnectorType, vs...))
}

// ConnectorTypeNotIn applies the NotIn predicate on the "connector_type" field.
func ConnectorTypeNotIn(vs ...string) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldConnectorType, vs...))
}

// ConnectorTypeGT applies the GT predicate on the "connector_type" field.
func ConnectorTypeGT(v string) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldConnectorType, v))
}

// ConnectorTypeGTE applies the GTE predicate on the "connector_type" field.
func ConnectorTypeGTE(v string) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldConnectorType, v))
}

// ConnectorTypeLT applies the LT predicate on the "connector_type" field.
func ConnectorTypeLT(v string) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldConnectorType, v))
}

// ConnectorTypeLTE applies the LTE predicate on the "connector_type" field.
func ConnectorTypeLTE(v string) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldConnectorType, v))
}

// ConnectorTypeContains applies the Contains predicate on the "connector_type" field.
func ConnectorTypeContains(v string) predicate.Connector {
	return predicate.Connector(sql.FieldContains(FieldConnectorType, v))
}

// ConnectorTypeHasPrefix applies the HasPrefix predicate on the "connector_type" field.
func ConnectorTypeHasPrefix(v string) predicate.Connector {
	return predicate.Connector(sql.FieldHasPrefix(FieldConnectorType, v))
}

// ConnectorTypeHasSuffix applies the HasSuffix predicate on the "connector_type" field.
func ConnectorTypeHasSuffix(v string) predicate.Connector {
	return predicate.Connector(sql.FieldHasSuffix(FieldConnectorType, v))
}

// ConnectorTypeEqualFold applies the EqualFold predicate on the "connector_type" field.
func ConnectorTypeEqualFold(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEqualFold(FieldConnectorType, v))
}

// ConnectorTypeContainsFold applies the ContainsFold predicate on the "connector_type" field.
func ConnectorTypeContainsFold(v string) predicate.Connector {
	return predicate.Connector(sql.FieldContainsFold(FieldConnectorType, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldEnabled, v))
}

// FetchLimitEQ applies the EQ predicate on the "fetch_limit" field.
func FetchLimitEQ(v int) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldFetchLimit, v))
}

// FetchLimitNEQ applies the NEQ predicate on the "fetch_limit" field.
func FetchLimitNEQ(v int) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldFetchLimit, v))
}

// FetchLimitIn applies the In predicate on the "fetch_limit" field.
func FetchLimitIn(vs ...int) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldFetchLimit, vs...))
}

// FetchLimitNotIn applies the NotIn predicate on the "fetch_limit" field.
func FetchLimitNotIn(vs ...int) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldFetchLimit, vs...))
}

// FetchLimitGT applies the GT predicate on the "fetch_limit" field.
func FetchLimitGT(v int) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldFetchLimit, v))
}

// FetchLimitGTE applies the GTE predicate on the "fetch_limit" field.
func FetchLimitGTE(v int) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldFetchLimit, v))
}

// FetchLimitLT applies the LT predicate on the "fetch_limit" field.
func FetchLimitLT(v int) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldFetchLimit, v))
}

// FetchLimitLTE applies the LTE predicate on the "fetch_limit" field.
func FetchLimitLTE(v int) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldFetchLimit, v))
}

// PollIntervalMinutesEQ applies the EQ predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesEQ(v int) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldPollIntervalMinutes, v))
}

// PollIntervalMinutesNEQ applies the NEQ predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesNEQ(v int) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldPollIntervalMinutes, v))
}

// PollIntervalMinutesIn applies the In predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesIn(vs ...int) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldPollIntervalMinutes, vs...))
}

// PollIntervalMinutesNotIn applies the NotIn predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesNotIn(vs ...int) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldPollIntervalMinutes, vs...))
}

// PollIntervalMinutesGT applies the GT predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesGT(v int) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldPollIntervalMinutes, v))
}

// PollIntervalMinutesGTE applies the GTE predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesGTE(v int) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldPollIntervalMinutes, v))
}

// PollIntervalMinutesLT applies the LT predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesLT(v int) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldPollIntervalMinutes, v))
}

// PollIntervalMinutesLTE applies the LTE predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesLTE(v int) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldPollIntervalMinutes, v))
}

// ReplayBackoffSecondsEQ applies the EQ predicate on the "replay_backoff_seconds" field.
func ReplayBackoffSecondsEQ(v int) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldReplayBackoffSeconds, v))
}

// ReplayBackoffSecondsNEQ applies the NEQ predicate on the "replay_backoff_seconds" field.
func ReplayBackoffSecondsNEQ(v int) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldReplayBackoffSeconds, v))
}

// ReplayBackoffSecondsIn applies the In predicate on the "replay_backoff_seconds" field.
func ReplayBackoffSecondsIn(vs ...int) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldReplayBackoffSeconds, vs...))
}

// ReplayBackoffSecondsNotIn applies the NotIn predicate on the "replay_backoff_seconds" field.
func ReplayBackoffSecondsNotIn(vs ...int) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldReplayBackoffSeconds, vs...))
}

// ReplayBackoffSecondsGT applies the GT predicate on the "replay_backoff_seconds" field.
func ReplayBackoffSecondsGT(v int) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldReplayBackoffSeconds, v))
}

// ReplayBackoffSecondsGTE applies the GTE predicate on the "replay_backoff_seconds" field.
func ReplayBackoffSecondsGTE(v int) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldReplayBackoffSeconds, v))
}

// ReplayBackoffSecondsLT applies the LT predicate on the "replay_backoff_seconds" field.
func ReplayBackoffSecondsLT(v int) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldReplayBackoffSeconds, v))
}

// ReplayBackoffSecondsLTE applies the LTE predicate on the "replay_backoff_seconds" field.
func ReplayBackoffSecondsLTE(v int) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldReplayBackoffSeconds, v))
}

// MaxRetryEQ applies the EQ predicate on the "max_retry" field.
func MaxRetryEQ(v int) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldMaxRetry, v))
}

// MaxRetryNEQ applies the NEQ predicate on the "max_retry" field.
func MaxRetryNEQ(v int) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldMaxRetry, v))
}

// MaxRetryIn applies the In predicate on the "max_retry" field.
func MaxRetryIn(vs ...int) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldMaxRetry, vs...))
}

// MaxRetryNotIn applies the NotIn predicate on the "max_retry" field.
func MaxRetryNotIn(vs ...int) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldMaxRetry, vs...))
}

// MaxRetryGT applies the GT predicate on the "max_retry" field.
func MaxRetryGT(v int) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldMaxRetry, v))
}

// MaxRetryGTE applies the GTE predicate on the "max_retry" field.
func MaxRetryGTE(v int) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldMaxRetry, v))
}

// MaxRetryLT applies the LT predicate on the "max_retry" field.
func MaxRetryLT(v int) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldMaxRetry, v))
}

// MaxRetryLTE applies the LTE predicate on the "max_retry" field.
func MaxRetryLTE(v int) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldMaxRetry, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.Connector {
	return predicate.Connector(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.Connector {
	return predicate.Connector(sql.FieldNotNull(FieldConfig))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Connector {
	return predicate.Connector(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Connector {
	return predicate.Connector(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Connector {
	return predicate.Connector(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Connector {
	return predicate.Connector(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Connector {
	return predicate.Connector(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Connector {
	return predicate.Connector(sql.FieldContainsFold(FieldCreatedBy, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.Connector {
	return predicate.Connector(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.Connector {
	return predicate.Connector(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.Connector {
	return predicate.Connector(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.Connector {
	return predicate.Connector(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.Connector {
	return predicate.Connector(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.Connector {
	return predicate.Connector(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.Connector {
	return predicate.Connector(sql.FieldContainsFold(FieldNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Connector {
	return predicate.Connector(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Connector) predicate.Connector {
	return predicate.Connector(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Connector) predicate.Connector {
	return predicate.Connector(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Connector) predicate.Connector {
	return predicate.Connector(sql.NotPredicates(p))
}
