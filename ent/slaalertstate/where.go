// Code generated by ent, DO NOT EDIT.

package slaalertstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldID, id))
}

// DedupeKey applies equality check predicate on the "dedupe_key" field. It's identical to DedupeKeyEQ.
func DedupeKey(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldDedupeKey, v))
}

// ConnectorName applies equality check predicate on the "connector_name" field. It's identical to ConnectorNameEQ.
func ConnectorName(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldConnectorName, v))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldSourceName, v))
}

// BreachType applies equality check predicate on the "breach_type" field. It's identical to BreachTypeEQ.
func BreachType(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldBreachType, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldMessage, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastEmittedAt applies equality check predicate on the "last_emitted_at" field. It's identical to LastEmittedAtEQ.
func LastEmittedAt(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldLastEmittedAt, v))
}

// LastRecoveredAt applies equality check predicate on the "last_recovered_at" field. It's identical to LastRecoveredAtEQ.
func LastRecoveredAt(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldLastRecoveredAt, v))
}

// LastEscalatedAt applies equality check predicate on the "last_escalated_at" field. It's identical to LastEscalatedAtEQ.
func LastEscalatedAt(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldLastEscalatedAt, v))
}

// RepeatCount applies equality check predicate on the "repeat_count" field. It's identical to RepeatCountEQ.
func RepeatCount(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldRepeatCount, v))
}

// EscalationLevel applies equality check predicate on the "escalation_level" field. It's identical to EscalationLevelEQ.
func EscalationLevel(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldEscalationLevel, v))
}

// EscalationReason applies equality check predicate on the "escalation_reason" field. It's identical to EscalationReasonEQ.
func EscalationReason(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldEscalationReason, v))
}

// IsOpen applies equality check predicate on the "is_open" field. It's identical to IsOpenEQ.
func IsOpen(v bool) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldIsOpen, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldUpdatedAt, v))
}

// DedupeKeyEQ applies the EQ predicate on the "dedupe_key" field.
func DedupeKeyEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldDedupeKey, v))
}

// DedupeKeyNEQ applies the NEQ predicate on the "dedupe_key" field.
func DedupeKeyNEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldDedupeKey, v))
}

// DedupeKeyIn applies the In predicate on the "dedupe_key" field.
func DedupeKeyIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldDedupeKey, vs...))
}

// DedupeKeyNotIn applies the NotIn predicate on the "dedupe_key" field.
func DedupeKeyNotIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldDedupeKey, vs...))
}

// DedupeKeyGT applies the GT predicate on the "dedupe_key" field.
func DedupeKeyGT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldDedupeKey, v))
}

// DedupeKeyGTE applies the GTE predicate on the "dedupe_key" field.
func DedupeKeyGTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldDedupeKey, v))
}

// DedupeKeyLT applies the LT predicate on the "dedupe_key" field.
func DedupeKeyLT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldDedupeKey, v))
}

// DedupeKeyLTE applies the LTE predicate on the "dedupe_key" field.
func DedupeKeyLTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldDedupeKey, v))
}

// DedupeKeyContains applies the Contains predicate on the "dedupe_key" field.
func DedupeKeyContains(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContains(FieldDedupeKey, v))
}

// DedupeKeyHasPrefix applies the HasPrefix predicate on the "dedupe_key" field.
func DedupeKeyHasPrefix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasPrefix(FieldDedupeKey, v))
}

// DedupeKeyHasSuffix applies the HasSuffix predicate on the "dedupe_key" field.
func DedupeKeyHasSuffix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasSuffix(FieldDedupeKey, v))
}

// DedupeKeyEqualFold applies the EqualFold predicate on the "dedupe_key" field.
func DedupeKeyEqualFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEqualFold(FieldDedupeKey, v))
}

// DedupeKeyContainsFold applies the ContainsFold predicate on the "dedupe_key" field.
func DedupeKeyContainsFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContainsFold(FieldDedupeKey, v))
}

// ConnectorNameEQ applies the EQ predicate on the "connector_name" field.
func ConnectorNameEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldConnectorName, v))
}

// ConnectorNameNEQ applies the NEQ predicate on the "connector_name" field.
func ConnectorNameNEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldConnectorName, v))
}

// ConnectorNameIn applies the In predicate on the "connector_name" field.
func ConnectorNameIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldConnectorName, vs...))
}

// ConnectorNameNotIn applies the NotIn predicate on the "connector_name" field.
func ConnectorNameNotIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldConnectorName, vs...))
}

// ConnectorNameGT applies the GT predicate on the "connector_name" field.
func ConnectorNameGT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldConnectorName, v))
}

// ConnectorNameGTE applies the GTE predicate on the "connector_name" field.
func ConnectorNameGTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldConnectorName, v))
}

// ConnectorNameLT applies the LT predicate on the "connector_name" field.
func ConnectorNameLT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldConnectorName, v))
}

// ConnectorNameLTE applies the LTE predicate on the "connector_name" field.
func ConnectorNameLTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldConnectorName, v))
}

// ConnectorNameContains applies the Contains predicate on the "connector_name" field.
func ConnectorNameContains(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContains(FieldConnectorName, v))
}

// ConnectorNameHasPrefix applies the HasPrefix predicate on the "connector_name" field.
func ConnectorNameHasPrefix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasPrefix(FieldConnectorName, v))
}

// ConnectorNameHasSuffix applies the HasSuffix predicate on the "connector_name" field.
func ConnectorNameHasSuffix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasSuffix(FieldConnectorName, v))
}

// ConnectorNameEqualFold applies the EqualFold predicate on the "connector_name" field.
func ConnectorNameEqualFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEqualFold(FieldConnectorName, v))
}

// ConnectorNameContainsFold applies the ContainsFold predicate on the "connector_name" field.
func ConnectorNameContainsFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContainsFold(FieldConnectorName, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameIsNil applies the IsNil predicate on the "source_name" field.
func SourceNameIsNil() predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIsNull(FieldSourceName))
}

// SourceNameNotNil applies the NotNil predicate on the "source_name" field.
func SourceNameNotNil() predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotNull(FieldSourceName))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContainsFold(FieldSourceName, v))
}

// BreachTypeEQ applies the EQ predicate on the "breach_type" field.
func BreachTypeEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldBreachType, v))
}

// BreachTypeNEQ applies the NEQ predicate on the "breach_type" field.
func BreachTypeNEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldBreachType, v))
}

// BreachTypeIn applies the In predicate on the "breach_type" field.
func BreachTypeIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldBreachType, vs...))
}

// BreachTypeNotIn applies the NotIn predicate on the "breach_type" field.
func BreachTypeNotIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldBreachType, vs...))
}

// BreachTypeGT applies the GT predicate on the "breach_type" field.
func BreachTypeGT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldBreachType, v))
}

// BreachTypeGTE applies the GTE predicate on the "breach_type" field.
func BreachTypeGTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldBreachType, v))
}

// BreachTypeLT applies the LT predicate on the "breach_type" field.
func BreachTypeLT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldBreachType, v))
}

// BreachTypeLTE applies the LTE predicate on the "breach_type" field.
func BreachTypeLTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldBreachType, v))
}

// BreachTypeContains applies the Contains predicate on the "breach_type" field.
func BreachTypeContains(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContains(FieldBreachType, v))
}

// BreachTypeHasPrefix applies the HasPrefix predicate on the "breach_type" field.
func BreachTypeHasPrefix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasPrefix(FieldBreachType, v))
}

// BreachTypeHasSuffix applies the HasSuffix predicate on the "breach_type" field.
func BreachTypeHasSuffix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasSuffix(FieldBreachType, v))
}

// BreachTypeEqualFold applies the EqualFold predicate on the "breach_type" field.
func BreachTypeEqualFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEqualFold(FieldBreachType, v))
}

// BreachTypeContainsFold applies the ContainsFold predicate on the "breach_type" field.
func BreachTypeContainsFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContainsFold(FieldBreachType, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldSeverity, vs...))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldStage, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContainsFold(FieldMessage, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldLastSeenAt, v))
}

// LastEmittedAtEQ applies the EQ predicate on the "last_emitted_at" field.
func LastEmittedAtEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldLastEmittedAt, v))
}

// LastEmittedAtNEQ applies the NEQ predicate on the "last_emitted_at" field.
func LastEmittedAtNEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldLastEmittedAt, v))
}

// LastEmittedAtIn applies the In predicate on the "last_emitted_at" field.
func LastEmittedAtIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldLastEmittedAt, vs...))
}

// LastEmittedAtNotIn applies the NotIn predicate on the "last_emitted_at" field.
func LastEmittedAtNotIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldLastEmittedAt, vs...))
}

// LastEmittedAtGT applies the GT predicate on the "last_emitted_at" field.
func LastEmittedAtGT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldLastEmittedAt, v))
}

// LastEmittedAtGTE applies the GTE predicate on the "last_emitted_at" field.
func LastEmittedAtGTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldLastEmittedAt, v))
}

// LastEmittedAtLT applies the LT predicate on the "last_emitted_at" field.
func LastEmittedAtLT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldLastEmittedAt, v))
}

// LastEmittedAtLTE applies the LTE predicate on the "last_emitted_at" field.
func LastEmittedAtLTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldLastEmittedAt, v))
}

// LastEmittedAtIsNil applies the IsNil predicate on the "last_emitted_at" field.
func LastEmittedAtIsNil() predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIsNull(FieldLastEmittedAt))
}

// LastEmittedAtNotNil applies the NotNil predicate on the "last_emitted_at" field.
func LastEmittedAtNotNil() predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotNull(FieldLastEmittedAt))
}

// LastRecoveredAtEQ applies the EQ predicate on the "last_recovered_at" field.
func LastRecoveredAtEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldLastRecoveredAt, v))
}

// LastRecoveredAtNEQ applies the NEQ predicate on the "last_recovered_at" field.
func LastRecoveredAtNEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldLastRecoveredAt, v))
}

// LastRecoveredAtIn applies the In predicate on the "last_recovered_at" field.
func LastRecoveredAtIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldLastRecoveredAt, vs...))
}

// LastRecoveredAtNotIn applies the NotIn predicate on the "last_recovered_at" field.
func LastRecoveredAtNotIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldLastRecoveredAt, vs...))
}

// LastRecoveredAtGT applies the GT predicate on the "last_recovered_at" field.
func LastRecoveredAtGT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldLastRecoveredAt, v))
}

// LastRecoveredAtGTE applies the GTE predicate on the "last_recovered_at" field.
func LastRecoveredAtGTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldLastRecoveredAt, v))
}

// LastRecoveredAtLT applies the LT predicate on the "last_recovered_at" field.
func LastRecoveredAtLT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldLastRecoveredAt, v))
}

// LastRecoveredAtLTE applies the LTE predicate on the "last_recovered_at" field.
func LastRecoveredAtLTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldLastRecoveredAt, v))
}

// LastRecoveredAtIsNil applies the IsNil predicate on the "last_recovered_at" field.
func LastRecoveredAtIsNil() predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIsNull(FieldLastRecoveredAt))
}

// LastRecoveredAtNotNil applies the NotNil predicate on the "last_recovered_at" field.
func LastRecoveredAtNotNil() predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotNull(FieldLastRecoveredAt))
}

// LastEscalatedAtEQ applies the EQ predicate on the "last_escalated_at" field.
func LastEscalatedAtEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldLastEscalatedAt, v))
}

// LastEscalatedAtNEQ applies the NEQ predicate on the "last_escalated_at" field.
func LastEscalatedAtNEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldLastEscalatedAt, v))
}

// LastEscalatedAtIn applies the In predicate on the "last_escalated_at" field.
func LastEscalatedAtIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldLastEscalatedAt, vs...))
}

// LastEscalatedAtNotIn applies the NotIn predicate on the "last_escalated_at" field.
func LastEscalatedAtNotIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldLastEscalatedAt, vs...))
}

// LastEscalatedAtGT applies the GT predicate on the "last_escalated_at" field.
func LastEscalatedAtGT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldLastEscalatedAt, v))
}

// LastEscalatedAtGTE applies the GTE predicate on the "last_escalated_at" field.
func LastEscalatedAtGTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldLastEscalatedAt, v))
}

// LastEscalatedAtLT applies the LT predicate on the "last_escalated_at" field.
func LastEscalatedAtLT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldLastEscalatedAt, v))
}

// LastEscalatedAtLTE applies the LTE predicate on the "last_escalated_at" field.
func LastEscalatedAtLTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldLastEscalatedAt, v))
}

// LastEscalatedAtIsNil applies the IsNil predicate on the "last_escalated_at" field.
func LastEscalatedAtIsNil() predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIsNull(FieldLastEscalatedAt))
}

// LastEscalatedAtNotNil applies the NotNil predicate on the "last_escalated_at" field.
func LastEscalatedAtNotNil() predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotNull(FieldLastEscalatedAt))
}

// RepeatCountEQ applies the EQ predicate on the "repeat_count" field.
func RepeatCountEQ(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldRepeatCount, v))
}

// RepeatCountNEQ applies the NEQ predicate on the "repeat_count" field.
func RepeatCountNEQ(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldRepeatCount, v))
}

// RepeatCountIn applies the In predicate on the "repeat_count" field.
func RepeatCountIn(vs ...int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldRepeatCount, vs...))
}

// RepeatCountNotIn applies the NotIn predicate on the "repeat_count" field.
func RepeatCountNotIn(vs ...int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldRepeatCount, vs...))
}

// RepeatCountGT applies the GT predicate on the "repeat_count" field.
func RepeatCountGT(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldRepeatCount, v))
}

// RepeatCountGTE applies the GTE predicate on the "repeat_count" field.
func RepeatCountGTE(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldRepeatCount, v))
}

// RepeatCountLT applies the LT predicate on the "repeat_count" field.
func RepeatCountLT(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldRepeatCount, v))
}

// RepeatCountLTE applies the LTE predicate on the "repeat_count" field.
func RepeatCountLTE(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldRepeatCount, v))
}

// EscalationLevelEQ applies the EQ predicate on the "escalation_level" field.
func EscalationLevelEQ(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldEscalationLevel, v))
}

// EscalationLevelNEQ applies the NEQ predicate on the "escalation_level" field.
func EscalationLevelNEQ(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldEscalationLevel, v))
}

// EscalationLevelIn applies the In predicate on the "escalation_level" field.
func EscalationLevelIn(vs ...int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldEscalationLevel, vs...))
}

// EscalationLevelNotIn applies the NotIn predicate on the "escalation_level" field.
func EscalationLevelNotIn(vs ...int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldEscalationLevel, vs...))
}

// EscalationLevelGT applies the GT predicate on the "escalation_level" field.
func EscalationLevelGT(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldEscalationLevel, v))
}

// EscalationLevelGTE applies the GTE predicate on the "escalation_level" field.
func EscalationLevelGTE(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldEscalationLevel, v))
}

// EscalationLevelLT applies the LT predicate on the "escalation_level" field.
func EscalationLevelLT(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldEscalationLevel, v))
}

// EscalationLevelLTE applies the LTE predicate on the "escalation_level" field.
func EscalationLevelLTE(v int) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldEscalationLevel, v))
}

// EscalationReasonEQ applies the EQ predicate on the "escalation_reason" field.
func EscalationReasonEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldEscalationReason, v))
}

// EscalationReasonNEQ applies the NEQ predicate on the "escalation_reason" field.
func EscalationReasonNEQ(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldEscalationReason, v))
}

// EscalationReasonIn applies the In predicate on the "escalation_reason" field.
func EscalationReasonIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldEscalationReason, vs...))
}

// EscalationReasonNotIn applies the NotIn predicate on the "escalation_reason" field.
func EscalationReasonNotIn(vs ...string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldEscalationReason, vs...))
}

// EscalationReasonGT applies the GT predicate on the "escalation_reason" field.
func EscalationReasonGT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldEscalationReason, v))
}

// EscalationReasonGTE applies the GTE predicate on the "escalation_reason" field.
func EscalationReasonGTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldEscalationReason, v))
}

// EscalationReasonLT applies the LT predicate on the "escalation_reason" field.
func EscalationReasonLT(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldEscalationReason, v))
}

// EscalationReasonLTE applies the LTE predicate on the "escalation_reason" field.
func EscalationReasonLTE(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldEscalationReason, v))
}

// EscalationReasonContains applies the Contains predicate on the "escalation_reason" field.
func EscalationReasonContains(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContains(FieldEscalationReason, v))
}

// EscalationReasonHasPrefix applies the HasPrefix predicate on the "escalation_reason" field.
func EscalationReasonHasPrefix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasPrefix(FieldEscalationReason, v))
}

// EscalationReasonHasSuffix applies the HasSuffix predicate on the "escalation_reason" field.
func EscalationReasonHasSuffix(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldHasSuffix(FieldEscalationReason, v))
}

// EscalationReasonIsNil applies the IsNil predicate on the "escalation_reason" field.
func EscalationReasonIsNil() predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIsNull(FieldEscalationReason))
}

// EscalationReasonNotNil applies the NotNil predicate on the "escalation_reason" field.
func EscalationReasonNotNil() predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotNull(FieldEscalationReason))
}

// EscalationReasonEqualFold applies the EqualFold predicate on the "escalation_reason" field.
func EscalationReasonEqualFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEqualFold(FieldEscalationReason, v))
}

// EscalationReasonContainsFold applies the ContainsFold predicate on the "escalation_reason" field.
func EscalationReasonContainsFold(v string) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldContainsFold(FieldEscalationReason, v))
}

// IsOpenEQ applies the EQ predicate on the "is_open" field.
func IsOpenEQ(v bool) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldIsOpen, v))
}

// IsOpenNEQ applies the NEQ predicate on the "is_open" field.
func IsOpenNEQ(v bool) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldIsOpen, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SLAAlertState) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SLAAlertState) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SLAAlertState) predicate.SLAAlertState {
	return predicate.SLAAlertState(sql.NotPredicates(p))
}
