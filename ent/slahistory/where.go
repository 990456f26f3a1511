// Code generated by ent, DO NOT EDIT.

package slahistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLTE(FieldID, id))
}

// ObservedAt applies equality check predicate on the "observed_at" field. It's identical to ObservedAtEQ.
func ObservedAt(v time.Time) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldObservedAt, v))
}

// ConnectorName applies equality check predicate on the "connector_name" field. It's identical to ConnectorNameEQ.
func ConnectorName(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldConnectorName, v))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldSourceName, v))
}

// BreachType applies equality check predicate on the "breach_type" field. It's identical to BreachTypeEQ.
func BreachType(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldBreachType, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldSeverity, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldStage, v))
}

// FreshnessMinutes applies equality check predicate on the "freshness_minutes" field. It's identical to FreshnessMinutesEQ.
func FreshnessMinutes(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldFreshnessMinutes, v))
}

// PendingFailures applies equality check predicate on the "pending_failures" field. It's identical to PendingFailuresEQ.
func PendingFailures(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldPendingFailures, v))
}

// DeadFailures applies equality check predicate on the "dead_failures" field. It's identical to DeadFailuresEQ.
func DeadFailures(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldDeadFailures, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldMessage, v))
}

// ObservedAtEQ applies the EQ predicate on the "observed_at" field.
func ObservedAtEQ(v time.Time) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldObservedAt, v))
}

// ObservedAtNEQ applies the NEQ predicate on the "observed_at" field.
func ObservedAtNEQ(v time.Time) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNEQ(FieldObservedAt, v))
}

// ObservedAtIn applies the In predicate on the "observed_at" field.
func ObservedAtIn(vs ...time.Time) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIn(FieldObservedAt, vs...))
}

// ObservedAtNotIn applies the NotIn predicate on the "observed_at" field.
func ObservedAtNotIn(vs ...time.Time) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotIn(FieldObservedAt, vs...))
}

// ObservedAtGT applies the GT predicate on the "observed_at" field.
func ObservedAtGT(v time.Time) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGT(FieldObservedAt, v))
}

// ObservedAtGTE applies the GTE predicate on the "observed_at" field.
func ObservedAtGTE(v time.Time) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGTE(FieldObservedAt, v))
}

// ObservedAtLT applies the LT predicate on the "observed_at" field.
func ObservedAtLT(v time.Time) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLT(FieldObservedAt, v))
}

// ObservedAtLTE applies the LTE predicate on the "observed_at" field.
func ObservedAtLTE(v time.Time) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLTE(FieldObservedAt, v))
}

// ConnectorNameEQ applies the EQ predicate on the "connector_name" field.
func ConnectorNameEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldConnectorName, v))
}

// ConnectorNameNEQ applies the NEQ predicate on the "connector_name" field.
func ConnectorNameNEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNEQ(FieldConnectorName, v))
}

// ConnectorNameIn applies the In predicate on the "connector_name" field.
func ConnectorNameIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIn(FieldConnectorName, vs...))
}

// ConnectorNameNotIn applies the NotIn predicate on the "connector_name" field.
func ConnectorNameNotIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotIn(FieldConnectorName, vs...))
}

// ConnectorNameGT applies the GT predicate on the "connector_name" field.
func ConnectorNameGT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGT(FieldConnectorName, v))
}

// ConnectorNameGTE applies the GTE predicate on the "connector_name" field.
func ConnectorNameGTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGTE(FieldConnectorName, v))
}

// ConnectorNameLT applies the LT predicate on the "connector_name" field.
func ConnectorNameLT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLT(FieldConnectorName, v))
}

// ConnectorNameLTE applies the LTE predicate on the "connector_name" field.
func ConnectorNameLTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLTE(FieldConnectorName, v))
}

// ConnectorNameContains applies the Contains predicate on the "connector_name" field.
func ConnectorNameContains(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContains(FieldConnectorName, v))
}

// ConnectorNameHasPrefix applies the HasPrefix predicate on the "connector_name" field.
func ConnectorNameHasPrefix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasPrefix(FieldConnectorName, v))
}

// ConnectorNameHasSuffix applies the HasSuffix predicate on the "connector_name" field.
func ConnectorNameHasSuffix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasSuffix(FieldConnectorName, v))
}

// ConnectorNameEqualFold applies the EqualFold predicate on the "connector_name" field.
func ConnectorNameEqualFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEqualFold(FieldConnectorName, v))
}

// ConnectorNameContainsFold applies the ContainsFold predicate on the "connector_name" field.
func ConnectorNameContainsFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContainsFold(FieldConnectorName, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameIsNil applies the IsNil predicate on the "source_name" field.
func SourceNameIsNil() predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIsNull(FieldSourceName))
}

// SourceNameNotNil applies the NotNil predicate on the "source_name" field.
func SourceNameNotNil() predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotNull(FieldSourceName))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContainsFold(FieldSourceName, v))
}

// BreachTypeEQ applies the EQ predicate on the "breach_type" field.
func BreachTypeEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldBreachType, v))
}

// BreachTypeNEQ applies the NEQ predicate on the "breach_type" field.
func BreachTypeNEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNEQ(FieldBreachType, v))
}

// BreachTypeIn applies the In predicate on the "breach_type" field.
func BreachTypeIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIn(FieldBreachType, vs...))
}

// BreachTypeNotIn applies the NotIn predicate on the "breach_type" field.
func BreachTypeNotIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotIn(FieldBreachType, vs...))
}

// BreachTypeGT applies the GT predicate on the "breach_type" field.
func BreachTypeGT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGT(FieldBreachType, v))
}

// BreachTypeGTE applies the GTE predicate on the "breach_type" field.
func BreachTypeGTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGTE(FieldBreachType, v))
}

// BreachTypeLT applies the LT predicate on the "breach_type" field.
func BreachTypeLT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLT(FieldBreachType, v))
}

// BreachTypeLTE applies the LTE predicate on the "breach_type" field.
func BreachTypeLTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLTE(FieldBreachType, v))
}

// BreachTypeContains applies the Contains predicate on the "breach_type" field.
func BreachTypeContains(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContains(FieldBreachType, v))
}

// BreachTypeHasPrefix applies the HasPrefix predicate on the "breach_type" field.
func BreachTypeHasPrefix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasPrefix(FieldBreachType, v))
}

// BreachTypeHasSuffix applies the HasSuffix predicate on the "breach_type" field.
func BreachTypeHasSuffix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasSuffix(FieldBreachType, v))
}

// BreachTypeEqualFold applies the EqualFold predicate on the "breach_type" field.
func BreachTypeEqualFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEqualFold(FieldBreachType, v))
}

// BreachTypeContainsFold applies the ContainsFold predicate on the "breach_type" field.
func BreachTypeContainsFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContainsFold(FieldBreachType, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContainsFold(FieldSeverity, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContainsFold(FieldStage, v))
}

// FreshnessMinutesEQ applies the EQ predicate on the "freshness_minutes" field.
func FreshnessMinutesEQ(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldFreshnessMinutes, v))
}

// FreshnessMinutesNEQ applies the NEQ predicate on the "freshness_minutes" field.
func FreshnessMinutesNEQ(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNEQ(FieldFreshnessMinutes, v))
}

// FreshnessMinutesIn applies the In predicate on the "freshness_minutes" field.
func FreshnessMinutesIn(vs ...int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIn(FieldFreshnessMinutes, vs...))
}

// FreshnessMinutesNotIn applies the NotIn predicate on the "freshness_minutes" field.
func FreshnessMinutesNotIn(vs ...int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotIn(FieldFreshnessMinutes, vs...))
}

// FreshnessMinutesGT applies the GT predicate on the "freshness_minutes" field.
func FreshnessMinutesGT(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGT(FieldFreshnessMinutes, v))
}

// FreshnessMinutesGTE applies the GTE predicate on the "freshness_minutes" field.
func FreshnessMinutesGTE(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGTE(FieldFreshnessMinutes, v))
}

// FreshnessMinutesLT applies the LT predicate on the "freshness_minutes" field.
func FreshnessMinutesLT(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLT(FieldFreshnessMinutes, v))
}

// FreshnessMinutesLTE applies the LTE predicate on the "freshness_minutes" field.
func FreshnessMinutesLTE(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLTE(FieldFreshnessMinutes, v))
}

// FreshnessMinutesIsNil applies the IsNil predicate on the "freshness_minutes" field.
func FreshnessMinutesIsNil() predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIsNull(FieldFreshnessMinutes))
}

// FreshnessMinutesNotNil applies the NotNil predicate on the "freshness_minutes" field.
func FreshnessMinutesNotNil() predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotNull(FieldFreshnessMinutes))
}

// PendingFailuresEQ applies the EQ predicate on the "pending_failures" field.
func PendingFailuresEQ(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldPendingFailures, v))
}

// PendingFailuresNEQ applies the NEQ predicate on the "pending_failures" field.
func PendingFailuresNEQ(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNEQ(FieldPendingFailures, v))
}

// PendingFailuresIn applies the In predicate on the "pending_failures" field.
func PendingFailuresIn(vs ...int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIn(FieldPendingFailures, vs...))
}

// PendingFailuresNotIn applies the NotIn predicate on the "pending_failures" field.
func PendingFailuresNotIn(vs ...int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotIn(FieldPendingFailures, vs...))
}

// PendingFailuresGT applies the GT predicate on the "pending_failures" field.
func PendingFailuresGT(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGT(FieldPendingFailures, v))
}

// PendingFailuresGTE applies the GTE predicate on the "pending_failures" field.
func PendingFailuresGTE(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGTE(FieldPendingFailures, v))
}

// PendingFailuresLT applies the LT predicate on the "pending_failures" field.
func PendingFailuresLT(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLT(FieldPendingFailures, v))
}

// PendingFailuresLTE applies the LTE predicate on the "pending_failures" field.
func PendingFailuresLTE(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLTE(FieldPendingFailures, v))
}

// DeadFailuresEQ applies the EQ predicate on the "dead_failures" field.
func DeadFailuresEQ(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldDeadFailures, v))
}

// DeadFailuresNEQ applies the NEQ predicate on the "dead_failures" field.
func DeadFailuresNEQ(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNEQ(FieldDeadFailures, v))
}

// DeadFailuresIn applies the In predicate on the "dead_failures" field.
func DeadFailuresIn(vs ...int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIn(FieldDeadFailures, vs...))
}

// DeadFailuresNotIn applies the NotIn predicate on the "dead_failures" field.
func DeadFailuresNotIn(vs ...int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotIn(FieldDeadFailures, vs...))
}

// DeadFailuresGT applies the GT predicate on the "dead_failures" field.
func DeadFailuresGT(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGT(FieldDeadFailures, v))
}

// DeadFailuresGTE applies the GTE predicate on the "dead_failures" field.
func DeadFailuresGTE(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGTE(FieldDeadFailures, v))
}

// DeadFailuresLT applies the LT predicate on the "dead_failures" field.
func DeadFailuresLT(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLT(FieldDeadFailures, v))
}

// DeadFailuresLTE applies the LTE predicate on the "dead_failures" field.
func DeadFailuresLTE(v int) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLTE(FieldDeadFailures, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.SLAHistory {
	return predicate.SLAHistory(sql.FieldContainsFold(FieldMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SLAHistory) predicate.SLAHistory {
	return predicate.SLAHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SLAHistory) predicate.SLAHistory {
	return predicate.SLAHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SLAHistory) predicate.SLAHistory {
	return predicate.SLAHistory(sql.NotPredicates(p))
}
