// Code generated by ent, DO NOT EDIT.

package connectorrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContainsFold(FieldID, id))
}

// ConnectorName applies equality check predicate on the "connector_name" field. It's identical to ConnectorNameEQ.
func ConnectorName(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldConnectorName, v))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldSourceName, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldFinishedAt, v))
}

// TriggeredBy applies equality check predicate on the "triggered_by" field. It's identical to TriggeredByEQ.
func TriggeredBy(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldTriggeredBy, v))
}

// PulledCount applies equality check predicate on the "pulled_count" field. It's identical to PulledCountEQ.
func PulledCount(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldPulledCount, v))
}

// NormalizedCount applies equality check predicate on the "normalized_count" field. It's identical to NormalizedCountEQ.
func NormalizedCount(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldNormalizedCount, v))
}

// InsertedCount applies equality check predicate on the "inserted_count" field. It's identical to InsertedCountEQ.
func InsertedCount(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldInsertedCount, v))
}

// UpdatedCount applies equality check predicate on the "updated_count" field. It's identical to UpdatedCountEQ.
func UpdatedCount(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldUpdatedCount, v))
}

// FailedCount applies equality check predicate on the "failed_count" field. It's identical to FailedCountEQ.
func FailedCount(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldFailedCount, v))
}

// ReplayedCount applies equality check predicate on the "replayed_count" field. It's identical to ReplayedCountEQ.
func ReplayedCount(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldReplayedCount, v))
}

// CheckpointBefore applies equality check predicate on the "checkpoint_before" field. It's identical to CheckpointBeforeEQ.
func CheckpointBefore(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldCheckpointBefore, v))
}

// CheckpointAfter applies equality check predicate on the "checkpoint_after" field. It's identical to CheckpointAfterEQ.
func CheckpointAfter(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldCheckpointAfter, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ConnectorNameEQ applies the EQ predicate on the "connector_name" field.
func ConnectorNameEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldConnectorName, v))
}

// ConnectorNameNEQ applies the NEQ predicate on the "connector_name" field.
func ConnectorNameNEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldConnectorName, v))
}

// ConnectorNameIn applies the In predicate on the "connector_name" field.
func ConnectorNameIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldConnectorName, vs...))
}

// ConnectorNameNotIn applies the NotIn predicate on the "connector_name" field.
func ConnectorNameNotIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldConnectorName, vs...))
}

// ConnectorNameGT applies the GT predicate on the "connector_name" field.
func ConnectorNameGT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldConnectorName, v))
}

// ConnectorNameGTE applies the GTE predicate on the "connector_name" field.
func ConnectorNameGTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldConnectorName, v))
}

// ConnectorNameLT applies the LT predicate on the "connector_name" field.
func ConnectorNameLT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldConnectorName, v))
}

// ConnectorNameLTE applies the LTE predicate on the "connector_name" field.
func ConnectorNameLTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldConnectorName, v))
}

// ConnectorNameContains applies the Contains predicate on the "connector_name" field.
func ConnectorNameContains(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContains(FieldConnectorName, v))
}

// ConnectorNameHasPrefix applies the HasPrefix predicate on the "connector_name" field.
func ConnectorNameHasPrefix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasPrefix(FieldConnectorName, v))
}

// ConnectorNameHasSuffix applies the HasSuffix predicate on the "connector_name" field.
func ConnectorNameHasSuffix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasSuffix(FieldConnectorName, v))
}

// ConnectorNameEqualFold applies the EqualFold predicate on the "connector_name" field.
func ConnectorNameEqualFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEqualFold(FieldConnectorName, v))
}

// ConnectorNameContainsFold applies the ContainsFold predicate on the "connector_name" field.
func ConnectorNameContainsFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContainsFold(FieldConnectorName, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContainsFold(FieldSourceName, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldStatus, vs...))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldTriggeredBy, v))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldTriggeredBy, v))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldTriggeredBy, vs...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldTriggeredBy, vs...))
}

// TriggeredByGT applies the GT predicate on the "triggered_by" field.
func TriggeredByGT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldTriggeredBy, v))
}

// TriggeredByGTE applies the GTE predicate on the "triggered_by" field.
func TriggeredByGTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldTriggeredBy, v))
}

// TriggeredByLT applies the LT predicate on the "triggered_by" field.
func TriggeredByLT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldTriggeredBy, v))
}

// TriggeredByLTE applies the LTE predicate on the "triggered_by" field.
func TriggeredByLTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldTriggeredBy, v))
}

// TriggeredByContains applies the Contains predicate on the "triggered_by" field.
func TriggeredByContains(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContains(FieldTriggeredBy, v))
}

// TriggeredByHasPrefix applies the HasPrefix predicate on the "triggered_by" field.
func TriggeredByHasPrefix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasPrefix(FieldTriggeredBy, v))
}

// TriggeredByHasSuffix applies the HasSuffix predicate on the "triggered_by" field.
func TriggeredByHasSuffix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasSuffix(FieldTriggeredBy, v))
}

// TriggeredByIsNil applies the IsNil predicate on the "triggered_by" field.
func TriggeredByIsNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIsNull(FieldTriggeredBy))
}

// TriggeredByNotNil applies the NotNil predicate on the "triggered_by" field.
func TriggeredByNotNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotNull(FieldTriggeredBy))
}

// TriggeredByEqualFold applies the EqualFold predicate on the "triggered_by" field.
func TriggeredByEqualFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEqualFold(FieldTriggeredBy, v))
}

// TriggeredByContainsFold applies the ContainsFold predicate on the "triggered_by" field.
func TriggeredByContainsFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContainsFold(FieldTriggeredBy, v))
}

// PulledCountEQ applies the EQ predicate on the "pulled_count" field.
func PulledCountEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldPulledCount, v))
}

// PulledCountNEQ applies the NEQ predicate on the "pulled_count" field.
func PulledCountNEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldPulledCount, v))
}

// PulledCountIn applies the In predicate on the "pulled_count" field.
func PulledCountIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldPulledCount, vs...))
}

// PulledCountNotIn applies the NotIn predicate on the "pulled_count" field.
func PulledCountNotIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldPulledCount, vs...))
}

// PulledCountGT applies the GT predicate on the "pulled_count" field.
func PulledCountGT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldPulledCount, v))
}

// PulledCountGTE applies the GTE predicate on the "pulled_count" field.
func PulledCountGTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldPulledCount, v))
}

// PulledCountLT applies the LT predicate on the "pulled_count" field.
func PulledCountLT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldPulledCount, v))
}

// PulledCountLTE applies the LTE predicate on the "pulled_count" field.
func PulledCountLTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldPulledCount, v))
}

// NormalizedCountEQ applies the EQ predicate on the "normalized_count" field.
func NormalizedCountEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldNormalizedCount, v))
}

// NormalizedCountNEQ applies the NEQ predicate on the "normalized_count" field.
func NormalizedCountNEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldNormalizedCount, v))
}

// NormalizedCountIn applies the In predicate on the "normalized_count" field.
func NormalizedCountIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldNormalizedCount, vs...))
}

// NormalizedCountNotIn applies the NotIn predicate on the "normalized_count" field.
func NormalizedCountNotIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldNormalizedCount, vs...))
}

// NormalizedCountGT applies the GT predicate on the "normalized_count" field.
func NormalizedCountGT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldNormalizedCount, v))
}

// NormalizedCountGTE applies the GTE predicate on the "normalized_count" field.
func NormalizedCountGTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldNormalizedCount, v))
}

// NormalizedCountLT applies the LT predicate on the "normalized_count" field.
func NormalizedCountLT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldNormalizedCount, v))
}

// NormalizedCountLTE applies the LTE predicate on the "normalized_count" field.
func NormalizedCountLTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldNormalizedCount, v))
}

// InsertedCountEQ applies the EQ predicate on the "inserted_count" field.
func InsertedCountEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldInsertedCount, v))
}

// InsertedCountNEQ applies the NEQ predicate on the "inserted_count" field.
func InsertedCountNEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldInsertedCount, v))
}

// InsertedCountIn applies the In predicate on the "inserted_count" field.
func InsertedCountIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldInsertedCount, vs...))
}

// InsertedCountNotIn applies the NotIn predicate on the "inserted_count" field.
func InsertedCountNotIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldInsertedCount, vs...))
}

// InsertedCountGT applies the GT predicate on the "inserted_count" field.
func InsertedCountGT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldInsertedCount, v))
}

// InsertedCountGTE applies the GTE predicate on the "inserted_count" field.
func InsertedCountGTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldInsertedCount, v))
}

// InsertedCountLT applies the LT predicate on the "inserted_count" field.
func InsertedCountLT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldInsertedCount, v))
}

// InsertedCountLTE applies the LTE predicate on the "inserted_count" field.
func InsertedCountLTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldInsertedCount, v))
}

// UpdatedCountEQ applies the EQ predicate on the "updated_count" field.
func UpdatedCountEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldUpdatedCount, v))
}

// UpdatedCountNEQ applies the NEQ predicate on the "updated_count" field.
func UpdatedCountNEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldUpdatedCount, v))
}

// UpdatedCountIn applies the In predicate on the "updated_count" field.
func UpdatedCountIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldUpdatedCount, vs...))
}

// UpdatedCountNotIn applies the NotIn predicate on the "updated_count" field.
func UpdatedCountNotIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldUpdatedCount, vs...))
}

// UpdatedCountGT applies the GT predicate on the "updated_count" field.
func UpdatedCountGT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldUpdatedCount, v))
}

// UpdatedCountGTE applies the GTE predicate on the "updated_count" field.
func UpdatedCountGTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldUpdatedCount, v))
}

// UpdatedCountLT applies the LT predicate on the "updated_count" field.
func UpdatedCountLT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldUpdatedCount, v))
}

// UpdatedCountLTE applies the LTE predicate on the "updated_count" field.
func UpdatedCountLTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldUpdatedCount, v))
}

// FailedCountEQ applies the EQ predicate on the "failed_count" field.
func FailedCountEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldFailedCount, v))
}

// FailedCountNEQ applies the NEQ predicate on the "failed_count" field.
func FailedCountNEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldFailedCount, v))
}

// FailedCountIn applies the In predicate on the "failed_count" field.
func FailedCountIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldFailedCount, vs...))
}

// FailedCountNotIn applies the NotIn predicate on the "failed_count" field.
func FailedCountNotIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldFailedCount, vs...))
}

// FailedCountGT applies the GT predicate on the "failed_count" field.
func FailedCountGT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldFailedCount, v))
}

// FailedCountGTE applies the GTE predicate on the "failed_count" field.
func FailedCountGTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldFailedCount, v))
}

// FailedCountLT applies the LT predicate on the "failed_count" field.
func FailedCountLT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldFailedCount, v))
}

// FailedCountLTE applies the LTE predicate on the "failed_count" field.
func FailedCountLTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldFailedCount, v))
}

// ReplayedCountEQ applies the EQ predicate on the "replayed_count" field.
func ReplayedCountEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldReplayedCount, v))
}

// ReplayedCountNEQ applies the NEQ predicate on the "replayed_count" field.
func ReplayedCountNEQ(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldReplayedCount, v))
}

// ReplayedCountIn applies the In predicate on the "replayed_count" field.
func ReplayedCountIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldReplayedCount, vs...))
}

// ReplayedCountNotIn applies the NotIn predicate on the "replayed_count" field.
func ReplayedCountNotIn(vs ...int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldReplayedCount, vs...))
}

// ReplayedCountGT applies the GT predicate on the "replayed_count" field.
func ReplayedCountGT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldReplayedCount, v))
}

// ReplayedCountGTE applies the GTE predicate on the "replayed_count" field.
func ReplayedCountGTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldReplayedCount, v))
}

// ReplayedCountLT applies the LT predicate on the "replayed_count" field.
func ReplayedCountLT(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldReplayedCount, v))
}

// ReplayedCountLTE applies the LTE predicate on the "replayed_count" field.
func ReplayedCountLTE(v int) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldReplayedCount, v))
}

// CheckpointBeforeEQ applies the EQ predicate on the "checkpoint_before" field.
func CheckpointBeforeEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldCheckpointBefore, v))
}

// CheckpointBeforeNEQ applies the NEQ predicate on the "checkpoint_before" field.
func CheckpointBeforeNEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldCheckpointBefore, v))
}

// CheckpointBeforeIn applies the In predicate on the "checkpoint_before" field.
func CheckpointBeforeIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldCheckpointBefore, vs...))
}

// CheckpointBeforeNotIn applies the NotIn predicate on the "checkpoint_before" field.
func CheckpointBeforeNotIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldCheckpointBefore, vs...))
}

// CheckpointBeforeGT applies the GT predicate on the "checkpoint_before" field.
func CheckpointBeforeGT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldCheckpointBefore, v))
}

// CheckpointBeforeGTE applies the GTE predicate on the "checkpoint_before" field.
func CheckpointBeforeGTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldCheckpointBefore, v))
}

// CheckpointBeforeLT applies the LT predicate on the "checkpoint_before" field.
func CheckpointBeforeLT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldCheckpointBefore, v))
}

// CheckpointBeforeLTE applies the LTE predicate on the "checkpoint_before" field.
func CheckpointBeforeLTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldCheckpointBefore, v))
}

// CheckpointBeforeContains applies the Contains predicate on the "checkpoint_before" field.
func CheckpointBeforeContains(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContains(FieldCheckpointBefore, v))
}

// CheckpointBeforeHasPrefix applies the HasPrefix predicate on the "checkpoint_before" field.
func CheckpointBeforeHasPrefix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasPrefix(FieldCheckpointBefore, v))
}

// CheckpointBeforeHasSuffix applies the HasSuffix predicate on the "checkpoint_before" field.
func CheckpointBeforeHasSuffix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasSuffix(FieldCheckpointBefore, v))
}

// CheckpointBeforeIsNil applies the IsNil predicate on the "checkpoint_before" field.
func CheckpointBeforeIsNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIsNull(FieldCheckpointBefore))
}

// CheckpointBeforeNotNil applies the NotNil predicate on the "checkpoint_before" field.
func CheckpointBeforeNotNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotNull(FieldCheckpointBefore))
}

// CheckpointBeforeEqualFold applies the EqualFold predicate on the "checkpoint_before" field.
func CheckpointBeforeEqualFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEqualFold(FieldCheckpointBefore, v))
}

// CheckpointBeforeContainsFold applies the ContainsFold predicate on the "checkpoint_before" field.
func CheckpointBeforeContainsFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContainsFold(FieldCheckpointBefore, v))
}

// CheckpointAfterEQ applies the EQ predicate on the "checkpoint_after" field.
func CheckpointAfterEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldCheckpointAfter, v))
}

// CheckpointAfterNEQ applies the NEQ predicate on the "checkpoint_after" field.
func CheckpointAfterNEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldCheckpointAfter, v))
}

// CheckpointAfterIn applies the In predicate on the "checkpoint_after" field.
func CheckpointAfterIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldCheckpointAfter, vs...))
}

// CheckpointAfterNotIn applies the NotIn predicate on the "checkpoint_after" field.
func CheckpointAfterNotIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldCheckpointAfter, vs...))
}

// CheckpointAfterGT applies the GT predicate on the "checkpoint_after" field.
func CheckpointAfterGT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldCheckpointAfter, v))
}

// CheckpointAfterGTE applies the GTE predicate on the "checkpoint_after" field.
func CheckpointAfterGTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldCheckpointAfter, v))
}

// CheckpointAfterLT applies the LT predicate on the "checkpoint_after" field.
func CheckpointAfterLT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldCheckpointAfter, v))
}

// CheckpointAfterLTE applies the LTE predicate on the "checkpoint_after" field.
func CheckpointAfterLTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldCheckpointAfter, v))
}

// CheckpointAfterContains applies the Contains predicate on the "checkpoint_after" field.
func CheckpointAfterContains(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContains(FieldCheckpointAfter, v))
}

// CheckpointAfterHasPrefix applies the HasPrefix predicate on the "checkpoint_after" field.
func CheckpointAfterHasPrefix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasPrefix(FieldCheckpointAfter, v))
}

// CheckpointAfterHasSuffix applies the HasSuffix predicate on the "checkpoint_after" field.
func CheckpointAfterHasSuffix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasSuffix(FieldCheckpointAfter, v))
}

// CheckpointAfterIsNil applies the IsNil predicate on the "checkpoint_after" field.
func CheckpointAfterIsNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIsNull(FieldCheckpointAfter))
}

// CheckpointAfterNotNil applies the NotNil predicate on the "checkpoint_after" field.
func CheckpointAfterNotNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotNull(FieldCheckpointAfter))
}

// CheckpointAfterEqualFold applies the EqualFold predicate on the "checkpoint_after" field.
func CheckpointAfterEqualFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEqualFold(FieldCheckpointAfter, v))
}

// CheckpointAfterContainsFold applies the ContainsFold predicate on the "checkpoint_after" field.
func CheckpointAfterContainsFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContainsFold(FieldCheckpointAfter, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.FieldNotNull(FieldDetails))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConnectorRun) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConnectorRun) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConnectorRun) predicate.ConnectorRun {
	return predicate.ConnectorRun(sql.NotPredicates(p))
}
