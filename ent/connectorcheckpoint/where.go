// Code generated by ent, DO NOT EDIT.

package connectorcheckpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLTE(FieldID, id))
}

// ConnectorName applies equality check predicate on the "connector_name" field. It's identical to ConnectorNameEQ.
func ConnectorName(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldConnectorName, v))
}

// CheckpointCursor applies equality check predicate on the "checkpoint_cursor" field. It's identical to CheckpointCursorEQ.
func CheckpointCursor(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldCheckpointCursor, v))
}

// CheckpointPublishTime applies equality check predicate on the "checkpoint_publish_time" field. It's identical to CheckpointPublishTimeEQ.
func CheckpointPublishTime(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldCheckpointPublishTime, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldLastRunAt, v))
}

// LastSuccessAt applies equality check predicate on the "last_success_at" field. It's identical to LastSuccessAtEQ.
func LastSuccessAt(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldLastSuccessAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConnectorNameEQ applies the EQ predicate on the "connector_name" field.
func ConnectorNameEQ(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldConnectorName, v))
}

// ConnectorNameNEQ applies the NEQ predicate on the "connector_name" field.
func ConnectorNameNEQ(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNEQ(FieldConnectorName, v))
}

// ConnectorNameIn applies the In predicate on the "connector_name" field.
func ConnectorNameIn(vs ...string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldIn(FieldConnectorName, vs...))
}

// ConnectorNameNotIn applies the NotIn predicate on the "connector_name" field.
func ConnectorNameNotIn(vs ...string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNotIn(FieldConnectorName, vs...))
}

// ConnectorNameGT applies the GT predicate on the "connector_name" field.
func ConnectorNameGT(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGT(FieldConnectorName, v))
}

// ConnectorNameGTE applies the GTE predicate on the "connector_name" field.
func ConnectorNameGTE(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGTE(FieldConnectorName, v))
}

// ConnectorNameLT applies the LT predicate on the "connector_name" field.
func ConnectorNameLT(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLT(FieldConnectorName, v))
}

// ConnectorNameLTE applies the LTE predicate on the "connector_name" field.
func ConnectorNameLTE(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLTE(FieldConnectorName, v))
}

// ConnectorNameContains applies the Contains predicate on the "connector_name" field.
func ConnectorNameContains(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldContains(FieldConnectorName, v))
}

// ConnectorNameHasPrefix applies the HasPrefix predicate on the "connector_name" field.
func ConnectorNameHasPrefix(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldHasPrefix(FieldConnectorName, v))
}

// ConnectorNameHasSuffix applies the HasSuffix predicate on the "connector_name" field.
func ConnectorNameHasSuffix(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldHasSuffix(FieldConnectorName, v))
}

// ConnectorNameEqualFold applies the EqualFold predicate on the "connector_name" field.
func ConnectorNameEqualFold(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEqualFold(FieldConnectorName, v))
}

// ConnectorNameContainsFold applies the ContainsFold predicate on the "connector_name" field.
func ConnectorNameContainsFold(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldContainsFold(FieldConnectorName, v))
}

// CheckpointCursorEQ applies the EQ predicate on the "checkpoint_cursor" field.
func CheckpointCursorEQ(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldCheckpointCursor, v))
}

// CheckpointCursorNEQ applies the NEQ predicate on the "checkpoint_cursor" field.
func CheckpointCursorNEQ(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNEQ(FieldCheckpointCursor, v))
}

// CheckpointCursorIn applies the In predicate on the "checkpoint_cursor" field.
func CheckpointCursorIn(vs ...string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldIn(FieldCheckpointCursor, vs...))
}

// CheckpointCursorNotIn applies the NotIn predicate on the "checkpoint_cursor" field.
func CheckpointCursorNotIn(vs ...string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNotIn(FieldCheckpointCursor, vs...))
}

// CheckpointCursorGT applies the GT predicate on the "checkpoint_cursor" field.
func CheckpointCursorGT(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGT(FieldCheckpointCursor, v))
}

// CheckpointCursorGTE applies the GTE predicate on the "checkpoint_cursor" field.
func CheckpointCursorGTE(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGTE(FieldCheckpointCursor, v))
}

// CheckpointCursorLT applies the LT predicate on the "checkpoint_cursor" field.
func CheckpointCursorLT(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLT(FieldCheckpointCursor, v))
}

// CheckpointCursorLTE applies the LTE predicate on the "checkpoint_cursor" field.
func CheckpointCursorLTE(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLTE(FieldCheckpointCursor, v))
}

// CheckpointCursorContains applies the Contains predicate on the "checkpoint_cursor" field.
func CheckpointCursorContains(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldContains(FieldCheckpointCursor, v))
}

// CheckpointCursorHasPrefix applies the HasPrefix predicate on the "checkpoint_cursor" field.
func CheckpointCursorHasPrefix(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldHasPrefix(FieldCheckpointCursor, v))
}

// CheckpointCursorHasSuffix applies the HasSuffix predicate on the "checkpoint_cursor" field.
func CheckpointCursorHasSuffix(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldHasSuffix(FieldCheckpointCursor, v))
}

// CheckpointCursorIsNil applies the IsNil predicate on the "checkpoint_cursor" field.
func CheckpointCursorIsNil() predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldIsNull(FieldCheckpointCursor))
}

// CheckpointCursorNotNil applies the NotNil predicate on the "checkpoint_cursor" field.
func CheckpointCursorNotNil() predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNotNull(FieldCheckpointCursor))
}

// CheckpointCursorEqualFold applies the EqualFold predicate on the "checkpoint_cursor" field.
func CheckpointCursorEqualFold(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEqualFold(FieldCheckpointCursor, v))
}

// CheckpointCursorContainsFold applies the ContainsFold predicate on the "checkpoint_cursor" field.
func CheckpointCursorContainsFold(v string) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldContainsFold(FieldCheckpointCursor, v))
}

// CheckpointPublishTimeEQ applies the EQ predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeEQ(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeNEQ applies the NEQ predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeNEQ(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNEQ(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeIn applies the In predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeIn(vs ...time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldIn(FieldCheckpointPublishTime, vs...))
}

// CheckpointPublishTimeNotIn applies the NotIn predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeNotIn(vs ...time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNotIn(FieldCheckpointPublishTime, vs...))
}

// CheckpointPublishTimeGT applies the GT predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeGT(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGT(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeGTE applies the GTE predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeGTE(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGTE(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeLT applies the LT predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeLT(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLT(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeLTE applies the LTE predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeLTE(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLTE(FieldCheckpointPublishTime, v))
}

// CheckpointPublishTimeIsNil applies the IsNil predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeIsNil() predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldIsNull(FieldCheckpointPublishTime))
}

// CheckpointPublishTimeNotNil applies the NotNil predicate on the "checkpoint_publish_time" field.
func CheckpointPublishTimeNotNil() predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNotNull(FieldCheckpointPublishTime))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNotNull(FieldLastRunAt))
}

// LastSuccessAtEQ applies the EQ predicate on the "last_success_at" field.
func LastSuccessAtEQ(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtNEQ applies the NEQ predicate on the "last_success_at" field.
func LastSuccessAtNEQ(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtIn applies the In predicate on the "last_success_at" field.
func LastSuccessAtIn(vs ...time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtNotIn applies the NotIn predicate on the "last_success_at" field.
func LastSuccessAtNotIn(vs ...time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNotIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtGT applies the GT predicate on the "last_success_at" field.
func LastSuccessAtGT(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGT(FieldLastSuccessAt, v))
}

// LastSuccessAtGTE applies the GTE predicate on the "last_success_at" field.
func LastSuccessAtGTE(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGTE(FieldLastSuccessAt, v))
}

// LastSuccessAtLT applies the LT predicate on the "last_success_at" field.
func LastSuccessAtLT(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLT(FieldLastSuccessAt, v))
}

// LastSuccessAtLTE applies the LTE predicate on the "last_success_at" field.
func LastSuccessAtLTE(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLTE(FieldLastSuccessAt, v))
}

// LastSuccessAtIsNil applies the IsNil predicate on the "last_success_at" field.
func LastSuccessAtIsNil() predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldIsNull(FieldLastSuccessAt))
}

// LastSuccessAtNotNil applies the NotNil predicate on the "last_success_at" field.
func LastSuccessAtNotNil() predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNotNull(FieldLastSuccessAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConnectorCheckpoint) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConnectorCheckpoint) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConnectorCheckpoint) predicate.ConnectorCheckpoint {
	return predicate.ConnectorCheckpoint(sql.NotPredicates(p))
}
