// Code generated by ent, DO NOT EDIT.

package connectorfailure

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLTE(FieldID, id))
}

// ConnectorName applies equality check predicate on the "connector_name" field. It's identical to ConnectorNameEQ.
func ConnectorName(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldConnectorName, v))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldSourceName, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldRunID, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldRetryCount, v))
}

// NextRetryAt applies equality check predicate on the "next_retry_at" field. It's identical to NextRetryAtEQ.
func NextRetryAt(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldNextRetryAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConnectorNameEQ applies the EQ predicate on the "connector_name" field.
func ConnectorNameEQ(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldConnectorName, v))
}

// ConnectorNameNEQ applies the NEQ predicate on the "connector_name" field.
func ConnectorNameNEQ(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNEQ(FieldConnectorName, v))
}

// ConnectorNameIn applies the In predicate on the "connector_name" field.
func ConnectorNameIn(vs ...string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIn(FieldConnectorName, vs...))
}

// ConnectorNameNotIn applies the NotIn predicate on the "connector_name" field.
func ConnectorNameNotIn(vs ...string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotIn(FieldConnectorName, vs...))
}

// ConnectorNameGT applies the GT predicate on the "connector_name" field.
func ConnectorNameGT(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGT(FieldConnectorName, v))
}

// ConnectorNameGTE applies the GTE predicate on the "connector_name" field.
func ConnectorNameGTE(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGTE(FieldConnectorName, v))
}

// ConnectorNameLT applies the LT predicate on the "connector_name" field.
func ConnectorNameLT(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLT(FieldConnectorName, v))
}

// ConnectorNameLTE applies the LTE predicate on the "connector_name" field.
func ConnectorNameLTE(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLTE(FieldConnectorName, v))
}

// ConnectorNameContains applies the Contains predicate on the "connector_name" field.
func ConnectorNameContains(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldContains(FieldConnectorName, v))
}

// ConnectorNameHasPrefix applies the HasPrefix predicate on the "connector_name" field.
func ConnectorNameHasPrefix(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldHasPrefix(FieldConnectorName, v))
}

// ConnectorNameHasSuffix applies the HasSuffix predicate on the "connector_name" field.
func ConnectorNameHasSuffix(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldHasSuffix(FieldConnectorName, v))
}

// ConnectorNameEqualFold applies the EqualFold predicate on the "connector_name" field.
func ConnectorNameEqualFold(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEqualFold(FieldConnectorName, v))
}

// ConnectorNameContainsFold applies the ContainsFold predicate on the "connector_name" field.
func ConnectorNameContainsFold(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldContainsFold(FieldConnectorName, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameIsNil applies the IsNil predicate on the "source_name" field.
func SourceNameIsNil() predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIsNull(FieldSourceName))
}

// SourceNameNotNil applies the NotNil predicate on the "source_name" field.
func SourceNameNotNil() predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotNull(FieldSourceName))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldContainsFold(FieldSourceName, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldContainsFold(FieldRunID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotIn(FieldStatus, vs...))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLTE(FieldRetryCount, v))
}

// NextRetryAtEQ applies the EQ predicate on the "next_retry_at" field.
func NextRetryAtEQ(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldNextRetryAt, v))
}

// NextRetryAtNEQ applies the NEQ predicate on the "next_retry_at" field.
func NextRetryAtNEQ(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNEQ(FieldNextRetryAt, v))
}

// NextRetryAtIn applies the In predicate on the "next_retry_at" field.
func NextRetryAtIn(vs ...time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIn(FieldNextRetryAt, vs...))
}

// NextRetryAtNotIn applies the NotIn predicate on the "next_retry_at" field.
func NextRetryAtNotIn(vs ...time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotIn(FieldNextRetryAt, vs...))
}

// NextRetryAtGT applies the GT predicate on the "next_retry_at" field.
func NextRetryAtGT(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGT(FieldNextRetryAt, v))
}

// NextRetryAtGTE applies the GTE predicate on the "next_retry_at" field.
func NextRetryAtGTE(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGTE(FieldNextRetryAt, v))
}

// NextRetryAtLT applies the LT predicate on the "next_retry_at" field.
func NextRetryAtLT(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLT(FieldNextRetryAt, v))
}

// NextRetryAtLTE applies the LTE predicate on the "next_retry_at" field.
func NextRetryAtLTE(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLTE(FieldNextRetryAt, v))
}

// NextRetryAtIsNil applies the IsNil predicate on the "next_retry_at" field.
func NextRetryAtIsNil() predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIsNull(FieldNextRetryAt))
}

// NextRetryAtNotNil applies the NotNil predicate on the "next_retry_at" field.
func NextRetryAtNotNil() predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotNull(FieldNextRetryAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConnectorFailure) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConnectorFailure) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConnectorFailure) predicate.ConnectorFailure {
	return predicate.ConnectorFailure(sql.NotPredicates(p))
}
