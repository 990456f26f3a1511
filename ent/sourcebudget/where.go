// Code generated by ent, DO NOT EDIT.

package sourcebudget

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLTE(FieldID, id))
}

// ConnectorName applies equality check predicate on the "connector_name" field. It's identical to ConnectorNameEQ.
func ConnectorName(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldConnectorName, v))
}

// SourceKey applies equality check predicate on the "source_key" field. It's identical to SourceKeyEQ.
func SourceKey(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldSourceKey, v))
}

// WindowHour applies equality check predicate on the "window_hour" field. It's identical to WindowHourEQ.
func WindowHour(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldWindowHour, v))
}

// RequestCount applies equality check predicate on the "request_count" field. It's identical to RequestCountEQ.
func RequestCount(v int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldRequestCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConnectorNameEQ applies the EQ predicate on the "connector_name" field.
func ConnectorNameEQ(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldConnectorName, v))
}

// ConnectorNameNEQ applies the NEQ predicate on the "connector_name" field.
func ConnectorNameNEQ(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNEQ(FieldConnectorName, v))
}

// ConnectorNameIn applies the In predicate on the "connector_name" field.
func ConnectorNameIn(vs ...string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldIn(FieldConnectorName, vs...))
}

// ConnectorNameNotIn applies the NotIn predicate on the "connector_name" field.
func ConnectorNameNotIn(vs ...string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNotIn(FieldConnectorName, vs...))
}

// ConnectorNameGT applies the GT predicate on the "connector_name" field.
func ConnectorNameGT(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGT(FieldConnectorName, v))
}

// ConnectorNameGTE applies the GTE predicate on the "connector_name" field.
func ConnectorNameGTE(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGTE(FieldConnectorName, v))
}

// ConnectorNameLT applies the LT predicate on the "connector_name" field.
func ConnectorNameLT(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLT(FieldConnectorName, v))
}

// ConnectorNameLTE applies the LTE predicate on the "connector_name" field.
func ConnectorNameLTE(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLTE(FieldConnectorName, v))
}

// ConnectorNameContains applies the Contains predicate on the "connector_name" field.
func ConnectorNameContains(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldContains(FieldConnectorName, v))
}

// ConnectorNameHasPrefix applies the HasPrefix predicate on the "connector_name" field.
func ConnectorNameHasPrefix(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldHasPrefix(FieldConnectorName, v))
}

// ConnectorNameHasSuffix applies the HasSuffix predicate on the "connector_name" field.
func ConnectorNameHasSuffix(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldHasSuffix(FieldConnectorName, v))
}

// ConnectorNameEqualFold applies the EqualFold predicate on the "connector_name" field.
func ConnectorNameEqualFold(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEqualFold(FieldConnectorName, v))
}

// ConnectorNameContainsFold applies the ContainsFold predicate on the "connector_name" field.
func ConnectorNameContainsFold(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldContainsFold(FieldConnectorName, v))
}

// SourceKeyEQ applies the EQ predicate on the "source_key" field.
func SourceKeyEQ(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldSourceKey, v))
}

// SourceKeyNEQ applies the NEQ predicate on the "source_key" field.
func SourceKeyNEQ(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNEQ(FieldSourceKey, v))
}

// SourceKeyIn applies the In predicate on the "source_key" field.
func SourceKeyIn(vs ...string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldIn(FieldSourceKey, vs...))
}

// SourceKeyNotIn applies the NotIn predicate on the "source_key" field.
func SourceKeyNotIn(vs ...string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNotIn(FieldSourceKey, vs...))
}

// SourceKeyGT applies the GT predicate on the "source_key" field.
func SourceKeyGT(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGT(FieldSourceKey, v))
}

// SourceKeyGTE applies the GTE predicate on the "source_key" field.
func SourceKeyGTE(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGTE(FieldSourceKey, v))
}

// SourceKeyLT applies the LT predicate on the "source_key" field.
func SourceKeyLT(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLT(FieldSourceKey, v))
}

// SourceKeyLTE applies the LTE predicate on the "source_key" field.
func SourceKeyLTE(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLTE(FieldSourceKey, v))
}

// SourceKeyContains applies the Contains predicate on the "source_key" field.
func SourceKeyContains(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldContains(FieldSourceKey, v))
}

// SourceKeyHasPrefix applies the HasPrefix predicate on the "source_key" field.
func SourceKeyHasPrefix(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldHasPrefix(FieldSourceKey, v))
}

// SourceKeyHasSuffix applies the HasSuffix predicate on the "source_key" field.
func SourceKeyHasSuffix(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldHasSuffix(FieldSourceKey, v))
}

// SourceKeyEqualFold applies the EqualFold predicate on the "source_key" field.
func SourceKeyEqualFold(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEqualFold(FieldSourceKey, v))
}

// SourceKeyContainsFold applies the ContainsFold predicate on the "source_key" field.
func SourceKeyContainsFold(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldContainsFold(FieldSourceKey, v))
}

// WindowHourEQ applies the EQ predicate on the "window_hour" field.
func WindowHourEQ(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldWindowHour, v))
}

// WindowHourNEQ applies the NEQ predicate on the "window_hour" field.
func WindowHourNEQ(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNEQ(FieldWindowHour, v))
}

// WindowHourIn applies the In predicate on the "window_hour" field.
func WindowHourIn(vs ...string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldIn(FieldWindowHour, vs...))
}

// WindowHourNotIn applies the NotIn predicate on the "window_hour" field.
func WindowHourNotIn(vs ...string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNotIn(FieldWindowHour, vs...))
}

// WindowHourGT applies the GT predicate on the "window_hour" field.
func WindowHourGT(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGT(FieldWindowHour, v))
}

// WindowHourGTE applies the GTE predicate on the "window_hour" field.
func WindowHourGTE(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGTE(FieldWindowHour, v))
}

// WindowHourLT applies the LT predicate on the "window_hour" field.
func WindowHourLT(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLT(FieldWindowHour, v))
}

// WindowHourLTE applies the LTE predicate on the "window_hour" field.
func WindowHourLTE(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLTE(FieldWindowHour, v))
}

// WindowHourContains applies the Contains predicate on the "window_hour" field.
func WindowHourContains(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldContains(FieldWindowHour, v))
}

// WindowHourHasPrefix applies the HasPrefix predicate on the "window_hour" field.
func WindowHourHasPrefix(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldHasPrefix(FieldWindowHour, v))
}

// WindowHourHasSuffix applies the HasSuffix predicate on the "window_hour" field.
func WindowHourHasSuffix(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldHasSuffix(FieldWindowHour, v))
}

// WindowHourEqualFold applies the EqualFold predicate on the "window_hour" field.
func WindowHourEqualFold(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEqualFold(FieldWindowHour, v))
}

// WindowHourContainsFold applies the ContainsFold predicate on the "window_hour" field.
func WindowHourContainsFold(v string) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldContainsFold(FieldWindowHour, v))
}

// RequestCountEQ applies the EQ predicate on the "request_count" field.
func RequestCountEQ(v int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldRequestCount, v))
}

// RequestCountNEQ applies the NEQ predicate on the "request_count" field.
func RequestCountNEQ(v int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNEQ(FieldRequestCount, v))
}

// RequestCountIn applies the In predicate on the "request_count" field.
func RequestCountIn(vs ...int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldIn(FieldRequestCount, vs...))
}

// RequestCountNotIn applies the NotIn predicate on the "request_count" field.
func RequestCountNotIn(vs ...int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNotIn(FieldRequestCount, vs...))
}

// RequestCountGT applies the GT predicate on the "request_count" field.
func RequestCountGT(v int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGT(FieldRequestCount, v))
}

// RequestCountGTE applies the GTE predicate on the "request_count" field.
func RequestCountGTE(v int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGTE(FieldRequestCount, v))
}

// RequestCountLT applies the LT predicate on the "request_count" field.
func RequestCountLT(v int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLT(FieldRequestCount, v))
}

// RequestCountLTE applies the LTE predicate on the "request_count" field.
func RequestCountLTE(v int) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLTE(FieldRequestCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SourceBudget {
	return predicate.SourceBudget(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceBudget) predicate.SourceBudget {
	return predicate.SourceBudget(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceBudget) predicate.SourceBudget {
	return predicate.SourceBudget(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceBudget) predicate.SourceBudget {
	return predicate.SourceBudget(sql.NotPredicates(p))
}
