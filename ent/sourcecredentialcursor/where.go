// Code generated by ent, DO NOT EDIT.

package sourcecredentialcursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldLTE(FieldID, id))
}

// ConnectorName applies equality check predicate on the "connector_name" field. It's identical to ConnectorNameEQ.
func ConnectorName(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEQ(FieldConnectorName, v))
}

// SourceKey applies equality check predicate on the "source_key" field. It's identical to SourceKeyEQ.
func SourceKey(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEQ(FieldSourceKey, v))
}

// NextIndex applies equality check predicate on the "next_index" field. It's identical to NextIndexEQ.
func NextIndex(v int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEQ(FieldNextIndex, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConnectorNameEQ applies the EQ predicate on the "connector_name" field.
func ConnectorNameEQ(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEQ(FieldConnectorName, v))
}

// ConnectorNameNEQ applies the NEQ predicate on the "connector_name" field.
func ConnectorNameNEQ(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldNEQ(FieldConnectorName, v))
}

// ConnectorNameIn applies the In predicate on the "connector_name" field.
func ConnectorNameIn(vs ...string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldIn(FieldConnectorName, vs...))
}

// ConnectorNameNotIn applies the NotIn predicate on the "connector_name" field.
func ConnectorNameNotIn(vs ...string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldNotIn(FieldConnectorName, vs...))
}

// ConnectorNameGT applies the GT predicate on the "connector_name" field.
func ConnectorNameGT(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldGT(FieldConnectorName, v))
}

// ConnectorNameGTE applies the GTE predicate on the "connector_name" field.
func ConnectorNameGTE(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldGTE(FieldConnectorName, v))
}

// ConnectorNameLT applies the LT predicate on the "connector_name" field.
func ConnectorNameLT(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldLT(FieldConnectorName, v))
}

// ConnectorNameLTE applies the LTE predicate on the "connector_name" field.
func ConnectorNameLTE(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldLTE(FieldConnectorName, v))
}

// ConnectorNameContains applies the Contains predicate on the "connector_name" field.
func ConnectorNameContains(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldContains(FieldConnectorName, v))
}

// ConnectorNameHasPrefix applies the HasPrefix predicate on the "connector_name" field.
func ConnectorNameHasPrefix(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldHasPrefix(FieldConnectorName, v))
}

// ConnectorNameHasSuffix applies the HasSuffix predicate on the "connector_name" field.
func ConnectorNameHasSuffix(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldHasSuffix(FieldConnectorName, v))
}

// ConnectorNameEqualFold applies the EqualFold predicate on the "connector_name" field.
func ConnectorNameEqualFold(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEqualFold(FieldConnectorName, v))
}

// ConnectorNameContainsFold applies the ContainsFold predicate on the "connector_name" field.
func ConnectorNameContainsFold(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldContainsFold(FieldConnectorName, v))
}

// SourceKeyEQ applies the EQ predicate on the "source_key" field.
func SourceKeyEQ(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEQ(FieldSourceKey, v))
}

// SourceKeyNEQ applies the NEQ predicate on the "source_key" field.
func SourceKeyNEQ(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldNEQ(FieldSourceKey, v))
}

// SourceKeyIn applies the In predicate on the "source_key" field.
func SourceKeyIn(vs ...string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldIn(FieldSourceKey, vs...))
}

// SourceKeyNotIn applies the NotIn predicate on the "source_key" field.
func SourceKeyNotIn(vs ...string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldNotIn(FieldSourceKey, vs...))
}

// SourceKeyGT applies the GT predicate on the "source_key" field.
func SourceKeyGT(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldGT(FieldSourceKey, v))
}

// SourceKeyGTE applies the GTE predicate on the "source_key" field.
func SourceKeyGTE(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldGTE(FieldSourceKey, v))
}

// SourceKeyLT applies the LT predicate on the "source_key" field.
func SourceKeyLT(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldLT(FieldSourceKey, v))
}

// SourceKeyLTE applies the LTE predicate on the "source_key" field.
func SourceKeyLTE(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldLTE(FieldSourceKey, v))
}

// SourceKeyContains applies the Contains predicate on the "source_key" field.
func SourceKeyContains(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldContains(FieldSourceKey, v))
}

// SourceKeyHasPrefix applies the HasPrefix predicate on the "source_key" field.
func SourceKeyHasPrefix(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldHasPrefix(FieldSourceKey, v))
}

// SourceKeyHasSuffix applies the HasSuffix predicate on the "source_key" field.
func SourceKeyHasSuffix(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldHasSuffix(FieldSourceKey, v))
}

// SourceKeyEqualFold applies the EqualFold predicate on the "source_key" field.
func SourceKeyEqualFold(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEqualFold(FieldSourceKey, v))
}

// SourceKeyContainsFold applies the ContainsFold predicate on the "source_key" field.
func SourceKeyContainsFold(v string) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldContainsFold(FieldSourceKey, v))
}

// NextIndexEQ applies the EQ predicate on the "next_index" field.
func NextIndexEQ(v int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEQ(FieldNextIndex, v))
}

// NextIndexNEQ applies the NEQ predicate on the "next_index" field.
func NextIndexNEQ(v int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldNEQ(FieldNextIndex, v))
}

// NextIndexIn applies the In predicate on the "next_index" field.
func NextIndexIn(vs ...int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldIn(FieldNextIndex, vs...))
}

// NextIndexNotIn applies the NotIn predicate on the "next_index" field.
func NextIndexNotIn(vs ...int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldNotIn(FieldNextIndex, vs...))
}

// NextIndexGT applies the GT predicate on the "next_index" field.
func NextIndexGT(v int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldGT(FieldNextIndex, v))
}

// NextIndexGTE applies the GTE predicate on the "next_index" field.
func NextIndexGTE(v int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldGTE(FieldNextIndex, v))
}

// NextIndexLT applies the LT predicate on the "next_index" field.
func NextIndexLT(v int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldLT(FieldNextIndex, v))
}

// NextIndexLTE applies the LTE predicate on the "next_index" field.
func NextIndexLTE(v int) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldLTE(FieldNextIndex, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceCredentialCursor) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceCredentialCursor) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceCredentialCursor) predicate.SourceCredentialCursor {
	return predicate.SourceCredentialCursor(sql.NotPredicates(p))
}
