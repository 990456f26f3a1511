// Code generated by ent, DO NOT EDIT.

package eventsource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EventSource {
	return predicate.EventSource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EventSource {
	return predicate.EventSource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EventSource {
	return predicate.EventSource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EventSource {
	return predicate.EventSource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EventSource {
	return predicate.EventSource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EventSource {
	return predicate.EventSource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EventSource {
	return predicate.EventSource(sql.FieldLTE(FieldID, id))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldSourceName, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldProvider, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldTimezone, v))
}

// IngestionLagMinutes applies equality check predicate on the "ingestion_lag_minutes" field. It's identical to IngestionLagMinutesEQ.
func IngestionLagMinutes(v int) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldIngestionLagMinutes, v))
}

// ReliabilityScore applies equality check predicate on the "reliability_score" field. It's identical to ReliabilityScoreEQ.
func ReliabilityScore(v float64) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldReliabilityScore, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldCreatedBy, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.EventSource {
	return predicate.EventSource(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.EventSource {
	return predicate.EventSource(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldContainsFold(FieldSourceName, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.EventSource {
	return predicate.EventSource(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.EventSource {
	return predicate.EventSource(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.EventSource {
	return predicate.EventSource(sql.FieldNotIn(FieldSourceType, vs...))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.EventSource {
	return predicate.EventSource(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.EventSource {
	return predicate.EventSource(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.EventSource {
	return predicate.EventSource(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.EventSource {
	return predicate.EventSource(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldContainsFold(FieldProvider, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.EventSource {
	return predicate.EventSource(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.EventSource {
	return predicate.EventSource(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldContainsFold(FieldTimezone, v))
}

// IngestionLagMinutesEQ applies the EQ predicate on the "ingestion_lag_minutes" field.
func IngestionLagMinutesEQ(v int) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldIngestionLagMinutes, v))
}

// IngestionLagMinutesNEQ applies the NEQ predicate on the "ingestion_lag_minutes" field.
func IngestionLagMinutesNEQ(v int) predicate.EventSource {
	return predicate.EventSource(sql.FieldNEQ(FieldIngestionLagMinutes, v))
}

// IngestionLagMinutesIn applies the In predicate on the "ingestion_lag_minutes" field.
func IngestionLagMinutesIn(vs ...int) predicate.EventSource {
	return predicate.EventSource(sql.FieldIn(FieldIngestionLagMinutes, vs...))
}

// IngestionLagMinutesNotIn applies the NotIn predicate on the "ingestion_lag_minutes" field.
func IngestionLagMinutesNotIn(vs ...int) predicate.EventSource {
	return predicate.EventSource(sql.FieldNotIn(FieldIngestionLagMinutes, vs...))
}

// IngestionLagMinutesGT applies the GT predicate on the "ingestion_lag_minutes" field.
func IngestionLagMinutesGT(v int) predicate.EventSource {
	return predicate.EventSource(sql.FieldGT(FieldIngestionLagMinutes, v))
}

// IngestionLagMinutesGTE applies the GTE predicate on the "ingestion_lag_minutes" field.
func IngestionLagMinutesGTE(v int) predicate.EventSource {
	return predicate.EventSource(sql.FieldGTE(FieldIngestionLagMinutes, v))
}

// IngestionLagMinutesLT applies the LT predicate on the "ingestion_lag_minutes" field.
func IngestionLagMinutesLT(v int) predicate.EventSource {
	return predicate.EventSource(sql.FieldLT(FieldIngestionLagMinutes, v))
}

// IngestionLagMinutesLTE applies the LTE predicate on the "ingestion_lag_minutes" field.
func IngestionLagMinutesLTE(v int) predicate.EventSource {
	return predicate.EventSource(sql.FieldLTE(FieldIngestionLagMinutes, v))
}

// ReliabilityScoreEQ applies the EQ predicate on the "reliability_score" field.
func ReliabilityScoreEQ(v float64) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldReliabilityScore, v))
}

// ReliabilityScoreNEQ applies the NEQ predicate on the "reliability_score" field.
func ReliabilityScoreNEQ(v float64) predicate.EventSource {
	return predicate.EventSource(sql.FieldNEQ(FieldReliabilityScore, v))
}

// ReliabilityScoreIn applies the In predicate on the "reliability_score" field.
func ReliabilityScoreIn(vs ...float64) predicate.EventSource {
	return predicate.EventSource(sql.FieldIn(FieldReliabilityScore, vs...))
}

// ReliabilityScoreNotIn applies the NotIn predicate on the "reliability_score" field.
func ReliabilityScoreNotIn(vs ...float64) predicate.EventSource {
	return predicate.EventSource(sql.FieldNotIn(FieldReliabilityScore, vs...))
}

// ReliabilityScoreGT applies the GT predicate on the "reliability_score" field.
func ReliabilityScoreGT(v float64) predicate.EventSource {
	return predicate.EventSource(sql.FieldGT(FieldReliabilityScore, v))
}

// ReliabilityScoreGTE applies the GTE predicate on the "reliability_score" field.
func ReliabilityScoreGTE(v float64) predicate.EventSource {
	return predicate.EventSource(sql.FieldGTE(FieldReliabilityScore, v))
}

// ReliabilityScoreLT applies the LT predicate on the "reliability_score" field.
func ReliabilityScoreLT(v float64) predicate.EventSource {
	return predicate.EventSource(sql.FieldLT(FieldReliabilityScore, v))
}

// ReliabilityScoreLTE applies the LTE predicate on the "reliability_score" field.
func ReliabilityScoreLTE(v float64) predicate.EventSource {
	return predicate.EventSource(sql.FieldLTE(FieldReliabilityScore, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.EventSource {
	return predicate.EventSource(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.EventSource {
	return predicate.EventSource(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.EventSource {
	return predicate.EventSource(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.EventSource {
	return predicate.EventSource(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldContainsFold(FieldCreatedBy, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.EventSource {
	return predicate.EventSource(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.EventSource {
	return predicate.EventSource(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.EventSource {
	return predicate.EventSource(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.EventSource {
	return predicate.EventSource(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.EventSource {
	return predicate.EventSource(sql.FieldContainsFold(FieldNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EventSource {
	return predicate.EventSource(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventSource) predicate.EventSource {
	return predicate.EventSource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventSource) predicate.EventSource {
	return predicate.EventSource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventSource) predicate.EventSource {
	return predicate.EventSource(sql.NotPredicates(p))
}
