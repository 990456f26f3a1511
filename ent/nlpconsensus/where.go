// Code generated by ent, DO NOT EDIT.

package nlpconsensus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLTE(FieldID, id))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldSourceName, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldEventID, v))
}

// ConsensusEventType applies equality check predicate on the "consensus_event_type" field. It's identical to ConsensusEventTypeEQ.
func ConsensusEventType(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldConsensusEventType, v))
}

// ConsensusPolarity applies equality check predicate on the "consensus_polarity" field. It's identical to ConsensusPolarityEQ.
func ConsensusPolarity(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldConsensusPolarity, v))
}

// ConsensusScore applies equality check predicate on the "consensus_score" field. It's identical to ConsensusScoreEQ.
func ConsensusScore(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldConsensusScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldConfidence, v))
}

// LabelCount applies equality check predicate on the "label_count" field. It's identical to LabelCountEQ.
func LabelCount(v int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldLabelCount, v))
}

// Conflict applies equality check predicate on the "conflict" field. It's identical to ConflictEQ.
func Conflict(v bool) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldConflict, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldContainsFold(FieldSourceName, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldContainsFold(FieldEventID, v))
}

// ConsensusEventTypeEQ applies the EQ predicate on the "consensus_event_type" field.
func ConsensusEventTypeEQ(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldConsensusEventType, v))
}

// ConsensusEventTypeNEQ applies the NEQ predicate on the "consensus_event_type" field.
func ConsensusEventTypeNEQ(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNEQ(FieldConsensusEventType, v))
}

// ConsensusEventTypeIn applies the In predicate on the "consensus_event_type" field.
func ConsensusEventTypeIn(vs ...string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldIn(FieldConsensusEventType, vs...))
}

// ConsensusEventTypeNotIn applies the NotIn predicate on the "consensus_event_type" field.
func ConsensusEventTypeNotIn(vs ...string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNotIn(FieldConsensusEventType, vs...))
}

// ConsensusEventTypeGT applies the GT predicate on the "consensus_event_type" field.
func ConsensusEventTypeGT(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGT(FieldConsensusEventType, v))
}

// ConsensusEventTypeGTE applies the GTE predicate on the "consensus_event_type" field.
func ConsensusEventTypeGTE(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGTE(FieldConsensusEventType, v))
}

// ConsensusEventTypeLT applies the LT predicate on the "consensus_event_type" field.
func ConsensusEventTypeLT(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLT(FieldConsensusEventType, v))
}

// ConsensusEventTypeLTE applies the LTE predicate on the "consensus_event_type" field.
func ConsensusEventTypeLTE(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLTE(FieldConsensusEventType, v))
}

// ConsensusEventTypeContains applies the Contains predicate on the "consensus_event_type" field.
func ConsensusEventTypeContains(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldContains(FieldConsensusEventType, v))
}

// ConsensusEventTypeHasPrefix applies the HasPrefix predicate on the "consensus_event_type" field.
func ConsensusEventTypeHasPrefix(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldHasPrefix(FieldConsensusEventType, v))
}

// ConsensusEventTypeHasSuffix applies the HasSuffix predicate on the "consensus_event_type" field.
func ConsensusEventTypeHasSuffix(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldHasSuffix(FieldConsensusEventType, v))
}

// ConsensusEventTypeEqualFold applies the EqualFold predicate on the "consensus_event_type" field.
func ConsensusEventTypeEqualFold(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEqualFold(FieldConsensusEventType, v))
}

// ConsensusEventTypeContainsFold applies the ContainsFold predicate on the "consensus_event_type" field.
func ConsensusEventTypeContainsFold(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldContainsFold(FieldConsensusEventType, v))
}

// ConsensusPolarityEQ applies the EQ predicate on the "consensus_polarity" field.
func ConsensusPolarityEQ(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldConsensusPolarity, v))
}

// ConsensusPolarityNEQ applies the NEQ predicate on the "consensus_polarity" field.
func ConsensusPolarityNEQ(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNEQ(FieldConsensusPolarity, v))
}

// ConsensusPolarityIn applies the In predicate on the "consensus_polarity" field.
func ConsensusPolarityIn(vs ...string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldIn(FieldConsensusPolarity, vs...))
}

// ConsensusPolarityNotIn applies the NotIn predicate on the "consensus_polarity" field.
func ConsensusPolarityNotIn(vs ...string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNotIn(FieldConsensusPolarity, vs...))
}

// ConsensusPolarityGT applies the GT predicate on the "consensus_polarity" field.
func ConsensusPolarityGT(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGT(FieldConsensusPolarity, v))
}

// ConsensusPolarityGTE applies the GTE predicate on the "consensus_polarity" field.
func ConsensusPolarityGTE(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGTE(FieldConsensusPolarity, v))
}

// ConsensusPolarityLT applies the LT predicate on the "consensus_polarity" field.
func ConsensusPolarityLT(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLT(FieldConsensusPolarity, v))
}

// ConsensusPolarityLTE applies the LTE predicate on the "consensus_polarity" field.
func ConsensusPolarityLTE(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLTE(FieldConsensusPolarity, v))
}

// ConsensusPolarityContains applies the Contains predicate on the "consensus_polarity" field.
func ConsensusPolarityContains(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldContains(FieldConsensusPolarity, v))
}

// ConsensusPolarityHasPrefix applies the HasPrefix predicate on the "consensus_polarity" field.
func ConsensusPolarityHasPrefix(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldHasPrefix(FieldConsensusPolarity, v))
}

// ConsensusPolarityHasSuffix applies the HasSuffix predicate on the "consensus_polarity" field.
func ConsensusPolarityHasSuffix(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldHasSuffix(FieldConsensusPolarity, v))
}

// ConsensusPolarityEqualFold applies the EqualFold predicate on the "consensus_polarity" field.
func ConsensusPolarityEqualFold(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEqualFold(FieldConsensusPolarity, v))
}

// ConsensusPolarityContainsFold applies the ContainsFold predicate on the "consensus_polarity" field.
func ConsensusPolarityContainsFold(v string) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldContainsFold(FieldConsensusPolarity, v))
}

// ConsensusScoreEQ applies the EQ predicate on the "consensus_score" field.
func ConsensusScoreEQ(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldConsensusScore, v))
}

// ConsensusScoreNEQ applies the NEQ predicate on the "consensus_score" field.
func ConsensusScoreNEQ(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNEQ(FieldConsensusScore, v))
}

// ConsensusScoreIn applies the In predicate on the "consensus_score" field.
func ConsensusScoreIn(vs ...float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldIn(FieldConsensusScore, vs...))
}

// ConsensusScoreNotIn applies the NotIn predicate on the "consensus_score" field.
func ConsensusScoreNotIn(vs ...float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNotIn(FieldConsensusScore, vs...))
}

// ConsensusScoreGT applies the GT predicate on the "consensus_score" field.
func ConsensusScoreGT(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGT(FieldConsensusScore, v))
}

// ConsensusScoreGTE applies the GTE predicate on the "consensus_score" field.
func ConsensusScoreGTE(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGTE(FieldConsensusScore, v))
}

// ConsensusScoreLT applies the LT predicate on the "consensus_score" field.
func ConsensusScoreLT(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLT(FieldConsensusScore, v))
}

// ConsensusScoreLTE applies the LTE predicate on the "consensus_score" field.
func ConsensusScoreLTE(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLTE(FieldConsensusScore, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLTE(FieldConfidence, v))
}

// LabelCountEQ applies the EQ predicate on the "label_count" field.
func LabelCountEQ(v int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldLabelCount, v))
}

// LabelCountNEQ applies the NEQ predicate on the "label_count" field.
func LabelCountNEQ(v int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNEQ(FieldLabelCount, v))
}

// LabelCountIn applies the In predicate on the "label_count" field.
func LabelCountIn(vs ...int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldIn(FieldLabelCount, vs...))
}

// LabelCountNotIn applies the NotIn predicate on the "label_count" field.
func LabelCountNotIn(vs ...int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNotIn(FieldLabelCount, vs...))
}

// LabelCountGT applies the GT predicate on the "label_count" field.
func LabelCountGT(v int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGT(FieldLabelCount, v))
}

// LabelCountGTE applies the GTE predicate on the "label_count" field.
func LabelCountGTE(v int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGTE(FieldLabelCount, v))
}

// LabelCountLT applies the LT predicate on the "label_count" field.
func LabelCountLT(v int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLT(FieldLabelCount, v))
}

// LabelCountLTE applies the LTE predicate on the "label_count" field.
func LabelCountLTE(v int) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLTE(FieldLabelCount, v))
}

// ConflictEQ applies the EQ predicate on the "conflict" field.
func ConflictEQ(v bool) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldConflict, v))
}

// ConflictNEQ applies the NEQ predicate on the "conflict" field.
func ConflictNEQ(v bool) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNEQ(FieldConflict, v))
}

// ConflictReasonsIsNil applies the IsNil predicate on the "conflict_reasons" field.
func ConflictReasonsIsNil() predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldIsNull(FieldConflictReasons))
}

// ConflictReasonsNotNil applies the NotNil predicate on the "conflict_reasons" field.
func ConflictReasonsNotNil() predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNotNull(FieldConflictReasons))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NLPConsensus) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NLPConsensus) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NLPConsensus) predicate.NLPConsensus {
	return predicate.NLPConsensus(sql.NotPredicates(p))
}
