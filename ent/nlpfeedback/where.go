// Code generated by ent, DO NOT EDIT.

package nlpfeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLTE(FieldID, id))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldSourceName, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldEventID, v))
}

// Labeler applies equality check predicate on the "labeler" field. It's identical to LabelerEQ.
func Labeler(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldLabeler, v))
}

// LabelEventType applies equality check predicate on the "label_event_type" field. It's identical to LabelEventTypeEQ.
func LabelEventType(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldLabelEventType, v))
}

// LabelPolarity applies equality check predicate on the "label_polarity" field. It's identical to LabelPolarityEQ.
func LabelPolarity(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldLabelPolarity, v))
}

// LabelScore applies equality check predicate on the "label_score" field. It's identical to LabelScoreEQ.
func LabelScore(v float64) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldLabelScore, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldComment, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContainsFold(FieldSourceName, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContainsFold(FieldEventID, v))
}

// LabelerEQ applies the EQ predicate on the "labeler" field.
func LabelerEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldLabeler, v))
}

// LabelerNEQ applies the NEQ predicate on the "labeler" field.
func LabelerNEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNEQ(FieldLabeler, v))
}

// LabelerIn applies the In predicate on the "labeler" field.
func LabelerIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIn(FieldLabeler, vs...))
}

// LabelerNotIn applies the NotIn predicate on the "labeler" field.
func LabelerNotIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotIn(FieldLabeler, vs...))
}

// LabelerGT applies the GT predicate on the "labeler" field.
func LabelerGT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGT(FieldLabeler, v))
}

// LabelerGTE applies the GTE predicate on the "labeler" field.
func LabelerGTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGTE(FieldLabeler, v))
}

// LabelerLT applies the LT predicate on the "labeler" field.
func LabelerLT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLT(FieldLabeler, v))
}

// LabelerLTE applies the LTE predicate on the "labeler" field.
func LabelerLTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLTE(FieldLabeler, v))
}

// LabelerContains applies the Contains predicate on the "labeler" field.
func LabelerContains(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContains(FieldLabeler, v))
}

// LabelerHasPrefix applies the HasPrefix predicate on the "labeler" field.
func LabelerHasPrefix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasPrefix(FieldLabeler, v))
}

// LabelerHasSuffix applies the HasSuffix predicate on the "labeler" field.
func LabelerHasSuffix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasSuffix(FieldLabeler, v))
}

// LabelerIsNil applies the IsNil predicate on the "labeler" field.
func LabelerIsNil() predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIsNull(FieldLabeler))
}

// LabelerNotNil applies the NotNil predicate on the "labeler" field.
func LabelerNotNil() predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotNull(FieldLabeler))
}

// LabelerEqualFold applies the EqualFold predicate on the "labeler" field.
func LabelerEqualFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEqualFold(FieldLabeler, v))
}

// LabelerContainsFold applies the ContainsFold predicate on the "labeler" field.
func LabelerContainsFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContainsFold(FieldLabeler, v))
}

// LabelEventTypeEQ applies the EQ predicate on the "label_event_type" field.
func LabelEventTypeEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldLabelEventType, v))
}

// LabelEventTypeNEQ applies the NEQ predicate on the "label_event_type" field.
func LabelEventTypeNEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNEQ(FieldLabelEventType, v))
}

// LabelEventTypeIn applies the In predicate on the "label_event_type" field.
func LabelEventTypeIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIn(FieldLabelEventType, vs...))
}

// LabelEventTypeNotIn applies the NotIn predicate on the "label_event_type" field.
func LabelEventTypeNotIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotIn(FieldLabelEventType, vs...))
}

// LabelEventTypeGT applies the GT predicate on the "label_event_type" field.
func LabelEventTypeGT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGT(FieldLabelEventType, v))
}

// LabelEventTypeGTE applies the GTE predicate on the "label_event_type" field.
func LabelEventTypeGTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGTE(FieldLabelEventType, v))
}

// LabelEventTypeLT applies the LT predicate on the "label_event_type" field.
func LabelEventTypeLT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLT(FieldLabelEventType, v))
}

// LabelEventTypeLTE applies the LTE predicate on the "label_event_type" field.
func LabelEventTypeLTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLTE(FieldLabelEventType, v))
}

// LabelEventTypeContains applies the Contains predicate on the "label_event_type" field.
func LabelEventTypeContains(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContains(FieldLabelEventType, v))
}

// LabelEventTypeHasPrefix applies the HasPrefix predicate on the "label_event_type" field.
func LabelEventTypeHasPrefix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasPrefix(FieldLabelEventType, v))
}

// LabelEventTypeHasSuffix applies the HasSuffix predicate on the "label_event_type" field.
func LabelEventTypeHasSuffix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasSuffix(FieldLabelEventType, v))
}

// LabelEventTypeIsNil applies the IsNil predicate on the "label_event_type" field.
func LabelEventTypeIsNil() predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIsNull(FieldLabelEventType))
}

// LabelEventTypeNotNil applies the NotNil predicate on the "label_event_type" field.
func LabelEventTypeNotNil() predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotNull(FieldLabelEventType))
}

// LabelEventTypeEqualFold applies the EqualFold predicate on the "label_event_type" field.
func LabelEventTypeEqualFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEqualFold(FieldLabelEventType, v))
}

// LabelEventTypeContainsFold applies the ContainsFold predicate on the "label_event_type" field.
func LabelEventTypeContainsFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContainsFold(FieldLabelEventType, v))
}

// LabelPolarityEQ applies the EQ predicate on the "label_polarity" field.
func LabelPolarityEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldLabelPolarity, v))
}

// LabelPolarityNEQ applies the NEQ predicate on the "label_polarity" field.
func LabelPolarityNEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNEQ(FieldLabelPolarity, v))
}

// LabelPolarityIn applies the In predicate on the "label_polarity" field.
func LabelPolarityIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIn(FieldLabelPolarity, vs...))
}

// LabelPolarityNotIn applies the NotIn predicate on the "label_polarity" field.
func LabelPolarityNotIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotIn(FieldLabelPolarity, vs...))
}

// LabelPolarityGT applies the GT predicate on the "label_polarity" field.
func LabelPolarityGT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGT(FieldLabelPolarity, v))
}

// LabelPolarityGTE applies the GTE predicate on the "label_polarity" field.
func LabelPolarityGTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGTE(FieldLabelPolarity, v))
}

// LabelPolarityLT applies the LT predicate on the "label_polarity" field.
func LabelPolarityLT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLT(FieldLabelPolarity, v))
}

// LabelPolarityLTE applies the LTE predicate on the "label_polarity" field.
func LabelPolarityLTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLTE(FieldLabelPolarity, v))
}

// LabelPolarityContains applies the Contains predicate on the "label_polarity" field.
func LabelPolarityContains(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContains(FieldLabelPolarity, v))
}

// LabelPolarityHasPrefix applies the HasPrefix predicate on the "label_polarity" field.
func LabelPolarityHasPrefix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasPrefix(FieldLabelPolarity, v))
}

// LabelPolarityHasSuffix applies the HasSuffix predicate on the "label_polarity" field.
func LabelPolarityHasSuffix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasSuffix(FieldLabelPolarity, v))
}

// LabelPolarityIsNil applies the IsNil predicate on the "label_polarity" field.
func LabelPolarityIsNil() predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIsNull(FieldLabelPolarity))
}

// LabelPolarityNotNil applies the NotNil predicate on the "label_polarity" field.
func LabelPolarityNotNil() predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotNull(FieldLabelPolarity))
}

// LabelPolarityEqualFold applies the EqualFold predicate on the "label_polarity" field.
func LabelPolarityEqualFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEqualFold(FieldLabelPolarity, v))
}

// LabelPolarityContainsFold applies the ContainsFold predicate on the "label_polarity" field.
func LabelPolarityContainsFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContainsFold(FieldLabelPolarity, v))
}

// LabelScoreEQ applies the EQ predicate on the "label_score" field.
func LabelScoreEQ(v float64) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldLabelScore, v))
}

// LabelScoreNEQ applies the NEQ predicate on the "label_score" field.
func LabelScoreNEQ(v float64) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNEQ(FieldLabelScore, v))
}

// LabelScoreIn applies the In predicate on the "label_score" field.
func LabelScoreIn(vs ...float64) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIn(FieldLabelScore, vs...))
}

// LabelScoreNotIn applies the NotIn predicate on the "label_score" field.
func LabelScoreNotIn(vs ...float64) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotIn(FieldLabelScore, vs...))
}

// LabelScoreGT applies the GT predicate on the "label_score" field.
func LabelScoreGT(v float64) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGT(FieldLabelScore, v))
}

// LabelScoreGTE applies the GTE predicate on the "label_score" field.
func LabelScoreGTE(v float64) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGTE(FieldLabelScore, v))
}

// LabelScoreLT applies the LT predicate on the "label_score" field.
func LabelScoreLT(v float64) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLT(FieldLabelScore, v))
}

// LabelScoreLTE applies the LTE predicate on the "label_score" field.
func LabelScoreLTE(v float64) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLTE(FieldLabelScore, v))
}

// LabelScoreIsNil applies the IsNil predicate on the "label_score" field.
func LabelScoreIsNil() predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIsNull(FieldLabelScore))
}

// LabelScoreNotNil applies the NotNil predicate on the "label_score" field.
func LabelScoreNotNil() predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotNull(FieldLabelScore))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldContainsFold(FieldComment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NLPFeedback) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NLPFeedback) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NLPFeedback) predicate.NLPFeedback {
	return predicate.NLPFeedback(sql.NotPredicates(p))
}
