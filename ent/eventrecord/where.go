// Code generated by ent, DO NOT EDIT.

package eventrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldID, id))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSourceName, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventID, v))
}

// Symbol applies equality check predicate on the "symbol" field. It's identical to SymbolEQ.
func Symbol(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSymbol, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventType, v))
}

// PublishTime applies equality check predicate on the "publish_time" field. It's identical to PublishTimeEQ.
func PublishTime(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldPublishTime, v))
}

// EffectiveTime applies equality check predicate on the "effective_time" field. It's identical to EffectiveTimeEQ.
func EffectiveTime(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEffectiveTime, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldConfidence, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldTitle, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSummary, v))
}

// RawRef applies equality check predicate on the "raw_ref" field. It's identical to RawRefEQ.
func RawRef(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldRawRef, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldSourceName, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldEventID, v))
}

// SymbolEQ applies the EQ predicate on the "symbol" field.
func SymbolEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSymbol, v))
}

// SymbolNEQ applies the NEQ predicate on the "symbol" field.
func SymbolNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldSymbol, v))
}

// SymbolIn applies the In predicate on the "symbol" field.
func SymbolIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldSymbol, vs...))
}

// SymbolNotIn applies the NotIn predicate on the "symbol" field.
func SymbolNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldSymbol, vs...))
}

// SymbolGT applies the GT predicate on the "symbol" field.
func SymbolGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldSymbol, v))
}

// SymbolGTE applies the GTE predicate on the "symbol" field.
func SymbolGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldSymbol, v))
}

// SymbolLT applies the LT predicate on the "symbol" field.
func SymbolLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldSymbol, v))
}

// SymbolLTE applies the LTE predicate on the "symbol" field.
func SymbolLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldSymbol, v))
}

// SymbolContains applies the Contains predicate on the "symbol" field.
func SymbolContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldSymbol, v))
}

// SymbolHasPrefix applies the HasPrefix predicate on the "symbol" field.
func SymbolHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldSymbol, v))
}

// SymbolHasSuffix applies the HasSuffix predicate on the "symbol" field.
func SymbolHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldSymbol, v))
}

// SymbolEqualFold applies the EqualFold predicate on the "symbol" field.
func SymbolEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldSymbol, v))
}

// SymbolContainsFold applies the ContainsFold predicate on the "symbol" field.
func SymbolContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldSymbol, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldEventType, v))
}

// PublishTimeEQ applies the EQ predicate on the "publish_time" field.
func PublishTimeEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldPublishTime, v))
}

// PublishTimeNEQ applies the NEQ predicate on the "publish_time" field.
func PublishTimeNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldPublishTime, v))
}

// PublishTimeIn applies the In predicate on the "publish_time" field.
func PublishTimeIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldPublishTime, vs...))
}

// PublishTimeNotIn applies the NotIn predicate on the "publish_time" field.
func PublishTimeNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldPublishTime, vs...))
}

// PublishTimeGT applies the GT predicate on the "publish_time" field.
func PublishTimeGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldPublishTime, v))
}

// PublishTimeGTE applies the GTE predicate on the "publish_time" field.
func PublishTimeGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldPublishTime, v))
}

// PublishTimeLT applies the LT predicate on the "publish_time" field.
func PublishTimeLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldPublishTime, v))
}

// PublishTimeLTE applies the LTE predicate on the "publish_time" field.
func PublishTimeLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldPublishTime, v))
}

// EffectiveTimeEQ applies the EQ predicate on the "effective_time" field.
func EffectiveTimeEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEffectiveTime, v))
}

// EffectiveTimeNEQ applies the NEQ predicate on the "effective_time" field.
func EffectiveTimeNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldEffectiveTime, v))
}

// EffectiveTimeIn applies the In predicate on the "effective_time" field.
func EffectiveTimeIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldEffectiveTime, vs...))
}

// EffectiveTimeNotIn applies the NotIn predicate on the "effective_time" field.
func EffectiveTimeNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldEffectiveTime, vs...))
}

// EffectiveTimeGT applies the GT predicate on the "effective_time" field.
func EffectiveTimeGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldEffectiveTime, v))
}

// EffectiveTimeGTE applies the GTE predicate on the "effective_time" field.
func EffectiveTimeGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldEffectiveTime, v))
}

// EffectiveTimeLT applies the LT predicate on the "effective_time" field.
func EffectiveTimeLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldEffectiveTime, v))
}

// EffectiveTimeLTE applies the LTE predicate on the "effective_time" field.
func EffectiveTimeLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldEffectiveTime, v))
}

// EffectiveTimeIsNil applies the IsNil predicate on the "effective_time" field.
func EffectiveTimeIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldEffectiveTime))
}

// EffectiveTimeNotNil applies the NotNil predicate on the "effective_time" field.
func EffectiveTimeNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldEffectiveTime))
}

// PolarityEQ applies the EQ predicate on the "polarity" field.
func PolarityEQ(v Polarity) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldPolarity, v))
}

// PolarityNEQ applies the NEQ predicate on the "polarity" field.
func PolarityNEQ(v Polarity) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldPolarity, v))
}

// PolarityIn applies the In predicate on the "polarity" field.
func PolarityIn(vs ...Polarity) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldPolarity, vs...))
}

// PolarityNotIn applies the NotIn predicate on the "polarity" field.
func PolarityNotIn(vs ...Polarity) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldPolarity, vs...))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldScore, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldConfidence, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldTitle, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldSummary, v))
}

// RawRefEQ applies the EQ predicate on the "raw_ref" field.
func RawRefEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldRawRef, v))
}

// RawRefNEQ applies the NEQ predicate on the "raw_ref" field.
func RawRefNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldRawRef, v))
}

// RawRefIn applies the In predicate on the "raw_ref" field.
func RawRefIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldRawRef, vs...))
}

// RawRefNotIn applies the NotIn predicate on the "raw_ref" field.
func RawRefNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldRawRef, vs...))
}

// RawRefGT applies the GT predicate on the "raw_ref" field.
func RawRefGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldRawRef, v))
}

// RawRefGTE applies the GTE predicate on the "raw_ref" field.
func RawRefGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldRawRef, v))
}

// RawRefLT applies the LT predicate on the "raw_ref" field.
func RawRefLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldRawRef, v))
}

// RawRefLTE applies the LTE predicate on the "raw_ref" field.
func RawRefLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldRawRef, v))
}

// RawRefContains applies the Contains predicate on the "raw_ref" field.
func RawRefContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldRawRef, v))
}

// RawRefHasPrefix applies the HasPrefix predicate on the "raw_ref" field.
func RawRefHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldRawRef, v))
}

// RawRefHasSuffix applies the HasSuffix predicate on the "raw_ref" field.
func RawRefHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldRawRef, v))
}

// RawRefIsNil applies the IsNil predicate on the "raw_ref" field.
func RawRefIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldRawRef))
}

// RawRefNotNil applies the NotNil predicate on the "raw_ref" field.
func RawRefNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldRawRef))
}

// RawRefEqualFold applies the EqualFold predicate on the "raw_ref" field.
func RawRefEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldRawRef, v))
}

// RawRefContainsFold applies the ContainsFold predicate on the "raw_ref" field.
func RawRefContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldRawRef, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldTags))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventRecord) predicate.EventRecord {
	return predicate.EventRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventRecord) predicate.EventRecord {
	return predicate.EventRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventRecord) predicate.EventRecord {
	return predicate.EventRecord(sql.NotPredicates(p))
}
