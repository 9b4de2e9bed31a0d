// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"
	"vocadrill/ent/predicate"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldMode, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldWordCount, v))
}

// WordsSkipped applies equality check predicate on the "words_skipped" field. It's identical to WordsSkippedEQ.
func WordsSkipped(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldWordsSkipped, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldAction, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldMode, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldWordCount, v))
}

// WordsSkippedEQ applies the EQ predicate on the "words_skipped" field.
func WordsSkippedEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldWordsSkipped, v))
}

// WordsSkippedNEQ applies the NEQ predicate on the "words_skipped" field.
func WordsSkippedNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldWordsSkipped, v))
}

// WordsSkippedIn applies the In predicate on the "words_skipped" field.
func WordsSkippedIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldWordsSkipped, vs...))
}

// WordsSkippedNotIn applies the NotIn predicate on the "words_skipped" field.
func WordsSkippedNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldWordsSkipped, vs...))
}

// WordsSkippedGT applies the GT predicate on the "words_skipped" field.
func WordsSkippedGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldWordsSkipped, v))
}

// WordsSkippedGTE applies the GTE predicate on the "words_skipped" field.
func WordsSkippedGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldWordsSkipped, v))
}

// WordsSkippedLT applies the LT predicate on the "words_skipped" field.
func WordsSkippedLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldWordsSkipped, v))
}

// WordsSkippedLTE applies the LTE predicate on the "words_skipped" field.
func WordsSkippedLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldWordsSkipped, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.NotPredicates(p))
}
