// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldWordsSkipped holds the string denoting the words_skipped field in the database.
	FieldWordsSkipped = "words_skipped"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldMode,
	FieldWordCount,
	FieldWordsSkipped,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// DefaultWordCount holds the default value on creation for the "word_count" field.
	DefaultWordCount int
	// DefaultWordsSkipped holds the default value on creation for the "words_skipped" field.
	DefaultWordsSkipped int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByWordsSkipped orders the results by the words_skipped field.
func ByWordsSkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordsSkipped, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
