// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"vocadrill/ent/ledgersnapshot"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// LedgerSnapshot is the model entity for the LedgerSnapshot schema.
type LedgerSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Event sequence number at the time of the save
	Sequence int64 `json:"sequence,omitempty"`
	// When the ledger was saved
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Full progress ledger as JSON
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LedgerSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ledgersnapshot.FieldData:
			values[i] = new([]byte)
		case ledgersnapshot.FieldID, ledgersnapshot.FieldSequence:
			values[i] = new(sql.NullInt64)
		case ledgersnapshot.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LedgerSnapshot fields.
func (_m *LedgerSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ledgersnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ledgersnapshot.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case ledgersnapshot.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case ledgersnapshot.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LedgerSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *LedgerSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LedgerSnapshot.
// Note that you need to call LedgerSnapshot.Unwrap() before calling this method if this LedgerSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LedgerSnapshot) Update() *LedgerSnapshotUpdateOne {
	return NewLedgerSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LedgerSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LedgerSnapshot) Unwrap() *LedgerSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LedgerSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LedgerSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("LedgerSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// LedgerSnapshots is a parsable slice of LedgerSnapshot.
type LedgerSnapshots []*LedgerSnapshot
