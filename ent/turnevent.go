// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursepilot/ent/turnevent"
)

// TurnEvent is the model entity for the TurnEvent schema.
type TurnEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the session the turn belongs to
	SessionID string `json:"session_id,omitempty"`
	// Component that handled the turn: lecture, qa, assessment, remedial, welcome
	Agent string `json:"agent,omitempty"`
	// Short preview of the user input
	UserPreview string `json:"user_preview,omitempty"`
	// How many messages the turn added to the transcript
	MessagesAppended int `json:"messages_appended,omitempty"`
	// Outline cursor after the turn committed
	CurrentStep int `json:"current_step,omitempty"`
	// Quiz state after the turn: not_started, in_progress, completed
	QuizPhase    string `json:"quiz_phase,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TurnEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldID, turnevent.FieldSequence, turnevent.FieldMessagesAppended, turnevent.FieldCurrentStep:
			values[i] = new(sql.NullInt64)
		case turnevent.FieldSessionID, turnevent.FieldAgent, turnevent.FieldUserPreview, turnevent.FieldQuizPhase:
			values[i] = new(sql.NullString)
		case turnevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TurnEvent fields.
func (_m *TurnEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case turnevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case turnevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case turnevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case turnevent.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				_m.Agent = value.String
			}
		case turnevent.FieldUserPreview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_preview", values[i])
			} else if value.Valid {
				_m.UserPreview = value.String
			}
		case turnevent.FieldMessagesAppended:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field messages_appended", values[i])
			} else if value.Valid {
				_m.MessagesAppended = int(value.Int64)
			}
		case turnevent.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = int(value.Int64)
			}
		case turnevent.FieldQuizPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_phase", values[i])
			} else if value.Valid {
				_m.QuizPhase = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TurnEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TurnEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TurnEvent.
// Note that you need to call TurnEvent.Unwrap() before calling this method if this TurnEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TurnEvent) Update() *TurnEventUpdateOne {
	return NewTurnEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TurnEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TurnEvent) Unwrap() *TurnEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TurnEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TurnEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TurnEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("agent=")
	builder.WriteString(_m.Agent)
	builder.WriteString(", ")
	builder.WriteString("user_preview=")
	builder.WriteString(_m.UserPreview)
	builder.WriteString(", ")
	builder.WriteString("messages_appended=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessagesAppended))
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStep))
	builder.WriteString(", ")
	builder.WriteString("quiz_phase=")
	builder.WriteString(_m.QuizPhase)
	builder.WriteByte(')')
	return builder.String()
}

// TurnEvents is a parsable slice of TurnEvent.
type TurnEvents []*TurnEvent
