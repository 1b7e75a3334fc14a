// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the turnevent type in the database.
	Label = "turn_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldUserPreview holds the string denoting the user_preview field in the database.
	FieldUserPreview = "user_preview"
	// FieldMessagesAppended holds the string denoting the messages_appended field in the database.
	FieldMessagesAppended = "messages_appended"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldQuizPhase holds the string denoting the quiz_phase field in the database.
	FieldQuizPhase = "quiz_phase"
	// Table holds the table name of the turnevent in the database.
	Table = "turn_events"
)

// Columns holds all SQL columns for turnevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAgent,
	FieldUserPreview,
	FieldMessagesAppended,
	FieldCurrentStep,
	FieldQuizPhase,
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
	// AgentValidator is a validator for the "agent" field. It is called by the builders before save.
	AgentValidator func(string) error
	// DefaultUserPreview holds the default value on creation for the "user_preview" field.
	DefaultUserPreview string
	// DefaultMessagesAppended holds the default value on creation for the "messages_appended" field.
	DefaultMessagesAppended int
	// DefaultCurrentStep holds the default value on creation for the "current_step" field.
	DefaultCurrentStep int
	// DefaultQuizPhase holds the default value on creation for the "quiz_phase" field.
	DefaultQuizPhase string
)

// OrderOption defines the ordering options for the TurnEvent queries.
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

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByUserPreview orders the results by the user_preview field.
func ByUserPreview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserPreview, opts...).ToFunc()
}

// ByMessagesAppended orders the results by the messages_appended field.
func ByMessagesAppended(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessagesAppended, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByQuizPhase orders the results by the quiz_phase field.
func ByQuizPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizPhase, opts...).ToFunc()
}
