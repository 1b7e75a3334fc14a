// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursepilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldAgent, v))
}

// UserPreview applies equality check predicate on the "user_preview" field. It's identical to UserPreviewEQ.
func UserPreview(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldUserPreview, v))
}

// MessagesAppended applies equality check predicate on the "messages_appended" field. It's identical to MessagesAppendedEQ.
func MessagesAppended(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldMessagesAppended, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldCurrentStep, v))
}

// QuizPhase applies equality check predicate on the "quiz_phase" field. It's identical to QuizPhaseEQ.
func QuizPhase(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldQuizPhase, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldAgent, v))
}

// UserPreviewEQ applies the EQ predicate on the "user_preview" field.
func UserPreviewEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldUserPreview, v))
}

// UserPreviewNEQ applies the NEQ predicate on the "user_preview" field.
func UserPreviewNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldUserPreview, v))
}

// UserPreviewIn applies the In predicate on the "user_preview" field.
func UserPreviewIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldUserPreview, vs...))
}

// UserPreviewNotIn applies the NotIn predicate on the "user_preview" field.
func UserPreviewNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldUserPreview, vs...))
}

// UserPreviewGT applies the GT predicate on the "user_preview" field.
func UserPreviewGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldUserPreview, v))
}

// UserPreviewGTE applies the GTE predicate on the "user_preview" field.
func UserPreviewGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldUserPreview, v))
}

// UserPreviewLT applies the LT predicate on the "user_preview" field.
func UserPreviewLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldUserPreview, v))
}

// UserPreviewLTE applies the LTE predicate on the "user_preview" field.
func UserPreviewLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldUserPreview, v))
}

// UserPreviewContains applies the Contains predicate on the "user_preview" field.
func UserPreviewContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldUserPreview, v))
}

// UserPreviewHasPrefix applies the HasPrefix predicate on the "user_preview" field.
func UserPreviewHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldUserPreview, v))
}

// UserPreviewHasSuffix applies the HasSuffix predicate on the "user_preview" field.
func UserPreviewHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldUserPreview, v))
}

// UserPreviewEqualFold applies the EqualFold predicate on the "user_preview" field.
func UserPreviewEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldUserPreview, v))
}

// UserPreviewContainsFold applies the ContainsFold predicate on the "user_preview" field.
func UserPreviewContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldUserPreview, v))
}

// MessagesAppendedEQ applies the EQ predicate on the "messages_appended" field.
func MessagesAppendedEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldMessagesAppended, v))
}

// MessagesAppendedNEQ applies the NEQ predicate on the "messages_appended" field.
func MessagesAppendedNEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldMessagesAppended, v))
}

// MessagesAppendedIn applies the In predicate on the "messages_appended" field.
func MessagesAppendedIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldMessagesAppended, vs...))
}

// MessagesAppendedNotIn applies the NotIn predicate on the "messages_appended" field.
func MessagesAppendedNotIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldMessagesAppended, vs...))
}

// MessagesAppendedGT applies the GT predicate on the "messages_appended" field.
func MessagesAppendedGT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldMessagesAppended, v))
}

// MessagesAppendedGTE applies the GTE predicate on the "messages_appended" field.
func MessagesAppendedGTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldMessagesAppended, v))
}

// MessagesAppendedLT applies the LT predicate on the "messages_appended" field.
func MessagesAppendedLT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldMessagesAppended, v))
}

// MessagesAppendedLTE applies the LTE predicate on the "messages_appended" field.
func MessagesAppendedLTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldMessagesAppended, v))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldCurrentStep, v))
}

// QuizPhaseEQ applies the EQ predicate on the "quiz_phase" field.
func QuizPhaseEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldQuizPhase, v))
}

// QuizPhaseNEQ applies the NEQ predicate on the "quiz_phase" field.
func QuizPhaseNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldQuizPhase, v))
}

// QuizPhaseIn applies the In predicate on the "quiz_phase" field.
func QuizPhaseIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldQuizPhase, vs...))
}

// QuizPhaseNotIn applies the NotIn predicate on the "quiz_phase" field.
func QuizPhaseNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldQuizPhase, vs...))
}

// QuizPhaseGT applies the GT predicate on the "quiz_phase" field.
func QuizPhaseGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldQuizPhase, v))
}

// QuizPhaseGTE applies the GTE predicate on the "quiz_phase" field.
func QuizPhaseGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldQuizPhase, v))
}

// QuizPhaseLT applies the LT predicate on the "quiz_phase" field.
func QuizPhaseLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldQuizPhase, v))
}

// QuizPhaseLTE applies the LTE predicate on the "quiz_phase" field.
func QuizPhaseLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldQuizPhase, v))
}

// QuizPhaseContains applies the Contains predicate on the "quiz_phase" field.
func QuizPhaseContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldQuizPhase, v))
}

// QuizPhaseHasPrefix applies the HasPrefix predicate on the "quiz_phase" field.
func QuizPhaseHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldQuizPhase, v))
}

// QuizPhaseHasSuffix applies the HasSuffix predicate on the "quiz_phase" field.
func QuizPhaseHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldQuizPhase, v))
}

// QuizPhaseEqualFold applies the EqualFold predicate on the "quiz_phase" field.
func QuizPhaseEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldQuizPhase, v))
}

// QuizPhaseContainsFold applies the ContainsFold predicate on the "quiz_phase" field.
func QuizPhaseContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldQuizPhase, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.NotPredicates(p))
}
