// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/coursepilot/ent/llmrequestevent"
	"github.com/abhisek/coursepilot/ent/schema"
	"github.com/abhisek/coursepilot/ent/sessionsnapshot"
	"github.com/abhisek/coursepilot/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessionsnapshotFields := schema.SessionSnapshot{}.Fields()
	_ = sessionsnapshotFields
	// sessionsnapshotDescSessionID is the schema descriptor for session_id field.
	sessionsnapshotDescSessionID := sessionsnapshotFields[0].Descriptor()
	// sessionsnapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionsnapshot.SessionIDValidator = sessionsnapshotDescSessionID.Validators[0].(func(string) error)
	// sessionsnapshotDescTimestamp is the schema descriptor for timestamp field.
	sessionsnapshotDescTimestamp := sessionsnapshotFields[1].Descriptor()
	// sessionsnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionsnapshot.DefaultTimestamp = sessionsnapshotDescTimestamp.Default.(func() time.Time)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[0].Descriptor()
	// turnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	turnevent.SessionIDValidator = turneventDescSessionID.Validators[0].(func(string) error)
	// turneventDescAgent is the schema descriptor for agent field.
	turneventDescAgent := turneventFields[1].Descriptor()
	// turnevent.AgentValidator is a validator for the "agent" field. It is called by the builders before save.
	turnevent.AgentValidator = turneventDescAgent.Validators[0].(func(string) error)
	// turneventDescUserPreview is the schema descriptor for user_preview field.
	turneventDescUserPreview := turneventFields[2].Descriptor()
	// turnevent.DefaultUserPreview holds the default value on creation for the user_preview field.
	turnevent.DefaultUserPreview = turneventDescUserPreview.Default.(string)
	// turneventDescMessagesAppended is the schema descriptor for messages_appended field.
	turneventDescMessagesAppended := turneventFields[3].Descriptor()
	// turnevent.DefaultMessagesAppended holds the default value on creation for the messages_appended field.
	turnevent.DefaultMessagesAppended = turneventDescMessagesAppended.Default.(int)
	// turneventDescCurrentStep is the schema descriptor for current_step field.
	turneventDescCurrentStep := turneventFields[4].Descriptor()
	// turnevent.DefaultCurrentStep holds the default value on creation for the current_step field.
	turnevent.DefaultCurrentStep = turneventDescCurrentStep.Default.(int)
	// turneventDescQuizPhase is the schema descriptor for quiz_phase field.
	turneventDescQuizPhase := turneventFields[5].Descriptor()
	// turnevent.DefaultQuizPhase holds the default value on creation for the quiz_phase field.
	turnevent.DefaultQuizPhase = turneventDescQuizPhase.Default.(string)
}
