// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"
	"vocadrill/ent/ledgersnapshot"
	"vocadrill/ent/llmrequestevent"
	"vocadrill/ent/schema"
	"vocadrill/ent/sessionevent"
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
	ledgersnapshotFields := schema.LedgerSnapshot{}.Fields()
	_ = ledgersnapshotFields
	// ledgersnapshotDescTimestamp is the schema descriptor for timestamp field.
	ledgersnapshotDescTimestamp := ledgersnapshotFields[1].Descriptor()
	// ledgersnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	ledgersnapshot.DefaultTimestamp = ledgersnapshotDescTimestamp.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[2].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescWordCount is the schema descriptor for word_count field.
	sessioneventDescWordCount := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultWordCount holds the default value on creation for the word_count field.
	sessionevent.DefaultWordCount = sessioneventDescWordCount.Default.(int)
	// sessioneventDescWordsSkipped is the schema descriptor for words_skipped field.
	sessioneventDescWordsSkipped := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultWordsSkipped holds the default value on creation for the words_skipped field.
	sessionevent.DefaultWordsSkipped = sessioneventDescWordsSkipped.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
