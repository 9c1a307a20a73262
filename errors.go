/*
   Copyright 2025 The code-wheel Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mcperrors

import (
	"fmt"

	"github.com/code-wheel/mcp-error-codes/apis"
	"github.com/code-wheel/mcp-error-codes/code"
)

// Error is the canonical rich error value for MCP servers.
//
// It carries:
//   - code: normalized error code, fixed at construction (required);
//   - rawMessage: human-oriented description, fixed at construction;
//   - suggestion: optional remediation hint, appended to Message();
//   - retryAfter: optional retry delay in seconds for recoverable errors;
//   - details: structured data relevant to the error (failing field, entity
//     id, usage count); always surfaced in conversions;
//   - context: diagnostic key/value payload for logs, never shown to the end
//     consumer;
//   - cause: wrapped underlying error for errors.Is / errors.As.
//
// Errors are built through the factory constructors in factories.go and
// enriched through the fluent WithX mutators. Unlike value types that copy on
// write, the mutators modify the receiver in place and return the same
// instance, so construction chains stay cheap and the caller always holds the
// one authoritative value. The flip side is the usual one: an *Error is a
// plain mutable object with no internal locking, and sharing one across
// goroutines requires external serialization.
type Error struct {
	// code and rawMessage are fixed at construction. There is deliberately
	// no mutator for either.
	code       code.Code
	rawMessage string

	suggestion string
	retryAfter int
	cause      error

	context map[string]any
	details map[string]any
}

// Interface conformance. The concrete type stays out of other packages'
// signatures; they target these contracts instead.
var (
	_ error                 = (*Error)(nil)
	_ apis.CodedError       = (*Error)(nil)
	_ apis.DetailedError    = (*Error)(nil)
	_ apis.RecoverableError = (*Error)(nil)
)

// newError is the shared construction path for all factories.
func newError(c code.Code, msg string) *Error {
	return &Error{
		code:       c,
		rawMessage: msg,
		context:    map[string]any{},
		details:    map[string]any{},
	}
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<CODE>: <message>
//
// which keeps the value both human- and machine-scannable in logs. The
// message includes the suggestion when one is set.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.code, e.Message())
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains
// for errors built with FromError.
func (e *Error) Unwrap() error { return e.cause }

// Code returns the error code fixed at construction.
func (e *Error) Code() code.Code { return e.code }

// RawMessage returns the message exactly as composed at construction,
// without any suggestion appended.
func (e *Error) RawMessage() string { return e.rawMessage }

// Message returns the consumer-facing message: the raw message, with the
// suggestion appended after a single space when one is set.
func (e *Error) Message() string {
	if e.suggestion == "" {
		return e.rawMessage
	}
	return e.rawMessage + " " + e.suggestion
}

// Suggestion returns the remediation hint, or "" when none is set.
func (e *Error) Suggestion() string { return e.suggestion }

// RetryAfterSeconds returns the suggested retry delay in seconds.
// Zero means no retry hint was set.
func (e *Error) RetryAfterSeconds() int { return e.retryAfter }

// Details returns the structured detail payload. The returned map is the
// error's own storage: treat it as read-only and use WithDetail to modify.
func (e *Error) Details() map[string]any { return e.details }

// Context returns the diagnostic context payload. Same ownership rules as
// Details.
func (e *Error) Context() map[string]any { return e.context }

// Category returns the coarse classification of the error's code.
func (e *Error) Category() code.Category { return code.CategoryOf(e.code) }

// HTTPStatus returns the HTTP status associated with the error's code.
func (e *Error) HTTPStatus() int { return code.HTTPStatus(e.code) }

// JSONRPCCode returns the JSON-RPC 2.0 error number associated with the
// error's code.
func (e *Error) JSONRPCCode() int64 { return code.JSONRPCCode(e.code) }

// Recoverable reports whether retrying the failed operation may succeed.
func (e *Error) Recoverable() bool { return code.Recoverable(e.code) }

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.code) }

// ErrorDetails implements apis.DetailedError.
func (e *Error) ErrorDetails() map[string]any { return e.details }

// WithSuggestion sets the remediation hint, overwriting any previous one.
// Returns the same instance for chaining.
func (e *Error) WithSuggestion(text string) *Error {
	e.suggestion = text
	return e
}

// WithRetryAfter sets the suggested retry delay in seconds.
// Returns the same instance for chaining.
func (e *Error) WithRetryAfter(seconds int) *Error {
	e.retryAfter = seconds
	return e
}

// WithDetail sets one entry in the detail payload.
// Returns the same instance for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	e.details[key] = value
	return e
}

// WithContext merges kv into the diagnostic context. On key collision the
// caller's value wins. Returns the same instance for chaining.
func (e *Error) WithContext(kv map[string]any) *Error {
	for k, v := range kv {
		e.context[k] = v
	}
	return e
}

// ToPlainData returns the wire-agnostic payload for this error:
//
//	{success: false, error: <message>, code: <code>}
//
// plus "details" when the detail payload is non-empty and "retry_after" when
// a retry hint is set. Context is deliberately excluded: it is diagnostic
// data for logs, not for the consumer.
func (e *Error) ToPlainData() map[string]any {
	data := map[string]any{
		"success": false,
		"error":   e.Message(),
		"code":    string(e.code),
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.retryAfter > 0 {
		data["retry_after"] = e.retryAfter
	}
	return data
}
