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
	"errors"
	"fmt"
	"strings"

	"github.com/code-wheel/mcp-error-codes/code"
)

// Factory constructors for the common error shapes. Each fixes the code,
// composes the message deterministically from its inputs, and pre-populates
// the detail payload with the structured inputs so that converters and
// clients can act on them without parsing the message.
//
// Optional trailing parameters follow the zero-value-means-absent convention:
// pass "" (or nil) to omit them.

// NotFound reports that the entity of the given type and identifier does not
// exist.
func NotFound(entityType, identifier string) *Error {
	e := newError(code.NotFound,
		fmt.Sprintf("The %s '%s' was not found.", entityType, identifier))
	e.details["entity_type"] = entityType
	e.details["identifier"] = identifier
	return e
}

// AlreadyExists reports that an entity with the given identity is already
// present.
func AlreadyExists(entityType, identifier string) *Error {
	e := newError(code.AlreadyExists,
		fmt.Sprintf("A %s with ID '%s' already exists.", entityType, identifier))
	e.details["entity_type"] = entityType
	e.details["identifier"] = identifier
	return e
}

// Validation reports that field carries an invalid value. The field name
// also drives Collection.ForField filtering.
func Validation(field, reason string) *Error {
	e := newError(code.ValidationError,
		fmt.Sprintf("Invalid value for '%s': %s", field, reason))
	e.details["field"] = field
	e.details["reason"] = reason
	return e
}

// AccessDenied reports that the caller may not perform operation. The
// optional reason ("" to omit) is appended to the message but kept out of the
// details.
func AccessDenied(operation, reason string) *Error {
	msg := fmt.Sprintf("Access denied for operation: %s.", operation)
	if reason != "" {
		msg += " " + reason
	}
	e := newError(code.AccessDenied, msg)
	e.details["operation"] = operation
	return e
}

// InsufficientScope reports that the caller's credentials lack requiredScope.
// currentScopes may be nil or empty, which renders as "none".
func InsufficientScope(requiredScope string, currentScopes []string) *Error {
	current := "none"
	if len(currentScopes) > 0 {
		current = strings.Join(currentScopes, ", ")
	}
	e := newError(code.InsufficientScope,
		fmt.Sprintf("Insufficient scope. Required: '%s'. Current: %s.", requiredScope, current))
	e.details["required_scope"] = requiredScope
	if currentScopes == nil {
		currentScopes = []string{}
	}
	e.details["current_scopes"] = currentScopes
	return e
}

// RateLimited reports that the caller exceeded the limit of the given type.
// retryAfterSeconds <= 0 falls back to 60, so the error always carries a
// usable retry hint.
func RateLimited(limitType string, retryAfterSeconds int) *Error {
	if retryAfterSeconds <= 0 {
		retryAfterSeconds = 60
	}
	e := newError(code.RateLimitExceeded,
		fmt.Sprintf("Rate limit exceeded for %s. Please retry after %d seconds.", limitType, retryAfterSeconds))
	e.details["limit_type"] = limitType
	return e.WithRetryAfter(retryAfterSeconds)
}

// ReadOnly reports that the system rejects writes. configPath ("" to omit)
// names where the read-only switch lives.
func ReadOnly(configPath string) *Error {
	msg := "The system is in read-only mode and write operations are disabled."
	if configPath != "" {
		msg += fmt.Sprintf(" Read-only mode is configured in '%s'.", configPath)
	}
	e := newError(code.ReadOnlyMode, msg)
	if configPath != "" {
		e.details["config_path"] = configPath
	}
	return e
}

// ProtectedEntity reports that the entity is protected by policy and names
// the reason.
func ProtectedEntity(entityType, identifier, reason string) *Error {
	e := newError(code.EntityProtected,
		fmt.Sprintf("The %s '%s' is protected: %s", entityType, identifier, reason))
	e.details["entity_type"] = entityType
	e.details["identifier"] = identifier
	e.details["reason"] = reason
	return e
}

// EntityInUse reports that the entity is still referenced usageCount times.
// When forceAvailable is true the message advertises the force flag.
func EntityInUse(entityType, identifier string, usageCount int, forceAvailable bool) *Error {
	msg := fmt.Sprintf("The %s '%s' is currently used by %d items.", entityType, identifier, usageCount)
	if forceAvailable {
		msg += " Use force=true to delete anyway."
	}
	e := newError(code.EntityInUse, msg)
	e.details["entity_type"] = entityType
	e.details["identifier"] = identifier
	e.details["usage_count"] = usageCount
	e.details["force_available"] = forceAvailable
	return e
}

// MissingDependency reports that dependency, needed for requiredFor, is not
// available.
func MissingDependency(dependency, requiredFor string) *Error {
	e := newError(code.MissingDependency,
		fmt.Sprintf("The dependency '%s' required for %s is not available.", dependency, requiredFor))
	e.details["dependency"] = dependency
	e.details["required_for"] = requiredFor
	return e
}

// Internal wraps an unclassified server-side failure. The message is passed
// through verbatim.
func Internal(message string) *Error {
	return newError(code.InternalError, message)
}

// FromError converts an arbitrary Go error into an internal Error, keeping
// the cause for errors.Is / errors.As and recording the cause's dynamic type
// in the details for diagnostics. context ("" to omit) prefixes the message.
func FromError(err error, context string) *Error {
	if err == nil {
		err = errors.New("unknown error")
	}
	msg := err.Error()
	if context != "" {
		msg = context + ": " + msg
	}
	e := newError(code.InternalError, msg)
	e.details["exception"] = fmt.Sprintf("%T", err)
	e.cause = err
	return e
}

// Custom builds an error with an arbitrary code and message and no
// pre-populated details. Unregistered codes classify to the safe defaults
// (domain category, HTTP 500, JSON-RPC -32000, not recoverable).
func Custom(c code.Code, message string) *Error {
	return newError(c, message)
}
