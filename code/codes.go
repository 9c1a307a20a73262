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

package code

// Access control error codes
//
// These codes describe authorization and policy failures: the caller is known
// but the requested action is not allowed right now.
const (
	// InsufficientScope indicates that the caller's token or session does not
	// carry the scope required by the operation.
	//
	// Maps to HTTP 403 and JSON-RPC -32001.
	InsufficientScope Code = "INSUFFICIENT_SCOPE"

	// AdminRequired indicates that the operation is restricted to
	// administrators.
	//
	// Maps to HTTP 403 and JSON-RPC -32001.
	AdminRequired Code = "ADMIN_REQUIRED"

	// AccessDenied indicates a generic authorization failure for the
	// requested operation. Use this when no more specific access code applies.
	//
	// Maps to HTTP 403 and JSON-RPC -32001.
	AccessDenied Code = "ACCESS_DENIED"

	// RateLimitExceeded indicates that the caller exceeded the allowed
	// request or action rate. This is the only access code that is
	// recoverable: clients may retry after the advertised delay.
	//
	// Maps to HTTP 429 and JSON-RPC -32003.
	RateLimitExceeded Code = "RATE_LIMIT_EXCEEDED"

	// ReadOnlyMode indicates that the system is configured read-only and
	// rejects all mutating operations.
	//
	// Maps to HTTP 403 and JSON-RPC -32004.
	ReadOnlyMode Code = "READ_ONLY_MODE"
)

// Resource error codes
//
// These codes describe the state of the entity the operation targets.
const (
	// NotFound indicates that the requested entity does not exist.
	// Use this for lookups by ID, name, or path.
	//
	// Maps to HTTP 404 and JSON-RPC -32002.
	NotFound Code = "NOT_FOUND"

	// TemplateNotFound indicates that a referenced template does not exist.
	//
	// Maps to HTTP 404 and JSON-RPC -32002.
	TemplateNotFound Code = "TEMPLATE_NOT_FOUND"

	// AlreadyExists indicates that the target entity cannot be created
	// because an entity with the same identity already exists.
	//
	// Maps to HTTP 409 and JSON-RPC -32005.
	AlreadyExists Code = "ALREADY_EXISTS"

	// EntityInUse indicates that the entity cannot be deleted or modified
	// because other entities still reference it. The error usually carries a
	// usage count and a hint whether force-deletion is available.
	//
	// Maps to HTTP 409 and JSON-RPC -32005.
	EntityInUse Code = "ENTITY_IN_USE"

	// EntityProtected indicates that the entity is protected by policy and
	// cannot be modified or deleted regardless of usage.
	//
	// Maps to HTTP 409 and JSON-RPC -32005.
	EntityProtected Code = "ENTITY_PROTECTED"

	// MissingDependency indicates that the operation requires another
	// component, extension, or entity that is not installed or available.
	//
	// Maps to HTTP 500 and JSON-RPC -32006.
	MissingDependency Code = "MISSING_DEPENDENCY"
)

// Validation error codes
//
// These codes describe malformed or rejected input.
const (
	// ValidationError indicates that an input value violates a structural or
	// semantic constraint. This is the general-purpose validation code; the
	// failing field and reason travel in the error details.
	//
	// Maps to HTTP 400 and JSON-RPC -32602.
	ValidationError Code = "VALIDATION_ERROR"

	// InvalidName indicates that a provided name does not conform to the
	// naming rules of the target entity.
	//
	// Maps to HTTP 400 and JSON-RPC -32602.
	InvalidName Code = "INVALID_NAME"

	// InvalidFileType indicates that an uploaded or referenced file has a
	// type that is not accepted.
	//
	// Maps to HTTP 400 and JSON-RPC -32602.
	InvalidFileType Code = "INVALID_FILE_TYPE"

	// MissingRequired indicates that a required field or parameter is absent.
	//
	// Maps to HTTP 400 and JSON-RPC -32602.
	MissingRequired Code = "MISSING_REQUIRED"

	// PayloadTooLarge indicates that the request payload exceeds the
	// configured size limit.
	//
	// Maps to HTTP 413 and JSON-RPC -32009.
	PayloadTooLarge Code = "PAYLOAD_TOO_LARGE"
)

// Operation error codes
//
// These codes describe failures of the operation itself rather than of its
// inputs or its target entity.
const (
	// InternalError indicates an unexpected server-side failure. This is the
	// fallback code for wrapped panics and unclassified errors, and it is
	// marked recoverable: the condition is usually transient.
	//
	// Maps to HTTP 500 and JSON-RPC -32603.
	InternalError Code = "INTERNAL_ERROR"

	// OperationFailed indicates that a well-formed operation ran and failed.
	//
	// Maps to HTTP 500 and JSON-RPC -32011.
	OperationFailed Code = "OPERATION_FAILED"

	// Timeout indicates that the operation could not complete within its
	// allotted time. Recoverable: clients may retry.
	//
	// Maps to HTTP 408 and JSON-RPC -32007.
	Timeout Code = "TIMEOUT"

	// ConfirmationRequired indicates that the operation is destructive or
	// irreversible and must be re-submitted with an explicit confirmation.
	//
	// Maps to HTTP 500 and JSON-RPC -32010.
	ConfirmationRequired Code = "CONFIRMATION_REQUIRED"

	// InvalidTool indicates that the requested tool does not exist or cannot
	// be invoked.
	//
	// Maps to HTTP 400 and JSON-RPC -32601 (method not found).
	InvalidTool Code = "INVALID_TOOL"

	// ExecutionFailed indicates that a tool or script execution failed.
	//
	// Maps to HTTP 500 and JSON-RPC -32603.
	ExecutionFailed Code = "EXECUTION_FAILED"

	// InstantiationFailed indicates that a component or template could not
	// be instantiated.
	//
	// Maps to HTTP 500 and JSON-RPC -32603.
	InstantiationFailed Code = "INSTANTIATION_FAILED"
)

// Domain error codes
//
// These codes describe failures of specific host subsystems. Unregistered
// custom codes also classify into the domain category.
const (
	// ServiceUnavailable indicates that a required service or downstream
	// dependency is temporarily unreachable. Recoverable.
	//
	// Maps to HTTP 503 and JSON-RPC -32008.
	ServiceUnavailable Code = "SERVICE_UNAVAILABLE"

	// CronFailed indicates that a scheduled job run failed.
	//
	// Maps to HTTP 500 and JSON-RPC -32011.
	CronFailed Code = "CRON_FAILED"

	// MigrationFailed indicates that a data or schema migration failed.
	//
	// Maps to HTTP 500 and JSON-RPC -32011.
	MigrationFailed Code = "MIGRATION_FAILED"

	// RecipeFailed indicates that a multi-step recipe aborted partway.
	//
	// Maps to HTTP 500 and JSON-RPC -32011.
	RecipeFailed Code = "RECIPE_FAILED"

	// ConfigError indicates invalid or inconsistent host configuration.
	//
	// Maps to HTTP 500 and JSON-RPC -32011.
	ConfigError Code = "CONFIG_ERROR"

	// MediaError indicates a failure in media handling (upload, resize,
	// storage).
	//
	// Maps to HTTP 500 and JSON-RPC -32011.
	MediaError Code = "MEDIA_ERROR"
)
