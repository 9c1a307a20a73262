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

import "sync"

// Category is the coarse classification of an error code.
//
// Every code — registered or custom — belongs to exactly one category.
// Unregistered codes always classify as CategoryDomain.
type Category string

const (
	// CategoryAccess groups authorization, policy, and rate-limit failures.
	CategoryAccess Category = "access"

	// CategoryResource groups entity-state failures (missing, duplicate,
	// referenced, protected).
	CategoryResource Category = "resource"

	// CategoryValidation groups malformed-input failures.
	CategoryValidation Category = "validation"

	// CategoryOperation groups failures of the operation itself.
	CategoryOperation Category = "operation"

	// CategoryDomain groups host-subsystem failures and is the catch-all for
	// custom codes.
	CategoryDomain Category = "domain"
)

// String returns the canonical string representation of the category.
func (c Category) String() string { return string(c) }

// Defaults applied to any code that is not in the registry. Custom codes are
// legal to construct, so classification must stay total.
const (
	// DefaultHTTPStatus is the HTTP status for unregistered codes.
	DefaultHTTPStatus = 500

	// DefaultJSONRPCCode is the JSON-RPC error number for unregistered codes.
	// -32000 is the first code of the implementation-defined server range.
	DefaultJSONRPCCode int64 = -32000
)

// meta is the classification record attached to each registry member.
// The four fields are authoritative; adapters must not second-guess them.
type meta struct {
	category    Category
	httpStatus  int
	jsonRPCCode int64
	recoverable bool
}

// registry is the single source of truth for code classification.
//
// Every member has exactly one category, one HTTP status, one JSON-RPC code,
// and one recoverability flag. The table is fixed at compile time; there is
// deliberately no way to register codes at runtime.
//
// NOTE: ACCESS_DENIED, RATE_LIMIT_EXCEEDED and TIMEOUT map to -32001,
// -32003 and -32007 respectively. The three are easy to mix up; clients
// already depend on these exact numbers, so they must not be swapped.
var registry = map[Code]meta{
	// Access.
	InsufficientScope: {CategoryAccess, 403, -32001, false},
	AdminRequired:     {CategoryAccess, 403, -32001, false},
	AccessDenied:      {CategoryAccess, 403, -32001, false},
	RateLimitExceeded: {CategoryAccess, 429, -32003, true},
	ReadOnlyMode:      {CategoryAccess, 403, -32004, false},

	// Resource.
	NotFound:          {CategoryResource, 404, -32002, false},
	TemplateNotFound:  {CategoryResource, 404, -32002, false},
	AlreadyExists:     {CategoryResource, 409, -32005, false},
	EntityInUse:       {CategoryResource, 409, -32005, false},
	EntityProtected:   {CategoryResource, 409, -32005, false},
	MissingDependency: {CategoryResource, 500, -32006, false},

	// Validation.
	ValidationError: {CategoryValidation, 400, -32602, false},
	InvalidName:     {CategoryValidation, 400, -32602, false},
	InvalidFileType: {CategoryValidation, 400, -32602, false},
	MissingRequired: {CategoryValidation, 400, -32602, false},
	PayloadTooLarge: {CategoryValidation, 413, -32009, false},

	// Operation.
	InternalError:        {CategoryOperation, 500, -32603, true},
	OperationFailed:      {CategoryOperation, 500, -32011, false},
	Timeout:              {CategoryOperation, 408, -32007, true},
	ConfirmationRequired: {CategoryOperation, 500, -32010, false},
	InvalidTool:          {CategoryOperation, 400, -32601, false},
	ExecutionFailed:      {CategoryOperation, 500, -32603, false},
	InstantiationFailed:  {CategoryOperation, 500, -32603, false},

	// Domain.
	ServiceUnavailable: {CategoryDomain, 503, -32008, true},
	CronFailed:         {CategoryDomain, 500, -32011, false},
	MigrationFailed:    {CategoryDomain, 500, -32011, false},
	RecipeFailed:       {CategoryDomain, 500, -32011, false},
	ConfigError:        {CategoryDomain, 500, -32011, false},
	MediaError:         {CategoryDomain, 500, -32011, false},
}

var (
	allOnce  sync.Once
	allCodes map[string]Code
)

// All returns every registered code, keyed by its canonical name.
//
// The map is computed once and memoized for the process lifetime; repeated
// calls return the identical map. It is authoritative metadata, not a live
// registry: no entries appear after process start, and callers MUST treat the
// returned map as read-only.
func All() map[string]Code {
	allOnce.Do(func() {
		allCodes = make(map[string]Code, len(registry))
		for c := range registry {
			allCodes[string(c)] = c
		}
	})
	return allCodes
}

// IsValid reports whether c is a member of the registry.
//
// The match is exact and case-sensitive: "not_found" is not valid even though
// Normalize would map it onto a registry member.
func IsValid(c Code) bool {
	_, ok := registry[c]
	return ok
}

// CategoryOf returns the category of c.
//
// Total: unregistered codes return CategoryDomain.
func CategoryOf(c Code) Category {
	if m, ok := registry[c]; ok {
		return m.category
	}
	return CategoryDomain
}

// HTTPStatus returns the HTTP status code associated with c.
//
// Total: unregistered codes return DefaultHTTPStatus (500).
func HTTPStatus(c Code) int {
	if m, ok := registry[c]; ok {
		return m.httpStatus
	}
	return DefaultHTTPStatus
}

// JSONRPCCode returns the JSON-RPC 2.0 error number associated with c.
//
// Total: unregistered codes return DefaultJSONRPCCode (-32000).
func JSONRPCCode(c Code) int64 {
	if m, ok := registry[c]; ok {
		return m.jsonRPCCode
	}
	return DefaultJSONRPCCode
}

// Recoverable reports whether errors with code c are worth retrying.
//
// The recoverable set is fixed: RATE_LIMIT_EXCEEDED, TIMEOUT,
// SERVICE_UNAVAILABLE, and INTERNAL_ERROR. Everything else — including
// unregistered codes — is not recoverable. The flag is advisory data for the
// caller; this library performs no retries itself.
func Recoverable(c Code) bool {
	if m, ok := registry[c]; ok {
		return m.recoverable
	}
	return false
}
