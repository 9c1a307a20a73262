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

package apis

// ErrorDescriptor is a flat, transport-friendly description of a classified
// error.
//
// This type intentionally uses plain strings and integers (not the internal
// Code / Category value types) so that it can live in the public "apis" layer
// and be used by adapters (HTTP, gRPC, MCP) and by structured loggers.
//
// Implementations may store a richer error internally, but this shape is what
// the rest of the system can rely on.
type ErrorDescriptor struct {
	// Code is the canonical error code, e.g. "NOT_FOUND",
	// "VALIDATION_ERROR", "ACCESS_DENIED".
	Code string `json:"code"`

	// Category is the coarse classification derived from the code:
	// "access", "resource", "validation", "operation", or "domain".
	Category string `json:"category"`

	// Message is the human-readable error message, with any suggestion
	// already appended.
	Message string `json:"message"`

	// HTTPStatus is the HTTP status that should be used when this error is
	// exposed over HTTP.
	HTTPStatus int `json:"http_status,omitempty"`

	// JSONRPCCode is the JSON-RPC 2.0 error number that should be used when
	// this error is exposed over JSON-RPC.
	JSONRPCCode int64 `json:"jsonrpc_code,omitempty"`

	// Recoverable reports whether a retry of the failed operation may
	// succeed.
	Recoverable bool `json:"recoverable,omitempty"`

	// RetryAfterSeconds is the suggested retry delay in seconds.
	// Zero means no specific delay was advertised.
	RetryAfterSeconds int `json:"retry_after_seconds,omitempty"`
}
