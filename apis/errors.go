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

// CodedError represents an error that is classified into a well-defined,
// machine-readable error *code*.
//
// Codes are stable, uppercase, underscore-separated identifiers such as
// "NOT_FOUND", "VALIDATION_ERROR" or "ACCESS_DENIED". They are the primary
// value that adapters (HTTP, gRPC, MCP) use to decide which transport status
// to return to the client.
//
// Implementations are expected to return the canonical code string. Adapters
// should treat unknown or empty codes as internal/server errors — the code
// package's classification functions already do this (unregistered codes
// classify to the "domain" category with HTTP 500 / JSON-RPC -32000).
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	//
	// The returned value MUST be non-empty. Callers should not try to "fix"
	// or "guess" the value here; unregistered codes are handled by the total
	// classification functions at the boundary.
	ErrorCode() string
}

// DetailedError represents an error that exposes structured detail data.
// This is especially useful for validation scenarios where the caller needs
// to know *which* field failed and why, not just that something failed.
//
// Implementations SHOULD return a map that is safe to read and that the
// callee will not modify concurrently. Returning nil is allowed and simply
// means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() map[string]any
}

// RecoverableError represents an error that carries retry advice.
//
// The advice is purely informational: neither this library nor its adapters
// perform retries. Transport layers typically surface the hint as a
// Retry-After header or a retry_after payload field.
type RecoverableError interface {
	error

	// Recoverable reports whether retrying the failed operation may succeed.
	Recoverable() bool

	// RetryAfterSeconds returns the suggested delay before retrying, in
	// seconds. Zero means "no specific delay was advertised".
	RetryAfterSeconds() int
}
