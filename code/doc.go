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

// Package code defines the MCP error code taxonomy: the fixed registry of
// codes and the total classification functions over them.
//
// A "code" is the top-level, machine-readable classification of an error,
// such as "NOT_FOUND", "VALIDATION_ERROR" or "ACCESS_DENIED". Codes are
// meant to be:
//
//   - short and stable;
//   - uppercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and protocol envelopes.
//
// Every registered code has exactly one category, one HTTP status, one
// JSON-RPC 2.0 error number, and one recoverability flag. Codes outside the
// registry are legal to construct ("custom codes") and classify to safe
// defaults: category "domain", HTTP 500, JSON-RPC -32000, not recoverable.
// All classification functions are total and side-effect free.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every error MUST have a
// non-empty code.
package code
