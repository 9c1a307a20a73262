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

// Package mcperrors standardizes error representation for servers
// implementing the Model Context Protocol.
//
// It provides three things:
//
//   - a fixed taxonomy of error codes with total classification functions
//     (category, HTTP status, JSON-RPC 2.0 error number, recoverability) in
//     the code subpackage;
//   - Error, a rich error value built through factory constructors and
//     enriched through fluent mutators;
//   - Collection, an ordered aggregate of Errors with a combined summary and
//     payload, for batched failures such as multi-field validation.
//
// Typical usage in a tool handler:
//
//	err := mcperrors.NotFound("user", "123").
//		WithSuggestion("Check the ID and try again.").
//		WithContext(map[string]any{"request_id": reqID})
//	return mcpx.ToolResult(err), nil
//
// and in batched validation:
//
//	errs := mcperrors.NewCollection().
//		AddValidation("email", "must be a valid address").
//		AddValidation("name", "must not be empty")
//	if errs.HasErrors() {
//		return mcpx.CollectionToolResult(errs), nil
//	}
//
// Everything in this package is pure in-process computation: no I/O, no
// logging, no retries. HTTP, gRPC, and MCP protocol surfaces live in the
// httpx, grpcx, and mcpx adapter packages.
package mcperrors
