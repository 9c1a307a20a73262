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

// ProtocolCodec builds protocol-specific envelopes from wire-agnostic error
// payloads.
//
// The core error types never import a protocol SDK; they describe the
// envelope they need through this interface and let an adapter supply the
// concrete construction. The mcpx package provides the implementation backed
// by the official MCP Go SDK; hosts that do not ship the SDK simply pass no
// codec and receive a distinguishable "protocol unavailable" error instead of
// an envelope.
//
// Both methods return the constructed envelope as `any` because the concrete
// types belong to the adapter's SDK. Callers that want typed envelopes should
// use the adapter package directly.
type ProtocolCodec interface {
	// ToolResult builds an error-flagged MCP tool result carrying message as
	// its text content and payload as its structured content.
	ToolResult(message string, payload map[string]any) (any, error)

	// RPCError builds a JSON-RPC 2.0 error object from the resolved numeric
	// code, the message, and auxiliary data.
	RPCError(rpcCode int64, message string, data map[string]any) (any, error)
}
