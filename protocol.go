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

	"github.com/code-wheel/mcp-error-codes/apis"
)

// Protocol envelope conversions.
//
// The concrete envelope types belong to the MCP SDK, which is an optional
// collaborator: hosts that speak the protocol inject a codec (see the mcpx
// package), hosts that do not simply pass nil and get ErrProtocolUnavailable.
// This keeps the deployment condition "the protocol library is not wired in"
// distinguishable from any domain error the value itself describes.

var (
	// ErrProtocolUnavailable is returned by the envelope conversions when no
	// protocol codec was provided. Fix the wiring (import and pass a codec
	// such as mcpx.Codec), not the error value.
	ErrProtocolUnavailable = errors.New("mcperrors: protocol codec unavailable")

	// ErrEmptyCollection is returned when a JSON-RPC error envelope is
	// requested for a collection with no errors: there is no primary error
	// to report, and producing a silent placeholder would hide a caller bug.
	ErrEmptyCollection = errors.New("mcperrors: empty collection has no primary error")
)

// ToolResult builds an error-flagged MCP tool result for this error using
// codec. The envelope wraps the full message as text content and the plain
// data payload as structured content.
func (e *Error) ToolResult(codec apis.ProtocolCodec) (any, error) {
	if codec == nil {
		return nil, ErrProtocolUnavailable
	}
	return codec.ToolResult(e.Message(), e.ToPlainData())
}

// RPCError builds a JSON-RPC 2.0 error envelope for this error using codec.
// The auxiliary data is the plain data payload minus the success/error keys,
// which the JSON-RPC error object already expresses through its own shape.
func (e *Error) RPCError(codec apis.ProtocolCodec) (any, error) {
	if codec == nil {
		return nil, ErrProtocolUnavailable
	}
	return codec.RPCError(e.JSONRPCCode(), e.Message(), e.rpcData())
}

// ToolResult builds an error-flagged MCP tool result for the whole
// collection: the summary message as text content, the combined payload as
// structured content. An empty collection converts to a success-shaped
// payload, mirroring ToPlainData.
func (c *Collection) ToolResult(codec apis.ProtocolCodec) (any, error) {
	if codec == nil {
		return nil, ErrProtocolUnavailable
	}
	return codec.ToolResult(c.SummaryMessage(), c.ToPlainData())
}

// RPCError builds a JSON-RPC 2.0 error envelope for the collection, using
// the primary (first) error's JSON-RPC code and the collection summary as
// the message. Requesting an envelope for an empty collection is a usage
// error and returns ErrEmptyCollection.
func (c *Collection) RPCError(codec apis.ProtocolCodec) (any, error) {
	if codec == nil {
		return nil, ErrProtocolUnavailable
	}
	primary, ok := c.First()
	if !ok {
		return nil, ErrEmptyCollection
	}
	return codec.RPCError(primary.JSONRPCCode(), c.SummaryMessage(), c.rpcData())
}

// rpcData strips the keys that the JSON-RPC error object renders itself.
func (e *Error) rpcData() map[string]any {
	data := e.ToPlainData()
	delete(data, "success")
	delete(data, "error")
	return data
}

// rpcData strips the keys that the JSON-RPC error object renders itself.
func (c *Collection) rpcData() map[string]any {
	data := c.ToPlainData()
	delete(data, "success")
	delete(data, "error")
	return data
}
