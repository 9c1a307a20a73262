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

// Package mcpx converts mcperrors values into Model Context Protocol
// envelopes using the official MCP Go SDK.
//
// It is the one package in this module that imports the SDK. Hosts that link
// it get typed CallToolResult / jsonrpc.Error constructors and the Codec
// implementation of apis.ProtocolCodec; hosts that do not link it keep a
// protocol-free core, and the root package's conversions report
// mcperrors.ErrProtocolUnavailable when invoked without a codec.
package mcpx

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	mcperrors "github.com/code-wheel/mcp-error-codes"
	"github.com/code-wheel/mcp-error-codes/apis"
)

// Codec builds MCP envelopes from wire-agnostic error payloads. It is
// stateless; the zero value is ready to use and safe for concurrent use.
type Codec struct{}

var _ apis.ProtocolCodec = Codec{}

// ToolResult implements apis.ProtocolCodec. The returned value is a
// *mcp.CallToolResult with IsError set, the message as text content, and the
// payload as structured content.
func (Codec) ToolResult(message string, payload map[string]any) (any, error) {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		StructuredContent: payload,
	}, nil
}

// RPCError implements apis.ProtocolCodec. The returned value is a
// *jsonrpc.Error; data is serialized into the error's auxiliary data field.
func (Codec) RPCError(rpcCode int64, message string, data map[string]any) (any, error) {
	rpcErr := &jsonrpc.Error{
		Code:    rpcCode,
		Message: message,
	}
	if len(data) > 0 {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("mcpx: encode error data: %w", err)
		}
		rpcErr.Data = raw
	}
	return rpcErr, nil
}

// ToolResult converts e into an error-flagged MCP tool result.
func ToolResult(e *mcperrors.Error) *mcp.CallToolResult {
	// Codec.ToolResult cannot fail: the payload travels as structured
	// content without serialization.
	env, _ := e.ToolResult(Codec{})
	return env.(*mcp.CallToolResult)
}

// CollectionToolResult converts c into an error-flagged MCP tool result
// carrying the collection summary and the combined payload.
func CollectionToolResult(c *mcperrors.Collection) *mcp.CallToolResult {
	env, _ := c.ToolResult(Codec{})
	return env.(*mcp.CallToolResult)
}

// RPCError converts e into a JSON-RPC 2.0 error object. It fails only when
// the error's details cannot be serialized to JSON.
func RPCError(e *mcperrors.Error) (*jsonrpc.Error, error) {
	env, err := e.RPCError(Codec{})
	if err != nil {
		return nil, err
	}
	return env.(*jsonrpc.Error), nil
}

// CollectionRPCError converts c into a JSON-RPC 2.0 error object using the
// primary error's code and the collection summary. An empty collection
// returns mcperrors.ErrEmptyCollection.
func CollectionRPCError(c *mcperrors.Collection) (*jsonrpc.Error, error) {
	env, err := c.RPCError(Codec{})
	if err != nil {
		return nil, err
	}
	return env.(*jsonrpc.Error), nil
}

// ErrorResponse wraps e into a full JSON-RPC response for the request
// identified by id.
func ErrorResponse(id jsonrpc.ID, e *mcperrors.Error) (*jsonrpc.Response, error) {
	rpcErr, err := RPCError(e)
	if err != nil {
		return nil, err
	}
	return &jsonrpc.Response{
		ID:    id,
		Error: rpcErr,
	}, nil
}
