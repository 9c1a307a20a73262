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
	"testing"
)

// recordingCodec captures what the conversions hand to the protocol layer.
type recordingCodec struct {
	toolMessage string
	toolPayload map[string]any

	rpcCode    int64
	rpcMessage string
	rpcData    map[string]any
}

func (r *recordingCodec) ToolResult(message string, payload map[string]any) (any, error) {
	r.toolMessage = message
	r.toolPayload = payload
	return "tool-envelope", nil
}

func (r *recordingCodec) RPCError(rpcCode int64, message string, data map[string]any) (any, error) {
	r.rpcCode = rpcCode
	r.rpcMessage = message
	r.rpcData = data
	return "rpc-envelope", nil
}

func TestConversions_NilCodec(t *testing.T) {
	e := Internal("boom")
	c := NewCollection().Add(e)

	if _, err := e.ToolResult(nil); !errors.Is(err, ErrProtocolUnavailable) {
		t.Fatalf("Error.ToolResult(nil) err = %v, want ErrProtocolUnavailable", err)
	}
	if _, err := e.RPCError(nil); !errors.Is(err, ErrProtocolUnavailable) {
		t.Fatalf("Error.RPCError(nil) err = %v, want ErrProtocolUnavailable", err)
	}
	if _, err := c.ToolResult(nil); !errors.Is(err, ErrProtocolUnavailable) {
		t.Fatalf("Collection.ToolResult(nil) err = %v, want ErrProtocolUnavailable", err)
	}
	if _, err := c.RPCError(nil); !errors.Is(err, ErrProtocolUnavailable) {
		t.Fatalf("Collection.RPCError(nil) err = %v, want ErrProtocolUnavailable", err)
	}
}

func TestError_RPCError_PayloadShape(t *testing.T) {
	codec := &recordingCodec{}
	e := RateLimited("api", 30).WithSuggestion("Slow down.")

	env, err := e.RPCError(codec)
	if err != nil {
		t.Fatalf("RPCError: %v", err)
	}
	if env != "rpc-envelope" {
		t.Fatal("codec result must be returned unchanged")
	}
	if codec.rpcCode != -32003 {
		t.Fatalf("rpc code = %d, want -32003", codec.rpcCode)
	}
	if codec.rpcMessage != e.Message() {
		t.Fatalf("rpc message = %q", codec.rpcMessage)
	}
	// success/error are stripped; code/details/retry_after remain.
	if _, ok := codec.rpcData["success"]; ok {
		t.Fatal("data must not carry success")
	}
	if _, ok := codec.rpcData["error"]; ok {
		t.Fatal("data must not carry error")
	}
	if codec.rpcData["code"] != "RATE_LIMIT_EXCEEDED" {
		t.Fatalf("data code = %v", codec.rpcData["code"])
	}
	if codec.rpcData["retry_after"] != 30 {
		t.Fatalf("data retry_after = %v", codec.rpcData["retry_after"])
	}
}

func TestError_ToolResult_UsesFullMessage(t *testing.T) {
	codec := &recordingCodec{}
	e := NotFound("user", "1").WithSuggestion("Check the ID")

	if _, err := e.ToolResult(codec); err != nil {
		t.Fatalf("ToolResult: %v", err)
	}
	if codec.toolMessage != "The user '1' was not found. Check the ID" {
		t.Fatalf("tool message = %q", codec.toolMessage)
	}
	if codec.toolPayload["success"] != false {
		t.Fatal("tool payload must be the full plain data")
	}
}

func TestCollection_RPCError(t *testing.T) {
	t.Run("empty collection is a usage error", func(t *testing.T) {
		_, err := NewCollection().RPCError(&recordingCodec{})
		if !errors.Is(err, ErrEmptyCollection) {
			t.Fatalf("err = %v, want ErrEmptyCollection", err)
		}
	})

	t.Run("uses primary code and summary", func(t *testing.T) {
		codec := &recordingCodec{}
		c := FromBatch([]*Error{
			Validation("email", "bad"),
			NotFound("user", "1"),
		})

		if _, err := c.RPCError(codec); err != nil {
			t.Fatalf("RPCError: %v", err)
		}
		if codec.rpcCode != -32602 {
			t.Fatalf("rpc code = %d, want primary's -32602", codec.rpcCode)
		}
		if codec.rpcMessage != "2 errors occurred." {
			t.Fatalf("rpc message = %q", codec.rpcMessage)
		}
		if codec.rpcData["error_count"] != 2 {
			t.Fatalf("data error_count = %v", codec.rpcData["error_count"])
		}
	})
}

func TestCollection_ToolResult_Summary(t *testing.T) {
	codec := &recordingCodec{}
	c := NewCollection().
		AddValidation("email", "bad").
		AddValidation("name", "bad")

	if _, err := c.ToolResult(codec); err != nil {
		t.Fatalf("ToolResult: %v", err)
	}
	if codec.toolMessage != "2 validation errors occurred." {
		t.Fatalf("tool message = %q", codec.toolMessage)
	}
	if codec.toolPayload["error_count"] != 2 {
		t.Fatalf("tool payload error_count = %v", codec.toolPayload["error_count"])
	}
}
