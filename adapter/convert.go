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

// Package adapter converts mcperrors values into the flat view types of the
// apis package.
package adapter

import (
	mcperrors "github.com/code-wheel/mcp-error-codes"
	"github.com/code-wheel/mcp-error-codes/apis"
)

// ToDescriptor converts a rich error into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or transport
// metadata (the grpcx interceptor attaches it as a status detail). It carries
// the logical code and category together with the resolved transport
// projections (HTTP status and JSON-RPC code) and the retry advice.
func ToDescriptor(e *mcperrors.Error) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:              string(e.Code()),
		Category:          e.Category().String(),
		Message:           e.Message(),
		HTTPStatus:        e.HTTPStatus(),
		JSONRPCCode:       e.JSONRPCCode(),
		Recoverable:       e.Recoverable(),
		RetryAfterSeconds: e.RetryAfterSeconds(),
	}
}
