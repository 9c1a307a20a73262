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

// Package grpcx maps mcperrors values onto gRPC statuses, for MCP hosts that
// also expose a gRPC management or admin surface.
package grpcx

import (
	"context"
	"encoding/json"
	"errors"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	mcperrors "github.com/code-wheel/mcp-error-codes"
	"github.com/code-wheel/mcp-error-codes/adapter"
	"github.com/code-wheel/mcp-error-codes/code"
)

// defaultGRPC maps each registered error code to a canonical gRPC status
// code. The values align with standard gRPC conventions while preserving the
// taxonomy's semantics: access codes become PermissionDenied, validation
// codes become InvalidArgument, rate and size limits become
// ResourceExhausted, and so on.
var defaultGRPC = map[code.Code]gcodes.Code{
	// Access.
	code.InsufficientScope: gcodes.PermissionDenied,
	code.AdminRequired:     gcodes.PermissionDenied,
	code.AccessDenied:      gcodes.PermissionDenied,
	code.RateLimitExceeded: gcodes.ResourceExhausted,
	code.ReadOnlyMode:      gcodes.PermissionDenied,

	// Resource.
	code.NotFound:          gcodes.NotFound,
	code.TemplateNotFound:  gcodes.NotFound,
	code.AlreadyExists:     gcodes.AlreadyExists,
	code.EntityInUse:       gcodes.FailedPrecondition,
	code.EntityProtected:   gcodes.FailedPrecondition,
	code.MissingDependency: gcodes.FailedPrecondition,

	// Validation.
	code.ValidationError: gcodes.InvalidArgument,
	code.InvalidName:     gcodes.InvalidArgument,
	code.InvalidFileType: gcodes.InvalidArgument,
	code.MissingRequired: gcodes.InvalidArgument,
	code.PayloadTooLarge: gcodes.ResourceExhausted,

	// Operation.
	code.InternalError:        gcodes.Internal,
	code.OperationFailed:      gcodes.Internal,
	code.Timeout:              gcodes.DeadlineExceeded,
	code.ConfirmationRequired: gcodes.FailedPrecondition,
	code.InvalidTool:          gcodes.Unimplemented,
	code.ExecutionFailed:      gcodes.Internal,
	code.InstantiationFailed:  gcodes.Internal,

	// Domain.
	code.ServiceUnavailable: gcodes.Unavailable,
	code.CronFailed:         gcodes.Internal,
	code.MigrationFailed:    gcodes.Internal,
	code.RecipeFailed:       gcodes.Internal,
	code.ConfigError:        gcodes.Internal,
	code.MediaError:         gcodes.Internal,
}

// GRPCStatus resolves a gRPC status code for c.
//
// Total: unregistered codes resolve to Internal, matching the taxonomy's
// domain/500 defaults.
func GRPCStatus(c code.Code) gcodes.Code {
	if v, ok := defaultGRPC[c]; ok {
		return v
	}
	return gcodes.Internal
}

// ToStatus converts e into a gRPC status carrying the error descriptor and
// its detail payload as structpb details.
//
// Detail attachment is best effort: values that do not survive a JSON round
// trip are dropped rather than failing the conversion, so the caller always
// gets a status with the right code and message.
func ToStatus(e *mcperrors.Error) *gstatus.Status {
	if e == nil {
		return nil
	}

	base := gstatus.New(GRPCStatus(e.Code()), e.Message())

	var details []*structpb.Struct
	if s, err := toStruct(adapter.ToDescriptor(e)); err == nil {
		details = append(details, s)
	}
	if len(e.Details()) > 0 {
		if s, err := toStruct(e.Details()); err == nil {
			details = append(details, s)
		}
	}

	for _, d := range details {
		if with, err := base.WithDetails(d); err == nil {
			base = with
		}
	}
	return base
}

// UnaryServerInterceptor returns a gRPC interceptor that maps
// *mcperrors.Error return values (anywhere in the unwrap chain) into gRPC
// statuses via ToStatus. Other errors pass through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var me *mcperrors.Error
		if !errors.As(err, &me) {
			// Not ours — return as-is.
			return nil, err
		}
		return nil, ToStatus(me).Err()
	}
}

// ExtractPayload pulls the structpb details out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractPayload(err error) ([]*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	var out []*structpb.Struct
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			out = append(out, s)
		}
	}
	return out, len(out) > 0
}

// toStruct converts v into a structpb.Struct via a JSON round trip. The
// round trip normalizes Go-typed values (ints, typed slices, view structs)
// into the JSON shapes structpb accepts.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}
