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

package code

import (
	"reflect"
	"testing"
)

// classificationTable restates the authoritative mapping independently of
// registry.go so that an accidental edit on either side fails the test.
var classificationTable = []struct {
	code        Code
	category    Category
	httpStatus  int
	jsonRPCCode int64
	recoverable bool
}{
	{InsufficientScope, CategoryAccess, 403, -32001, false},
	{AdminRequired, CategoryAccess, 403, -32001, false},
	{AccessDenied, CategoryAccess, 403, -32001, false},
	{RateLimitExceeded, CategoryAccess, 429, -32003, true},
	{ReadOnlyMode, CategoryAccess, 403, -32004, false},

	{NotFound, CategoryResource, 404, -32002, false},
	{TemplateNotFound, CategoryResource, 404, -32002, false},
	{AlreadyExists, CategoryResource, 409, -32005, false},
	{EntityInUse, CategoryResource, 409, -32005, false},
	{EntityProtected, CategoryResource, 409, -32005, false},
	{MissingDependency, CategoryResource, 500, -32006, false},

	{ValidationError, CategoryValidation, 400, -32602, false},
	{InvalidName, CategoryValidation, 400, -32602, false},
	{InvalidFileType, CategoryValidation, 400, -32602, false},
	{MissingRequired, CategoryValidation, 400, -32602, false},
	{PayloadTooLarge, CategoryValidation, 413, -32009, false},

	{InternalError, CategoryOperation, 500, -32603, true},
	{OperationFailed, CategoryOperation, 500, -32011, false},
	{Timeout, CategoryOperation, 408, -32007, true},
	{ConfirmationRequired, CategoryOperation, 500, -32010, false},
	{InvalidTool, CategoryOperation, 400, -32601, false},
	{ExecutionFailed, CategoryOperation, 500, -32603, false},
	{InstantiationFailed, CategoryOperation, 500, -32603, false},

	{ServiceUnavailable, CategoryDomain, 503, -32008, true},
	{CronFailed, CategoryDomain, 500, -32011, false},
	{MigrationFailed, CategoryDomain, 500, -32011, false},
	{RecipeFailed, CategoryDomain, 500, -32011, false},
	{ConfigError, CategoryDomain, 500, -32011, false},
	{MediaError, CategoryDomain, 500, -32011, false},
}

func TestClassification_Table(t *testing.T) {
	for _, tt := range classificationTable {
		t.Run(string(tt.code), func(t *testing.T) {
			if !IsValid(tt.code) {
				t.Fatalf("IsValid(%q) = false", tt.code)
			}
			if got := CategoryOf(tt.code); got != tt.category {
				t.Fatalf("CategoryOf(%q) = %q, want %q", tt.code, got, tt.category)
			}
			if got := HTTPStatus(tt.code); got != tt.httpStatus {
				t.Fatalf("HTTPStatus(%q) = %d, want %d", tt.code, got, tt.httpStatus)
			}
			if got := JSONRPCCode(tt.code); got != tt.jsonRPCCode {
				t.Fatalf("JSONRPCCode(%q) = %d, want %d", tt.code, got, tt.jsonRPCCode)
			}
			if got := Recoverable(tt.code); got != tt.recoverable {
				t.Fatalf("Recoverable(%q) = %v, want %v", tt.code, got, tt.recoverable)
			}
		})
	}
}

func TestClassification_TableIsComplete(t *testing.T) {
	if len(classificationTable) != len(All()) {
		t.Fatalf("test table has %d codes, registry has %d", len(classificationTable), len(All()))
	}
}

func TestClassification_UnregisteredDefaults(t *testing.T) {
	unknown := []Code{
		"MY_CUSTOM_CODE",
		"SOMETHING_ELSE",
		"not_found", // lowercase variant of a registry member
		"",
	}
	for _, c := range unknown {
		if IsValid(c) {
			t.Fatalf("IsValid(%q) = true, want false", c)
		}
		if got := CategoryOf(c); got != CategoryDomain {
			t.Fatalf("CategoryOf(%q) = %q, want domain", c, got)
		}
		if got := HTTPStatus(c); got != DefaultHTTPStatus {
			t.Fatalf("HTTPStatus(%q) = %d, want %d", c, got, DefaultHTTPStatus)
		}
		if got := JSONRPCCode(c); got != DefaultJSONRPCCode {
			t.Fatalf("JSONRPCCode(%q) = %d, want %d", c, got, DefaultJSONRPCCode)
		}
		if Recoverable(c) {
			t.Fatalf("Recoverable(%q) = true, want false", c)
		}
	}
}

func TestRecoverable_ExactSet(t *testing.T) {
	want := map[Code]bool{
		RateLimitExceeded:  true,
		Timeout:            true,
		ServiceUnavailable: true,
		InternalError:      true,
	}
	for name, c := range All() {
		if got := Recoverable(c); got != want[c] {
			t.Fatalf("Recoverable(%s) = %v, want %v", name, got, want[c])
		}
	}
}

func TestAll_MemoizedIdentity(t *testing.T) {
	first := All()
	second := All()

	// Memoization contract: not just equal, the identical map.
	if reflect.ValueOf(first).Pointer() != reflect.ValueOf(second).Pointer() {
		t.Fatal("All() must return the same memoized map on every call")
	}
	if len(first) != len(registry) {
		t.Fatalf("All() has %d entries, registry has %d", len(first), len(registry))
	}
	for name, c := range first {
		if name != string(c) {
			t.Fatalf("All() key %q does not match code %q", name, c)
		}
	}
}

func TestClassification_Idempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		if CategoryOf(Timeout) != CategoryOperation {
			t.Fatal("CategoryOf must be pure")
		}
		if HTTPStatus(Timeout) != 408 {
			t.Fatal("HTTPStatus must be pure")
		}
		if JSONRPCCode(Timeout) != -32007 {
			t.Fatal("JSONRPCCode must be pure")
		}
	}
}
