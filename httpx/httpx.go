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

// Package httpx renders mcperrors values as HTTP responses.
package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	mcperrors "github.com/code-wheel/mcp-error-codes"
)

// Writer is a thin adapter that knows how to turn an mcperrors value into an
// HTTP response. The status comes from the code taxonomy, the body is the
// plain data payload serialized as JSON, and a retry hint becomes a
// Retry-After header.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error details is exposed as-is. Higher-level handlers should apply
// policies if needed. Diagnostic context is never written (it is not part of
// the plain data payload).
type Writer struct{}

// Write serializes err and writes it to rw with the taxonomy-resolved
// status. A nil error writes nothing.
func (Writer) Write(rw http.ResponseWriter, err *mcperrors.Error) {
	if err == nil {
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	if ra := err.RetryAfterSeconds(); ra > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(ra))
	}
	rw.WriteHeader(err.HTTPStatus())

	b, _ := json.Marshal(err.ToPlainData())
	_, _ = rw.Write(b)
}

// WriteCollection serializes errs and writes it to rw. The status is the
// primary (first) error's; an empty collection writes the success-shaped
// payload with status 200.
func (Writer) WriteCollection(rw http.ResponseWriter, errs *mcperrors.Collection) {
	if errs == nil {
		return
	}

	status := http.StatusOK
	if primary, ok := errs.First(); ok {
		status = primary.HTTPStatus()
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)

	b, _ := json.Marshal(errs.ToPlainData())
	_, _ = rw.Write(b)
}
