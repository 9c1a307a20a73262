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
	"fmt"

	"github.com/code-wheel/mcp-error-codes/code"
)

// Collection aggregates multiple Errors — typically batched validation
// failures — into one combined response.
//
// Insertion order is preserved and meaningful: the first element is the
// "primary" error used for single-error summaries and for the combined
// JSON-RPC code. Duplicates are allowed and preserved; there is no
// deduplication. The collection holds references to the Errors added to it,
// not copies, so enriching an Error after adding it is visible through the
// collection. Like Error, a Collection carries no internal locking.
type Collection struct {
	errs []*Error
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// FromBatch builds a collection from errs, appending each in order.
// Nil entries are skipped.
func FromBatch(errs []*Error) *Collection {
	c := NewCollection()
	for _, e := range errs {
		c.Add(e)
	}
	return c
}

// Add appends e to the collection. Nil errors are ignored.
// Returns the same collection for chaining.
func (c *Collection) Add(e *Error) *Collection {
	if e != nil {
		c.errs = append(c.errs, e)
	}
	return c
}

// AddValidation is shorthand for Add(Validation(field, reason)).
func (c *Collection) AddValidation(field, reason string) *Collection {
	return c.Add(Validation(field, reason))
}

// Merge appends every error of other, in order, after the collection's own
// elements. References are copied, not the errors themselves; other remains
// valid and unchanged. Returns the same collection for chaining.
func (c *Collection) Merge(other *Collection) *Collection {
	if other != nil {
		c.errs = append(c.errs, other.errs...)
	}
	return c
}

// HasErrors reports whether the collection contains at least one error.
func (c *Collection) HasErrors() bool { return len(c.errs) > 0 }

// IsEmpty reports whether the collection contains no errors.
func (c *Collection) IsEmpty() bool { return len(c.errs) == 0 }

// Count returns the number of errors in the collection.
func (c *Collection) Count() int { return len(c.errs) }

// All returns a snapshot of the collection's errors in insertion order.
// The slice is a copy; the Errors themselves are shared references.
func (c *Collection) All() []*Error {
	out := make([]*Error, len(c.errs))
	copy(out, c.errs)
	return out
}

// First returns the primary (first inserted) error. The second return value
// is false when the collection is empty; an empty collection is not an error
// condition here.
func (c *Collection) First() (*Error, bool) {
	if len(c.errs) == 0 {
		return nil, false
	}
	return c.errs[0], true
}

// ForField returns, in insertion order, every error whose "field" detail
// equals field. Errors without a field detail — anything not built by
// Validation or tagged via WithDetail — are excluded.
func (c *Collection) ForField(field string) []*Error {
	var out []*Error
	for _, e := range c.errs {
		if f, ok := e.details["field"].(string); ok && f == field {
			out = append(out, e)
		}
	}
	return out
}

// ByCategory returns, in insertion order, every error whose code classifies
// into category.
func (c *Collection) ByCategory(category code.Category) []*Error {
	var out []*Error
	for _, e := range c.errs {
		if e.Category() == category {
			out = append(out, e)
		}
	}
	return out
}

// Clear empties the collection. Returns the same collection for chaining.
func (c *Collection) Clear() *Collection {
	c.errs = nil
	return c
}

// SummaryMessage returns the one-line summary of the collection:
//
//   - empty: "No errors";
//   - single error: that error's full message;
//   - several errors of only the validation category:
//     "<n> validation errors occurred.";
//   - anything else: "<n> errors occurred.".
func (c *Collection) SummaryMessage() string {
	switch len(c.errs) {
	case 0:
		return "No errors"
	case 1:
		return c.errs[0].Message()
	}

	categories := make(map[code.Category]struct{})
	for _, e := range c.errs {
		categories[e.Category()] = struct{}{}
	}
	if len(categories) == 1 {
		if _, ok := categories[code.CategoryValidation]; ok {
			return fmt.Sprintf("%d validation errors occurred.", len(c.errs))
		}
	}
	return fmt.Sprintf("%d errors occurred.", len(c.errs))
}

// ToPlainData returns the wire-agnostic payload for the collection.
//
// Empty collections report success:
//
//	{success: true, errors: []}
//
// Non-empty collections report the summary at the top level and every error
// in insertion order:
//
//	{success: false, error: <summary>, code: <primary code>,
//	 error_count: <n>, errors: [{message, code, details}, ...]}
//
// Note the asymmetry: each per-error entry carries the *raw* message
// (suggestions stripped) while the top-level "error" carries the summary.
func (c *Collection) ToPlainData() map[string]any {
	if len(c.errs) == 0 {
		return map[string]any{
			"success": true,
			"errors":  []any{},
		}
	}

	items := make([]map[string]any, 0, len(c.errs))
	for _, e := range c.errs {
		items = append(items, map[string]any{
			"message": e.RawMessage(),
			"code":    string(e.Code()),
			"details": e.Details(),
		})
	}

	primary := c.errs[0]
	return map[string]any{
		"success":     false,
		"error":       c.SummaryMessage(),
		"code":        string(primary.Code()),
		"error_count": len(c.errs),
		"errors":      items,
	}
}
