package sqlgen

import (
	"errors"
	"strings"

	"github.com/leapstack-labs/leapddl/pkg/statement"
)

type fieldErrors struct {
	field string
	errs  []error
}

// ValidationResult accumulates problems per field. Fields keep the order in
// which they were first reported. An empty result means the statement is valid.
// All checks run; nothing short-circuits.
type ValidationResult struct {
	typ    statement.Type
	fields []fieldErrors
}

// NewValidationResult returns an empty result for a statement type.
func NewValidationResult(t statement.Type) *ValidationResult {
	return &ValidationResult{typ: t}
}

// AddError records err against field.
func (r *ValidationResult) AddError(field string, err error) {
	for i := range r.fields {
		if r.fields[i].field == field {
			r.fields[i].errs = append(r.fields[i].errs, err)
			return
		}
	}
	r.fields = append(r.fields, fieldErrors{field: field, errs: []error{err}})
}

// Add records a message against field.
func (r *ValidationResult) Add(field, message string) {
	r.AddError(field, errors.New(message))
}

// CheckRequired records a MissingFieldError when present is false.
func (r *ValidationResult) CheckRequired(field string, present bool) {
	if !present {
		r.AddError(field, &MissingFieldError{Field: field})
	}
}

// CheckRequiredString records a MissingFieldError when value is blank after trimming.
func (r *ValidationResult) CheckRequiredString(field, value string) {
	r.CheckRequired(field, strings.TrimSpace(value) != "")
}

// HasErrors reports whether any problem was recorded.
func (r *ValidationResult) HasErrors() bool {
	return r != nil && len(r.fields) > 0
}

// Fields returns the fields with problems in report order.
func (r *ValidationResult) Fields() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.field
	}
	return out
}

// Messages returns the messages recorded for field.
func (r *ValidationResult) Messages(field string) []string {
	if r == nil {
		return nil
	}
	for _, f := range r.fields {
		if f.field == field {
			out := make([]string, len(f.errs))
			for i, err := range f.errs {
				out[i] = err.Error()
			}
			return out
		}
	}
	return nil
}

// Errors returns every recorded error, ordered by field then report order.
func (r *ValidationResult) Errors() []error {
	if r == nil {
		return nil
	}
	var out []error
	for _, f := range r.fields {
		out = append(out, f.errs...)
	}
	return out
}

// Err returns nil for a valid result, or a *ValidationError.
func (r *ValidationResult) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &ValidationError{Type: r.typ, Errors: r.Errors()}
}

// String renders one line per field: "field: msg; msg".
func (r *ValidationResult) String() string {
	if !r.HasErrors() {
		return "valid"
	}
	var sb strings.Builder
	for i, f := range r.fields {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.field)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(r.Messages(f.field), "; "))
	}
	return sb.String()
}
