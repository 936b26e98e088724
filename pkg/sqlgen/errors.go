package sqlgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapddl/pkg/statement"
)

// Sentinel errors.
var (
	// ErrMissingRequiredField matches every *MissingFieldError.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrNoApplicableGenerator matches every *NoApplicableGeneratorError.
	ErrNoApplicableGenerator = errors.New("no applicable generator")
	// ErrUnsupportedStatement is returned when a generator receives a statement
	// of a type it does not render.
	ErrUnsupportedStatement = errors.New("unsupported statement")
)

// MissingFieldError reports a required field that is blank or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is required"
}

// Unwrap allows errors.Is(err, ErrMissingRequiredField).
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// NoApplicableGeneratorError is returned when no registered generator supports
// a statement for a dialect. It indicates a misconfigured registry.
type NoApplicableGeneratorError struct {
	Type    statement.Type
	Dialect string
}

func (e *NoApplicableGeneratorError) Error() string {
	return fmt.Sprintf("no applicable generator for %s on dialect %q", e.Type, e.Dialect)
}

// Unwrap allows errors.Is(err, ErrNoApplicableGenerator).
func (e *NoApplicableGeneratorError) Unwrap() error {
	return ErrNoApplicableGenerator
}

// ValidationError carries every problem found while validating a statement.
type ValidationError struct {
	Type   statement.Type
	Errors []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	if e.Type == "" {
		return "validation failed: " + strings.Join(msgs, "; ")
	}
	return fmt.Sprintf("invalid %s: %s", e.Type, strings.Join(msgs, "; "))
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Errors
}

// Unsupported returns an ErrUnsupportedStatement error naming the generator and statement.
func Unsupported(g Generator, stmt statement.Statement) error {
	return fmt.Errorf("%w: %s cannot render %T", ErrUnsupportedStatement, NameOf(g), stmt)
}
