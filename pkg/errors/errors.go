package custom_error

import (
	"fmt"
	"strings"
)

// FieldError is a single field-addressable validation message, so the UI can
// render feedback next to the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates one or more field errors for a rejected request.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, message)
	return e
}

func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if _, ok := fields[fe.Field]; !ok {
			fields[fe.Field] = fe.Message
		}
	}
	return fields
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		messages[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(messages, "; ")
}

// PermissionError means the actor lacks the capability for the requested
// operation. It is never merged with validation messages.
type PermissionError struct {
	Capability string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("missing required capability %q", e.Capability)
}

// ConsistencyError means the external inventory system confirmed a transfer
// but the local movement record could not be written. The two systems have
// diverged and an operator must reconcile by hand; retrying automatically
// could move the stock twice.
type ConsistencyError struct {
	Message string
	Err     error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("inventory divergence, manual reconciliation required: %s: %v", e.Message, e.Err)
}

func (e *ConsistencyError) Unwrap() error {
	return e.Err
}
