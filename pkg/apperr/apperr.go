package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError is a field-keyed set of constraint violations. The
// operation that produced it is a no-op.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, msg string) *ValidationError {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
	return e
}

func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// ErrOrNil returns the error only when at least one field failed, so callers
// can write `return apperr.ErrOrNil(v)` after collecting violations.
func (e *ValidationError) ErrOrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError reports that a referenced entity id does not resolve.
type NotFoundError struct {
	Entity string
	ID     string
}

func NotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// ConflictError reports a state-based refusal, e.g. deleting a plan template
// that is assigned to a customer.
type ConflictError struct {
	Message string
}

func Conflict(msg string) *ConflictError {
	return &ConflictError{Message: msg}
}

func (e *ConflictError) Error() string {
	return e.Message
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
