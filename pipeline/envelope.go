package pipeline

import (
	"fmt"
	"net/http"

	"github.com/taskdeck-app/taskdeck/backend/validate"
)

// FailureKind tags the failure class an envelope carries.
type FailureKind int

const (
	KindNone FailureKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindStore
)

// Envelope is the uniform result wrapper every pipeline operation returns.
// Exactly one of the two shapes is produced: {success:true, data?} or
// {success:false, message?, errors?}. Errors is present only for validation
// failures; Message summarizes not-found and store failures. Nothing in the
// mutation path panics or returns bare errors past this boundary.
type Envelope struct {
	Success bool                 `json:"success"`
	Data    any                  `json:"data,omitempty"`
	Message string               `json:"message,omitempty"`
	Errors  validate.FieldErrors `json:"errors,omitempty"`

	kind FailureKind
}

// OK wraps a successful result.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Invalid wraps a validation failure with its per-field messages.
func Invalid(fieldErrs validate.FieldErrors) Envelope {
	return Envelope{Success: false, Errors: fieldErrs, kind: KindValidation}
}

// NotFound wraps a missing-target failure.
func NotFound(entity string) Envelope {
	return Envelope{
		Success: false,
		Message: fmt.Sprintf("%s not found", entity),
		kind:    KindNotFound,
	}
}

// Failure wraps a store failure with a caller-safe summary.
func Failure(kind FailureKind, message string) Envelope {
	return Envelope{Success: false, Message: message, kind: kind}
}

// Kind reports the failure class; KindNone for successes.
func (e Envelope) Kind() FailureKind {
	return e.kind
}

// StatusCode maps the envelope onto an HTTP status. created selects 201 for
// successful creates.
func (e Envelope) StatusCode(created bool) int {
	switch e.kind {
	case KindNone:
		if created {
			return http.StatusCreated
		}
		return http.StatusOK
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
