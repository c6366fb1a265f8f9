// Package apperrors defines the domain error taxonomy and its HTTP mapping.
// Handlers and services return these instead of mapping statuses ad hoc; a
// single Fiber error handler translates them at the boundary.
package apperrors

import "net/http"

// Code is a stable machine-readable error code returned to API clients.
type Code string

const (
	CodeValidation   Code = "validation_error"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeSignature    Code = "signature_error"
	CodeInvalidState Code = "invalid_state"
	CodeUpstream     Code = "upstream_error"
	CodeInternal     Code = "internal_error"
)

// Error is a domain error carrying a stable code, the HTTP status it maps
// to, a human-readable message, and an optional wrapped cause. The cause is
// for logs only and is never serialized to a client.
type Error struct {
	Code    Code
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on code so errors.Is works against taxonomy sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Status: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: msg}
}

func Signature(msg string) *Error {
	return &Error{Code: CodeSignature, Status: http.StatusBadRequest, Message: msg}
}

func InvalidState(msg string) *Error {
	return &Error{Code: CodeInvalidState, Status: http.StatusConflict, Message: msg}
}

func Upstream(msg string, err error) *Error {
	return &Error{Code: CodeUpstream, Status: http.StatusBadGateway, Message: msg, Err: err}
}

func Internal(msg string, err error) *Error {
	return &Error{Code: CodeInternal, Status: http.StatusInternalServerError, Message: msg, Err: err}
}
