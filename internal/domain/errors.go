package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes failure semantics across the repo/aggregate layers.
type ErrorCode string

const (
	CodeValidation     ErrorCode = "validation"
	CodeNotFound       ErrorCode = "not_found"
	CodeConflict       ErrorCode = "conflict"
	CodeInvalidSession ErrorCode = "invalid_session"
	CodeInternal       ErrorCode = "internal"
)

// Error is the canonical domain error wrapper. Message is safe to surface
// to API clients; Cause holds the underlying store/library failure.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds a domain error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with domain error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

func NotFoundError(op, message string) error {
	return NewError(CodeNotFound, op, message, nil)
}

func ValidationError(op, message string) error {
	return NewError(CodeValidation, op, message, nil)
}

func ConflictError(op, message string, cause error) error {
	return NewError(CodeConflict, op, message, cause)
}

func InvalidSessionError(op, message string, cause error) error {
	return NewError(CodeInvalidSession, op, message, cause)
}

// IsCode checks whether err (or a wrapped err) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var dErr *Error
	if !errors.As(err, &dErr) {
		return false
	}
	return dErr.Code == code
}

// CodeOf extracts the domain error code, defaulting to internal.
func CodeOf(err error) ErrorCode {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return CodeInternal
}

// MessageOf extracts the client-safe message when available.
func MessageOf(err error) string {
	var dErr *Error
	if errors.As(err, &dErr) && dErr.Message != "" {
		return dErr.Message
	}
	return ""
}
