// Package apperrors classifies game errors so transports can decide how to answer them.
package apperrors

import "errors"

// Kind is the category of an error
type Kind string

const (
	// KindValidation is bad input shape, such as an ambiguous payload or malformed code
	KindValidation Kind = "validation"

	// KindStateConflict is a request that is well formed but not allowed right now
	KindStateConflict Kind = "state_conflict"

	// KindNotFound is an unknown game or player
	KindNotFound Kind = "not_found"
)

// Error is a categorised, user-facing error. None of them change state.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Is matches by code, or by kind when target carries no code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code == "" {
		return e.Kind == t.Kind
	}
	return e.Code == t.Code
}

// Kind sentinels for errors.Is
var (
	ErrValidation    = &Error{Kind: KindValidation, Message: "validation error"}
	ErrStateConflict = &Error{Kind: KindStateConflict, Message: "state conflict"}
	ErrNotFound      = &Error{Kind: KindNotFound, Message: "not found"}
)

// Validation creates a validation error
func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// StateConflict creates a state conflict error
func StateConflict(code, message string) *Error {
	return &Error{Kind: KindStateConflict, Code: code, Message: message}
}

// NotFound creates a not found error
func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// KindOf returns the kind of err, and false for errors outside the taxonomy
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// CodeOf returns the code of err, or "" for errors outside the taxonomy
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
