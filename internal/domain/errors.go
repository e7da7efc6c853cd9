package domain

import (
	"errors"
	"fmt"
)

// Error is a domain error carrying a stable code, used to pick a
// user-facing message without matching on text.
type Error struct {
	code string
	msg  string
}

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable identifier of the error kind.
func (e *Error) Code() string { return e.code }

// Domain errors.
var (
	ErrMissingTypeName  = newError("missing_type_name", "type has not been stored")
	ErrUnresolvableType = newError("unresolvable_type", "type cannot be resolved")
	ErrInvalidClone     = newError("invalid_clone", "invalid clone source")
	ErrNilSubject       = newError("nil_subject", "subject type must not be nil")
	ErrUnnamedType      = newError("unnamed_type", "subject type has no qualified name")
	ErrPromptNotFound   = newError("prompt_not_found", "prompt not found")
	ErrPromptExists     = newError("prompt_exists", "prompt already exists")
	ErrMissingEditor    = newError("missing_editor", "editor identity is required")
	ErrUnknownLocale    = newError("unknown_locale", "unknown locale")
	ErrSameLocale       = newError("same_locale", "source and target locale are the same")
	ErrInvalidKey       = newError("invalid_key", "invalid prompt key")
)

// Code extracts the domain error code from err, or "" when err does not wrap
// a domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}

// PromptError names the prompt a domain error is about. TypeName or
// TextName may be empty when unknown.
type PromptError struct {
	Err      error
	TypeName string
	TextName string
}

func (e *PromptError) Error() string {
	if e.TypeName == "" {
		return fmt.Sprintf("%v for %q", e.Err, e.TextName)
	}
	return fmt.Sprintf("%v: %s (text %q)", e.Err, e.TypeName, e.TextName)
}

func (e *PromptError) Unwrap() error { return e.Err }

// Prompt extracts the prompt named by err, if any.
func Prompt(err error) (typeName, textName string, ok bool) {
	var pe *PromptError
	if errors.As(err, &pe) {
		return pe.TypeName, pe.TextName, true
	}
	return "", "", false
}
