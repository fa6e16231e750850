// Package apperrors classifies failures by the boundary they occur at, so
// the CLI can report them without caring which component produced them.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindArgument  Kind = "argument"
	KindIO        Kind = "io"
	KindStore     Kind = "store"
	KindClipboard Kind = "clipboard"
)

type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func New(kind Kind, message string, cause error) error {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func NewArgument(message string) error {
	return New(KindArgument, message, nil)
}

// Is reports whether any error in err's chain is an AppError of the given kind.
func Is(err error, kind Kind) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}
