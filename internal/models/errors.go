package models

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrInvalidArguments ErrorKind = "InvalidArguments"
	ErrInvalidFormat    ErrorKind = "InvalidFormat"
	ErrRead             ErrorKind = "ReadError"
	ErrMissingColumn    ErrorKind = "MissingColumn"
	ErrEmptyInput       ErrorKind = "EmptyInput"
	ErrNoValidData      ErrorKind = "NoValidData"
	ErrInternal         ErrorKind = "Internal"
)

// AnalysisError is a terminal failure of a run. Message is what the user sees.
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, message string) error {
	return &AnalysisError{Kind: kind, Message: message}
}

// WrapError appends the cause to message, as read failures surface the
// low-level reason to the user.
func WrapError(kind ErrorKind, message string, err error) error {
	return &AnalysisError{
		Kind:    kind,
		Message: fmt.Sprintf("%s: %s", message, err),
		Err:     err,
	}
}

// KindOf reports the kind of err, or ErrInternal for untyped errors.
func KindOf(err error) ErrorKind {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ErrInternal
}

// ExitCode maps an error kind to the process exit status. Every kind is
// non-zero.
func ExitCode(kind ErrorKind) int {
	switch kind {
	case ErrInvalidArguments:
		return 2
	case ErrInvalidFormat:
		return 3
	case ErrRead:
		return 4
	case ErrMissingColumn:
		return 5
	case ErrEmptyInput:
		return 6
	case ErrNoValidData:
		return 7
	default:
		return 1
	}
}
