// Package apperr classifies errors and maps them to process exit codes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	General Kind = iota
	InvalidArguments
	Repository
	Cloc
	Chart
	FileSystem
)

// String returns the code printed in error messages.
func (k Kind) String() string {
	switch k {
	case InvalidArguments:
		return "INVALID_ARGUMENTS"
	case Repository:
		return "REPOSITORY_ERROR"
	case Cloc:
		return "CLOC_ERROR"
	case Chart:
		return "CHART_ERROR"
	case FileSystem:
		return "FILE_SYSTEM_ERROR"
	default:
		return "ERROR"
	}
}

// ExitCode returns the process exit code of the kind.
func (k Kind) ExitCode() int {
	switch k {
	case InvalidArguments:
		return 2
	case Repository:
		return 3
	default:
		return 1
	}
}

// Error is an error tagged with a Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with kind. A nil err yields nil.
func New(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Errorf formats a message and tags it with kind.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or General.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return General
}

// ExitCode returns the exit code for err; 0 when err is nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}
