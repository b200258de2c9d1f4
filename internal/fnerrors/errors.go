// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package fnerrors

import (
	"errors"
	"fmt"

	"namespacelabs.dev/greeter/internal/fnerrors/stacktrace"
)

// New returns a new error for a format specifier and optionals args with the
// stack trace at the point of invocation.
func New(format string, args ...interface{}) error {
	return &fnError{Err: fmt.Errorf(format, args...), stack: stacktrace.New()}
}

// Wrapf annotates err with what was being attempted when it failed.
func Wrapf(err error, whatFmt string, args ...interface{}) error {
	return &wrappedError{
		fnError: fnError{Err: err, stack: stacktrace.New()},
		What:    fmt.Sprintf(whatFmt, args...),
	}
}

// Unexpected situation.
func InternalError(format string, args ...interface{}) error {
	return &internalError{fnError{Err: fmt.Errorf(format, args...), stack: stacktrace.New()}}
}

// This error is purely for wiring and ensures that the process exits with an
// appropriate exit code. The error content has to be output independently.
func ExitWithCode(err error, code int) error {
	return &exitError{fnError: fnError{Err: err, stack: stacktrace.New()}, code: code}
}

// Wraps an error with a stack trace at the point of invocation.
type fnError struct {
	Err   error
	stack stacktrace.StackTrace
}

func (f *fnError) Error() string { return f.Err.Error() }
func (f *fnError) Unwrap() error { return f.Err }

// Signature is compatible with pkg/errors and allows frameworks like Sentry to
// automatically extract the frame.
func (f *fnError) StackTrace() stacktrace.StackTrace { return f.stack }

type wrappedError struct {
	fnError
	What string
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %v", e.What, e.Err)
}

type internalError struct {
	fnError
}

type ExitError interface {
	ExitCode() int
}

type exitError struct {
	fnError
	code int
}

func (e *exitError) ExitCode() int { return e.code }

// ExitCodeOf returns the exit code an error should terminate the process
// with: 0 for nil, the code carried by an ExitError anywhere in the chain, 1
// otherwise.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}

	var exit ExitError
	if errors.As(err, &exit) {
		return exit.ExitCode()
	}

	return 1
}

// Explain returns the parts of a framework error needed to render it:
// a label (empty for plain errors), the message and the wrapped cause.
func Explain(err error) (label, what string, cause error) {
	switch x := err.(type) {
	case *wrappedError:
		return "", x.What, x.Err
	case *internalError:
		return "internal error", x.Err.Error(), nil
	case *exitError:
		return "", "", x.Err
	case *fnError:
		return "", x.Err.Error(), nil
	}

	return "", err.Error(), nil
}
