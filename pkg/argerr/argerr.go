// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argerr defines the single error kind raised while validating
// action declarations and resolving and binding command-line tokens.
//
// Every engine failure is an *Error. The Category says which stage
// rejected the input and the wrapped cause is one of the sentinels below
// (or a conversion error), so callers can branch with errors.Is.
package argerr

import (
	"errors"
	"fmt"
)

// Category groups engine errors by the stage that raised them.
type Category int

const (
	// Declaration errors come from structural validation of the action set.
	Declaration Category = iota + 1
	// Resolution errors come from looking up the requested action.
	Resolution
	// Input errors come from the shape of the supplied tokens.
	Input
	// Conversion errors come from coercing a token to its declared type.
	Conversion
	// Usage errors come from rendering help text.
	Usage
)

func (c Category) String() string {
	switch c {
	case Declaration:
		return "declaration"
	case Resolution:
		return "resolution"
	case Input:
		return "input"
	case Conversion:
		return "conversion"
	case Usage:
		return "usage"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

var (
	ErrNoAction        = errors.New("no action declared")
	ErrParameterless   = errors.New("single action declared without parameters")
	ErrReservedName    = errors.New("reserved action name")
	ErrClassification  = errors.New("parameter has more than one classification")
	ErrOrder           = errors.New("required parameter follows an optional parameter")
	ErrDefault         = errors.New("default value not assignable to parameter")
	ErrDuplicateName   = errors.New("duplicated parameter name")
	ErrUnknownCommand  = errors.New("unknown subcommand")
	ErrMissingRequired = errors.New("not all required parameters are set")
	ErrUnknownParam    = errors.New("unknown parameter")
	ErrDuplicateParam  = errors.New("parameter passed two times")
	ErrUnknownName     = errors.New("unknown parameter name")
	ErrMissingValue    = errors.New("parameter value missing")
	ErrUnsupported     = errors.New("usage rendering not supported")
)

// Error is an engine error. Msg is what gets shown to the user; Err is the
// underlying cause.
type Error struct {
	Category Category
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Newf returns an *Error of the given category wrapping cause, with a
// message formatted from format and args.
func Newf(cat Category, cause error, format string, args ...any) *Error {
	return &Error{
		Category: cat,
		Msg:      fmt.Sprintf(format, args...),
		Err:      cause,
	}
}

// Is reports whether err is an engine error of category cat.
func Is(err error, cat Category) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Category == cat
}
