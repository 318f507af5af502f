/*
Copyright 2024 The Corvus Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cverrors provides the error type used by corvus.
//
// Every error created here carries a Code, which survives wrapping and
// can be retrieved with Code(). Use these functions instead of
// errors.New and fmt.Errorf so callers can dispatch on the category of
// a failure without string matching.
//
// Errors representing programming bugs (branches the grammar or the
// planner should make unreachable) are created with Bugf; they carry
// Code_INTERNAL and a "[BUG]" prefix and must never be shown to users
// as regular statement errors.
package cverrors

import (
	"errors"
	"fmt"

	"corvusdb.io/corvus/go/cv/proto/cvrpc"
)

// New returns an error with the supplied message and code.
func New(code cvrpc.Code, message string) error {
	return &fundamental{
		msg:  message,
		code: code,
	}
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error, with the given code attached.
func Errorf(code cvrpc.Code, format string, args ...any) error {
	return &fundamental{
		msg:  fmt.Sprintf(format, args...),
		code: code,
	}
}

// Bugf formats an internal invariant violation. Reaching one of these
// is a programming error, not a user-facing condition.
func Bugf(format string, args ...any) error {
	return &fundamental{
		msg:  fmt.Sprintf("[BUG] "+format, args...),
		code: cvrpc.Code_INTERNAL,
	}
}

// fundamental is an error that has a message and a code, but no caused-by.
type fundamental struct {
	msg  string
	code cvrpc.Code
}

func (f *fundamental) Error() string { return f.msg }

func (f *fundamental) ErrorCode() cvrpc.Code { return f.code }

// Wrap returns an error annotating err with the supplied message.
// If err is nil, Wrap returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrapping{
		cause: err,
		msg:   message,
	}
}

// Wrapf returns an error annotating err with the format specifier.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrapping struct {
	cause error
	msg   string
}

func (w *wrapping) Error() string { return w.msg + ": " + w.cause.Error() }

func (w *wrapping) Unwrap() error { return w.cause }

// ErrorWithCode is implemented by errors that carry a Code.
type ErrorWithCode interface {
	ErrorCode() cvrpc.Code
}

// Code returns the error code if it's an error created by this package,
// walking the cause chain if necessary. A nil error maps to Code_OK,
// anything foreign to Code_UNKNOWN.
func Code(err error) cvrpc.Code {
	if err == nil {
		return cvrpc.Code_OK
	}
	var coded ErrorWithCode
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return cvrpc.Code_UNKNOWN
}
