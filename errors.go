/*
 * errors.go, part of structio.
 *
 *
 * Copyright 2025 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package structio

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for the kinds of fatal errors. An *Error unwraps to one of them,
// so callers can classify failures with errors.Is.
var (
	ErrSchema  = errors.New("required schema tag missing")
	ErrNumeric = errors.New("invalid coordinate")
	ErrIndex   = errors.New("record shorter than schema")
	ErrRead    = errors.New("read failure")
	ErrFormat  = errors.New("unknown structure format")
)

// Error is the error type returned by every function in this package.
// All of them are critical: a parse that returns an Error returns no data.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	kind     error
	cause    error
	format   string
}

func newError(kind error, format, msg string, deco ...string) *Error {
	return &Error{message: msg, kind: kind, format: format, deco: deco}
}

func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString(err.format)
	if err.filename != "" {
		fmt.Fprintf(&b, " file %s", err.filename)
	}
	fmt.Fprintf(&b, " error: %s: %s", err.kind, err.message)
	if len(err.deco) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(err.deco, " < "))
	}
	return b.String()
}

// Decorate adds the name of a caller to the error and returns the current
// list. An empty string only returns the list.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Unwrap returns the sentinel for the kind of failure and, when there is
// one, the underlying error.
func (err *Error) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}

// FileName returns the file to which the failing parse was associated, if known.
func (err *Error) FileName() string { return err.filename }

// Format returns the name of the format being read when the error happened.
func (err *Error) Format() string { return err.format }

// Critical is always true. Non critical problems are never reported.
func (err *Error) Critical() bool { return true }

// errDecorate adds caller, and the file name if given, to err when it is an
// *Error, and wraps any other error as a read failure.
func errDecorate(err error, caller string, filename ...string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		e = newError(ErrRead, "structure", err.Error())
		e.cause = err
	}
	e.Decorate(caller)
	if len(filename) > 0 && e.filename == "" {
		e.filename = filename[0]
	}
	return e
}
