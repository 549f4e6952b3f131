// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package xlog provides a Logger interface and supporting functions to
control debug output.

The packages of the module keep a package-level logger variable that is nil
by default. Calling one of the print functions with a nil logger does
nothing, so the formatting work is skipped entirely when debugging is
switched off. The *log.Logger type of the standard library supports the
Logger interface.

A typical setup inside a package looks like this:

	var debug xlog.Logger

	func debugOn(w io.Writer) { debug = xlog.New(w, "trie ") }
	func debugOff()           { debug = nil }
*/
package xlog

import (
	"fmt"
	"io"
	"log"
)

// Logger must be supported by all loggers used with the functions of this
// package. The log.Logger type supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// New creates a logger writing to w using the given prefix. If w is nil the
// function returns nil, which disables output.
func New(w io.Writer, prefix string) Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, 0)
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
