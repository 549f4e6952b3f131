// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package serial

import (
	"io"

	"github.com/ulikunitz/ppmtrie/xlog"
)

// debug stores a reference to a logger. It may contain nil for no output.
var debug xlog.Logger

// SetLogger sets the logger for debug output of the package.
func SetLogger(l xlog.Logger) { debug = l }

// debugOn writes debug information on the given writer.
func debugOn(w io.Writer) { debug = xlog.New(w, "serial ") }

// debugOff switches the debugging output off.
func debugOff() { debug = nil }
