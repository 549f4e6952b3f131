// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import (
	"io"

	"github.com/ulikunitz/ppmtrie/xlog"
)

// debug stores a reference to a logger. It may contain nil for no output.
var debug xlog.Logger

// SetLogger sets the logger for debug output of the package. A nil logger
// switches the output off. It must not be called concurrently with other
// functions of the package.
func SetLogger(l xlog.Logger) { debug = l }

// debugOn writes debug information on the given writer. If w is nil no
// output will be written.
func debugOn(w io.Writer) { debug = xlog.New(w, "ppmtrie ") }

// debugOff switches the debugging output off.
func debugOff() { debug = nil }
