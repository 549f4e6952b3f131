// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package serial

import (
	"errors"
	"fmt"
)

// ErrFormat indicates a model file that cannot be decoded.
var ErrFormat = errors.New("serial: invalid model format")

// errBound reports a trie that cannot be written in godparent mode.
var errBound = errors.New("serial: trie violates the godparent bounds")

// errorf creates an error with the package prefix.
func errorf(format string, a ...any) error {
	return fmt.Errorf("serial: "+format, a...)
}

// formatError wraps the cause of a format violation in ErrFormat.
func formatError(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, a...))
}
