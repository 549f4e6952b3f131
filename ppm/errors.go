// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppm

import "errors"

// Decoding anomalies. They terminate decoding but are not reported to the
// caller.
var (
	errMissingChild = errors.New("ppm: interval code selects no child")
	errIntervalCode = errors.New("ppm: interval code too long")
	errBackup       = errors.New("ppm: backup beyond the root")
)
