// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"fmt"
	"log"
)

// Logger defines an interface for writing log messages. Scan heaps use it
// only to report scanner failures: a scanner's move into pendingClose after
// a failed reverse seek, a failed forward reposition, and errors from
// closing scanners. Keeping it this small means the package never gains a
// dependency on a particular logging stack.
type Logger interface {
	Infof(format string, args ...interface{})
}

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger struct{}

// Infof implements Logger.
func (DefaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// NoopLogger discards everything. Useful as a zero-value-safe default so
// callers never need a nil check before logging.
type NoopLogger struct{}

// Infof implements Logger.
func (NoopLogger) Infof(string, ...interface{}) {}
