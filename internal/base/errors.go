// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/errors"

// ErrUnsupported is returned by every mutating or not-implemented
// navigable-map operation on a FlatCellMap, and by ReversedScanHeap's
// SeekToLastRow. Non-recoverable at the call site: it indicates a caller
// bug, not a data condition.
var ErrUnsupported = errors.New("flatcell: operation not supported")

// ErrIllegalState is returned when a caller invokes a forward-seek operation
// (Seek, Reseek, RequestSeek) on a ReversedScanHeap.
var ErrIllegalState = errors.New("flatcell: illegal state")

// Unsupportedf wraps ErrUnsupported with a method name, so callers of the
// exported stub methods on FlatCellMap get an actionable message.
func Unsupportedf(op string) error {
	return errors.Wrapf(ErrUnsupported, "%s", op)
}

// IllegalStatef wraps ErrIllegalState with a method name.
func IllegalStatef(op string) error {
	return errors.Wrapf(ErrIllegalState, "%s", op)
}
