// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package flatcell

import (
	"time"

	"github.com/mahak/hbase/internal/base"
	"github.com/mahak/hbase/internal/metrics"
)

// reversedLess orders cells row-descending, and ascending within a row,
// matching a reverse row scan that still wants newest-cell-first behavior
// inside the row it is currently visiting.
func reversedLess(a, b base.Cell) bool {
	if rc := base.CompareRows(a, b); rc != 0 {
		return rc > 0
	}
	return base.Compare(a, b) < 0
}

// ReversedScanHeap performs a reverse row scan across a set of
// ScannerPorts: rows are visited from greatest to least, and within a row,
// cells are visited in the normal (newest-first) order. Each scanner only
// ever moves forward within its current row; when a scanner's forward
// Next() would carry it into a later row, pollRealKV walks it back with
// SeekToPreviousRow instead of trusting the crossed-boundary cell, which
// is how the source this is grounded on keeps a forward-only scanner
// usable in a backward scan.
//
// It does not support the forward operations
// Seek/Reseek/RequestSeek/SeekToLastRow, which return base.ErrIllegalState
// or base.ErrUnsupported as documented on each method; callers needing
// both directions keep a separate ForwardScanHeap and pick whichever is in
// effect.
//
// Unlike the source this is grounded on, there is no separate "shadow"
// current cell distinguished from a sentinel exhausted marker: a scanner
// whose Peek reports false is simply never in the heap.
type ReversedScanHeap struct {
	heap         *scanHeap
	pendingClose []ScannerPort // scanners that went exhausted mid-scan, closed lazily
	metrics      *metrics.Heap
	logger       base.Logger
}

// NewReversedScanHeap builds a ReversedScanHeap over scanners. Each scanner
// must already be positioned at the last cell of the highest row it will
// contribute (typically via SeekToPreviousRow or BackwardSeek against the
// scan's start key) before construction; scanners already exhausted are
// dropped immediately.
func NewReversedScanHeap(scanners []ScannerPort) *ReversedScanHeap {
	h := &ReversedScanHeap{heap: newScanHeap(reversedLess)}
	for _, s := range scanners {
		if cell, ok := s.Peek(); ok {
			h.heap.items = append(h.heap.items, &heapItem{scanner: s, cell: cell})
		} else {
			h.pendingClose = append(h.pendingClose, s)
		}
	}
	h.heap.init()
	return h
}

// SetMetrics installs an optional comparisons/close-latency recorder.
func (h *ReversedScanHeap) SetMetrics(m *metrics.Heap) { h.metrics = m }

// SetLogger installs an optional logger used to report scanners moved to
// pendingClose after a failed SeekToPreviousRow or BackwardSeek, and errors
// returned by scanners closed in Close.
func (h *ReversedScanHeap) SetLogger(l base.Logger) { h.logger = l }

// Peek returns the next cell the scan would yield, without advancing.
func (h *ReversedScanHeap) Peek() (base.Cell, bool) {
	if h.heap.Len() == 0 {
		return base.Cell{}, false
	}
	return h.heap.peekRoot().cell, true
}

// Next returns the next cell in reverse-scan order and advances that
// cell's scanner. A scanner that becomes exhausted is moved to
// pendingClose rather than closed inline, matching the source's deferred
// close so that a caller mid-iteration is never blocked on I/O triggered
// by a scanner falling out of the merge.
func (h *ReversedScanHeap) Next() (base.Cell, bool) {
	return h.pollRealKV()
}

// pollRealKV pops the current root and returns its cell, then repositions
// that scanner for its next contribution to the merge. A plain Next() that
// stays within the row just returned is re-pushed directly; one that
// crosses into a later row is walked back to the row immediately before
// it with SeekToPreviousRow, since the scanner itself only knows how to
// move forward. Because exhausted scanners are never left in the heap,
// this never has to loop past dead entries: the root popped here is
// always real.
func (h *ReversedScanHeap) pollRealKV() (base.Cell, bool) {
	if h.heap.Len() == 0 {
		return base.Cell{}, false
	}
	root := h.heap.popRoot()
	out := root.cell
	h.recordComparison()

	// root.cell already holds what scanner.Peek reports; scanner.Next's
	// return value is that same cell restated, not the one that follows it.
	// Consume it, then re-Peek for the cell that's now current.
	root.scanner.Next()
	if nextCell, ok := root.scanner.Peek(); ok && base.MatchingRows(nextCell, out) {
		root.cell = nextCell
		h.heap.push(root)
		return out, true
	}

	// Either the scanner ran out of forward data (ok == false, e.g. out
	// was the highest row this scanner holds) or Next() crossed into a
	// row this backward scan hasn't visited yet (a row greater than out's,
	// still ahead of it in forward order). Either way, rewind to the row
	// immediately before out's row and resume the forward-within-row walk
	// from its start.
	repositioned, err := root.scanner.SeekToPreviousRow(out)
	switch {
	case err != nil:
		if h.logger != nil {
			h.logger.Infof("flatcell: seekToPreviousRow failed, dropping scanner: %v", err)
		}
		h.pendingClose = append(h.pendingClose, root.scanner)
	case !repositioned:
		h.pendingClose = append(h.pendingClose, root.scanner)
	default:
		cell, _ := root.scanner.Peek()
		root.cell = cell
		h.heap.push(root)
	}
	return out, true
}

// SeekToPreviousRow repositions every live scanner to the first cell of
// the row strictly before seekKey's row, moving scanners that run out of
// earlier rows or whose own SeekToPreviousRow fails (the failure is logged)
// to pendingClose, and re-heapifies. A scanner already positioned in a row
// strictly before seekKey's row is left untouched: it has already been
// walked past the rows between it and seekKey, and re-seeking it would
// pull it forward to re-visit a row this scan already emitted.
func (h *ReversedScanHeap) SeekToPreviousRow(seekKey base.Cell) (bool, error) {
	items := h.heap.items
	h.heap.items = nil
	for _, item := range items {
		if base.CompareRows(item.cell, seekKey) < 0 {
			h.heap.items = append(h.heap.items, item)
			continue
		}
		ok, err := item.scanner.SeekToPreviousRow(seekKey)
		if err != nil {
			if h.logger != nil {
				h.logger.Infof("flatcell: seekToPreviousRow failed, dropping scanner: %v", err)
			}
			h.pendingClose = append(h.pendingClose, item.scanner)
			continue
		}
		if ok {
			cell, _ := item.scanner.Peek()
			item.cell = cell
			h.heap.items = append(h.heap.items, item)
		} else {
			h.pendingClose = append(h.pendingClose, item.scanner)
		}
	}
	h.heap.init()
	return h.heap.Len() > 0, nil
}

// BackwardSeek repositions every live scanner to the greatest cell <=
// seekKey in the total order, moving scanners that have nothing at or
// before seekKey or whose own BackwardSeek fails (the failure is logged) to
// pendingClose, and re-heapifies.
func (h *ReversedScanHeap) BackwardSeek(seekKey base.Cell) (bool, error) {
	items := h.heap.items
	h.heap.items = nil
	for _, item := range items {
		ok, err := item.scanner.BackwardSeek(seekKey)
		if err != nil {
			if h.logger != nil {
				h.logger.Infof("flatcell: backwardSeek failed, dropping scanner: %v", err)
			}
			h.pendingClose = append(h.pendingClose, item.scanner)
			continue
		}
		if ok {
			cell, _ := item.scanner.Peek()
			item.cell = cell
			h.heap.items = append(h.heap.items, item)
		} else {
			h.pendingClose = append(h.pendingClose, item.scanner)
		}
	}
	h.heap.init()
	return h.heap.Len() > 0, nil
}

// Seek always fails: a ReversedScanHeap only moves backward.
func (h *ReversedScanHeap) Seek(base.Cell) (bool, error) {
	return false, base.IllegalStatef("Seek on ReversedScanHeap: use BackwardSeek or SeekToPreviousRow")
}

// Reseek always fails, for the same reason as Seek.
func (h *ReversedScanHeap) Reseek(base.Cell) (bool, error) {
	return false, base.IllegalStatef("Reseek on ReversedScanHeap: use BackwardSeek or SeekToPreviousRow")
}

// RequestSeek always fails, for the same reason as Seek.
func (h *ReversedScanHeap) RequestSeek(base.Cell, bool, bool) error {
	return base.IllegalStatef("RequestSeek on ReversedScanHeap: use BackwardSeek or SeekToPreviousRow")
}

// SeekToLastRow always fails: the source's eponymous method is documented
// as unsupported by this scanner type, so it is preserved here as an
// explicit, named failure rather than silently aliasing to another
// operation.
func (h *ReversedScanHeap) SeekToLastRow(base.Cell) (bool, error) {
	return false, base.Unsupportedf("SeekToLastRow on ReversedScanHeap")
}

// Close closes every live scanner and every scanner deferred to
// pendingClose, collecting (and logging, if a logger is installed) the
// first error encountered while still attempting to close the rest, and
// records each close's latency if a metrics recorder is installed.
func (h *ReversedScanHeap) Close() error {
	var first error
	closeOne := func(s ScannerPort) {
		start := time.Now()
		err := s.Close()
		if h.metrics != nil {
			h.metrics.RecordCloseLatency(time.Since(start))
		}
		if err != nil {
			if h.logger != nil {
				h.logger.Infof("flatcell: error closing scanner: %v", err)
			}
			if first == nil {
				first = err
			}
		}
	}
	for _, item := range h.heap.items {
		closeOne(item.scanner)
	}
	for _, s := range h.pendingClose {
		closeOne(s)
	}
	h.heap.items = nil
	h.pendingClose = nil
	return first
}

func (h *ReversedScanHeap) recordComparison() {
	if h.metrics != nil {
		h.metrics.RecordComparisons(1)
	}
}
