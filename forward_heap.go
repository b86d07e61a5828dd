// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package flatcell

import (
	"time"

	"github.com/mahak/hbase/internal/base"
	"github.com/mahak/hbase/internal/metrics"
	"github.com/mahak/hbase/internal/rowbloom"
)

func forwardLess(a, b base.Cell) bool { return base.Compare(a, b) < 0 }

// ForwardScanHeap performs an ascending k-way merge over a set of
// ScannerPorts, always yielding the least cell among all scanners' current
// positions. The order in which scanners with equal current cells are
// emitted is not defined: the heap does not keep a stable merge order.
type ForwardScanHeap struct {
	heap    *scanHeap
	blooms  map[ScannerPort]*rowbloom.Filter
	metrics *metrics.Heap
	logger  base.Logger
}

// NewForwardScanHeap builds a ForwardScanHeap over scanners, discarding any
// scanner that is already exhausted. scanners must all be positioned
// consistently (e.g. all at their first cell) before construction.
func NewForwardScanHeap(scanners []ScannerPort) *ForwardScanHeap {
	h := &ForwardScanHeap{heap: newScanHeap(forwardLess)}
	for _, s := range scanners {
		if cell, ok := s.Peek(); ok {
			h.heap.items = append(h.heap.items, &heapItem{scanner: s, cell: cell})
		}
	}
	h.heap.init()
	return h
}

// SetMetrics installs an optional comparisons/close-latency recorder.
func (h *ForwardScanHeap) SetMetrics(m *metrics.Heap) { h.metrics = m }

// SetLogger installs an optional logger used to report scanner failures
// encountered while repositioning the heap in Seek or Reseek.
func (h *ForwardScanHeap) SetLogger(l base.Logger) { h.logger = l }

// SetBloomHint registers a row-level bloom filter for scanner s, consulted
// by RequestSeek to skip a seek the filter proves would find nothing.
func (h *ForwardScanHeap) SetBloomHint(s ScannerPort, f *rowbloom.Filter) {
	if h.blooms == nil {
		h.blooms = make(map[ScannerPort]*rowbloom.Filter)
	}
	h.blooms[s] = f
}

// Peek returns the least cell across all live scanners, without advancing.
func (h *ForwardScanHeap) Peek() (base.Cell, bool) {
	if h.heap.Len() == 0 {
		return base.Cell{}, false
	}
	return h.heap.peekRoot().cell, true
}

// Next returns the least cell across all live scanners and advances that
// scanner, re-heapifying. A scanner whose Next reports exhaustion is
// dropped from the heap for good.
func (h *ForwardScanHeap) Next() (base.Cell, bool) {
	if h.heap.Len() == 0 {
		return base.Cell{}, false
	}
	root := h.heap.peekRoot()
	out := root.cell
	h.recordComparison()
	// root.cell already holds what scanner.Peek reports; scanner.Next's
	// return value is that same cell restated, not the one that follows it.
	// Consume it, then re-Peek for the cell that's now current.
	root.scanner.Next()
	if cell, ok := root.scanner.Peek(); ok {
		root.cell = cell
		h.heap.fixRoot()
	} else {
		h.heap.removeRoot()
	}
	return out, true
}

// Seek advances every live scanner to the first cell >= key, dropping any
// scanner that becomes exhausted, and re-heapifies.
func (h *ForwardScanHeap) Seek(key base.Cell) error {
	return h.reposition(key, func(s ScannerPort, k base.Cell) (bool, error) { return s.Seek(k) })
}

// Reseek is like Seek, but promises key is not before any scanner's
// current position.
func (h *ForwardScanHeap) Reseek(key base.Cell) error {
	return h.reposition(key, func(s ScannerPort, k base.Cell) (bool, error) { return s.Reseek(k) })
}

// RequestSeek behaves like Reseek, but first consults any bloom filter
// registered via SetBloomHint for each scanner: a scanner whose filter
// proves key's row cannot be present is skipped without calling Reseek.
// forward must be true; it exists to mirror the source API's parameter and
// is validated rather than silently ignored.
func (h *ForwardScanHeap) RequestSeek(key base.Cell, forward, useBloom bool) error {
	if !forward {
		return base.IllegalStatef("RequestSeek: forward=false on ForwardScanHeap")
	}
	items := h.heap.items
	h.heap.items = nil
	for _, item := range items {
		if useBloom {
			if f, ok := h.blooms[item.scanner]; ok && !f.MayContainRow(key.Row) {
				continue
			}
		}
		ok, err := item.scanner.Reseek(key)
		if err != nil {
			return err
		}
		if ok {
			cell, _ := item.scanner.Peek()
			item.cell = cell
			h.heap.items = append(h.heap.items, item)
		}
	}
	h.heap.init()
	return nil
}

func (h *ForwardScanHeap) reposition(key base.Cell, do func(ScannerPort, base.Cell) (bool, error)) error {
	items := h.heap.items
	h.heap.items = nil
	for _, item := range items {
		ok, err := do(item.scanner, key)
		if err != nil {
			if h.logger != nil {
				h.logger.Infof("flatcell: scanner reposition failed: %v", err)
			}
			return err
		}
		if ok {
			cell, _ := item.scanner.Peek()
			item.cell = cell
			h.heap.items = append(h.heap.items, item)
		}
	}
	h.heap.init()
	return nil
}

// Close closes every remaining live scanner, collecting the first error
// encountered (if any) while still attempting to close the rest, and
// records each close's latency if a metrics recorder is installed.
func (h *ForwardScanHeap) Close() error {
	var first error
	for _, item := range h.heap.items {
		start := time.Now()
		err := item.scanner.Close()
		if h.metrics != nil {
			h.metrics.RecordCloseLatency(time.Since(start))
		}
		if err != nil && first == nil {
			first = err
		}
	}
	h.heap.items = nil
	return first
}

func (h *ForwardScanHeap) recordComparison() {
	if h.metrics != nil {
		h.metrics.RecordComparisons(1)
	}
}
