// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package metrics records optional, injectable observability data for the
// scan heaps. Nothing in this package is required for correctness; a nil
// *Heap is safe to use everywhere it's accepted.
package metrics

import (
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
)

// Heap records per-Next() heap-comparison counts and scanner-close
// latencies for a single ForwardScanHeap or ReversedScanHeap instance.
// Both heaps record a count of 1 for every Next() call; they do not count
// the comparisons made while re-heapifying, so the recorded distribution
// does not vary with how many scanners a merge fans across.
type Heap struct {
	comparisons *hdrhistogram.Histogram
	closeLatency *hdrhistogram.Histogram
}

// NewHeap returns a Heap recorder with a reasonable value range for
// scanner counts (1 - 10,000) and close latencies (1us - 10s), at
// 3-significant-figure precision.
func NewHeap() *Heap {
	return &Heap{
		comparisons:  hdrhistogram.New(1, 10_000, 3),
		closeLatency: hdrhistogram.New(1, int64(10*time.Second/time.Microsecond), 3),
	}
}

// RecordComparisons records the number of heap comparisons a single Next()
// call performed. Safe to call on a nil *Heap.
func (h *Heap) RecordComparisons(n int64) {
	if h == nil || n <= 0 {
		return
	}
	h.comparisons.RecordValue(n)
}

// RecordCloseLatency records how long a scanner's Close() took. Safe to
// call on a nil *Heap.
func (h *Heap) RecordCloseLatency(d time.Duration) {
	if h == nil {
		return
	}
	us := d.Microseconds()
	if us <= 0 {
		us = 1
	}
	h.closeLatency.RecordValue(us)
}

// ComparisonsMean returns the mean recorded comparison count, or 0 if
// nothing has been recorded (or h is nil).
func (h *Heap) ComparisonsMean() float64 {
	if h == nil {
		return 0
	}
	return h.comparisons.Mean()
}

// CloseLatencyP99 returns the p99 scanner-close latency recorded so far.
func (h *Heap) CloseLatencyP99() time.Duration {
	if h == nil {
		return 0
	}
	return time.Duration(h.closeLatency.ValueAtQuantile(99)) * time.Microsecond
}
