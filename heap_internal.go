// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package flatcell

import "github.com/mahak/hbase/internal/base"

// heapItem pairs a scanner with its last-peeked cell, so the heap's
// comparisons never call back into the scanner: Peek is read once per
// repositioning and cached here.
type heapItem struct {
	scanner ScannerPort
	cell    base.Cell
}

// scanHeap is a binary min-heap over heapItems, ordered by a caller-supplied
// less function. It is the shared primitive behind ForwardScanHeap and
// ReversedScanHeap, which differ only in which less function they install
// and in how they react to a scanner going empty.
//
// Unlike container/heap, scanHeap never holds an item whose scanner is
// exhausted: an item is removed (not just marked) the moment its scanner's
// Peek reports no more cells. That keeps popRoot a plain heap pop, with no
// "skip past dead entries" loop at the call site.
type scanHeap struct {
	items []*heapItem
	less  func(a, b base.Cell) bool
}

func newScanHeap(less func(a, b base.Cell) bool) *scanHeap {
	return &scanHeap{less: less}
}

func (h *scanHeap) Len() int { return len(h.items) }

func (h *scanHeap) lessAt(i, j int) bool { return h.less(h.items[i].cell, h.items[j].cell) }

func (h *scanHeap) swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// init establishes the heap invariant over h.items, which may be in
// arbitrary order on entry.
func (h *scanHeap) init() {
	n := h.Len()
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// push inserts item, maintaining the heap invariant. Callers must not push
// an item whose scanner is already exhausted.
func (h *scanHeap) push(item *heapItem) {
	h.items = append(h.items, item)
	h.up(h.Len() - 1)
}

// popRoot removes and returns the root (least, under less) item. It panics
// if the heap is empty; callers must check Len first.
func (h *scanHeap) popRoot() *heapItem {
	n := h.Len() - 1
	h.swap(0, n)
	root := h.items[n]
	h.items = h.items[:n]
	if n > 0 {
		h.down(0, n)
	}
	return root
}

// peekRoot returns the root item without removing it.
func (h *scanHeap) peekRoot() *heapItem { return h.items[0] }

// fixRoot restores the heap invariant after the root's cell has changed in
// place (e.g. after advancing its scanner), without removing it.
func (h *scanHeap) fixRoot() {
	if h.Len() > 0 {
		h.down(0, h.Len())
	}
}

// removeRoot drops the root entirely: used when the root scanner has just
// gone exhausted.
func (h *scanHeap) removeRoot() {
	n := h.Len() - 1
	h.swap(0, n)
	h.items = h.items[:n]
	if n > 0 {
		h.down(0, n)
	}
}

func (h *scanHeap) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !h.lessAt(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *scanHeap) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.lessAt(j2, j1) {
			j = j2
		}
		if !h.lessAt(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
