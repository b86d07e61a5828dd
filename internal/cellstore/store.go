// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package cellstore implements CellStore: the abstract, immutable, indexed
// container of cells that FlatCellMap wraps. Variants here cover the
// on-heap array, the encoded byte-region (matching the wire layout two
// file-backed collaborators would use), a memory-mapped off-heap region,
// and the empty store.
package cellstore

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/mahak/hbase/internal/base"
)

// CellStore is a random-access, immutable, indexed container of N cells,
// sorted ascending by base.Compare. A store is never mutated after
// publication; FlatCellMap only ever holds a shared, read-only reference to
// one.
type CellStore interface {
	// Len returns the number of cells in the store.
	Len() int
	// Get returns the i-th cell, 0 <= i < Len().
	Get(i int) base.Cell
}

// ArrayStore is an on-heap CellStore backed by a contiguous []base.Cell.
type ArrayStore struct {
	cells []base.Cell
}

// NewArrayStore wraps an already-sorted slice of cells. The caller must not
// mutate cells after this call; ownership passes to the store.
func NewArrayStore(cells []base.Cell) *ArrayStore {
	return &ArrayStore{cells: cells}
}

// Len implements CellStore.
func (s *ArrayStore) Len() int { return len(s.cells) }

// Get implements CellStore.
func (s *ArrayStore) Get(i int) base.Cell { return s.cells[i] }

// EmptyStore is the zero-cell CellStore, useful as a base case for
// submap/headmap arithmetic and as a sentinel for exhausted sources.
type EmptyStore struct{}

// Len implements CellStore.
func (EmptyStore) Len() int { return 0 }

// Get implements CellStore. It always panics: an empty store has no valid
// index, and any caller reaching it has already violated the 0 <= i <
// Len() precondition.
func (EmptyStore) Get(i int) base.Cell {
	panic(errors.AssertionFailedf("cellstore: Get(%d) on an empty store", i))
}

// SortCells sorts cells in place by base.Compare, the order every CellStore
// must present its contents in.
func SortCells(cells []base.Cell) {
	sort.Slice(cells, func(i, j int) bool {
		return base.Compare(cells[i], cells[j]) < 0
	})
}
