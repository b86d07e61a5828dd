// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package flatcell

import (
	"github.com/mahak/hbase/internal/base"
	"github.com/mahak/hbase/internal/cellstore"
)

// FlatCellMap is an immutable, array-backed navigable map over a
// contiguous [minIdx, maxIdx) slice of a CellStore. Submaps, head/tail
// maps and descending views all share the same underlying store: none of
// them copy cells.
//
// FlatCellMap is not safe for mutation (there is none: see the stub
// methods in unsupported.go) but is safe for concurrent reads from many
// goroutines once published, because store, minIdx, maxIdx and descending
// are assigned once at construction and never changed afterward. The
// caller publishing a *FlatCellMap to other goroutines must still
// establish a happens-before edge (e.g. by sending the pointer over a
// channel, or via BuildArrayStore's errgroup.Wait) before those goroutines
// read through it.
type FlatCellMap struct {
	store      cellstore.CellStore
	minIdx     int
	maxIdx     int
	descending bool
}

// New returns a FlatCellMap over the entire store, oriented ascending.
func New(store cellstore.CellStore) *FlatCellMap {
	return &FlatCellMap{store: store, minIdx: 0, maxIdx: store.Len(), descending: false}
}

// Comparator returns the total order this map's keys are sorted by.
func (m *FlatCellMap) Comparator() base.Comparator { return base.DefaultComparator }

// Size returns the number of cells in the map's range.
func (m *FlatCellMap) Size() int { return m.maxIdx - m.minIdx }

// IsEmpty reports whether the map's range is empty.
func (m *FlatCellMap) IsEmpty() bool { return m.Size() == 0 }

// find performs a bounded binary search for needle over [minIdx, maxIdx),
// oriented by m.descending. It returns (index, true) if an equal cell was
// found, or (insertionPoint, false) otherwise, where insertionPoint is the
// first index whose cell is greater than needle in the oriented order
// (clamped to maxIdx if needle would sort after everything in range).
//
// This is the idiomatic two-value translation of the source algorithm's
// single signed int (positive = found index, negative = -(insertionPoint)
// - 1): see DESIGN.md for the Open Question this resolves.
func (m *FlatCellMap) find(needle base.Cell) (index int, found bool) {
	begin, end := m.minIdx, m.maxIdx-1
	for begin <= end {
		mid := begin + (end-begin)>>1
		cmp := base.Compare(m.store.Get(mid), needle)
		if cmp == 0 {
			return mid, true
		}
		if (cmp < 0) != m.descending {
			begin = mid + 1
		} else {
			end = mid - 1
		}
	}
	return begin, false
}

// getValidIndex derives a half-open boundary index for submap
// construction. key need not exist in the map. inclusive and tail
// together select which of the four boundary-correction cases applies
// (see spec.md §4.2's table).
func (m *FlatCellMap) getValidIndex(key base.Cell, inclusive, tail bool) int {
	index, found := m.find(key)
	if found {
		if m.descending && !(tail != inclusive) {
			index++
		} else if !m.descending && (tail != inclusive) {
			index++
		}
	}
	if index < m.minIdx {
		index = m.minIdx
	}
	if index > m.maxIdx {
		index = m.maxIdx
	}
	return index
}

func (m *FlatCellMap) createSubMap(minIdx, maxIdx int, descending bool) *FlatCellMap {
	return &FlatCellMap{store: m.store, minIdx: minIdx, maxIdx: maxIdx, descending: descending}
}

// SubMap returns the submap of keys between from and to, with the given
// inclusivity at each end, sharing this map's store and orientation.
func (m *FlatCellMap) SubMap(from base.Cell, fromInclusive bool, to base.Cell, toInclusive bool) *FlatCellMap {
	lo := m.getValidIndex(from, fromInclusive, true)
	hi := m.getValidIndex(to, toInclusive, false)
	if m.descending {
		return m.createSubMap(hi, lo, m.descending)
	}
	return m.createSubMap(lo, hi, m.descending)
}

// HeadMap returns the submap of keys strictly (or, if inclusive, not
// strictly) less than to.
func (m *FlatCellMap) HeadMap(to base.Cell, inclusive bool) *FlatCellMap {
	if m.descending {
		return m.createSubMap(m.getValidIndex(to, inclusive, false), m.maxIdx, m.descending)
	}
	return m.createSubMap(m.minIdx, m.getValidIndex(to, inclusive, false), m.descending)
}

// TailMap returns the submap of keys greater than (or, if inclusive, not
// less than) from.
func (m *FlatCellMap) TailMap(from base.Cell, inclusive bool) *FlatCellMap {
	if m.descending {
		return m.createSubMap(m.minIdx, m.getValidIndex(from, inclusive, true), m.descending)
	}
	return m.createSubMap(m.getValidIndex(from, inclusive, true), m.maxIdx, m.descending)
}

// DescendingMap returns a view over the same [minIdx, maxIdx) range with
// orientation inverted. DescendingMap().DescendingMap() yields a map equal,
// as a sequence, to the original.
func (m *FlatCellMap) DescendingMap() *FlatCellMap {
	return m.createSubMap(m.minIdx, m.maxIdx, !m.descending)
}

// FirstKey returns the first key in the map's orientation, or (Cell{},
// false) if empty.
func (m *FlatCellMap) FirstKey() (base.Cell, bool) {
	if m.IsEmpty() {
		return base.Cell{}, false
	}
	if m.descending {
		return m.store.Get(m.maxIdx - 1), true
	}
	return m.store.Get(m.minIdx), true
}

// LastKey returns the last key in the map's orientation, or (Cell{},
// false) if empty.
func (m *FlatCellMap) LastKey() (base.Cell, bool) {
	if m.IsEmpty() {
		return base.Cell{}, false
	}
	if m.descending {
		return m.store.Get(m.minIdx), true
	}
	return m.store.Get(m.maxIdx - 1), true
}

// LowerKey returns the strict predecessor of k (greatest key < k), or
// (Cell{}, false) if none.
func (m *FlatCellMap) LowerKey(k base.Cell) (base.Cell, bool) {
	if m.IsEmpty() {
		return base.Cell{}, false
	}
	// Whether k was found exactly or not, the predecessor is one index
	// before find's result: if found, that excludes k itself; if not
	// found, find already returned the insertion point (the first cell
	// greater than k), so stepping back one lands on the predecessor.
	index, _ := m.find(k)
	index--
	return m.cellAt(index)
}

// FloorKey returns the greatest key <= k, or (Cell{}, false) if none.
func (m *FlatCellMap) FloorKey(k base.Cell) (base.Cell, bool) {
	if m.IsEmpty() {
		return base.Cell{}, false
	}
	index, found := m.find(k)
	if !found {
		index--
	}
	return m.cellAt(index)
}

// CeilingKey returns the least key >= k, or (Cell{}, false) if none.
func (m *FlatCellMap) CeilingKey(k base.Cell) (base.Cell, bool) {
	if m.IsEmpty() {
		return base.Cell{}, false
	}
	index, _ := m.find(k)
	return m.cellAt(index)
}

// HigherKey returns the strict successor of k (least key > k), or
// (Cell{}, false) if none.
func (m *FlatCellMap) HigherKey(k base.Cell) (base.Cell, bool) {
	if m.IsEmpty() {
		return base.Cell{}, false
	}
	index, found := m.find(k)
	if found {
		index++
	}
	return m.cellAt(index)
}

// Get returns the cell equal to k, or (Cell{}, false) if absent.
func (m *FlatCellMap) Get(k base.Cell) (base.Cell, bool) {
	index, found := m.find(k)
	if !found {
		return base.Cell{}, false
	}
	return m.store.Get(index), true
}

// ContainsKey reports whether k is present in the map.
func (m *FlatCellMap) ContainsKey(k base.Cell) bool {
	_, found := m.find(k)
	return found
}

func (m *FlatCellMap) cellAt(index int) (base.Cell, bool) {
	if index < m.minIdx || index >= m.maxIdx {
		return base.Cell{}, false
	}
	return m.store.Get(index), true
}
