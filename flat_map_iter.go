// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package flatcell

import (
	"iter"

	"github.com/mahak/hbase/internal/base"
)

// NavigableMap is the read-only interface consumers depend on. It
// deliberately has no Put/Remove/Clear/etc.: rather than returning
// base.ErrUnsupported from methods that shouldn't exist on a frozen map,
// the trait simply doesn't expose them, eliminating that class of runtime
// failure by construction (design note: prefer this over a dedicated error
// kind wherever the type system can do the job). *FlatCellMap additionally
// implements the mutating methods directly (see unsupported.go) for
// callers that hold a concrete *FlatCellMap and call them anyway.
type NavigableMap interface {
	Size() int
	IsEmpty() bool
	Comparator() base.Comparator

	FirstKey() (base.Cell, bool)
	LastKey() (base.Cell, bool)
	FloorKey(base.Cell) (base.Cell, bool)
	CeilingKey(base.Cell) (base.Cell, bool)
	LowerKey(base.Cell) (base.Cell, bool)
	HigherKey(base.Cell) (base.Cell, bool)

	FloorEntry(base.Cell) (Entry, bool)
	CeilingEntry(base.Cell) (Entry, bool)
	LowerEntry(base.Cell) (Entry, bool)
	HigherEntry(base.Cell) (Entry, bool)
	FirstEntry() (Entry, bool)
	LastEntry() (Entry, bool)

	Get(base.Cell) (base.Cell, bool)
	ContainsKey(base.Cell) bool

	SubMap(from base.Cell, fromInclusive bool, to base.Cell, toInclusive bool) *FlatCellMap
	HeadMap(to base.Cell, inclusive bool) *FlatCellMap
	TailMap(from base.Cell, inclusive bool) *FlatCellMap
	DescendingMap() *FlatCellMap

	Values() iter.Seq[base.Cell]
}

var _ NavigableMap = (*FlatCellMap)(nil)

// Values returns a single-pass iterator over the map's cells in its
// orientation: ascending store[minIdx:maxIdx) for an ascending map, the
// reverse for a descending one. Because the backing store is immutable,
// there is no concurrent-modification hazard to guard against.
func (m *FlatCellMap) Values() iter.Seq[base.Cell] {
	return func(yield func(base.Cell) bool) {
		if m.descending {
			for i := m.maxIdx - 1; i >= m.minIdx; i-- {
				if !yield(m.store.Get(i)) {
					return
				}
			}
			return
		}
		for i := m.minIdx; i < m.maxIdx; i++ {
			if !yield(m.store.Get(i)) {
				return
			}
		}
	}
}
