// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package flatcell

import "github.com/mahak/hbase/internal/base"

// The methods in this file all fail with base.ErrUnsupported. They exist
// for callers that hold a concrete *FlatCellMap and call a mutating
// navigable-map method directly; code that only needs the read-only
// surface should depend on the NavigableMap interface instead, which
// doesn't expose any of these.
//
// Assuming an array of cells is allocated and sorted externally, then
// handed to New/NewArrayStore at construction time: the structure is
// immutable from that point on.

// Put always fails: FlatCellMap is immutable.
func (m *FlatCellMap) Put(base.Cell) error { return base.Unsupportedf("Put") }

// Remove always fails: FlatCellMap is immutable.
func (m *FlatCellMap) Remove(base.Cell) error { return base.Unsupportedf("Remove") }

// Clear always fails: FlatCellMap is immutable.
func (m *FlatCellMap) Clear() error { return base.Unsupportedf("Clear") }

// PutAll always fails: FlatCellMap is immutable.
func (m *FlatCellMap) PutAll([]base.Cell) error { return base.Unsupportedf("PutAll") }

// PollFirstEntry always fails: it would mutate the map.
func (m *FlatCellMap) PollFirstEntry() (Entry, error) {
	return Entry{}, base.Unsupportedf("PollFirstEntry")
}

// PollLastEntry always fails: it would mutate the map.
func (m *FlatCellMap) PollLastEntry() (Entry, error) {
	return Entry{}, base.Unsupportedf("PollLastEntry")
}

// KeySet always fails: there is no backing Set view over an array-backed
// map without materializing one, and the navigable-map contract treats
// this as a mutating-capable view regardless.
func (m *FlatCellMap) KeySet() error { return base.Unsupportedf("KeySet") }

// NavigableKeySet always fails, for the same reason as KeySet.
func (m *FlatCellMap) NavigableKeySet() error { return base.Unsupportedf("NavigableKeySet") }

// DescendingKeySet always fails, for the same reason as KeySet.
func (m *FlatCellMap) DescendingKeySet() error { return base.Unsupportedf("DescendingKeySet") }

// EntrySet always fails, for the same reason as KeySet; use Values for
// read-only iteration instead.
func (m *FlatCellMap) EntrySet() error { return base.Unsupportedf("EntrySet") }

// ContainsValue always fails: use ContainsKey instead (key and value are
// the same cell).
func (m *FlatCellMap) ContainsValue(base.Cell) (bool, error) {
	return false, base.Unsupportedf("ContainsValue: use ContainsKey instead")
}
