// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package flatcell

import "github.com/mahak/hbase/internal/base"

// Entry is a key/value pair where both key and value are the same
// underlying cell, matching the data model's "a cell is logically a
// key-value where both key and value refer to the same underlying tuple."
type Entry struct {
	cell base.Cell
}

// Key returns the entry's key.
func (e Entry) Key() base.Cell { return e.cell }

// Value returns the entry's value, identical to its key.
func (e Entry) Value() base.Cell { return e.cell }

// SetValue always fails: entries over a FlatCellMap are read-only.
func (e Entry) SetValue(base.Cell) error { return base.Unsupportedf("Entry.SetValue") }

func entryOf(c base.Cell, ok bool) (Entry, bool) {
	if !ok {
		return Entry{}, false
	}
	return Entry{cell: c}, true
}

// FloorEntry returns the entry for FloorKey(k).
func (m *FlatCellMap) FloorEntry(k base.Cell) (Entry, bool) { return entryOf(m.FloorKey(k)) }

// CeilingEntry returns the entry for CeilingKey(k).
func (m *FlatCellMap) CeilingEntry(k base.Cell) (Entry, bool) { return entryOf(m.CeilingKey(k)) }

// LowerEntry returns the entry for LowerKey(k).
func (m *FlatCellMap) LowerEntry(k base.Cell) (Entry, bool) { return entryOf(m.LowerKey(k)) }

// HigherEntry returns the entry for HigherKey(k).
func (m *FlatCellMap) HigherEntry(k base.Cell) (Entry, bool) { return entryOf(m.HigherKey(k)) }

// FirstEntry returns the entry for FirstKey.
func (m *FlatCellMap) FirstEntry() (Entry, bool) { return entryOf(m.FirstKey()) }

// LastEntry returns the entry for LastKey.
func (m *FlatCellMap) LastEntry() (Entry, bool) { return entryOf(m.LastKey()) }
