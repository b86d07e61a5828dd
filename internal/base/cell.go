// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines the fundamental types shared by the flat map and
// scan-merging heaps: cells, the cell comparator, and the error and logging
// collaborators every other package depends on.
package base

import "fmt"

// CellKind is the type-tag component of a cell's key.
type CellKind uint8

// Fixed enum order for CellComparator rule 5. Put sorts first; the delete
// variants sort after it in the order listed below.
const (
	KindPut CellKind = iota
	KindDeleteFamilyVersion
	KindDeleteColumn
	KindDelete
	KindDeleteFamily
)

func (k CellKind) String() string {
	switch k {
	case KindPut:
		return "Put"
	case KindDeleteFamilyVersion:
		return "DeleteFamilyVersion"
	case KindDeleteColumn:
		return "DeleteColumn"
	case KindDelete:
		return "Delete"
	case KindDeleteFamily:
		return "DeleteFamily"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Cell is an immutable row/family/qualifier/timestamp/type tuple. Both key
// and value are carried by the same tuple: Value() and the key components
// all refer to the same underlying object.
type Cell struct {
	Row       []byte
	Family    []byte
	Qualifier []byte
	Timestamp int64
	Kind      CellKind
	Value     []byte
	Tags      []byte
	SeqNum    uint64
}

// Clone returns a deep copy of the cell's byte slices.
func (c Cell) Clone() Cell {
	clone := c
	clone.Row = cloneBytes(c.Row)
	clone.Family = cloneBytes(c.Family)
	clone.Qualifier = cloneBytes(c.Qualifier)
	clone.Value = cloneBytes(c.Value)
	clone.Tags = cloneBytes(c.Tags)
	return clone
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (c Cell) String() string {
	return fmt.Sprintf("%s/%s:%s/%d/%s", c.Row, c.Family, c.Qualifier, c.Timestamp, c.Kind)
}
