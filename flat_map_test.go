// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package flatcell

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mahak/hbase/internal/base"
	"github.com/mahak/hbase/internal/cellstore"
)

func c(row string, ts int64) base.Cell {
	return base.Cell{Row: []byte(row), Timestamp: ts, Kind: base.KindPut}
}

func newMap(cells ...base.Cell) *FlatCellMap {
	cellstore.SortCells(cells)
	return New(cellstore.NewArrayStore(cells))
}

func TestFlatCellMap_FloorCeilingScenario1(t *testing.T) {
	// spec.md §8 scenario 1: store [(a,2),(a,1),(b,3),(c,1)], query (b,2).
	m := newMap(c("a", 2), c("a", 1), c("b", 3), c("c", 1))
	require.Equal(t, 4, m.Size())

	floor, ok := m.FloorKey(c("b", 2))
	require.True(t, ok)
	require.Equal(t, c("b", 3), floor)

	ceil, ok := m.CeilingKey(c("b", 2))
	require.True(t, ok)
	require.Equal(t, c("c", 1), ceil)
}

func TestFlatCellMap_LowerHigher(t *testing.T) {
	m := newMap(c("a", 2), c("a", 1), c("b", 3), c("c", 1))

	lower, ok := m.LowerKey(c("b", 3))
	require.True(t, ok)
	require.Equal(t, c("a", 1), lower)

	higher, ok := m.HigherKey(c("b", 3))
	require.True(t, ok)
	require.Equal(t, c("c", 1), higher)

	// Not-present query: Lower/Higher/Floor/Ceiling must all agree on the
	// same insertion point when the key itself is absent.
	lower, ok = m.LowerKey(c("b", 2))
	require.True(t, ok)
	require.Equal(t, c("b", 3), lower)
	higher, ok = m.HigherKey(c("b", 2))
	require.True(t, ok)
	require.Equal(t, c("c", 1), higher)
}

func TestFlatCellMap_BoundaryAtZero(t *testing.T) {
	// Regression for the Open Question: find() must clamp to minIdx, never
	// return a negative index, when the query sorts before everything.
	m := newMap(c("b", 1), c("c", 1))
	_, ok := m.LowerKey(c("a", 1))
	require.False(t, ok)
	_, ok = m.FloorKey(c("a", 1))
	require.False(t, ok)
	ceil, ok := m.CeilingKey(c("a", 1))
	require.True(t, ok)
	require.Equal(t, c("b", 1), ceil)
}

func TestFlatCellMap_BoundaryAtEnd(t *testing.T) {
	m := newMap(c("a", 1), c("b", 1))
	_, ok := m.HigherKey(c("c", 1))
	require.False(t, ok)
	_, ok = m.CeilingKey(c("c", 1))
	require.False(t, ok)
	floor, ok := m.FloorKey(c("c", 1))
	require.True(t, ok)
	require.Equal(t, c("b", 1), floor)
}

func TestFlatCellMap_SubMapBoundaries(t *testing.T) {
	// spec.md §8 scenario 3: subMap boundary correctness on [a,b,c,d].
	m := newMap(c("a", 1), c("b", 1), c("c", 1), c("d", 1))

	sub := m.SubMap(c("a", 1), false, c("c", 1), true)
	require.Equal(t, []base.Cell{c("b", 1), c("c", 1)}, collect(sub))

	sub = m.SubMap(c("a", 1), true, c("c", 1), false)
	require.Equal(t, []base.Cell{c("a", 1), c("b", 1)}, collect(sub))

	head := m.HeadMap(c("c", 1), false)
	require.Equal(t, []base.Cell{c("a", 1), c("b", 1)}, collect(head))

	tail := m.TailMap(c("b", 1), true)
	require.Equal(t, []base.Cell{c("b", 1), c("c", 1), c("d", 1)}, collect(tail))
}

func TestFlatCellMap_DescendingRoundTrip(t *testing.T) {
	m := newMap(c("a", 1), c("b", 1), c("c", 1))
	asc := collect(m)
	desc := collect(m.DescendingMap())
	require.Len(t, desc, len(asc))
	for i, cell := range desc {
		require.Equal(t, asc[len(asc)-1-i], cell)
	}
	// Round-tripping twice must recover the original orientation.
	require.Equal(t, asc, collect(m.DescendingMap().DescendingMap()))
}

func TestFlatCellMap_HeadMapIdempotent(t *testing.T) {
	m := newMap(c("a", 1), c("b", 1), c("c", 1), c("d", 1))
	h1 := m.HeadMap(c("c", 1), true)
	h2 := h1.HeadMap(c("c", 1), true)
	require.Equal(t, collect(h1), collect(h2))
}

func TestFlatCellMap_EmptyMap(t *testing.T) {
	m := New(cellstore.EmptyStore{})
	require.True(t, m.IsEmpty())
	_, ok := m.FirstKey()
	require.False(t, ok)
	_, ok = m.LastKey()
	require.False(t, ok)
	_, ok = m.FloorKey(c("a", 1))
	require.False(t, ok)
}

func TestFlatCellMap_UnsupportedMutators(t *testing.T) {
	m := newMap(c("a", 1))
	require.ErrorIs(t, m.Put(c("b", 1)), base.ErrUnsupported)
	require.ErrorIs(t, m.Remove(c("a", 1)), base.ErrUnsupported)
	require.ErrorIs(t, m.Clear(), base.ErrUnsupported)
}

func collect(m *FlatCellMap) []base.Cell {
	var out []base.Cell
	for cell := range m.Values() {
		out = append(out, cell)
	}
	return out
}
