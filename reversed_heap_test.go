// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package flatcell

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mahak/hbase/internal/base"
)

// seekScannerToStart positions a fresh ascending scanner over m at the
// last cell of the row at or before start, the way a real caller would
// before handing the scanner to NewReversedScanHeap.
func seekScannerToStart(t *testing.T, m *FlatCellMap, start base.Cell) ScannerPort {
	t.Helper()
	s := NewMapScanner(m)
	ok, err := s.BackwardSeek(start)
	require.NoError(t, err)
	require.True(t, ok)
	return s
}

func TestReversedScanHeap_SingleScannerVisitsRowsDescending(t *testing.T) {
	m := newMap(c("a", 1), c("b", 1), c("c", 1), c("d", 1))
	s := seekScannerToStart(t, m, c("d", 1))

	h := NewReversedScanHeap([]ScannerPort{s})
	defer h.Close()

	var got []base.Cell
	for {
		cell, ok := h.Next()
		if !ok {
			break
		}
		got = append(got, cell)
	}
	require.Equal(t, []base.Cell{c("d", 1), c("c", 1), c("b", 1), c("a", 1)}, got)
}

func TestReversedScanHeap_MultiCellRowsStayForwardWithinRow(t *testing.T) {
	// Row "b" has two cells at different timestamps; the comparator orders
	// newer first, so within "b" we expect ts=2 before ts=1.
	m := newMap(c("a", 1), c("b", 2), c("b", 1), c("c", 1))
	s := seekScannerToStart(t, m, c("c", 1))

	h := NewReversedScanHeap([]ScannerPort{s})
	defer h.Close()

	var got []base.Cell
	for {
		cell, ok := h.Next()
		if !ok {
			break
		}
		got = append(got, cell)
	}
	require.Equal(t, []base.Cell{c("c", 1), c("b", 2), c("b", 1), c("a", 1)}, got)
}

func TestReversedScanHeap_MergesTwoScanners(t *testing.T) {
	m1 := newMap(c("a", 1), c("c", 1))
	m2 := newMap(c("b", 1), c("d", 1))

	s1 := seekScannerToStart(t, m1, c("d", 1))
	s2 := seekScannerToStart(t, m2, c("d", 1))

	h := NewReversedScanHeap([]ScannerPort{s1, s2})
	defer h.Close()

	var got []base.Cell
	for {
		cell, ok := h.Next()
		if !ok {
			break
		}
		got = append(got, cell)
	}
	require.Equal(t, []base.Cell{c("d", 1), c("c", 1), c("b", 1), c("a", 1)}, got)
}

func TestReversedScanHeap_SeekToPreviousRow(t *testing.T) {
	m := newMap(c("a", 1), c("b", 1), c("c", 1), c("d", 1))
	s := seekScannerToStart(t, m, c("d", 1))

	h := NewReversedScanHeap([]ScannerPort{s})
	defer h.Close()

	cell, ok := h.Next()
	require.True(t, ok)
	require.Equal(t, c("d", 1), cell)

	ok, err := h.SeekToPreviousRow(c("b", 1))
	require.NoError(t, err)
	require.True(t, ok)

	cell, ok = h.Peek()
	require.True(t, ok)
	require.Equal(t, c("a", 1), cell)
}

func TestReversedScanHeap_SeekToPreviousRowSkipsScannerAlreadyPastIt(t *testing.T) {
	// Single scanner over rows e, c, b (descending scan order e -> c -> b).
	// After two Next() calls it has already emitted e and c and sits on b.
	// A SeekToPreviousRow call targeting e's row must not pull it back
	// forward onto c: c was already emitted, and re-seeking would re-yield
	// it.
	m := newMap(c("b", 1), c("c", 1), c("e", 1))
	s := seekScannerToStart(t, m, c("e", 1))

	h := NewReversedScanHeap([]ScannerPort{s})
	defer h.Close()

	cell, ok := h.Next()
	require.True(t, ok)
	require.Equal(t, c("e", 1), cell)

	cell, ok = h.Next()
	require.True(t, ok)
	require.Equal(t, c("c", 1), cell)

	ok, err := h.SeekToPreviousRow(c("e", 1))
	require.NoError(t, err)
	require.True(t, ok)

	cell, ok = h.Peek()
	require.True(t, ok)
	require.Equal(t, c("b", 1), cell)
}

func TestReversedScanHeap_ForwardOpsRejected(t *testing.T) {
	m := newMap(c("a", 1))
	s := seekScannerToStart(t, m, c("a", 1))
	h := NewReversedScanHeap([]ScannerPort{s})
	defer h.Close()

	_, err := h.Seek(c("a", 1))
	require.ErrorIs(t, err, base.ErrIllegalState)
	_, err = h.Reseek(c("a", 1))
	require.ErrorIs(t, err, base.ErrIllegalState)
	require.ErrorIs(t, h.RequestSeek(c("a", 1), true, false), base.ErrIllegalState)
	_, err = h.SeekToLastRow(c("a", 1))
	require.ErrorIs(t, err, base.ErrUnsupported)
}
