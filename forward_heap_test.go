// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package flatcell

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mahak/hbase/internal/base"
)

func TestForwardScanHeap_MergesAscending(t *testing.T) {
	m1 := newMap(c("a", 1), c("c", 1))
	m2 := newMap(c("b", 1), c("d", 1))

	h := NewForwardScanHeap([]ScannerPort{NewMapScanner(m1), NewMapScanner(m2)})
	defer h.Close()

	var got []base.Cell
	for {
		cell, ok := h.Next()
		if !ok {
			break
		}
		got = append(got, cell)
	}
	require.Equal(t, []base.Cell{c("a", 1), c("b", 1), c("c", 1), c("d", 1)}, got)
}

func TestForwardScanHeap_EmptyScannersDropped(t *testing.T) {
	empty := newMap()
	m1 := newMap(c("a", 1))

	h := NewForwardScanHeap([]ScannerPort{NewMapScanner(empty), NewMapScanner(m1)})
	defer h.Close()

	cell, ok := h.Next()
	require.True(t, ok)
	require.Equal(t, c("a", 1), cell)
	_, ok = h.Next()
	require.False(t, ok)
}

func TestForwardScanHeap_Seek(t *testing.T) {
	m1 := newMap(c("a", 1), c("c", 1))
	m2 := newMap(c("b", 1), c("d", 1))

	h := NewForwardScanHeap([]ScannerPort{NewMapScanner(m1), NewMapScanner(m2)})
	defer h.Close()

	require.NoError(t, h.Seek(c("b", 1)))
	cell, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, c("b", 1), cell)
}

func TestForwardScanHeap_RequestSeekRejectsBackward(t *testing.T) {
	m1 := newMap(c("a", 1))
	h := NewForwardScanHeap([]ScannerPort{NewMapScanner(m1)})
	defer h.Close()

	err := h.RequestSeek(c("a", 1), false, false)
	require.ErrorIs(t, err, base.ErrIllegalState)
}
