// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package cellstore

import (
	"github.com/cockroachdb/errors"

	"github.com/mahak/hbase/internal/base"
)

// ByteStore is a CellStore over a single encoded byte region (the §6 wire
// layout), decoding cells on demand rather than materializing base.Cell
// objects up front. offsets[i] is the start of the i-th slot; the slot's end
// is offsets[i+1], or len(buf) for the last slot.
type ByteStore struct {
	buf     []byte
	offsets []int
}

// NewByteStore builds a ByteStore over buf, locating each slot boundary by
// decoding slots in turn and advancing by each one's EncodedSize. buf must
// already contain cells in ascending base.Compare order; NewByteStore does
// not sort. Because the wire layout's tags-length field is always present
// (see encode.go), decoding one slot never needs to look past its own end
// to tell whether a tags block follows, so this scan cannot mistake a
// later slot's bytes for the current one's tags.
func NewByteStore(buf []byte) (*ByteStore, error) {
	offsets := make([]int, 0, 16)
	pos := 0
	for pos < len(buf) {
		offsets = append(offsets, pos)
		c, err := DecodeCell(buf[pos:])
		if err != nil {
			return nil, errors.Wrapf(err, "cellstore: scanning slot at offset %d", pos)
		}
		pos += EncodedSize(c)
	}
	if pos != len(buf) {
		return nil, errors.Newf("cellstore: trailing %d bytes after last slot", len(buf)-pos)
	}
	return &ByteStore{buf: buf, offsets: offsets}, nil
}

// Len implements CellStore.
func (s *ByteStore) Len() int { return len(s.offsets) }

// Get implements CellStore. It panics on a decode error, consistent with
// CellStore's precondition that the store's contents were valid at
// construction time; the store is immutable once published.
func (s *ByteStore) Get(i int) base.Cell {
	start := s.offsets[i]
	end := len(s.buf)
	if i+1 < len(s.offsets) {
		end = s.offsets[i+1]
	}
	c, err := DecodeCell(s.buf[start:end])
	if err != nil {
		panic(errors.Wrapf(err, "cellstore: decoding slot %d", i))
	}
	return c
}
