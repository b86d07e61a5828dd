// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package cellstore

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// MmapStore is a CellStore backed by a memory-mapped, read-only region: the
// off-heap backing option the data model explicitly allows ("an external
// collaborator may back the storage by memory-mapped or heap buffers"). It
// decodes through the same wire layout as ByteStore, just over mm instead of
// a plain []byte.
type MmapStore struct {
	*ByteStore
	mm mmap.MMap
}

// OpenMmapStore maps f read-only and builds a CellStore over its contents,
// which must already be laid out as a sequence of §6-encoded slots in
// ascending cell order.
func OpenMmapStore(f *os.File) (*MmapStore, error) {
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	bs, err := NewByteStore(mm)
	if err != nil {
		_ = mm.Unmap()
		return nil, err
	}
	return &MmapStore{ByteStore: bs, mm: mm}, nil
}

// Close unmaps the backing region. The store must not be read from again
// afterwards.
func (s *MmapStore) Close() error {
	return s.mm.Unmap()
}
