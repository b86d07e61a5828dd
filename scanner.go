// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package flatcell

import "github.com/mahak/hbase/internal/base"

// ScannerPort is the uniform view over any source of sorted cells that
// ForwardScanHeap and ReversedScanHeap merge: a FlatCellMap's values, a
// file-backed reader, a network-backed stream, or a test fake. The heap
// treats it opaquely and never calls a method on a scanner after Close.
type ScannerPort interface {
	// Peek returns the cell a subsequent Next would return, without
	// advancing. ok is false iff the scanner is exhausted.
	Peek() (cell base.Cell, ok bool)
	// Next returns the current Peek and advances. ok is false iff the
	// scanner is exhausted.
	Next() (cell base.Cell, ok bool)
	// Seek positions the scanner so Peek is the least cell >= key in
	// ascending order. It fails for reverse-only scanners.
	Seek(key base.Cell) (bool, error)
	// Reseek is like Seek, but the caller promises key is not before the
	// current position, allowing the scanner to skip redundant work.
	Reseek(key base.Cell) (bool, error)
	// SeekToPreviousRow positions the scanner at the first cell (in
	// ascending order, ready for a forward walk) of the row immediately
	// preceding key's row.
	SeekToPreviousRow(key base.Cell) (bool, error)
	// BackwardSeek positions the scanner so Peek is the greatest cell <=
	// key in the total order.
	BackwardSeek(key base.Cell) (bool, error)
	// Close releases the scanner's resources. Idempotent.
	Close() error
}

// NewMapScanner returns a ScannerPort over m's values, in m's orientation.
// Because m is immutable, the scanner only keeps an index into m's range
// and reads each cell from the underlying store on demand, rather than
// copying cells.
func NewMapScanner(m *FlatCellMap) ScannerPort {
	return &mapIndexScanner{m: m, atEnd: m.IsEmpty()}
}

// mapIndexScanner is the zero-copy ScannerPort implementation: it walks
// the same store FlatCellMap holds, honoring orientation, without
// snapshotting cells into a slice.
type mapIndexScanner struct {
	m     *FlatCellMap
	pos   int // cells already consumed, counted from the oriented start
	atEnd bool
}

func (s *mapIndexScanner) Peek() (base.Cell, bool) {
	if s.atEnd {
		return base.Cell{}, false
	}
	return s.m.store.Get(s.rawIndex()), true
}

// rawIndex returns the store index the scanner's logical cursor currently
// refers to.
func (s *mapIndexScanner) rawIndex() int {
	if s.m.descending {
		return s.m.maxIdx - 1 - s.pos
	}
	return s.m.minIdx + s.pos
}

func (s *mapIndexScanner) Next() (base.Cell, bool) {
	cell, ok := s.Peek()
	if !ok {
		return base.Cell{}, false
	}
	s.pos++
	s.checkEnd()
	return cell, true
}

func (s *mapIndexScanner) checkEnd() {
	if s.m.descending {
		s.atEnd = s.rawIndex() < s.m.minIdx
	} else {
		s.atEnd = s.rawIndex() >= s.m.maxIdx
	}
}

func (s *mapIndexScanner) Seek(key base.Cell) (bool, error) {
	if s.m.descending {
		return false, base.IllegalStatef("Seek on a descending-oriented scanner")
	}
	return s.seekAscendingTo(key), nil
}

func (s *mapIndexScanner) Reseek(key base.Cell) (bool, error) { return s.Seek(key) }

func (s *mapIndexScanner) seekAscendingTo(key base.Cell) bool {
	index, found := s.m.find(key)
	if !found && index < s.m.minIdx {
		index = s.m.minIdx
	}
	s.pos = index - s.m.minIdx
	s.checkEnd()
	return !s.atEnd
}

func (s *mapIndexScanner) SeekToPreviousRow(key base.Cell) (bool, error) {
	sub := s.m.HeadMap(rowFloor(key.Row), false)
	lastOfPrevRow, ok := sub.LastKey()
	if !ok {
		s.atEnd = true
		return false, nil
	}
	// lastOfPrevRow is the greatest cell of the previous row; rewind to
	// that row's first cell so a subsequent forward Next() walks the row
	// from its start, the way a reverse scan needs to visit it.
	firstOfPrevRow, ok := s.m.CeilingKey(rowFloor(lastOfPrevRow.Row))
	if !ok {
		s.atEnd = true
		return false, nil
	}
	return s.repositionTo(firstOfPrevRow), nil
}

func (s *mapIndexScanner) BackwardSeek(key base.Cell) (bool, error) {
	cell, ok := s.m.FloorKey(key)
	if !ok {
		s.atEnd = true
		return false, nil
	}
	return s.repositionTo(cell), nil
}

// repositionTo points the scanner's cursor at exactly cell (which must be
// present in the map) and reports whether the scanner now has a valid
// Peek.
func (s *mapIndexScanner) repositionTo(cell base.Cell) bool {
	index, found := s.m.find(cell)
	if !found {
		s.atEnd = true
		return false
	}
	if s.m.descending {
		s.pos = s.m.maxIdx - 1 - index
	} else {
		s.pos = index - s.m.minIdx
	}
	s.checkEnd()
	return !s.atEnd
}

func (s *mapIndexScanner) Close() error { s.atEnd = true; return nil }

// rowFloor returns the smallest possible cell for a given row: used as the
// "to" boundary of a head-map lookup for the greatest cell in a strictly
// smaller row.
func rowFloor(row []byte) base.Cell {
	return base.Cell{Row: row, Timestamp: maxTimestamp}
}

// maxTimestamp sorts before every real timestamp under the comparator's
// descending-timestamp rule, making a cell stamped with it compare as the
// smallest cell for its row.
const maxTimestamp = int64(1)<<63 - 1
