// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "bytes"

// Compare returns -1, 0 or +1 depending on whether a is 'less than', 'equal
// to' or 'greater than' b under the total cell order:
//
//  1. row lex-ascending
//  2. family lex-ascending
//  3. qualifier lex-ascending
//  4. timestamp descending (newer first)
//  5. type-tag in CellKind's fixed enum order, ascending
//  6. sequence-id descending (newer first)
//
// Embedding "newest first within a row" directly in the comparator lets
// every binary search and every heap merge inherit it without a special
// case at the call site.
func Compare(a, b Cell) int {
	if c := bytes.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	if c := bytes.Compare(a.Family, b.Family); c != 0 {
		return c
	}
	if c := bytes.Compare(a.Qualifier, b.Qualifier); c != 0 {
		return c
	}
	if a.Timestamp != b.Timestamp {
		if a.Timestamp > b.Timestamp {
			return -1
		}
		return 1
	}
	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}
		return 1
	}
	if a.SeqNum != b.SeqNum {
		if a.SeqNum > b.SeqNum {
			return -1
		}
		return 1
	}
	return 0
}

// CompareRows orders two cells by their row component only.
func CompareRows(a, b Cell) int {
	return bytes.Compare(a.Row, b.Row)
}

// MatchingRows reports whether a and b share the same row.
func MatchingRows(a, b Cell) bool {
	return CompareRows(a, b) == 0
}

// Comparator is the stateless total order used throughout the package. It is
// a tiny struct rather than a bare function value so that it can be passed
// around and compared for identity the way the teacher's db.Compare is, while
// still satisfying the "Comparator" accessor the navigable-map interface
// exposes.
type Comparator struct{}

// DefaultComparator is the package's single CellComparator instance. There is
// no configuration surface for it: the ordering is fixed by the data model.
var DefaultComparator = Comparator{}

// Compare implements the CellComparator contract.
func (Comparator) Compare(a, b Cell) int { return Compare(a, b) }

// CompareRows implements the CellComparator contract.
func (Comparator) CompareRows(a, b Cell) int { return CompareRows(a, b) }

// MatchingRows implements the CellComparator contract.
func (Comparator) MatchingRows(a, b Cell) bool { return MatchingRows(a, b) }
