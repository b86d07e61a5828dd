// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package cellstore

import (
	"context"
	"testing"

	"github.com/mahak/hbase/internal/base"
)

func mkcell(row, fam, qual string, ts int64, kind base.CellKind, val string) base.Cell {
	return base.Cell{
		Row: []byte(row), Family: []byte(fam), Qualifier: []byte(qual),
		Timestamp: ts, Kind: kind, Value: []byte(val),
	}
}

func TestEncodeDecodeCell_RoundTrip(t *testing.T) {
	testCases := []base.Cell{
		mkcell("row1", "cf", "q1", 42, base.KindPut, "value1"),
		mkcell("", "", "", 0, base.KindDelete, ""),
		{Row: []byte("r"), Family: []byte("f"), Qualifier: []byte("q"), Timestamp: -1, Kind: base.KindDeleteFamily, Value: []byte("v"), Tags: []byte("tag")},
	}
	for _, c := range testCases {
		buf := EncodeCell(nil, c)
		if len(buf) != EncodedSize(c) {
			t.Fatalf("EncodedSize(%v) = %d, len(EncodeCell) = %d", c, EncodedSize(c), len(buf))
		}
		got, err := DecodeCell(buf)
		if err != nil {
			t.Fatalf("DecodeCell: %v", err)
		}
		if base.Compare(got, c) != 0 {
			t.Errorf("round trip mismatch: got %v, want %v", got, c)
		}
	}
}

func TestByteStore_MatchesArrayStore(t *testing.T) {
	cells := []base.Cell{
		mkcell("a", "cf", "q", 2, base.KindPut, "v1"),
		mkcell("a", "cf", "q", 1, base.KindPut, "v0"),
		mkcell("b", "cf", "q", 5, base.KindDelete, ""),
	}
	var buf []byte
	for _, c := range cells {
		buf = EncodeCell(buf, c)
	}
	bs, err := NewByteStore(buf)
	if err != nil {
		t.Fatalf("NewByteStore: %v", err)
	}
	if bs.Len() != len(cells) {
		t.Fatalf("Len() = %d, want %d", bs.Len(), len(cells))
	}
	for i, want := range cells {
		got := bs.Get(i)
		if base.Compare(got, want) != 0 || string(got.Value) != string(want.Value) {
			t.Errorf("Get(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestBuildArrayStore_SortsAndClones(t *testing.T) {
	chunkA := []base.Cell{mkcell("c", "cf", "q", 1, base.KindPut, "1")}
	chunkB := []base.Cell{
		mkcell("a", "cf", "q", 1, base.KindPut, "2"),
		mkcell("b", "cf", "q", 1, base.KindPut, "3"),
	}
	store, err := BuildArrayStore(context.Background(), [][]base.Cell{chunkA, chunkB})
	if err != nil {
		t.Fatalf("BuildArrayStore: %v", err)
	}
	if store.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", store.Len())
	}
	rows := []string{"a", "b", "c"}
	for i, want := range rows {
		if got := string(store.Get(i).Row); got != want {
			t.Errorf("Get(%d).Row = %q, want %q", i, got, want)
		}
	}
	chunkA[0].Row[0] = 'z'
	if string(store.Get(2).Row) != "c" {
		t.Errorf("mutating input chunk after BuildArrayStore affected the store")
	}
}
