// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package rowbloom implements a small fixed-size Bloom filter over row
// keys, used as the "Bloom-filter hint" ForwardScanHeap.RequestSeek
// consults before paying for a seek into a scanner that provably does not
// hold the requested row.
package rowbloom

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Filter is a Bloom filter over row keys, backed by a bitset and hashed
// with two independent xxhash lanes combined via double hashing (Kirsch &
// Mitzenmacher): hash_i = h1 + i*h2. This avoids running k independent hash
// functions while keeping a low false-positive rate for k up to a few
// dozen.
type Filter struct {
	bits []uint64
	k    int
}

// New returns a Filter sized for approximately n entries at false-positive
// rate p (0 < p < 1). Sizing follows the standard formulas m = -n*ln(p) /
// ln(2)^2 and k = (m/n)*ln(2).
func New(n int, p float64) *Filter {
	if n <= 0 {
		n = 1
	}
	m, k := optimalParams(n, p)
	words := (m + 63) / 64
	if words < 1 {
		words = 1
	}
	if k < 1 {
		k = 1
	}
	return &Filter{bits: make([]uint64, words), k: k}
}

// Add inserts row into the filter.
func (f *Filter) Add(row []byte) {
	h1, h2 := f.hashes(row)
	nbits := uint64(len(f.bits) * 64)
	for i := 0; i < f.k; i++ {
		bit := (h1 + uint64(i)*h2) % nbits
		f.bits[bit/64] |= 1 << (bit % 64)
	}
}

// MayContainRow reports whether row might be present. false is a
// definitive answer: the caller can safely skip a seek for that row.
func (f *Filter) MayContainRow(row []byte) bool {
	h1, h2 := f.hashes(row)
	nbits := uint64(len(f.bits) * 64)
	for i := 0; i < f.k; i++ {
		bit := (h1 + uint64(i)*h2) % nbits
		if f.bits[bit/64]&(1<<(bit%64)) == 0 {
			return false
		}
	}
	return true
}

// salt is appended to row to derive the second, independent hash lane from
// the single xxhash primitive: h1 = xxhash(row), h2 = xxhash(row || salt).
var salt = []byte{0x9e}

func (f *Filter) hashes(row []byte) (uint64, uint64) {
	h1 := xxhash.Sum64(row)
	d := xxhash.New()
	_, _ = d.Write(row)
	_, _ = d.Write(salt)
	h2 := d.Sum64()
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

func optimalParams(n int, p float64) (m, k int) {
	// m = ceil(-n*ln(p) / ln(2)^2), k = round((m/n)*ln(2))
	const ln2sq = 0.4804530139182014 // ln(2)^2
	fn := float64(n)
	fm := -fn * math.Log(p) / ln2sq
	m = int(fm) + 1
	k = int(float64(m)/fn*math.Ln2 + 0.5)
	return m, k
}
