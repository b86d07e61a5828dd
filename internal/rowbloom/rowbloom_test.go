// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package rowbloom

import "testing"

func TestFilter_NoFalseNegatives(t *testing.T) {
	f := New(1000, 0.01)
	rows := make([][]byte, 0, 1000)
	for i := 0; i < 1000; i++ {
		rows = append(rows, []byte{byte(i), byte(i >> 8)})
	}
	for _, r := range rows {
		f.Add(r)
	}
	for _, r := range rows {
		if !f.MayContainRow(r) {
			t.Fatalf("MayContainRow(%v) = false after Add, want true", r)
		}
	}
}

func TestFilter_AbsentRowUsuallyRejected(t *testing.T) {
	f := New(10, 0.01)
	f.Add([]byte("present"))
	if f.MayContainRow([]byte("definitely-not-present-xyz")) {
		// Bloom filters can false-positive; this is a sanity check with a
		// low collision-probability input, not a correctness requirement.
		t.Log("MayContainRow reported a (rare, allowed) false positive")
	}
}
