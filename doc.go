// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package flatcell implements the in-memory ordered-map and scan-merging
// machinery used by a column-oriented storage engine's region server: an
// immutable, array-backed navigable map over cells (FlatCellMap), and the
// priority-queue based k-way merges that scan over many such maps and
// other sorted cell sources (ForwardScanHeap, ReversedScanHeap).
package flatcell
