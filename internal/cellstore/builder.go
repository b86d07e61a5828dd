// Copyright 2026 The Flatcell Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package cellstore

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mahak/hbase/internal/base"
)

// BuildArrayStore builds an ArrayStore from N independently-produced,
// unsorted cell chunks. Each chunk is cloned concurrently (via errgroup),
// then the whole set is sorted once by base.Compare. The
// returned store is handed to the caller only after every goroutine has
// joined in errgroup.Wait, which is the happens-before edge the data model
// requires between "construction completes" and "another thread observes
// the reference": no further synchronization is needed by readers of the
// returned *ArrayStore.
func BuildArrayStore(ctx context.Context, chunks [][]base.Cell) (*ArrayStore, error) {
	cloned := make([][]base.Cell, len(chunks))
	g, _ := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			out := make([]base.Cell, len(chunk))
			for j, c := range chunk {
				out[j] = c.Clone()
			}
			cloned[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, c := range cloned {
		total += len(c)
	}
	merged := make([]base.Cell, 0, total)
	for _, c := range cloned {
		merged = append(merged, c...)
	}
	SortCells(merged)
	return NewArrayStore(merged), nil
}
