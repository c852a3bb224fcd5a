package scan

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the byte range one parallel scan worker owns.
const DefaultChunkSize int64 = 8 << 20

// Options controls a parallel scan.
type Options struct {
	ChunkSize int64 // bytes per chunk; 0 means DefaultChunkSize
	Workers   int   // max concurrent chunk scans; 0 means GOMAXPROCS
}

// ScanParallel splits the source into fixed-size byte ranges and scans
// them concurrently. Each chunk owns the records whose headline starts
// inside its range and reads past its end to finish straddling blocks,
// so no record is split or duplicated. Per-chunk results are
// concatenated in chunk order, making the output identical to a
// sequential Scan. Workers share nothing but the immutable source; each
// owns its range and its result slot exclusively.
//
// Cancelling ctx abandons chunks that have not started; running chunks
// finish their bounded range.
func ScanParallel(ctx context.Context, src *Source, opts Options) ([]Record, error) {
	size := src.Size()
	if size == 0 {
		return nil, nil
	}
	chunk := opts.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	n := int((size + chunk - 1) / chunk)
	results := make([][]Record, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := int64(i) * chunk
			end := start + chunk
			if end > size {
				end = size
			}
			var recs []Record
			err := scanRange(src, start, end, func(r Record) bool {
				recs = append(recs, r)
				return true
			})
			if err != nil {
				return err
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Record
	for _, rs := range results {
		out = append(out, rs...)
	}
	return out, nil
}
