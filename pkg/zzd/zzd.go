// Package zzd extracts convergence diagnostics from Flood Modeller .zzd
// output and derives the series a renderer consumes: typed event
// streams, run metadata, tolerance violations and temporal bins.
//
// The pipeline is strictly forward: bytes are scanned into records
// (package scan), records are extracted into immutable events, and the
// remaining operations are pure functions over the event set. Nothing
// here reads ambient state; tolerances and resolutions arrive as
// explicit arguments.
package zzd

import (
	"context"

	"github.com/ZedeN1/zzdPlot/pkg/zzd/scan"
)

// Options controls how Parse scans its source.
type Options struct {
	// ChunkSize is the byte range per parallel scan worker; 0 means
	// scan.DefaultChunkSize.
	ChunkSize int64
	// Workers caps concurrent chunk scans. 0 means GOMAXPROCS; 1 forces
	// a sequential streaming scan.
	Workers int
}

// Parse scans the source and extracts every structured event, in scan
// order. The only failure is an unreadable source; malformed and
// discarded records are counted in Diagnostics and never abort the
// pass.
func Parse(ctx context.Context, src *scan.Source, opts Options) (EventSet, Diagnostics, error) {
	var ex Extractor
	if opts.Workers == 1 {
		err := scan.Scan(src, func(rec scan.Record) bool {
			ex.Add(rec)
			return true
		})
		if err != nil {
			return EventSet{}, Diagnostics{}, err
		}
	} else {
		recs, err := scan.ScanParallel(ctx, src, scan.Options{ChunkSize: opts.ChunkSize, Workers: opts.Workers})
		if err != nil {
			return EventSet{}, Diagnostics{}, err
		}
		for _, rec := range recs {
			ex.Add(rec)
		}
	}
	set, diags := ex.Result()
	return set, diags, nil
}

// ParseFile memory-maps the file at path and parses it.
func ParseFile(ctx context.Context, path string, opts Options) (EventSet, Diagnostics, error) {
	src, err := scan.Open(path)
	if err != nil {
		return EventSet{}, Diagnostics{}, err
	}
	defer src.Close()
	return Parse(ctx, src, opts)
}
