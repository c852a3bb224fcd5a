package zzd

import "fmt"

// degenerateBinWidth is the one-unit span of the single bin produced
// when start == end.
const degenerateBinWidth = 1.0

// BinEvents partitions [start, end] into resolution equal-width buckets
// and assigns every warning event in the set to exactly one of them.
// Buckets are half-open [start, end); the final bucket is closed so an
// event exactly at end is kept. Events outside the range clamp to the
// first or last bucket, so the count invariant
//
//	sum(bin.Count) == len(set.Warnings)
//
// holds unconditionally. Empty buckets are elided. The result is a pure
// function of (events, range, resolution); input order never affects it.
//
// A zero-duration range collapses to a single bucket of width
// degenerateBinWidth. Zero events yield zero bins.
func BinEvents(set EventSet, start, end float64, resolution int) ([]Bin, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution %d", ErrInvalidParameter, resolution)
	}
	if end < start {
		return nil, fmt.Errorf("%w: end %v before start %v", ErrInvalidParameter, end, start)
	}
	events := set.Warnings
	if len(events) == 0 {
		return nil, nil
	}

	width := (end - start) / float64(resolution)
	if start == end {
		resolution = 1
		width = degenerateBinWidth
	}

	counts := make([]int, resolution)
	sole := make([]int, resolution) // event index while a bucket holds one event
	for i, ev := range events {
		idx := int((ev.Time - start) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= resolution {
			idx = resolution - 1
		}
		counts[idx]++
		sole[idx] = i
	}

	var bins []Bin
	for i, c := range counts {
		if c == 0 {
			continue
		}
		b := Bin{
			Start: start + float64(i)*width,
			End:   start + float64(i+1)*width,
			Count: c,
		}
		if i == resolution-1 && start != end {
			b.End = end
		}
		if c == 1 {
			ev := events[sole[i]]
			b.Sparse = true
			b.Time = ev.Time
			b.Events = []WarningEvent{ev}
		} else {
			b.Time = b.Start + (b.End-b.Start)/2
		}
		bins = append(bins, b)
	}
	return bins, nil
}
