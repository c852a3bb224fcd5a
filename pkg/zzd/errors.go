package zzd

import "errors"

var (
	// ErrInvalidParameter marks a caller-supplied tolerance or
	// resolution outside its domain. The failing call returns no
	// partial result.
	ErrInvalidParameter = errors.New("zzd: invalid parameter")

	// ErrMalformedRecord marks a single record whose numeric fields did
	// not parse. Such records are dropped and counted in Diagnostics;
	// they never fail the analysis.
	ErrMalformedRecord = errors.New("zzd: malformed record")

	// errDiscarded marks a record whose code falls outside the fixed
	// W/E alphabet, e.g. N-prefixed notes.
	errDiscarded = errors.New("zzd: record discarded")
)
