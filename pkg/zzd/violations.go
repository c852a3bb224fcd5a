package zzd

import (
	"fmt"
	"math"
	"sort"
)

// FilterViolations returns the samples of the given kind whose absolute
// value strictly exceeds tol, ordered by timestamp. A tolerance of
// exactly 0 returns every non-zero sample; there is no epsilon fuzz.
// Kinds never interact: DISCHARGE and HEAD are filtered independently
// with independently supplied tolerances.
func FilterViolations(set EventSet, kind Kind, tol float64) ([]ConvergenceSample, error) {
	if tol < 0 || math.IsNaN(tol) {
		return nil, fmt.Errorf("%w: tolerance %v", ErrInvalidParameter, tol)
	}
	switch kind {
	case Discharge, Head:
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidParameter, kind)
	}

	var out []ConvergenceSample
	for _, s := range set.Samples {
		if s.Kind == kind && math.Abs(s.Value) > tol {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}
