package zzd_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ZedeN1/zzdPlot/pkg/zzd"
)

func TestFilterViolations_ZeroTolerance(t *testing.T) {
	set := zzd.EventSet{Samples: []zzd.ConvergenceSample{
		{Time: 1, Kind: zzd.Head, Value: 0.0},
		{Time: 2, Kind: zzd.Head, Value: 0.003},
		{Time: 3, Kind: zzd.Discharge, Value: -0.003},
	}}
	got, err := zzd.FilterViolations(set, zzd.Head, 0)
	if err != nil {
		t.Fatalf("FilterViolations: %v", err)
	}
	if len(got) != 1 || got[0].Value != 0.003 {
		t.Errorf("expected exactly the 0.003 HEAD sample, got %+v", got)
	}
}

func TestFilterViolations_StrictCompare(t *testing.T) {
	set := zzd.EventSet{Samples: []zzd.ConvergenceSample{
		{Time: 1, Kind: zzd.Discharge, Value: 0.01},
		{Time: 2, Kind: zzd.Discharge, Value: -0.010001},
	}}
	got, err := zzd.FilterViolations(set, zzd.Discharge, 0.01)
	if err != nil {
		t.Fatalf("FilterViolations: %v", err)
	}
	if len(got) != 1 || got[0].Time != 2 {
		t.Errorf("value equal to tolerance must not violate; got %+v", got)
	}
}

func TestFilterViolations_SubsetMonotonicity(t *testing.T) {
	set := zzd.EventSet{Samples: make([]zzd.ConvergenceSample, 0, 100)}
	for i := 0; i < 100; i++ {
		set.Samples = append(set.Samples, zzd.ConvergenceSample{
			Time: float64(i), Kind: zzd.Head, Value: float64(i-50) * 0.001,
		})
	}
	loose, err := zzd.FilterViolations(set, zzd.Head, 0.001)
	if err != nil {
		t.Fatalf("FilterViolations: %v", err)
	}
	tight, err := zzd.FilterViolations(set, zzd.Head, 0.02)
	if err != nil {
		t.Fatalf("FilterViolations: %v", err)
	}
	if len(tight) >= len(loose) {
		t.Fatalf("tight filter (%d) not smaller than loose (%d)", len(tight), len(loose))
	}
	inLoose := make(map[float64]bool, len(loose))
	for _, s := range loose {
		inLoose[s.Time] = true
	}
	for _, s := range tight {
		if !inLoose[s.Time] {
			t.Errorf("sample %+v passes the tighter filter but not the looser one", s)
		}
	}
}

func TestFilterViolations_OrdersByTimestamp(t *testing.T) {
	set := zzd.EventSet{Samples: []zzd.ConvergenceSample{
		{Time: 9, Kind: zzd.Head, Value: 1},
		{Time: 1, Kind: zzd.Head, Value: 1},
		{Time: 5, Kind: zzd.Head, Value: -1},
	}}
	got, err := zzd.FilterViolations(set, zzd.Head, 0)
	if err != nil {
		t.Fatalf("FilterViolations: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Time < got[i-1].Time {
			t.Fatalf("result not ordered by time: %+v", got)
		}
	}
}

func TestFilterViolations_InvalidParameters(t *testing.T) {
	set := zzd.EventSet{Samples: []zzd.ConvergenceSample{{Time: 1, Kind: zzd.Head, Value: 1}}}
	cases := []struct {
		name string
		kind zzd.Kind
		tol  float64
	}{
		{"negative tolerance", zzd.Head, -0.01},
		{"nan tolerance", zzd.Head, math.NaN()},
		{"unknown kind", zzd.Kind("velocity"), 0.01},
	}
	for _, tc := range cases {
		got, err := zzd.FilterViolations(set, tc.kind, tc.tol)
		if !errors.Is(err, zzd.ErrInvalidParameter) {
			t.Errorf("%s: expected ErrInvalidParameter, got %v", tc.name, err)
		}
		if got != nil {
			t.Errorf("%s: expected no partial result, got %+v", tc.name, got)
		}
	}
}
