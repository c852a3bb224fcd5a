package zzd_test

import (
	"testing"

	"github.com/ZedeN1/zzdPlot/pkg/zzd"
)

func TestInferRun_FatalRun(t *testing.T) {
	set := zzd.EventSet{
		Warnings: []zzd.WarningEvent{
			{Time: 10, Code: "W2000", Severity: zzd.Warning},
			{Time: 50, Code: "E1999", Severity: zzd.Fatal},
			{Time: 90, Code: "W2014", Severity: zzd.Warning},
		},
	}
	run := zzd.InferRun(set)

	if run.StartTime == nil || *run.StartTime != 10 {
		t.Errorf("start time = %v, want 10", run.StartTime)
	}
	if run.EndTime == nil || *run.EndTime != 90 {
		t.Errorf("end time = %v, want 90", run.EndTime)
	}
	if !run.TerminatedFatally {
		t.Error("expected fatal termination")
	}
	if run.FatalEvent == nil || run.FatalEvent.Time != 50 {
		t.Errorf("fatal event = %+v, want timestamp 50", run.FatalEvent)
	}
}

func TestInferRun_Empty(t *testing.T) {
	run := zzd.InferRun(zzd.EventSet{})
	if run.StartTime != nil || run.EndTime != nil {
		t.Errorf("expected nil times, got %v..%v", run.StartTime, run.EndTime)
	}
	if run.TerminatedFatally || run.FatalEvent != nil {
		t.Errorf("expected no fatal state, got %+v", run)
	}
}

func TestInferRun_SpanCoversSamples(t *testing.T) {
	set := zzd.EventSet{
		Samples: []zzd.ConvergenceSample{
			{Time: 2.5, Kind: zzd.Discharge, Value: 0.1},
			{Time: 99.5, Kind: zzd.Head, Value: 0.2},
		},
		Warnings: []zzd.WarningEvent{{Time: 40, Code: "W2000", Severity: zzd.Warning}},
	}
	run := zzd.InferRun(set)
	if *run.StartTime != 2.5 || *run.EndTime != 99.5 {
		t.Errorf("span %v..%v, want 2.5..99.5", *run.StartTime, *run.EndTime)
	}
	if run.TerminatedFatally {
		t.Error("no fatal events in set")
	}
}

func TestInferRun_EarliestFatalWinsWithScanOrderTieBreak(t *testing.T) {
	set := zzd.EventSet{
		Warnings: []zzd.WarningEvent{
			{Time: 70, Code: "E2000", Severity: zzd.Fatal},
			{Time: 30, Code: "E1000", Severity: zzd.Fatal, Label: "FIRST"},
			{Time: 30, Code: "E1001", Severity: zzd.Fatal, Label: "SECOND"},
		},
	}
	run := zzd.InferRun(set)
	if run.FatalEvent == nil || run.FatalEvent.Code != "E1000" {
		t.Errorf("fatal event = %+v, want E1000 (earliest time, first in scan order)", run.FatalEvent)
	}
}
