package zzd

// InferRun derives run-level metadata from the full event set: the time
// span covered by any event, whether the run died fatally, and the
// earliest fatal event. Ties between equal fatal timestamps go to the
// one scanned first. An empty set yields nil times and no fatal flag.
func InferRun(set EventSet) SimulationRun {
	var run SimulationRun
	for i := range set.Samples {
		expandSpan(&run, set.Samples[i].Time)
	}
	for i := range set.Warnings {
		w := set.Warnings[i]
		expandSpan(&run, w.Time)
		if w.Severity != Fatal {
			continue
		}
		if run.FatalEvent == nil || w.Time < run.FatalEvent.Time {
			ev := w
			run.FatalEvent = &ev
			run.TerminatedFatally = true
		}
	}
	return run
}

func expandSpan(run *SimulationRun, t float64) {
	if run.StartTime == nil || t < *run.StartTime {
		v := t
		run.StartTime = &v
	}
	if run.EndTime == nil || t > *run.EndTime {
		v := t
		run.EndTime = &v
	}
}
