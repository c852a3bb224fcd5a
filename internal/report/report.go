// Package report assembles the analysis artifact for one source file
// and renders it for terminals and Markdown documents. The artifact is
// the renderer contract: everything a plotting front end needs to draw
// the convergence dashboard, in one JSON document.
package report

import (
	"sort"
	"time"

	"github.com/ZedeN1/zzdPlot/internal/display"
	"github.com/ZedeN1/zzdPlot/pkg/zzd"
)

// Params are the analysis knobs an artifact is produced with.
type Params struct {
	DischargeTol float64
	HeadTol      float64
	Resolution   int
}

// Tolerances echoes the thresholds into the artifact so a renderer can
// label its violation series.
type Tolerances struct {
	Discharge float64 `json:"discharge"`
	Head      float64 `json:"head"`
}

// Violations holds the per-kind violation series, each ordered by time.
type Violations struct {
	Discharge []zzd.ConvergenceSample `json:"discharge"`
	Head      []zzd.ConvergenceSample `json:"head"`
}

// CodeSummary rolls up one warning code: catalogue metadata, the tally,
// and the code's own temporal bins (one heatmap row).
type CodeSummary struct {
	Code        string       `json:"code"`
	Description string       `json:"description,omitempty"`
	Severity    zzd.Severity `json:"severity"`
	Count       int          `json:"count"`
	Bins        []zzd.Bin    `json:"bins,omitempty"`
}

// Artifact is the JSON-serialisable result of analysing one source.
type Artifact struct {
	File        string            `json:"file"`
	GeneratedAt string            `json:"generated_at"`
	Run         zzd.SimulationRun `json:"run"`
	Samples     int               `json:"samples"`
	Warnings    int               `json:"warnings"`
	Diagnostics zzd.Diagnostics   `json:"diagnostics"`
	Tolerances  Tolerances        `json:"tolerances"`
	Violations  Violations        `json:"violations"`
	Resolution  int               `json:"resolution"`
	Bins        []zzd.Bin         `json:"bins,omitempty"`
	Codes       []CodeSummary     `json:"codes,omitempty"`
}

// Build derives the full artifact from one parsed event set. ts is the
// analysis time, passed in so the function stays pure.
func Build(file string, set zzd.EventSet, diag zzd.Diagnostics, p Params, ts time.Time) (*Artifact, error) {
	run := zzd.InferRun(set)

	dv, err := zzd.FilterViolations(set, zzd.Discharge, p.DischargeTol)
	if err != nil {
		return nil, err
	}
	hv, err := zzd.FilterViolations(set, zzd.Head, p.HeadTol)
	if err != nil {
		return nil, err
	}

	a := &Artifact{
		File:        file,
		GeneratedAt: ts.UTC().Format(time.RFC3339),
		Run:         run,
		Samples:     len(set.Samples),
		Warnings:    len(set.Warnings),
		Diagnostics: diag,
		Tolerances:  Tolerances{Discharge: p.DischargeTol, Head: p.HeadTol},
		Violations:  Violations{Discharge: dv, Head: hv},
		Resolution:  p.Resolution,
	}

	// An empty set has no span to bin over; the artifact still carries
	// the run (nil times) and zero counts.
	if run.StartTime != nil {
		a.Bins, err = zzd.BinEvents(set, *run.StartTime, *run.EndTime, p.Resolution)
		if err != nil {
			return nil, err
		}
		a.Codes, err = summarizeCodes(set, run, p.Resolution)
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// summarizeCodes tallies warnings per code and bins each code's events
// over the shared run span, so every heatmap row has the same axis.
// Sorted by count descending, then code.
func summarizeCodes(set zzd.EventSet, run zzd.SimulationRun, resolution int) ([]CodeSummary, error) {
	if len(set.Warnings) == 0 {
		return nil, nil
	}
	byCode := make(map[string][]zzd.WarningEvent)
	for _, w := range set.Warnings {
		byCode[w.Code] = append(byCode[w.Code], w)
	}
	out := make([]CodeSummary, 0, len(byCode))
	for code, evs := range byCode {
		sev, _ := zzd.SeverityForCode(code)
		bins, err := zzd.BinEvents(zzd.EventSet{Warnings: evs}, *run.StartTime, *run.EndTime, resolution)
		if err != nil {
			return nil, err
		}
		out = append(out, CodeSummary{
			Code:        code,
			Description: display.Describe(code),
			Severity:    sev,
			Count:       len(evs),
			Bins:        bins,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

// NodeCount is the per-node violation tally used by the summary tables.
type NodeCount struct {
	Node      string
	Discharge int
	Head      int
}

// NodeCounts groups the artifact's violations by reporting node, worst
// offenders first. Samples without a node label group under "-".
func NodeCounts(a *Artifact) []NodeCount {
	idx := make(map[string]*NodeCount)
	var order []string
	bump := func(node string, kind zzd.Kind) {
		if node == "" {
			node = "-"
		}
		nc, ok := idx[node]
		if !ok {
			nc = &NodeCount{Node: node}
			idx[node] = nc
			order = append(order, node)
		}
		if kind == zzd.Discharge {
			nc.Discharge++
		} else {
			nc.Head++
		}
	}
	for _, s := range a.Violations.Discharge {
		bump(s.Node, zzd.Discharge)
	}
	for _, s := range a.Violations.Head {
		bump(s.Node, zzd.Head)
	}
	out := make([]NodeCount, 0, len(order))
	for _, node := range order {
		out = append(out, *idx[node])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Discharge+out[i].Head > out[j].Discharge+out[j].Head
	})
	return out
}
