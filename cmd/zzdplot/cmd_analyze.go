package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ZedeN1/zzdPlot/internal/logging"
	"github.com/ZedeN1/zzdPlot/internal/report"
	"github.com/ZedeN1/zzdPlot/internal/store"
	"github.com/ZedeN1/zzdPlot/pkg/zzd"
)

var analyzeFlags struct {
	qtol       float64
	htol       float64
	resolution int
	workers    int
	chunkSize  int64
	out        string
	markdown   bool
	save       bool
	dbPath     string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.zzd>",
	Short: "Extract convergence diagnostics from a .zzd file",
	Long: `Analyze scans a .zzd diagnostics file and produces the analysis
artifact: the inferred run span, tolerance violations per residual
kind, the warning histogram, and per-code tallies.

Usage:
  zzdplot analyze run4.zzd
  zzdplot analyze run4.zzd --qtol 0.05 -o artifact.json
  zzdplot analyze run4.zzd --markdown --save`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.Float64Var(&analyzeFlags.qtol, "qtol", 0, "Discharge tolerance in m³/s (default from config)")
	f.Float64Var(&analyzeFlags.htol, "htol", 0, "Head tolerance in m (default from config)")
	f.IntVar(&analyzeFlags.resolution, "resolution", 0, "Histogram bucket count (default from config)")
	f.IntVar(&analyzeFlags.workers, "workers", 0, "Parallel scan workers (0 = one per CPU, 1 = sequential)")
	f.Int64Var(&analyzeFlags.chunkSize, "chunk-size", 0, "Scan chunk size in bytes (0 = default)")
	f.StringVarP(&analyzeFlags.out, "out", "o", "", "Artifact path (default: .zzdplot/output/<file>.json)")
	f.BoolVar(&analyzeFlags.markdown, "markdown", false, "Write a Markdown report (.md) alongside the JSON artifact")
	f.BoolVar(&analyzeFlags.save, "save", false, "Record the run in the history database")
	f.StringVar(&analyzeFlags.dbPath, "db", "", "History DB path (default from config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	f := cmd.Flags()

	p := report.Params{
		DischargeTol: cfg.Tolerances.Discharge,
		HeadTol:      cfg.Tolerances.Head,
		Resolution:   cfg.Binning.Resolution,
	}
	if f.Changed("qtol") {
		p.DischargeTol = analyzeFlags.qtol
	}
	if f.Changed("htol") {
		p.HeadTol = analyzeFlags.htol
	}
	if f.Changed("resolution") {
		p.Resolution = analyzeFlags.resolution
	}

	opts := zzd.Options{ChunkSize: cfg.Scan.ChunkSize, Workers: cfg.Scan.Workers}
	if f.Changed("chunk-size") {
		opts.ChunkSize = analyzeFlags.chunkSize
	}
	if f.Changed("workers") {
		opts.Workers = analyzeFlags.workers
	}

	log := logging.New("analyze")
	log.Info("scanning", "file", path, "workers", opts.Workers)

	started := time.Now()
	set, diag, err := zzd.ParseFile(cmd.Context(), path, opts)
	if err != nil {
		return err
	}
	log.Info("scan complete",
		"samples", len(set.Samples), "warnings", len(set.Warnings),
		"discarded", diag.DiscardedRecords, "malformed", diag.MalformedRecords,
		"elapsed", time.Since(started))

	art, err := report.Build(filepath.Base(path), set, diag, p, time.Now())
	if err != nil {
		return err
	}

	outPath := analyzeFlags.out
	if outPath == "" {
		outputDir := filepath.Join(".zzdplot", "output")
		if err := os.MkdirAll(outputDir, 0700); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outPath = filepath.Join(outputDir, base+".json")
	}
	data, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0600); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), report.Summary(art))
	fmt.Fprintf(cmd.OutOrStdout(), "\nArtifact written to: %s\n", outPath)

	if analyzeFlags.markdown {
		mdPath := strings.TrimSuffix(outPath, ".json") + ".md"
		if err := os.WriteFile(mdPath, []byte(report.Render(art)), 0600); err != nil {
			return fmt.Errorf("write markdown report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Markdown report: %s\n", mdPath)
	}

	if analyzeFlags.save {
		dbPath := cfg.Store.Path
		if f.Changed("db") {
			dbPath = analyzeFlags.dbPath
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		id, err := saveRun(st, art)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Run recorded: #%d in %s\n", id, dbPath)
	}

	return nil
}

// saveRun flattens the artifact into one history row plus per-code
// counts.
func saveRun(st store.Store, a *report.Artifact) (int64, error) {
	run := &store.Run{
		File:                a.File,
		AnalyzedAt:          a.GeneratedAt,
		StartTime:           a.Run.StartTime,
		EndTime:             a.Run.EndTime,
		TerminatedFatally:   a.Run.TerminatedFatally,
		Samples:             a.Samples,
		Warnings:            a.Warnings,
		Discarded:           a.Diagnostics.DiscardedRecords,
		Malformed:           a.Diagnostics.MalformedRecords,
		DischargeViolations: len(a.Violations.Discharge),
		HeadViolations:      len(a.Violations.Head),
	}
	if ev := a.Run.FatalEvent; ev != nil {
		run.FatalCode = ev.Code
		t := ev.Time
		run.FatalTime = &t
	}
	counts := make([]store.CodeCount, 0, len(a.Codes))
	for _, c := range a.Codes {
		counts = append(counts, store.CodeCount{Code: c.Code, Count: c.Count})
	}
	return st.SaveRun(run, counts)
}
