package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZedeN1/zzdPlot/internal/report"
)

var sampleZZD = filepath.Join("..", "..", "pkg", "zzd", "testdata", "sample.zzd")

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	artifact := filepath.Join(dir, "artifact.json")

	out, err := execRoot(t, "analyze", sampleZZD, "-o", artifact, "--markdown", "--save=false")
	if err != nil {
		t.Fatalf("analyze: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Artifact written to:") {
		t.Errorf("missing artifact notice:\n%s", out)
	}
	if !strings.Contains(out, "E1100") {
		t.Errorf("summary should name the fatal code:\n%s", out)
	}

	data, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	var a report.Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		t.Fatalf("unmarshal artifact: %v", err)
	}
	if a.File != "sample.zzd" || a.Samples != 2 || a.Warnings != 2 {
		t.Errorf("artifact counts: %+v", a)
	}
	if !a.Run.TerminatedFatally || a.Run.FatalEvent == nil || a.Run.FatalEvent.Code != "E1100" {
		t.Errorf("artifact run: %+v", a.Run)
	}
	if a.Diagnostics.DiscardedRecords != 1 || a.Diagnostics.MalformedRecords != 1 {
		t.Errorf("artifact diagnostics: %+v", a.Diagnostics)
	}
	// Default tolerances: the 0.0912 discharge residual violates, the
	// 0.0034 head residual does not.
	if len(a.Violations.Discharge) != 1 || len(a.Violations.Head) != 0 {
		t.Errorf("artifact violations: %+v", a.Violations)
	}

	md, err := os.ReadFile(filepath.Join(dir, "artifact.md"))
	if err != nil {
		t.Fatalf("read markdown report: %v", err)
	}
	if !strings.Contains(string(md), "# Convergence Report: sample.zzd") {
		t.Errorf("markdown report header missing:\n%s", md)
	}
}

func TestAnalyze_CustomTolerance(t *testing.T) {
	dir := t.TempDir()
	artifact := filepath.Join(dir, "artifact.json")

	// A qtol above the worst residual leaves no violations.
	out, err := execRoot(t, "analyze", sampleZZD, "-o", artifact,
		"--qtol", "0.5", "--markdown=false", "--save=false")
	if err != nil {
		t.Fatalf("analyze: %v\n%s", err, out)
	}
	data, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	var a report.Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		t.Fatalf("unmarshal artifact: %v", err)
	}
	if a.Tolerances.Discharge != 0.5 {
		t.Errorf("tolerance overlay: %+v", a.Tolerances)
	}
	if len(a.Violations.Discharge) != 0 {
		t.Errorf("violations with qtol 0.5: %+v", a.Violations.Discharge)
	}
}

func TestAnalyze_MissingFile(t *testing.T) {
	_, err := execRoot(t, "analyze", filepath.Join(t.TempDir(), "absent.zzd"), "--save=false", "--markdown=false")
	if err == nil {
		t.Fatal("want error for missing source file")
	}
}

func TestAnalyzeThenRuns(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "history.db")
	artifact := filepath.Join(dir, "a.json")

	out, err := execRoot(t, "analyze", sampleZZD, "-o", artifact,
		"--save", "--db", db, "--markdown=false")
	if err != nil {
		t.Fatalf("analyze --save: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Run recorded: #1") {
		t.Errorf("missing save notice:\n%s", out)
	}

	out, err = execRoot(t, "runs", "--db", db)
	if err != nil {
		t.Fatalf("runs: %v\n%s", err, out)
	}
	for _, want := range []string{"sample.zzd", "E1100", "0.500h .. 3.500h"} {
		if !strings.Contains(out, want) {
			t.Errorf("runs output missing %q:\n%s", want, out)
		}
	}
}

func TestRuns_NoHistory(t *testing.T) {
	_, err := execRoot(t, "runs", "--db", filepath.Join(t.TempDir(), "none.db"))
	if err == nil || !strings.Contains(err.Error(), "no history") {
		t.Errorf("want no-history error, got %v", err)
	}
}

func TestCodes(t *testing.T) {
	out, err := execRoot(t, "codes", "W2014")
	if err != nil {
		t.Fatalf("codes: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Unit running dry") {
		t.Errorf("missing W2014 description:\n%s", out)
	}
	if !strings.Contains(out, "1 codes") {
		t.Errorf("missing count line:\n%s", out)
	}
}

func TestCodes_Prefix(t *testing.T) {
	out, err := execRoot(t, "codes", "N")
	if err != nil {
		t.Fatalf("codes N: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Note") || strings.Contains(out, "W2014") {
		t.Errorf("prefix filter leaked other classes:\n%s", out)
	}
}

func TestCodes_NoMatch(t *testing.T) {
	_, err := execRoot(t, "codes", "X999")
	if err == nil {
		t.Fatal("want error for unmatched prefix")
	}
}
