package report

import (
	"fmt"
	"strings"

	"github.com/ZedeN1/zzdPlot/internal/display"
	"github.com/ZedeN1/zzdPlot/internal/format"
)

// Summary renders the terminal summary: run overview, warning codes,
// and per-node violation counts.
func Summary(a *Artifact) string {
	var b strings.Builder

	b.WriteString("--- Run ---\n")
	b.WriteString(runTable(a, format.ASCII))
	b.WriteString("\n")

	if len(a.Codes) > 0 {
		b.WriteString("\n--- Warning codes ---\n")
		b.WriteString(codeTable(a, format.ASCII))
		b.WriteString("\n")
	}

	if nodes := NodeCounts(a); len(nodes) > 0 {
		b.WriteString("\n--- Violations by node ---\n")
		b.WriteString(nodeTable(nodes, format.ASCII))
		b.WriteString("\n")
	}

	return b.String()
}

// Render produces the full Markdown report for one artifact.
func Render(a *Artifact) string {
	var b strings.Builder

	b.WriteString("# Convergence Report: " + a.File + "\n\n")

	b.WriteString("## Run\n\n")
	b.WriteString(runTable(a, format.Markdown))
	b.WriteString("\n\n")

	if len(a.Codes) > 0 {
		b.WriteString("## Warning Codes\n\n")
		b.WriteString(codeTable(a, format.Markdown))
		b.WriteString("\n\n")
	}

	if nodes := NodeCounts(a); len(nodes) > 0 {
		b.WriteString("## Violations by Node\n\n")
		b.WriteString(nodeTable(nodes, format.Markdown))
		b.WriteString("\n\n")
	}

	return b.String()
}

func runTable(a *Artifact, mode format.Mode) string {
	tbl := format.NewTable(mode)
	tbl.Header("Field", "Value")
	tbl.Row("File", a.File)
	tbl.Row("Analyzed", a.GeneratedAt)
	tbl.Row("Span", format.FmtSpan(a.Run.StartTime, a.Run.EndTime))
	if a.Run.TerminatedFatally && a.Run.FatalEvent != nil {
		ev := a.Run.FatalEvent
		tbl.Row("Terminated", fmt.Sprintf("%s at %s",
			display.DescribeWithCode(ev.Code), format.FmtHours(ev.Time)))
	} else {
		tbl.Row("Terminated", "clean")
	}
	tbl.Row("Samples", a.Samples)
	tbl.Row("Warnings", a.Warnings)
	if a.Diagnostics.DiscardedRecords > 0 || a.Diagnostics.MalformedRecords > 0 {
		tbl.Row("Dropped", fmt.Sprintf("%d discarded, %d malformed",
			a.Diagnostics.DiscardedRecords, a.Diagnostics.MalformedRecords))
	}
	tbl.Row("Discharge violations", fmt.Sprintf("%d (tol %.3f)",
		len(a.Violations.Discharge), a.Tolerances.Discharge))
	tbl.Row("Head violations", fmt.Sprintf("%d (tol %.3f)",
		len(a.Violations.Head), a.Tolerances.Head))
	return tbl.String()
}

func codeTable(a *Artifact, mode format.Mode) string {
	tbl := format.NewTable(mode)
	tbl.Header("Code", "Severity", "Description", "Count")
	tbl.MaxWidth(3, 48)
	tbl.RightAlign(4)
	for _, c := range a.Codes {
		desc := c.Description
		if desc == "" {
			desc = "-"
		}
		tbl.Row(c.Code, string(c.Severity), desc, c.Count)
	}
	tbl.Footer("", "", "TOTAL", a.Warnings)
	return tbl.String()
}

func nodeTable(nodes []NodeCount, mode format.Mode) string {
	tbl := format.NewTable(mode)
	tbl.Header("Node", "Discharge", "Head")
	tbl.RightAlign(2, 3)
	for _, n := range nodes {
		tbl.Row(n.Node, n.Discharge, n.Head)
	}
	return tbl.String()
}
