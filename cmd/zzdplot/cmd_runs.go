package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZedeN1/zzdPlot/internal/format"
	"github.com/ZedeN1/zzdPlot/internal/store"
)

var runsFlags struct {
	dbPath string
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List analyzed runs from the history database",
	Long: `Runs lists every analysis recorded with "analyze --save", newest
first: source file, run span, fatal code and event counts.`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsFlags.dbPath, "db", "", "History DB path (default from config)")
}

func runRuns(cmd *cobra.Command, args []string) error {
	dbPath := cfg.Store.Path
	if cmd.Flags().Changed("db") {
		dbPath = runsFlags.dbPath
	}
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("no history at %s (record one with: zzdplot analyze <file> --save)", dbPath)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	runs, err := st.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	tbl := format.NewTable(format.ASCII)
	tbl.Header("#", "File", "Analyzed", "Span", "Fatal", "Samples", "Warnings", "Discharge", "Head")
	tbl.MaxWidth(2, 40)
	tbl.RightAlign(6, 7, 8, 9)
	for _, r := range runs {
		fatal := "-"
		if r.TerminatedFatally {
			fatal = r.FatalCode
		}
		tbl.Row(r.ID, r.File, r.AnalyzedAt, format.FmtSpan(r.StartTime, r.EndTime), fatal,
			r.Samples, r.Warnings, r.DischargeViolations, r.HeadViolations)
	}
	fmt.Fprint(cmd.OutOrStdout(), tbl.String())
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
