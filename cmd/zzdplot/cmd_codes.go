package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZedeN1/zzdPlot/internal/display"
	"github.com/ZedeN1/zzdPlot/internal/format"
)

var codesCmd = &cobra.Command{
	Use:   "codes [prefix]",
	Short: "List the diagnostic code catalogue",
	Long: `Codes lists the built-in diagnostic code catalogue: code, class and
description. An optional prefix narrows the list.

Usage:
  zzdplot codes            # full catalogue
  zzdplot codes W          # warnings only
  zzdplot codes E1100      # one code`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCodes,
}

func runCodes(cmd *cobra.Command, args []string) error {
	prefix := ""
	if len(args) > 0 {
		prefix = strings.ToUpper(args[0])
	}

	tbl := format.NewTable(format.ASCII)
	tbl.Header("Code", "Class", "Description")
	tbl.MaxWidth(3, 72)
	n := 0
	for _, code := range display.Codes() {
		if prefix != "" && !strings.HasPrefix(code, prefix) {
			continue
		}
		tbl.Row(code, display.ClassName(code), display.Describe(code))
		n++
	}
	if n == 0 {
		return fmt.Errorf("no catalogued codes match %q", prefix)
	}

	fmt.Fprint(cmd.OutOrStdout(), tbl.String())
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d codes\n", n)
	return nil
}
