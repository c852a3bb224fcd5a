package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZedeN1/zzdPlot/internal/config"
	"github.com/ZedeN1/zzdPlot/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// cfg is resolved once in the persistent pre-run and read by every
// subcommand.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "zzdplot",
	Short: "Convergence diagnostics for Flood Modeller .zzd output",
	Long: "zzdplot scans .zzd simulation diagnostics, extracts convergence\n" +
		"samples and coded warnings, and derives the series a dashboard\n" +
		"plots: run metadata, tolerance violations and temporal bins.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(rootFlags.configPath)
		if err != nil {
			return err
		}
		if rootFlags.logLevel != "" {
			cfg.Logging.Level = rootFlags.logLevel
		}
		if rootFlags.logFormat != "" {
			cfg.Logging.Format = rootFlags.logFormat
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		logging.Init(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Path to config YAML (default: built-in defaults)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text or json (default from config)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(codesCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
