// Package cmd contains all CLI commands for finlens.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is the current version of finlens
	Version = "0.1.0"

	// Global flags
	verbose      bool
	configPath   string
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "finlens",
	Short: "Descriptive financial analysis over a company snapshot",
	Long: `finlens ingests a static snapshot of a company's organizational and
financial data (departments, employees, projects, equipment, KPIs) and
produces a sequence of descriptive-statistics reports.

The snapshot is a JSON file loaded once per run; every analysis reads the
same immutable dataset. Five analyses run in a fixed order:

  budget    Budget totals, per-employee efficiency, utilization rates
  salary    Distribution statistics, department funds, outlier detection
  roi       Value-weighted ROI per department and company-wide, correlation
  cost      Equipment purchase/maintenance costs, operational cost ranking
  plan      Fixed costs, break-even revenue, high-ROI department selection

Output Format:
  The default console report can be switched to YAML or JSON with the
  --format flag. Rankings always carry the full ordered sequence in
  machine-readable output; the console report slices to the configured
  top N.

Configuration:
  Tunables (margin ratio, outlier fence, correlation thresholds, currency
  label) live in .finlens/config.yaml, discovered by walking up from the
  working directory. Run 'finlens init' to write the defaults.

Examples:
  finlens analyze company.json        # Full report on the console
  finlens analyze --format=yaml       # Machine-readable aggregate
  finlens roi company.json            # Single analysis
  finlens plan company.json           # Planning (runs salary and roi first)

See 'finlens <command> --help' for command-specific options.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .finlens/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (text|yaml|json)")
}
