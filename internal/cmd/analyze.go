package cmd

import (
	"os"

	"github.com/hargabyte/finlens/internal/analyzer"
	"github.com/hargabyte/finlens/internal/output"
	"github.com/spf13/cobra"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [snapshot.json]",
	Short: "Run all five analyses and produce the full report",
	Long: `Run the complete analysis pipeline over a company snapshot.

Executes all five analyses in a fixed order (budget, salary, roi, cost,
plan) and compiles their results into one aggregate report. The planning
analysis consumes the salary and ROI results, which is why the order is
fixed; the other four are independent.

The pipeline never aborts on degenerate data: an empty snapshot yields a
complete report with zero totals and empty rankings. Only a missing or
unreadable snapshot file is fatal.

Output Structure (yaml/json):
  metadata:    Company name, currency label, fiscal year
  load_stats:  Record counts, dangling references, skipped records
  budget:      Allocation ranking, per-employee extremes, utilization
  salary:      Distribution, department funds, outliers
  roi:         Department ranking, company ROI, budget correlation
  cost:        Cost totals, operational cost ranking, recommendations
  planning:    Fixed costs, break-even revenue, high-ROI departments

Examples:
  finlens analyze                       # Read company.json
  finlens analyze data/snapshot.json    # Explicit snapshot path
  finlens analyze --format=yaml         # Machine-readable aggregate
  finlens analyze --format=json > r.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, lggr, snap, err := setup(args)
	if err != nil {
		return err
	}
	defer lggr.Sync()

	agg := analyzer.NewOrchestrator(cfg, lggr).Run(snap)

	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}

	if f, ok := output.ForFormat(format); ok {
		return f.FormatToWriter(os.Stdout, agg)
	}
	return output.NewTextRenderer(cfg.Report).RenderAggregate(os.Stdout, agg)
}
