package cmd

import (
	"github.com/hargabyte/finlens/internal/analyzer"
	"github.com/spf13/cobra"
)

// roiCmd represents the roi command
var roiCmd = &cobra.Command{
	Use:   "roi [snapshot.json]",
	Short: "Analyze project return on investment",
	Long: `Run only the ROI analysis.

Computes:
  - Per-project ROI as (return - investment) / investment; projects with
    investment <= 0 have no defined ROI and are excluded
  - Department and company-wide ROI, both value-weighted (summed returns
    and investments, never a mean of per-project ratios)
  - Department ranking, descending, with best and worst
  - Pearson correlation between allocated budget and department ROI,
    labeled weak/moderate/strong with the sign reported separately

Examples:
  finlens roi                        # Read company.json
  finlens roi --format=yaml          # Full ranking, machine-readable`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoi,
}

func init() {
	rootCmd.AddCommand(roiCmd)
}

func runRoi(cmd *cobra.Command, args []string) error {
	cfg, lggr, snap, err := setup(args)
	if err != nil {
		return err
	}
	defer lggr.Sync()

	res := analyzer.NewROI(cfg.Analysis, lggr).Analyze(snap)
	return emitResult(cfg, res)
}
