package cmd

import (
	"github.com/hargabyte/finlens/internal/analyzer"
	"github.com/hargabyte/finlens/internal/report"
	"github.com/spf13/cobra"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan [snapshot.json]",
	Short: "Derive the financial plan (break-even, high-ROI departments)",
	Long: `Run the financial planning analysis.

Planning consumes the salary and ROI results, so this command runs those
two analyses first and then derives:
  - Annual fixed costs: annualized salary fund plus annual equipment
    maintenance
  - Break-even revenue: fixed costs divided by the assumed margin ratio
    (configuration, default 0.30 -- never silently baked in)
  - Departments whose ROI exceeds the company-wide ROI, descending
  - Rule-based recommendations

Examples:
  finlens plan                       # Read company.json
  finlens plan --format=yaml         # Machine-readable result`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, lggr, snap, err := setup(args)
	if err != nil {
		return err
	}
	defer lggr.Sync()

	salary := analyzer.NewSalary(cfg.Analysis, lggr).Analyze(snap).(*report.SalaryData)
	roi := analyzer.NewROI(cfg.Analysis, lggr).Analyze(snap).(*report.RoiData)

	res := analyzer.NewPlanning(cfg.Analysis, salary, roi, lggr).Analyze(snap)
	return emitResult(cfg, res)
}
