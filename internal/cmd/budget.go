package cmd

import (
	"github.com/hargabyte/finlens/internal/analyzer"
	"github.com/spf13/cobra"
)

// budgetCmd represents the budget command
var budgetCmd = &cobra.Command{
	Use:   "budget [snapshot.json]",
	Short: "Analyze budget allocation and utilization",
	Long: `Run only the budget analysis.

Computes:
  - Total budget across all departments
  - Full budget allocation ranking, descending
  - Budget per employee with highest/lowest departments
    (departments without employees are excluded, not errors)
  - Utilization rate (spent/allocated) per department
    (departments without an allocated budget are excluded)

Utilization above 100% is valid data: a department may spend more than it
was allocated.

Examples:
  finlens budget                     # Read company.json
  finlens budget --format=yaml       # Full rankings, machine-readable`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, args []string) error {
	cfg, lggr, snap, err := setup(args)
	if err != nil {
		return err
	}
	defer lggr.Sync()

	res := analyzer.NewBudget(lggr).Analyze(snap)
	return emitResult(cfg, res)
}
