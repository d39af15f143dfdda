package cmd

import (
	"github.com/hargabyte/finlens/internal/analyzer"
	"github.com/spf13/cobra"
)

// salaryCmd represents the salary command
var salaryCmd = &cobra.Command{
	Use:   "salary [snapshot.json]",
	Short: "Analyze salary distribution and outliers",
	Long: `Run only the salary analysis.

Computes:
  - Distribution statistics over all salaries: count, mean, sample
    standard deviation, min, quartiles (linear interpolation), max
  - Monthly salary fund per department, descending
  - Company-wide fund both monthly and annualized (they differ by x12
    and are labeled separately)
  - Salary outliers via the Tukey fence [Q1 - m*IQR, Q3 + m*IQR],
    with the multiplier m taken from configuration (default 1.5)

Examples:
  finlens salary                     # Read company.json
  finlens salary --format=json       # Machine-readable result`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSalary,
}

func init() {
	rootCmd.AddCommand(salaryCmd)
}

func runSalary(cmd *cobra.Command, args []string) error {
	cfg, lggr, snap, err := setup(args)
	if err != nil {
		return err
	}
	defer lggr.Sync()

	res := analyzer.NewSalary(cfg.Analysis, lggr).Analyze(snap)
	return emitResult(cfg, res)
}
