package cmd

import (
	"github.com/hargabyte/finlens/internal/analyzer"
	"github.com/spf13/cobra"
)

// costCmd represents the cost command
var costCmd = &cobra.Command{
	Use:   "cost [snapshot.json]",
	Short: "Analyze equipment costs",
	Long: `Run only the cost optimization analysis.

Computes:
  - Total equipment purchase cost
  - Total maintenance cost, monthly and annual (monthly x 12)
  - Annual maintenance as a percentage of purchase value
  - Monthly maintenance per department, descending, with the top spender
  - The single most expensive item by monthly maintenance
  - Rule-based recommendations derived from the figures above; the rules
    are deterministic, with thresholds taken from configuration

Examples:
  finlens cost                       # Read company.json
  finlens cost --format=json         # Machine-readable result`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCost,
}

func init() {
	rootCmd.AddCommand(costCmd)
}

func runCost(cmd *cobra.Command, args []string) error {
	cfg, lggr, snap, err := setup(args)
	if err != nil {
		return err
	}
	defer lggr.Sync()

	res := analyzer.NewCost(cfg.Analysis, lggr).Analyze(snap)
	return emitResult(cfg, res)
}
