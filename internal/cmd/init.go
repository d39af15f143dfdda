package cmd

import (
	"fmt"

	"github.com/hargabyte/finlens/internal/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to .finlens/config.yaml",
	Long: `Create a .finlens directory in the current working directory and
write the default configuration into it.

The file documents every tunable the analyzers consume:
  margin_ratio              Assumed margin for break-even revenue (0.30)
  outlier_fence             Tukey fence multiplier for salary outliers (1.5)
  correlation_weak/strong   Qualitative correlation thresholds (0.3 / 0.7)
  maintenance_ratio_alert   Cost recommendation threshold, percent (15)
  cost_concentration_alert  Cost concentration threshold, percent (40)
  currency                  Display label for amounts (RUB)
  top_n                     Ranking slice length in text reports (10)

Fails if a config file already exists.

Examples:
  finlens init`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := config.SaveDefault(".")
	if err != nil {
		return err
	}
	fmt.Printf("Wrote default configuration to %s\n", path)
	return nil
}
