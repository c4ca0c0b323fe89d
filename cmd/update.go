package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pders01/mnemos/internal/history"
)

var (
	updateDays     int
	updateMaxCount int
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Regenerate short-term memory from git history",
	Long: `Summarize recent commits into .memory/short_term.md.

Commits are grouped by day and conventional-commit type, and the files
touched most often are listed as hotspots. The lookback window and commit
cap come from the [git] config section unless overridden.

Examples:
  mnemos update
  mnemos update --days 14 --max-count 200`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().IntVar(&updateDays, "days", 0, "Lookback window in days (default from config)")
	updateCmd.Flags().IntVar(&updateMaxCount, "max-count", 0, "Maximum number of commits (default from config)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if updateDays > 0 {
		cfg.Git.Days = updateDays
	}
	if updateMaxCount > 0 {
		cfg.Git.MaxCount = updateMaxCount
	}

	res, err := history.New(newStore(cfg)).Summarize(commandContext(cmd))
	if err != nil {
		return err
	}

	fmt.Fprintln(output(cmd), res.Message())
	return nil
}
