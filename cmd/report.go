package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pders01/mnemos/internal/history"
)

var (
	reportDays int
	reportJSON bool
	reportToon bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize recent git activity without writing memory",
	Long: `Print commit counts per type and the most frequently modified files
for the configured lookback window. Nothing is written to disk.

Examples:
  mnemos report
  mnemos report --days 30 --json`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntVar(&reportDays, "days", 0, "Lookback window in days (default from config)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Output as JSON")
	reportCmd.Flags().BoolVar(&reportToon, "toon", false, "Output in LLM-friendly toon format")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if reportDays > 0 {
		cfg.Git.Days = reportDays
	}

	_, report, err := history.New(newStore(cfg)).Analyze(commandContext(cmd))
	if err != nil {
		return err
	}

	w := output(cmd)
	if done, err := printStructured(w, report, reportJSON, reportToon); done {
		return err
	}

	fmt.Fprintf(w, "Activity Report (last %d days)\n", cfg.Git.Days)
	fmt.Fprintln(w, "═════════════════════════════")
	fmt.Fprintf(w, "\nTotal commits: %d\n", report.TotalCommits)
	if report.TotalCommits == 0 {
		return nil
	}

	types := make([]string, 0, len(report.TypeDistribution))
	for t := range report.TypeDistribution {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		ci, cj := report.TypeDistribution[types[i]], report.TypeDistribution[types[j]]
		if ci != cj {
			return ci > cj
		}
		return types[i] < types[j]
	})

	fmt.Fprintln(w, "\nBy type:")
	for _, t := range types {
		count := report.TypeDistribution[t]
		pct := float64(count) / float64(report.TotalCommits) * 100
		fmt.Fprintf(w, "  %-18s %3d  (%.1f%%)\n", history.TypeLabel(t), count, pct)
	}

	if len(report.Hotspots) > 0 {
		fmt.Fprintln(w, "\nHotspots:")
		for _, h := range report.Hotspots {
			fmt.Fprintf(w, "  %-40s %3d  +%d/-%d  %s\n", h.Filename, h.Count, h.Added, h.Deleted, strings.Repeat("█", min(h.Count, 20)))
		}
	}
	return nil
}
