package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pders01/mnemos/internal/retention"
)

var (
	compactDays   int
	compactDryRun bool
)

var compactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Move old short-term entries out for summarization",
	Long: `Remove short-term date blocks older than the threshold and print them.

The printed entries are meant to be summarized and written into long-term
memory with 'mnemos write'. The threshold is compression.threshold_days
unless --days is given. Blocks under a heading that is not a valid date
are always kept.

Examples:
  mnemos compact --dry-run    # Show what would be compacted
  mnemos compact --days 7`,
	Args: cobra.NoArgs,
	RunE: runCompact,
}

func init() {
	rootCmd.AddCommand(compactCmd)

	compactCmd.Flags().IntVar(&compactDays, "days", -1, "Age threshold in days, 0 compacts everything before today (default from config)")
	compactCmd.Flags().BoolVar(&compactDryRun, "dry-run", false, "Show what would be compacted without writing")
}

func runCompact(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	days := store.Config().Compression.ThresholdDays
	if compactDays >= 0 {
		days = compactDays
	}

	compactor := retention.NewCompactor(store)
	w := output(cmd)

	if !compactDryRun {
		out, err := compactor.ExtractOld(days)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
		return nil
	}

	plan, err := compactor.Plan(days)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Threshold: %d days\n", days)
	fmt.Fprintf(w, "Cutoff date: %s\n\n", plan.Cutoff)
	if !plan.HasOld() {
		fmt.Fprintln(w, retention.NothingToCompress)
		return nil
	}

	fmt.Fprintf(w, "Blocks to compact (%d): %s\n", len(plan.Old), strings.Join(plan.OldDates(), ", "))
	fmt.Fprintf(w, "Blocks to keep (%d)\n", len(plan.Recent))
	for _, h := range plan.Malformed {
		fmt.Fprintf(w, "  kept, not a date: %s\n", h)
	}
	fmt.Fprintln(w, "\nThis is a dry run. Run without --dry-run to compact.")
	return nil
}
