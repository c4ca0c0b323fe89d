package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pders01/mnemos/internal/retention"
)

var (
	statsJSON bool
	statsToon bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show memory file statistics",
	Long: `Display size and line counts of both memory documents and whether
short-term memory has grown past compression.max_lines or
compression.max_kb.

Examples:
  mnemos stats
  mnemos stats --json
  mnemos stats --toon`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	statsCmd.Flags().BoolVar(&statsToon, "toon", false, "Output in LLM-friendly toon format")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stats, err := retention.Collect(cfg)
	if err != nil {
		return err
	}

	w := output(cmd)
	if done, err := printStructured(w, stats, statsJSON, statsToon); done {
		return err
	}

	fmt.Fprintln(w, "Memory Statistics")
	fmt.Fprintln(w, "━━━━━━━━━━━━━━━━━")
	fmt.Fprintf(w, "Project: %s\n\n", stats.ProjectPath)
	printFileStats(w, "Long-term memory", stats.LongTerm)
	printFileStats(w, "Short-term memory", stats.ShortTerm)

	if stats.NeedsCompaction {
		fmt.Fprintf(w, "\n⚠ Short-term memory exceeds %d lines or %d KB, run 'mnemos compact'.\n",
			cfg.Compression.MaxLines, cfg.Compression.MaxKB)
	}
	return nil
}

func printFileStats(w io.Writer, name string, fs retention.FileStats) {
	fmt.Fprintf(w, "%s:\n", name)
	fmt.Fprintf(w, "  Path:  %s\n", fs.Path)
	if !fs.Exists {
		fmt.Fprintln(w, "  Status: missing (run 'mnemos init')")
		return
	}
	fmt.Fprintf(w, "  Size:  %d bytes\n", fs.SizeBytes)
	fmt.Fprintf(w, "  Lines: %d\n", fs.LineCount)
}
