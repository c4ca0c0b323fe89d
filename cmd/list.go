package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pders01/mnemos/internal/memory"
)

var (
	listToday bool
	listSince string
	listJSON  bool
	listToon  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List long-term sections and short-term days",
	Long: `List the sections of long-term memory with their size and last edit,
and the days recorded in short-term memory with their entry counts.

Examples:
  mnemos list
  mnemos list --today
  mnemos list --since 2026-02-01 --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listToday, "today", false, "Show only today's short-term entries")
	listCmd.Flags().StringVar(&listSince, "since", "", "Show short-term days since date (YYYY-MM-DD)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listToon, "toon", false, "Output in LLM-friendly toon format")
}

type sectionInfo struct {
	Name       string `json:"name"`
	Lines      int    `json:"lines"`
	Updated    string `json:"updated,omitempty"`
	Configured bool   `json:"configured"`
}

type dayInfo struct {
	Date    string `json:"date"`
	Entries int    `json:"entries"`
}

type memoryListing struct {
	Sections []sectionInfo `json:"sections"`
	Days     []dayInfo     `json:"days"`
}

func runList(cmd *cobra.Command, args []string) error {
	since := listSince
	if since != "" && !memory.IsISODate(since) {
		return fmt.Errorf("invalid --since date format (use YYYY-MM-DD): %s", since)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	if listToday {
		since = store.Now().Format(memory.DateLayout)
	}

	listing := memoryListing{}

	long, err := store.LoadLongTerm()
	if err != nil {
		return err
	}
	for _, sec := range memory.ParseSections(long) {
		listing.Sections = append(listing.Sections, sectionInfo{
			Name:       sec.Heading,
			Lines:      len(memory.SplitLines(sec.Body)),
			Updated:    sec.LastStamp(),
			Configured: store.Config().IsValidSection(sec.Heading),
		})
	}

	short, err := store.LoadShortTerm()
	if err != nil && !isMissing(err) {
		return err
	}
	_, blocks := memory.SplitDateBlocks(short)
	for _, b := range blocks {
		if since != "" && (!b.Valid() || b.Date < since) {
			continue
		}
		listing.Days = append(listing.Days, dayInfo{Date: b.Date, Entries: b.Entries()})
	}

	w := output(cmd)
	if done, err := printStructured(w, listing, listJSON, listToon); done {
		return err
	}

	fmt.Fprintf(w, "Long-term sections (%d):\n\n", len(listing.Sections))
	for _, s := range listing.Sections {
		updated := "never edited"
		if s.Updated != "" {
			updated = "updated " + s.Updated
		}
		marker := ""
		if !s.Configured {
			marker = "  (not in memory.valid_sections)"
		}
		fmt.Fprintf(w, "  %-28s %4d lines  %s%s\n", s.Name, s.Lines, updated, marker)
	}

	fmt.Fprintln(w)
	if len(listing.Days) == 0 {
		fmt.Fprintln(w, "No short-term entries match the filter criteria")
		return nil
	}
	fmt.Fprintf(w, "Short-term days (%d):\n\n", len(listing.Days))
	for _, d := range listing.Days {
		fmt.Fprintf(w, "  %s  %3d entries\n", d.Date, d.Entries)
	}
	return nil
}

func isMissing(err error) bool {
	return errors.Is(err, memory.ErrDocumentMissing)
}
