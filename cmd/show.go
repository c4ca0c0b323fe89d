package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pders01/mnemos/internal/memory"
)

var showType string

var showCmd = &cobra.Command{
	Use:   "show [section]",
	Short: "Print memory documents or a single long-term section",
	Long: `Print project memory.

With no arguments both documents are printed, long-term first. A section
name selects the first long-term heading containing it.

Examples:
  mnemos show
  mnemos show --type short
  mnemos show "Architecture Decisions"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showType, "type", "t", "all", "Memory type: all|long|short")
}

func runShow(cmd *cobra.Command, args []string) error {
	kind, err := memory.ParseKind(showType)
	if err != nil {
		return err
	}

	section := ""
	if len(args) > 0 {
		section = args[0]
		if kind == memory.KindAll {
			kind = memory.KindLong
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	text, err := store.Read(kind, section)
	if err != nil {
		return err
	}

	fmt.Fprintln(output(cmd), text)
	return nil
}
