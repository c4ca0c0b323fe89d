package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pders01/mnemos/internal/memory"
)

var (
	writeMode string
	writeFile string
)

var writeCmd = &cobra.Command{
	Use:   "write <section> [content]",
	Short: "Replace or append to a long-term memory section",
	Long: `Write content into a long-term memory section.

The section must be one of memory.valid_sections. Content comes from the
second argument, from --file, or from stdin when neither is given.
Replace rewrites the section body below a fresh "Updated" marker; append
keeps the existing body and adds the content with an "Appended" marker.

Examples:
  mnemos write "Architecture Decisions" "Use SQLite for local state"
  mnemos write "Technology Choices" --mode append --file notes.md
  git log -1 --format=%B | mnemos write "Project Overview" --mode append`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)

	writeCmd.Flags().StringVarP(&writeMode, "mode", "m", "replace", "Write mode: replace|append")
	writeCmd.Flags().StringVarP(&writeFile, "file", "f", "", "Read content from a file ('-' for stdin)")
}

func runWrite(cmd *cobra.Command, args []string) error {
	mode, err := memory.ParseMode(writeMode)
	if err != nil {
		return err
	}

	content, err := writeContent(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	msg, err := store.Update(args[0], strings.TrimRight(content, "\n"), mode)
	if err != nil {
		return err
	}

	fmt.Fprintln(output(cmd), msg)
	return nil
}

func writeContent(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) > 1:
		if writeFile != "" {
			return "", fmt.Errorf("give content either as an argument or with --file, not both")
		}
		return args[1], nil
	case writeFile != "" && writeFile != "-":
		data, err := os.ReadFile(writeFile)
		if err != nil {
			return "", fmt.Errorf("failed to read content file: %w", err)
		}
		return string(data), nil
	default:
		var in io.Reader = os.Stdin
		if cmd != nil {
			in = cmd.InOrStdin()
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
}
