package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pders01/mnemos/internal/git"
	"github.com/pders01/mnemos/internal/memory"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize mnemos in a project",
	Long: `Create the memory documents and configuration for a project.

This command writes:
  - .memory/long_term.md with one heading per configured section
  - .memory/short_term.md, filled in by 'mnemos update'
  - .mnemos.toml with the default configuration
  - .agent/skills/mnemos/SKILL.md describing the workflow to agents

Existing files are kept unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		projectDir = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w := output(cmd)
	if !git.IsInsideWorkTree(context.Background(), cfg.ProjectPath) {
		fmt.Fprintf(w, "Warning: %s is not a git repository, 'mnemos update' will not work until it is.\n\n", cfg.ProjectPath)
	}

	results, err := memory.Scaffold(cfg, initForce)
	for _, r := range results {
		if r.Created {
			fmt.Fprintf(w, "✓ Created %s\n", r.Path)
		} else {
			fmt.Fprintf(w, "· Exists  %s\n", r.Path)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n✓ mnemos initialized in %s\n", cfg.ProjectPath)
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintln(w, "  1. Fill in .memory/long_term.md with the project basics")
	fmt.Fprintln(w, "  2. Run 'mnemos update' to generate short-term memory")

	return nil
}
