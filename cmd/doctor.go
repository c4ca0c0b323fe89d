package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pders01/mnemos/internal/config"
	"github.com/pders01/mnemos/internal/doctor"
)

var doctorJSON bool

// errUnhealthy makes the process exit non-zero after the report is printed
var errUnhealthy = errors.New("health check failed")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project's mnemos setup",
	Long: `Diagnose the git environment, memory files, configuration and section
headings of the current project. When embeddings are enabled the Ollama
server and model are checked as well.

Exits non-zero when any check fails; warnings do not fail.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output as JSON")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, cfgErr := loadConfig()
	if cfgErr != nil {
		project, err := projectPath()
		if err != nil {
			return err
		}
		cfg = config.Default(project)
	}

	opts := doctor.Options{ConfigErr: cfgErr}
	if client := embeddingClient(cfg); client != nil {
		opts.Embedder = client
	}

	report := doctor.Run(commandContext(cmd), cfg, opts)

	w := output(cmd)
	if doctorJSON {
		if _, err := printStructured(w, report, true, false); err != nil {
			return err
		}
	} else {
		fmt.Fprint(w, report.Text())
	}

	if !report.Healthy() {
		return errUnhealthy
	}
	return nil
}
