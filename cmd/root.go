package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pders01/mnemos/internal/config"
	"github.com/pders01/mnemos/internal/logger"
	"github.com/pders01/mnemos/internal/memory"
)

var (
	cfgFile    string
	projectDir string
	debug      bool
	logFormat  string
)

// appLog is replaced by initLogger once flags are parsed
var appLog = logger.Nop()

var rootCmd = &cobra.Command{
	Use:   "mnemos",
	Short: "Persistent project memory for AI coding agents",
	Long: `mnemos keeps two Markdown documents next to your code:

  .memory/long_term.md    curated knowledge, one section per category
  .memory/short_term.md   recent activity generated from git history

Agents read them at the start of a session, write decisions back into
long-term sections, and compact old short-term entries into long-term
memory once they age out.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <project>/"+config.FileName+")")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "C", "", "project directory (default is the working directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "pretty", "log format: pretty|text|json")
}

func initLogger() {
	appLog = logger.New(
		logger.WithDebug(debug),
		logger.WithSource(debug),
		logger.WithPretty(logFormat == "pretty"),
		logger.WithJSON(logFormat == "json"),
	)
}

// projectPath resolves the project root from --project or the working directory
func projectPath() (string, error) {
	if projectDir != "" {
		return projectDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// loadConfig resolves defaults, the project config file and MNEMOS_* env overrides
func loadConfig() (*config.Config, error) {
	project, err := projectPath()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	config.SetDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := cfgFile
	if file == "" {
		file = filepath.Join(project, config.FileName)
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			file = ""
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
		appLog.Debug("using config file", "path", v.ConfigFileUsed())
	}

	return config.Load(v, project)
}

func newStore(cfg *config.Config) *memory.Store {
	return memory.NewStore(cfg, memory.WithLogger(appLog))
}

// openStore loads the config and opens the project's memory store
func openStore() (*memory.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newStore(cfg), nil
}

// output is where a command writes its results; tests run commands without cobra
func output(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stdout
	}
	return cmd.OutOrStdout()
}

func commandContext(cmd *cobra.Command) context.Context {
	if cmd == nil || cmd.Context() == nil {
		return context.Background()
	}
	return cmd.Context()
}

func logOf(component string) *slog.Logger {
	return appLog.With("component", component)
}

// printStructured writes v as indented JSON or toon; it reports false when
// neither format was requested.
func printStructured(w io.Writer, v any, asJSON, asToon bool) (bool, error) {
	switch {
	case asJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return true, nil
	case asToon:
		data, err := gotoon.Encode(v)
		if err != nil {
			return true, fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Fprintln(w, data)
		return true, nil
	default:
		return false, nil
	}
}
