// Package commands implements the CLI commands for clix-skills.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/clix-so/clix-skills/cmd"
	"github.com/clix-so/clix-skills/internal/config"
	clixerrors "github.com/clix-so/clix-skills/internal/errors"
	"github.com/clix-so/clix-skills/internal/logging"
	"github.com/clix-so/clix-skills/internal/paths"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfg holds the loaded configuration, nil when loading failed.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("clix-skills version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cfg, configLoadErr = config.LoadDefault()
}

var rootCmd = &cobra.Command{
	Use:   "clix-skills",
	Short: "Set up Clix skills and MCP access for AI coding clients",
	Long: `clix-skills connects AI coding clients to Clix.

It registers the Clix MCP server with the clients installed on this
machine (Cursor, Claude Desktop, VS Code, Amp, Kiro, Amazon Q, Codex,
OpenCode) and installs the bundled Clix SDK skills, so coding agents
can answer questions about Clix integration and push notification
setup.

Each client keeps its own config file and format; clix-skills edits
them in place, preserving everything already there.`,
	Example: `  # Register the Clix MCP server with every detected client
  clix-skills sync

  # Install bundled skills and register the server
  clix-skills install

  # Target specific clients
  clix-skills sync cursor vscode

  # Check the state of all clients
  clix-skills doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return ensureConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return clixerrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("CLIX_SKILLS_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return clixerrors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// ensureConfig surfaces config load failures before a command runs.
// help and version never touch config, and doctor must be able to
// diagnose a broken config file rather than die on it.
func ensureConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "doctor":
		return nil
	}

	if configLoadErr != nil {
		return clixerrors.NewConfigError(configLoadErr)
	}

	return nil
}

// cfgOrDefault returns the loaded configuration, falling back to the
// built-in defaults when no load has happened (doctor on a broken
// config file, helpers invoked directly in tests).
func cfgOrDefault() *config.Config {
	if cfg != nil {
		return cfg
	}
	return config.Default()
}

// resolveSkillsDir picks the skills destination: the flag wins, then the
// config file's skills_dir, then the default under the home directory.
func resolveSkillsDir(flag string) string {
	if flag != "" {
		return flag
	}
	if dir := cfgOrDefault().SkillsDir; dir != "" {
		return dir
	}
	return paths.DefaultSkillsDir()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
