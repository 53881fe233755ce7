package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/clix-so/clix-skills/internal/cli/prompt"
	"github.com/clix-so/clix-skills/internal/client"
	"github.com/clix-so/clix-skills/internal/logging"
	"github.com/clix-so/clix-skills/internal/syncer"
)

var (
	syncYes         bool
	syncInteractive bool
	syncJSON        bool
)

func init() {
	syncCmd.Flags().BoolVarP(&syncYes, "yes", "y", false,
		"answer yes to all prompts")
	syncCmd.Flags().BoolVarP(&syncInteractive, "interactive", "i", false,
		"pick clients with a fuzzy finder")
	syncCmd.Flags().BoolVar(&syncJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync [client...]",
	Short: "Register the Clix MCP server with AI coding clients",
	Long: `Register the Clix MCP server with AI coding clients.

Each client's config file is edited in place: existing servers and
unrelated settings are preserved, and a client that already has the
Clix server registered is left untouched. A client whose config file
does not exist yet is created after confirmation.

Without arguments, the clients listed in the config file's
default_clients are synced (all known clients by default). Pass client
ids to target specific clients.

Clients are handled independently. A failure on one client never stops
the others, and the command exits 0 as long as it could run; per-client
outcomes are in the report.

Examples:
  # Sync all default clients
  clix-skills sync

  # Sync specific clients without prompts
  clix-skills sync cursor vscode --yes

  # Pick clients interactively
  clix-skills sync --interactive

  # Machine-readable results
  clix-skills sync --json`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	return runSyncWithIO(cmd, args, cmd.InOrStdin(), cmd.OutOrStdout())
}

// runSyncWithIO allows injecting reader and writer for testing.
func runSyncWithIO(cmd *cobra.Command, args []string, in io.Reader, out io.Writer) error {
	env, err := client.DefaultEnv()
	if err != nil {
		return err
	}
	env.PathOverrides = cfgOrDefault().PathOverrides()

	ids := args
	if len(ids) == 0 {
		ids = cfgOrDefault().DefaultClients
	}

	if syncInteractive {
		picked, err := pickClients(env)
		if err != nil {
			return err
		}
		if len(picked) == 0 {
			fmt.Fprintln(out, "No clients selected.")
			return nil
		}
		ids = picked
	}

	confirm := syncer.ConfirmAll
	if !syncYes {
		confirm = prompt.NewConfirmerWithIO(in, out).Confirm
	}

	return syncClients(logging.FromContext(cmd.Context()), env, ids, confirm, reportFormat(syncJSON), out)
}

// syncClients runs the registration workflow over ids and renders the
// report to out. Per-client failures land in the report, not the error.
func syncClients(logger *slog.Logger, env client.Env, ids []string, confirm syncer.ConfirmFunc, format syncer.Format, out io.Writer) error {
	results := syncer.NewWithLogger(env, confirm, logger).Sync(ids)
	return syncer.NewReporter(out, format).Report(results)
}

// pickClients opens a fuzzy multi-select over every client resolvable on
// this platform. A cancelled finder returns nil ids and no error.
func pickClients(env client.Env) ([]string, error) {
	detections := client.DetectAll(env)
	if len(detections) == 0 {
		return nil, nil
	}

	indexes, err := fuzzyfinder.FindMulti(
		detections,
		func(i int) string {
			return detections[i].DisplayName
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			det := detections[i]
			return fmt.Sprintf("%s\n\nPath:   %s\nFormat: %s\nStatus: %s\n",
				det.DisplayName, det.ConfigPath, det.Format, det.Status)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "selecting clients")
	}

	ids := make([]string, 0, len(indexes))
	for _, i := range indexes {
		ids = append(ids, detections[i].ID)
	}
	return ids, nil
}

func reportFormat(jsonOut bool) syncer.Format {
	if jsonOut {
		return syncer.FormatJSON
	}
	return syncer.FormatText
}
