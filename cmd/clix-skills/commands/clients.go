package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/clix-so/clix-skills/internal/client"
)

var clientsJSON bool

func init() {
	clientsCmd.Flags().BoolVar(&clientsJSON, "json", false,
		"output as JSON")
	rootCmd.AddCommand(clientsCmd)
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List supported AI coding clients",
	Long: `List the AI coding clients clix-skills knows how to configure.

For each client, shows the resolved config file path, its format, and
whether the client appears to be installed on this machine: installed
(config file exists), partial (config directory exists but no file yet),
or not installed.

Clients that cannot be resolved on this platform are omitted.

Examples:
  # List all clients
  clix-skills clients

  # JSON output for scripting
  clix-skills clients --json`,
	RunE: runClients,
}

// clientJSONEntry represents a client in JSON output.
type clientJSONEntry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ConfigPath string `json:"config_path"`
	Format     string `json:"format"`
	Status     string `json:"status"`
}

func runClients(cmd *cobra.Command, _ []string) error {
	env, err := client.DefaultEnv()
	if err != nil {
		return err
	}
	env.PathOverrides = cfgOrDefault().PathOverrides()

	return runClientsWithWriter(cmd.OutOrStdout(), env, clientsJSON)
}

// runClientsWithWriter allows injecting a writer for testing.
func runClientsWithWriter(w io.Writer, env client.Env, jsonOut bool) error {
	detections := client.DetectAll(env)

	if jsonOut {
		return outputClientsJSON(w, detections)
	}
	return outputClientsTable(w, detections)
}

func outputClientsJSON(w io.Writer, detections []client.Detection) error {
	entries := make([]clientJSONEntry, len(detections))
	for i, det := range detections {
		entries[i] = clientJSONEntry{
			ID:         det.ID,
			Name:       det.DisplayName,
			ConfigPath: det.ConfigPath,
			Format:     string(det.Format),
			Status:     string(det.Status),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func outputClientsTable(w io.Writer, detections []client.Detection) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CLIENT\tNAME\tSTATUS\tCONFIG")

	for _, det := range detections {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			det.ID, det.DisplayName, statusLabel(det.Status), truncate(det.ConfigPath, 60))
	}
	return tw.Flush()
}

func statusLabel(s client.InstallStatus) string {
	switch s {
	case client.StatusInstalled:
		return color.GreenString("installed")
	case client.StatusPartial:
		return color.YellowString("partial")
	default:
		return color.New(color.FgHiBlack).Sprint("not installed")
	}
}
