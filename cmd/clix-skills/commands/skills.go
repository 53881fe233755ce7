package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/clix-so/clix-skills/internal/bundle"
	"github.com/clix-so/clix-skills/internal/skills"
)

var (
	skillsListJSON      bool
	skillsListSkillsDir string
)

func init() {
	skillsListCmd.Flags().BoolVar(&skillsListJSON, "json", false,
		"output as JSON")
	skillsListCmd.Flags().StringVar(&skillsListSkillsDir, "skills-dir", "",
		"skills directory to check against (default: ~/.claude/skills)")
	skillsCmd.AddCommand(skillsListCmd)
	rootCmd.AddCommand(skillsCmd)
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage bundled Clix skills",
	Long: `Manage the Clix SDK skills bundled with this binary.

Skills are markdown documents that teach coding agents how to integrate
the Clix SDK. Use clix-skills install to copy them into place.`,
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bundled skills and their install state",
	Long: `List the skills bundled with this binary.

For each skill, shows the bundled version, a short description, and
whether it is installed in the skills directory: installed, out of date
(installed from an older bundle), or not installed.

Examples:
  # List bundled skills
  clix-skills skills list

  # JSON output for scripting
  clix-skills skills list --json`,
	RunE: runSkillsList,
}

// skillJSONEntry represents a bundled skill in JSON output.
type skillJSONEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version,omitempty"`
	State       string `json:"state"`
}

func runSkillsList(cmd *cobra.Command, _ []string) error {
	return runSkillsListWithWriter(cmd.OutOrStdout(), resolveSkillsDir(skillsListSkillsDir), skillsListJSON)
}

// runSkillsListWithWriter allows injecting a writer for testing.
func runSkillsListWithWriter(w io.Writer, destDir string, jsonOut bool) error {
	list, err := skills.Scan(bundle.Skills())
	if err != nil {
		return err
	}

	manifest, err := skills.ReadManifest(destDir)
	if err != nil {
		return err
	}

	if jsonOut {
		return outputSkillsJSON(w, list, manifest, destDir)
	}
	return outputSkillsTable(w, list, manifest, destDir)
}

func outputSkillsJSON(w io.Writer, list []skills.Skill, manifest *skills.Manifest, destDir string) error {
	entries := make([]skillJSONEntry, len(list))
	for i, s := range list {
		entries[i] = skillJSONEntry{
			Name:        s.Name,
			Description: s.Description,
			Version:     s.Version,
			State:       skillState(s, manifest, destDir),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func outputSkillsTable(w io.Writer, list []skills.Skill, manifest *skills.Manifest, destDir string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SKILL\tVERSION\tSTATE\tDESCRIPTION")

	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			s.Name, s.Version, skillStateLabel(skillState(s, manifest, destDir)), truncate(s.Description, 60))
	}
	return tw.Flush()
}

// skillState classifies one bundled skill against the skills directory.
func skillState(s skills.Skill, manifest *skills.Manifest, destDir string) string {
	if !dirExists(filepath.Join(destDir, s.Dir)) {
		return "not installed"
	}
	if manifest.Skills[s.Name] != s.Version {
		return "out of date"
	}
	return "installed"
}

func skillStateLabel(state string) string {
	switch state {
	case "installed":
		return color.GreenString(state)
	case "out of date":
		return color.YellowString(state)
	default:
		return color.New(color.FgHiBlack).Sprint(state)
	}
}
