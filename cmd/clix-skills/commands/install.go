package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/clix-so/clix-skills/internal/bundle"
	"github.com/clix-so/clix-skills/internal/cli/prompt"
	"github.com/clix-so/clix-skills/internal/client"
	"github.com/clix-so/clix-skills/internal/logging"
	"github.com/clix-so/clix-skills/internal/skills"
	"github.com/clix-so/clix-skills/internal/syncer"
)

var (
	installForce     bool
	installYes       bool
	installSkillsDir string
)

func init() {
	installCmd.Flags().BoolVar(&installForce, "force", false,
		"replace already installed skills")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false,
		"answer yes to all prompts")
	installCmd.Flags().StringVar(&installSkillsDir, "skills-dir", "",
		"destination directory for skills (default: ~/.claude/skills)")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install bundled Clix skills and register the MCP server",
	Long: `Install the bundled Clix SDK skills and register the Clix MCP server.

Skills are copied to the destination directory (default ~/.claude/skills,
override with skills_dir in the config file or --skills-dir). A skill
that is already installed is skipped unless --force is given.

After installing skills, the MCP server is registered with the default
clients, same as running clix-skills sync.

Examples:
  # Install skills and register the server
  clix-skills install

  # Reinstall skills that are already present
  clix-skills install --force

  # Install without confirmation prompts
  clix-skills install --yes`,
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, _ []string) error {
	return runInstallWithIO(cmd, cmd.InOrStdin(), cmd.OutOrStdout())
}

// runInstallWithIO allows injecting reader and writer for testing.
func runInstallWithIO(cmd *cobra.Command, in io.Reader, out io.Writer) error {
	env, err := client.DefaultEnv()
	if err != nil {
		return err
	}
	env.PathOverrides = cfgOrDefault().PathOverrides()

	destDir := resolveSkillsDir(installSkillsDir)
	if err := installSkills(out, destDir, installForce); err != nil {
		return err
	}

	// The skills talk to Clix through the MCP server, so registration
	// follows installation.
	fmt.Fprintln(out)
	confirm := syncer.ConfirmAll
	if !installYes {
		confirm = prompt.NewConfirmerWithIO(in, out).Confirm
	}
	return syncClients(logging.FromContext(cmd.Context()), env, cfgOrDefault().DefaultClients, confirm, syncer.FormatText, out)
}

// installSkills copies the bundled skills into destDir and prints one
// line per skill.
func installSkills(out io.Writer, destDir string, force bool) error {
	installed, skipped, err := skills.InstallAll(bundle.Skills(), destDir, force)
	if err != nil {
		return err
	}

	for _, s := range installed {
		fmt.Fprintf(out, "%s %s %s\n",
			color.GreenString("✓"), s.Name, color.New(color.FgHiBlack).Sprintf("(%s)", s.Version))
	}
	for _, s := range skipped {
		fmt.Fprintf(out, "%s %s already installed\n",
			color.New(color.FgHiBlack).Sprint("-"), s.Name)
	}

	if len(installed) > 0 {
		fmt.Fprintf(out, "\nInstalled %d skills to %s\n", len(installed), destDir)
	} else {
		fmt.Fprintf(out, "\nAll skills already installed in %s (use --force to reinstall)\n", destDir)
	}
	return nil
}
