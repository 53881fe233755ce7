package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clix-so/clix-skills/cmd"
)

var versionShort bool

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false,
		"print the version number only")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of clix-skills.`,
	Run: func(c *cobra.Command, _ []string) {
		out := c.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, cmd.Version)
			return
		}
		fmt.Fprintf(out, "clix-skills version %s\n", cmd.Version)
		fmt.Fprintf(out, "  commit: %s\n", cmd.Commit)
		fmt.Fprintf(out, "  built:  %s\n", cmd.Date)
	},
}
