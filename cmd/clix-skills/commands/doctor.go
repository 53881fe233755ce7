package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/clix-so/clix-skills/internal/bundle"
	"github.com/clix-so/clix-skills/internal/client"
	"github.com/clix-so/clix-skills/internal/doctor"
	clixerrors "github.com/clix-so/clix-skills/internal/errors"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration issues",
	Long: `Run diagnostic checks on clix-skills and the client configurations
it manages.

Checks that the tool's own config file loads, that each client's config
file parses and has the Clix MCP server registered, and that the bundled
skills are installed and up to date.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	if doctorJSON {
		count++
	}
	if doctorQuiet {
		count++
	}
	if doctorVerbose {
		count++
	}

	if count > 1 {
		return errors.New("flags --json, --quiet, and --verbose are mutually exclusive")
	}

	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	env, err := client.DefaultEnv()
	if err != nil {
		return err
	}
	env.PathOverrides = cfgOrDefault().PathOverrides()

	runner := doctor.NewRunner()
	for _, check := range doctor.DefaultChecks(env, bundle.Skills(), resolveSkillsDir("")) {
		runner.AddCheck(check)
	}

	report := runner.Run()

	out := cmd.OutOrStdout()
	switch {
	case doctorQuiet:
		// exit code only
	case doctorJSON:
		if err := outputDoctorJSON(out, report); err != nil {
			return err
		}
	default:
		outputDoctorText(out, report, doctorVerbose)
	}

	// The exit code carries the verdict; there is nothing more to print.
	switch {
	case report.HasErrors():
		return clixerrors.NewExitError(nil, 2)
	case report.HasWarnings():
		return clixerrors.NewExitError(nil, 1)
	}
	return nil
}

func outputDoctorJSON(w io.Writer, report *doctor.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// outputDoctorText shows errors and warnings, or every check when
// showAll is set.
func outputDoctorText(w io.Writer, report *doctor.Report, showAll bool) {
	shown := false
	for _, result := range report.Results {
		if !showAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}

		shown = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && (result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning) {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if shown {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
