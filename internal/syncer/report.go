package syncer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for sync reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes sync results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the per-client results and a summary to the output.
func (r *Reporter) Report(results []Result) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(results)
	default:
		return r.reportText(results)
	}
}

func (r *Reporter) reportJSON(results []Result) error {
	payload := struct {
		Results []Result `json:"results"`
		Summary Summary  `json:"summary"`
	}{
		Results: results,
		Summary: Summarize(results),
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(payload), "encoding JSON report")
}

func (r *Reporter) reportText(results []Result) error {
	for _, res := range results {
		r.printResult(res)
	}

	fmt.Fprintf(r.out, "\n%s\n", summaryLine(Summarize(results)))
	return nil
}

func (r *Reporter) printResult(res Result) {
	// Unsupported clients never resolved a display name.
	name := res.DisplayName
	if name == "" {
		name = res.ClientID
	}

	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(statusGlyph(res.Status))
	sb.WriteString(" ")
	sb.WriteString(name)

	if res.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(res.Message)
	}
	if res.ConfigPath != "" {
		sb.WriteString(" ")
		sb.WriteString(color.New(color.FgHiBlack).Sprintf("(%s)", res.ConfigPath))
	}

	fmt.Fprintln(r.out, sb.String())
}

// statusGlyph returns the colored marker for a result status.
func statusGlyph(s Status) string {
	switch s {
	case StatusInjected, StatusAlreadyConfigured:
		return color.GreenString("✓")
	case StatusFailed:
		return color.RedString("✗")
	case StatusSkipped, StatusUnsupported:
		return color.New(color.FgHiBlack).Sprint("-")
	default:
		return "?"
	}
}

// summaryLine phrases the summary counts, coloring only the counts that
// deserve attention.
func summaryLine(sum Summary) string {
	if sum.Total() == 0 {
		return "Nothing to sync"
	}

	parts := make([]string, 0, 5)
	if sum.Injected > 0 {
		parts = append(parts, color.GreenString("%d registered", sum.Injected))
	}
	if sum.AlreadyConfigured > 0 {
		parts = append(parts, fmt.Sprintf("%d already configured", sum.AlreadyConfigured))
	}
	if sum.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", sum.Skipped))
	}
	if sum.Unsupported > 0 {
		parts = append(parts, fmt.Sprintf("%d unsupported", sum.Unsupported))
	}
	if sum.Failed > 0 {
		parts = append(parts, color.RedString("%d failed", sum.Failed))
	}

	return "Sync complete: " + strings.Join(parts, ", ")
}
