package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/clix-so/clix-skills/internal/doctor"
)

func TestValidateDoctorFlags(t *testing.T) {
	tests := []struct {
		name        string
		jsonFlag    bool
		quietFlag   bool
		verboseFlag bool
		wantErr     bool
	}{
		{name: "no flags set"},
		{name: "only json flag", jsonFlag: true},
		{name: "only quiet flag", quietFlag: true},
		{name: "only verbose flag", verboseFlag: true},
		{name: "json and quiet flags", jsonFlag: true, quietFlag: true, wantErr: true},
		{name: "json and verbose flags", jsonFlag: true, verboseFlag: true, wantErr: true},
		{name: "quiet and verbose flags", quietFlag: true, verboseFlag: true, wantErr: true},
		{name: "all three flags", jsonFlag: true, quietFlag: true, verboseFlag: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldJSON := doctorJSON
			oldQuiet := doctorQuiet
			oldVerbose := doctorVerbose
			defer func() {
				doctorJSON = oldJSON
				doctorQuiet = oldQuiet
				doctorVerbose = oldVerbose
			}()

			doctorJSON = tt.jsonFlag
			doctorQuiet = tt.quietFlag
			doctorVerbose = tt.verboseFlag

			err := validateDoctorFlags(nil, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDoctorFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func doctorTestReport() *doctor.Report {
	return &doctor.Report{
		Results: []*doctor.CheckResult{
			{
				Name:     "config-file",
				Category: "config",
				Status:   doctor.SeverityPass,
				Message:  "config valid",
			},
			{
				Name:     "client-cursor",
				Category: "clients",
				Status:   doctor.SeverityInfo,
				Message:  "Cursor not detected",
			},
			{
				Name:     "client-vscode",
				Category: "clients",
				Status:   doctor.SeverityWarning,
				Message:  "clix-mcp-server is not registered with VS Code",
				FixHint:  "run: clix-skills sync vscode",
			},
			{
				Name:     "client-codex",
				Category: "clients",
				Status:   doctor.SeverityError,
				Message:  "config file does not parse",
			},
		},
		Summary: doctor.Summary{Passed: 1, Info: 1, Warnings: 1, Errors: 1},
	}
}

func TestOutputDoctorText_Default(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	outputDoctorText(&out, doctorTestReport(), false)
	got := out.String()

	for _, want := range []string{
		"[clients] client-vscode: clix-mcp-server is not registered with VS Code",
		"hint: run: clix-skills sync vscode",
		"[clients] client-codex: config file does not parse",
		"Summary: 1 passed, 1 info, 1 warnings, 1 errors",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// Passed and info checks stay hidden without --verbose
	for _, absent := range []string{"config-file", "client-cursor"} {
		if strings.Contains(got, absent) {
			t.Errorf("output should not contain %q:\n%s", absent, got)
		}
	}
}

func TestOutputDoctorText_Verbose(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	outputDoctorText(&out, doctorTestReport(), true)
	got := out.String()

	for _, want := range []string{
		"[config] config-file: config valid",
		"[clients] client-cursor: Cursor not detected",
		"[clients] client-vscode",
		"[clients] client-codex",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestOutputDoctorText_AllClean(t *testing.T) {
	disableColor(t)

	report := &doctor.Report{
		Results: []*doctor.CheckResult{
			{Name: "config-file", Category: "config", Status: doctor.SeverityPass, Message: "config valid"},
		},
		Summary: doctor.Summary{Passed: 1},
	}

	var out bytes.Buffer
	outputDoctorText(&out, report, false)

	want := "Summary: 1 passed, 0 info, 0 warnings, 0 errors\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestStatusIcon(t *testing.T) {
	disableColor(t)

	tests := []struct {
		severity doctor.Severity
		want     string
	}{
		{doctor.SeverityPass, "✓"},
		{doctor.SeverityInfo, "ℹ"},
		{doctor.SeverityWarning, "⚠"},
		{doctor.SeverityError, "✗"},
		{doctor.Severity(99), "?"},
	}

	for _, tt := range tests {
		if got := statusIcon(tt.severity); got != tt.want {
			t.Errorf("statusIcon(%v) = %q, want %q", tt.severity, got, tt.want)
		}
	}
}
