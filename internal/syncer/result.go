// Package syncer drives the per-client registration workflow: resolve the
// client's config location, load or create the document, merge the Clix
// MCP server entry, and write the result back.
//
// Confirmation is an injected capability, so the workflow is deterministic
// under test and a --yes mode is just an always-true confirm.
package syncer

// Status classifies the outcome of syncing one client.
type Status string

const (
	// StatusUnsupported indicates the client could not be resolved, either
	// because the id is unknown or the client is unavailable on this
	// platform.
	StatusUnsupported Status = "unsupported"

	// StatusSkipped indicates the user declined a confirmation. Nothing
	// was created or modified.
	StatusSkipped Status = "skipped"

	// StatusAlreadyConfigured indicates the server entry was already
	// registered. The config file was not touched.
	StatusAlreadyConfigured Status = "already_configured"

	// StatusInjected indicates the server entry was added and the config
	// file written.
	StatusInjected Status = "injected"

	// StatusFailed indicates the config could not be loaded, merged, or
	// written. The file on disk is left as it was.
	StatusFailed Status = "failed"
)

// Result records the outcome of syncing one client.
type Result struct {
	// ClientID is the client identifier the sync was requested for.
	ClientID string `json:"client"`

	// DisplayName is the client's human-readable name. Empty when the id
	// did not resolve.
	DisplayName string `json:"display_name,omitempty"`

	// ConfigPath is the resolved config file path. Empty when the id did
	// not resolve.
	ConfigPath string `json:"config_path,omitempty"`

	// Status classifies the outcome.
	Status Status `json:"status"`

	// Created reports whether a fresh config file was created.
	Created bool `json:"created,omitempty"`

	// Message is a short human-readable note about the outcome.
	Message string `json:"message,omitempty"`

	// Err is the underlying error for failed and unsupported outcomes.
	Err error `json:"-"`
}

// Summary aggregates result counts by status.
type Summary struct {
	Injected          int `json:"injected"`
	AlreadyConfigured int `json:"already_configured"`
	Skipped           int `json:"skipped"`
	Unsupported       int `json:"unsupported"`
	Failed            int `json:"failed"`
}

// Summarize counts results by status.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusInjected:
			s.Injected++
		case StatusAlreadyConfigured:
			s.AlreadyConfigured++
		case StatusSkipped:
			s.Skipped++
		case StatusUnsupported:
			s.Unsupported++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Total returns the number of summarized results.
func (s Summary) Total() int {
	return s.Injected + s.AlreadyConfigured + s.Skipped + s.Unsupported + s.Failed
}

// HasFailures reports whether any client failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}
