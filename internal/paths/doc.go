// Package paths provides path resolution for directories clix-skills owns:
// its configuration directory and the skill install destination.
//
// Client config file locations are deliberately NOT resolved here. Those are
// derived from an explicit environment value in the client package so they
// stay testable without touching process state.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance:
//
//	paths.ToolConfigDir()    // <xdg config>/clix-skills/
//	paths.DefaultSkillsDir() // ~/.claude/skills/
package paths
