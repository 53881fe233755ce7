package client

import (
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/clix-so/clix-skills/internal/confdoc"
	clixerrors "github.com/clix-so/clix-skills/internal/errors"
	"github.com/clix-so/clix-skills/internal/mcp"
)

// Client identifiers accepted by Resolve.
const (
	Cursor   = "cursor"
	Claude   = "claude"
	VSCode   = "vscode"
	Amp      = "amp"
	Kiro     = "kiro"
	AmazonQ  = "amazonq"
	Codex    = "codex"
	OpenCode = "opencode"
)

// Descriptor describes how one client stores MCP server registrations:
// where its config file lives, how it is serialized, and which schema
// variant shapes the entries.
type Descriptor struct {
	// ID is the client identifier (one of the package constants).
	ID string

	// DisplayName is the human-readable client name for prompts and reports.
	DisplayName string

	// ConfigPath is the absolute path of the client's config file.
	ConfigPath string

	// Format is the config file's serialization format.
	Format confdoc.Format

	// Variant is the registration schema the client expects.
	Variant mcp.Variant
}

// IDs returns all known client identifiers in stable registry order.
func IDs() []string {
	return []string{Cursor, Claude, VSCode, Amp, Kiro, AmazonQ, Codex, OpenCode}
}

// Known reports whether id names a registered client.
func Known(id string) bool {
	switch id {
	case Cursor, Claude, VSCode, Amp, Kiro, AmazonQ, Codex, OpenCode:
		return true
	}
	return false
}

// Resolve derives the config descriptor for a client id within env.
//
// Unknown ids return ErrUnknownClient. Known ids whose path cannot be
// derived on env's platform (a required environment variable is unset)
// return ErrUnsupportedPlatform. Both unwrap with errors.Is.
func Resolve(id string, env Env) (Descriptor, error) {
	desc := Descriptor{
		ID:     id,
		Format: confdoc.FormatJSON,
	}

	switch id {
	case Cursor:
		desc.DisplayName = "Cursor"
		desc.Variant = mcp.StandardServers
		// Prefer a project-local config when one already exists
		local := filepath.Join(env.WorkDir, ".cursor", "mcp.json")
		if env.fileExists(local) {
			desc.ConfigPath = local
		} else {
			desc.ConfigPath = filepath.Join(env.Home, ".cursor", "mcp.json")
		}

	case Claude:
		desc.DisplayName = "Claude Desktop"
		desc.Variant = mcp.StandardServers
		switch env.OS {
		case "darwin":
			desc.ConfigPath = filepath.Join(env.Home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
		case "windows":
			appData := env.getenv("APPDATA")
			if appData == "" {
				return Descriptor{}, errors.Wrapf(clixerrors.ErrUnsupportedPlatform, "%s: APPDATA not set", id)
			}
			desc.ConfigPath = filepath.Join(appData, "Claude", "claude_desktop_config.json")
		default:
			desc.ConfigPath = filepath.Join(env.configHome(), "Claude", "claude_desktop_config.json")
		}

	case VSCode:
		desc.DisplayName = "VS Code"
		desc.Variant = mcp.StandardServers
		desc.ConfigPath = filepath.Join(env.Home, ".vscode", "mcp.json")

	case Amp:
		desc.DisplayName = "Amp"
		desc.Variant = mcp.AmpNamespaced
		if env.OS == "windows" {
			profile := env.getenv("USERPROFILE")
			if profile == "" {
				return Descriptor{}, errors.Wrapf(clixerrors.ErrUnsupportedPlatform, "%s: USERPROFILE not set", id)
			}
			desc.ConfigPath = filepath.Join(profile, ".config", "amp", "settings.json")
		} else {
			desc.ConfigPath = filepath.Join(env.configHome(), "amp", "settings.json")
		}

	case Kiro:
		desc.DisplayName = "Kiro"
		desc.Variant = mcp.StandardServers
		desc.ConfigPath = filepath.Join(env.WorkDir, ".kiro", "settings", "mcp.json")

	case AmazonQ:
		desc.DisplayName = "Amazon Q"
		desc.Variant = mcp.StandardServers
		desc.ConfigPath = filepath.Join(env.Home, ".aws", "amazonq", "agents", "default.json")

	case Codex:
		desc.DisplayName = "Codex"
		desc.Format = confdoc.FormatTOML
		desc.Variant = mcp.CodexTable
		desc.ConfigPath = filepath.Join(env.Home, ".codex", "config.toml")

	case OpenCode:
		desc.DisplayName = "OpenCode"
		desc.Variant = mcp.OpenCodeMap
		desc.ConfigPath = filepath.Join(env.WorkDir, "opencode.json")

	default:
		return Descriptor{}, errors.Wrapf(clixerrors.ErrUnknownClient, "%q", id)
	}

	if override := env.PathOverrides[id]; override != "" {
		desc.ConfigPath = override
	}

	return desc, nil
}

// ResolveAll resolves every known client in registry order. Clients that
// fail to resolve (unsupported on this platform) are skipped.
func ResolveAll(env Env) []Descriptor {
	descs := make([]Descriptor, 0, len(IDs()))
	for _, id := range IDs() {
		desc, err := Resolve(id, env)
		if err != nil {
			continue
		}
		descs = append(descs, desc)
	}
	return descs
}
