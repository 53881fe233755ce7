package mcp

// Variant identifies the registration schema a client uses for MCP
// servers. A variant fixes two things: the key path of the server
// collection inside the config document, and the shape of a registered
// entry under its key.
type Variant string

const (
	// StandardServers is the common JSON shape:
	// {"mcpServers": {<name>: {command, args, env?}}}.
	StandardServers Variant = "standard"

	// AmpNamespaced is Amp's flattened settings key: the collection lives
	// under the single top-level key "amp.mcpServers" (the dot is part of
	// the key, not nesting). Entries share the standard shape.
	AmpNamespaced Variant = "amp"

	// CodexTable is Codex's TOML shape: [mcp_servers.<name>] tables with
	// command, args, and optional env.
	CodexTable Variant = "codex"

	// OpenCodeMap is OpenCode's shape: {"mcp": {<name>: {type: "local",
	// command: [cmd, ...args], enabled: true}}} with the launch command
	// flattened into a single array.
	OpenCodeMap Variant = "opencode"
)

// KeyPath returns the server collection's key path from the document root.
// Each element is one literal key.
func (v Variant) KeyPath() []string {
	switch v {
	case AmpNamespaced:
		return []string{"amp.mcpServers"}
	case CodexTable:
		return []string{"mcp_servers"}
	case OpenCodeMap:
		return []string{"mcp"}
	default:
		return []string{"mcpServers"}
	}
}

// standardServer is the {command, args, env?} object most clients use.
type standardServer struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// codexServer is the TOML table shape for Codex.
type codexServer struct {
	Command string            `toml:"command"`
	Args    []string          `toml:"args,omitempty"`
	Env     map[string]string `toml:"env,omitempty"`
}

// openCodeServer is OpenCode's local server shape. Enabled is written
// explicitly so the entry works on installations that default it off.
type openCodeServer struct {
	Type    string   `json:"type"`
	Command []string `json:"command"`
	Enabled bool     `json:"enabled"`
}

// Project converts the canonical entry into the on-disk value for this
// variant. For OpenCodeMap the command and args flatten into one array and
// env is dropped; the canonical Clix entry carries none.
func (v Variant) Project(e Entry) any {
	switch v {
	case CodexTable:
		return codexServer{Command: e.Command, Args: e.Args, Env: e.Env}
	case OpenCodeMap:
		command := make([]string, 0, len(e.Args)+1)
		command = append(command, e.Command)
		command = append(command, e.Args...)
		return openCodeServer{Type: "local", Command: command, Enabled: true}
	default:
		return standardServer{Command: e.Command, Args: e.Args, Env: e.Env}
	}
}
