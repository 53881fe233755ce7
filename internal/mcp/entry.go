// Package mcp defines the canonical Clix MCP server entry, the schema
// variants clients use to register MCP servers, and the merge operation
// that injects the entry into a client configuration document.
package mcp

// ServerKey is the registration key for the Clix MCP server in every
// client configuration, regardless of schema variant.
const ServerKey = "clix-mcp-server"

// Entry is the canonical launch specification for an MCP server: how a
// client should start it. Schema variants project this into the shape a
// particular client expects on disk.
type Entry struct {
	// Command is the executable the client launches.
	Command string

	// Args are the command-line arguments passed to Command.
	Args []string

	// Env contains environment variables for the server process.
	// Nil when the server needs none.
	Env map[string]string
}

// DefaultEntry returns the canonical entry for the Clix MCP server,
// launched from the npm registry so clients always run the latest release.
func DefaultEntry() Entry {
	return Entry{
		Command: "npx",
		Args:    []string{"-y", "@clix-so/clix-mcp-server@latest"},
	}
}
