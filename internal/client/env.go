// Package client is the registry of AI coding clients clix-skills can
// register the Clix MCP server with. It resolves a client id plus an
// execution environment to a config file descriptor, and detects which
// clients are present on a machine.
package client

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"

	"github.com/clix-so/clix-skills/internal/paths"
)

// Env captures everything path resolution may consult. Resolution is a
// pure function of this value, never of process globals, so the registry
// stays testable for any platform from any platform.
type Env struct {
	// OS is the target operating system, as runtime.GOOS spells it.
	OS string

	// Home is the user's home directory.
	Home string

	// WorkDir is the directory the tool was invoked from. Project-scoped
	// clients (cursor, kiro, opencode) resolve against it.
	WorkDir string

	// Getenv reads an environment variable, returning "" when unset.
	Getenv func(string) string

	// FileExists probes for an existing regular file. Cursor's
	// project-local config preference depends on it.
	FileExists func(string) bool

	// DirExists probes for an existing directory. Detection uses it to
	// tell an installed client without a config file from an absent one.
	DirExists func(string) bool

	// PathOverrides substitutes config paths per client id, taking
	// precedence over derivation. Populated from the tool's own config.
	PathOverrides map[string]string
}

// DefaultEnv builds an Env from the running process.
func DefaultEnv() (Env, error) {
	home, err := paths.ResolveHome()
	if err != nil {
		return Env{}, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return Env{}, errors.Wrap(err, "getting working directory")
	}
	return Env{
		OS:         runtime.GOOS,
		Home:       home,
		WorkDir:    wd,
		Getenv:     os.Getenv,
		FileExists: regularFileExists,
		DirExists:  dirExists,
	}, nil
}

func regularFileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// configHome returns the Unix config home: $XDG_CONFIG_HOME when set,
// ~/.config otherwise.
func (e Env) configHome() string {
	if dir := e.getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(e.Home, ".config")
}

func (e Env) getenv(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(key)
}

func (e Env) fileExists(path string) bool {
	if e.FileExists == nil {
		return false
	}
	return e.FileExists(path)
}

func (e Env) dirExists(path string) bool {
	if e.DirExists == nil {
		return false
	}
	return e.DirExists(path)
}
