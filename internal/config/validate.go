package config

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/clix-so/clix-skills/internal/client"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not a version
	// this build understands.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidClient indicates an unrecognized client id.
	ErrInvalidClient = errors.New("invalid client")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "%d", cfg.Version))
	}

	for _, id := range cfg.DefaultClients {
		if !client.Known(id) {
			errs = append(errs, &ClientError{
				Client: id,
				Err:    ErrInvalidClient,
			})
		}
	}

	if cfg.SkillsDir != "" {
		if err := validatePath(cfg.SkillsDir); err != nil {
			errs = append(errs, &PathError{
				Field: "skills_dir",
				Path:  cfg.SkillsDir,
				Err:   err,
			})
		}
	}

	for id, override := range cfg.Clients {
		if !client.Known(id) {
			errs = append(errs, &ClientError{
				Client: id,
				Err:    ErrInvalidClient,
			})
			continue
		}
		if err := validatePath(override.ConfigPath); err != nil {
			errs = append(errs, &PathError{
				Field: "clients." + id + ".config_path",
				Path:  override.ConfigPath,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// ClientError represents an error for a specific client id.
type ClientError struct {
	Client string
	Err    error
}

func (e *ClientError) Error() string {
	return e.Err.Error() + ": " + e.Client
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
