// Package config provides configuration management for the clix-skills CLI.
//
// This package handles loading and validating the tool's own configuration
// file. It is distinct from the client configurations the sync workflow
// edits, which are owned by the client tools themselves.
//
// # Configuration File
//
// The default configuration file location is ~/.config/clix-skills/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	default_clients:
//	  - cursor
//	  - claude
//	skills_dir: /custom/skills   # optional
//	clients:                     # optional per-client overrides
//	  codex:
//	    config_path: /custom/codex/config.toml
//
// # Loading Configuration
//
// Use [LoadDefault] to load from the default location with graceful fallback
// to default values:
//
//	cfg, err := config.LoadDefault()
//	if err != nil {
//	    return err
//	}
//
// Use [Load] when you need to load from a specific path; the file must
// exist in that case.
//
// # Validation
//
// All loaded configurations are validated automatically. You can also
// validate a configuration manually:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
//
// # Default Values
//
// The [Default] function returns a configuration with sensible defaults:
//
//	cfg := config.Default()
//	// cfg.Version = 1
//	// cfg.DefaultClients = all known client ids
package config
