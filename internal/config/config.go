// Package config provides configuration management for clix-skills using Viper.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/clix-so/clix-skills/internal/client"
	"github.com/clix-so/clix-skills/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "clix-skills"

// CurrentVersion is the config schema version this build reads and writes.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version        int                       `mapstructure:"version" yaml:"version"`
	DefaultClients []string                  `mapstructure:"default_clients" yaml:"default_clients"`
	SkillsDir      string                    `mapstructure:"skills_dir" yaml:"skills_dir,omitempty"`
	Clients        map[string]ClientOverride `mapstructure:"clients" yaml:"clients,omitempty"`
}

// ClientOverride contains configuration overrides for a specific client.
type ClientOverride struct {
	ConfigPath string `mapstructure:"config_path" yaml:"config_path"`
}

// PathOverrides flattens the per-client config path overrides into the map
// client.Env expects. Empty override values are dropped.
func (c *Config) PathOverrides() map[string]string {
	if len(c.Clients) == 0 {
		return nil
	}
	overrides := make(map[string]string, len(c.Clients))
	for id, o := range c.Clients {
		if o.ConfigPath != "" {
			overrides[id] = o.ConfigPath
		}
	}
	return overrides
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Version:        CurrentVersion,
		DefaultClients: client.IDs(),
	}
}

// Init initializes Viper with default configuration, clearing any previous
// state. Call this once at application startup before accessing config
// values.
func Init() {
	viper.Reset()

	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths: CLIX_SKILLS_CONFIG_DIR wins, then the tool config dir
	if dir := os.Getenv("CLIX_SKILLS_CONFIG_DIR"); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(paths.ToolConfigDir())
	}

	// Environment variable support
	viper.SetEnvPrefix("CLIX_SKILLS")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", CurrentVersion)
	viper.SetDefault("default_clients", client.IDs())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and the file must
// exist. If path is empty, it searches the default locations and falls back
// to default values when no file is found. Loaded configurations are
// validated before being returned.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// Search mode reports a missing file as ConfigFileNotFoundError;
		// an explicit path reports the underlying open error.
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file uses defaults
		case errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// LoadDefault loads the configuration from the default locations.
func LoadDefault() (*Config, error) {
	return Load("")
}

// FileUsed returns the path of the config file the last Load read, or an
// empty string when no file was found and defaults are in effect.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
