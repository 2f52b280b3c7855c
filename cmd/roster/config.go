// Viper-backed configuration for the roster CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFile     = "config.yaml"

	cfgKeyInput    = "input"
	cfgKeyLogLevel = "log_level"

	defaultLogLevel = "warn"
)

// defaultConfigYAML seeds config.yaml on first use so there is a
// commented template to edit instead of an empty directory.
const defaultConfigYAML = `# Roster CLI configuration

# Input YAML file (optional; overridable by --input flag)
# input:

# Log level: debug, info, warn, error
log_level: warn
`

// loadConfig returns a Viper instance backed by config.yaml under
// configDir. The directory and a template config.yaml are created when
// absent; a config.yaml deleted after that is tolerated and defaults
// apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := seedConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("seed config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// seedConfigFile writes the template config.yaml unless one exists.
func seedConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFile)

	switch _, err := os.Stat(path); {
	case err == nil:
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
