package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"navstack/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/navstack"
	configFileName = "navstack.yaml"
)

// GetDefaultConfigPathOrPanic returns the per-user configuration
// directory.
func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from the specified directory. The
// directory should contain navstack.yaml; a missing file yields the
// defaults, a malformed one is an error.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No %s found at %s, using defaults", configFileName, configFilePath)
			return config, nil
		}
		logging.Info("ConfigLoader", "Error loading %s from %s: %s", configFileName, configFilePath, err)
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config at %s: %w", configFilePath, err)
	}

	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}
