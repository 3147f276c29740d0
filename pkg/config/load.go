// Package config handles configuration loading and validation for caskup.
// Configuration is a single YAML file holding one package manager profile:
// the four command templates plus optional environment and timeout settings.
// An embedded brew-cask profile serves as the default when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caskup/caskup/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the configuration file looked up in the working directory.
const ConfigFileName = ".caskup.yml"

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that specific config file. Otherwise it
// looks for .caskup.yml in the working directory. If no config is found, it
// returns the built-in brew-cask default configuration.
//
// A config file the user pointed at (explicitly or via .caskup.yml) that
// cannot be read or parsed is an error, never a silent fall-through to the
// defaults.
//
// Parameters:
//   - configPath: path to the config file, or empty to use discovery
//   - workDir: working directory for command execution and discovery
//
// Returns:
//   - *Config: the loaded configuration
//   - error: any error encountered during loading
func LoadConfig(configPath, workDir string) (*Config, error) {
	var cfg *Config

	if configPath != "" {
		verbose.Infof("Loading config from: %s", configPath)
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file '%s': %w", configPath, err)
		}
		cfg = loaded
		verbose.ConfigLoaded(configPath)
	} else {
		localConfig := filepath.Join(workDir, ConfigFileName)
		if _, err := os.Stat(localConfig); err == nil {
			verbose.Infof("Found local config: %s", localConfig)
			loaded, err := loadConfigFile(localConfig)
			if err != nil {
				return nil, fmt.Errorf("failed to load config file '%s': %w", localConfig, err)
			}
			cfg = loaded
			verbose.ConfigLoaded(localConfig)
		}

		if cfg == nil {
			cfg = loadDefaultConfig()
			verbose.ConfigLoaded("")
		}
	}

	if workDir != "" {
		cfg.WorkingDir = workDir
	} else if cfg.WorkingDir == "" {
		cfg.WorkingDir = "."
	}

	return cfg, nil
}

// loadConfigFile loads and parses a config file.
//
// This enforces a maximum file size before reading to prevent memory
// exhaustion from a runaway file.
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file is too large, not found, or has invalid YAML
func loadConfigFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > DefaultMaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)",
			info.Size(), DefaultMaxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return loadConfigData(data)
}

// loadConfigData parses YAML configuration data.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if the YAML is invalid
func loadConfigData(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFileStrict loads a config file and rejects unknown fields.
//
// This is stricter than LoadConfig - it returns an error if the config
// contains any unknown fields or semantic validation issues. Useful for
// catching typos and configuration errors early.
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file has unknown fields, validation errors, or
//     invalid YAML
func LoadConfigFileStrict(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > DefaultMaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)",
			info.Size(), DefaultMaxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result := ValidateConfigData(data)
	if result.HasErrors() {
		return nil, fmt.Errorf("%s", result.ErrorMessage())
	}

	return loadConfigData(data)
}

// WriteTemplateConfig writes the starter configuration template to a path.
//
// Used by "caskup config --init". An existing file is never overwritten.
//
// Parameters:
//   - path: destination path for the starter config
//
// Returns:
//   - error: error if the file already exists or cannot be written
func WriteTemplateConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.WriteFile(path, []byte(GetTemplateConfig()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file '%s': %w", path, err)
	}
	return nil
}

// EffectiveYAML renders a configuration back to YAML.
//
// Used by "caskup config --show-effective" to display the configuration the
// run would actually use, whatever its source.
//
// Parameters:
//   - cfg: the configuration to render
//
// Returns:
//   - string: the configuration as YAML
//   - error: error if marshaling fails
func EffectiveYAML(cfg *Config) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
