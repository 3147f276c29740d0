package testutil

import (
	"github.com/caskup/caskup/pkg/config"
)

// ConfigBuilder provides a fluent API for building test configurations.
//
// Use this builder to construct Config objects for testing purposes
// without needing to set all required fields manually.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfig creates a new ConfigBuilder with default values.
//
// Initializes a builder with working directory set to "." and a manager
// profile named "test" whose templates all resolve but do nothing.
//
// Returns:
//   - *ConfigBuilder: New builder instance ready for method chaining
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: config.Config{
			WorkingDir: ".",
			Manager: config.ManagerCfg{
				Name:      "test",
				List:      "true",
				Info:      "true {{package}}",
				Uninstall: "true {{package}}",
				Install:   "true {{package}}",
			},
		},
	}
}

// WithWorkingDir sets the working directory for the configuration.
//
// Parameters:
//   - dir: Path to the working directory
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithWorkingDir(dir string) *ConfigBuilder {
	b.cfg.WorkingDir = dir
	return b
}

// WithManagerName sets the manager profile name.
//
// Parameters:
//   - name: Manager identifier (e.g., "brew-cask")
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithManagerName(name string) *ConfigBuilder {
	b.cfg.Manager.Name = name
	return b
}

// WithCommands sets all four command templates at once.
//
// Parameters:
//   - list: Template for listing installed packages
//   - info: Template for fetching package metadata
//   - uninstall: Template for removing a package
//   - install: Template for installing a package
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithCommands(list, info, uninstall, install string) *ConfigBuilder {
	b.cfg.Manager.List = list
	b.cfg.Manager.Info = info
	b.cfg.Manager.Uninstall = uninstall
	b.cfg.Manager.Install = install
	return b
}

// WithTimeout sets the per-command timeout in seconds.
//
// Parameters:
//   - seconds: Timeout value; zero disables the timeout
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithTimeout(seconds int) *ConfigBuilder {
	b.cfg.Manager.TimeoutSeconds = seconds
	return b
}

// WithEnv adds an environment variable to the manager profile.
//
// Parameters:
//   - key: Environment variable name
//   - value: Environment variable value
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithEnv(key, value string) *ConfigBuilder {
	if b.cfg.Manager.Env == nil {
		b.cfg.Manager.Env = make(map[string]string)
	}
	b.cfg.Manager.Env[key] = value
	return b
}

// Build returns the built configuration.
//
// Returns a pointer to the constructed Config. The builder can be
// reused after calling Build.
//
// Returns:
//   - *config.Config: Pointer to the built configuration
func (b *ConfigBuilder) Build() *config.Config {
	return &b.cfg
}

// ScriptManagerConfig creates a configuration whose four commands all run
// the given executable with a distinguishing first argument.
//
// The executable receives "list", "info", "uninstall", or "install" as
// its first argument, followed by the package name where one applies.
// Point this at a fixture script to drive the full flow without a real
// package manager.
//
// Parameters:
//   - script: Path to the executable handling all four commands
//
// Returns:
//   - *config.Config: Configuration wired to the script
func ScriptManagerConfig(script string) *config.Config {
	return NewConfig().
		WithManagerName("fake").
		WithCommands(
			script+" list",
			script+" info {{package}}",
			script+" uninstall {{package}}",
			script+" install {{package}}",
		).
		Build()
}
