package config

// Config is the root configuration structure.
type Config struct {
	Manager ManagerCfg `yaml:"manager"`

	// WorkingDir is the directory external commands run in. It is set at
	// load time from the CLI, not persisted to YAML.
	WorkingDir string `yaml:"-"`
}

// ManagerCfg holds the command templates for one package manager profile.
//
// The four templates are the entire surface caskup touches on the manager.
// Templates are tokenized into an argument list before execution; the
// {{package}} placeholder is substituted per token, so no template ever
// passes through a shell.
type ManagerCfg struct {
	// Name identifies the manager profile in output and verbose logs.
	Name string `yaml:"name"`

	// List enumerates installed package names, one per line.
	List string `yaml:"list"`

	// Info prints metadata text for one package. Must contain {{package}}.
	Info string `yaml:"info"`

	// Uninstall removes the installed version of a package.
	// Must contain {{package}}.
	Uninstall string `yaml:"uninstall"`

	// Install installs the currently available version of a package.
	// Must contain {{package}}.
	Install string `yaml:"install"`

	// Env holds environment variables set for every manager command.
	// Values may reference existing variables ($HOME style); they are
	// expanded when the command runs.
	Env map[string]string `yaml:"env,omitempty"`

	// TimeoutSeconds limits each command's runtime. Zero means no timeout,
	// matching the manager's own pace however slow.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// CommandTemplate pairs a configuration field with its command template.
type CommandTemplate struct {
	// Field is the configuration path of the template, e.g. "manager.info".
	Field string

	// Template is the command template text.
	Template string
}

// CommandTemplates returns the manager's templates in a fixed order.
//
// Validation and pre-flight iterate this instead of the struct fields so
// error output stays deterministic.
//
// Returns:
//   - []CommandTemplate: list, info, uninstall, install in that order
func (m *ManagerCfg) CommandTemplates() []CommandTemplate {
	return []CommandTemplate{
		{Field: "manager.list", Template: m.List},
		{Field: "manager.info", Template: m.Info},
		{Field: "manager.uninstall", Template: m.Uninstall},
		{Field: "manager.install", Template: m.Install},
	}
}

// GetTimeoutSeconds returns the configured timeout.
//
// Returns:
//   - int: timeout in seconds, 0 when no timeout is configured
func (m *ManagerCfg) GetTimeoutSeconds() int {
	if m.TimeoutSeconds > 0 {
		return m.TimeoutSeconds
	}
	return 0
}

// DefaultMaxConfigFileSize is the maximum config file size (10MB).
const DefaultMaxConfigFileSize = 10 * 1024 * 1024
