// Package manager drives the configured package manager through its four
// command templates: list, info, uninstall, install. It is the only package
// that invokes external commands on the orchestrator's behalf, so the policy
// of which invocations echo their output lives entirely here.
package manager

import (
	"fmt"
	"strings"

	"github.com/caskup/caskup/pkg/cmdexec"
	"github.com/caskup/caskup/pkg/config"
	"github.com/caskup/caskup/pkg/errors"
	"github.com/caskup/caskup/pkg/verbose"
)

// Manager executes package manager commands for one configured profile.
type Manager struct {
	cfg *config.Config
}

// New creates a Manager bound to a loaded configuration.
//
// Parameters:
//   - cfg: the configuration holding the manager profile and working directory
//
// Returns:
//   - *Manager: a manager ready to run commands
func New(cfg *config.Config) *Manager {
	return &Manager{cfg: cfg}
}

// Name returns the configured manager profile name.
func (m *Manager) Name() string {
	return m.cfg.Manager.Name
}

// run executes one command template through the shared runner.
//
// A failing command comes back from the runner as a *cmdexec.RunError; it is
// converted here into an *errors.ExitError carrying the child's exit status,
// so the code reaches the top-level exit unremapped. Start failures, which
// have no exit status, map to the generic failure code.
//
// Parameters:
//   - template: the command template to execute
//   - pkg: package name substituted for {{package}}, empty for none
//   - echo: echo captured output on success
//
// Returns:
//   - string: merged stdout and stderr from the command
//   - error: an *errors.ExitError when the command fails
func (m *Manager) run(template, pkg string, echo bool) (string, error) {
	var vars map[string]string
	if pkg != "" {
		vars = cmdexec.TemplateVars(pkg)
	}

	output, err := cmdexec.Run(template, vars, m.cfg.Manager.Env, m.cfg.WorkingDir,
		m.cfg.Manager.GetTimeoutSeconds(), echo)
	if err != nil {
		if runErr, ok := cmdexec.IsRunError(err); ok {
			code := runErr.ExitCode
			if code < 0 {
				code = errors.ExitFailure
			}
			return output, errors.NewExitError(code, err)
		}
		return output, err
	}
	return output, nil
}

// ListInstalled returns the names of all installed packages.
//
// It runs the list template without echo and splits the trimmed output on
// newlines. The manager's emission order is preserved; blank lines are
// dropped. Empty output yields an empty slice, so no phantom package name
// ever reaches a caller.
//
// Returns:
//   - []string: installed package names in the manager's order
//   - error: an error when the list command fails
func (m *Manager) ListInstalled() ([]string, error) {
	output, err := m.run(m.cfg.Manager.List, "", false)
	if err != nil {
		return nil, fmt.Errorf("failed to list installed packages: %w", err)
	}

	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return []string{}, nil
	}

	lines := strings.Split(trimmed, "\n")
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}

	verbose.Infof("Found %d installed packages", len(names))
	return names, nil
}

// Info returns the raw metadata lines for one package.
//
// It runs the info template without echo. The output is split on newlines
// with no per-line trimming; the version extraction rules depend on exact
// line content and positions.
//
// Parameters:
//   - pkg: the package to query
//
// Returns:
//   - []string: raw metadata lines
//   - error: an error when the info command fails
func (m *Manager) Info(pkg string) ([]string, error) {
	output, err := m.run(m.cfg.Manager.Info, pkg, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch info for '%s': %w", pkg, err)
	}
	return strings.Split(output, "\n"), nil
}

// Uninstall removes the installed version of one package.
//
// The uninstall command's output is always echoed; the user watches the
// manager work during an upgrade.
//
// Parameters:
//   - pkg: the package to uninstall
//
// Returns:
//   - error: an error when the uninstall command fails
func (m *Manager) Uninstall(pkg string) error {
	if _, err := m.run(m.cfg.Manager.Uninstall, pkg, true); err != nil {
		return fmt.Errorf("failed to uninstall '%s': %w", pkg, err)
	}
	return nil
}

// Install installs the currently available version of one package.
//
// Like Uninstall, output is always echoed.
//
// Parameters:
//   - pkg: the package to install
//
// Returns:
//   - error: an error when the install command fails
func (m *Manager) Install(pkg string) error {
	if _, err := m.run(m.cfg.Manager.Install, pkg, true); err != nil {
		return fmt.Errorf("failed to install '%s': %w", pkg, err)
	}
	return nil
}
