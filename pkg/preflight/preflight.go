// Package preflight verifies that the commands named by the manager
// configuration can actually be resolved before any of them runs.
//
// Every command template is reduced to its executable name and checked
// once against PATH, with a login-shell fallback so commands provided by
// shell initialization still count as available. Failures are collected
// into a validation result rather than aborting on the first miss, so a
// user fixing their configuration sees every unresolvable command at
// once.
package preflight

import (
	"os/exec"

	"github.com/caskup/caskup/pkg/cmdexec"
	"github.com/caskup/caskup/pkg/config"
	"github.com/caskup/caskup/pkg/errors"
	"github.com/caskup/caskup/pkg/verbose"
)

// ValidateManager checks that every command template configured for the
// package manager resolves to a runnable executable.
//
// It performs the following operations:
//  1. Extracts the executable name from each command template
//  2. Deduplicates names so each executable is checked once
//  3. Resolves each name via PATH, falling back to the user's shell
//  4. Collects a validation error with a resolution hint for each miss
//
// Empty templates are skipped; config validation reports those
// separately.
//
// Parameters:
//   - cfg: the loaded configuration whose manager commands to verify
//
// Returns:
//   - *errors.ValidationResult: the collected preflight errors, empty
//     when every command resolves
func ValidateManager(cfg *config.Config) *errors.ValidationResult {
	result := errors.NewValidationResult()
	checked := make(map[string]bool)

	verbose.Infof("Preflight: validating commands for manager '%s'", cfg.Manager.Name)

	for _, tmpl := range cfg.Manager.CommandTemplates() {
		name := cmdexec.CommandName(tmpl.Template)
		if name == "" || checked[name] {
			continue
		}
		checked[name] = true

		if commandExists(name) {
			continue
		}
		result.AddError(errors.NewPreflightValidationError(name, errors.GetHintForCommand(name)))
	}

	verbose.Infof("Preflight: checked %d unique commands, %d missing", len(checked), len(result.Errors))
	return result
}

// commandExists reports whether a command can be resolved, first via
// PATH and then through the user's shell.
//
// The shell fallback covers commands that only become visible after
// shell initialization, such as those added by version managers.
//
// Parameters:
//   - name: the executable name to resolve
//
// Returns:
//   - bool: true if the command resolves through either mechanism
func commandExists(name string) bool {
	if _, err := exec.LookPath(name); err == nil {
		verbose.Printf("Preflight: command '%s' found in PATH", name)
		return true
	}

	verbose.Printf("Preflight: command '%s' not in PATH, trying shell resolution", name)
	if commandExistsInShell(name) {
		verbose.Printf("Preflight: command '%s' resolved via shell", name)
		return true
	}

	verbose.Printf("Preflight: command '%s' could not be resolved", name)
	return false
}

// commandExistsInShell checks command availability through a login
// shell, so PATH entries added by shell profiles are honored.
//
// Parameters:
//   - name: the executable name to resolve
//
// Returns:
//   - bool: true if the shell resolves the command
func commandExistsInShell(name string) bool {
	shell, args := shellCommandCheck(name)
	return exec.Command(shell, args...).Run() == nil
}
