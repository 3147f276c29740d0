package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommandResolutionHints maps command names to installation instructions.
// Used for preflight validation errors when a required command is not found.
// The command templates are configurable, so hints cover the managers a user
// is likely to point caskup at, not just the default brew profile.
var CommandResolutionHints = map[string]string{
	// Package managers
	"brew":    "Install Homebrew: https://brew.sh/",
	"port":    "Install MacPorts: https://www.macports.org/install.php",
	"apt":     "Debian/Ubuntu tool - typically pre-installed",
	"apt-get": "Debian/Ubuntu tool - typically pre-installed",
	"dnf":     "Fedora tool - typically pre-installed",
	"pacman":  "Arch Linux tool - typically pre-installed",
	"snap":    "Install snapd: https://snapcraft.io/docs/installing-snapd",
	"flatpak": "Install Flatpak: https://flatpak.org/setup/",
	"choco":   "Install Chocolatey: https://chocolatey.org/install",
	"scoop":   "Install Scoop: https://scoop.sh/",
	"winget":  "Install App Installer from the Microsoft Store",

	// Common Unix tools
	"grep": "Unix tool - typically pre-installed on Linux/macOS",
	"awk":  "Unix tool - typically pre-installed on Linux/macOS",
	"sed":  "Unix tool - typically pre-installed on Linux/macOS",
	"sort": "Unix tool - typically pre-installed on Linux/macOS",
	"curl": "Install curl: https://curl.se/download.html (often pre-installed)",
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "failed to parse",
		Hint:       "Check file syntax",
		Resolution: "Validate YAML syntax using a linter or online validator",
	},
	{
		Pattern:    "malformed info output",
		Hint:       "Package metadata did not match the expected layout",
		Resolution: "Run the info command manually and compare its output against the configured manager",
	},
	{
		Pattern:    "command timed out",
		Hint:       "Package manager command took too long",
		Resolution: "Increase timeout_seconds in config, or set it to 0 to disable the timeout",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Run 'caskup config --show-effective' to validate config, or 'caskup config --init' to create one",
	},
	{
		Pattern:    "no such file or directory",
		Hint:       "File or directory not found",
		Resolution: "Verify the path exists and you have read permissions",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check file permissions or run with appropriate privileges",
	},
	{
		Pattern:    "executable file not found",
		Hint:       "Command is not installed or not in PATH",
		Resolution: "Install the package manager or fix the command template in your config",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
//
// Example:
//
//	hint := errors.GetHint(err)
//	if hint != "" {
//	    fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
//	}
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// GetHintForCommand returns the installation hint for a command.
//
// Parameters:
//   - cmd: The command name (e.g., "brew", "port")
//
// Returns:
//   - string: Installation hint, or empty string if unknown command
func GetHintForCommand(cmd string) string {
	return CommandResolutionHints[cmd]
}

// RegisterHint adds a custom hint to the registry.
//
// This allows extending the hint system with project-specific patterns.
//
// Parameters:
//   - pattern: Lowercase substring to match in error messages
//   - hint: Brief description of the issue
//   - resolution: Actionable suggestion for fixing the error
func RegisterHint(pattern, hint, resolution string) {
	CommonErrorHints = append(CommonErrorHints, ErrorHint{
		Pattern:    pattern,
		Hint:       hint,
		Resolution: resolution,
	})
}

// RegisterCommandHint adds a command installation hint.
//
// Parameters:
//   - command: Command name (e.g., "mymanager")
//   - hint: Installation instructions
func RegisterCommandHint(command, hint string) {
	CommandResolutionHints[command] = hint
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
//
// Example:
//
//	enhanced := errors.EnhanceErrorWithHint(err)
//	fmt.Fprintf(os.Stderr, "Error: %s\n", enhanced)
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	for _, hint := range CommonErrorHints {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(hint.Pattern)) {
			return errStr + "\n  \U0001F4A1 " + hint.Hint + ": " + hint.Resolution
		}
	}

	return errStr
}
