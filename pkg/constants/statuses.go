// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for status values.
package constants

// Check status constants represent the state of a package during a version check.
const (
	// StatusUpToDate indicates the installed version matches the available version.
	StatusUpToDate = "UpToDate"

	// StatusOutdated indicates the installed version differs from the available version.
	StatusOutdated = "Outdated"

	// StatusUpgraded indicates the package was reinstalled at the available version.
	StatusUpgraded = "Upgraded"

	// StatusPlanned indicates the upgrade would run but was skipped (dry-run mode).
	StatusPlanned = "Planned"

	// StatusFailed indicates a check or upgrade operation failed.
	StatusFailed = "Failed"

	// StatusConfigError indicates a configuration error prevented the run.
	StatusConfigError = "ConfigError"
)

// Placeholder values for display when data is not available.
const (
	// PlaceholderNA is used when a value is not available.
	PlaceholderNA = "#N/A"
)

// Icon constants for status display.
// These provide visual indicators for package states in CLI output.
const (
	// IconSuccess indicates a successful or positive state (green circle).
	IconSuccess = "🟢"

	// IconWarning indicates a warning or caution state (orange circle).
	IconWarning = "🟠"

	// IconError indicates an error or failed state (red X).
	IconError = "❌"

	// IconInfo indicates informational or neutral state (blue circle).
	IconInfo = "🔵"

	// IconPending indicates a pending or planned state (yellow circle).
	IconPending = "🟡"

	// IconCheckmark indicates a passed check (checkmark).
	IconCheckmark = "✓"

	// IconCross indicates a failed check (cross).
	IconCross = "✗"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconCheckmarkBox indicates successful validation (checkmark in box).
	IconCheckmarkBox = "✅"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"
)
