package utils

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/caskup/caskup/pkg/constants"
	"github.com/caskup/caskup/pkg/verbose"
)

// Change labels for a version transition. Display only: the upgrade decision
// compares raw version strings and never consults these.
const (
	ChangeNone       = "none"
	ChangeMajor      = "major"
	ChangeMinor      = "minor"
	ChangePatch      = "patch"
	ChangePrerelease = "prerelease"
	ChangeUnknown    = "unknown"
)

// ClassifyChange labels the transition between two version strings.
//
// It performs the following operations:
//   - Canonicalizes both versions to semver, padding missing parts
//   - Compares major, then major.minor, then prerelease identifiers
//   - Falls back to "unknown" when either version is not semver-shaped
//
// Versions whose canonical forms match label as "none" even when the raw
// strings differ ("2.0" vs "2.0.0"); the label then tells the user the
// difference is textual only.
//
// Parameters:
//   - installed: The installed version string
//   - available: The available version string
//
// Returns:
//   - string: One of the Change* labels
func ClassifyChange(installed, available string) string {
	if installed == available {
		return ChangeNone
	}

	from := canonicalSemver(installed)
	to := canonicalSemver(available)
	if from == "" || to == "" {
		verbose.Printf("Change classification: %q -> %q is not semver-shaped\n", installed, available)
		return ChangeUnknown
	}

	switch {
	case from == to:
		return ChangeNone
	case semver.Major(from) != semver.Major(to):
		return ChangeMajor
	case semver.MajorMinor(from) != semver.MajorMinor(to):
		return ChangeMinor
	case semver.Prerelease(from) != "" || semver.Prerelease(to) != "":
		return ChangePrerelease
	default:
		return ChangePatch
	}
}

// canonicalSemver converts a version string to canonical semver format.
//
// It performs the following operations:
//   - Cleans and validates the input
//   - Adds "v" prefix if missing
//   - Pads missing minor/patch with zeros until valid semver is found
//   - Returns canonical form using semver.Canonical
//
// Parameters:
//   - version: The version string to canonicalize (e.g., "1.2", "v1.2.3")
//
// Returns:
//   - string: Canonical semver string (e.g., "v1.2.0"); empty string if not valid semver
func canonicalSemver(version string) string {
	cleaned := strings.TrimSpace(version)
	if cleaned == "" || cleaned == constants.PlaceholderNA {
		return ""
	}

	if !strings.HasPrefix(cleaned, "v") {
		cleaned = "v" + cleaned
	}

	trimmed := strings.TrimPrefix(cleaned, "v")
	parts := strings.Split(trimmed, ".")
	for len(parts) > 0 && len(parts) < 3 {
		candidate := "v" + strings.Join(parts, ".")
		if semver.IsValid(candidate) {
			return semver.Canonical(candidate)
		}
		parts = append(parts, "0")
	}

	if semver.IsValid(cleaned) {
		return semver.Canonical(cleaned)
	}

	return ""
}
