package testutil

import (
	"fmt"
	"strings"
)

// InfoBuilder provides a fluent API for building package metadata output
// shaped like what the info command prints.
//
// The first line carries the installed version after the colon, the third
// line carries the available version as the last path segment of its
// first token. Tests feed the result to the version extractor or embed
// it in fixture scripts.
type InfoBuilder struct {
	name      string
	installed string
	available string
	homepage  string
	tap       string
}

// NewInfo creates a new InfoBuilder for the given package name.
//
// Versions default to "1.0.0" for both installed and available, so the
// package reads as up to date until WithVersions changes that.
//
// Parameters:
//   - name: Package name the metadata describes
//
// Returns:
//   - *InfoBuilder: New builder instance ready for method chaining
func NewInfo(name string) *InfoBuilder {
	return &InfoBuilder{
		name:      name,
		installed: "1.0.0",
		available: "1.0.0",
	}
}

// WithVersions sets the installed and available versions.
//
// Parameters:
//   - installed: Version reported on the first metadata line
//   - available: Version encoded in the third metadata line
//
// Returns:
//   - *InfoBuilder: Self for method chaining
func (b *InfoBuilder) WithVersions(installed, available string) *InfoBuilder {
	b.installed = installed
	b.available = available
	return b
}

// WithHomepage sets the homepage line.
//
// Parameters:
//   - url: Homepage URL for the second metadata line
//
// Returns:
//   - *InfoBuilder: Self for method chaining
func (b *InfoBuilder) WithHomepage(url string) *InfoBuilder {
	b.homepage = url
	return b
}

// WithTap sets the source tap line.
//
// Parameters:
//   - tap: Source repository for the final metadata line
//
// Returns:
//   - *InfoBuilder: Self for method chaining
func (b *InfoBuilder) WithTap(tap string) *InfoBuilder {
	b.tap = tap
	return b
}

// Lines returns the metadata as individual lines.
//
// Returns:
//   - []string: Four metadata lines in fixed positional order
func (b *InfoBuilder) Lines() []string {
	homepage := b.homepage
	if homepage == "" {
		homepage = fmt.Sprintf("https://example.org/%s", b.name)
	}
	tap := b.tap
	if tap == "" {
		tap = "https://github.com/Homebrew/homebrew-cask"
	}

	return []string{
		fmt.Sprintf("%s: %s", b.name, b.installed),
		homepage,
		fmt.Sprintf("/usr/local/Caskroom/%s/%s (217B)", b.name, b.available),
		"From: " + tap,
	}
}

// Output returns the metadata as one newline-joined string.
//
// Returns:
//   - string: Metadata lines joined with newlines
func (b *InfoBuilder) Output() string {
	return strings.Join(b.Lines(), "\n")
}

// InfoOutput returns canned metadata output for a package.
//
// Shorthand for the common case of building metadata with specific
// versions and default homepage and tap lines.
//
// Parameters:
//   - name: Package name the metadata describes
//   - installed: Installed version
//   - available: Available version
//
// Returns:
//   - string: Metadata lines joined with newlines
func InfoOutput(name, installed, available string) string {
	return NewInfo(name).WithVersions(installed, available).Output()
}
