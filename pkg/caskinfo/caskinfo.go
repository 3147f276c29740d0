// Package caskinfo extracts version strings from package manager info output.
//
// The extraction rules are positional contracts tied to the current layout of
// "brew cask info" text: the installed version sits on the first line after a
// colon, the available version is the base path component of the first token
// on the third line. Any change to that layout breaks extraction, so the
// rules live here behind a narrow interface and nowhere else.
//
// Extracted versions are opaque strings. Callers compare them with plain
// equality; "2.0" and "2.0.0" are different versions.
package caskinfo

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Field names reported by ParseError.
const (
	FieldInstalled = "installed"
	FieldAvailable = "available"
)

// ParseError represents info output that does not match the expected layout.
//
// Fields:
//   - Field: Which version could not be extracted ("installed" or "available")
//   - Line: The offending line text, empty when the line is missing entirely
//   - Index: The zero-based line index the extraction rule targets
type ParseError struct {
	// Field is the version field that could not be extracted.
	Field string

	// Line is the offending line, or empty when it does not exist.
	Line string

	// Index is the zero-based index of the targeted line.
	Index int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("malformed info output: missing line %d for the %s version", e.Index, e.Field)
	}
	return fmt.Sprintf("malformed info output: cannot extract the %s version from line %d (%q)", e.Field, e.Index, e.Line)
}

// IsParseError checks if err is a ParseError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ParseError: The ParseError if err is one, nil otherwise
//   - bool: true if err is a ParseError
func IsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}

// InstalledVersion extracts the installed version from info output lines.
//
// The first line is expected to have the shape "<name>: <version>". The text
// after the first colon, with surrounding whitespace trimmed, is the version.
//
// Parameters:
//   - lines: Info output split into lines, untrimmed
//
// Returns:
//   - string: The installed version string
//   - error: A *ParseError when the first line is missing, has no colon, or
//     carries no version after the colon
func InstalledVersion(lines []string) (string, error) {
	if len(lines) == 0 {
		return "", &ParseError{Field: FieldInstalled, Index: 0}
	}

	line := lines[0]
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", &ParseError{Field: FieldInstalled, Line: line, Index: 0}
	}

	version := strings.TrimSpace(line[idx+1:])
	if version == "" {
		return "", &ParseError{Field: FieldInstalled, Line: line, Index: 0}
	}
	return version, nil
}

// AvailableVersion extracts the available version from info output lines.
//
// The third line is expected to have the shape "<path>/<version> (<size>)".
// The first space-separated token is a location path whose base component is
// the version. Locations are manager-emitted and always /-separated, so this
// uses path.Base rather than the platform-dependent filepath.Base.
//
// Parameters:
//   - lines: Info output split into lines, untrimmed
//
// Returns:
//   - string: The available version string
//   - error: A *ParseError when fewer than three lines exist or the location
//     token is blank
func AvailableVersion(lines []string) (string, error) {
	if len(lines) < 3 {
		return "", &ParseError{Field: FieldAvailable, Index: 2}
	}

	line := lines[2]
	location := strings.SplitN(line, " ", 2)[0]
	if location == "" {
		return "", &ParseError{Field: FieldAvailable, Line: line, Index: 2}
	}
	return path.Base(location), nil
}

// Versions extracts both version strings from info output lines.
//
// Parameters:
//   - lines: Info output split into lines, untrimmed
//
// Returns:
//   - string: The installed version
//   - string: The available version
//   - error: The first *ParseError encountered, installed side first
func Versions(lines []string) (string, string, error) {
	installed, err := InstalledVersion(lines)
	if err != nil {
		return "", "", err
	}
	available, err := AvailableVersion(lines)
	if err != nil {
		return "", "", err
	}
	return installed, available, nil
}
