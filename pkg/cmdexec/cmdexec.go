// Package cmdexec runs package manager commands for caskup.
// Commands are configured as templates ("brew cask info {{package}}"), tokenized
// into an argument list, and executed directly without a shell. Placeholder
// values are substituted per token after tokenization, so a value can never
// change the shape of the argument list.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/caskup/caskup/pkg/verbose"
	"github.com/caskup/caskup/pkg/warnings"
)

var (
	consoleMu     sync.RWMutex
	consoleWriter io.Writer = os.Stdout
)

// SetConsoleWriter swaps the writer that command output is echoed to and
// returns a restore function.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Saves the previous writer for restoration
//   - Sets the new writer (defaults to os.Stdout if nil)
//   - Returns a function that restores the previous writer when called
//
// Parameters:
//   - w: The new io.Writer to echo to; if nil, defaults to os.Stdout
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetConsoleWriter(w io.Writer) func() {
	consoleMu.Lock()
	defer consoleMu.Unlock()

	previous := consoleWriter
	if w == nil {
		consoleWriter = os.Stdout
	} else {
		consoleWriter = w
	}

	return func() {
		consoleMu.Lock()
		defer consoleMu.Unlock()
		consoleWriter = previous
	}
}

// echoOutput writes captured command output to the console writer.
//
// Empty output writes nothing. A trailing newline is added when the output
// does not already end with one, so echoed blocks never run into the next
// line of program output.
//
// Parameters:
//   - output: The captured command output to echo
func echoOutput(output string) {
	if output == "" {
		return
	}
	consoleMu.RLock()
	w := consoleWriter
	consoleMu.RUnlock()
	_, _ = io.WriteString(w, output)
	if !strings.HasSuffix(output, "\n") {
		_, _ = io.WriteString(w, "\n")
	}
}

// RunError represents a package manager command that failed.
//
// The child process's exit status is preserved so callers can terminate the
// caskup process with the same code.
//
// Fields:
//   - Command: The rendered command line, for display
//   - Output: The merged stdout and stderr captured before the failure
//   - ExitCode: The child's exit status; -1 when the process never ran
//     (start failure, kill, or timeout)
//   - Err: The underlying error from os/exec
type RunError struct {
	// Command is the rendered command line.
	Command string

	// Output is the merged stdout and stderr text.
	Output string

	// ExitCode is the child process's exit status, or -1 when no status exists.
	ExitCode int

	// Err is the underlying execution error.
	Err error
}

// Error implements the error interface.
//
// Returns:
//   - string: The failed command with its exit code, or the underlying error
//     when no exit status exists
func (e *RunError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("command %q failed with exit code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *RunError) Unwrap() error {
	return e.Err
}

// IsRunError checks if err is a RunError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *RunError: The RunError if err is one, nil otherwise
//   - bool: true if err is a RunError
func IsRunError(err error) (*RunError, bool) {
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr, true
	}
	return nil, false
}

// RunFunc is the function signature for command execution.
//
// Parameters:
//   - command: Command template to execute (e.g., "brew cask info {{package}}")
//   - vars: Placeholder values substituted into the template tokens
//   - env: Environment variables to set for the command
//   - dir: Working directory for command execution
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//   - echo: Echo captured output to the console writer on success; output is
//     always echoed when the command fails
//
// Returns:
//   - string: Merged stdout and stderr captured from the command
//   - error: A *RunError when the command fails
type RunFunc func(command string, vars map[string]string, env map[string]string, dir string, timeoutSeconds int, echo bool) (string, error)

// RunWithContextFunc is the function signature for context-aware command execution.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - command: Command template to execute
//   - vars: Placeholder values substituted into the template tokens
//   - env: Environment variables to set for the command
//   - dir: Working directory for command execution
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//   - echo: Echo captured output to the console writer on success
//
// Returns:
//   - string: Merged stdout and stderr captured from the command
//   - error: A *RunError when the command fails, or the context's error
type RunWithContextFunc func(ctx context.Context, command string, vars map[string]string, env map[string]string, dir string, timeoutSeconds int, echo bool) (string, error)

// Run is the default command execution function.
//
// This variable holds the implementation used for command execution throughout
// the application. It can be replaced with a mock implementation for testing.
var Run RunFunc = runCommand

// RunWithContext is the context-aware command execution function.
//
// This variable holds the context-aware implementation used for command
// execution. It allows callers to cancel long-running operations and can be
// replaced with a mock implementation for testing.
var RunWithContext RunWithContextFunc = runCommandWithContext

// runCommand executes a command template without external cancellation.
//
// This is a convenience wrapper around runCommandWithContext using the
// background context.
func runCommand(command string, vars map[string]string, env map[string]string, dir string, timeoutSeconds int, echo bool) (string, error) {
	return runCommandWithContext(context.Background(), command, vars, env, dir, timeoutSeconds, echo)
}

// runCommandWithContext executes a command template with context support.
//
// It performs the following operations:
//   - Tokenizes the template into an argument list, respecting quotes
//   - Substitutes placeholder values into the tokens
//   - Spawns the process directly (no shell) with stderr merged into stdout
//   - Echoes captured output per the echo policy: on success only when echo
//     is set, always on failure
//   - Wraps failures in a *RunError carrying the child's exit status
//
// The process runs in its own process group so that a timeout kills every
// child it spawned.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - command: Command template to execute
//   - vars: Placeholder values substituted into the template tokens
//   - env: Environment variables to set for the command
//   - dir: Working directory for command execution
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//   - echo: Echo captured output on success
//
// Returns:
//   - string: Merged stdout and stderr captured from the command
//   - error: A *RunError when the command fails, or the context's error
func runCommandWithContext(ctx context.Context, command string, vars map[string]string, env map[string]string, dir string, timeoutSeconds int, echo bool) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", fmt.Errorf("no command provided")
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	argv := ExpandTokens(Tokenize(command), vars)
	if len(argv) == 0 {
		return "", fmt.Errorf("no command provided")
	}
	rendered := strings.Join(argv, " ")

	if timeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
		defer cancel()
	}

	environ := os.Environ()
	for key, value := range env {
		// Expand any environment variable references in the value
		environ = append(environ, fmt.Sprintf("%s=%s", key, os.ExpandEnv(value)))
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = environ
	if dir != "" {
		cmd.Dir = dir
	}

	// Run command in its own process group so we can kill all children on timeout
	setProcGroup(cmd)

	// One buffer for both streams merges stderr into stdout in arrival order
	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	verbose.CommandExec(rendered, dir)

	runErr := cmd.Run()
	output := combined.String()

	if runErr != nil {
		if ctx.Err() == context.DeadlineExceeded && timeoutSeconds > 0 {
			// Kill entire process group to ensure no orphaned child processes
			if killErr := killProcGroup(cmd); killErr != nil {
				warnings.Warnf("Warning: failed to kill process group on timeout: %v\n", killErr)
			}
			verbose.CommandResult(rendered, -1, output)
			echoOutput(output)
			return output, &RunError{
				Command:  rendered,
				Output:   output,
				ExitCode: -1,
				Err:      fmt.Errorf("command timed out after %d seconds: %w", timeoutSeconds, runErr),
			}
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		verbose.CommandResult(rendered, exitCode, output)
		// A failing command always echoes what it printed
		echoOutput(output)
		return output, &RunError{
			Command:  rendered,
			Output:   output,
			ExitCode: exitCode,
			Err:      runErr,
		}
	}

	verbose.CommandResult(rendered, 0, output)
	if echo {
		echoOutput(output)
	}
	return output, nil
}

// Tokenize parses a command template into arguments, respecting quotes.
//
// This function splits a command string into individual arguments while
// properly handling quoted strings (both single and double quotes) and escape
// sequences. Quoted strings are treated as single arguments even if they
// contain spaces.
//
// Parameters:
//   - command: Command template to parse into arguments
//
// Returns:
//   - []string: Array of parsed command arguments
func Tokenize(command string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)

	for i, r := range command {
		// Handle escape sequences
		if r == '\\' && i+1 < len(command) {
			next := rune(command[i+1])
			if next == '"' || next == '\'' || next == '\\' || next == ' ' {
				current.WriteRune(next)
				continue
			}
		}

		// Handle quotes
		if (r == '"' || r == '\'') && (i == 0 || command[i-1] != '\\') {
			if !inQuote {
				inQuote = true
				quoteChar = r
			} else if r == quoteChar {
				inQuote = false
			} else {
				current.WriteRune(r)
			}
			continue
		}

		// Handle spaces outside quotes
		if !inQuote && (r == ' ' || r == '\t') {
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
			continue
		}

		current.WriteRune(r)
	}

	// Add final argument
	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args
}

// ExpandTokens substitutes placeholder values into tokenized arguments.
//
// Placeholders in the format {{key}} are replaced with their corresponding
// values from the vars map. Substitution happens per token, after
// tokenization, so a value containing spaces or quotes stays a single
// argument.
//
// Parameters:
//   - tokens: Tokenized command arguments possibly containing placeholders
//   - vars: Map of placeholder keys to replacement values
//
// Returns:
//   - []string: New token slice with all placeholders replaced
func ExpandTokens(tokens []string, vars map[string]string) []string {
	if len(tokens) == 0 {
		return nil
	}
	expanded := make([]string, len(tokens))
	for i, token := range tokens {
		for key, value := range vars {
			token = strings.ReplaceAll(token, "{{"+key+"}}", value)
		}
		expanded[i] = token
	}
	return expanded
}

// CommandName returns the program name of a command template.
//
// The template is tokenized and the first token returned. Placeholders are
// not expanded; templates are expected to keep the program name literal.
//
// Parameters:
//   - command: Command template to inspect
//
// Returns:
//   - string: The first token, or an empty string for a blank template
func CommandName(command string) string {
	tokens := Tokenize(command)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

// TemplateVars creates a replacement map for the package placeholder.
//
// This is a convenience function that creates a map with the standard
// {{package}} template key for use with command execution.
//
// Parameters:
//   - pkg: Package name to use for the {{package}} template
//
// Returns:
//   - map[string]string: Map of template keys to replacement values
func TemplateVars(pkg string) map[string]string {
	return map[string]string{
		"package": pkg,
	}
}
