package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caskup/caskup/pkg/cmdexec"
	"github.com/caskup/caskup/pkg/testutil"
	"github.com/caskup/caskup/pkg/verbose"
	"github.com/caskup/caskup/pkg/warnings"
)

// requirePOSIXShell skips tests that exec fixture scripts through /bin/sh.
func requirePOSIXShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixture scripts require a POSIX shell")
	}
}

// fakeManagerScript describes the behavior of the fixture manager script
// the command tests run against.
//
// Fields:
//   - ListLines: Names emitted by the list command, one per line
//   - ListExit: Nonzero exit code that makes the list command fail
//   - Infos: Package name to the output of its info command
//   - InfoExit: Packages whose info command fails with the given code
//   - UninstallExit: Packages whose uninstall command fails with the given code
//   - InstallExit: Packages whose install command fails with the given code
type fakeManagerScript struct {
	ListLines     []string
	ListExit      int
	Infos         map[string]string
	InfoExit      map[string]int
	UninstallExit map[string]int
	InstallExit   map[string]int
}

// fakeManager is a rendered fixture: the script on disk, the log of every
// invocation, and a config file whose four templates point at the script.
//
// Fields:
//   - Script: Absolute path of the executable fixture script
//   - LogFile: File the script appends its arguments to on every call
//   - ConfigPath: Config file wired to the script
type fakeManager struct {
	Script     string
	LogFile    string
	ConfigPath string
}

// standardFixture returns a two-package manager where keepassx needs an
// upgrade and firefox is already current.
func standardFixture() fakeManagerScript {
	return fakeManagerScript{
		ListLines: []string{"keepassx", "firefox"},
		Infos: map[string]string{
			"keepassx": testutil.InfoOutput("keepassx", "2.0.3", "2.0.2"),
			"firefox":  testutil.InfoOutput("firefox", "131.0", "131.0"),
		},
	}
}

// write renders the fixture script, makes it executable, and writes a config
// file pointing all four command templates at it.
//
// The script dispatches on its first argument (list, info, uninstall,
// install) and appends every invocation to the log file, so tests can assert
// the exact command sequence afterwards.
//
// Parameters:
//   - t: Testing instance for temp dir and cleanup
//
// Returns:
//   - *fakeManager: Paths of the rendered fixture
func (s fakeManagerScript) write(t *testing.T) *fakeManager {
	t.Helper()
	requirePOSIXShell(t)

	dir := t.TempDir()
	logFile := filepath.Join(dir, "calls.log")

	var sb strings.Builder
	sb.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&sb, "echo \"$@\" >> '%s'\n", logFile)
	sb.WriteString("case \"$1\" in\n")

	sb.WriteString("list)\n")
	for _, line := range s.ListLines {
		fmt.Fprintf(&sb, "echo '%s'\n", line)
	}
	if s.ListExit != 0 {
		fmt.Fprintf(&sb, "echo 'Error: list failed' >&2\nexit %d\n", s.ListExit)
	}
	sb.WriteString(";;\n")

	sb.WriteString("info)\ncase \"$2\" in\n")
	for _, name := range sortedKeys(s.Infos) {
		fmt.Fprintf(&sb, "'%s')\n", name)
		for _, line := range strings.Split(s.Infos[name], "\n") {
			fmt.Fprintf(&sb, "echo '%s'\n", line)
		}
		sb.WriteString(";;\n")
	}
	for _, name := range sortedKeys(s.InfoExit) {
		fmt.Fprintf(&sb, "'%s')\necho 'Error: no metadata available' >&2\nexit %d\n;;\n", name, s.InfoExit[name])
	}
	sb.WriteString("*)\nexit 1\n;;\nesac\n;;\n")

	sb.WriteString("uninstall)\ncase \"$2\" in\n")
	for _, name := range sortedKeys(s.UninstallExit) {
		fmt.Fprintf(&sb, "'%s')\necho 'Error: uninstall failed' >&2\nexit %d\n;;\n", name, s.UninstallExit[name])
	}
	sb.WriteString("*)\necho \"==> Uninstalling $2\"\n;;\nesac\n;;\n")

	sb.WriteString("install)\ncase \"$2\" in\n")
	for _, name := range sortedKeys(s.InstallExit) {
		fmt.Fprintf(&sb, "'%s')\necho 'Error: install failed' >&2\nexit %d\n;;\n", name, s.InstallExit[name])
	}
	sb.WriteString("*)\necho \"==> Installing $2\"\n;;\nesac\n;;\n")

	sb.WriteString("esac\n")

	scriptPath := filepath.Join(dir, "fakemgr")
	require.NoError(t, os.WriteFile(scriptPath, []byte(sb.String()), 0o755))

	configPath := filepath.Join(dir, ".caskup.yml")
	configYAML := fmt.Sprintf(`manager:
  name: fake
  list: %[1]s list
  info: %[1]s info {{package}}
  uninstall: %[1]s uninstall {{package}}
  install: %[1]s install {{package}}
`, scriptPath)
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o644))

	return &fakeManager{Script: scriptPath, LogFile: logFile, ConfigPath: configPath}
}

// calls returns the logged manager invocations in execution order, one
// entry per command ("list", "info keepassx", ...). A missing log file
// means no command ever ran.
func (f *fakeManager) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(f.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// sortedKeys returns the map's keys in sorted order so the rendered script
// is deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// writeConfigFile writes raw YAML to a temp config file and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".caskup.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// resetCommandState silences usage output and registers cleanup that
// restores every package-level flag variable after the test. Cobra keeps
// parsed flag values between Execute calls, so the destinations have to be
// reset by hand for test isolation.
func resetCommandState(t *testing.T) {
	t.Helper()

	verbose.Disable()

	prevSilenceUsage := rootCmd.SilenceUsage
	rootCmd.SilenceUsage = true

	t.Cleanup(func() {
		rootCmd.SilenceUsage = prevSilenceUsage

		verboseFlag = false
		versionFlag = false
		skipBuildChecksFlag = false
		configFlag = ""
		skipPreflightFlag = false
		dryRunFlag = false
		listOutputFlag = ""
		outdatedOutputFlag = ""
		configShowDefaultsFlag = false
		configShowEffectiveFlag = false
		configInitFlag = false
		configValidateFlag = false

		rootCmd.SetArgs([]string{})
		verbose.Disable()
	})
}

// runCLI runs the root command with the given arguments and returns the
// captured output along with the command error.
//
// The console, warning, and verbose writers are rebound inside the capture
// window; they are bound to the process's real streams at package init, so
// without the rebinding the echoed manager output would escape the capture.
//
// Parameters:
//   - t: Testing instance
//   - args: Command line arguments, flags included
//
// Returns:
//   - stdout: Captured standard output
//   - stderr: Captured standard error
//   - err: Error returned by command execution, nil on success
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetCommandState(t)

	oldVersion := Version
	Version = "1.0.0-test"
	t.Cleanup(func() {
		Version = oldVersion
		verbose.SetWriter(os.Stderr)
	})

	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	stdout, stderr = testutil.CaptureOutput(t, func() {
		restoreConsole := cmdexec.SetConsoleWriter(os.Stdout)
		defer restoreConsole()
		restoreWarnings := warnings.SetWarningWriter(os.Stderr)
		defer restoreWarnings()
		verbose.SetWriter(os.Stderr)

		err = ExecuteTest()
	})
	return stdout, stderr, err
}

// runExecute runs Execute with the exit function swapped out, returning the
// captured output plus the exit code Execute requested, if any.
//
// Parameters:
//   - t: Testing instance
//   - args: Command line arguments, flags included
//
// Returns:
//   - stdout: Captured standard output
//   - stderr: Captured standard error
//   - code: Exit code passed to the exit function, 0 when never called
//   - exited: Whether the exit function was called at all
func runExecute(t *testing.T, args ...string) (stdout, stderr string, code int, exited bool) {
	t.Helper()
	resetCommandState(t)

	oldVersion := Version
	Version = "1.0.0-test"
	t.Cleanup(func() {
		Version = oldVersion
		verbose.SetWriter(os.Stderr)
	})

	oldExit := exitFunc
	exitFunc = func(c int) {
		code = c
		exited = true
	}
	t.Cleanup(func() { exitFunc = oldExit })

	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	stdout, stderr = testutil.CaptureOutput(t, func() {
		restoreConsole := cmdexec.SetConsoleWriter(os.Stdout)
		defer restoreConsole()
		restoreWarnings := warnings.SetWarningWriter(os.Stderr)
		defer restoreWarnings()
		verbose.SetWriter(os.Stderr)

		Execute()
	})
	return stdout, stderr, code, exited
}
