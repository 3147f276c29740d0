// Package cmd implements the command-line interface for caskup.
// The root command checks every installed package against the newest
// available version and reinstalls the ones that differ. Subcommands
// cover listing, check-only reporting, configuration management, and
// version output.
package cmd

import (
	"fmt"
	"os"

	"github.com/caskup/caskup/pkg/config"
	"github.com/caskup/caskup/pkg/errors"
	"github.com/caskup/caskup/pkg/manager"
	"github.com/caskup/caskup/pkg/preflight"
	"github.com/caskup/caskup/pkg/upgrade"
	"github.com/caskup/caskup/pkg/verbose"
	"github.com/spf13/cobra"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool
var skipBuildChecksFlag bool
var configFlag string
var skipPreflightFlag bool
var dryRunFlag bool

var rootCmd = &cobra.Command{
	Use:   "caskup [package]",
	Short: "Keep installed packages at their newest available version",
	Long: `Check installed packages against the newest version the package manager
advertises and reinstall the ones that differ. With a package name, only
that package is checked.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		// Show build warnings (arch mismatch, dev build) at the top of every command
		if !skipBuildChecksFlag {
			if warnings := GetBuildWarnings(); warnings != "" {
				fmt.Fprint(os.Stderr, warnings)
				fmt.Fprintln(os.Stderr) // Blank line to separate from command output
			}
		}
	},
	RunE: runRoot,
}

// runRoot executes the upgrade flow.
//
// With a package name argument only that package is checked; otherwise
// every installed package is checked in the order the manager lists
// them, strictly one at a time.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Optional package name (empty to check everything)
//
// Returns:
//   - error: Returns ExitError with appropriate code on failure
func runRoot(cmd *cobra.Command, args []string) error {
	if versionFlag {
		runVersion(cmd, args)
		return nil
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	if err := runPreflight(cfg); err != nil {
		return err
	}

	checker := upgrade.NewChecker(manager.New(cfg), upgrade.Options{DryRun: dryRunFlag})
	_, _, err = checker.Run(name)
	return err
}

// runPreflight validates that the configured manager commands resolve.
//
// Skipped entirely when --skip-preflight is set. Validation failures are
// printed with resolution hints and surface as a config error.
//
// Parameters:
//   - cfg: Loaded configuration whose commands to verify
//
// Returns:
//   - error: Returns ExitError with ExitConfigError code when a command is missing
func runPreflight(cfg *config.Config) error {
	if skipPreflightFlag {
		verbose.Info("Skipping preflight command validation")
		return nil
	}

	result := preflight.ValidateManager(cfg)
	if result.HasErrors() {
		result.PrintTo(os.Stderr, verbose.IsEnabled())
		verbose.Infof("Exit code %d (config error): preflight validation failed", errors.ExitConfigError)
		return errors.NewExitErrorf(errors.ExitConfigError, "preflight validation failed")
	}

	return nil
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 2: Failure (internal errors such as malformed metadata)
//   - 3: Configuration or validation error
//   - other: An external command failed; its exit status passes through unchanged
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip build validation warnings (dev build, arch mismatch)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&skipPreflightFlag, "skip-preflight", false, "Skip pre-flight command validation")

	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Report what would be upgraded without running commands")

	// Add -v/--version as a LOCAL flag (not persistent) so it only works on root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	// Commands ordered logically: info → config → workflow (list → outdated)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(outdatedCmd)
}
