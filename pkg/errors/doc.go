// Package errors provides unified error types and display for caskup.
//
// This package consolidates all error handling into a single location:
//   - ExitError: Command exit with specific exit code
//   - ValidationError: Configuration or preflight validation failures
//
// Error Display:
//
// The package provides consistent error formatting with actionable hints:
//
//	errors.PrintErrorWithHints(os.Stderr, errs, verbose)
//
// Error Checking:
//
// Use the Is* functions to check error types:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): All operations completed successfully
//   - ExitFailure (2): A run failed or a critical error occurred
//   - ExitConfigError (3): Configuration or validation error
//
// When a package manager command exits non-zero, its exit status is not
// remapped: the child's code becomes the caskup process's exit code.
package errors
