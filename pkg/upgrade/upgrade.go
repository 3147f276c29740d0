// Package upgrade implements the per-package check-and-upgrade flow.
//
// Each package moves through fetch, compare, and either up-to-date or
// upgrade. Packages are processed strictly sequentially, and the first
// command failure aborts the whole run with later packages unchecked.
package upgrade

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caskup/caskup/pkg/caskinfo"
	"github.com/caskup/caskup/pkg/constants"
	"github.com/caskup/caskup/pkg/utils"
	"github.com/caskup/caskup/pkg/verbose"
	"github.com/caskup/caskup/pkg/warnings"
)

// PackageManager is the manager surface the checker drives.
type PackageManager interface {
	ListInstalled() ([]string, error)
	Info(pkg string) ([]string, error)
	Uninstall(pkg string) error
	Install(pkg string) error
}

// Result records the outcome of checking one package.
//
// Fields:
//   - Name: The package name
//   - Installed: The installed version string
//   - Available: The currently available version string
//   - Change: Display-only transition label (major, minor, patch, ...)
//   - Status: One of the constants.Status* values
type Result struct {
	Name      string
	Installed string
	Available string
	Change    string
	Status    string
}

// Summary aggregates the outcomes of one run.
type Summary struct {
	Checked  int
	UpToDate int
	Outdated int
	Upgraded int
	Planned  int
}

// Add tallies one result status into the summary.
func (s *Summary) Add(status string) {
	s.Checked++
	switch status {
	case constants.StatusUpToDate:
		s.UpToDate++
	case constants.StatusOutdated:
		s.Outdated++
	case constants.StatusUpgraded:
		s.Upgraded++
	case constants.StatusPlanned:
		s.Planned++
	}
}

// Options configures a Checker.
type Options struct {
	// Out receives the progress lines. Defaults to os.Stdout.
	Out io.Writer

	// DryRun plans upgrades instead of executing them.
	DryRun bool

	// Quiet suppresses per-package progress lines. Used by check-only
	// callers that render their own report afterwards.
	Quiet bool
}

// Checker runs the check-and-upgrade flow against one package manager.
type Checker struct {
	mgr    PackageManager
	out    io.Writer
	dryRun bool
	quiet  bool
}

// NewChecker creates a Checker for the given manager.
//
// Parameters:
//   - mgr: the package manager surface to drive
//   - opts: output and mode options
//
// Returns:
//   - *Checker: a checker ready to run
func NewChecker(mgr PackageManager, opts Options) *Checker {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Checker{
		mgr:    mgr,
		out:    out,
		dryRun: opts.DryRun,
		quiet:  opts.Quiet,
	}
}

// CheckPackage fetches metadata for one package and compares versions.
//
// It prints the package name, fetches info, extracts both versions, and
// prints the available version. The comparison is plain string equality;
// no semantic interpretation feeds the decision. No upgrade happens here.
//
// The name must be non-blank; Run filters blanks before calling.
//
// Parameters:
//   - name: the package to check
//
// Returns:
//   - *Result: the check outcome with status UpToDate or Outdated
//   - error: an error when the info command fails or its output is malformed
func (c *Checker) CheckPackage(name string) (*Result, error) {
	if !c.quiet {
		fmt.Fprintf(c.out, "%s ... ", name)
	}

	lines, err := c.mgr.Info(name)
	if err != nil {
		return nil, err
	}

	installed, available, err := caskinfo.Versions(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if !c.quiet {
		fmt.Fprintln(c.out, available)
	}

	result := &Result{
		Name:      name,
		Installed: installed,
		Available: available,
		Change:    utils.ClassifyChange(installed, available),
	}
	if installed == available {
		result.Status = constants.StatusUpToDate
		verbose.VersionCompared(name, installed, available, "up to date")
	} else {
		result.Status = constants.StatusOutdated
		verbose.VersionCompared(name, installed, available, "outdated")
	}
	return result, nil
}

// UpgradePackage reinstalls one package whose check found a version difference.
//
// Outdated packages are uninstalled and then installed, both commands echoing
// their output. In dry-run mode the pair is only planned. Results in any
// other status are left untouched, so re-running over an up-to-date package
// does nothing.
//
// Parameters:
//   - result: the check outcome to act on; its Status is updated in place
//
// Returns:
//   - error: an error when the uninstall or install command fails
func (c *Checker) UpgradePackage(result *Result) error {
	if result.Status != constants.StatusOutdated {
		return nil
	}

	if c.dryRun {
		fmt.Fprintf(c.out, "Would upgrade %s: %s -> %s\n", result.Name, result.Installed, result.Available)
		result.Status = constants.StatusPlanned
		return nil
	}

	fmt.Fprintf(c.out, "Upgrading %s: %s -> %s ...\n", result.Name, result.Installed, result.Available)

	if err := c.mgr.Uninstall(result.Name); err != nil {
		result.Status = constants.StatusFailed
		return err
	}
	if err := c.mgr.Install(result.Name); err != nil {
		result.Status = constants.StatusFailed
		return err
	}

	fmt.Fprintln(c.out, "Done.")
	result.Status = constants.StatusUpgraded
	return nil
}

// Run checks and upgrades one package, or every installed package.
//
// With a name, exactly that package is processed. Without one, the manager's
// list drives the run in its emission order, one package at a time. Blank
// names are skipped with a warning. The first failure aborts the run, and a
// summary line closes a completed run.
//
// Parameters:
//   - name: the single package to process, or empty for all installed
//
// Returns:
//   - []Result: outcomes for the packages processed
//   - *Summary: tallied outcome counts
//   - error: the error that aborted the run, nil on completion
func (c *Checker) Run(name string) ([]Result, *Summary, error) {
	return c.run(name, true)
}

// RunCheck checks one package, or every installed package, without upgrading.
//
// Identical to Run with the upgrade phase skipped: outdated packages keep
// status Outdated and no uninstall or install ever happens.
//
// Parameters:
//   - name: the single package to check, or empty for all installed
//
// Returns:
//   - []Result: outcomes for the packages checked
//   - *Summary: tallied outcome counts
//   - error: the error that aborted the run, nil on completion
func (c *Checker) RunCheck(name string) ([]Result, *Summary, error) {
	return c.run(name, false)
}

func (c *Checker) run(name string, upgrade bool) ([]Result, *Summary, error) {
	var names []string
	if name != "" {
		names = []string{name}
	} else {
		listed, err := c.mgr.ListInstalled()
		if err != nil {
			return nil, nil, err
		}
		names = listed
	}

	results := make([]Result, 0, len(names))
	summary := &Summary{}

	for _, pkg := range names {
		if strings.TrimSpace(pkg) == "" {
			warnings.Warnf("Skipping blank package name from the list command\n")
			continue
		}

		result, err := c.CheckPackage(pkg)
		if err != nil {
			return results, summary, err
		}

		if upgrade {
			if err := c.UpgradePackage(result); err != nil {
				results = append(results, *result)
				summary.Add(result.Status)
				return results, summary, err
			}
		}

		results = append(results, *result)
		summary.Add(result.Status)
	}

	if upgrade && !c.quiet {
		c.printSummary(summary)
	}
	return results, summary, nil
}

// printSummary writes the end-of-run summary line.
func (c *Checker) printSummary(s *Summary) {
	noun := "packages"
	if s.Checked == 1 {
		noun = "package"
	}
	line := fmt.Sprintf("\nChecked %d %s: %d up to date, %d upgraded", s.Checked, noun, s.UpToDate, s.Upgraded)
	if c.dryRun {
		line += fmt.Sprintf(", %d planned", s.Planned)
	}
	fmt.Fprintln(c.out, line)
}
