package cmd

import (
	"fmt"
	"os"

	"github.com/caskup/caskup/pkg/constants"
	"github.com/caskup/caskup/pkg/manager"
	"github.com/caskup/caskup/pkg/output"
	"github.com/caskup/caskup/pkg/upgrade"
	"github.com/caskup/caskup/pkg/warnings"
	"github.com/spf13/cobra"
)

var outdatedOutputFlag string

// writeOutdatedResultFunc allows mocking structured output in tests
var writeOutdatedResultFunc = output.WriteOutdatedResult

var outdatedCmd = &cobra.Command{
	Use:   "outdated [package]",
	Short: "Find packages with a newer available version",
	Long: `Compare installed versions against the newest version the manager
advertises without uninstalling or installing anything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOutdated,
}

func init() {
	outdatedCmd.Flags().StringVarP(&outdatedOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: table)")
}

// runOutdated executes the outdated command to report version differences.
//
// Checks packages the same way the upgrade flow does but never runs the
// uninstall or install commands. Results render as a table or as a
// structured document when --output is given.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Optional package name (empty to check everything)
//
// Returns:
//   - error: Returns error on config, preflight, or check failure
func runOutdated(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outdatedOutputFlag)
	if err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	collector := warnings.NewCollector()
	restoreWarnings := warnings.SetWarningWriter(collector)
	defer restoreWarnings()

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	if err := runPreflight(cfg); err != nil {
		return err
	}

	mgr := manager.New(cfg)
	checker := upgrade.NewChecker(mgr, upgrade.Options{Quiet: true})
	results, summary, err := checker.RunCheck(name)
	if err != nil {
		return err
	}

	if output.IsStructuredFormat(format) {
		return printOutdatedStructured(mgr.Name(), results, summary, collector.Messages(), format)
	}

	printOutdatedTable(results, summary)
	warnings.Print(os.Stderr, collector.Messages())
	return nil
}

// printOutdatedTable renders check results as an aligned table on stdout.
//
// The CHANGE column only appears when at least one package carries a
// classified change. A summary line with totals follows the table.
//
// Parameters:
//   - results: Per-package check results in display order
//   - summary: Aggregated counts for the summary line
func printOutdatedTable(results []upgrade.Result, summary *upgrade.Summary) {
	if len(results) == 0 {
		fmt.Println("No installed packages found.")
		return
	}

	table := buildOutdatedTable(results)

	fmt.Println(table.HeaderRow())
	fmt.Println(table.SeparatorRow())

	for _, r := range results {
		fmt.Println(table.FormatRow(
			r.Name,
			r.Installed,
			r.Available,
			r.Change,
			statusWithIcon(r.Status),
		))
	}

	fmt.Printf("\nTotal packages: %d (%d outdated, %d up to date)\n",
		summary.Checked, summary.Outdated, summary.UpToDate)
}

// buildOutdatedTable creates a table formatter with calculated column widths.
//
// Parameters:
//   - results: Check results to calculate widths from
//
// Returns:
//   - *output.Table: Configured table formatter ready for output
func buildOutdatedTable(results []upgrade.Result) *output.Table {
	changes := make([]string, len(results))
	for i, r := range results {
		changes[i] = r.Change
	}
	showChange := output.ShouldShowChangeColumn(changes)

	table := output.NewTable().
		AddColumn("NAME").
		AddColumn("INSTALLED").
		AddColumn("AVAILABLE").
		AddConditionalColumn("CHANGE", showChange).
		AddColumn("STATUS")

	for _, r := range results {
		table.UpdateWidths(
			r.Name,
			r.Installed,
			r.Available,
			r.Change,
			statusWithIcon(r.Status),
		)
	}

	return table
}

// statusWithIcon prefixes a status value with its display icon.
//
// Parameters:
//   - status: Status value to decorate
//
// Returns:
//   - string: Icon-prefixed status, or the bare status when no icon applies
func statusWithIcon(status string) string {
	switch status {
	case constants.StatusUpToDate:
		return constants.IconSuccess + " " + status
	case constants.StatusOutdated:
		return constants.IconWarning + " " + status
	case constants.StatusPlanned:
		return constants.IconPending + " " + status
	case constants.StatusUpgraded:
		return constants.IconSuccess + " " + status
	case constants.StatusFailed:
		return constants.IconError + " " + status
	default:
		return status
	}
}

// printOutdatedStructured outputs check results in a structured format.
//
// Parameters:
//   - managerName: Name of the configured package manager
//   - results: Per-package check results
//   - summary: Aggregated counts for the summary block
//   - warns: Warning messages to include in output
//   - format: Output format to use
//
// Returns:
//   - error: Returns error on output failure
func printOutdatedStructured(managerName string, results []upgrade.Result, summary *upgrade.Summary, warns []string, format output.Format) error {
	packages := make([]output.OutdatedPackage, 0, len(results))
	for _, r := range results {
		packages = append(packages, output.OutdatedPackage{
			Name:      r.Name,
			Installed: r.Installed,
			Available: r.Available,
			Change:    r.Change,
			Status:    r.Status,
		})
	}

	result := &output.OutdatedResult{
		Summary: output.OutdatedSummary{
			Manager:          managerName,
			TotalPackages:    summary.Checked,
			OutdatedPackages: summary.Outdated,
			UpToDatePackages: summary.UpToDate,
		},
		Packages: packages,
		Warnings: warns,
	}

	return writeOutdatedResultFunc(os.Stdout, format, result)
}
