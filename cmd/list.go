package cmd

import (
	"fmt"
	"os"

	"github.com/caskup/caskup/pkg/manager"
	"github.com/caskup/caskup/pkg/output"
	"github.com/caskup/caskup/pkg/warnings"
	"github.com/spf13/cobra"
)

var listOutputFlag string

var writeListResultFunc = output.WriteListResult

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show installed packages",
	Long:    `List the packages the configured manager reports as installed.`,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: plain names)")
}

// runList executes the list command to display installed packages.
//
// Prints one package name per line so the output stays pipeable, or a
// structured document when --output is given. Warnings raised during the
// run are collected and reported after the listing.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: Returns error on config, preflight, or list failure
func runList(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(listOutputFlag)
	if err != nil {
		return err
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
	names, err := mgr.ListInstalled()
	if err != nil {
		return err
	}

	if output.IsStructuredFormat(format) {
		return printListStructured(mgr.Name(), names, collector.Messages(), format)
	}

	for _, name := range names {
		fmt.Println(name)
	}
	warnings.Print(os.Stderr, collector.Messages())
	return nil
}

// printListStructured outputs list results in a structured format.
//
// Parameters:
//   - managerName: Name of the configured package manager
//   - names: Installed package names to output
//   - warns: Warning messages to include in output
//   - format: Output format to use
//
// Returns:
//   - error: Returns error on output failure
func printListStructured(managerName string, names []string, warns []string, format output.Format) error {
	packages := make([]output.ListPackage, 0, len(names))
	for _, name := range names {
		packages = append(packages, output.ListPackage{Name: name})
	}

	result := &output.ListResult{
		Summary: output.ListSummary{
			Manager:       managerName,
			TotalPackages: len(packages),
		},
		Packages: packages,
		Warnings: warns,
	}

	return writeListResultFunc(os.Stdout, format, result)
}
