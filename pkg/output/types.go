package output

import "encoding/xml"

// ListResult represents the output data for the list command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the list operation
//   - Packages: Installed package entries in the manager's emission order
//   - Warnings: Warning messages generated during the run (omitted if empty)
type ListResult struct {
	XMLName  xml.Name      `json:"-" xml:"listResult"`
	Summary  ListSummary   `json:"summary" xml:"summary"`
	Packages []ListPackage `json:"packages" xml:"packages>package"`
	Warnings []string      `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// ListSummary holds summary statistics for list results.
//
// Fields:
//   - Manager: Name of the package manager profile that produced the list
//   - TotalPackages: Total number of installed packages
type ListSummary struct {
	Manager       string `json:"manager" xml:"manager"`
	TotalPackages int    `json:"total_packages" xml:"totalPackages"`
}

// ListPackage represents a package entry in the list output.
//
// Fields:
//   - Name: Package name as reported by the manager's list command
type ListPackage struct {
	Name string `json:"name" xml:"name"`
}

// OutdatedResult represents the output data for the outdated command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the version check
//   - Packages: Per-package version check entries
//   - Warnings: Warning messages generated during the run (omitted if empty)
type OutdatedResult struct {
	XMLName  xml.Name          `json:"-" xml:"outdatedResult"`
	Summary  OutdatedSummary   `json:"summary" xml:"summary"`
	Packages []OutdatedPackage `json:"packages" xml:"packages>package"`
	Warnings []string          `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// OutdatedSummary holds summary statistics for outdated results.
//
// Fields:
//   - Manager: Name of the package manager profile that was checked
//   - TotalPackages: Total number of packages checked
//   - OutdatedPackages: Number of packages whose versions differ
//   - UpToDatePackages: Number of packages whose versions match
type OutdatedSummary struct {
	Manager          string `json:"manager" xml:"manager"`
	TotalPackages    int    `json:"total_packages" xml:"totalPackages"`
	OutdatedPackages int    `json:"outdated_packages" xml:"outdatedPackages"`
	UpToDatePackages int    `json:"uptodate_packages" xml:"uptodatePackages"`
}

// OutdatedPackage represents a package entry in the outdated output.
//
// Fields:
//   - Name: Package name
//   - Installed: Installed version string
//   - Available: Currently available version string
//   - Change: Display-only transition label (major, minor, patch, ...)
//   - Status: Check status, Outdated or UpToDate
type OutdatedPackage struct {
	Name      string `json:"name" xml:"name"`
	Installed string `json:"installed" xml:"installed"`
	Available string `json:"available" xml:"available"`
	Change    string `json:"change" xml:"change"`
	Status    string `json:"status" xml:"status"`
}
