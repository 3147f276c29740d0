// Package main is the entry point for the caskup CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The caskup tool checks installed
// Homebrew Cask packages against their currently available versions and
// reinstalls the ones that differ.
package main

import "github.com/caskup/caskup/cmd"

// main initializes and runs the caskup CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles the root upgrade flow and subcommands like list,
// outdated, and config.
func main() {
	cmd.Execute()
}
