package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caskup/caskup/pkg/config"
	"github.com/caskup/caskup/pkg/constants"
	"github.com/caskup/caskup/pkg/errors"
	"github.com/caskup/caskup/pkg/verbose"
	"github.com/caskup/caskup/pkg/warnings"
	"github.com/spf13/cobra"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
)

var (
	loadConfigFunc          = config.LoadConfig
	readFileFunc            = os.ReadFile
	writeTemplateConfigFunc = config.WriteTemplateConfig
)

// loadRunConfig loads and validates the configuration for a run.
//
// It performs the following operations:
//  1. Loads the config from --config, the working directory, or defaults
//  2. Runs semantic validation on the manager profile
//  3. Prints validation errors with hints and maps them to the config exit code
//  4. Forwards validation warnings to the warning writer
//
// Returns:
//   - *config.Config: Loaded and validated configuration
//   - error: Returns ExitError with ExitConfigError code on load or validation failure
func loadRunConfig() (*config.Config, error) {
	workDir, _ := os.Getwd()

	cfg, err := loadConfigFunc(configFlag, workDir)
	if err != nil {
		verbose.Infof("Exit code %d (config error): %v", errors.ExitConfigError, err)
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load config: %w", err))
	}

	result := config.Validate(cfg)
	if result.HasErrors() {
		result.PrintTo(os.Stderr, verbose.IsEnabled())
		verbose.Infof("Exit code %d (config error): configuration validation failed", errors.ExitConfigError)
		return nil, errors.NewExitErrorf(errors.ExitConfigError, "configuration validation failed")
	}
	for _, w := range result.Warnings {
		warnings.Warnf("%s\n", w)
	}

	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create configuration",
	Long:  `Show or create configuration files.`,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create .caskup.yml template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .caskup.yml template file
//   - --validate: Validates the configuration file for schema errors
//   - --show-defaults: Displays the default configuration
//   - --show-effective: Displays the configuration the run would use
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	if configInitFlag {
		return createConfigTemplate()
	}

	if configValidateFlag {
		return validateConfigFile()
	}

	if configShowDefaultsFlag {
		fmt.Println("Default configuration:")
		fmt.Println()
		fmt.Println(config.GetDefaultConfig())
		return nil
	}

	if configShowEffectiveFlag {
		workDir, _ := os.Getwd()
		cfg, err := loadConfigFunc(configFlag, workDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		rendered, err := config.EffectiveYAML(cfg)
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}

		fmt.Println("Effective configuration:")
		fmt.Println()
		fmt.Printf("Working Directory: %s\n", cfg.WorkingDir)
		fmt.Printf("Manager: %s\n\n", cfg.Manager.Name)
		fmt.Println(rendered)
		return nil
	}

	return cmd.Help()
}

// validateConfigFile validates the configuration file at the specified path.
//
// If no path is specified via --config flag, validates .caskup.yml in the
// current working directory. Reports validation errors and warnings.
//
// Returns:
//   - error: Returns ExitError with ExitConfigError code on validation failure
func validateConfigFile() error {
	configPath := configFlag
	if configPath == "" {
		// Try default location
		workDir, _ := os.Getwd()
		configPath = filepath.Join(workDir, config.ConfigFileName)
	}

	data, err := readFileFunc(configPath)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	result := config.ValidateConfigData(data)

	if result.HasErrors() {
		fmt.Printf("%s Configuration validation failed for: %s\n\n", constants.IconError, configPath)

		// Use verbose errors when --verbose flag is set
		if verbose.IsEnabled() {
			for _, e := range result.Errors {
				fmt.Printf("  ERROR: %s\n", e.VerboseError())
			}
		} else {
			for _, e := range result.Errors {
				fmt.Printf("  ERROR: %s\n", e.Error())
			}
		}

		if len(result.Warnings) > 0 {
			fmt.Println()
			for _, w := range result.Warnings {
				fmt.Printf("  WARNING: %s\n", w)
			}
		}
		fmt.Println()
		if !verbose.IsEnabled() {
			fmt.Printf("%s Run with --verbose for detailed schema information\n", constants.IconLightbulb)
		}
		verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, configPath)
		return errors.NewExitErrorf(errors.ExitConfigError, "configuration validation failed")
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("%s Configuration valid with warnings: %s\n\n", constants.IconWarn, configPath)
		for _, w := range result.Warnings {
			fmt.Printf("  WARNING: %s\n", w)
		}
		fmt.Println()
	} else {
		fmt.Printf("%s Configuration valid: %s\n", constants.IconCheckmarkBox, configPath)
	}

	return nil
}

// createConfigTemplate creates a new .caskup.yml template file.
//
// The template is created in the current directory. Fails if a config
// file already exists at that location.
//
// Returns:
//   - error: Returns error if file exists or cannot be created
func createConfigTemplate() error {
	if err := writeTemplateConfigFunc(config.ConfigFileName); err != nil {
		return err
	}

	fmt.Printf("Created configuration template: %s\n", config.ConfigFileName)
	return nil
}
