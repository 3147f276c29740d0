package config

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/caskup/caskup/pkg/errors"
	"github.com/caskup/caskup/pkg/verbose"
)

// packagePlaceholder must appear in every per-package command template.
const packagePlaceholder = "{{package}}"

// Validate validates a loaded Config struct.
//
// It verifies:
//   - The manager profile has a name
//   - All four command templates are present
//   - Per-package templates carry the {{package}} placeholder
//   - The timeout and environment settings are well-formed
//
// Parameters:
//   - cfg: the configuration to validate
//
// Returns:
//   - *errors.ValidationResult: validation result with any errors and warnings found
func Validate(cfg *Config) *errors.ValidationResult {
	result := errors.NewValidationResult()
	validateManager(&cfg.Manager, result)
	return result
}

// validateManager validates one manager profile.
//
// Parameters:
//   - m: the manager profile to validate
//   - result: validation result to append errors and warnings to
func validateManager(m *ManagerCfg, result *errors.ValidationResult) {
	verbose.Printf("Config validation: checking manager profile %q\n", m.Name)

	if strings.TrimSpace(m.Name) == "" {
		result.AddError(errors.NewConfigValidationError("manager.name", "manager name is required"))
	}

	for _, tmpl := range m.CommandTemplates() {
		if strings.TrimSpace(tmpl.Template) == "" {
			verbose.Printf("Config validation ERROR: %s is empty\n", tmpl.Field)
			result.AddError(errors.NewConfigValidationError(tmpl.Field, "command template is required"))
			continue
		}

		hasPlaceholder := strings.Contains(tmpl.Template, packagePlaceholder)
		if tmpl.Field == "manager.list" {
			// The list command enumerates everything; it takes no package
			if hasPlaceholder {
				result.AddWarning(fmt.Sprintf("%s contains %s, which is never substituted", tmpl.Field, packagePlaceholder))
			}
			continue
		}
		if !hasPlaceholder {
			verbose.Printf("Config validation ERROR: %s lacks the package placeholder\n", tmpl.Field)
			result.AddError(errors.NewConfigValidationError(tmpl.Field,
				fmt.Sprintf("command template must contain %s", packagePlaceholder)))
		}
	}

	if m.TimeoutSeconds < 0 {
		result.AddError(errors.NewConfigValidationError("manager.timeout_seconds", "timeout must be zero or positive"))
	}

	for key := range m.Env {
		if strings.TrimSpace(key) == "" {
			result.AddError(errors.NewConfigValidationError("manager.env", "environment variable names must not be empty"))
		}
	}

	if result.HasErrors() {
		verbose.Printf("Config validation FAILED: %d errors found\n", len(result.Errors))
	} else {
		verbose.Printf("Config validation PASSED: no errors found\n")
	}
}

// ValidateConfigData validates raw YAML configuration for syntax errors and
// unknown fields.
//
// This performs strict parsing using KnownFields(true) to detect typos and
// unknown configuration options, then runs the semantic checks of Validate
// on the decoded result.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *errors.ValidationResult: validation result with any errors and warnings found
func ValidateConfigData(data []byte) *errors.ValidationResult {
	verbose.Printf("Config validation: starting YAML parsing with strict field checking\n")

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			// An empty file decodes to nothing; validate the zero config
			return Validate(&cfg)
		}

		verbose.Printf("Config validation FAILED: YAML decode error: %v\n", err)
		result := errors.NewValidationResult()
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "field") && strings.Contains(errMsg, "not found"):
			result.AddError(errors.NewConfigValidationError("config",
				fmt.Sprintf("unknown field: %s", errMsg)))
		case strings.Contains(errMsg, "cannot unmarshal"):
			result.AddError(errors.NewConfigValidationError("config", errMsg))
		default:
			result.AddError(errors.NewConfigValidationError("config",
				fmt.Sprintf("YAML syntax error: %s", errMsg)))
		}
		return result
	}

	return Validate(&cfg)
}
