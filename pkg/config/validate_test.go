package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validManagerCfg() ManagerCfg {
	return ManagerCfg{
		Name:      "brew-cask",
		List:      "brew cask list",
		Info:      "brew cask info {{package}}",
		Uninstall: "brew cask uninstall {{package}}",
		Install:   "brew cask install {{package}}",
	}
}

// TestValidate tests the behavior of Validate.
//
// It verifies:
//   - A complete profile passes
//   - Missing names and templates are errors
//   - Per-package templates without {{package}} are errors
func TestValidate(t *testing.T) {
	t.Run("valid profile passes", func(t *testing.T) {
		cfg := &Config{Manager: validManagerCfg()}
		result := Validate(cfg)
		assert.False(t, result.HasErrors())
		assert.False(t, result.HasWarnings())
	})

	t.Run("missing name", func(t *testing.T) {
		m := validManagerCfg()
		m.Name = "  "
		result := Validate(&Config{Manager: m})
		require.True(t, result.HasErrors())
		assert.Contains(t, result.ErrorMessage(), "manager.name")
	})

	t.Run("missing list template", func(t *testing.T) {
		m := validManagerCfg()
		m.List = ""
		result := Validate(&Config{Manager: m})
		require.True(t, result.HasErrors())
		assert.Contains(t, result.ErrorMessage(), "manager.list")
		assert.Contains(t, result.ErrorMessage(), "required")
	})

	t.Run("info template without placeholder", func(t *testing.T) {
		m := validManagerCfg()
		m.Info = "brew cask info"
		result := Validate(&Config{Manager: m})
		require.True(t, result.HasErrors())
		assert.Contains(t, result.ErrorMessage(), "manager.info")
		assert.Contains(t, result.ErrorMessage(), "{{package}}")
	})

	t.Run("uninstall and install need placeholder", func(t *testing.T) {
		m := validManagerCfg()
		m.Uninstall = "brew cask uninstall"
		m.Install = "brew cask install"
		result := Validate(&Config{Manager: m})
		require.True(t, result.HasErrors())
		assert.Len(t, result.Errors, 2)
	})

	t.Run("all templates missing reports each", func(t *testing.T) {
		result := Validate(&Config{Manager: ManagerCfg{Name: "x"}})
		require.True(t, result.HasErrors())
		assert.Len(t, result.Errors, 4)
	})
}

// TestValidate_ListPlaceholderWarning tests the placeholder warning on list.
//
// It verifies:
//   - {{package}} in the list template warns but does not fail
func TestValidate_ListPlaceholderWarning(t *testing.T) {
	m := validManagerCfg()
	m.List = "brew cask list {{package}}"
	result := Validate(&Config{Manager: m})

	assert.False(t, result.HasErrors())
	require.True(t, result.HasWarnings())
	assert.Contains(t, result.Warnings[0], "manager.list")
}

// TestValidate_TimeoutAndEnv tests timeout and environment validation.
//
// It verifies:
//   - Negative timeouts are rejected
//   - Blank environment variable names are rejected
func TestValidate_TimeoutAndEnv(t *testing.T) {
	t.Run("negative timeout", func(t *testing.T) {
		m := validManagerCfg()
		m.TimeoutSeconds = -1
		result := Validate(&Config{Manager: m})
		require.True(t, result.HasErrors())
		assert.Contains(t, result.ErrorMessage(), "timeout")
	})

	t.Run("zero timeout is fine", func(t *testing.T) {
		m := validManagerCfg()
		m.TimeoutSeconds = 0
		assert.False(t, Validate(&Config{Manager: m}).HasErrors())
	})

	t.Run("blank env name", func(t *testing.T) {
		m := validManagerCfg()
		m.Env = map[string]string{" ": "value"}
		result := Validate(&Config{Manager: m})
		require.True(t, result.HasErrors())
		assert.Contains(t, result.ErrorMessage(), "manager.env")
	})
}

// TestValidateConfigData tests the behavior of ValidateConfigData.
//
// It verifies:
//   - Valid YAML passes both strict parsing and semantic checks
//   - Unknown fields, type mismatches, and syntax errors are reported
//   - Empty input fails semantic validation only
func TestValidateConfigData(t *testing.T) {
	t.Run("valid data passes", func(t *testing.T) {
		data := []byte(`
manager:
  name: brew-cask
  list: brew cask list
  info: brew cask info {{package}}
  uninstall: brew cask uninstall {{package}}
  install: brew cask install {{package}}
`)
		result := ValidateConfigData(data)
		assert.False(t, result.HasErrors())
	})

	t.Run("unknown field", func(t *testing.T) {
		data := []byte(`
manager:
  name: brew-cask
  lst: brew cask list
`)
		result := ValidateConfigData(data)
		require.True(t, result.HasErrors())
		assert.Contains(t, result.ErrorMessage(), "unknown field")
	})

	t.Run("type mismatch", func(t *testing.T) {
		data := []byte(`
manager:
  name: brew-cask
  timeout_seconds: soon
`)
		result := ValidateConfigData(data)
		require.True(t, result.HasErrors())
		assert.Contains(t, result.ErrorMessage(), "cannot unmarshal")
	})

	t.Run("syntax error", func(t *testing.T) {
		result := ValidateConfigData([]byte("manager: [unclosed"))
		assert.True(t, result.HasErrors())
	})

	t.Run("empty input fails semantics", func(t *testing.T) {
		result := ValidateConfigData([]byte(""))
		require.True(t, result.HasErrors())
		assert.Contains(t, result.ErrorMessage(), "manager.name")
	})
}
