package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestConfigUnmarshal tests YAML unmarshaling into the Config structure.
//
// It verifies:
//   - All manager fields round-trip from YAML
//   - Optional fields default to their zero values
func TestConfigUnmarshal(t *testing.T) {
	t.Run("full manager profile", func(t *testing.T) {
		data := `
manager:
  name: brew-cask
  list: brew cask list
  info: brew cask info {{package}}
  uninstall: brew cask uninstall {{package}}
  install: brew cask install {{package}}
  env:
    HOMEBREW_NO_AUTO_UPDATE: "1"
  timeout_seconds: 120
`
		var cfg Config
		require.NoError(t, yaml.Unmarshal([]byte(data), &cfg))

		assert.Equal(t, "brew-cask", cfg.Manager.Name)
		assert.Equal(t, "brew cask list", cfg.Manager.List)
		assert.Equal(t, "brew cask info {{package}}", cfg.Manager.Info)
		assert.Equal(t, "brew cask uninstall {{package}}", cfg.Manager.Uninstall)
		assert.Equal(t, "brew cask install {{package}}", cfg.Manager.Install)
		assert.Equal(t, "1", cfg.Manager.Env["HOMEBREW_NO_AUTO_UPDATE"])
		assert.Equal(t, 120, cfg.Manager.TimeoutSeconds)
	})

	t.Run("optional fields default", func(t *testing.T) {
		data := `
manager:
  name: brew-cask
  list: brew cask list
  info: brew cask info {{package}}
  uninstall: brew cask uninstall {{package}}
  install: brew cask install {{package}}
`
		var cfg Config
		require.NoError(t, yaml.Unmarshal([]byte(data), &cfg))

		assert.Nil(t, cfg.Manager.Env)
		assert.Zero(t, cfg.Manager.TimeoutSeconds)
		assert.Empty(t, cfg.WorkingDir)
	})
}

// TestCommandTemplates tests the behavior of CommandTemplates.
//
// It verifies:
//   - Templates are returned in a fixed list, info, uninstall, install order
//   - Field names carry the configuration path
func TestCommandTemplates(t *testing.T) {
	m := ManagerCfg{
		Name:      "brew-cask",
		List:      "brew cask list",
		Info:      "brew cask info {{package}}",
		Uninstall: "brew cask uninstall {{package}}",
		Install:   "brew cask install {{package}}",
	}

	templates := m.CommandTemplates()
	require.Len(t, templates, 4)

	assert.Equal(t, "manager.list", templates[0].Field)
	assert.Equal(t, "brew cask list", templates[0].Template)
	assert.Equal(t, "manager.info", templates[1].Field)
	assert.Equal(t, "manager.uninstall", templates[2].Field)
	assert.Equal(t, "manager.install", templates[3].Field)
	assert.Equal(t, "brew cask install {{package}}", templates[3].Template)
}

// TestGetTimeoutSeconds tests the behavior of GetTimeoutSeconds.
//
// It verifies:
//   - A positive timeout is returned as configured
//   - Zero and negative values mean no timeout
func TestGetTimeoutSeconds(t *testing.T) {
	assert.Equal(t, 120, (&ManagerCfg{TimeoutSeconds: 120}).GetTimeoutSeconds())
	assert.Equal(t, 0, (&ManagerCfg{}).GetTimeoutSeconds())
	assert.Equal(t, 0, (&ManagerCfg{TimeoutSeconds: -5}).GetTimeoutSeconds())
}

// TestWorkingDirNotPersisted tests that WorkingDir stays out of YAML output.
//
// It verifies:
//   - Marshaling a config omits the runtime working directory
func TestWorkingDirNotPersisted(t *testing.T) {
	cfg := Config{
		Manager:    ManagerCfg{Name: "brew-cask"},
		WorkingDir: "/tmp/somewhere",
	}

	data, err := yaml.Marshal(&cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "somewhere")
}
