package testutil

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caskup/caskup/pkg/caskinfo"
	"github.com/caskup/caskup/pkg/config"
)

// These tests ensure the test utility functions are covered.
// Since these are helper functions for other tests, we just verify they work correctly.

func TestConfigBuilder(t *testing.T) {
	t.Run("defaults pass validation", func(t *testing.T) {
		cfg := NewConfig().Build()

		result := config.Validate(cfg)
		assert.False(t, result.HasErrors())
		assert.Equal(t, "test", cfg.Manager.Name)
		assert.Equal(t, ".", cfg.WorkingDir)
	})

	t.Run("builds config with all fields", func(t *testing.T) {
		cfg := NewConfig().
			WithWorkingDir("/tmp/work").
			WithManagerName("brew-cask").
			WithCommands("brew cask list", "brew cask info {{package}}", "brew cask uninstall {{package}}", "brew cask install {{package}}").
			WithTimeout(30).
			WithEnv("HOMEBREW_NO_AUTO_UPDATE", "1").
			Build()

		assert.Equal(t, "/tmp/work", cfg.WorkingDir)
		assert.Equal(t, "brew-cask", cfg.Manager.Name)
		assert.Equal(t, "brew cask list", cfg.Manager.List)
		assert.Equal(t, "brew cask info {{package}}", cfg.Manager.Info)
		assert.Equal(t, "brew cask uninstall {{package}}", cfg.Manager.Uninstall)
		assert.Equal(t, "brew cask install {{package}}", cfg.Manager.Install)
		assert.Equal(t, 30, cfg.Manager.TimeoutSeconds)
		assert.Equal(t, "1", cfg.Manager.Env["HOMEBREW_NO_AUTO_UPDATE"])
	})
}

func TestScriptManagerConfig(t *testing.T) {
	cfg := ScriptManagerConfig("/tmp/fakemgr")

	assert.Equal(t, "fake", cfg.Manager.Name)
	assert.Equal(t, "/tmp/fakemgr list", cfg.Manager.List)
	assert.Equal(t, "/tmp/fakemgr info {{package}}", cfg.Manager.Info)
	assert.Equal(t, "/tmp/fakemgr uninstall {{package}}", cfg.Manager.Uninstall)
	assert.Equal(t, "/tmp/fakemgr install {{package}}", cfg.Manager.Install)

	result := config.Validate(cfg)
	assert.False(t, result.HasErrors())
}

func TestInfoBuilder(t *testing.T) {
	t.Run("lines follow the positional contract", func(t *testing.T) {
		lines := NewInfo("keepassx").WithVersions("2.0.3", "2.0.2").Lines()

		require.Len(t, lines, 4)
		assert.Equal(t, "keepassx: 2.0.3", lines[0])
		assert.Equal(t, "https://example.org/keepassx", lines[1])
		assert.Equal(t, "/usr/local/Caskroom/keepassx/2.0.2 (217B)", lines[2])
		assert.Equal(t, "From: https://github.com/Homebrew/homebrew-cask", lines[3])
	})

	t.Run("extractor reads the built lines", func(t *testing.T) {
		lines := NewInfo("keepassx").WithVersions("2.0.3", "2.0.2").Lines()

		installed, available, err := caskinfo.Versions(lines)
		require.NoError(t, err)
		assert.Equal(t, "2.0.3", installed)
		assert.Equal(t, "2.0.2", available)
	})

	t.Run("defaults read as up to date", func(t *testing.T) {
		lines := NewInfo("firefox").Lines()

		installed, available, err := caskinfo.Versions(lines)
		require.NoError(t, err)
		assert.Equal(t, installed, available)
	})

	t.Run("homepage and tap overrides", func(t *testing.T) {
		lines := NewInfo("iterm2").
			WithHomepage("https://iterm2.com/").
			WithTap("https://github.com/custom/tap").
			Lines()

		assert.Equal(t, "https://iterm2.com/", lines[1])
		assert.Equal(t, "From: https://github.com/custom/tap", lines[3])
	})
}

func TestInfoOutput(t *testing.T) {
	out := InfoOutput("keepassx", "2.0.3", "2.0.2")

	assert.Contains(t, out, "keepassx: 2.0.3\n")
	assert.Contains(t, out, "/usr/local/Caskroom/keepassx/2.0.2 (217B)\n")
}

func TestCaptureStdout(t *testing.T) {
	output := CaptureStdout(t, func() {
		fmt.Println("hello stdout")
	})

	assert.Equal(t, "hello stdout\n", output)
}

func TestCaptureStderr(t *testing.T) {
	output := CaptureStderr(t, func() {
		fmt.Fprintln(os.Stderr, "hello stderr")
	})

	assert.Equal(t, "hello stderr\n", output)
}

func TestCaptureOutput(t *testing.T) {
	stdout, stderr := CaptureOutput(t, func() {
		fmt.Println("to stdout")
		fmt.Fprintln(os.Stderr, "to stderr")
	})

	assert.Equal(t, "to stdout\n", stdout)
	assert.Equal(t, "to stderr\n", stderr)
}
