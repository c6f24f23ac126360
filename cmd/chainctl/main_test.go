package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/chain/ers"
	"github.com/tychoish/chain/internal/testt"
)

func withFS(t *testing.T, fsys fstest.MapFS) {
	t.Helper()
	prev := fileSystem
	fileSystem = fsys
	t.Cleanup(func() { fileSystem = prev })
}

const passing = `
name: passing
values: [3, 2, 1]
steps:
  - op: sort
  - op: check
    values: [1, 2, 3]
`

const failing = `
values: [1]
steps:
  - op: pop_front
  - op: pop_front
`

func TestConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c := DefaultConfig()
		require.NoError(t, c.Validate())
		assert.True(t, c.CheckIntegrity)
		assert.Equal(t, "auto", c.Color)
	})
	t.Run("File", func(t *testing.T) {
		withFS(t, fstest.MapFS{
			"chainctl.toml": &fstest.MapFile{Data: []byte("log_level = \"warn\"\nlog_format = \"json\"\ncolor = \"never\"\ndefault_scenario = \"a.yaml\"\n")},
		})
		c, err := LoadConfigFromFile("chainctl.toml")
		require.NoError(t, err)
		assert.Equal(t, Config{
			LogLevel:        "warn",
			LogFormat:       "json",
			Color:           "never",
			CheckIntegrity:  true,
			DefaultScenario: "a.yaml",
		}, c)
	})
	t.Run("Invalid", func(t *testing.T) {
		for name, body := range map[string]string{
			"Level":   "log_level = \"loud\"\n",
			"Format":  "log_format = \"xml\"\n",
			"Color":   "color = \"sometimes\"\n",
			"Unknown": "colour = \"never\"\n",
			"Syntax":  "log_level = \n",
		} {
			t.Run(name, func(t *testing.T) {
				withFS(t, fstest.MapFS{"c.toml": &fstest.MapFile{Data: []byte(body)}})
				_, err := LoadConfigFromFile("c.toml")
				assert.ErrorIs(t, err, ers.ErrInvalidInput)
			})
		}
	})
	t.Run("Missing", func(t *testing.T) {
		withFS(t, fstest.MapFS{})
		_, err := LoadConfigFromFile("nope.toml")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ers.ErrInvalidInput)
	})
	t.Run("Logger", func(t *testing.T) {
		c := DefaultConfig()
		c.LogLevel = "debug"
		c.LogFormat = "json"
		buf := &bytes.Buffer{}
		logger, err := c.Logger(buf)
		require.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
		logger.Debug("hello")
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})
	t.Run("Color", func(t *testing.T) {
		c := DefaultConfig()
		assert.False(t, c.UseColor(&bytes.Buffer{}))
		c.Color = "always"
		assert.True(t, c.UseColor(&bytes.Buffer{}))
		c.Color = "never"
		assert.False(t, c.UseColor(os.Stdout))
	})
}

func TestRun(t *testing.T) {
	t.Run("Passing", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		code := run([]string{testt.WriteFile(t, "ok.yaml", passing)}, stdout, stderr)
		assert.Equal(t, exitOK, code, stderr.String())
		assert.Contains(t, stdout.String(), "scenario passing")
		assert.Contains(t, stdout.String(), "integrity: PASSED")
		assert.NotContains(t, stdout.String(), "\x1b[")
	})
	t.Run("Verbose", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		code := run([]string{"-verbose", "-log-format", "json", testt.WriteFile(t, "ok.yaml", passing)}, stdout, stderr)
		assert.Equal(t, exitOK, code)
		assert.Contains(t, stderr.String(), `"msg":"applied step"`)
		assert.Contains(t, stderr.String(), `"msg":"scenario complete"`)
	})
	t.Run("ForcedColor", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		code := run([]string{"-color", "always", testt.WriteFile(t, "ok.yaml", passing)}, stdout, &bytes.Buffer{})
		assert.Equal(t, exitOK, code)
		assert.Contains(t, stdout.String(), "\x1b[")
	})
	t.Run("Failing", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		code := run([]string{testt.WriteFile(t, "bad.yaml", failing)}, stdout, stderr)
		assert.Equal(t, exitFailed, code)
		assert.Contains(t, stdout.String(), "error:")
		assert.Contains(t, stdout.String(), "container is empty")
		assert.Contains(t, stderr.String(), "scenario failed")
	})
	t.Run("DefaultScenario", func(t *testing.T) {
		path := testt.WriteFile(t, "ok.yaml", passing)
		withFS(t, fstest.MapFS{
			"chainctl.toml": &fstest.MapFile{Data: []byte("color = \"never\"\ndefault_scenario = \"" + filepath.ToSlash(path) + "\"\n")},
		})
		stdout := &bytes.Buffer{}
		code := run([]string{"-config", "chainctl.toml"}, stdout, &bytes.Buffer{})
		assert.Equal(t, exitOK, code)
		assert.Contains(t, stdout.String(), "scenario passing")
	})
	t.Run("Usage", func(t *testing.T) {
		stderr := &bytes.Buffer{}
		assert.Equal(t, exitBadUsage, run(nil, &bytes.Buffer{}, stderr))
		assert.Contains(t, stderr.String(), "usage")

		assert.Equal(t, exitBadUsage, run([]string{"-nope"}, &bytes.Buffer{}, &bytes.Buffer{}))
		assert.Equal(t, exitBadUsage, run([]string{"-color", "purple", "x.yaml"}, &bytes.Buffer{}, &bytes.Buffer{}))
		assert.Equal(t, exitBadUsage, run([]string{"script.json"}, &bytes.Buffer{}, &bytes.Buffer{}))
	})
	t.Run("BadConfig", func(t *testing.T) {
		withFS(t, fstest.MapFS{"c.toml": &fstest.MapFile{Data: []byte("log_format = \"xml\"\n")}})
		stderr := &bytes.Buffer{}
		assert.Equal(t, exitBadUsage, run([]string{"-config", "c.toml", "x.yaml"}, &bytes.Buffer{}, stderr))
		assert.Contains(t, stderr.String(), "log_format")
	})
}
