package main

import (
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/tychoish/chain/ers"
)

// Config holds the settings read from chainctl's TOML file.
type Config struct {
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
	Color           string `toml:"color"`
	CheckIntegrity  bool   `toml:"check_integrity"`
	DefaultScenario string `toml:"default_scenario"`
}

// DefaultConfig returns the settings used for keys that the file
// does not set.
func DefaultConfig() Config {
	return Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Color:          "auto",
		CheckIntegrity: true,
	}
}

// overwriting fileSystem lets tests read configuration from memory
var fileSystem fs.FS = osFS{}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error) { return os.Open(name) }

// LoadConfigFromFile decodes the file at path over the defaults and
// validates the result.
func LoadConfigFromFile(path string) (Config, error) {
	c := DefaultConfig()

	data, err := fs.ReadFile(fileSystem, path)
	if err != nil {
		return c, ers.Wrapf(err, "read config %q", path)
	}

	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return c, ers.Wrapf(ers.ErrInvalidInput, "parse config %q: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, ers.Wrapf(ers.ErrInvalidInput, "unknown setting %q in %q", undecoded[0].String(), path)
	}

	return c, c.Validate()
}

// Validate checks the enumerated settings. Errors are rooted in
// ers.ErrInvalidInput.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return ers.Wrapf(ers.ErrInvalidInput, "log_level: %v", err)
	}

	format := strings.ToLower(c.LogFormat)
	if err := ers.Whenf(format != "text" && format != "json",
		"log_format must be text or json, not %q: %w", c.LogFormat, ers.ErrInvalidInput); err != nil {
		return err
	}

	color := strings.ToLower(c.Color)
	return ers.Whenf(color != "auto" && color != "always" && color != "never",
		"color must be auto, always, or never, not %q: %w", c.Color, ers.ErrInvalidInput)
}

// Logger builds a logger that writes to w at the configured level
// and format.
func (c Config) Logger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, ers.Wrapf(ers.ErrInvalidInput, "log_level: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	if strings.ToLower(c.LogFormat) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger, nil
}

// UseColor resolves the color setting for output written to w. In
// auto mode, color is used only when w is a terminal.
func (c Config) UseColor(w io.Writer) bool {
	switch strings.ToLower(c.Color) {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
