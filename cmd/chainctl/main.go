// Command chainctl runs list scenario scripts and reports the state
// of the list after every step.
//
//	chainctl [-config chainctl.toml] [-verbose] [-color auto|always|never] [script.yaml|script.toml]
//
// The script may also be named by default_scenario in the config
// file. chainctl exits 1 when the scenario fails and 2 on usage or
// configuration errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tychoish/chain/ers"
	"github.com/tychoish/chain/internal/render"
	"github.com/tychoish/chain/internal/scenario"
)

const (
	exitOK       = 0
	exitFailed   = 1
	exitBadUsage = 2
)

type flags struct {
	config         string
	verbose        bool
	color          string
	logFormat      string
	checkIntegrity bool
}

func defineFlags(fs *flag.FlagSet, f *flags) {
	fs.StringVar(&f.config, "config", "", "path to a TOML configuration file")
	fs.BoolVar(&f.verbose, "verbose", false, "log every step (sets the log level to debug)")
	fs.StringVar(&f.color, "color", "", "auto, always, or never; overrides the config file")
	fs.StringVar(&f.logFormat, "log-format", "", "text or json; overrides the config file")
	fs.BoolVar(&f.checkIntegrity, "check-integrity", true, "check the list's integrity after every step")
}

// apply overrides the configuration with the flags that were set on
// the command line.
func (f *flags) apply(fs *flag.FlagSet, c *Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "verbose":
			if f.verbose {
				c.LogLevel = "debug"
			}
		case "color":
			c.Color = f.color
		case "log-format":
			c.LogFormat = f.logFormat
		case "check-integrity":
			c.CheckIntegrity = f.checkIntegrity
		}
	})
}

func run(args []string, stdout, stderr io.Writer) int {
	f := new(flags)
	fs := flag.NewFlagSet("chainctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	defineFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return exitBadUsage
	}

	conf := DefaultConfig()
	if f.config != "" {
		var err error
		if conf, err = LoadConfigFromFile(f.config); err != nil {
			fmt.Fprintf(stderr, "chainctl: %s\n", err)
			return exitBadUsage
		}
	}
	f.apply(fs, &conf)
	if err := conf.Validate(); err != nil {
		fmt.Fprintf(stderr, "chainctl: %s\n", err)
		return exitBadUsage
	}

	logger, err := conf.Logger(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "chainctl: %s\n", err)
		return exitBadUsage
	}

	path := conf.DefaultScenario
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if path == "" {
		logger.Error("usage: chainctl [flags] script.yaml|script.toml")
		fs.Usage()
		return exitBadUsage
	}

	script, err := scenario.Load(path)
	if err != nil {
		logger.WithError(err).WithField("path", path).Error("could not load scenario")
		return exitBadUsage
	}

	out := render.New(stdout, conf.UseColor(stdout))
	runner := &scenario.Runner{Logger: logger, CheckIntegrity: conf.CheckIntegrity}
	report, err := runner.Run(script)
	if report != nil {
		if rerr := out.Report(report); rerr != nil {
			logger.WithError(rerr).Error("could not write report")
		}
	}

	switch {
	case ers.Ok(err):
		return exitOK
	case ers.Is(err, ers.ErrInvalidInput):
		_ = out.Error(err)
		return exitBadUsage
	default:
		_ = out.Error(err)
		return exitFailed
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
