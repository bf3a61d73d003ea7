// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/lincalc/calc"
	"github.com/katalvlaran/lincalc/internal/config"
)

// Output modes for --output.
const (
	outputAuto = "auto"
	outputText = "text"
	outputJSON = "json"
)

// app carries what every subcommand needs after flag parsing.
type app struct {
	out, errOut io.Writer

	configPath string
	logLevel   string
	output     string

	cfg    config.Config
	log    zerolog.Logger
	engine *calc.Engine
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "lincalc",
		Short:         "Linear algebra calculator",
		Long:          "lincalc evaluates matrix and vector operations, solves linear systems and converts coordinates.\nRun 'lincalc serve' to expose the same operations as a JSON API.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (defaults apply when empty)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level override (trace|debug|info|warn|error)")
	pf.StringVarP(&a.output, "output", "o", outputAuto, "Output format (auto|text|json)")

	root.AddCommand(
		a.serveCmd(),
		a.calcCmd(),
		a.crossCmd(),
		a.solveCmd(),
		a.convertCmd(),
		a.opsCmd(),
	)

	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	lvl, err := cfg.Log.ZerologLevel()
	if err != nil {
		return err
	}
	switch a.output {
	case outputAuto, outputText, outputJSON:
	default:
		return fmt.Errorf("--output must be auto, text or json, got %q", a.output)
	}

	var w io.Writer = a.errOut
	if cfg.Log.Format == "console" {
		w = zerolog.ConsoleWriter{Out: a.errOut, TimeFormat: time.Kitchen, NoColor: !isTerminal(a.errOut)}
	}
	a.cfg = cfg
	a.log = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	a.engine = calc.New(calc.WithLogger(a.log))

	return nil
}

// jsonOutput resolves "auto": JSON unless stdout is a terminal.
func (a *app) jsonOutput() bool {
	switch a.output {
	case outputJSON:
		return true
	case outputText:
		return false
	default:
		return !isTerminal(a.out)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
