package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ostnam/linus/pkg/config"
	"github.com/ostnam/linus/pkg/driver"
	"github.com/ostnam/linus/pkg/logging"
)

// app carries the state shared by every command of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	noColor  bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg    *config.Config
	logger *log.Logger
	styles styles
}

// Execute runs the command line against the process streams.
func Execute() error {
	root, a := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	err := root.Execute()
	if err != nil {
		a.printError(err)
	}
	return err
}

func newRootCmd(in io.Reader, out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		styles: newStyles(errOut, false),
	}
	root := &cobra.Command{
		Use:   "linus [FILE]",
		Short: "Interpreter for the linus language",
		Long: `linus runs programs written in a small prefix-notation language.

Every top-level expression is evaluated in order and its value printed.
Without a file argument an interactive session is started.

Examples:
  linus prog.ln             # run a file
  linus                     # start the REPL
  linus ast --format sexpr prog.ln`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.runFile(args[0])
			}
			return a.repl()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.FileName+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(
		newRunCmd(a),
		newReplCmd(a),
		newTokensCmd(a),
		newAstCmd(a),
		newVersionCmd(a),
	)
	return root, a
}

// setup loads the config and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.cfgFile
	if path == "" {
		path = config.Discover()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	logger, err := logging.New(cfg.Log, a.errOut)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.styles = newStyles(a.errOut, cfg.Output.Color)
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return nil
}

func (a *app) options() driver.Options {
	return driver.Options{
		Out:        a.out,
		DumpOut:    a.errOut,
		DumpTokens: a.cfg.Debug.DumpTokens,
		DumpAST:    a.cfg.Debug.DumpAST,
		DumpFormat: a.cfg.Debug.DumpFormat,
		Logger:     a.logger,
	}
}

func (a *app) runFile(path string) error {
	a.logger.Debug("running file", "path", path)
	return driver.RunFile(path, a.options())
}

func (a *app) printError(err error) {
	fmt.Fprintln(a.errOut, a.styles.renderError(err))
}
